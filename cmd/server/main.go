/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the lease accounting server: configuration,
  dependency wiring, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load .env (if present) and parse command-line flags
  2. Open the SQLite store
  3. Load the chart of accounts (defaults unless -accounts is given)
  4. Build the handler and router
  5. Start the server; drain on SIGINT/SIGTERM

CONFIGURATION:
  -port      HTTP server port (default: 8080)
  -db        SQLite database path (default: leases.db; ":memory:" works)
  -accounts  Optional YAML file overriding journal account names

  LEASE_API_TOKENS  Comma-separated token:owner pairs for the bearer-token
                    verifier (default: "demo-token:demo"). Loaded from the
                    environment or a local .env file.

EXAMPLES:
  ./server -db=./data/leases.db
  LEASE_API_TOKENS="s3cret:acme" ./server -accounts=./accounts.yaml
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ledgerline/lease-engine/api"
	"github.com/ledgerline/lease-engine/engine"
	"github.com/ledgerline/lease-engine/store/sqlite"
)

func main() {
	// .env is optional; environment variables win over file values.
	_ = godotenv.Load()

	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "leases.db", "SQLite database path")
	accountsPath := flag.String("accounts", "", "YAML chart-of-accounts override")
	flag.Parse()

	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	chart := engine.DefaultChart()
	if *accountsPath != "" {
		chart, err = engine.LoadChart(*accountsPath)
		if err != nil {
			log.Fatalf("Failed to load chart of accounts: %v", err)
		}
	}

	tokens := os.Getenv("LEASE_API_TOKENS")
	if tokens == "" {
		tokens = "demo-token:demo"
		log.Printf("LEASE_API_TOKENS not set; using the demo token")
	}
	verifier := api.NewStaticTokenVerifier(api.ParseTokenConfig(tokens))

	handler := api.NewHandler(store, chart)
	router := api.NewRouter(handler, verifier)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%d", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
