/*
Package sqlite provides a SQLite-backed implementation of engine.LeaseStore.

PURPOSE:
  Persists lease records for the server. The full lease (payment terms,
  subleases, historical payments) is stored as a JSON document alongside
  a few indexed columns; the engine's wire codec defines the document
  shape, so the store never needs to understand the payment-term
  variants.

KEY TABLE:
  leases:
    id         TEXT PRIMARY KEY
    owner_id   TEXT, indexed - every query is scoped to an owner
    name       TEXT
    start_date, end_date TEXT (ISO dates, for inspection/reporting)
    document   TEXT - the lease JSON document
    created_at TEXT (RFC 3339)

WAL MODE:
  Opened with WAL (Write-Ahead Logging): readers don't block, single
  writer at a time, better crash recovery.

USAGE:
  store, err := sqlite.New("./data/leases.db")  // ":memory:" for tests
  defer store.Close()

SEE ALSO:
  - engine/store.go: Interface definition
  - engine/store/memory.go: In-memory implementation for tests
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ledgerline/lease-engine/engine"
)

// Store implements engine.LeaseStore using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New opens (or creates) the database at dbPath and migrates the schema.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS leases (
		id         TEXT PRIMARY KEY,
		owner_id   TEXT NOT NULL,
		name       TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date   TEXT NOT NULL,
		document   TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_leases_owner ON leases(owner_id, created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// LEASE STORE IMPLEMENTATION
// =============================================================================

func (s *Store) Create(ctx context.Context, lease *engine.Lease) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	document, err := json.Marshal(lease)
	if err != nil {
		return fmt.Errorf("failed to encode lease: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO leases (id, owner_id, name, start_date, end_date, document, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		lease.ID, lease.OwnerID, lease.Name,
		lease.Start.String(), lease.End.String(),
		string(document), lease.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return engine.ErrDuplicateLeaseID
		}
		return fmt.Errorf("failed to insert lease: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (*engine.Lease, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var document string
	err := s.db.QueryRowContext(ctx,
		`SELECT document FROM leases WHERE id = ?`, id,
	).Scan(&document)
	if err == sql.ErrNoRows {
		return nil, engine.ErrLeaseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load lease: %w", err)
	}
	return decodeLease(document)
}

func (s *Store) ListByOwner(ctx context.Context, ownerID string) ([]*engine.Lease, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT document FROM leases WHERE owner_id = ? ORDER BY created_at, id`, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list leases: %w", err)
	}
	defer rows.Close()

	var leases []*engine.Lease
	for rows.Next() {
		var document string
		if err := rows.Scan(&document); err != nil {
			return nil, err
		}
		lease, err := decodeLease(document)
		if err != nil {
			return nil, err
		}
		leases = append(leases, lease)
	}
	return leases, rows.Err()
}

func (s *Store) Update(ctx context.Context, lease *engine.Lease) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	document, err := json.Marshal(lease)
	if err != nil {
		return fmt.Errorf("failed to encode lease: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE leases
		SET owner_id = ?, name = ?, start_date = ?, end_date = ?, document = ?
		WHERE id = ?`,
		lease.OwnerID, lease.Name,
		lease.Start.String(), lease.End.String(),
		string(document), lease.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update lease: %w", err)
	}
	return requireRowAffected(result)
}

func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM leases WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lease: %w", err)
	}
	return requireRowAffected(result)
}

// =============================================================================
// HELPERS
// =============================================================================

func decodeLease(document string) (*engine.Lease, error) {
	var lease engine.Lease
	if err := json.Unmarshal([]byte(document), &lease); err != nil {
		return nil, fmt.Errorf("failed to decode lease document: %w", err)
	}
	return &lease, nil
}

func requireRowAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return engine.ErrLeaseNotFound
	}
	return nil
}

func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
