/*
handlers.go - HTTP API handlers for the lease accounting engine

PURPOSE:
  Exposes lease records and their derived calculations via REST. Handles
  HTTP request/response and JSON mapping, delegates every computation to
  the engine package. Calculations are recomputed fresh on every request;
  nothing derived is cached or persisted.

ENDPOINTS:
  Leases (bearer-token authenticated, scoped to the verified owner):
    GET    /api/leases                       List the caller's leases
    POST   /api/leases                       Create lease (validated)
    GET    /api/leases/{id}                  Get lease
    PUT    /api/leases/{id}                  Replace lease (validated)
    DELETE /api/leases/{id}                  Delete lease

  Calculations (read-only derivations):
    GET    /api/leases/{id}/calculation      Measurement balances
    GET    /api/leases/{id}/journal-entries  Initial + monthly entries
    GET    /api/leases/{id}/sublease-income  Total sublease income

  Scenarios (development/demo):
    GET    /api/scenarios                    List demo scenarios
    POST   /api/scenarios/load               Load demo data

ERROR HANDLING:
  - 400: validation failures (full violation list in details), bad JSON
  - 401: missing/invalid bearer token
  - 404: unknown lease, or a lease owned by someone else
  - 500: store failures

SEE ALSO:
  - dto.go: Request/response structures and conversions
  - auth.go: Token verification middleware
  - server.go: Router setup
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ledgerline/lease-engine/engine"
)

// =============================================================================
// HANDLER
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store     engine.LeaseStore
	Generator engine.Generator

	// Track currently loaded demo scenario
	currentScenario string
}

// NewHandler creates a handler over the given store, emitting journal
// entries against the given chart of accounts.
func NewHandler(store engine.LeaseStore, chart engine.ChartOfAccounts) *Handler {
	return &Handler{
		Store:     store,
		Generator: engine.Generator{Chart: chart},
	}
}

// =============================================================================
// LEASE CRUD
// =============================================================================

// ListLeases returns all leases belonging to the caller.
func (h *Handler) ListLeases(w http.ResponseWriter, r *http.Request) {
	leases, err := h.Store.ListByOwner(r.Context(), ownerFrom(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list leases", err)
		return
	}

	resp := LeasesResponse{Leases: make([]LeaseDTO, len(leases))}
	for i, l := range leases {
		resp.Leases[i] = toLeaseDTO(l)
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateLease validates and stores a new lease for the caller.
func (h *Handler) CreateLease(w http.ResponseWriter, r *http.Request) {
	var dto LeaseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}

	lease, err := toLease(dto)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}
	if err := engine.Validate(lease); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	lease.ID = uuid.NewString()
	lease.OwnerID = ownerFrom(r.Context())
	lease.CreatedAt = time.Now().UTC()

	if err := h.Store.Create(r.Context(), &lease); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to store lease", err)
		return
	}
	writeJSON(w, http.StatusCreated, toLeaseDTO(&lease))
}

// GetLease returns a single lease owned by the caller.
func (h *Handler) GetLease(w http.ResponseWriter, r *http.Request) {
	lease, ok := h.loadOwned(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toLeaseDTO(lease))
}

// UpdateLease replaces an existing lease's terms. Identity fields (id,
// owner, creation time) are preserved.
func (h *Handler) UpdateLease(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.loadOwned(w, r)
	if !ok {
		return
	}

	var dto LeaseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}

	lease, err := toLease(dto)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}
	if err := engine.Validate(lease); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	lease.ID = existing.ID
	lease.OwnerID = existing.OwnerID
	lease.CreatedAt = existing.CreatedAt

	if err := h.Store.Update(r.Context(), &lease); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update lease", err)
		return
	}
	writeJSON(w, http.StatusOK, toLeaseDTO(&lease))
}

// DeleteLease removes a lease owned by the caller.
func (h *Handler) DeleteLease(w http.ResponseWriter, r *http.Request) {
	lease, ok := h.loadOwned(w, r)
	if !ok {
		return
	}
	if err := h.Store.Delete(r.Context(), lease.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete lease", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// DERIVED CALCULATIONS
// =============================================================================

// GetCalculation returns the lease's measurement balances.
func (h *Handler) GetCalculation(w http.ResponseWriter, r *http.Request) {
	lease, ok := h.loadOwned(w, r)
	if !ok {
		return
	}

	calc, err := engine.Compute(*lease)
	if err != nil {
		writeCalculationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCalculationDTO(calc))
}

// GetJournalEntries returns the initial recognition entry followed by the
// full monthly amortization schedule.
func (h *Handler) GetJournalEntries(w http.ResponseWriter, r *http.Request) {
	lease, ok := h.loadOwned(w, r)
	if !ok {
		return
	}

	initial, err := h.Generator.InitialEntry(*lease)
	if err != nil {
		writeCalculationError(w, err)
		return
	}
	monthly, err := h.Generator.MonthlyEntries(*lease)
	if err != nil {
		writeCalculationError(w, err)
		return
	}

	resp := JournalEntriesResponse{Entries: make([]JournalEntryDTO, 0, 1+len(monthly))}
	resp.Entries = append(resp.Entries, toJournalEntryDTO(initial))
	for _, e := range monthly {
		resp.Entries = append(resp.Entries, toJournalEntryDTO(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetSubleaseIncome returns the sublease income summed over the term.
func (h *Handler) GetSubleaseIncome(w http.ResponseWriter, r *http.Request) {
	lease, ok := h.loadOwned(w, r)
	if !ok {
		return
	}
	total := engine.SubleaseIncomeTotal(*lease)
	writeJSON(w, http.StatusOK, SubleaseIncomeResponse{Total: total.InexactFloat64()})
}

// =============================================================================
// HELPERS
// =============================================================================

// loadOwned fetches the lease from the URL and enforces ownership. A lease
// belonging to another owner is indistinguishable from a missing one.
func (h *Handler) loadOwned(w http.ResponseWriter, r *http.Request) (*engine.Lease, bool) {
	id := chi.URLParam(r, "id")
	lease, err := h.Store.Get(r.Context(), id)
	if err != nil {
		if engine.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Lease not found", nil)
		} else {
			writeError(w, http.StatusInternalServerError, "Failed to load lease", err)
		}
		return nil, false
	}
	if lease.OwnerID != ownerFrom(r.Context()) {
		writeError(w, http.StatusNotFound, "Lease not found", nil)
		return nil, false
	}
	return lease, true
}

func writeCalculationError(w http.ResponseWriter, err error) {
	if engine.IsClientError(err) {
		writeError(w, http.StatusBadRequest, "Calculation failed", err)
		return
	}
	writeError(w, http.StatusInternalServerError, "Calculation failed", err)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	var invalid *engine.InvalidInputError
	if errors.As(err, &invalid) {
		resp.Details = invalid.Violations
	} else if err != nil && status < http.StatusInternalServerError {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
