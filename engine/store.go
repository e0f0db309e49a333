package engine

import "context"

// =============================================================================
// LEASE STORE - Persistence interface for lease records
// =============================================================================

// LeaseStore persists lease records keyed by identifier and queryable by
// owner. The engine never touches a store; handlers load a consistent
// snapshot and hand the record to the pure calculation functions.
//
// Implementations:
//   - engine/store:  in-memory, for tests and development
//   - store/sqlite:  SQLite-backed, for the server
type LeaseStore interface {
	// Create persists a new lease. Fails with ErrDuplicateLeaseID if the
	// identifier is already taken.
	Create(ctx context.Context, lease *Lease) error

	// Get returns the lease with the given identifier, or ErrLeaseNotFound.
	Get(ctx context.Context, id string) (*Lease, error)

	// ListByOwner returns all leases belonging to an owner, oldest first.
	ListByOwner(ctx context.Context, ownerID string) ([]*Lease, error)

	// Update replaces an existing lease, or returns ErrLeaseNotFound.
	Update(ctx context.Context, lease *Lease) error

	// Delete removes a lease, or returns ErrLeaseNotFound.
	Delete(ctx context.Context, id string) error
}
