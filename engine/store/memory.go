// Package store provides an in-memory LeaseStore for tests and development.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/ledgerline/lease-engine/engine"
)

// Memory is an in-memory LeaseStore. Records are copied on the way in and
// out, so callers can never mutate stored state through a reference.
type Memory struct {
	mu     sync.RWMutex
	leases map[string]engine.Lease
}

func NewMemory() *Memory {
	return &Memory{leases: make(map[string]engine.Lease)}
}

func (m *Memory) Create(_ context.Context, lease *engine.Lease) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.leases[lease.ID]; exists {
		return engine.ErrDuplicateLeaseID
	}
	m.leases[lease.ID] = lease.Clone()
	return nil
}

func (m *Memory) Get(_ context.Context, id string) (*engine.Lease, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lease, ok := m.leases[id]
	if !ok {
		return nil, engine.ErrLeaseNotFound
	}
	out := lease.Clone()
	return &out, nil
}

func (m *Memory) ListByOwner(_ context.Context, ownerID string) ([]*engine.Lease, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []*engine.Lease
	for _, lease := range m.leases {
		if lease.OwnerID == ownerID {
			out := lease.Clone()
			result = append(result, &out)
		}
	}
	// Oldest first, ID as tie-break for a stable order.
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *Memory) Update(_ context.Context, lease *engine.Lease) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.leases[lease.ID]; !exists {
		return engine.ErrLeaseNotFound
	}
	m.leases[lease.ID] = lease.Clone()
	return nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.leases[id]; !exists {
		return engine.ErrLeaseNotFound
	}
	delete(m.leases, id)
	return nil
}
