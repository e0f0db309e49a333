package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/lease-engine/engine"
	"github.com/ledgerline/lease-engine/engine/store"
)

func newLease(id, owner string, created time.Time) *engine.Lease {
	return &engine.Lease{
		ID:           id,
		OwnerID:      owner,
		Name:         "Lease " + id,
		Start:        engine.NewDate(2024, time.January, 1),
		End:          engine.NewDate(2025, time.January, 1),
		DiscountRate: decimal.NewFromFloat(0.06),
		Terms:        engine.FixedPayment{Amount: decimal.NewFromInt(1000)},
		CreatedAt:    created,
	}
}

func TestMemory_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	lease := newLease("a", "acme", time.Now().UTC())

	require.NoError(t, m.Create(ctx, lease))

	got, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Lease a", got.Name)
	assert.Equal(t, "acme", got.OwnerID)
}

func TestMemory_DuplicateID(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	require.NoError(t, m.Create(ctx, newLease("a", "acme", time.Now().UTC())))

	err := m.Create(ctx, newLease("a", "other", time.Now().UTC()))
	assert.ErrorIs(t, err, engine.ErrDuplicateLeaseID)
}

func TestMemory_GetMissing(t *testing.T) {
	_, err := store.NewMemory().Get(context.Background(), "nope")
	assert.ErrorIs(t, err, engine.ErrLeaseNotFound)
}

func TestMemory_ListByOwner_ScopedAndOrdered(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, m.Create(ctx, newLease("newer", "acme", base.Add(time.Hour))))
	require.NoError(t, m.Create(ctx, newLease("older", "acme", base)))
	require.NoError(t, m.Create(ctx, newLease("other", "globex", base)))

	leases, err := m.ListByOwner(ctx, "acme")
	require.NoError(t, err)
	require.Len(t, leases, 2)
	assert.Equal(t, "older", leases[0].ID)
	assert.Equal(t, "newer", leases[1].ID)
}

func TestMemory_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	lease := newLease("a", "acme", time.Now().UTC())
	require.NoError(t, m.Create(ctx, lease))

	lease.Name = "Renamed"
	require.NoError(t, m.Update(ctx, lease))
	got, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)

	require.NoError(t, m.Delete(ctx, "a"))
	_, err = m.Get(ctx, "a")
	assert.ErrorIs(t, err, engine.ErrLeaseNotFound)

	assert.ErrorIs(t, m.Update(ctx, lease), engine.ErrLeaseNotFound)
	assert.ErrorIs(t, m.Delete(ctx, "a"), engine.ErrLeaseNotFound)
}

func TestMemory_CallerCannotMutateStoredState(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	lease := newLease("a", "acme", time.Now().UTC())
	lease.Subleases = []engine.Sublease{{
		SublesseeName: "Original",
		Start:         engine.NewDate(2024, time.April, 1),
		End:           engine.NewDate(2024, time.October, 1),
		MonthlyIncome: decimal.NewFromInt(800),
	}}
	require.NoError(t, m.Create(ctx, lease))

	// Mutating the record handed in, or one handed back, must not leak
	// into the stored copy.
	lease.Subleases[0].SublesseeName = "Mutated in"
	got, err := m.Get(ctx, "a")
	require.NoError(t, err)
	got.Subleases[0].SublesseeName = "Mutated out"

	again, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Subleases[0].SublesseeName)
}
