package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/lease-engine/engine"
	"github.com/ledgerline/lease-engine/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func fixedLease(id, owner string) *engine.Lease {
	return &engine.Lease{
		ID:           id,
		OwnerID:      owner,
		Name:         "Lease " + id,
		Start:        engine.NewDate(2024, time.January, 1),
		End:          engine.NewDate(2025, time.January, 1),
		DiscountRate: decimal.NewFromFloat(0.06),
		Terms:        engine.FixedPayment{Amount: decimal.NewFromInt(1000)},
		CreatedAt:    time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC),
	}
}

func TestStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Create(ctx, fixedLease("a", "acme")))

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Lease a", got.Name)
	assert.Equal(t, "acme", got.OwnerID)
	fixed, ok := got.Terms.(engine.FixedPayment)
	require.True(t, ok, "expected the fixed form back, got %T", got.Terms)
	assert.True(t, fixed.Amount.Equal(decimal.NewFromInt(1000)))
}

func TestStore_VariantRoundTrip(t *testing.T) {
	// GIVEN a lease using every variant-carrying field
	ctx := context.Background()
	store := newTestStore(t)

	lease := fixedLease("sched", "acme")
	lease.End = engine.NewDate(2026, time.January, 1)
	lease.Terms = engine.PaymentSchedule{Periods: []engine.SchedulePeriod{
		engine.YearBoundedPeriod{Year: 2024, StartMonth: 6, MonthlyPayment: decimal.NewFromInt(500)},
		engine.DateBoundedPeriod{
			Start:          engine.NewDate(2025, time.January, 1),
			End:            engine.NewDate(2025, time.December, 31),
			MonthlyPayment: decimal.NewFromInt(750),
		},
	}}
	lease.PreASC842Payments = []engine.PreASC842Payment{
		{Date: engine.NewDate(2023, time.December, 1), Amount: decimal.NewFromInt(2400), Description: "December 2023 rent"},
	}
	lease.Subleases = []engine.Sublease{{
		SublesseeName: "Bluebird Design LLC",
		Start:         engine.NewDate(2024, time.July, 1),
		End:           engine.NewDate(2025, time.July, 1),
		MonthlyIncome: decimal.NewFromInt(800),
	}}

	// WHEN persisting and reloading
	require.NoError(t, store.Create(ctx, lease))
	got, err := store.Get(ctx, "sched")
	require.NoError(t, err)

	// THEN the document round-trips with the concrete types intact
	sched, ok := got.Terms.(engine.PaymentSchedule)
	require.True(t, ok, "expected the schedule form back, got %T", got.Terms)
	require.Len(t, sched.Periods, 2)
	assert.IsType(t, engine.YearBoundedPeriod{}, sched.Periods[0])
	assert.IsType(t, engine.DateBoundedPeriod{}, sched.Periods[1])
	require.Len(t, got.PreASC842Payments, 1)
	require.Len(t, got.Subleases, 1)

	// The reloaded record computes the same schedule.
	want, err := engine.MonthlyEntries(lease.Clone())
	require.NoError(t, err)
	reloaded, err := engine.MonthlyEntries(*got)
	require.NoError(t, err)
	require.Len(t, reloaded, len(want))
}

func TestStore_DuplicateID(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.Create(ctx, fixedLease("a", "acme")))

	err := store.Create(ctx, fixedLease("a", "globex"))
	assert.ErrorIs(t, err, engine.ErrDuplicateLeaseID)
}

func TestStore_NotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.Get(ctx, "nope")
	assert.ErrorIs(t, err, engine.ErrLeaseNotFound)

	assert.ErrorIs(t, store.Update(ctx, fixedLease("nope", "acme")), engine.ErrLeaseNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "nope"), engine.ErrLeaseNotFound)
}

func TestStore_ListByOwner_ScopedAndOrdered(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	older := fixedLease("older", "acme")
	newer := fixedLease("newer", "acme")
	newer.CreatedAt = older.CreatedAt.Add(time.Hour)
	other := fixedLease("other", "globex")

	require.NoError(t, store.Create(ctx, newer))
	require.NoError(t, store.Create(ctx, older))
	require.NoError(t, store.Create(ctx, other))

	leases, err := store.ListByOwner(ctx, "acme")
	require.NoError(t, err)
	require.Len(t, leases, 2)
	assert.Equal(t, "older", leases[0].ID)
	assert.Equal(t, "newer", leases[1].ID)
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	lease := fixedLease("a", "acme")
	require.NoError(t, store.Create(ctx, lease))

	lease.Name = "Renamed"
	lease.Terms = engine.FixedPayment{Amount: decimal.NewFromInt(1250)}
	require.NoError(t, store.Update(ctx, lease))

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	fixed := got.Terms.(engine.FixedPayment)
	assert.True(t, fixed.Amount.Equal(decimal.NewFromInt(1250)))
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.Create(ctx, fixedLease("a", "acme")))

	require.NoError(t, store.Delete(ctx, "a"))
	_, err := store.Get(ctx, "a")
	assert.ErrorIs(t, err, engine.ErrLeaseNotFound)
}
