package engine_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/lease-engine/engine"
)

func TestInitialEntry(t *testing.T) {
	// GIVEN the canonical fixed lease with asset-basis adjustments
	l := fixedLease()
	l.InitialCosts = money(3000)

	// WHEN generating the initial recognition entry
	entry, err := engine.InitialEntry(l)
	require.NoError(t, err)

	// THEN Dr ROU asset for the full basis, Cr liability for the PV
	assert.Equal(t, engine.EntryInitial, entry.Type)
	assert.True(t, entry.Date.Equal(l.Start), "initial entry must be dated at lease start")
	require.Len(t, entry.Debits, 1)
	require.Len(t, entry.Credits, 1)
	assert.Equal(t, "Right-of-Use Asset", entry.Debits[0].Account)
	assert.Equal(t, "14618.93", entry.Debits[0].Amount.StringFixed(2))
	assert.Equal(t, "Lease Liability", entry.Credits[0].Account)
	assert.Equal(t, "11618.93", entry.Credits[0].Amount.StringFixed(2))
}

func TestMonthlyEntries_FixedLease_CountAndFirstMonth(t *testing.T) {
	// GIVEN a 12-month fixed lease
	l := fixedLease()

	// WHEN generating monthly entries
	entries, err := engine.MonthlyEntries(l)
	require.NoError(t, err)

	// THEN two entries per month: payment+interest, then amortization
	require.Len(t, entries, 24)

	first := entries[0]
	assert.Equal(t, "Month 1 - Payment and interest", first.Description)
	require.Len(t, first.Debits, 2)
	assert.Equal(t, "Interest Expense", first.Debits[0].Account)
	assert.Equal(t, "58.09", first.Debits[0].Amount.StringFixed(2)) // 11618.93 * 0.005
	assert.Equal(t, "Lease Liability", first.Debits[1].Account)
	assert.Equal(t, "941.91", first.Debits[1].Amount.StringFixed(2))
	require.Len(t, first.Credits, 1)
	assert.Equal(t, "Cash", first.Credits[0].Account)
	assert.Equal(t, "1000.00", first.Credits[0].Amount.StringFixed(2))

	amort := entries[1]
	assert.Equal(t, "Month 1 - Asset amortization", amort.Description)
	assert.Equal(t, "968.24", amort.Debits[0].Amount.StringFixed(2))
}

func TestMonthlyEntries_EveryEntryBalances(t *testing.T) {
	leases := map[string]engine.Lease{
		"fixed": fixedLease(),
		"scheduled": scheduledLease(
			engine.YearBoundedPeriod{Year: 2024, StartMonth: 6, MonthlyPayment: money(500)},
		),
		"sublet": subletLease(),
	}

	for name, l := range leases {
		t.Run(name, func(t *testing.T) {
			entries, err := engine.MonthlyEntries(l)
			require.NoError(t, err)
			for _, e := range entries {
				assert.True(t, e.Balanced(), "%s: entry %q does not balance", name, e.Description)
			}
		})
	}
}

func TestMonthlyEntries_LiabilityFullyAmortized(t *testing.T) {
	// GIVEN the fixed lease
	l := fixedLease()

	entries, err := engine.MonthlyEntries(l)
	require.NoError(t, err)

	// WHEN summing the liability debits across the term
	principal := decimal.Zero
	for _, e := range entries {
		for _, d := range e.Debits {
			if d.Account == "Lease Liability" {
				principal = principal.Add(d.Amount)
			}
		}
	}

	// THEN the schedule retires the initial liability. Per-month interest
	// rounding can drift the sum by up to a cent per month.
	diff := principal.Sub(money(11618.93)).Abs()
	assert.True(t, diff.LessThanOrEqual(money(0.12)),
		"liability debits sum to %v, expected 11618.93 within 0.12", principal)
}

func TestMonthlyEntries_ZeroPaymentMonths_AmortizationOnly(t *testing.T) {
	// GIVEN a schedule with explicit zero-payment months (Jan-May)
	l := scheduledLease(
		engine.YearBoundedPeriod{Year: 2024, StartMonth: 6, MonthlyPayment: money(500)},
	)

	entries, err := engine.MonthlyEntries(l)
	require.NoError(t, err)

	// THEN 12 amortization entries plus 7 payment entries
	require.Len(t, entries, 19)
	for _, e := range entries[:5] {
		assert.Contains(t, e.Description, "Asset amortization",
			"zero-payment months must emit amortization only, got %q", e.Description)
	}
	assert.Equal(t, "Month 6 - Payment and interest", entries[5].Description)
}

func TestMonthlyEntries_SubleaseIncome(t *testing.T) {
	l := subletLease()

	entries, err := engine.MonthlyEntries(l)
	require.NoError(t, err)

	// 24 base entries plus one income entry for each of Apr-Sep.
	require.Len(t, entries, 30)

	var incomeMonths []string
	for _, e := range entries {
		if len(e.Credits) == 1 && e.Credits[0].Account == "Sublease Income" {
			incomeMonths = append(incomeMonths, e.Description)
			assert.Equal(t, "Cash", e.Debits[0].Account)
			assert.Equal(t, "800.00", e.Credits[0].Amount.StringFixed(2))
		}
	}
	assert.Equal(t, []string{
		"Month 4 - Sublease income",
		"Month 5 - Sublease income",
		"Month 6 - Sublease income",
		"Month 7 - Sublease income",
		"Month 8 - Sublease income",
		"Month 9 - Sublease income",
	}, incomeMonths)
}

func TestMonthlyEntries_ChronologicalOrder(t *testing.T) {
	entries, err := engine.MonthlyEntries(subletLease())
	require.NoError(t, err)

	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		assert.False(t, cur.Date.Before(prev.Date),
			"entry %d (%q) dated before entry %d (%q)", i, cur.Description, i-1, prev.Description)
	}
}

func TestMonthlyEntries_Deterministic(t *testing.T) {
	l := subletLease()

	first, err := engine.MonthlyEntries(l)
	require.NoError(t, err)
	second, err := engine.MonthlyEntries(l)
	require.NoError(t, err)

	require.Equal(t, first, second, "regenerating the schedule must reproduce it exactly")
}

func TestGenerator_CustomChart(t *testing.T) {
	chart := engine.DefaultChart()
	chart.Cash = "Operating Cash"
	g := engine.Generator{Chart: chart}

	entries, err := g.MonthlyEntries(fixedLease())
	require.NoError(t, err)

	assert.Equal(t, "Operating Cash", entries[0].Credits[0].Account)
}
