package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerline/lease-engine/engine"
)

func subletLease() engine.Lease {
	l := fixedLease()
	l.Subleases = []engine.Sublease{{
		SublesseeName: "Bluebird Design LLC",
		Start:         engine.NewDate(2024, time.April, 1),
		End:           engine.NewDate(2024, time.September, 30),
		MonthlyIncome: money(800),
	}}
	return l
}

func TestSubleaseIncomeForMonth_ActiveWindowOnly(t *testing.T) {
	l := subletLease()

	cases := []struct {
		name       string
		monthIndex int
		want       float64
	}{
		{"before window", 2, 0},  // Mar
		{"first month", 3, 800},  // Apr
		{"mid window", 6, 800},   // Jul
		{"last month", 8, 800},   // Sep, inclusive
		{"after window", 9, 0},   // Oct
		{"lease end", 11, 0},     // Dec
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := engine.SubleaseIncomeForMonth(l, tc.monthIndex)
			assert.True(t, got.Equal(money(tc.want)),
				"month index %d: expected %v, got %v", tc.monthIndex, tc.want, got)
		})
	}
}

func TestSubleaseIncomeForMonth_MultipleSubleasesSum(t *testing.T) {
	l := subletLease()
	l.Subleases = append(l.Subleases, engine.Sublease{
		SublesseeName: "Corner Cafe",
		Start:         engine.NewDate(2024, time.June, 1),
		End:           engine.NewDate(2024, time.December, 31),
		MonthlyIncome: money(250),
	})

	// Jul: both active.
	got := engine.SubleaseIncomeForMonth(l, 6)
	assert.True(t, got.Equal(money(1050)), "expected 1050, got %v", got)
}

func TestSubleaseIncomeTotal(t *testing.T) {
	// Apr through Sep: 6 months at 800.
	got := engine.SubleaseIncomeTotal(subletLease())
	assert.True(t, got.Equal(money(4800)), "expected 4800, got %v", got)
}

func TestSubleaseIncomeTotal_NoSubleases_IsZero(t *testing.T) {
	got := engine.SubleaseIncomeTotal(fixedLease())
	assert.True(t, got.IsZero(), "expected zero, got %v", got)
}
