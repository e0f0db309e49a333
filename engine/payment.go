/*
payment.go - Resolves the cash payment due for a month offset

PURPOSE:
  Answers "what does the lessee pay in month m?" for both payment-term
  forms. This is the single source of cash flow amounts for the present
  value engine and the journal generator.

RESOLUTION RULES (scheduled form):
  1. Periods are scanned in declaration order; first cover wins.
     Overlapping periods are a silent first-match policy, not an error.
  2. A year-bounded period whose year matches but whose month range
     excludes the date covers the month with an EXPLICIT ZERO payment -
     the scan stops rather than falling through to later periods.
  3. If no period covers the month at all, the chronologically last period
     (year-bounded periods ordered before date-bounded ones when mixed)
     supplies a fallback amount, so a schedule that ends before lease
     maturity never produces undefined payments.

The resolver is deterministic and side-effect free: identical inputs
always produce identical amounts.

SEE ALSO:
  - types.go: PaymentTerms and SchedulePeriod variants
  - presentvalue.go, journal.go: Consumers of the resolved amounts
*/
package engine

import (
	"sort"

	"github.com/shopspring/decimal"
)

// PaymentForMonth returns the cash payment due in the month at the given
// zero-based offset from the lease start. Leases without payment terms
// resolve to zero; the validation gate rejects them before any
// calculation is requested.
func PaymentForMonth(l Lease, monthIndex int) decimal.Decimal {
	switch terms := l.Terms.(type) {
	case FixedPayment:
		return terms.Amount
	case PaymentSchedule:
		return terms.paymentAt(l.Start.AddMonths(monthIndex))
	default:
		return decimal.Zero
	}
}

// paymentAt resolves the payment for a concrete date against the schedule.
func (s PaymentSchedule) paymentAt(current Date) decimal.Decimal {
	for _, p := range s.Periods {
		if amount, covered := p.resolve(current); covered {
			return amount
		}
	}
	return s.fallback()
}

// fallback returns the amount of the chronologically last period. This is
// the default for months outside every period, keeping a schedule that
// ends early from producing undefined payments.
func (s PaymentSchedule) fallback() decimal.Decimal {
	if len(s.Periods) == 0 {
		return decimal.Zero
	}
	ordered := make([]SchedulePeriod, len(s.Periods))
	copy(ordered, s.Periods)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].legacy() != ordered[j].legacy() {
			return ordered[i].legacy()
		}
		return ordered[i].chronoStart().Before(ordered[j].chronoStart())
	})
	return ordered[len(ordered)-1].payment()
}
