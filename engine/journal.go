/*
journal.go - Double-entry journal generation

PURPOSE:
  Walks the lease term month by month, amortizing the liability against
  the scheduled cash payments, and emits balanced journal entries:

  Initial recognition (once, at lease start):
    Dr Right-of-Use Asset          initialAsset
      Cr Lease Liability             initialLiability

  Each month m in 1..term, in order:
    payment > 0:
      Dr Interest Expense          liability * r        (rounded)
      Dr Lease Liability           payment - interest
        Cr Cash                      payment
    always:
      Dr Amortization Expense      monthlyAmortization
        Cr Accumulated Amortization  monthlyAmortization
    sublease income > 0:
      Dr Cash                      income
        Cr Sublease Income           income

INVARIANTS:
  - Every entry balances to the cent: the liability debit is the payment
    less the ROUNDED interest, so the payment entry balances by
    construction. The running liability itself is reduced by the
    unrounded principal.
  - Entries are emitted in non-decreasing date order; within a month,
    payment precedes amortization precedes sublease income.
  - The generator is a pure fold over the month range: re-invoking it on
    the same record reproduces the identical sequence.

SEE ALSO:
  - accounts.go: Account names, overridable per deployment
  - measure.go: Source of the initial balances
*/
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// JOURNAL ENTRY
// =============================================================================

type EntryType string

const (
	EntryInitial EntryType = "initial"
	EntryMonthly EntryType = "monthly"
)

// Posting is one side of a journal entry line.
type Posting struct {
	Account string
	Amount  decimal.Decimal
}

// JournalEntry is a balanced set of debit and credit postings recording a
// single accounting event.
type JournalEntry struct {
	LeaseID     string
	Date        Date
	Type        EntryType
	Description string
	Debits      []Posting
	Credits     []Posting
}

// Balanced reports whether debits equal credits to the cent.
func (e JournalEntry) Balanced() bool {
	return sumPostings(e.Debits).Round(2).Equal(sumPostings(e.Credits).Round(2))
}

func sumPostings(ps []Posting) decimal.Decimal {
	total := decimal.Zero
	for _, p := range ps {
		total = total.Add(p.Amount)
	}
	return total
}

// =============================================================================
// GENERATOR
// =============================================================================

// Generator emits journal entries against a chart of accounts.
// The zero value is not usable; construct with a chart.
type Generator struct {
	Chart ChartOfAccounts
}

// InitialEntry returns the initial recognition entry, dated at lease start.
func (g Generator) InitialEntry(l Lease) (JournalEntry, error) {
	calc, err := Compute(l)
	if err != nil {
		return JournalEntry{}, err
	}
	return JournalEntry{
		LeaseID:     l.ID,
		Date:        l.Start,
		Type:        EntryInitial,
		Description: "Initial recognition: " + l.Name,
		Debits:      []Posting{{Account: g.Chart.RightOfUseAsset, Amount: calc.InitialAsset}},
		Credits:     []Posting{{Account: g.Chart.LeaseLiability, Amount: calc.InitialLiability}},
	}, nil
}

// MonthlyEntries returns the amortization schedule as journal entries:
// 2*term entries, plus one per month with active sublease income.
func (g Generator) MonthlyEntries(l Lease) ([]JournalEntry, error) {
	calc, err := Compute(l)
	if err != nil {
		return nil, err
	}

	r := l.MonthlyRate()
	entries := make([]JournalEntry, 0, 2*calc.TermMonths)
	liability := calc.InitialLiability

	for m := 1; m <= calc.TermMonths; m++ {
		date := l.Start.AddMonths(m - 1)
		payment := PaymentForMonth(l, m-1)

		if payment.IsPositive() {
			interest := liability.Mul(r)
			principal := payment.Sub(interest)
			liability = liability.Sub(principal)

			interestRounded := interest.Round(2)
			entries = append(entries, JournalEntry{
				LeaseID:     l.ID,
				Date:        date,
				Type:        EntryMonthly,
				Description: fmt.Sprintf("Month %d - Payment and interest", m),
				Debits: []Posting{
					{Account: g.Chart.InterestExpense, Amount: interestRounded},
					{Account: g.Chart.LeaseLiability, Amount: payment.Sub(interestRounded)},
				},
				Credits: []Posting{{Account: g.Chart.Cash, Amount: payment}},
			})
		}

		// Amortization is schedule-driven, not payment-driven: emitted
		// every month regardless of whether cash moved.
		entries = append(entries, JournalEntry{
			LeaseID:     l.ID,
			Date:        date,
			Type:        EntryMonthly,
			Description: fmt.Sprintf("Month %d - Asset amortization", m),
			Debits:      []Posting{{Account: g.Chart.AmortizationExpense, Amount: calc.MonthlyAmortization}},
			Credits:     []Posting{{Account: g.Chart.AccumulatedAmortization, Amount: calc.MonthlyAmortization}},
		})

		if income := SubleaseIncomeForMonth(l, m-1); income.IsPositive() {
			entries = append(entries, JournalEntry{
				LeaseID:     l.ID,
				Date:        date,
				Type:        EntryMonthly,
				Description: fmt.Sprintf("Month %d - Sublease income", m),
				Debits:      []Posting{{Account: g.Chart.Cash, Amount: income}},
				Credits:     []Posting{{Account: g.Chart.SubleaseIncome, Amount: income}},
			})
		}
	}

	return entries, nil
}

// =============================================================================
// PACKAGE-LEVEL CONVENIENCE (default chart)
// =============================================================================

// InitialEntry generates the initial recognition entry with the default
// chart of accounts.
func InitialEntry(l Lease) (JournalEntry, error) {
	return Generator{Chart: DefaultChart()}.InitialEntry(l)
}

// MonthlyEntries generates the monthly entries with the default chart of
// accounts.
func MonthlyEntries(l Lease) ([]JournalEntry, error) {
	return Generator{Chart: DefaultChart()}.MonthlyEntries(l)
}
