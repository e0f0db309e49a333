package engine

import "github.com/shopspring/decimal"

// SubleaseIncomeForMonth returns the total sub-tenant cash inflow for the
// month at the given zero-based offset from the lease start: the sum of
// MonthlyIncome over every sublease active on that month's date.
func SubleaseIncomeForMonth(l Lease, monthIndex int) decimal.Decimal {
	current := l.Start.AddMonths(monthIndex)
	total := decimal.Zero
	for _, sub := range l.Subleases {
		if sub.Active(current) {
			total = total.Add(sub.MonthlyIncome)
		}
	}
	return total
}

// SubleaseIncomeTotal returns the sublease income summed over the whole
// lease term. Zero when the lease has no subleases.
func SubleaseIncomeTotal(l Lease) decimal.Decimal {
	term := TermMonths(l.Start, l.End)
	total := decimal.Zero
	for m := 0; m < term; m++ {
		total = total.Add(SubleaseIncomeForMonth(l, m))
	}
	return total
}
