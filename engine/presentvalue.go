/*
presentvalue.go - Discounted cash flow math

PURPOSE:
  Discounts the lease's monthly payment stream to a single present value
  at the periodic (monthly) discount rate. Two modes, selected by the
  payment-term form:

  Fixed annuity (closed form):
    PV = pmt * (1 - (1+r)^-n) / r        r > 0
    PV = pmt * n                          r = 0

  Variable stream (month-by-month):
    PV = sum over m in [0, n) of payment(m) / (1+r)^(m+1)

  The result is rounded to the cent. Discount factors for the variable
  stream are built by repeated division, so the computation is
  bit-identical across runs for identical inputs.

SEE ALSO:
  - payment.go: Supplies payment(m) for the variable stream
  - measure.go: Turns the present value into balance-sheet amounts
*/
package engine

import "github.com/shopspring/decimal"

// PresentValue discounts the lease's payment stream to its value at lease
// commencement, rounded to the cent. A lease with neither a fixed payment
// nor a non-empty schedule is a fatal input error.
func PresentValue(l Lease) (decimal.Decimal, error) {
	n := TermMonths(l.Start, l.End)
	r := l.MonthlyRate()

	switch terms := l.Terms.(type) {
	case FixedPayment:
		return annuityPV(terms.Amount, r, n).Round(2), nil
	case PaymentSchedule:
		if len(terms.Periods) == 0 {
			return decimal.Decimal{}, &InvalidInputError{Violations: []string{violationNoPaymentTerms}}
		}
		return streamPV(l, r, n).Round(2), nil
	default:
		return decimal.Decimal{}, &InvalidInputError{Violations: []string{violationNoPaymentTerms}}
	}
}

// annuityPV is the ordinary-annuity closed form.
func annuityPV(pmt, r decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 {
		return decimal.Zero
	}
	if r.IsZero() {
		// Degenerate case: undiscounted, avoids division by zero.
		return pmt.Mul(decimal.NewFromInt(int64(n)))
	}
	growth := one.Add(r).Pow(decimal.NewFromInt(int64(n)))
	return pmt.Mul(one.Sub(one.Div(growth))).Div(r)
}

// streamPV discounts each month's resolved payment individually.
func streamPV(l Lease, r decimal.Decimal, n int) decimal.Decimal {
	pv := decimal.Zero
	if r.IsZero() {
		for m := 0; m < n; m++ {
			pv = pv.Add(PaymentForMonth(l, m))
		}
		return pv
	}

	onePlusR := one.Add(r)
	factor := one
	for m := 0; m < n; m++ {
		factor = factor.Div(onePlusR) // (1+r)^-(m+1)
		pv = pv.Add(PaymentForMonth(l, m).Mul(factor))
	}
	return pv
}
