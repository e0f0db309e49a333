package engine

import "github.com/shopspring/decimal"

// Compute derives the lease's initial measurement:
//
//	initialLiability    = presentValue
//	initialAsset        = presentValue + initialCosts + prepaidRent - incentives
//	monthlyAmortization = initialAsset / termMonths   (straight line)
//
// Each output is rounded to the cent independently. Fails with an
// InvalidInput error when the lease carries no resolvable payment terms.
func Compute(l Lease) (Calculation, error) {
	pv, err := PresentValue(l)
	if err != nil {
		return Calculation{}, err
	}

	term := TermMonths(l.Start, l.End)
	if term == 0 {
		// Cannot occur for a lease satisfying End > Start, but guard the
		// straight-line division anyway.
		return Calculation{}, &InvalidInputError{Violations: []string{"lease term must be at least one month"}}
	}

	asset := pv.Add(l.InitialCosts).Add(l.PrepaidRent).Sub(l.Incentives)
	amortization := asset.Div(decimal.NewFromInt(int64(term)))

	return Calculation{
		TermMonths:          term,
		PresentValue:        pv,
		InitialAsset:        asset.Round(2),
		InitialLiability:    pv.Round(2),
		MonthlyAmortization: amortization.Round(2),
	}, nil
}
