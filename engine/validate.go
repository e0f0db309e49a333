/*
validate.go - Boundary validation gate

PURPOSE:
  Validates a lease record once, at the system boundary, before the pure
  engine is invoked. The engine itself assumes pre-validated input and
  does not re-check. Returns a structured InvalidInputError enumerating
  every violated constraint rather than failing on the first one.

Overlapping schedule periods are intentionally accepted; resolution is
first-match in declaration order (see payment.go).
*/
package engine

import "fmt"

// Validate checks every input constraint on the lease. Returns nil when
// the record is valid, otherwise an *InvalidInputError listing all
// violations.
func Validate(l Lease) error {
	var violations []string

	if l.Name == "" {
		violations = append(violations, "lease name is required")
	}
	if l.Start.IsZero() {
		violations = append(violations, "start date is required")
	}
	if l.End.IsZero() {
		violations = append(violations, "end date is required")
	}
	if !l.Start.IsZero() && !l.End.IsZero() && !l.End.After(l.Start) {
		violations = append(violations, "end date must be after start date")
	}
	if l.DiscountRate.IsNegative() || l.DiscountRate.GreaterThan(one) {
		violations = append(violations, "discount rate must be between 0 and 1")
	}

	violations = append(violations, validateTerms(l.Terms)...)

	if l.PrepaidRent.IsNegative() {
		violations = append(violations, "prepaid rent must not be negative")
	}
	if l.InitialCosts.IsNegative() {
		violations = append(violations, "initial costs must not be negative")
	}
	if l.Incentives.IsNegative() {
		violations = append(violations, "incentives must not be negative")
	}

	for i, p := range l.PreASC842Payments {
		if p.Date.IsZero() {
			violations = append(violations, fmt.Sprintf("pre-ASC 842 payment %d: payment date is required", i+1))
		}
		if !p.Amount.IsPositive() {
			violations = append(violations, fmt.Sprintf("pre-ASC 842 payment %d: payment amount must be positive", i+1))
		}
	}

	for i, sub := range l.Subleases {
		violations = append(violations, validateSublease(i+1, sub)...)
	}

	if len(violations) > 0 {
		return &InvalidInputError{Violations: violations}
	}
	return nil
}

func validateTerms(terms PaymentTerms) []string {
	switch t := terms.(type) {
	case FixedPayment:
		if !t.Amount.IsPositive() {
			return []string{"monthly payment must be positive"}
		}
		return nil
	case PaymentSchedule:
		if len(t.Periods) == 0 {
			return []string{violationNoPaymentTerms}
		}
		return validatePeriods("payment schedule", t.Periods)
	default:
		return []string{violationNoPaymentTerms}
	}
}

func validatePeriods(context string, periods []SchedulePeriod) []string {
	var violations []string
	for i, period := range periods {
		label := fmt.Sprintf("%s period %d", context, i+1)
		switch p := period.(type) {
		case DateBoundedPeriod:
			if !p.MonthlyPayment.IsPositive() {
				violations = append(violations, label+": monthly payment must be positive")
			}
			if !p.End.After(p.Start) {
				violations = append(violations, label+": end date must be after start date")
			}
		case YearBoundedPeriod:
			if !p.MonthlyPayment.IsPositive() {
				violations = append(violations, label+": monthly payment must be positive")
			}
			if p.Year < 2000 || p.Year > 2100 {
				violations = append(violations, label+": year must be between 2000 and 2100")
			}
			if p.StartMonth < 0 || p.StartMonth > 12 {
				violations = append(violations, label+": start month must be between 1 and 12")
			}
			if p.EndMonth < 0 || p.EndMonth > 12 {
				violations = append(violations, label+": end month must be between 1 and 12")
			}
		default:
			violations = append(violations, label+": unknown period form")
		}
	}
	return violations
}

func validateSublease(n int, sub Sublease) []string {
	label := fmt.Sprintf("sublease %d", n)
	var violations []string

	if sub.SublesseeName == "" {
		violations = append(violations, label+": sublessee name is required")
	}
	if sub.Start.IsZero() {
		violations = append(violations, label+": sublease start date is required")
	}
	if sub.End.IsZero() {
		violations = append(violations, label+": sublease end date is required")
	}
	if !sub.Start.IsZero() && !sub.End.IsZero() && !sub.End.After(sub.Start) {
		violations = append(violations, label+": sublease end date must be after start date")
	}

	// Either a flat monthly income or an income schedule must be present.
	switch {
	case sub.MonthlyIncome.IsPositive():
	case sub.MonthlyIncome.IsNegative():
		violations = append(violations, label+": monthly income must be positive")
	case len(sub.IncomeSchedule) > 0:
		violations = append(violations, validatePeriods(label+" income schedule", sub.IncomeSchedule)...)
	default:
		violations = append(violations, label+": either monthly income or income schedule must be provided")
	}

	if sub.SecurityDeposit.IsNegative() {
		violations = append(violations, label+": security deposit must not be negative")
	}
	return violations
}
