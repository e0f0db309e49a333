/*
Package engine provides the ASC 842 lease calculation core.

PURPOSE:
  This package contains the pure computation over a lease record: present
  value of the lease liability, initial right-of-use asset measurement,
  and month-by-month journal entry generation. It performs no I/O - the
  surrounding system (store, HTTP handlers) feeds it validated records.

KEY CONCEPTS IN THIS FILE (types.go):
  - Lease: The immutable input record for one calculation run
  - PaymentTerms: Tagged variant - fixed monthly amount OR a schedule
  - SchedulePeriod: Tagged variant - date-bounded OR legacy year-bounded
  - Sublease: Sub-tenant agreement producing monthly cash inflow
  - Calculation: The derived balances, recomputed fresh on every request

DESIGN PRINCIPLES:
  1. Purity: Every operation is a function of the lease record alone
  2. Precision: Uses decimal.Decimal to avoid floating-point errors;
     currency amounts are rounded to the cent at defined points only
  3. Tagged variants: Payment terms are resolved by type switch, never by
     probing nullable fields

SEE ALSO:
  - payment.go: Resolves the payment due for a month offset
  - presentvalue.go: Discounted cash flow math
  - journal.go: Balanced double-entry generation
  - validate.go: The boundary gate that enforces input constraints
*/
package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// LEASE - Input record, immutable for the duration of one calculation
// =============================================================================

// Lease is a lessee's lease record. Start/End bound the term; payment terms
// are either a fixed monthly amount or a period schedule (see PaymentTerms).
// ID, OwnerID and CreatedAt are assigned by the record store.
type Lease struct {
	ID      string
	OwnerID string
	Name    string

	Start Date
	End   Date // invariant: End > Start

	// Annual nominal discount rate, decimal in [0, 1].
	// The periodic (monthly) rate is DiscountRate / 12.
	DiscountRate decimal.Decimal

	Terms PaymentTerms

	// One-time amounts affecting only the initial asset basis.
	PrepaidRent  decimal.Decimal
	InitialCosts decimal.Decimal
	Incentives   decimal.Decimal

	// Historical payments before standard adoption. Informational only;
	// never part of the amortization math.
	PreASC842Payments []PreASC842Payment

	Subleases []Sublease

	CreatedAt time.Time
}

// MonthlyRate returns the periodic discount rate (annual / 12).
func (l Lease) MonthlyRate() decimal.Decimal {
	return l.DiscountRate.Div(twelve)
}

// Clone returns a copy of the lease with its own slices, so a stored record
// cannot be mutated through a previously returned reference.
func (l Lease) Clone() Lease {
	c := l
	if l.PreASC842Payments != nil {
		c.PreASC842Payments = append([]PreASC842Payment(nil), l.PreASC842Payments...)
	}
	if l.Subleases != nil {
		c.Subleases = append([]Sublease(nil), l.Subleases...)
	}
	if sched, ok := l.Terms.(PaymentSchedule); ok {
		c.Terms = PaymentSchedule{Periods: append([]SchedulePeriod(nil), sched.Periods...)}
	}
	return c
}

// PreASC842Payment records a payment made before the adoption date.
type PreASC842Payment struct {
	Date        Date
	Amount      decimal.Decimal
	Description string
}

// =============================================================================
// PAYMENT TERMS - Tagged variant: fixed amount or schedule
// =============================================================================

// PaymentTerms is either FixedPayment or PaymentSchedule. The resolver in
// payment.go dispatches on the concrete type.
type PaymentTerms interface {
	isPaymentTerms()
}

// FixedPayment is the simple form: the same cash payment every month.
type FixedPayment struct {
	Amount decimal.Decimal
}

func (FixedPayment) isPaymentTerms() {}

// PaymentSchedule is the time-varying form: an ordered collection of
// periods, each carrying its own monthly payment. Periods are scanned in
// declaration order; overlaps resolve by first match.
type PaymentSchedule struct {
	Periods []SchedulePeriod
}

func (PaymentSchedule) isPaymentTerms() {}

// SchedulePeriod is either DateBoundedPeriod or YearBoundedPeriod.
type SchedulePeriod interface {
	// resolve reports whether the period covers the given date and, if so,
	// the payment due. A year-bounded period whose month range excludes the
	// date still covers it, with an explicit zero payment.
	resolve(d Date) (amount decimal.Decimal, covered bool)

	// chronoStart is the period's chronological start, used to order
	// periods for the fallback-to-last-period rule.
	chronoStart() Date

	// legacy reports whether this is a year-bounded period. When kinds are
	// mixed, legacy periods sort before date-bounded ones in the fallback.
	legacy() bool

	// payment is the period's configured monthly payment.
	payment() decimal.Decimal
}

// DateBoundedPeriod applies to every month whose date falls in
// [Start, End], inclusive.
type DateBoundedPeriod struct {
	Start          Date
	End            Date
	MonthlyPayment decimal.Decimal
}

func (p DateBoundedPeriod) resolve(d Date) (decimal.Decimal, bool) {
	if p.Start.BeforeOrEqual(d) && d.BeforeOrEqual(p.End) {
		return p.MonthlyPayment, true
	}
	return decimal.Zero, false
}

func (p DateBoundedPeriod) chronoStart() Date           { return p.Start }
func (p DateBoundedPeriod) legacy() bool                { return false }
func (p DateBoundedPeriod) payment() decimal.Decimal    { return p.MonthlyPayment }

// YearBoundedPeriod is the legacy form: applies within a single calendar
// year, optionally restricted to a month range (1-12, inclusive).
// A zero StartMonth/EndMonth means unrestricted on that side.
type YearBoundedPeriod struct {
	Year           int
	StartMonth     int
	EndMonth       int
	MonthlyPayment decimal.Decimal
}

func (p YearBoundedPeriod) resolve(d Date) (decimal.Decimal, bool) {
	if d.Year() != p.Year {
		return decimal.Zero, false
	}
	// The year is covered either way. A date excluded by the month range is
	// an explicit zero-payment month, not a fall-through to later periods.
	// Candidate for product clarification: this stops the scan where the
	// fallback-to-last-period rule elsewhere might suggest continuing.
	month := int(d.Month())
	if p.StartMonth > 0 && month < p.StartMonth {
		return decimal.Zero, true
	}
	if p.EndMonth > 0 && month > p.EndMonth {
		return decimal.Zero, true
	}
	return p.MonthlyPayment, true
}

func (p YearBoundedPeriod) chronoStart() Date {
	month := time.January
	if p.StartMonth > 0 {
		month = time.Month(p.StartMonth)
	}
	return NewDate(p.Year, month, 1)
}

func (p YearBoundedPeriod) legacy() bool             { return true }
func (p YearBoundedPeriod) payment() decimal.Decimal { return p.MonthlyPayment }

// =============================================================================
// SUBLEASE - Sub-tenant agreement
// =============================================================================

// Sublease is a sub-tenant agreement producing income while active.
// IncomeSchedule is accepted and stored for forward compatibility but is
// not used by the income math; only MonthlyIncome is.
type Sublease struct {
	SublesseeName   string
	Start           Date
	End             Date // invariant: End > Start
	MonthlyIncome   decimal.Decimal
	IncomeSchedule  []SchedulePeriod
	SecurityDeposit decimal.Decimal
	Description     string
}

// Active reports whether the sublease covers the given date, inclusive on
// both ends.
func (s Sublease) Active(d Date) bool {
	return s.Start.BeforeOrEqual(d) && d.BeforeOrEqual(s.End)
}

// =============================================================================
// CALCULATION - Derived balances, never persisted
// =============================================================================

// Calculation holds the measurement outputs for a lease. All currency
// amounts are rounded to the cent at the point of computation.
type Calculation struct {
	TermMonths          int
	PresentValue        decimal.Decimal
	InitialAsset        decimal.Decimal
	InitialLiability    decimal.Decimal
	MonthlyAmortization decimal.Decimal
}

// =============================================================================
// SHARED DECIMAL CONSTANTS
// =============================================================================

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)
