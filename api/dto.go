/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for API communication, decoupled from the engine's
  internal model. Currency amounts cross the wire as JSON numbers; the
  conversion helpers map them onto decimals on the way in and back to
  float64 on the way out.

NAMING CONVENTION:
  - *DTO: Types shared by requests and responses
  - *Response: Response wrappers

VALIDATION:
  DTOs are pure data carriers. Constraint checking happens in
  engine.Validate after conversion; only date parsing can fail here.

SEE ALSO:
  - handlers.go: Uses these types
  - engine/codec.go: The store-side wire form with the same field names
*/
package api

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/lease-engine/engine"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// LeaseDTO is the API representation of a lease record.
type LeaseDTO struct {
	ID                string                `json:"id,omitempty"`
	Name              string                `json:"name"`
	StartDate         string                `json:"startDate"`
	EndDate           string                `json:"endDate"`
	MonthlyPayment    *float64              `json:"monthlyPayment,omitempty"`
	PaymentSchedule   []SchedulePeriodDTO   `json:"paymentSchedule,omitempty"`
	DiscountRate      float64               `json:"discountRate"`
	PrepaidRent       float64               `json:"prepaidRent,omitempty"`
	InitialCosts      float64               `json:"initialCosts,omitempty"`
	Incentives        float64               `json:"incentives,omitempty"`
	PreASC842Payments []PreASC842PaymentDTO `json:"preASC842Payments,omitempty"`
	Subleases         []SubleaseDTO         `json:"subleases,omitempty"`
	CreatedAt         string                `json:"createdAt,omitempty"`
}

// SchedulePeriodDTO carries either date bounds or the legacy year form; a
// non-zero year marks the period as year-bounded.
type SchedulePeriodDTO struct {
	StartDate      string  `json:"startDate,omitempty"`
	EndDate        string  `json:"endDate,omitempty"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	Year           int     `json:"year,omitempty"`
	StartMonth     int     `json:"startMonth,omitempty"`
	EndMonth       int     `json:"endMonth,omitempty"`
}

type PreASC842PaymentDTO struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

type SubleaseDTO struct {
	SublesseeName   string              `json:"sublesseeName"`
	StartDate       string              `json:"startDate"`
	EndDate         string              `json:"endDate"`
	MonthlyIncome   float64             `json:"monthlyIncome,omitempty"`
	IncomeSchedule  []SchedulePeriodDTO `json:"incomeSchedule,omitempty"`
	SecurityDeposit float64             `json:"securityDeposit,omitempty"`
	Description     string              `json:"description,omitempty"`
}

// CalculationDTO is the measurement result for a lease.
type CalculationDTO struct {
	LeaseTerm           int     `json:"leaseTerm"`
	PresentValue        float64 `json:"presentValue"`
	InitialAsset        float64 `json:"initialAsset"`
	InitialLiability    float64 `json:"initialLiability"`
	MonthlyAmortization float64 `json:"monthlyAmortization"`
}

type PostingDTO struct {
	Account string  `json:"account"`
	Amount  float64 `json:"amount"`
}

type JournalEntryDTO struct {
	LeaseID     string       `json:"leaseId"`
	Date        string       `json:"date"`
	Type        string       `json:"type"`
	Description string       `json:"description"`
	Debits      []PostingDTO `json:"debits"`
	Credits     []PostingDTO `json:"credits"`
}

type JournalEntriesResponse struct {
	Entries []JournalEntryDTO `json:"entries"`
}

type LeasesResponse struct {
	Leases []LeaseDTO `json:"leases"`
}

type SubleaseIncomeResponse struct {
	Total float64 `json:"total"`
}

// ScenarioDTO describes a demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

// toLease converts a request DTO into the engine model. Only malformed
// dates fail here; everything else is left for engine.Validate so the
// client gets the full violation list.
func toLease(dto LeaseDTO) (engine.Lease, error) {
	lease := engine.Lease{
		ID:           dto.ID,
		Name:         dto.Name,
		DiscountRate: decimal.NewFromFloat(dto.DiscountRate),
		PrepaidRent:  decimal.NewFromFloat(dto.PrepaidRent),
		InitialCosts: decimal.NewFromFloat(dto.InitialCosts),
		Incentives:   decimal.NewFromFloat(dto.Incentives),
	}

	var err error
	if lease.Start, err = parseOptionalDate(dto.StartDate); err != nil {
		return engine.Lease{}, err
	}
	if lease.End, err = parseOptionalDate(dto.EndDate); err != nil {
		return engine.Lease{}, err
	}

	switch {
	case len(dto.PaymentSchedule) > 0:
		periods, err := toPeriods(dto.PaymentSchedule)
		if err != nil {
			return engine.Lease{}, err
		}
		lease.Terms = engine.PaymentSchedule{Periods: periods}
	case dto.MonthlyPayment != nil:
		lease.Terms = engine.FixedPayment{Amount: decimal.NewFromFloat(*dto.MonthlyPayment)}
	}

	for _, p := range dto.PreASC842Payments {
		date, err := parseOptionalDate(p.Date)
		if err != nil {
			return engine.Lease{}, err
		}
		lease.PreASC842Payments = append(lease.PreASC842Payments, engine.PreASC842Payment{
			Date:        date,
			Amount:      decimal.NewFromFloat(p.Amount),
			Description: p.Description,
		})
	}

	for _, s := range dto.Subleases {
		sub := engine.Sublease{
			SublesseeName:   s.SublesseeName,
			MonthlyIncome:   decimal.NewFromFloat(s.MonthlyIncome),
			SecurityDeposit: decimal.NewFromFloat(s.SecurityDeposit),
			Description:     s.Description,
		}
		if sub.Start, err = parseOptionalDate(s.StartDate); err != nil {
			return engine.Lease{}, err
		}
		if sub.End, err = parseOptionalDate(s.EndDate); err != nil {
			return engine.Lease{}, err
		}
		if sub.IncomeSchedule, err = toPeriods(s.IncomeSchedule); err != nil {
			return engine.Lease{}, err
		}
		lease.Subleases = append(lease.Subleases, sub)
	}

	return lease, nil
}

func toPeriods(dtos []SchedulePeriodDTO) ([]engine.SchedulePeriod, error) {
	var periods []engine.SchedulePeriod
	for _, dto := range dtos {
		if dto.Year != 0 {
			periods = append(periods, engine.YearBoundedPeriod{
				Year:           dto.Year,
				StartMonth:     dto.StartMonth,
				EndMonth:       dto.EndMonth,
				MonthlyPayment: decimal.NewFromFloat(dto.MonthlyPayment),
			})
			continue
		}
		start, err := parseOptionalDate(dto.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := parseOptionalDate(dto.EndDate)
		if err != nil {
			return nil, err
		}
		periods = append(periods, engine.DateBoundedPeriod{
			Start:          start,
			End:            end,
			MonthlyPayment: decimal.NewFromFloat(dto.MonthlyPayment),
		})
	}
	return periods, nil
}

func parseOptionalDate(s string) (engine.Date, error) {
	if s == "" {
		return engine.Date{}, nil
	}
	d, err := engine.ParseDate(s)
	if err != nil {
		return engine.Date{}, fmt.Errorf("%s: %w", s, err)
	}
	return d, nil
}

func toLeaseDTO(l *engine.Lease) LeaseDTO {
	dto := LeaseDTO{
		ID:           l.ID,
		Name:         l.Name,
		StartDate:    l.Start.String(),
		EndDate:      l.End.String(),
		DiscountRate: l.DiscountRate.InexactFloat64(),
		PrepaidRent:  l.PrepaidRent.InexactFloat64(),
		InitialCosts: l.InitialCosts.InexactFloat64(),
		Incentives:   l.Incentives.InexactFloat64(),
	}
	if !l.CreatedAt.IsZero() {
		dto.CreatedAt = l.CreatedAt.UTC().Format(time.RFC3339)
	}

	switch terms := l.Terms.(type) {
	case engine.FixedPayment:
		amount := terms.Amount.InexactFloat64()
		dto.MonthlyPayment = &amount
	case engine.PaymentSchedule:
		dto.PaymentSchedule = toPeriodDTOs(terms.Periods)
	}

	for _, p := range l.PreASC842Payments {
		dto.PreASC842Payments = append(dto.PreASC842Payments, PreASC842PaymentDTO{
			Date:        p.Date.String(),
			Amount:      p.Amount.InexactFloat64(),
			Description: p.Description,
		})
	}
	for _, s := range l.Subleases {
		dto.Subleases = append(dto.Subleases, SubleaseDTO{
			SublesseeName:   s.SublesseeName,
			StartDate:       s.Start.String(),
			EndDate:         s.End.String(),
			MonthlyIncome:   s.MonthlyIncome.InexactFloat64(),
			IncomeSchedule:  toPeriodDTOs(s.IncomeSchedule),
			SecurityDeposit: s.SecurityDeposit.InexactFloat64(),
			Description:     s.Description,
		})
	}
	return dto
}

func toPeriodDTOs(periods []engine.SchedulePeriod) []SchedulePeriodDTO {
	var dtos []SchedulePeriodDTO
	for _, period := range periods {
		switch p := period.(type) {
		case engine.DateBoundedPeriod:
			dtos = append(dtos, SchedulePeriodDTO{
				StartDate:      p.Start.String(),
				EndDate:        p.End.String(),
				MonthlyPayment: p.MonthlyPayment.InexactFloat64(),
			})
		case engine.YearBoundedPeriod:
			dtos = append(dtos, SchedulePeriodDTO{
				MonthlyPayment: p.MonthlyPayment.InexactFloat64(),
				Year:           p.Year,
				StartMonth:     p.StartMonth,
				EndMonth:       p.EndMonth,
			})
		}
	}
	return dtos
}

func toCalculationDTO(c engine.Calculation) CalculationDTO {
	return CalculationDTO{
		LeaseTerm:           c.TermMonths,
		PresentValue:        c.PresentValue.InexactFloat64(),
		InitialAsset:        c.InitialAsset.InexactFloat64(),
		InitialLiability:    c.InitialLiability.InexactFloat64(),
		MonthlyAmortization: c.MonthlyAmortization.InexactFloat64(),
	}
}

func toJournalEntryDTO(e engine.JournalEntry) JournalEntryDTO {
	return JournalEntryDTO{
		LeaseID:     e.LeaseID,
		Date:        e.Date.String(),
		Type:        string(e.Type),
		Description: e.Description,
		Debits:      toPostingDTOs(e.Debits),
		Credits:     toPostingDTOs(e.Credits),
	}
}

func toPostingDTOs(ps []engine.Posting) []PostingDTO {
	dtos := make([]PostingDTO, len(ps))
	for i, p := range ps {
		dtos[i] = PostingDTO{Account: p.Account, Amount: p.Amount.InexactFloat64()}
	}
	return dtos
}
