/*
codec.go - JSON wire form for lease records

PURPOSE:
  Leases carry a tagged payment-term variant that has no direct JSON
  shape. The wire form uses the nullable-field encoding the system has
  always spoken: "monthlyPayment" for the fixed form, "paymentSchedule"
  for the scheduled form, with a schedule period distinguished as
  year-bounded by the presence of "year". Stores persist this document;
  decoding maps it back onto the variants.

  When a document carries both a legacy monthlyPayment and a non-empty
  paymentSchedule, the schedule wins and the fixed amount is ignored.
*/
package engine

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type leaseJSON struct {
	ID                string               `json:"id,omitempty"`
	OwnerID           string               `json:"userId,omitempty"`
	Name              string               `json:"name"`
	StartDate         Date                 `json:"startDate"`
	EndDate           Date                 `json:"endDate"`
	MonthlyPayment    *decimal.Decimal     `json:"monthlyPayment,omitempty"`
	PaymentSchedule   []schedulePeriodJSON `json:"paymentSchedule,omitempty"`
	DiscountRate      decimal.Decimal      `json:"discountRate"`
	PrepaidRent       decimal.Decimal      `json:"prepaidRent"`
	InitialCosts      decimal.Decimal      `json:"initialCosts"`
	Incentives        decimal.Decimal      `json:"incentives"`
	PreASC842Payments []preASC842JSON      `json:"preASC842Payments,omitempty"`
	Subleases         []subleaseJSON       `json:"subleases,omitempty"`
	CreatedAt         *time.Time           `json:"createdAt,omitempty"`
}

type schedulePeriodJSON struct {
	StartDate      *Date           `json:"startDate,omitempty"`
	EndDate        *Date           `json:"endDate,omitempty"`
	MonthlyPayment decimal.Decimal `json:"monthlyPayment"`
	Year           int             `json:"year,omitempty"`
	StartMonth     int             `json:"startMonth,omitempty"`
	EndMonth       int             `json:"endMonth,omitempty"`
}

type preASC842JSON struct {
	Date        Date            `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

type subleaseJSON struct {
	SublesseeName   string               `json:"sublesseeName"`
	StartDate       Date                 `json:"startDate"`
	EndDate         Date                 `json:"endDate"`
	MonthlyIncome   decimal.Decimal      `json:"monthlyIncome"`
	IncomeSchedule  []schedulePeriodJSON `json:"incomeSchedule,omitempty"`
	SecurityDeposit decimal.Decimal      `json:"securityDeposit"`
	Description     string               `json:"description,omitempty"`
}

func (l Lease) MarshalJSON() ([]byte, error) {
	doc := leaseJSON{
		ID:           l.ID,
		OwnerID:      l.OwnerID,
		Name:         l.Name,
		StartDate:    l.Start,
		EndDate:      l.End,
		DiscountRate: l.DiscountRate,
		PrepaidRent:  l.PrepaidRent,
		InitialCosts: l.InitialCosts,
		Incentives:   l.Incentives,
	}
	if !l.CreatedAt.IsZero() {
		created := l.CreatedAt
		doc.CreatedAt = &created
	}

	switch terms := l.Terms.(type) {
	case FixedPayment:
		amount := terms.Amount
		doc.MonthlyPayment = &amount
	case PaymentSchedule:
		doc.PaymentSchedule = encodePeriods(terms.Periods)
	}

	for _, p := range l.PreASC842Payments {
		doc.PreASC842Payments = append(doc.PreASC842Payments, preASC842JSON{
			Date:        p.Date,
			Amount:      p.Amount,
			Description: p.Description,
		})
	}
	for _, s := range l.Subleases {
		doc.Subleases = append(doc.Subleases, subleaseJSON{
			SublesseeName:   s.SublesseeName,
			StartDate:       s.Start,
			EndDate:         s.End,
			MonthlyIncome:   s.MonthlyIncome,
			IncomeSchedule:  encodePeriods(s.IncomeSchedule),
			SecurityDeposit: s.SecurityDeposit,
			Description:     s.Description,
		})
	}

	return json.Marshal(doc)
}

func (l *Lease) UnmarshalJSON(data []byte) error {
	var doc leaseJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	lease := Lease{
		ID:           doc.ID,
		OwnerID:      doc.OwnerID,
		Name:         doc.Name,
		Start:        doc.StartDate,
		End:          doc.EndDate,
		DiscountRate: doc.DiscountRate,
		PrepaidRent:  doc.PrepaidRent,
		InitialCosts: doc.InitialCosts,
		Incentives:   doc.Incentives,
	}
	if doc.CreatedAt != nil {
		lease.CreatedAt = *doc.CreatedAt
	}

	switch {
	case len(doc.PaymentSchedule) > 0:
		lease.Terms = PaymentSchedule{Periods: decodePeriods(doc.PaymentSchedule)}
	case doc.MonthlyPayment != nil:
		lease.Terms = FixedPayment{Amount: *doc.MonthlyPayment}
	}

	for _, p := range doc.PreASC842Payments {
		lease.PreASC842Payments = append(lease.PreASC842Payments, PreASC842Payment{
			Date:        p.Date,
			Amount:      p.Amount,
			Description: p.Description,
		})
	}
	for _, s := range doc.Subleases {
		lease.Subleases = append(lease.Subleases, Sublease{
			SublesseeName:   s.SublesseeName,
			Start:           s.StartDate,
			End:             s.EndDate,
			MonthlyIncome:   s.MonthlyIncome,
			IncomeSchedule:  decodePeriods(s.IncomeSchedule),
			SecurityDeposit: s.SecurityDeposit,
			Description:     s.Description,
		})
	}

	*l = lease
	return nil
}

func encodePeriods(periods []SchedulePeriod) []schedulePeriodJSON {
	var out []schedulePeriodJSON
	for _, period := range periods {
		switch p := period.(type) {
		case DateBoundedPeriod:
			start, end := p.Start, p.End
			out = append(out, schedulePeriodJSON{
				StartDate:      &start,
				EndDate:        &end,
				MonthlyPayment: p.MonthlyPayment,
			})
		case YearBoundedPeriod:
			out = append(out, schedulePeriodJSON{
				MonthlyPayment: p.MonthlyPayment,
				Year:           p.Year,
				StartMonth:     p.StartMonth,
				EndMonth:       p.EndMonth,
			})
		}
	}
	return out
}

func decodePeriods(docs []schedulePeriodJSON) []SchedulePeriod {
	var out []SchedulePeriod
	for _, doc := range docs {
		if doc.Year != 0 {
			out = append(out, YearBoundedPeriod{
				Year:           doc.Year,
				StartMonth:     doc.StartMonth,
				EndMonth:       doc.EndMonth,
				MonthlyPayment: doc.MonthlyPayment,
			})
			continue
		}
		p := DateBoundedPeriod{MonthlyPayment: doc.MonthlyPayment}
		if doc.StartDate != nil {
			p.Start = *doc.StartDate
		}
		if doc.EndDate != nil {
			p.End = *doc.EndDate
		}
		out = append(out, p)
	}
	return out
}
