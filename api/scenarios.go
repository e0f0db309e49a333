/*
scenarios.go - Demo scenario loaders

PURPOSE:
  Populates the store with realistic lease records for demos and manual
  testing. Each scenario replaces the demo owner's leases; real owners'
  records are never touched. Authenticate with a token mapped to the
  "demo" owner to browse the results.

AVAILABLE SCENARIOS:
  office-lease:  Single fixed-payment lease, the textbook annuity case
  stepped-rent:  Variable payment schedule mixing legacy year-bounded and
                 date-bounded periods
  sublet-floor:  Fixed-payment lease with a sub-tenant and pre-adoption
                 payment history

USAGE VIA API:
  POST /api/scenarios/load
  {"scenario_id": "stepped-rent"}

NOTE:
  Scenarios are for development/demo environments. Loading one deletes
  the demo owner's existing leases first, so reloads are idempotent.
*/
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/lease-engine/engine"
)

// demoOwner is the owner identifier all scenario leases are created under.
const demoOwner = "demo"

var scenarios = []ScenarioDTO{
	{
		ID:          "office-lease",
		Name:        "Office Lease",
		Description: "12-month fixed-payment lease at 6% - the textbook annuity case",
	},
	{
		ID:          "stepped-rent",
		Name:        "Stepped Rent",
		Description: "Variable schedule mixing a legacy year-bounded period with date-bounded periods",
	},
	{
		ID:          "sublet-floor",
		Name:        "Sublet Floor",
		Description: "Fixed-payment lease with a sub-tenant and pre-adoption payment history",
	},
}

// ListScenarios returns the available demo scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// LoadScenario replaces the demo owner's leases with a scenario's data.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}

	var load func(context.Context) error
	switch req.ScenarioID {
	case "office-lease":
		load = h.loadOfficeLeaseScenario
	case "stepped-rent":
		load = h.loadSteppedRentScenario
	case "sublet-floor":
		load = h.loadSubletFloorScenario
	default:
		writeError(w, http.StatusBadRequest, "Unknown scenario", nil)
		return
	}

	if err := h.clearDemoLeases(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset demo data", err)
		return
	}
	if err := load(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load scenario", err)
		return
	}

	h.currentScenario = req.ScenarioID
	writeJSON(w, http.StatusOK, map[string]string{"scenario_id": req.ScenarioID, "status": "loaded"})
}

func (h *Handler) clearDemoLeases(ctx context.Context) error {
	leases, err := h.Store.ListByOwner(ctx, demoOwner)
	if err != nil {
		return err
	}
	for _, l := range leases {
		if err := h.Store.Delete(ctx, l.ID); err != nil {
			return err
		}
	}
	return nil
}

func (h *Handler) createDemoLease(ctx context.Context, lease engine.Lease) error {
	lease.ID = uuid.NewString()
	lease.OwnerID = demoOwner
	lease.CreatedAt = time.Now().UTC()
	return h.Store.Create(ctx, &lease)
}

// =============================================================================
// SCENARIO DATA
// =============================================================================

func (h *Handler) loadOfficeLeaseScenario(ctx context.Context) error {
	return h.createDemoLease(ctx, engine.Lease{
		Name:         "Downtown office, floor 4",
		Start:        engine.NewDate(2024, time.January, 1),
		End:          engine.NewDate(2025, time.January, 1),
		DiscountRate: decimal.NewFromFloat(0.06),
		Terms:        engine.FixedPayment{Amount: decimal.NewFromInt(1000)},
	})
}

func (h *Handler) loadSteppedRentScenario(ctx context.Context) error {
	return h.createDemoLease(ctx, engine.Lease{
		Name:         "Warehouse bay 7, stepped rent",
		Start:        engine.NewDate(2024, time.January, 1),
		End:          engine.NewDate(2026, time.January, 1),
		DiscountRate: decimal.NewFromFloat(0.05),
		Terms: engine.PaymentSchedule{Periods: []engine.SchedulePeriod{
			engine.YearBoundedPeriod{Year: 2024, StartMonth: 6, MonthlyPayment: decimal.NewFromInt(500)},
			engine.DateBoundedPeriod{
				Start:          engine.NewDate(2025, time.January, 1),
				End:            engine.NewDate(2025, time.December, 31),
				MonthlyPayment: decimal.NewFromInt(750),
			},
		}},
		PrepaidRent: decimal.NewFromInt(1200),
		Incentives:  decimal.NewFromInt(500),
	})
}

func (h *Handler) loadSubletFloorScenario(ctx context.Context) error {
	return h.createDemoLease(ctx, engine.Lease{
		Name:         "HQ lease with sublet floor",
		Start:        engine.NewDate(2024, time.January, 1),
		End:          engine.NewDate(2026, time.January, 1),
		DiscountRate: decimal.NewFromFloat(0.045),
		Terms:        engine.FixedPayment{Amount: decimal.NewFromInt(2400)},
		InitialCosts: decimal.NewFromInt(3000),
		PreASC842Payments: []engine.PreASC842Payment{
			{Date: engine.NewDate(2023, time.November, 1), Amount: decimal.NewFromInt(2400), Description: "November 2023 rent"},
			{Date: engine.NewDate(2023, time.December, 1), Amount: decimal.NewFromInt(2400), Description: "December 2023 rent"},
		},
		Subleases: []engine.Sublease{{
			SublesseeName: "Bluebird Design LLC",
			Start:         engine.NewDate(2024, time.July, 1),
			End:           engine.NewDate(2025, time.July, 1),
			MonthlyIncome: decimal.NewFromInt(800),
			Description:   "Third floor, east wing",
		}},
	})
}
