/*
scenarios.go - Worked pay examples

PURPOSE:
  The fixed set of example employees shown by the demo CLI and the
  /api/scenarios endpoints. Each scenario pairs a preset employee with the
  JSON document that configures the same employee and the pay it must earn.

AVAILABLE SCENARIOS:
  hourly:                   100/h x 10h                      -> 1000
  hourly-commissioned:      100/h x 9h + 100 x 1             -> 1000
  salary:                   1000/month x 1                   -> 1000
  salary-commissioned:      900/month x 1 + 100 x 1          -> 1000
  freelancer:               1000 x 1                         -> 1000
  freelancer-bonus:         900 x 1 + 100 bonus              -> 1000

NOTE ON "freelancer":
  This worked example was first published with an expected output
  of 100, which does not match its own inputs. Expected holds the arithmetic
  result; the discrepancy is kept in Note so it stays visible.
*/
package staff

import (
	"github.com/pkg/errors"

	"github.com/warp/pay-engine/pay"
)

// Scenario is a named example employee with its expected pay.
type Scenario struct {
	ID          string
	Name        string
	Description string
	Employee    pay.Employee
	ConfigJSON  string
	Expected    pay.Amount
	Note        string
}

// ScenarioResult is a scenario with its computed pay.
type ScenarioResult struct {
	Scenario  Scenario
	Breakdown pay.Breakdown
	Matches   bool
}

// Run computes the scenario's pay and compares it to Expected.
func (s Scenario) Run() ScenarioResult {
	b := s.Employee.Breakdown()
	return ScenarioResult{
		Scenario:  s,
		Breakdown: b,
		Matches:   b.Total.Equal(s.Expected),
	}
}

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

// Scenarios returns the example scenarios in display order.
func Scenarios() []Scenario {
	return []Scenario{
		{
			ID:          "hourly",
			Name:        "Hourly",
			Description: "Paid by the hour, no commission",
			Employee:    HourlyEmployee(100, 10),
			ConfigJSON:  HourlyJSON(100, 10),
			Expected:    thousand(),
		},
		{
			ID:          "hourly-commissioned",
			Name:        "Hourly + Commission",
			Description: "Paid by the hour plus one commission",
			Employee:    HourlyCommissionedEmployee(100, 9, 100, 1),
			ConfigJSON:  HourlyCommissionedJSON(100, 9, 100, 1),
			Expected:    thousand(),
		},
		{
			ID:          "salary",
			Name:        "Salaried",
			Description: "Paid monthly, no commission",
			Employee:    SalaryEmployee(1000, 1),
			ConfigJSON:  SalaryJSON(1000, 1),
			Expected:    thousand(),
		},
		{
			ID:          "salary-commissioned",
			Name:        "Salaried + Commission",
			Description: "Paid monthly plus one commission",
			Employee:    SalaryCommissionedEmployee(900, 1, 100, 1),
			ConfigJSON:  SalaryCommissionedJSON(900, 1, 100, 1),
			Expected:    thousand(),
		},
		{
			ID:          "freelancer",
			Name:        "Freelancer",
			Description: "Paid purely from commission",
			Employee:    Freelancer(1000, 1),
			ConfigJSON:  FreelancerJSON(1000, 1),
			Expected:    thousand(),
			Note:        "first published with an expected output of 100; 1000 x 1 = 1000",
		},
		{
			ID:          "freelancer-bonus",
			Name:        "Freelancer + Bonus",
			Description: "Paid from commission plus a flat bonus",
			Employee:    FreelancerWithBonus(900, 1, 100),
			ConfigJSON:  FreelancerWithBonusJSON(900, 1, 100),
			Expected:    thousand(),
		},
	}
}

// LookupScenario finds a scenario by ID.
func LookupScenario(id string) (Scenario, error) {
	for _, s := range Scenarios() {
		if s.ID == id {
			return s, nil
		}
	}
	return Scenario{}, errors.Wrapf(pay.ErrScenarioNotFound, "scenario %q", id)
}

// RunAll runs every scenario.
func RunAll() []ScenarioResult {
	all := Scenarios()
	results := make([]ScenarioResult, len(all))
	for i, s := range all {
		results[i] = s.Run()
	}
	return results
}

func thousand() pay.Amount {
	return pay.NewAmountFromInt(1000, pay.DefaultCurrency)
}
