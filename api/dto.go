/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. Employee documents are
  accepted in the factory's schema (factory.EmployeeJSON) so a document that
  works in a roster file works over HTTP unchanged.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

TYPES:
  Pay:
    PayResultDTO, BatchPayRequest, BatchPayResponse, BatchItemDTO

  Scenarios:
    ScenarioDTO

  Errors:
    ErrorResponse

AMOUNTS:
  Amounts are serialized as JSON numbers. The engine computes exactly in
  decimal; conversion to float happens only here, at the edge.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/employee.go: EmployeeJSON
*/
package api

import (
	"encoding/json"

	"github.com/warp/pay-engine/pay"
	"github.com/warp/pay-engine/staff"
)

// =============================================================================
// PAY
// =============================================================================

// PayResultDTO is the computed pay of one employee.
type PayResultDTO struct {
	Basis      string  `json:"basis"`
	Base       float64 `json:"base"`
	Commission float64 `json:"commission"`
	Total      float64 `json:"total"`
	Currency   string  `json:"currency"`
}

// BatchPayRequest computes several employees in one call. Each entry is an
// employee document in the factory's schema, decoded on its own so a bad
// entry fails only its line.
type BatchPayRequest struct {
	Employees []json.RawMessage `json:"employees"`
}

// BatchItemDTO is one line of a batch response. Exactly one of Result and
// Error is set.
type BatchItemDTO struct {
	Index  int           `json:"index"`
	Result *PayResultDTO `json:"result,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// BatchPayResponse holds per-line results and, per currency, the sum of the
// successful lines.
type BatchPayResponse struct {
	Items  []BatchItemDTO     `json:"items"`
	Totals map[string]float64 `json:"totals"`
	Failed int                `json:"failed"`
}

// =============================================================================
// SCENARIOS
// =============================================================================

// ScenarioDTO represents a worked example with its computed pay.
type ScenarioDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Config      json.RawMessage `json:"config"`
	Expected    float64         `json:"expected"`
	Result      PayResultDTO    `json:"result"`
	Matches     bool            `json:"matches"`
	Note        string          `json:"note,omitempty"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toPayResultDTO(b pay.Breakdown) PayResultDTO {
	return PayResultDTO{
		Basis:      string(b.Basis),
		Base:       b.Base.Float64(),
		Commission: b.Commission.Float64(),
		Total:      b.Total.Float64(),
		Currency:   string(b.Total.Currency),
	}
}

func toScenarioDTO(r staff.ScenarioResult) ScenarioDTO {
	return ScenarioDTO{
		ID:          r.Scenario.ID,
		Name:        r.Scenario.Name,
		Description: r.Scenario.Description,
		Config:      json.RawMessage(r.Scenario.ConfigJSON),
		Expected:    r.Scenario.Expected.Float64(),
		Result:      toPayResultDTO(r.Breakdown),
		Matches:     r.Matches,
		Note:        r.Scenario.Note,
	}
}
