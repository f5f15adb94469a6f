package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/warp/pay-engine/staff"
)

// ListScenarios returns every worked example with its computed pay.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	results := staff.RunAll()
	dtos := make([]ScenarioDTO, len(results))
	for i, res := range results {
		dtos[i] = toScenarioDTO(res)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetScenario returns one worked example.
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	s, err := staff.LookupScenario(chi.URLParam(r, "id"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toScenarioDTO(s.Run()))
}
