/*
handlers.go - HTTP API handlers for the pay engine

PURPOSE:
  Exposes pay computation via a stateless REST API. Every request carries
  the full employee configuration; nothing is stored between requests.

ENDPOINTS:
  Health:
    GET    /api/health                 Liveness check

  Pay:
    POST   /api/pay                    Compute pay for one employee document
    POST   /api/pay/batch              Compute pay for a list of documents

  Bases:
    GET    /api/bases                  Registered base pay kinds

  Scenarios:
    GET    /api/scenarios              Worked examples with computed pay
    GET    /api/scenarios/{id}         One worked example

REQUEST FLOW:
  1. Limit and read the body
  2. Build pay.Employee through the factory (validation happens here)
  3. Compute the breakdown
  4. Serialize response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed document, unknown base kind, negative terms in strict mode
  - 404: Unknown scenario
  - 413: Body larger than the configured limit
  - 500: Anything else

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Scenario handlers
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/warp/pay-engine/factory"
	"github.com/warp/pay-engine/pay"
)

const defaultMaxBodyBytes = 1 << 20

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Factory      *factory.EmployeeFactory
	Logger       *zap.Logger
	MaxBodyBytes int64
}

// NewHandler creates a handler around the given factory.
func NewHandler(f *factory.EmployeeFactory, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Factory:      f,
		Logger:       logger,
		MaxBodyBytes: defaultMaxBodyBytes,
	}
}

// =============================================================================
// HEALTH
// =============================================================================

// Health reports that the service is up.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// PAY HANDLERS
// =============================================================================

// ComputePay computes the pay of the employee described by the body.
func (h *Handler) ComputePay(w http.ResponseWriter, r *http.Request) {
	body, err := h.readBody(w, r)
	if err != nil {
		h.writeBodyError(w, err)
		return
	}

	emp, err := h.Factory.ParseEmployee(string(body))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPayResultDTO(emp.Breakdown()))
}

// ComputeBatch computes every document in the body. A bad document fails
// only its own line.
func (h *Handler) ComputeBatch(w http.ResponseWriter, r *http.Request) {
	body, err := h.readBody(w, r)
	if err != nil {
		h.writeBodyError(w, err)
		return
	}

	var req BatchPayRequest
	if err := factory.DecodeStrictJSON(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp := BatchPayResponse{
		Items:  make([]BatchItemDTO, len(req.Employees)),
		Totals: map[string]float64{},
	}
	sums := map[pay.Currency]decimal.Decimal{}

	for i, doc := range req.Employees {
		resp.Items[i].Index = i

		emp, err := h.Factory.ParseEmployee(string(doc))
		if err != nil {
			resp.Items[i].Error = err.Error()
			resp.Failed++
			continue
		}

		b := emp.Breakdown()
		result := toPayResultDTO(b)
		resp.Items[i].Result = &result
		sums[b.Total.Currency] = sums[b.Total.Currency].Add(b.Total.Value)
	}

	for currency, sum := range sums {
		resp.Totals[string(currency)] = sum.InexactFloat64()
	}

	h.Logger.Debug("batch computed",
		zap.Int("employees", len(req.Employees)),
		zap.Int("failed", resp.Failed),
		zap.String("request_id", RequestIDFromContext(r.Context())))

	writeJSON(w, http.StatusOK, resp)
}

// ListBases returns the registered base pay kinds.
func (h *Handler) ListBases(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, factory.ListBases())
}

// =============================================================================
// HELPERS
// =============================================================================

var errBodyTooLarge = errors.New("request body too large")

func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	limit := h.MaxBodyBytes
	if limit <= 0 {
		limit = defaultMaxBodyBytes
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errBodyTooLarge
		}
		return nil, err
	}
	return body, nil
}

func (h *Handler) writeBodyError(w http.ResponseWriter, err error) {
	if errors.Is(err, errBodyTooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "Request body too large", nil)
		return
	}
	writeError(w, http.StatusBadRequest, "Failed to read request body", err)
}

func (h *Handler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case pay.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "Invalid employee configuration", err)
	case pay.IsNotFound(err):
		writeError(w, http.StatusNotFound, "Not found", err)
	default:
		h.Logger.Error("request failed",
			zap.Error(err),
			zap.String("path", r.URL.Path),
			zap.String("request_id", RequestIDFromContext(r.Context())))
		writeError(w, http.StatusInternalServerError, "Internal error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
