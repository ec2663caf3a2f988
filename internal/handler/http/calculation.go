package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lawding/leavecalc-api/internal/domain/calculation"
	"github.com/lawding/leavecalc-api/internal/handler/http/response"
	calculationService "github.com/lawding/leavecalc-api/internal/service/calculation"
)

type CalculationHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
}

type CalculationHandlerImpl struct {
	calculationService calculationService.Service
}

func NewCalculationHandler(svc calculationService.Service) CalculationHandler {
	return &CalculationHandlerImpl{calculationService: svc}
}

// Calculate implements CalculationHandler.
func (h *CalculationHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req calculation.CalculateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Calculate decode error", "error", err)
		response.BadRequest(w, "BAD_REQUEST", "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.calculationService.Calculate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
