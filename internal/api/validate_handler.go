// File path: internal/api/validate_handler.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/truenorth-regtech/truenorth/internal/auth"
	"github.com/truenorth-regtech/truenorth/internal/common"
	"github.com/truenorth-regtech/truenorth/internal/compliance"
	"github.com/truenorth-regtech/truenorth/internal/model"
	"github.com/truenorth-regtech/truenorth/internal/sqlite"
)

// reviewMinutesPerItem estimates the manual conference time the automated
// check replaces: a fixed triage slot plus per-item review.
const (
	reviewBaseMinutes    = 30.0
	reviewMinutesPerItem = 15.0
)

type validateRequest struct {
	NonComplianceRate float64 `json:"nonComplianceRate"`
}

type validateResponse struct {
	OperationID string `json:"operationId"`
	model.ValidationResult
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, fmt.Errorf("corpo da requisição inválido"))
		return
	}
	op, err := s.store.OperationByID(r.Context(), chi.URLParam(r, "id"), auth.UserID(r.Context()))
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Errorf("operação não encontrada"))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if op.DadosExtraidos == nil {
		writeError(w, http.StatusConflict, fmt.Errorf("operação ainda não possui dados extraídos"))
		return
	}

	result := compliance.ValidateExtraction(op.DadosExtraidos, req.NonComplianceRate)

	op.DadosValidados = &result
	op.Erros = result.Erros
	cost := result.Custos.CustoTotal
	op.CustoTotalErros = &cost
	saved := reviewBaseMinutes + reviewMinutesPerItem*float64(len(op.DadosExtraidos.Items))
	op.TempoEconomizadoMin = &saved
	if err := s.store.UpdateOperation(r.Context(), op); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Info("api: operation validated",
		"operation", op.ID, "erros", len(result.Erros), "risco", result.RiscoGeral)
	writeJSON(w, http.StatusOK, validateResponse{OperationID: op.ID, ValidationResult: result})
}

type simulateRequest struct {
	Operation         model.OperationContext    `json:"operation"`
	Items             []model.LineItem          `json:"items"`
	Compliance        model.ComplianceSelection `json:"compliance"`
	NonComplianceRate float64                   `json:"nonComplianceRate"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("corpo da requisição inválido"))
		return
	}
	result := compliance.Simulate(req.Operation, req.Items, req.Compliance, req.NonComplianceRate)
	writeJSON(w, http.StatusOK, result)
}
