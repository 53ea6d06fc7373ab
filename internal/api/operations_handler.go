// File path: internal/api/operations_handler.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"

	"github.com/truenorth-regtech/truenorth/internal/auth"
	"github.com/truenorth-regtech/truenorth/internal/common"
	"github.com/truenorth-regtech/truenorth/internal/compliance"
	"github.com/truenorth-regtech/truenorth/internal/model"
	"github.com/truenorth-regtech/truenorth/internal/refdata"
	"github.com/truenorth-regtech/truenorth/internal/sqlite"
)

func (s *Server) handleListOperations(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	operations, err := s.store.ListOperations(r.Context(), auth.UserID(r.Context()), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"operations": operations})
}

func (s *Server) handleGetOperation(w http.ResponseWriter, r *http.Request) {
	op, err := s.store.OperationByID(r.Context(), chi.URLParam(r, "id"), auth.UserID(r.Context()))
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Errorf("operação não encontrada"))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, op)
}

func (s *Server) handleDeleteOperation(w http.ResponseWriter, r *http.Request) {
	err := s.store.DeleteOperation(r.Context(), chi.URLParam(r, "id"), auth.UserID(r.Context()))
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Errorf("operação não encontrada"))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleOperationsStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.OperationsStats(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

type patchNCMRequest struct {
	NCM string `json:"ncm"`
}

// handlePatchItemNCM applies a manual classification correction to one
// extracted item. Only well-formed 8-digit codes are accepted.
func (s *Server) handlePatchItemNCM(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req patchNCMRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("corpo da requisição inválido"))
		return
	}
	code := compliance.DigitsOnly(req.NCM)
	if !compliance.ValidNCMFormat(code) {
		writeError(w, http.StatusBadRequest, fmt.Errorf("NCM deve ter exatamente 8 dígitos"))
		return
	}
	idx, err := strconv.Atoi(chi.URLParam(r, "idx"))
	if err != nil || idx < 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("índice de item inválido"))
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
	if op.DadosExtraidos == nil || idx >= len(op.DadosExtraidos.Items) {
		writeError(w, http.StatusNotFound, fmt.Errorf("item %d não existe nesta operação", idx))
		return
	}

	item := &op.DadosExtraidos.Items[idx]
	item.NCMSugerido = &code
	item.NCMConfianca = model.ConfidenceHigh
	item.ConfidenceNote = nil
	item.NCMDescricao = ""
	item.Anuentes = nil
	if entry, ok := refdata.NCMByCode(code); ok {
		item.NCMDescricao = entry.Descricao
		if len(entry.Anuentes) > 0 {
			item.Anuentes = append([]string{}, entry.Anuentes...)
		}
	}
	if err := s.store.UpdateOperation(r.Context(), op); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Info("api: item ncm corrected", "operation", op.ID, "item", idx, "ncm", code)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"operationId": op.ID,
		"item":        *item,
	})
}
