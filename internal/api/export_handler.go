// File path: internal/api/export_handler.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"

	"github.com/truenorth-regtech/truenorth/internal/auth"
	"github.com/truenorth-regtech/truenorth/internal/common"
	"github.com/truenorth-regtech/truenorth/internal/duimp"
	"github.com/truenorth-regtech/truenorth/internal/model"
	"github.com/truenorth-regtech/truenorth/internal/pdf"
	"github.com/truenorth-regtech/truenorth/internal/sqlite"
)

// exportRequest is the optional body of the export endpoints: the raw
// declaration form plus the edited worksheet rows. A GET (or an empty
// body) exports the stored extraction untouched.
type exportRequest struct {
	DuimpFields duimp.DeclarantFields `json:"duimpFields"`
	Items       []model.LineItem      `json:"items"`
}

func (s *Server) exportPreview(r *http.Request) (model.Operation, duimp.Preview, error) {
	op, err := s.store.OperationByID(r.Context(), chi.URLParam(r, "id"), auth.UserID(r.Context()))
	if err != nil {
		return model.Operation{}, duimp.Preview{}, err
	}
	var req exportRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			return model.Operation{}, duimp.Preview{}, fmt.Errorf("corpo da requisição inválido")
		}
	}
	ov := duimp.BuildOverrides(req.DuimpFields, req.Items)
	return op, duimp.BuildPreview(op.DadosExtraidos, ov), nil
}

func (s *Server) handleExportPreview(w http.ResponseWriter, r *http.Request) {
	_, preview, err := s.exportPreview(r)
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Errorf("operação não encontrada"))
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, preview)
}

func (s *Server) handleExportXML(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	op, preview, err := s.exportPreview(r)
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Errorf("operação não encontrada"))
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	// Validation failures block generation outright.
	if !preview.IsValid {
		logger.Warn("api: xml export blocked", "operation", op.ID, "errors", len(preview.ValidationErrors))
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":            "dados da declaração incompletos ou inválidos",
			"validationErrors": preview.ValidationErrors,
		})
		return
	}
	out, err := duimp.RenderXML(preview.ExportData)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Info("api: xml exported", "operation", op.ID, "bytes", len(out))
	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", duimp.Filename(op.ID)))
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	op, preview, err := s.exportPreview(r)
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Errorf("operação não encontrada"))
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	out, err := pdf.Render(preview.ExportData)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Info("api: pdf exported", "operation", op.ID, "bytes", len(out))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", pdf.Filename(op.ID)))
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}
