// File path: internal/api/process_handler.go
package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/truenorth-regtech/truenorth/internal/auth"
	"github.com/truenorth-regtech/truenorth/internal/common"
	"github.com/truenorth-regtech/truenorth/internal/extract"
	"github.com/truenorth-regtech/truenorth/internal/model"
	"github.com/truenorth-regtech/truenorth/internal/sqlite"
	"github.com/truenorth-regtech/truenorth/internal/workflow"
)

// maxUploadBytes bounds the multipart body of /api/upload.
const maxUploadBytes = 10 << 20

type uploadResponse struct {
	OperationID    string               `json:"operationId"`
	File           string               `json:"file"`
	DadosExtraidos *model.ExtractedData `json:"dadosExtraidos"`
	Status         string               `json:"status"`
}

type processResponse struct {
	OperationID    string               `json:"operationId"`
	DadosExtraidos *model.ExtractedData `json:"dadosExtraidos"`
	ProcessingTime float64              `json:"processingTime"`
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("arquivo excede o limite de 10MB"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("campo de arquivo ausente"))
		return
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("ler arquivo: %w", err))
		return
	}
	logger.Info("api: upload received", "file", header.Filename, "bytes", len(content))

	status, _ := workflow.Transition(workflow.StepUpload, workflow.EventFileReceived)
	op := model.Operation{
		UserID:      auth.UserID(r.Context()),
		ArquivoNome: header.Filename,
		ArquivoTipo: header.Header.Get("Content-Type"),
		Status:      string(status),
	}

	data, err := s.extractor.ExtractInvoice(r.Context(), string(content))
	if err != nil {
		// Extraction failed; the flow returns to upload so the user
		// can try a better document.
		status, _ = workflow.Transition(workflow.StepProcessing, workflow.EventFailed)
		op.Status = string(status)
		if _, saveErr := s.store.SaveOperation(r.Context(), op); saveErr != nil {
			logger.Error("api: persist failed upload", "error", saveErr)
		}
		writeError(w, http.StatusUnprocessableEntity, fmt.Errorf("não foi possível extrair os dados do documento: %w", err))
		return
	}

	status, _ = workflow.Transition(workflow.StepProcessing, workflow.EventExtracted)
	op.Status = string(status)
	op.DadosExtraidos = data
	saved, err := s.store.SaveOperation(r.Context(), op)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, uploadResponse{
		OperationID:    saved.ID,
		File:           saved.ArquivoNome,
		DadosExtraidos: saved.DadosExtraidos,
		Status:         saved.Status,
	})
}

// handleProcess re-runs extraction for an operation whose first pass was
// unsatisfying. The original document is not retained, so the stored
// extraction feeds the prompt as structured text.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := chi.URLParam(r, "id")
	op, err := s.store.OperationByID(r.Context(), id, auth.UserID(r.Context()))
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Errorf("operação não encontrada"))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if op.DadosExtraidos == nil {
		writeError(w, http.StatusConflict, fmt.Errorf("operação sem dados extraídos para reprocessar"))
		return
	}
	text := op.DadosExtraidos.DescricaoDI
	if text == "" {
		text = "invoice " + op.DadosExtraidos.InvoiceNumber
	}
	data, err := s.extractor.ExtractInvoice(r.Context(), text)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	op.DadosExtraidos = data
	op.Status = string(workflow.StepSummary)
	if err := s.store.UpdateOperation(r.Context(), op); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, processResponse{
		OperationID:    op.ID,
		DadosExtraidos: data,
		ProcessingTime: time.Since(start).Seconds(),
	})
}

func (s *Server) handleProcessDemo(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	key := chi.URLParam(r, "key")
	text, ok := extract.DemoInvoice(key)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("demo %q não existe", key))
		return
	}
	data, err := s.extractor.ExtractInvoice(r.Context(), text)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	saved, err := s.store.SaveOperation(r.Context(), model.Operation{
		UserID:         s.demoUserID,
		ArquivoNome:    "demo_" + key + ".txt",
		ArquivoTipo:    "text/plain",
		Status:         string(workflow.StepSummary),
		DadosExtraidos: data,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, processResponse{
		OperationID:    saved.ID,
		DadosExtraidos: data,
		ProcessingTime: time.Since(start).Seconds(),
	})
}
