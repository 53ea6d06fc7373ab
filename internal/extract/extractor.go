// File path: internal/extract/extractor.go

// Package extract turns raw commercial-invoice text into the structured
// declaration data the rest of the pipeline consumes.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/truenorth-regtech/truenorth/internal/common"
	"github.com/truenorth-regtech/truenorth/internal/llm"
	"github.com/truenorth-regtech/truenorth/internal/model"
)

// Extractor drives the AI provider and post-processes its answer.
type Extractor struct {
	provider llm.Provider
}

func New(provider llm.Provider) *Extractor {
	return &Extractor{provider: provider}
}

const systemPrompt = `Você é um especialista em comércio exterior brasileiro.
Extraia os dados estruturados de uma fatura comercial (commercial invoice)
para preparação de uma DUIMP. Responda APENAS com JSON válido, sem
comentários e sem cercas de código.`

func buildPrompt(documentText string) string {
	var b strings.Builder
	b.WriteString("Extraia os campos da invoice abaixo no seguinte formato JSON:\n")
	b.WriteString(`{
  "invoice_number": string,
  "invoice_date": "YYYY-MM-DD",
  "supplier": {"name": string, "address": string, "country": string},
  "buyer": {"name": string, "cnpj": string},
  "incoterm": string|null,
  "currency": string,
  "total_value": number,
  "freight": number|null,
  "insurance": number|null,
  "items": [{"description": string, "quantity": number, "unit": string,
             "unit_price": number, "total_price": number,
             "ncm_sugerido": string|null, "ncm_confianca": "ALTA"|"MEDIA"|"BAIXA",
             "peso_kg": number|null, "origem": string|null}],
  "observacoes": [string],
  "campos_faltando": [string],
  "setor_detectado": string
}`)
	b.WriteString("\n\nSugira o NCM de 8 dígitos quando o documento não o trouxer, ")
	b.WriteString("marcando ncm_confianca conforme sua certeza.\n\n--- INVOICE ---\n")
	b.WriteString(documentText)
	return b.String()
}

// codeFence strips a ```json ... ``` wrapper some models insist on.
var codeFence = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

// ExtractInvoice runs the full extraction: prompt, parse, enrich.
func (e *Extractor) ExtractInvoice(ctx context.Context, documentText string) (*model.ExtractedData, error) {
	logger := common.Logger()
	if strings.TrimSpace(documentText) == "" {
		return nil, fmt.Errorf("document text is empty")
	}
	logger.Info("extract: requesting extraction", "provider", e.provider.Name(), "chars", len(documentText))
	response, err := e.provider.Chat(ctx, []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: buildPrompt(documentText)},
	})
	if err != nil {
		return nil, fmt.Errorf("ai extraction: %w", err)
	}
	data, err := parseResponse(response)
	if err != nil {
		logger.Error("extract: unparseable provider response", "error", err)
		return nil, err
	}
	Enrich(data)
	logger.Info("extract: extraction complete", "items", len(data.Items), "sector", data.SetorDetectado)
	return data, nil
}

func parseResponse(response string) (*model.ExtractedData, error) {
	trimmed := strings.TrimSpace(response)
	if m := codeFence.FindStringSubmatch(trimmed); m != nil {
		trimmed = m[1]
	}
	var data model.ExtractedData
	if err := json.Unmarshal([]byte(trimmed), &data); err != nil {
		return nil, fmt.Errorf("parse extraction response: %w", err)
	}
	if data.Items == nil {
		data.Items = []model.ExtractedItem{}
	}
	if data.Observacoes == nil {
		data.Observacoes = []string{}
	}
	if data.CamposFaltando == nil {
		data.CamposFaltando = []string{}
	}
	return &data, nil
}
