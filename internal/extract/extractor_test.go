// File path: internal/extract/extractor_test.go
package extract

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truenorth-regtech/truenorth/internal/llm"
	"github.com/truenorth-regtech/truenorth/internal/model"
)

type scriptedProvider struct {
	response string
	err      error
	prompts  []string
}

func (s *scriptedProvider) Chat(ctx context.Context, messages []llm.Message) (string, error) {
	for _, m := range messages {
		s.prompts = append(s.prompts, m.Content)
	}
	return s.response, s.err
}

func (s *scriptedProvider) Name() string { return "scripted" }

const extractionJSON = `{
  "invoice_number": "INV-77",
  "invoice_date": "2025-07-01",
  "supplier": {"name": "Acme Trading", "address": "1 Harbour Rd", "country": "China"},
  "buyer": {"name": "Importadora XPTO", "cnpj": "12.345.678/0001-90"},
  "incoterm": "FOB",
  "currency": "USD",
  "total_value": 1000,
  "freight": 100,
  "insurance": 10,
  "items": [
    {"description": "Roteador WiFi", "quantity": 10, "unit": "UN",
     "unit_price": 80, "total_price": 800,
     "ncm_sugerido": "8517.62.59", "ncm_confianca": "ALTA",
     "peso_kg": 12, "origem": "China"},
    {"description": "Cabo de rede", "quantity": 50, "unit": "UN",
     "unit_price": 4, "total_price": 200,
     "ncm_sugerido": null, "ncm_confianca": "BAIXA",
     "peso_kg": 5, "origem": "China"}
  ],
  "observacoes": [],
  "campos_faltando": [],
  "setor_detectado": "Eletrônicos"
}`

func TestExtractInvoiceParsesAndEnriches(t *testing.T) {
	provider := &scriptedProvider{response: extractionJSON}
	data, err := New(provider).ExtractInvoice(context.Background(), "COMMERCIAL INVOICE INV-77 ...")
	require.NoError(t, err)

	assert.Equal(t, "INV-77", data.InvoiceNumber)
	require.Len(t, data.Items, 2)

	first := data.Items[0]
	assert.Nil(t, first.ConfidenceNote)
	assert.NotEmpty(t, first.NCMDescricao, "known code gains its nomenclature description")

	second := data.Items[1]
	require.NotNil(t, second.ConfidenceNote)
	assert.Equal(t, "error", second.ConfidenceNote.Level)
	assert.Equal(t, "not_found", second.ConfidenceNote.Reason)

	require.NotNil(t, data.ImpostosEstimados)
	assert.Equal(t, 1110.0, data.ImpostosEstimados.BaseCalculo)
	assert.Contains(t, data.DescricaoDI, "01 - Roteador WiFi (NCM 85176259)")
}

func TestExtractInvoiceStripsCodeFence(t *testing.T) {
	provider := &scriptedProvider{response: "```json\n" + extractionJSON + "\n```"}
	data, err := New(provider).ExtractInvoice(context.Background(), "invoice text")
	require.NoError(t, err)
	assert.Equal(t, "INV-77", data.InvoiceNumber)
}

func TestExtractInvoiceRejectsEmptyDocument(t *testing.T) {
	provider := &scriptedProvider{response: extractionJSON}
	_, err := New(provider).ExtractInvoice(context.Background(), "   ")
	assert.Error(t, err)
	assert.Empty(t, provider.prompts, "provider is not called for empty input")
}

func TestExtractInvoicePropagatesProviderError(t *testing.T) {
	provider := &scriptedProvider{err: errors.New("upstream down")}
	_, err := New(provider).ExtractInvoice(context.Background(), "invoice text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream down")
}

func TestExtractInvoiceRejectsNonJSON(t *testing.T) {
	provider := &scriptedProvider{response: "desculpe, não consegui ler o documento"}
	_, err := New(provider).ExtractInvoice(context.Background(), "invoice text")
	assert.Error(t, err)
}

func TestEnrichFlagsGenericCode(t *testing.T) {
	code := "21069000"
	data := &model.ExtractedData{
		TotalValue: 100,
		Items: []model.ExtractedItem{{
			Description: "Suplemento", TotalPrice: 100,
			NCMSugerido: &code, NCMConfianca: model.ConfidenceHigh,
		}},
	}
	Enrich(data)
	require.NotNil(t, data.Items[0].ConfidenceNote)
	assert.Equal(t, "warning", data.Items[0].ConfidenceNote.Level)
	assert.Equal(t, "generic_ncm", data.Items[0].ConfidenceNote.Reason)
}

func TestEnrichFlagsLowConfidence(t *testing.T) {
	code := "85176259"
	data := &model.ExtractedData{
		TotalValue: 100,
		Items: []model.ExtractedItem{{
			Description: "Roteador", TotalPrice: 100,
			NCMSugerido: &code, NCMConfianca: model.ConfidenceLow,
		}},
	}
	Enrich(data)
	require.NotNil(t, data.Items[0].ConfidenceNote)
	assert.Equal(t, "warning", data.Items[0].ConfidenceNote.Level)
}

func TestEnrichCollectsOperationAgencies(t *testing.T) {
	phone := "85171231"
	data := &model.ExtractedData{
		TotalValue:     100,
		SetorDetectado: "Alimentos",
		Items: []model.ExtractedItem{{
			Description: "Telefone", TotalPrice: 100,
			NCMSugerido: &phone, NCMConfianca: model.ConfidenceHigh,
		}},
	}
	Enrich(data)
	assert.Contains(t, data.AnuentesOperacao, "ANATEL", "item-level agency from the nomenclature table")
	assert.Contains(t, data.AnuentesOperacao, "MAPA", "sector-level agency")
	assert.Contains(t, data.AnuentesOperacao, "ANVISA")
}

func TestEnrichUnderInvoiceAlert(t *testing.T) {
	weight := 500.0
	data := &model.ExtractedData{
		TotalValue: 600,
		Items: []model.ExtractedItem{{
			Description: "Granel barato", TotalPrice: 600, PesoKg: &weight,
		}},
	}
	Enrich(data)
	require.NotNil(t, data.AlertaSubfaturamento)
	assert.Contains(t, *data.AlertaSubfaturamento, "subfaturamento")
	assert.Contains(t, *data.AlertaSubfaturamento, "Granel barato")
}

func TestEnrichAtFloorIsNotFlagged(t *testing.T) {
	weight := 300.0
	data := &model.ExtractedData{
		TotalValue: 600,
		Items: []model.ExtractedItem{{
			Description: "No limite", TotalPrice: 600, PesoKg: &weight,
		}},
	}
	Enrich(data)
	assert.Nil(t, data.AlertaSubfaturamento, "exactly at the floor is acceptable")
}

func TestEnrichRecordsMissingFields(t *testing.T) {
	data := &model.ExtractedData{
		TotalValue: 100,
		Items:      []model.ExtractedItem{{Description: "Sem peso", TotalPrice: 100}},
	}
	Enrich(data)
	joined := strings.Join(data.CamposFaltando, ",")
	assert.Contains(t, joined, "incoterm")
	assert.Contains(t, joined, "freight")
	assert.Contains(t, joined, "peso_kg")
}

func TestDemoInvoiceLookup(t *testing.T) {
	text, ok := DemoInvoice("eletronicos")
	require.True(t, ok)
	assert.Contains(t, text, "COMMERCIAL INVOICE")

	_, ok = DemoInvoice("inexistente")
	assert.False(t, ok)

	assert.Len(t, DemoKeys(), 3)
}
