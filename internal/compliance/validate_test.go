// File path: internal/compliance/validate_test.go
package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truenorth-regtech/truenorth/internal/model"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestValidateExtractionNil(t *testing.T) {
	res := ValidateExtraction(nil, 0)
	assert.Equal(t, "BAIXO", res.RiscoGeral)
	assert.Empty(t, res.Erros)
}

func TestValidateExtractionCleanDocument(t *testing.T) {
	data := &model.ExtractedData{
		TotalValue: 1000,
		Items: []model.ExtractedItem{
			{Description: "Válvula", NCMSugerido: strPtr("84818092"), TotalPrice: 1000, PesoKg: floatPtr(40)},
		},
		SetorDetectado: "Máquinas",
	}
	res := ValidateExtraction(data, 0.1)
	assert.Empty(t, res.Erros)
	assert.Equal(t, "BAIXO", res.RiscoGeral)
	assert.Equal(t, 0.0, res.Custos.CustoTotal)
}

func TestValidateExtractionFlagsInvalidNCM(t *testing.T) {
	data := &model.ExtractedData{
		TotalValue: 100,
		Items: []model.ExtractedItem{
			{Description: "Telefone", NCMSugerido: strPtr("8517"), TotalPrice: 100, PesoKg: floatPtr(1)},
		},
	}
	res := ValidateExtraction(data, 0.5)
	require.Len(t, res.Erros, 1)
	assert.Equal(t, "NCM_INVALIDO", res.Erros[0].TipoErro)
	assert.Equal(t, "ALTO", res.RiscoGeral)
	assert.Greater(t, res.Custos.CustoTotal, 0.0)
}

func TestValidateExtractionUnderInvoicing(t *testing.T) {
	data := &model.ExtractedData{
		TotalValue: 5,
		Items: []model.ExtractedItem{
			{Description: "Carga", NCMSugerido: strPtr("84818092"), TotalPrice: 5, PesoKg: floatPtr(10)},
		},
	}
	res := ValidateExtraction(data, 0)
	require.NotEmpty(t, res.Erros)
	assert.Equal(t, "SUBFATURAMENTO", res.Erros[0].TipoErro)
	assert.Equal(t, "CRITICO", res.RiscoGeral)
}

func TestValidateExtractionRegulatedSectorNeedsAnuente(t *testing.T) {
	data := &model.ExtractedData{
		TotalValue: 500,
		Items: []model.ExtractedItem{
			{Description: "Creme", NCMSugerido: strPtr("33049910"), TotalPrice: 500, PesoKg: floatPtr(100)},
		},
		SetorDetectado: "Cosméticos",
	}
	res := ValidateExtraction(data, 0)
	var found bool
	for _, e := range res.Erros {
		if e.TipoErro == "ANUENTE_AUSENTE" {
			found = true
		}
	}
	assert.True(t, found)
	assert.Contains(t, res.AnuentesNecessarios, "ANVISA")
}

func TestValidateExtractionTotalDivergence(t *testing.T) {
	data := &model.ExtractedData{
		TotalValue: 1000,
		Items: []model.ExtractedItem{
			{Description: "Peça", NCMSugerido: strPtr("84818092"), TotalPrice: 700, PesoKg: floatPtr(100)},
		},
	}
	res := ValidateExtraction(data, 0)
	var found bool
	for _, e := range res.Erros {
		if e.TipoErro == "DIVERGENCIA_VALOR" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestEstimateTaxes(t *testing.T) {
	data := &model.ExtractedData{
		TotalValue: 1000,
		Freight:    floatPtr(100),
		Insurance:  floatPtr(10),
		Items: []model.ExtractedItem{
			{NCMSugerido: strPtr("85171231"), TotalPrice: 1000},
		},
	}
	taxes := EstimateTaxes(data)
	require.NotNil(t, taxes)
	assert.Equal(t, 1110.0, taxes.BaseCalculo)
	// II = 1000 * 16%, IPI = (1000 + 160) * 15%
	assert.InDelta(t, 160.0, taxes.II, 0.001)
	assert.InDelta(t, 174.0, taxes.IPI, 0.001)
	assert.InDelta(t, 1110*0.1175, taxes.PISCofins, 0.001)
	assert.InDelta(t, taxes.II+taxes.IPI+taxes.PISCofins, taxes.TotalImpostos, 1e-9)

	assert.Nil(t, EstimateTaxes(nil))
	assert.Nil(t, EstimateTaxes(&model.ExtractedData{}))
}
