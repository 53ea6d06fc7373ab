// File path: internal/duimp/duimp_test.go
package duimp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truenorth-regtech/truenorth/internal/model"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func sampleExtracted() *model.ExtractedData {
	return &model.ExtractedData{
		InvoiceNumber: "INV-2025-001",
		Currency:      "USD",
		Incoterm:      strPtr("FOB"),
		TotalValue:    5000,
		Freight:       floatPtr(400),
		Insurance:     floatPtr(50),
		Supplier:      model.Supplier{Name: "Shenzhen Electronics Co", Country: "China"},
		Buyer:         model.Buyer{Name: "Importadora Brasil Ltda", CNPJ: "12.345.678/0001-90"},
		Items: []model.ExtractedItem{
			{
				Description: "Telefone celular",
				Quantity:    100,
				Unit:        "UN",
				UnitPrice:   50,
				TotalPrice:  5000,
				NCMSugerido: strPtr("8517.12.31"),
				PesoKg:      floatPtr(25),
				Origem:      strPtr("China"),
			},
		},
	}
}

func TestBuildOverridesQuantitySplit(t *testing.T) {
	items := []model.LineItem{
		{Description: "Caixas", Quantity: "100 UN", TotalValue: "1.234,56"},
		{Description: "Granel", Quantity: "1.234,56 KG"},
		{Description: "Sem quantidade", Quantity: ""},
	}
	ov := BuildOverrides(DeclarantFields{}, items)
	require.Len(t, ov.Itens, 3)

	require.NotNil(t, ov.Itens[0].Quantidade)
	assert.Equal(t, 100.0, *ov.Itens[0].Quantidade)
	require.NotNil(t, ov.Itens[0].Unidade)
	assert.Equal(t, "UN", *ov.Itens[0].Unidade)
	require.NotNil(t, ov.Itens[0].ValorTotal)
	assert.Equal(t, 1234.56, *ov.Itens[0].ValorTotal)

	require.NotNil(t, ov.Itens[1].Quantidade)
	assert.Equal(t, 1234.56, *ov.Itens[1].Quantidade)
	require.NotNil(t, ov.Itens[1].Unidade)
	assert.Equal(t, "KG", *ov.Itens[1].Unidade)

	assert.Nil(t, ov.Itens[2].Quantidade)
	assert.Nil(t, ov.Itens[2].Unidade)
}

func TestBuildOverridesSequentialNumbering(t *testing.T) {
	items := []model.LineItem{{Description: "a"}, {Description: "b"}, {Description: "c"}}
	ov := BuildOverrides(DeclarantFields{}, items)
	for i, item := range ov.Itens {
		assert.Equal(t, i+1, item.Sequencial)
	}
}

func TestBuildOverridesUnparseableNumberIsAbsent(t *testing.T) {
	ov := BuildOverrides(DeclarantFields{Frete: "n/a", Seguro: ""}, []model.LineItem{{Weight: "pesado"}})
	assert.Nil(t, ov.Frete, "unparseable overrides are absent, never zero")
	assert.Nil(t, ov.Seguro)
	assert.Nil(t, ov.Itens[0].PesoLiquido)
}

func TestBuildOverridesResolvesURFCode(t *testing.T) {
	ov := BuildOverrides(DeclarantFields{URFDespacho: "Santos/SP"}, nil)
	require.NotNil(t, ov.CodigoURF)
	assert.Equal(t, "0817800", *ov.CodigoURF)
}

func TestBuildMergesOverridesOverExtracted(t *testing.T) {
	ov := Overrides{
		DataEmbarque: strPtr("2025-09-01"),
		CodigoURF:    strPtr("0817800"),
		Importador:   &ImportadorOverride{UF: strPtr("SP")},
		Frete:        floatPtr(500),
	}
	data := Build(sampleExtracted(), ov)

	assert.Equal(t, "INV-2025-001", data.NumeroReferencia)
	assert.Equal(t, "2025-09-01", data.DataEmbarque)
	assert.Equal(t, "FOB", data.Incoterm)
	assert.Equal(t, "SP", data.Importador.UF)
	assert.Equal(t, "Importadora Brasil Ltda", data.Importador.Nome)
	assert.Equal(t, 500.0, data.Totais.Frete)
	assert.Equal(t, 5000+500+50.0, data.Totais.ValorAduaneiro)

	require.Len(t, data.Itens, 1)
	assert.Equal(t, 1, data.Itens[0].Sequencial)
	assert.Equal(t, "85171231", data.Itens[0].NCM, "separators stripped from the extracted code")
}

func TestBuildItemPatchWins(t *testing.T) {
	ov := Overrides{
		Itens: []ItemOverride{{
			NCM:         strPtr("85176259"),
			Quantidade:  floatPtr(90),
			PesoLiquido: floatPtr(30),
		}},
	}
	data := Build(sampleExtracted(), ov)
	require.Len(t, data.Itens, 1)
	assert.Equal(t, "85176259", data.Itens[0].NCM)
	assert.Equal(t, 90.0, data.Itens[0].Quantidade)
	assert.Equal(t, 30.0, data.Itens[0].PesoLiquido)
	assert.Equal(t, "Telefone celular", data.Itens[0].Descricao, "untouched fields keep the extracted value")
}

func TestValidateCompleteRecordPasses(t *testing.T) {
	ov := Overrides{DataEmbarque: strPtr("2025-09-01"), CodigoURF: strPtr("0817800")}
	preview := BuildPreview(sampleExtracted(), ov)
	assert.True(t, preview.IsValid)
	assert.Empty(t, preview.ValidationErrors)
}

func TestValidateCollectsAllErrors(t *testing.T) {
	preview := BuildPreview(nil, Overrides{})
	assert.False(t, preview.IsValid)
	require.NotEmpty(t, preview.ValidationErrors)

	joined := strings.Join(preview.ValidationErrors, "\n")
	assert.Contains(t, joined, "Número de referência")
	assert.Contains(t, joined, "CNPJ do importador")
	assert.Contains(t, joined, "ao menos um item")
}

func TestValidateItemRules(t *testing.T) {
	extracted := sampleExtracted()
	extracted.Items[0].NCMSugerido = strPtr("8517")
	extracted.Items[0].PesoKg = nil
	ov := Overrides{DataEmbarque: strPtr("2025-09-01"), CodigoURF: strPtr("0817800")}
	preview := BuildPreview(extracted, ov)

	assert.False(t, preview.IsValid)
	joined := strings.Join(preview.ValidationErrors, "\n")
	assert.Contains(t, joined, "Item 1: NCM deve ter 8 dígitos")
	assert.Contains(t, joined, "Item 1: peso líquido é obrigatório")
}

func TestValidateRejectsUnknownIncoterm(t *testing.T) {
	extracted := sampleExtracted()
	extracted.Incoterm = strPtr("XYZ")
	ov := Overrides{DataEmbarque: strPtr("2025-09-01"), CodigoURF: strPtr("0817800")}
	preview := BuildPreview(extracted, ov)
	assert.False(t, preview.IsValid)
	assert.Contains(t, strings.Join(preview.ValidationErrors, "\n"), `Incoterm "XYZ" não reconhecido`)
}

func TestRenderXML(t *testing.T) {
	ov := Overrides{DataEmbarque: strPtr("2025-09-01"), CodigoURF: strPtr("0817800")}
	data := Build(sampleExtracted(), ov)
	out, err := RenderXML(data)
	require.NoError(t, err)

	s := string(out)
	assert.True(t, strings.HasPrefix(s, "<?xml"), "declaration carries the XML prolog")
	assert.Contains(t, s, "<duimp versao=\"1.0\">")
	assert.Contains(t, s, "<numeroReferencia>INV-2025-001</numeroReferencia>")
	assert.Contains(t, s, "<ncm>85171231</ncm>")
	assert.Contains(t, s, "<codigoURF>0817800</codigoURF>")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "duimp_op-123.xml", Filename("op-123"))
}
