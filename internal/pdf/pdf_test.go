// File path: internal/pdf/pdf_test.go
package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truenorth-regtech/truenorth/internal/duimp"
)

func TestRenderProducesPDF(t *testing.T) {
	data := duimp.ExportData{
		NumeroReferencia: "INV-2025-001",
		DataEmbarque:     "2025-09-01",
		Incoterm:         "FOB",
		Moeda:            "USD",
		CodigoURF:        "0817800",
		ViaTransporte:    "MARITIMA",
		TipoDeclaracao:   "DUIMP",
		Importador:       duimp.Importador{CNPJ: "12.345.678/0001-90", Nome: "Importadora Brasil Ltda", UF: "SP"},
		Exportador:       duimp.Exportador{Nome: "Shenzhen Electronics Co", Pais: "China"},
		Itens: []duimp.Item{{
			Sequencial: 1, NCM: "85171231", Descricao: "Telefone celular",
			Quantidade: 100, Unidade: "UN", ValorUnitario: 50, ValorTotal: 5000, PesoLiquido: 25,
		}},
		Totais: duimp.Totais{ValorMercadoria: 5000, Frete: 400, Seguro: 50, ValorAduaneiro: 5450},
	}

	out, err := Render(data)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "duimp_op-9.pdf", Filename("op-9"))
}
