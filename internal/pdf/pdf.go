// File path: internal/pdf/pdf.go

// Package pdf renders the draft declaration summary document.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/truenorth-regtech/truenorth/internal/duimp"
)

// Render produces the printable draft of a declaration.
func Render(data duimp.ExportData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr("Rascunho de Declaração de Importação"))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	field := func(label, value string) {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(55, 7, tr(label))
		pdf.SetFont("Arial", "", 11)
		pdf.Cell(0, 7, tr(value))
		pdf.Ln(7)
	}
	field("Referência:", data.NumeroReferencia)
	field("Data de embarque:", data.DataEmbarque)
	field("Incoterm:", data.Incoterm)
	field("Moeda:", data.Moeda)
	field("URF de despacho:", data.CodigoURF)
	field("Via de transporte:", data.ViaTransporte)
	field("Importador:", fmt.Sprintf("%s (%s)", data.Importador.Nome, data.Importador.CNPJ))
	field("Exportador:", fmt.Sprintf("%s - %s", data.Exportador.Nome, data.Exportador.Pais))
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, tr("Itens"))
	pdf.Ln(9)

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	headers := []struct {
		label string
		width float64
	}{
		{"Seq", 10}, {"NCM", 22}, {"Descrição", 78}, {"Qtd", 20}, {"Peso (kg)", 25}, {"Valor", 35},
	}
	for _, h := range headers {
		pdf.CellFormat(h.width, 7, tr(h.label), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, item := range data.Itens {
		desc := item.Descricao
		if len(desc) > 48 {
			desc = desc[:45] + "..."
		}
		pdf.CellFormat(10, 7, fmt.Sprintf("%d", item.Sequencial), "1", 0, "C", false, 0, "")
		pdf.CellFormat(22, 7, item.NCM, "1", 0, "C", false, 0, "")
		pdf.CellFormat(78, 7, tr(desc), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%.0f %s", item.Quantidade, item.Unidade), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%.2f", item.PesoLiquido), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", item.ValorTotal), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	field("Valor da mercadoria:", fmt.Sprintf("%s %.2f", data.Moeda, data.Totais.ValorMercadoria))
	field("Frete:", fmt.Sprintf("%s %.2f", data.Moeda, data.Totais.Frete))
	field("Seguro:", fmt.Sprintf("%s %.2f", data.Moeda, data.Totais.Seguro))
	field("Valor aduaneiro:", fmt.Sprintf("%s %.2f", data.Moeda, data.Totais.ValorAduaneiro))

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 8)
	pdf.MultiCell(0, 5, tr("Documento de conferência gerado automaticamente. Não substitui o registro oficial no Portal Único Siscomex."), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename names the downloadable draft for an operation.
func Filename(operationID string) string {
	return fmt.Sprintf("duimp_%s.pdf", operationID)
}
