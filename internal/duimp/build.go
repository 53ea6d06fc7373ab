// File path: internal/duimp/build.go
package duimp

import (
	"github.com/truenorth-regtech/truenorth/internal/compliance"
	"github.com/truenorth-regtech/truenorth/internal/model"
)

// Build assembles the normalized export record: the extracted document is
// the base, the override patch wins field by field, and items are
// renumbered 1-based regardless of their original position. Pure mapping;
// Validate decides whether the result may be exported.
func Build(extracted *model.ExtractedData, ov Overrides) ExportData {
	data := ExportData{
		TipoDeclaracao: "DUIMP",
		ViaTransporte:  "MARITIMA",
	}

	if extracted != nil {
		data.NumeroReferencia = extracted.InvoiceNumber
		data.Moeda = extracted.Currency
		if extracted.Incoterm != nil {
			data.Incoterm = *extracted.Incoterm
		}
		data.Importador = Importador{CNPJ: extracted.Buyer.CNPJ, Nome: extracted.Buyer.Name}
		data.Exportador = Exportador{Nome: extracted.Supplier.Name, Pais: extracted.Supplier.Country}
		data.Totais.ValorMercadoria = extracted.TotalValue
		if extracted.Freight != nil {
			data.Totais.Frete = *extracted.Freight
		}
		if extracted.Insurance != nil {
			data.Totais.Seguro = *extracted.Insurance
		}
		for i, item := range extracted.Items {
			data.Itens = append(data.Itens, itemFromExtracted(i+1, item))
		}
	}

	applyString(&data.NumeroReferencia, ov.NumeroReferencia)
	applyString(&data.DataEmbarque, ov.DataEmbarque)
	applyString(&data.Incoterm, ov.Incoterm)
	applyString(&data.Moeda, ov.Moeda)
	applyString(&data.CodigoURF, ov.CodigoURF)
	applyString(&data.ViaTransporte, ov.ViaTransporte)
	applyString(&data.TipoDeclaracao, ov.TipoDeclaracao)
	if ov.Importador != nil {
		applyString(&data.Importador.CNPJ, ov.Importador.CNPJ)
		applyString(&data.Importador.Nome, ov.Importador.Nome)
		applyString(&data.Importador.UF, ov.Importador.UF)
	}
	if ov.Frete != nil {
		data.Totais.Frete = *ov.Frete
	}
	if ov.Seguro != nil {
		data.Totais.Seguro = *ov.Seguro
	}
	if ov.ValorTotal != nil {
		data.Totais.ValorMercadoria = *ov.ValorTotal
	}

	if len(ov.Itens) > 0 {
		merged := make([]Item, len(ov.Itens))
		for i, patch := range ov.Itens {
			var base Item
			if i < len(data.Itens) {
				base = data.Itens[i]
			}
			base.Sequencial = i + 1
			applyString(&base.NCM, patch.NCM)
			applyString(&base.Descricao, patch.Descricao)
			applyString(&base.Unidade, patch.Unidade)
			applyString(&base.PaisOrigem, patch.PaisOrigem)
			applyFloat(&base.Quantidade, patch.Quantidade)
			applyFloat(&base.ValorUnitario, patch.ValorUnitario)
			applyFloat(&base.ValorTotal, patch.ValorTotal)
			if patch.PesoLiquido != nil {
				base.PesoLiquido = *patch.PesoLiquido
				if base.PesoBruto == 0 {
					base.PesoBruto = *patch.PesoLiquido
				}
			}
			merged[i] = base
		}
		data.Itens = merged
	}

	data.Totais.ValorAduaneiro = data.Totais.ValorMercadoria + data.Totais.Frete + data.Totais.Seguro
	return data
}

func itemFromExtracted(sequencial int, item model.ExtractedItem) Item {
	out := Item{
		Sequencial:    sequencial,
		Descricao:     item.Description,
		Quantidade:    item.Quantity,
		Unidade:       item.Unit,
		ValorUnitario: item.UnitPrice,
		ValorTotal:    item.TotalPrice,
		Anuentes:      item.Anuentes,
	}
	if item.NCMSugerido != nil {
		out.NCM = compliance.DigitsOnly(*item.NCMSugerido)
	}
	if item.PesoKg != nil {
		out.PesoLiquido = *item.PesoKg
		out.PesoBruto = *item.PesoKg
	}
	if item.Origem != nil {
		out.PaisOrigem = *item.Origem
	}
	return out
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func applyFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
