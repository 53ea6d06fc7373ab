// File path: internal/duimp/overrides.go
package duimp

import (
	"strings"

	"github.com/truenorth-regtech/truenorth/internal/compliance"
	"github.com/truenorth-regtech/truenorth/internal/model"
	"github.com/truenorth-regtech/truenorth/internal/refdata"
)

// BuildOverrides maps the declaration form state into the override patch
// the export builder consumes. Pure: no I/O, no validation. Numeric form
// fields follow the locale-tolerant parse-or-absent policy so the
// validator can tell "left blank" apart from "zero"; worksheet quantity
// fields arrive combined as "NUMBER UNIT" and are split here.
func BuildOverrides(fields DeclarantFields, items []model.LineItem) Overrides {
	ov := Overrides{
		NumeroReferencia: optional(fields.NumeroReferencia),
		DataEmbarque:     optional(fields.DataEmbarque),
		Incoterm:         optional(fields.Incoterm),
		Moeda:            optional(fields.Moeda),
		ViaTransporte:    optional(fields.ViaTransporte),
		TipoDeclaracao:   optional(fields.TipoDeclaracao),
		Frete:            compliance.ParseLocale(fields.Frete),
		Seguro:           compliance.ParseLocale(fields.Seguro),
		ValorTotal:       compliance.ParseLocale(fields.ValorTotal),
	}
	if code := refdata.URFCode(fields.URFDespacho); code != "" {
		ov.CodigoURF = &code
	} else {
		ov.CodigoURF = optional(fields.URFDespacho)
	}
	if fields.CPFCNPJ != "" || fields.Nome != "" || fields.UF != "" {
		ov.Importador = &ImportadorOverride{
			CNPJ: optional(fields.CPFCNPJ),
			Nome: optional(fields.Nome),
			UF:   optional(fields.UF),
		}
	}
	for i, item := range items {
		quantity, unit := compliance.SplitQuantity(item.Quantity)
		ov.Itens = append(ov.Itens, ItemOverride{
			// Sequential position in the declaration, not the row id.
			Sequencial:    i + 1,
			NCM:           optional(item.NCM),
			Descricao:     optional(item.Description),
			Quantidade:    quantity,
			Unidade:       unit,
			ValorUnitario: compliance.ParseLocale(item.UnitPrice),
			ValorTotal:    compliance.ParseLocale(item.TotalValue),
			PesoLiquido:   compliance.ParseLocale(item.Weight),
			PaisOrigem:    optional(item.OriginCountry),
		})
	}
	return ov
}

func optional(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}
