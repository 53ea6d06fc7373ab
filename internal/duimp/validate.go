// File path: internal/duimp/validate.go
package duimp

import (
	"fmt"
	"strings"

	"github.com/truenorth-regtech/truenorth/internal/compliance"
	"github.com/truenorth-regtech/truenorth/internal/model"
	"github.com/truenorth-regtech/truenorth/internal/refdata"
)

// Validate checks the assembled record against the required-field rules
// of the declaration intake. The returned messages are surfaced to the
// user verbatim; a non-empty list blocks XML generation.
func Validate(data ExportData) []string {
	var errs []string

	if strings.TrimSpace(data.NumeroReferencia) == "" {
		errs = append(errs, "Número de referência é obrigatório")
	}
	if strings.TrimSpace(data.DataEmbarque) == "" {
		errs = append(errs, "Data de embarque é obrigatória")
	}
	if data.Incoterm == "" {
		errs = append(errs, "Incoterm é obrigatório")
	} else if !refdata.ValidIncoterm(data.Incoterm) {
		errs = append(errs, fmt.Sprintf("Incoterm %q não reconhecido", data.Incoterm))
	}
	if data.Moeda == "" {
		errs = append(errs, "Moeda negociada é obrigatória")
	}
	if strings.TrimSpace(data.CodigoURF) == "" {
		errs = append(errs, "Código da URF de despacho é obrigatório")
	}

	cnpj := compliance.DigitsOnly(data.Importador.CNPJ)
	switch {
	case cnpj == "":
		errs = append(errs, "CNPJ do importador é obrigatório")
	case len(cnpj) != 14 && len(cnpj) != 11:
		errs = append(errs, "CNPJ/CPF do importador deve ter 14 ou 11 dígitos")
	}
	if strings.TrimSpace(data.Importador.Nome) == "" {
		errs = append(errs, "Nome do importador é obrigatório")
	}
	if strings.TrimSpace(data.Exportador.Nome) == "" {
		errs = append(errs, "Nome do exportador é obrigatório")
	}

	if len(data.Itens) == 0 {
		errs = append(errs, "A declaração precisa de ao menos um item")
	}
	for _, item := range data.Itens {
		if !compliance.ValidNCMFormat(item.NCM) {
			errs = append(errs, fmt.Sprintf("Item %d: NCM deve ter 8 dígitos", item.Sequencial))
		}
		if strings.TrimSpace(item.Descricao) == "" {
			errs = append(errs, fmt.Sprintf("Item %d: descrição é obrigatória", item.Sequencial))
		}
		if item.Quantidade <= 0 {
			errs = append(errs, fmt.Sprintf("Item %d: quantidade deve ser maior que zero", item.Sequencial))
		}
		if item.ValorTotal <= 0 {
			errs = append(errs, fmt.Sprintf("Item %d: valor total deve ser maior que zero", item.Sequencial))
		}
		if item.PesoLiquido <= 0 {
			errs = append(errs, fmt.Sprintf("Item %d: peso líquido é obrigatório", item.Sequencial))
		}
	}

	return errs
}

// BuildPreview assembles and validates in one step, producing the shape
// the preview endpoint returns.
func BuildPreview(extracted *model.ExtractedData, ov Overrides) Preview {
	data := Build(extracted, ov)
	errs := Validate(data)
	if errs == nil {
		errs = []string{}
	}
	return Preview{ExportData: data, ValidationErrors: errs, IsValid: len(errs) == 0}
}
