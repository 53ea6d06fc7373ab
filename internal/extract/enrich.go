// File path: internal/extract/enrich.go
package extract

import (
	"fmt"
	"sort"
	"strings"

	"github.com/truenorth-regtech/truenorth/internal/compliance"
	"github.com/truenorth-regtech/truenorth/internal/model"
	"github.com/truenorth-regtech/truenorth/internal/refdata"
)

// underInvoiceFloorPerKg mirrors the revenue agency's minimum declared
// value screening parameter, in BRL per kilogram.
const underInvoiceFloorPerKg = 2.0

// Enrich annotates freshly extracted data with everything the AI does not
// know: nomenclature descriptions, agency requirements, review alerts, tax
// estimates and the assembled customs description.
func Enrich(data *model.ExtractedData) {
	if data == nil {
		return
	}
	agencySet := map[string]bool{}
	for i := range data.Items {
		item := &data.Items[i]
		annotateItem(item)
		for _, sigla := range item.Anuentes {
			agencySet[sigla] = true
		}
	}

	for _, sigla := range refdata.AnuentesForSector(data.SetorDetectado) {
		agencySet[sigla] = true
	}
	data.AnuentesOperacao = sortedKeys(agencySet)

	data.ImpostosEstimados = compliance.EstimateTaxes(data)
	data.DescricaoDI = buildDescricaoDI(data)
	data.AlertaSubfaturamento = underInvoiceAlert(data.Items)
	appendMissingFields(data)
}

// annotateItem fills the nomenclature description and agency list for a
// suggested code and attaches a review alert when the suggestion is weak.
func annotateItem(item *model.ExtractedItem) {
	if item.NCMSugerido == nil || strings.TrimSpace(*item.NCMSugerido) == "" {
		item.ConfidenceNote = &model.ConfidenceAlert{
			Level:   "error",
			Message: "NCM não identificado; classificação manual necessária",
			Reason:  "not_found",
		}
		return
	}
	code := compliance.DigitsOnly(*item.NCMSugerido)
	if entry, ok := refdata.NCMByCode(code); ok {
		item.NCMDescricao = entry.Descricao
		if len(entry.Anuentes) > 0 {
			item.Anuentes = append([]string{}, entry.Anuentes...)
		}
	}
	if strings.HasSuffix(code, "0000") || strings.HasSuffix(code, "00") {
		item.ConfidenceNote = &model.ConfidenceAlert{
			Level:   "warning",
			Message: fmt.Sprintf("NCM %s é genérico; verifique se existe classificação mais específica", code),
			Reason:  "generic_ncm",
		}
		return
	}
	if item.NCMConfianca == model.ConfidenceLow {
		item.ConfidenceNote = &model.ConfidenceAlert{
			Level:   "warning",
			Message: fmt.Sprintf("Classificação %s sugerida com baixa confiança; revise antes de registrar", code),
			Reason:  "generic_ncm",
		}
	}
}

// buildDescricaoDI assembles the free-text merchandise description the
// import declaration carries, one line per item.
func buildDescricaoDI(data *model.ExtractedData) string {
	if len(data.Items) == 0 {
		return ""
	}
	lines := make([]string, 0, len(data.Items))
	for i, item := range data.Items {
		line := fmt.Sprintf("%02d - %s", i+1, strings.TrimSpace(item.Description))
		if item.NCMSugerido != nil {
			line += fmt.Sprintf(" (NCM %s)", compliance.DigitsOnly(*item.NCMSugerido))
		}
		if item.Origem != nil && *item.Origem != "" {
			line += ", origem " + *item.Origem
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// underInvoiceAlert flags items whose declared unit value falls under the
// per-kilogram screening floor. Items without weight are skipped.
func underInvoiceAlert(items []model.ExtractedItem) *string {
	var flagged []string
	for _, item := range items {
		if item.PesoKg == nil || *item.PesoKg <= 0 || item.TotalPrice <= 0 {
			continue
		}
		if item.TotalPrice / *item.PesoKg < underInvoiceFloorPerKg {
			flagged = append(flagged, item.Description)
		}
	}
	if len(flagged) == 0 {
		return nil
	}
	msg := fmt.Sprintf(
		"Possível subfaturamento: valor declarado abaixo de R$ %.2f/kg para: %s",
		underInvoiceFloorPerKg, strings.Join(flagged, "; "))
	return &msg
}

// appendMissingFields adds structurally absent declaration fields to the
// list the extraction already reported, without duplicating entries.
func appendMissingFields(data *model.ExtractedData) {
	present := map[string]bool{}
	for _, f := range data.CamposFaltando {
		present[f] = true
	}
	add := func(field string) {
		if !present[field] {
			data.CamposFaltando = append(data.CamposFaltando, field)
			present[field] = true
		}
	}
	if data.Incoterm == nil || *data.Incoterm == "" {
		add("incoterm")
	}
	if data.Freight == nil {
		add("freight")
	}
	if data.Insurance == nil {
		add("insurance")
	}
	for _, item := range data.Items {
		if item.PesoKg == nil {
			add("peso_kg")
			break
		}
	}
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
