// File path: internal/compliance/taxes.go
package compliance

import (
	"github.com/truenorth-regtech/truenorth/internal/model"
	"github.com/truenorth-regtech/truenorth/internal/refdata"
)

// PIS/COFINS on imports is a combined flat rate over the customs value.
const pisCofinsRate = 0.1175

// Fallback ad valorem rates for codes outside the bundled nomenclature
// extract.
const (
	defaultIIRate  = 0.14
	defaultIPIRate = 0.10
)

// EstimateTaxes approximates the federal import taxes for an extracted
// invoice. The customs value base is merchandise plus freight and
// insurance when present; per-item II/IPI rates come from the
// nomenclature table, falling back to sector-neutral defaults. This is a
// planning estimate, not a tax engine: ICMS and state benefits are out.
func EstimateTaxes(data *model.ExtractedData) *model.EstimatedTaxes {
	if data == nil || data.TotalValue <= 0 {
		return nil
	}
	base := data.TotalValue
	if data.Freight != nil {
		base += *data.Freight
	}
	if data.Insurance != nil {
		base += *data.Insurance
	}

	var ii, ipi float64
	for _, item := range data.Items {
		itemBase := item.TotalPrice
		if itemBase <= 0 {
			continue
		}
		iiRate, ipiRate := defaultIIRate, defaultIPIRate
		if item.NCMSugerido != nil {
			if entry, ok := refdata.NCMByCode(DigitsOnly(*item.NCMSugerido)); ok {
				iiRate = ParseOrZero(entry.AliquotaII) / 100
				ipiRate = ParseOrZero(entry.AliquotaIPI) / 100
			}
		}
		itemII := itemBase * iiRate
		ii += itemII
		ipi += (itemBase + itemII) * ipiRate
	}
	if ii == 0 && ipi == 0 {
		ii = base * defaultIIRate
		ipi = (base + ii) * defaultIPIRate
	}

	pisCofins := base * pisCofinsRate
	return &model.EstimatedTaxes{
		II:            ii,
		IPI:           ipi,
		PISCofins:     pisCofins,
		TotalImpostos: ii + ipi + pisCofins,
		BaseCalculo:   base,
	}
}
