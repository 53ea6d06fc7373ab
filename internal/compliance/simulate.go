// File path: internal/compliance/simulate.go
package compliance

import (
	"fmt"

	"github.com/truenorth-regtech/truenorth/internal/model"
)

// Fixed business constants of the impact estimator. These reproduce the
// calibrated demo parameters and must not be re-derived.
const (
	invalidNCMLowPerItem  = 500.0
	invalidNCMHighPerItem = 2000.0

	underInvoiceFloorPerKg = 2.0
	underInvoiceLow        = 5000.0
	underInvoiceHigh       = 15000.0

	missingAnuenteLow  = 2000.0
	missingAnuenteHigh = 5000.0

	missingLPCOLow  = 10000.0
	missingLPCOHigh = 40000.0

	avoidableShare  = 0.85
	finesShare      = 0.40
	demurrageShare  = 0.40
	operationsShare = 0.20

	totalImpactFactor = 1.2
)

// regulatedSectors is the fixed set whose operations require an agency
// endorsement and a pre-filed LPCO. Narrower than the sector→anuente
// reference mapping on purpose: only these three trip the estimator.
var regulatedSectors = map[string]bool{
	"Alimentos":  true,
	"Cosméticos": true,
	"Químicos":   true,
}

// NoRiskFinding is the sentinel emitted when no rule fires. Risks is
// never an empty list.
const NoRiskFinding = "Nenhum risco crítico identificado nesta operação"

// CostBreakdown splits the estimated avoidable cost.
type CostBreakdown struct {
	Fines      float64 `json:"fines"`
	Demurrage  float64 `json:"demurrage"`
	Operations float64 `json:"operations"`
	Total      float64 `json:"total"`
}

// SimulationResult is the outcome of one estimator run. The
// nonComplianceRate that produced it is retained so item-level views can
// recompute per-item scores consistently with this run.
type SimulationResult struct {
	Risks             []string      `json:"risks"`
	ImpactRangeLabel  string        `json:"impactRangeLabel"`
	TotalImpactLabel  string        `json:"totalImpactLabel"`
	AvoidedLabel      string        `json:"avoidedLabel"`
	CostBreakdown     CostBreakdown `json:"costBreakdown"`
	NonComplianceRate float64       `json:"nonComplianceRate"`
}

// Simulate runs the rule checklist over one operation and estimates the
// avoidable financial impact. Every rule is evaluated; none short-circuits
// another. The function is pure and never fails: malformed numeric fields
// read as zero.
func Simulate(op model.OperationContext, items []model.LineItem, sel model.ComplianceSelection, nonComplianceRate float64) SimulationResult {
	var risks []string
	var low, high float64

	if nonComplianceRate < 0 {
		nonComplianceRate = 0
	}
	if nonComplianceRate > 1 {
		nonComplianceRate = 1
	}

	// Rule 1: invalid or high-risk classification codes.
	invalid := 0
	for _, item := range items {
		if Score(item.NCM, nonComplianceRate) >= 85 {
			invalid++
		}
	}
	if invalid > 0 {
		risks = append(risks, fmt.Sprintf("%d item(ns) com NCM inválido ou de alto risco", invalid))
		low += invalidNCMLowPerItem * float64(invalid)
		high += invalidNCMHighPerItem * float64(invalid)
	}

	// Rule 2: missing classification. Informational, no monetary impact.
	missing := 0
	for _, item := range items {
		if DigitsOnly(item.NCM) == "" {
			missing++
		}
	}
	if missing > 0 {
		risks = append(risks, fmt.Sprintf("%d item(ns) sem NCM informado", missing))
	}

	// Rule 3: declared value per kilogram below the parameter floor.
	underInvoiced := false
	for _, item := range items {
		weight := ParseOrZero(item.Weight)
		if weight <= 0 {
			continue
		}
		if ParseOrZero(item.TotalValue) < weight*underInvoiceFloorPerKg {
			underInvoiced = true
		}
	}
	if underInvoiced {
		risks = append(risks, "Possível subfaturamento: valor declarado abaixo do parâmetro mínimo por kg")
		low += underInvoiceLow
		high += underInvoiceHigh
	}

	// Rules 4 and 5 are independent; both can fire for the same sector.
	if regulatedSectors[op.Sector] && len(sel.SelectedAgencies) == 0 {
		risks = append(risks, fmt.Sprintf("Setor %s exige anuência, mas nenhum órgão anuente foi selecionado", op.Sector))
		low += missingAnuenteLow
		high += missingAnuenteHigh
	}
	if regulatedSectors[op.Sector] && !sel.LPCORequested {
		risks = append(risks, fmt.Sprintf("LPCO não protocolado para o setor regulado %s", op.Sector))
		low += missingLPCOLow
		high += missingLPCOHigh
	}

	if len(risks) == 0 {
		risks = append(risks, NoRiskFinding)
	}

	totalAvoidable := high * avoidableShare
	return SimulationResult{
		Risks:            risks,
		ImpactRangeLabel: FormatBRLRange(low, high),
		TotalImpactLabel: FormatBRL(high * totalImpactFactor),
		AvoidedLabel:     FormatBRL(totalAvoidable),
		CostBreakdown: CostBreakdown{
			Fines:      totalAvoidable * finesShare,
			Demurrage:  totalAvoidable * demurrageShare,
			Operations: totalAvoidable * operationsShare,
			Total:      totalAvoidable,
		},
		NonComplianceRate: nonComplianceRate,
	}
}
