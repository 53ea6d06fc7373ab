// File path: internal/model/operation.go
package model

import "time"

// Operation is one import process: an uploaded document plus everything
// derived from it. JSON names match what the web client renders in the
// history view.
type Operation struct {
	ID                  string            `json:"id"`
	UserID              string            `json:"-"`
	ArquivoNome         string            `json:"arquivoNome"`
	ArquivoTipo         string            `json:"arquivoTipo"`
	Status              string            `json:"status"`
	DadosExtraidos      *ExtractedData    `json:"dadosExtraidos"`
	DadosValidados      *ValidationResult `json:"dadosValidados"`
	Erros               []ErroDetectado   `json:"erros"`
	CustoTotalErros     *float64          `json:"custoTotalErros"`
	TempoEconomizadoMin *float64          `json:"tempoEconomizadoMin"`
	CreatedAt           time.Time         `json:"createdAt"`
}

// OperationsStats is the aggregate summary for a user's history.
type OperationsStats struct {
	TotalOperations     int     `json:"totalOperations"`
	OperationsWithErros int     `json:"operationsWithErrors"`
	OperationsValidated int     `json:"operationsValidated"`
	TotalCostsAvoided   float64 `json:"totalCostsAvoided"`
	TotalTimeSavedMin   float64 `json:"totalTimeSavedMin"`
	AverageTimeSavedMin float64 `json:"averageTimeSavedMin"`
}
