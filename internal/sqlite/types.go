// File path: internal/sqlite/types.go
package sqlite

import (
	"database/sql"
	"time"
)

// userRow mirrors the users table.
type userRow struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// operationRow mirrors the operations table. Structured payloads are
// stored as JSON text columns.
type operationRow struct {
	ID                  string          `db:"id"`
	UserID              string          `db:"user_id"`
	ArquivoNome         string          `db:"arquivo_nome"`
	ArquivoTipo         sql.NullString  `db:"arquivo_tipo"`
	Status              string          `db:"status"`
	DadosExtraidos      sql.NullString  `db:"dados_extraidos"`
	DadosValidados      sql.NullString  `db:"dados_validados"`
	Erros               sql.NullString  `db:"erros"`
	CustoTotalErros     sql.NullFloat64 `db:"custo_total_erros"`
	TempoEconomizadoMin sql.NullFloat64 `db:"tempo_economizado_min"`
	CreatedAt           time.Time       `db:"created_at"`
}

// statsRow holds the aggregate history query result.
type statsRow struct {
	TotalOperations     int             `db:"total_operations"`
	OperationsWithErros int             `db:"operations_with_errors"`
	OperationsValidated int             `db:"operations_validated"`
	TotalCostsAvoided   sql.NullFloat64 `db:"total_costs_avoided"`
	TotalTimeSavedMin   sql.NullFloat64 `db:"total_time_saved_min"`
}
