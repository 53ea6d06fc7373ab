// File path: internal/sqlite/mapper.go
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/truenorth-regtech/truenorth/internal/model"
)

func userFromRow(row userRow) model.User {
	return model.User{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}

func operationFromRow(row operationRow) (model.Operation, error) {
	op := model.Operation{
		ID:          row.ID,
		UserID:      row.UserID,
		ArquivoNome: row.ArquivoNome,
		ArquivoTipo: row.ArquivoTipo.String,
		Status:      row.Status,
		CreatedAt:   row.CreatedAt,
	}
	if row.DadosExtraidos.Valid && row.DadosExtraidos.String != "" {
		var extracted model.ExtractedData
		if err := json.Unmarshal([]byte(row.DadosExtraidos.String), &extracted); err != nil {
			return model.Operation{}, fmt.Errorf("decode dados_extraidos for %s: %w", row.ID, err)
		}
		op.DadosExtraidos = &extracted
	}
	if row.DadosValidados.Valid && row.DadosValidados.String != "" {
		var validated model.ValidationResult
		if err := json.Unmarshal([]byte(row.DadosValidados.String), &validated); err != nil {
			return model.Operation{}, fmt.Errorf("decode dados_validados for %s: %w", row.ID, err)
		}
		op.DadosValidados = &validated
	}
	if row.Erros.Valid && row.Erros.String != "" {
		if err := json.Unmarshal([]byte(row.Erros.String), &op.Erros); err != nil {
			return model.Operation{}, fmt.Errorf("decode erros for %s: %w", row.ID, err)
		}
	}
	if row.CustoTotalErros.Valid {
		v := row.CustoTotalErros.Float64
		op.CustoTotalErros = &v
	}
	if row.TempoEconomizadoMin.Valid {
		v := row.TempoEconomizadoMin.Float64
		op.TempoEconomizadoMin = &v
	}
	return op, nil
}

func operationToRow(op model.Operation) (operationRow, error) {
	row := operationRow{
		ID:          op.ID,
		UserID:      op.UserID,
		ArquivoNome: op.ArquivoNome,
		Status:      op.Status,
		CreatedAt:   op.CreatedAt,
	}
	if op.ArquivoTipo != "" {
		row.ArquivoTipo = sql.NullString{String: op.ArquivoTipo, Valid: true}
	}
	if op.DadosExtraidos != nil {
		encoded, err := json.Marshal(op.DadosExtraidos)
		if err != nil {
			return operationRow{}, fmt.Errorf("encode dados_extraidos: %w", err)
		}
		row.DadosExtraidos = sql.NullString{String: string(encoded), Valid: true}
	}
	if op.DadosValidados != nil {
		encoded, err := json.Marshal(op.DadosValidados)
		if err != nil {
			return operationRow{}, fmt.Errorf("encode dados_validados: %w", err)
		}
		row.DadosValidados = sql.NullString{String: string(encoded), Valid: true}
	}
	if len(op.Erros) > 0 {
		encoded, err := json.Marshal(op.Erros)
		if err != nil {
			return operationRow{}, fmt.Errorf("encode erros: %w", err)
		}
		row.Erros = sql.NullString{String: string(encoded), Valid: true}
	}
	if op.CustoTotalErros != nil {
		row.CustoTotalErros = sql.NullFloat64{Float64: *op.CustoTotalErros, Valid: true}
	}
	if op.TempoEconomizadoMin != nil {
		row.TempoEconomizadoMin = sql.NullFloat64{Float64: *op.TempoEconomizadoMin, Valid: true}
	}
	return row, nil
}
