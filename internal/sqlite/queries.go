// File path: internal/sqlite/queries.go
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/truenorth-regtech/truenorth/internal/model"
)

// ErrNotFound reports a lookup that matched no row (or a row owned by
// another user).
var ErrNotFound = errors.New("not found")

// ErrEmailTaken reports a registration against an existing email.
var ErrEmailTaken = errors.New("email already registered")

// CreateUser inserts a new account and returns it.
func (s *Store) CreateUser(ctx context.Context, email, name, passwordHash string) (model.User, error) {
	if s == nil || s.db == nil {
		return model.User{}, fmt.Errorf("sqlite store not initialised")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return model.User{}, fmt.Errorf("email required")
	}
	row := userRow{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO users (id, email, name, password_hash, created_at)
                VALUES (:id, :email, :name, :password_hash, :created_at)`, row)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return model.User{}, ErrEmailTaken
		}
		return model.User{}, fmt.Errorf("insert user: %w", err)
	}
	return userFromRow(row), nil
}

// CredentialsByEmail returns the account and stored password hash for a
// login attempt.
func (s *Store) CredentialsByEmail(ctx context.Context, email string) (model.User, string, error) {
	if s == nil || s.db == nil {
		return model.User{}, "", fmt.Errorf("sqlite store not initialised")
	}
	var row userRow
	err := s.db.GetContext(ctx, &row, `SELECT * FROM users WHERE email = ?`, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, "", ErrNotFound
	}
	if err != nil {
		return model.User{}, "", fmt.Errorf("select user: %w", err)
	}
	return userFromRow(row), row.PasswordHash, nil
}

// UserByID returns an account by identifier.
func (s *Store) UserByID(ctx context.Context, id string) (model.User, error) {
	if s == nil || s.db == nil {
		return model.User{}, fmt.Errorf("sqlite store not initialised")
	}
	var row userRow
	err := s.db.GetContext(ctx, &row, `SELECT * FROM users WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("select user: %w", err)
	}
	return userFromRow(row), nil
}

// SaveOperation inserts a new operation. A missing id or timestamp is
// filled in.
func (s *Store) SaveOperation(ctx context.Context, op model.Operation) (model.Operation, error) {
	if s == nil || s.db == nil {
		return model.Operation{}, fmt.Errorf("sqlite store not initialised")
	}
	if strings.TrimSpace(op.ID) == "" {
		op.ID = uuid.NewString()
	}
	if op.CreatedAt.IsZero() {
		op.CreatedAt = time.Now().UTC()
	}
	row, err := operationToRow(op)
	if err != nil {
		return model.Operation{}, err
	}
	_, err = s.db.NamedExecContext(ctx, `INSERT INTO operations
                (id, user_id, arquivo_nome, arquivo_tipo, status, dados_extraidos,
                 dados_validados, erros, custo_total_erros, tempo_economizado_min, created_at)
                VALUES (:id, :user_id, :arquivo_nome, :arquivo_tipo, :status, :dados_extraidos,
                 :dados_validados, :erros, :custo_total_erros, :tempo_economizado_min, :created_at)`, row)
	if err != nil {
		return model.Operation{}, fmt.Errorf("insert operation: %w", err)
	}
	return op, nil
}

// UpdateOperation rewrites the mutable columns of an existing operation,
// scoped to its owner.
func (s *Store) UpdateOperation(ctx context.Context, op model.Operation) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("sqlite store not initialised")
	}
	row, err := operationToRow(op)
	if err != nil {
		return err
	}
	res, err := s.db.NamedExecContext(ctx, `UPDATE operations SET
                status = :status,
                dados_extraidos = :dados_extraidos,
                dados_validados = :dados_validados,
                erros = :erros,
                custo_total_erros = :custo_total_erros,
                tempo_economizado_min = :tempo_economizado_min
                WHERE id = :id AND user_id = :user_id`, row)
	if err != nil {
		return fmt.Errorf("update operation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update operation: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// OperationByID returns one operation, scoped to its owner.
func (s *Store) OperationByID(ctx context.Context, id, userID string) (model.Operation, error) {
	if s == nil || s.db == nil {
		return model.Operation{}, fmt.Errorf("sqlite store not initialised")
	}
	var row operationRow
	err := s.db.GetContext(ctx, &row, `SELECT * FROM operations WHERE id = ? AND user_id = ?`, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Operation{}, ErrNotFound
	}
	if err != nil {
		return model.Operation{}, fmt.Errorf("select operation: %w", err)
	}
	return operationFromRow(row)
}

// ListOperations returns a user's operations, newest first.
func (s *Store) ListOperations(ctx context.Context, userID string, limit, offset int) ([]model.Operation, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("sqlite store not initialised")
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	rows := []operationRow{}
	err := s.db.SelectContext(ctx, &rows, `SELECT * FROM operations
                WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select operations: %w", err)
	}
	operations := make([]model.Operation, 0, len(rows))
	for _, row := range rows {
		op, err := operationFromRow(row)
		if err != nil {
			return nil, err
		}
		operations = append(operations, op)
	}
	return operations, nil
}

// DeleteOperation removes one operation, scoped to its owner.
func (s *Store) DeleteOperation(ctx context.Context, id, userID string) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("sqlite store not initialised")
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM operations WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete operation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete operation: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// OperationsStats aggregates a user's history for the dashboard header.
func (s *Store) OperationsStats(ctx context.Context, userID string) (model.OperationsStats, error) {
	if s == nil || s.db == nil {
		return model.OperationsStats{}, fmt.Errorf("sqlite store not initialised")
	}
	var row statsRow
	err := s.db.GetContext(ctx, &row, `SELECT
                COUNT(*) AS total_operations,
                COALESCE(SUM(CASE WHEN erros IS NOT NULL AND erros != '' AND erros != '[]' THEN 1 ELSE 0 END), 0) AS operations_with_errors,
                COALESCE(SUM(CASE WHEN dados_validados IS NOT NULL THEN 1 ELSE 0 END), 0) AS operations_validated,
                COALESCE(SUM(custo_total_erros), 0) AS total_costs_avoided,
                COALESCE(SUM(tempo_economizado_min), 0) AS total_time_saved_min
                FROM operations WHERE user_id = ?`, userID)
	if err != nil {
		return model.OperationsStats{}, fmt.Errorf("select stats: %w", err)
	}
	stats := model.OperationsStats{
		TotalOperations:     row.TotalOperations,
		OperationsWithErros: row.OperationsWithErros,
		OperationsValidated: row.OperationsValidated,
		TotalCostsAvoided:   row.TotalCostsAvoided.Float64,
		TotalTimeSavedMin:   row.TotalTimeSavedMin.Float64,
	}
	if stats.TotalOperations > 0 {
		stats.AverageTimeSavedMin = stats.TotalTimeSavedMin / float64(stats.TotalOperations)
	}
	return stats, nil
}
