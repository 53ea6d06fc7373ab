// File path: internal/sqlite/store_test.go
package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truenorth-regtech/truenorth/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := Config{Path: filepath.Join(t.TempDir(), "test.db")}
	cfg.applyDefaults()
	store, err := OpenWithConfig(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func createTestUser(t *testing.T, store *Store) model.User {
	t.Helper()
	user, err := store.CreateUser(context.Background(), "ana@example.com", "Ana", "hash")
	require.NoError(t, err)
	return user
}

func TestCreateUserAndLookup(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	user := createTestUser(t, store)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ana@example.com", user.Email)

	found, hash, err := store.CredentialsByEmail(ctx, "ANA@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "hash", hash)

	byID, err := store.UserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	createTestUser(t, store)
	_, err := store.CreateUser(ctx, "ana@example.com", "Outra Ana", "hash2")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCredentialsUnknownEmail(t *testing.T) {
	store := openTestStore(t)
	_, _, err := store.CredentialsByEmail(context.Background(), "ninguem@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOperationRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, store)

	ncm := "85171231"
	saved, err := store.SaveOperation(ctx, model.Operation{
		UserID:      user.ID,
		ArquivoNome: "invoice.pdf",
		ArquivoTipo: "application/pdf",
		Status:      "processado",
		DadosExtraidos: &model.ExtractedData{
			InvoiceNumber: "INV-1",
			TotalValue:    5000,
			Items: []model.ExtractedItem{{
				Description: "Telefone", TotalPrice: 5000, NCMSugerido: &ncm,
			}},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	loaded, err := store.OperationByID(ctx, saved.ID, user.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.DadosExtraidos)
	assert.Equal(t, "INV-1", loaded.DadosExtraidos.InvoiceNumber)
	require.Len(t, loaded.DadosExtraidos.Items, 1)
	require.NotNil(t, loaded.DadosExtraidos.Items[0].NCMSugerido)
	assert.Equal(t, "85171231", *loaded.DadosExtraidos.Items[0].NCMSugerido)
}

func TestOperationOwnerScoping(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	owner := createTestUser(t, store)
	other, err := store.CreateUser(ctx, "beto@example.com", "Beto", "hash")
	require.NoError(t, err)

	saved, err := store.SaveOperation(ctx, model.Operation{UserID: owner.ID, ArquivoNome: "a.pdf", Status: "processado"})
	require.NoError(t, err)

	_, err = store.OperationByID(ctx, saved.ID, other.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.DeleteOperation(ctx, saved.ID, other.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.DeleteOperation(ctx, saved.ID, owner.ID)
	assert.NoError(t, err)
}

func TestUpdateOperation(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, store)

	saved, err := store.SaveOperation(ctx, model.Operation{UserID: user.ID, ArquivoNome: "a.pdf", Status: "processado"})
	require.NoError(t, err)

	cost := 7500.0
	saved.Status = "validado"
	saved.CustoTotalErros = &cost
	saved.Erros = []model.ErroDetectado{{TipoErro: "NCM_INVALIDO"}}
	saved.DadosValidados = &model.ValidationResult{RiscoGeral: "ALTO"}
	require.NoError(t, err)
	require.NoError(t, store.UpdateOperation(ctx, saved))

	loaded, err := store.OperationByID(ctx, saved.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "validado", loaded.Status)
	require.NotNil(t, loaded.CustoTotalErros)
	assert.Equal(t, 7500.0, *loaded.CustoTotalErros)
	require.Len(t, loaded.Erros, 1)
	require.NotNil(t, loaded.DadosValidados)
	assert.Equal(t, "ALTO", loaded.DadosValidados.RiscoGeral)
}

func TestListOperationsNewestFirst(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, store)

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		_, err := store.SaveOperation(ctx, model.Operation{
			UserID:      user.ID,
			ArquivoNome: "doc.pdf",
			Status:      "processado",
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	ops, err := store.ListOperations(ctx, user.ID, 2, 0)
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.True(t, ops[0].CreatedAt.After(ops[1].CreatedAt))
}

func TestOperationsStats(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, store)

	empty, err := store.OperationsStats(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.TotalOperations)

	cost := 5000.0
	saved50 := 120.0
	_, err = store.SaveOperation(ctx, model.Operation{
		UserID: user.ID, ArquivoNome: "a.pdf", Status: "validado",
		DadosValidados:      &model.ValidationResult{RiscoGeral: "ALTO"},
		Erros:               []model.ErroDetectado{{TipoErro: "NCM_INVALIDO"}},
		CustoTotalErros:     &cost,
		TempoEconomizadoMin: &saved50,
	})
	require.NoError(t, err)
	_, err = store.SaveOperation(ctx, model.Operation{UserID: user.ID, ArquivoNome: "b.pdf", Status: "processado"})
	require.NoError(t, err)

	stats, err := store.OperationsStats(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalOperations)
	assert.Equal(t, 1, stats.OperationsWithErros)
	assert.Equal(t, 1, stats.OperationsValidated)
	assert.Equal(t, 5000.0, stats.TotalCostsAvoided)
	assert.Equal(t, 120.0, stats.TotalTimeSavedMin)
	assert.Equal(t, 60.0, stats.AverageTimeSavedMin)
}
