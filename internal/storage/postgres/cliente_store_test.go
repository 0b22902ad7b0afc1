package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolfplanner/wolf-planner-api/internal/models"
	"github.com/wolfplanner/wolf-planner-api/internal/storage"
)

func newDB(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return &DB{Pool: mock}, mock
}

func clienteRow(c models.Cliente) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "user_id", "nome", "email", "telefone", "created_at", "updated_at"}).
		AddRow(c.ID, c.UserID, c.Nome, c.Email, c.Telefone, c.CreatedAt, c.UpdatedAt)
}

func TestClienteGetOwned_ScopedToOwner(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	s := NewClienteStore(db)

	userID, clienteID := uuid.New(), uuid.New()
	want := models.Cliente{ID: clienteID, UserID: userID, Nome: "Ana", Email: "a@x.com",
		CreatedAt: time.Now(), UpdatedAt: time.Now()}

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1 AND user_id = $2`)).
		WithArgs(clienteID, userID).
		WillReturnRows(clienteRow(want))

	got, err := s.GetOwned(context.Background(), clienteID, userID)
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.UserID, got.UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClienteGetOwned_NoRowIsNotFound(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	s := NewClienteStore(db)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1 AND user_id = $2`)).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "nome", "email", "telefone", "created_at", "updated_at"}))

	_, err := s.GetOwned(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestClienteUpdateOwned_TelefoneOnlyPatch(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	s := NewClienteStore(db)

	userID, clienteID := uuid.New(), uuid.New()
	telefone := "+55 11 91234-5678"
	want := models.Cliente{ID: clienteID, UserID: userID, Nome: "Ana", Email: "a@x.com", Telefone: &telefone,
		CreatedAt: time.Now(), UpdatedAt: time.Now()}

	// Only updated_at and telefone appear in the SET clause; nome and email
	// stay untouched.
	mock.ExpectQuery(regexp.QuoteMeta(`SET updated_at = NOW(), telefone = $3`)).
		WithArgs(clienteID, userID, telefone).
		WillReturnRows(clienteRow(want))

	got, err := s.UpdateOwned(context.Background(), clienteID, userID, models.ClientePatch{Telefone: &telefone})
	require.NoError(t, err)
	assert.Equal(t, &telefone, got.Telefone)
	assert.Equal(t, "Ana", got.Nome)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClienteUpdateOwned_EmptyPatchReadsCurrentRow(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	s := NewClienteStore(db)

	userID, clienteID := uuid.New(), uuid.New()
	want := models.Cliente{ID: clienteID, UserID: userID, Nome: "Ana", Email: "a@x.com",
		CreatedAt: time.Now(), UpdatedAt: time.Now()}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).
		WithArgs(clienteID, userID).
		WillReturnRows(clienteRow(want))

	got, err := s.UpdateOwned(context.Background(), clienteID, userID, models.ClientePatch{})
	require.NoError(t, err)
	assert.Equal(t, want.Nome, got.Nome)
}

func TestClienteDeleteOwned_ZeroRowsIsNotFound(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	s := NewClienteStore(db)

	userID, clienteID := uuid.New(), uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM clientes WHERE id = $1 AND user_id = $2`)).
		WithArgs(clienteID, userID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := s.DeleteOwned(context.Background(), clienteID, userID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestClienteOwnedByUser(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	s := NewClienteStore(db)

	userID, clienteID := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
		WithArgs(clienteID, userID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	owned, err := s.OwnedByUser(context.Background(), clienteID, userID)
	require.NoError(t, err)
	assert.True(t, owned)
}
