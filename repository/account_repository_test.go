package repository

import (
	"account-api/logger"
	"account-api/model"
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newMockRepo(t *testing.T) (*AccountRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("could not create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewAccountRepository(db), mock
}

var accountColumns = []string{
	"id", "customer_id", "account_number", "currency", "balance", "status", "created_at", "updated_at",
}

func TestAccountRepository_CreateAccount(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now().UTC()
	account := &model.Account{
		CustomerID:    uuid.New(),
		AccountNumber: "ACC001",
		Currency:      "USD",
		Balance:       decimal.RequireFromString("500.00"),
		Status:        model.StatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	assignedID := uuid.New()

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs(account.CustomerID, account.AccountNumber, account.Currency,
			sqlmock.AnyArg(), account.Status, account.CreatedAt, account.UpdatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(assignedID.String()))

	err := repo.CreateAccount(context.Background(), account)

	assert.NoError(t, err)
	assert.Equal(t, assignedID, account.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_CreateAccount_QueryError(t *testing.T) {
	repo, mock := newMockRepo(t)

	account := &model.Account{
		CustomerID:    uuid.New(),
		AccountNumber: "ACC001",
		Currency:      "USD",
		Balance:       decimal.Zero,
		Status:        model.StatusActive,
	}

	queryErr := sql.ErrConnDone
	mock.ExpectQuery("INSERT INTO accounts").WillReturnError(queryErr)

	err := repo.CreateAccount(context.Background(), account)

	assert.ErrorIs(t, err, queryErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_GetAccountByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	id := uuid.New()
	customerID := uuid.New()
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(accountColumns).
			AddRow(id.String(), customerID.String(), "ACC001", "USD", "500.0000", model.StatusActive, now, now)
		mock.ExpectQuery("FROM accounts WHERE id").
			WithArgs(id).
			WillReturnRows(rows)

		account, err := repo.GetAccountByID(context.Background(), id)

		assert.NoError(t, err)
		assert.Equal(t, id, account.ID)
		assert.Equal(t, customerID, account.CustomerID)
		assert.Equal(t, "ACC001", account.AccountNumber)
		assert.True(t, account.Balance.Equal(decimal.RequireFromString("500.00")))
	})

	t.Run("not found passes sql.ErrNoRows through", func(t *testing.T) {
		mock.ExpectQuery("FROM accounts WHERE id").
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		account, err := repo.GetAccountByID(context.Background(), id)

		assert.Nil(t, account)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_GetAccountByNumber(t *testing.T) {
	repo, mock := newMockRepo(t)

	id := uuid.New()
	customerID := uuid.New()
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(accountColumns).
			AddRow(id.String(), customerID.String(), "ACC042", "GBP", "0.0000", model.StatusActive, now, now)
		mock.ExpectQuery("FROM accounts WHERE account_number").
			WithArgs("ACC042").
			WillReturnRows(rows)

		account, err := repo.GetAccountByNumber(context.Background(), "ACC042")

		assert.NoError(t, err)
		assert.Equal(t, "ACC042", account.AccountNumber)
		assert.True(t, account.Balance.IsZero())
	})

	t.Run("not found passes sql.ErrNoRows through", func(t *testing.T) {
		mock.ExpectQuery("FROM accounts WHERE account_number").
			WithArgs("NOPE").
			WillReturnError(sql.ErrNoRows)

		account, err := repo.GetAccountByNumber(context.Background(), "NOPE")

		assert.Nil(t, account)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
