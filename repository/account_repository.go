package repository

import (
	"account-api/logger"
	"account-api/model"
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// IAccountRepository defines the contract for account persistence.
// Lookups return sql.ErrNoRows unchanged when no record matches; the service
// layer translates driver errors into business errors.
type IAccountRepository interface {
	CreateAccount(ctx context.Context, account *model.Account) error
	GetAccountByID(ctx context.Context, id uuid.UUID) (*model.Account, error)
	GetAccountByNumber(ctx context.Context, accountNumber string) (*model.Account, error)
}

type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

// CreateAccount inserts a new account. The id is assigned by the database;
// a duplicate account number surfaces as a unique-constraint violation from
// the driver.
func (r *AccountRepository) CreateAccount(ctx context.Context, account *model.Account) error {
	log := logger.Log.WithFields(logrus.Fields{
		"customer_id":    account.CustomerID,
		"account_number": account.AccountNumber,
		"currency":       account.Currency,
	})
	log.Info("Executing query to create a new account")

	query := `INSERT INTO accounts (customer_id, account_number, currency, balance, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.DB.QueryRowContext(ctx, query,
		account.CustomerID,
		account.AccountNumber,
		account.Currency,
		account.Balance,
		account.Status,
		account.CreatedAt,
		account.UpdatedAt,
	).Scan(&account.ID)
	if err != nil {
		log.WithError(err).Error("Failed to execute create account query")
		return err
	}
	return nil
}

// GetAccountByID retrieves a single account by its primary key.
func (r *AccountRepository) GetAccountByID(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	log := logger.Log.WithField("account_id", id)
	log.Info("Executing query to get account by ID")

	account := &model.Account{}
	query := `SELECT id, customer_id, account_number, currency, balance, status, created_at, updated_at
	          FROM accounts WHERE id = $1`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&account.ID,
		&account.CustomerID,
		&account.AccountNumber,
		&account.Currency,
		&account.Balance,
		&account.Status,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("Account not found")
		} else {
			log.WithError(err).Error("Failed to execute get account by ID query")
		}
		return nil, err
	}
	return account, nil
}

// GetAccountByNumber retrieves a single account by its unique account number.
func (r *AccountRepository) GetAccountByNumber(ctx context.Context, accountNumber string) (*model.Account, error) {
	log := logger.Log.WithField("account_number", accountNumber)
	log.Info("Executing query to get account by number")

	account := &model.Account{}
	query := `SELECT id, customer_id, account_number, currency, balance, status, created_at, updated_at
	          FROM accounts WHERE account_number = $1`
	err := r.DB.QueryRowContext(ctx, query, accountNumber).Scan(
		&account.ID,
		&account.CustomerID,
		&account.AccountNumber,
		&account.Currency,
		&account.Balance,
		&account.Status,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("No account with this number")
		} else {
			log.WithError(err).Error("Failed to execute get account by number query")
		}
		return nil, err
	}
	return account, nil
}
