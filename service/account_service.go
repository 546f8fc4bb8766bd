// file: service/account_service.go

package service

import (
	"account-api/logger"
	"account-api/model"
	"account-api/repository"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// Business errors surfaced by the account service. Handlers map these to
// HTTP status codes.
var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountNumberExists = errors.New("account number already exists")
)

const accountCacheTTL = 10 * time.Minute

// pq error code for unique_violation.
const uniqueViolationCode = "23505"

// AccountService holds the persistence and caching dependencies for account
// operations.
type AccountService struct {
	repo  repository.IAccountRepository
	cache ICacheClient
}

func NewAccountService(repo repository.IAccountRepository, cache ICacheClient) *AccountService {
	return &AccountService{
		repo:  repo,
		cache: cache,
	}
}

// CreateAccount opens a new account from a validated request. The account
// number must not already be in use: an existing record is rejected up front,
// and the unique constraint on accounts.account_number remains the
// authoritative guard if two identical creates race past the pre-check.
func (s *AccountService) CreateAccount(ctx context.Context, req model.CreateAccountRequest) (*model.Account, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"customer_id":    req.CustomerID,
		"account_number": req.AccountNumber,
	})

	_, err := s.repo.GetAccountByNumber(ctx, req.AccountNumber)
	if err == nil {
		log.Warn("Account number already in use")
		return nil, ErrAccountNumberExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	now := time.Now().UTC()
	account := &model.Account{
		CustomerID:    req.CustomerID,
		AccountNumber: req.AccountNumber,
		Currency:      req.Currency,
		Balance:       *req.OpeningBalance,
		Status:        model.StatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.CreateAccount(ctx, account); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			log.Warn("Unique constraint rejected duplicate account number")
			return nil, ErrAccountNumberExists
		}
		return nil, err
	}

	// Warm the cache so an immediate fetch of the new account skips the
	// database round trip.
	if data, err := json.Marshal(account); err == nil {
		s.cache.Set(ctx, accountCacheKey(account.ID), data, accountCacheTTL)
	}

	log.WithField("account_id", account.ID).Info("Account created")
	return account, nil
}

// GetAccount fetches an account by id, utilizing a cache-aside strategy.
func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	cacheKey := accountCacheKey(id)

	// 1. Try to get the record from Redis.
	cached, err := s.cache.Get(ctx, cacheKey).Result()
	if err == nil {
		var account model.Account
		if err := json.Unmarshal([]byte(cached), &account); err == nil {
			return &account, nil
		}
	}

	// 2. Cache miss. Fetch from the database.
	account, err := s.repo.GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	// 3. Store the result in Redis for future requests.
	if data, err := json.Marshal(account); err == nil {
		s.cache.Set(ctx, cacheKey, data, accountCacheTTL)
	}

	return account, nil
}

func accountCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("account:%s", id)
}
