package handler

import (
	"account-api/common"
	"account-api/logger"
	"account-api/model"
	"account-api/service"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AccountHandler struct {
	service *service.AccountService
}

func NewAccountHandler(service *service.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// CreateAccount godoc
// @Summary      Create a bank account
// @Description  Opens a new account for a customer. The account number must be unique across all accounts.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        account body model.CreateAccountRequest true "Account creation payload"
// @Success      201  {object}  model.Account
// @Failure      400  {object}  common.AppError "Validation failed (missing field, malformed currency, negative balance)"
// @Failure      409  {object}  common.AppError "Account number already exists"
// @Failure      500  {object}  common.AppError "Internal server error while creating the account"
// @Router       /api/accounts [post]
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateAccountRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	log := logger.Log.WithFields(logrus.Fields{
		"customer_id":    req.CustomerID,
		"account_number": req.AccountNumber,
		"currency":       req.Currency,
	})
	log.Info("Create account request received")

	account, err := h.service.CreateAccount(r.Context(), req)
	if err != nil {
		switch err {
		case service.ErrAccountNumberExists:
			return common.NewAppError(http.StatusConflict, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not create account", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(account)

	return nil
}

// GetAccount godoc
// @Summary      Get an account by ID
// @Description  Retrieves a single account by its identifier.
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Account ID (UUID)"
// @Success      200  {object}  model.Account
// @Failure      400  {object}  common.AppError "Malformed account ID in URL path"
// @Failure      404  {object}  common.AppError "Account not found"
// @Failure      500  {object}  common.AppError "Internal server error while retrieving the account"
// @Router       /api/accounts/{id} [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid account ID in URL path", err)
	}

	account, err := h.service.GetAccount(r.Context(), id)
	if err != nil {
		switch err {
		case service.ErrAccountNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not retrieve account", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(account)

	return nil
}
