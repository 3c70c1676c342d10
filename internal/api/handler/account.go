// internal/api/handler/account.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"bankledger/internal/service"
)

// AccountHandler handles HTTP requests for bank accounts.
type AccountHandler struct {
	service service.AccountService
	logger  *slog.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc service.AccountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateAccountRequest represents the request body for opening an account.
// Balance is a pointer so a missing field can be told apart from zero.
type CreateAccountRequest struct {
	UserID        int64            `json:"userId"`
	BankName      string           `json:"bank_name"`
	AccountNumber string           `json:"bank_account_number"`
	Balance       *decimal.Decimal `json:"balance"`
}

// Create handles the account opening request.
// POST /api/v1/accounts
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "Invalid input for balance"})
		return
	}

	if req.UserID == 0 || req.BankName == "" || req.AccountNumber == "" || req.Balance == nil {
		respondWithJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "Missing required fields"})
		return
	}

	account, err := h.service.Open(r.Context(), req.UserID, req.BankName, req.AccountNumber, *req.Balance)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, account)
}

// List handles the list accounts request.
// GET /api/v1/accounts
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.List(r.Context())
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, accounts)
}

// GetByID handles the get account by id request.
// GET /api/v1/accounts/{accountID}
func (h *AccountHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	accountIDStr := chi.URLParam(r, "accountID")
	accountID, err := strconv.ParseInt(accountIDStr, 10, 64)
	if err != nil {
		respondWithJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "Invalid account ID"})
		return
	}

	account, err := h.service.Get(r.Context(), accountID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, account)
}
