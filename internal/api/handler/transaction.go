// internal/api/handler/transaction.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"bankledger/internal/service"
	"bankledger/internal/util"
)

// TransactionHandler handles HTTP requests for transfers and their records.
type TransactionHandler struct {
	ledger service.LedgerService
	logger *slog.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledger service.LedgerService, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		ledger: ledger,
		logger: logger,
	}
}

// CreateTransactionRequest represents the request body for a transfer.
type CreateTransactionRequest struct {
	SourceAccountNumber      string           `json:"sourceAccountNumber"`
	DestinationAccountNumber string           `json:"destinationAccountNumber"`
	Amount                   *decimal.Decimal `json:"amount"`
}

// Create handles the transfer request.
// POST /api/v1/transactions
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "Invalid input for amount"})
		return
	}

	if req.SourceAccountNumber == "" || req.DestinationAccountNumber == "" || req.Amount == nil {
		respondWithJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "Missing required fields"})
		return
	}

	transaction, err := h.ledger.Transfer(r.Context(), req.SourceAccountNumber, req.DestinationAccountNumber, *req.Amount)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, transaction)
}

// List handles the list transactions request.
// GET /api/v1/transactions
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.ledger.ListTransactions(r.Context())
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, transactions)
}

// GetByID handles the get transaction by id request.
// GET /api/v1/transactions/{transactionID}
func (h *TransactionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	transactionIDStr := chi.URLParam(r, "transactionID")
	transactionID, err := strconv.ParseInt(transactionIDStr, 10, 64)
	if err != nil {
		respondWithError(h.logger, w, util.ErrTransactionNotFound)
		return
	}

	transaction, err := h.ledger.GetTransaction(r.Context(), transactionID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, transaction)
}

// Delete handles the delete transaction by id request. Deleting a transaction
// removes the record only; the balance effects it applied remain in place.
// DELETE /api/v1/transactions/{transactionID}
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	transactionIDStr := chi.URLParam(r, "transactionID")
	transactionID, err := strconv.ParseInt(transactionIDStr, 10, 64)
	if err != nil {
		h.respondDeleteFailed(w)
		return
	}

	deleted, err := h.ledger.DeleteTransaction(r.Context(), transactionID)
	if err != nil {
		if util.IsError(err, util.ErrTransactionNotFound) {
			h.respondDeleteFailed(w)
			return
		}
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"message":            "Transaction deleted successfully",
		"deletedTransaction": deleted,
	})
}

// respondDeleteFailed writes the 400 response the delete endpoint returns for
// a missing transaction, a contract kept for compatibility.
func (h *TransactionHandler) respondDeleteFailed(w http.ResponseWriter) {
	respondWithJSON(h.logger, w, http.StatusBadRequest, map[string]string{
		"error": "Error deleting transaction or transaction not found",
	})
}
