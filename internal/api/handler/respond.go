// internal/api/handler/respond.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"bankledger/internal/util"
)

// DefaultTimeout bounds request handling via the router's timeout middleware.
const DefaultTimeout = 60 * time.Second

// respondWithJSON writes payload as a JSON response with the given status code.
func respondWithJSON(logger *slog.Logger, w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps service errors to their outward HTTP status and message.
func respondWithError(logger *slog.Logger, w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = "Missing or invalid fields"
	case util.IsError(err, util.ErrUserNotFound):
		statusCode = http.StatusNotFound
		message = "User not found"
	case util.IsError(err, util.ErrAccountNotFound):
		statusCode = http.StatusNotFound
		message = "Account not found"
	case util.IsError(err, util.ErrTransactionNotFound):
		statusCode = http.StatusNotFound
		message = "Transaction not found"
	case util.IsError(err, util.ErrInsufficientFunds):
		statusCode = http.StatusBadRequest
		message = "Insufficient funds or source account not found"
	case util.IsError(err, util.ErrDestinationNotFound):
		statusCode = http.StatusBadRequest
		message = "Destination account not found"
	case util.IsError(err, util.ErrDuplicateAccountNum):
		statusCode = http.StatusBadRequest
		message = "Bank account number already exists"
	case util.IsError(err, util.ErrDuplicateEmail):
		statusCode = http.StatusBadRequest
		message = "Email already exists"
	case util.IsError(err, util.ErrInvalidCredentials):
		statusCode = http.StatusBadRequest
		message = "User or Password not found"
	default:
		logger.Error("Unhandled service error", "error", err)
	}

	respondWithJSON(logger, w, statusCode, map[string]string{"error": message})
}
