// internal/api/handler/user.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"bankledger/internal/domain"
	"bankledger/internal/service"
	"bankledger/internal/util"
)

// UserHandler handles HTTP requests for users and their profiles.
type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: svc,
		logger:  logger,
	}
}

// ProfilePayload carries the optional profile fields on user creation.
type ProfilePayload struct {
	IdentityType   string `json:"identity_type"`
	IdentityNumber string `json:"identity_number"`
	Address        string `json:"address"`
}

// CreateUserRequest represents the request body for creating a user.
type CreateUserRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Profile  *ProfilePayload `json:"profile"`
}

// Create handles the create user request. The profile, when present, is
// created atomically with the user.
// POST /api/v1/users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	var profile *domain.Profile
	if req.Profile != nil {
		profile = &domain.Profile{
			IdentityType:   req.Profile.IdentityType,
			IdentityNumber: req.Profile.IdentityNumber,
			Address:        req.Profile.Address,
		}
	}

	user, err := h.service.Create(r.Context(), req.Name, req.Email, req.Password, profile)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, user)
}

// List handles the list users request.
// GET /api/v1/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, users)
}

// GetByID handles the get user by id request.
// GET /api/v1/users/{userID}
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userIDStr := chi.URLParam(r, "userID")
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		respondWithError(h.logger, w, util.ErrUserNotFound)
		return
	}

	user, err := h.service.Get(r.Context(), userID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, user)
}

// UpdateUserRequest represents the request body for updating a user.
type UpdateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Update handles the update user request. A missing user yields 400, a
// contract kept for compatibility.
// PUT /api/v1/users/{userID}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	userIDStr := chi.URLParam(r, "userID")
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		h.respondUpdateFailed(w)
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	user, err := h.service.Update(r.Context(), userID, req.Email, req.Password)
	if err != nil {
		if util.IsError(err, util.ErrUserNotFound) {
			h.respondUpdateFailed(w)
			return
		}
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"message":    "User updated successfully",
		"updateUser": user,
	})
}

func (h *UserHandler) respondUpdateFailed(w http.ResponseWriter) {
	respondWithJSON(h.logger, w, http.StatusBadRequest, map[string]string{
		"error": "Error updating user or user not found",
	})
}
