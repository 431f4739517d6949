package handler

import (
	"net/http"

	"github.com/SMCNetwolf/LLMGame/internal/domain"
	"github.com/SMCNetwolf/LLMGame/internal/logger"
	"github.com/SMCNetwolf/LLMGame/internal/repository"
)

// CreateUserRequest represents the request to create a player account.
// ExternalID ties the account to an outside identity such as a Discord
// user id.
type CreateUserRequest struct {
	Username   string `json:"username" validate:"required,min=2,max=50,excludesall=<>"`
	ExternalID string `json:"external_id" validate:"max=100"`
}

// HandleCreateUser handles player account creation
// @Summary Create a player account
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "Account details"
// @Success 201 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/users [post]
func HandleCreateUser(users repository.User) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create user"); err != nil {
			return
		}

		user := &domain.User{
			Username:   req.Username,
			ExternalID: req.ExternalID,
		}
		if err := users.CreateUser(r.Context(), user); err != nil {
			respondServiceError(w, r, ErrMsgCreateUserFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgUserCreated,
			"user_id", user.ID, "username", user.Username)
		respondJSON(w, http.StatusCreated, user)
	}
}

// HandleGetUser looks a user up by username or external id
// @Summary Look up a player account
// @Tags users
// @Produce json
// @Param username query string false "Username"
// @Param external_id query string false "External identity id"
// @Success 200 {object} domain.User
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users [get]
func HandleGetUser(users repository.User) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			user *domain.User
			err  error
		)

		if externalID := r.URL.Query().Get("external_id"); externalID != "" {
			user, err = users.GetUserByExternalID(r.Context(), externalID)
		} else {
			username, ok := GetQueryParam(r, w, "username")
			if !ok {
				return
			}
			user, err = users.GetUserByUsername(r.Context(), username)
		}

		if err != nil {
			respondServiceError(w, r, ErrMsgGetUserFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, user)
	}
}
