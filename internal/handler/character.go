package handler

import (
	"net/http"

	"github.com/SMCNetwolf/LLMGame/internal/character"
	"github.com/SMCNetwolf/LLMGame/internal/domain"
	"github.com/SMCNetwolf/LLMGame/internal/logger"
)

// CreateCharacterRequest represents the request to roll a new character
type CreateCharacterRequest struct {
	UserID int    `json:"user_id" validate:"required,gt=0"`
	Name   string `json:"name" validate:"required,min=2,max=50,excludesall=<>"`
	Class  string `json:"class" validate:"required,max=50"`
}

// CharacterResponse bundles a character with its game session
type CharacterResponse struct {
	Character *domain.Character `json:"character"`
	State     *domain.GameState `json:"state"`
}

// HandleCreateCharacter rolls a new character and opens its session
// @Summary Create a character
// @Tags characters
// @Accept json
// @Produce json
// @Param request body CreateCharacterRequest true "Character details"
// @Success 201 {object} CharacterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/characters [post]
func HandleCreateCharacter(svc *character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateCharacterRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create character"); err != nil {
			return
		}

		char, state, err := svc.CreateCharacter(r.Context(), req.UserID, req.Name, req.Class)
		if err != nil {
			respondServiceError(w, r, ErrMsgCreateCharacterFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgCharacterCreated,
			"character_id", char.ID, "class", char.Class)
		respondJSON(w, http.StatusCreated, CharacterResponse{Character: char, State: state})
	}
}

// HandleListCharacters lists the characters owned by a user
// @Summary List a user's characters
// @Tags characters
// @Produce json
// @Param id path int true "User id"
// @Success 200 {array} domain.Character
// @Router /api/v1/users/{id}/characters [get]
func HandleListCharacters(svc *character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		chars, err := svc.ListCharacters(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgListCharactersFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, chars)
	}
}

// HandleGetSession loads a character together with its game session
// @Summary Load a character and its session
// @Tags characters
// @Produce json
// @Param id path int true "Character id"
// @Success 200 {object} CharacterResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{id} [get]
func HandleGetSession(svc *character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		characterID, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		char, state, err := svc.Session(r.Context(), characterID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetSessionFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, CharacterResponse{Character: char, State: state})
	}
}

// HandleDeleteCharacter removes a character and its session
// @Summary Delete a character
// @Tags characters
// @Produce json
// @Param id path int true "Character id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{id} [delete]
func HandleDeleteCharacter(svc *character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		characterID, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		if err := svc.DeleteCharacter(r.Context(), characterID); err != nil {
			respondServiceError(w, r, ErrMsgDeleteCharacterFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgCharacterDeleted, "character_id", characterID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "character deleted"})
	}
}
