package handler

import (
	"net/http"
	"strconv"

	"github.com/SMCNetwolf/LLMGame/internal/character"
	"github.com/SMCNetwolf/LLMGame/internal/repository"
)

// mediaLimit parses the optional limit query parameter, clamped to
// MaxMediaLimit.
func mediaLimit(r *http.Request) int {
	limit, err := strconv.Atoi(GetOptionalQueryParam(r, "limit", strconv.Itoa(DefaultMediaLimit)))
	if err != nil || limit < 1 {
		return DefaultMediaLimit
	}
	if limit > MaxMediaLimit {
		return MaxMediaLimit
	}
	return limit
}

// HandleListImages lists generated scene illustrations for a character's
// session, newest first
// @Summary List session illustrations
// @Tags media
// @Produce json
// @Param id path int true "Character id"
// @Param limit query int false "Maximum entries"
// @Success 200 {array} domain.GameImage
// @Router /api/v1/characters/{id}/images [get]
func HandleListImages(svc *character.Service, media repository.Media) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		characterID, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		_, state, err := svc.Session(r.Context(), characterID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetSessionFailed, err)
			return
		}

		images, err := media.ListGameImages(r.Context(), state.ID, mediaLimit(r))
		if err != nil {
			respondServiceError(w, r, ErrMsgListImagesFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, images)
	}
}

// HandleListAudio lists narration records for a character, newest first
// @Summary List character narrations
// @Tags media
// @Produce json
// @Param id path int true "Character id"
// @Param limit query int false "Maximum entries"
// @Success 200 {array} domain.CharacterAudio
// @Router /api/v1/characters/{id}/audio [get]
func HandleListAudio(media repository.Media) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		characterID, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		audio, err := media.ListCharacterAudio(r.Context(), characterID, mediaLimit(r))
		if err != nil {
			respondServiceError(w, r, ErrMsgListAudioFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, audio)
	}
}
