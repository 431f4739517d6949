package handler

import (
	"encoding/base64"
	"net/http"

	"github.com/SMCNetwolf/LLMGame/internal/ai"
	"github.com/SMCNetwolf/LLMGame/internal/character"
	"github.com/SMCNetwolf/LLMGame/internal/domain"
	"github.com/SMCNetwolf/LLMGame/internal/engine"
	"github.com/SMCNetwolf/LLMGame/internal/logger"
	"github.com/SMCNetwolf/LLMGame/internal/repository"
)

// CommandRequest represents one player command
type CommandRequest struct {
	Command       string `json:"command" validate:"required,min=1,max=500"`
	GenerateImage bool   `json:"generate_image"`
	Narrate       bool   `json:"narrate"`
}

// CommandResponse is the outcome of a processed command. ImageURL and
// AudioBase64 are only set when the client asked for them and the
// provider delivered.
type CommandResponse struct {
	Narrative   string            `json:"narrative"`
	NewLocation string            `json:"new_location,omitempty"`
	ImageURL    string            `json:"image_url,omitempty"`
	AudioBase64 string            `json:"audio_base64,omitempty"`
	Character   *domain.Character `json:"character"`
	Clock       domain.Clock      `json:"clock"`
}

// HandleCommand interprets one player command against a character's
// session. The session is loaded, mutated by the engine and saved in one
// request; illustration and narration ride along when asked for.
// @Summary Send a command to a game session
// @Tags game
// @Accept json
// @Produce json
// @Param id path int true "Character id"
// @Param request body CommandRequest true "Player command"
// @Success 200 {object} CommandResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{id}/command [post]
func HandleCommand(svc *character.Service, eng *engine.Engine, aiClient ai.Client, media repository.Media) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		characterID, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		var req CommandRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Command"); err != nil {
			return
		}

		char, state, err := svc.Session(r.Context(), characterID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetSessionFailed, err)
			return
		}

		result := eng.ProcessCommand(r.Context(), char, state, req.Command)

		if err := svc.SaveSession(r.Context(), char, state); err != nil {
			respondServiceError(w, r, ErrMsgSaveSessionFailed, err)
			return
		}

		resp := CommandResponse{
			Narrative:   result.Narrative,
			NewLocation: result.NewLocation,
			Character:   char,
			Clock:       state.Clock,
		}

		// Media generation happens after the session is saved; a provider
		// failure costs the player an illustration, never their progress.
		if req.GenerateImage && result.ImagePrompt != "" {
			resp.ImageURL = generateImage(r, aiClient, media, state.ID, result.ImagePrompt)
		}
		if req.Narrate {
			resp.AudioBase64 = narrate(r, aiClient, media, char, svc.Voice(char), result.Narrative)
		}

		log.Info(LogMsgCommandHandled, "character_id", characterID)
		respondJSON(w, http.StatusOK, resp)
	}
}

func generateImage(r *http.Request, aiClient ai.Client, media repository.Media, gameStateID int, prompt string) string {
	log := logger.FromContext(r.Context())

	url, err := aiClient.GenerateImage(r.Context(), prompt)
	if err != nil {
		log.Warn(LogMsgImageGenFailed, "error", err)
		return ""
	}

	if err := media.SaveGameImage(r.Context(), &domain.GameImage{
		GameStateID: gameStateID,
		Prompt:      prompt,
		URL:         url,
	}); err != nil {
		log.Warn(LogMsgImageSaveFailed, "error", err)
	}
	return url
}

func narrate(r *http.Request, aiClient ai.Client, media repository.Media, char *domain.Character, voice ai.Voice, text string) string {
	log := logger.FromContext(r.Context())

	audio, err := aiClient.GenerateSpeech(r.Context(), text, voice)
	if err != nil {
		log.Warn(LogMsgSpeechGenFailed, "error", err)
		return ""
	}

	if err := media.SaveCharacterAudio(r.Context(), &domain.CharacterAudio{
		CharacterID: char.ID,
		Voice:       string(voice),
		Text:        text,
	}); err != nil {
		log.Warn(LogMsgAudioSaveFailed, "error", err)
	}
	return base64.StdEncoding.EncodeToString(audio)
}
