package domain

import "time"

// User is an account that owns characters. ExternalID is the id of the
// chat platform the user arrived from, empty for web-only accounts.
type User struct {
	ID         int       `json:"id"`
	Username   string    `json:"username"`
	ExternalID string    `json:"external_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// GameImage records a generated scene illustration for a session.
type GameImage struct {
	ID          int       `json:"id"`
	GameStateID int       `json:"game_state_id"`
	Prompt      string    `json:"prompt"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
}

// CharacterAudio records a narration clip voiced for a character.
type CharacterAudio struct {
	ID          int       `json:"id"`
	CharacterID int       `json:"character_id"`
	Voice       string    `json:"voice"`
	Text        string    `json:"text"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
}
