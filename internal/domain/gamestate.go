package domain

import (
	"slices"
	"time"
)

// QuestProgress tracks which quests a session has finished and which
// are currently offered. Both operations are idempotent.
type QuestProgress struct {
	Completed []string `json:"completed"`
	Available []string `json:"available"`
}

// IsCompleted reports whether the quest id has been finished.
func (p QuestProgress) IsCompleted(questID string) bool {
	return slices.Contains(p.Completed, questID)
}

// IsAvailable reports whether the quest id is currently offered.
func (p QuestProgress) IsAvailable(questID string) bool {
	return slices.Contains(p.Available, questID)
}

// MarkCompleted records the quest as finished and withdraws it from the
// available list. Calling it twice leaves the progress unchanged.
func (p *QuestProgress) MarkCompleted(questID string) {
	if !p.IsCompleted(questID) {
		p.Completed = append(p.Completed, questID)
	}
	if i := slices.Index(p.Available, questID); i >= 0 {
		p.Available = slices.Delete(p.Available, i, i+1)
	}
}

// AddAvailable offers the quest unless it is already offered or done.
func (p *QuestProgress) AddAvailable(questID string) {
	if p.IsCompleted(questID) || p.IsAvailable(questID) {
		return
	}
	p.Available = append(p.Available, questID)
}

// GameState is the mutable session record persisted per character.
// Each state owns its own clock so concurrent sessions never share
// simulated time.
type GameState struct {
	ID              int           `json:"id"`
	CharacterID     int           `json:"character_id"`
	CurrentLocation string        `json:"current_location"`
	Inventory       Inventory     `json:"inventory"`
	QuestProgress   QuestProgress `json:"quest_progress"`
	Clock           Clock         `json:"clock"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
