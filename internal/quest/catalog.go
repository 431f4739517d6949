package quest

import (
	"errors"
	"fmt"

	"github.com/SMCNetwolf/LLMGame/internal/domain"
	"github.com/SMCNetwolf/LLMGame/internal/world"
)

// Sentinel errors for catalog construction
var (
	ErrInvalidCatalog = errors.New("invalid quest catalog")
)

// Format strings used with fmt.Errorf for validation errors
const (
	ErrFmtDuplicateQuest     = "%w: duplicate quest '%s'"
	ErrFmtUnknownSuccessor   = "%w: quest '%s' chains to unknown quest '%s'"
	ErrFmtUnknownDifficulty  = "%w: quest '%s' has unknown difficulty '%s'"
	ErrFmtUnknownType        = "%w: quest '%s' has unknown type '%s'"
	ErrFmtUnknownLocation    = "%w: quest '%s' references unknown location '%s'"
	ErrFmtUnknownGiver       = "%w: quest '%s' has unknown npc giver '%s'"
	ErrFmtUnknownTargetEnemy = "%w: quest '%s' targets unknown enemy '%s'"
	ErrFmtUnknownItem        = "%w: quest '%s' references unknown item '%s'"
)

var knownTypes = map[domain.QuestType]bool{
	domain.QuestExploration: true,
	domain.QuestCombat:      true,
	domain.QuestCollection:  true,
	domain.QuestDelivery:    true,
	domain.QuestDialogue:    true,
}

var knownDifficulties = map[domain.Difficulty]bool{
	domain.DifficultyNovice: true,
	domain.DifficultyEasy:   true,
	domain.DifficultyMedium: true,
	domain.DifficultyHard:   true,
	domain.DifficultyEpic:   true,
}

// Catalog is the immutable, validated quest registry. Construction
// resolves every cross-reference against the world, so runtime lookups
// cannot dangle.
type Catalog struct {
	quests  map[string]domain.Quest
	ordered []string
}

// NewCatalog validates the quest definitions against the world and
// builds a catalog.
func NewCatalog(quests []domain.Quest, w *world.Registry) (*Catalog, error) {
	c := &Catalog{
		quests:  make(map[string]domain.Quest, len(quests)),
		ordered: make([]string, 0, len(quests)),
	}

	for _, q := range quests {
		if _, dup := c.quests[q.ID]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicateQuest, ErrInvalidCatalog, q.ID)
		}
		if !knownTypes[q.Type] {
			return nil, fmt.Errorf(ErrFmtUnknownType, ErrInvalidCatalog, q.ID, q.Type)
		}
		if !knownDifficulties[q.Difficulty] {
			return nil, fmt.Errorf(ErrFmtUnknownDifficulty, ErrInvalidCatalog, q.ID, q.Difficulty)
		}
		c.quests[q.ID] = q
		c.ordered = append(c.ordered, q.ID)
	}

	for id, q := range c.quests {
		if q.NextQuestID != "" {
			if _, ok := c.quests[q.NextQuestID]; !ok {
				return nil, fmt.Errorf(ErrFmtUnknownSuccessor, ErrInvalidCatalog, id, q.NextQuestID)
			}
		}
		if err := c.validateWorldRefs(q, w); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Catalog) validateWorldRefs(q domain.Quest, w *world.Registry) error {
	if q.Location != "" && !w.HasLocation(q.Location) {
		return fmt.Errorf(ErrFmtUnknownLocation, ErrInvalidCatalog, q.ID, q.Location)
	}
	if q.TargetLocation != "" && !w.HasLocation(q.TargetLocation) {
		return fmt.Errorf(ErrFmtUnknownLocation, ErrInvalidCatalog, q.ID, q.TargetLocation)
	}
	if q.NPCGiver != "" && !w.HasNPC(q.NPCGiver) {
		return fmt.Errorf(ErrFmtUnknownGiver, ErrInvalidCatalog, q.ID, q.NPCGiver)
	}
	if q.TargetNPC != "" && !w.HasNPC(q.TargetNPC) {
		return fmt.Errorf(ErrFmtUnknownGiver, ErrInvalidCatalog, q.ID, q.TargetNPC)
	}
	if q.TargetEnemy != "" && !w.HasEnemy(q.TargetEnemy) {
		return fmt.Errorf(ErrFmtUnknownTargetEnemy, ErrInvalidCatalog, q.ID, q.TargetEnemy)
	}
	for _, name := range q.Requirements.ItemsRequired {
		if !w.Items().Has(name) {
			return fmt.Errorf(ErrFmtUnknownItem, ErrInvalidCatalog, q.ID, name)
		}
	}
	for _, name := range q.Rewards.Items {
		if !w.Items().Has(name) {
			return fmt.Errorf(ErrFmtUnknownItem, ErrInvalidCatalog, q.ID, name)
		}
	}
	for _, req := range q.TargetItems {
		if !w.Items().Has(req.Item) {
			return fmt.Errorf(ErrFmtUnknownItem, ErrInvalidCatalog, q.ID, req.Item)
		}
	}
	return nil
}

// Get returns a quest by id.
func (c *Catalog) Get(id string) (domain.Quest, bool) {
	q, ok := c.quests[id]
	return q, ok
}

// All returns every quest in definition order.
func (c *Catalog) All() []domain.Quest {
	out := make([]domain.Quest, 0, len(c.ordered))
	for _, id := range c.ordered {
		out = append(out, c.quests[id])
	}
	return out
}

// Available returns the quests a character can take right now: level
// requirement met, not yet completed, prerequisite quests done,
// required items held, and offered at the current location. Pass an
// empty location to ignore the location gate.
func (c *Catalog) Available(level int, progress domain.QuestProgress, location string, inv *domain.Inventory) []domain.Quest {
	var out []domain.Quest
	for _, id := range c.ordered {
		q := c.quests[id]
		if q.Requirements.MinLevel > level {
			continue
		}
		if progress.IsCompleted(q.ID) {
			continue
		}
		if !c.prereqsMet(q, progress) {
			continue
		}
		if inv != nil && !hasRequiredItems(q, inv) {
			continue
		}
		if location != "" && q.Location != "" && q.Location != location {
			continue
		}
		out = append(out, q)
	}
	return out
}

func (c *Catalog) prereqsMet(q domain.Quest, progress domain.QuestProgress) bool {
	for _, prereq := range q.Requirements.QuestsCompleted {
		if !progress.IsCompleted(prereq) {
			return false
		}
	}
	return true
}

func hasRequiredItems(q domain.Quest, inv *domain.Inventory) bool {
	for _, name := range q.Requirements.ItemsRequired {
		if inv.Quantity(name) < 1 {
			return false
		}
	}
	return true
}

// ActionType classifies a player action for quest completion checks.
type ActionType string

const (
	ActionMove   ActionType = "move"
	ActionAttack ActionType = "attack"
	ActionTalk   ActionType = "talk"
)

// Action describes one player action to test quests against.
type Action struct {
	Type   ActionType
	Target string
}

// CheckCompletion reports whether the action completes the quest.
// Collection quests are judged on the inventory instead of the action.
func (c *Catalog) CheckCompletion(questID string, action Action, inv *domain.Inventory) bool {
	q, ok := c.quests[questID]
	if !ok {
		return false
	}

	switch q.Type {
	case domain.QuestExploration:
		return action.Type == ActionMove && action.Target == q.TargetLocation
	case domain.QuestCombat:
		return action.Type == ActionAttack && action.Target == q.TargetEnemy
	case domain.QuestDialogue, domain.QuestDelivery:
		return action.Type == ActionTalk && action.Target == q.TargetNPC
	case domain.QuestCollection:
		if inv == nil {
			return false
		}
		for _, req := range q.TargetItems {
			count := req.Count
			if count < 1 {
				count = 1
			}
			if inv.Quantity(req.Item) < count {
				return false
			}
		}
		return len(q.TargetItems) > 0
	}
	return false
}

// Complete marks the quest done and offers its successor. It is
// idempotent; completing twice does not duplicate anything.
func (c *Catalog) Complete(questID string, progress *domain.QuestProgress) {
	q, ok := c.quests[questID]
	if !ok {
		return
	}
	progress.MarkCompleted(questID)
	if q.NextQuestID != "" {
		progress.AddAvailable(q.NextQuestID)
	}
}

// Roots returns the quests open at the start of a new game: those no
// other quest unlocks and with no completion prerequisites.
func (c *Catalog) Roots() []string {
	successors := make(map[string]bool)
	for _, q := range c.quests {
		if q.NextQuestID != "" {
			successors[q.NextQuestID] = true
		}
	}

	var roots []string
	for _, id := range c.ordered {
		if successors[id] || len(c.quests[id].Requirements.QuestsCompleted) > 0 {
			continue
		}
		roots = append(roots, id)
	}
	return roots
}
