package domain

// QuestType drives which action pattern completes a quest.
type QuestType string

const (
	QuestExploration QuestType = "exploration"
	QuestCombat      QuestType = "combat"
	QuestCollection  QuestType = "collection"
	QuestDelivery    QuestType = "delivery"
	QuestDialogue    QuestType = "dialogue"
)

// Difficulty tier of a quest. Reward scaling multiplies the base reward
// by the tier multiplier and by character level.
type Difficulty string

const (
	DifficultyNovice Difficulty = "novice"
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyEpic   Difficulty = "epic"
)

// Multiplier returns the reward scaling factor for the tier. Unknown
// tiers scale like novice.
func (d Difficulty) Multiplier() float64 {
	switch d {
	case DifficultyEasy:
		return 1.5
	case DifficultyMedium:
		return 2.0
	case DifficultyHard:
		return 3.0
	case DifficultyEpic:
		return 5.0
	default:
		return 1.0
	}
}

// QuestRequirements gate when a quest becomes available.
type QuestRequirements struct {
	MinLevel        int      `json:"min_level"`
	ItemsRequired   []string `json:"items_required,omitempty"`
	QuestsCompleted []string `json:"quests_completed,omitempty"`
}

// QuestRewards are base values before difficulty and level scaling.
type QuestRewards struct {
	Experience int      `json:"experience"`
	Gold       int      `json:"gold"`
	Items      []string `json:"items,omitempty"`
}

// ItemRequirement is one collection objective entry.
type ItemRequirement struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

// Quest is an immutable catalog entry. Target fields are populated per
// Type: exploration uses TargetLocation, combat uses TargetEnemy and
// TargetCount, collection uses TargetItems, dialogue uses TargetNPC.
type Quest struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Objective    string            `json:"objective"`
	Type         QuestType         `json:"type"`
	Difficulty   Difficulty        `json:"difficulty"`
	Requirements QuestRequirements `json:"requirements"`
	Rewards      QuestRewards      `json:"rewards"`
	NextQuestID  string            `json:"next_quest_id,omitempty"`
	Location     string            `json:"location,omitempty"`
	NPCGiver     string            `json:"npc_giver,omitempty"`

	TargetLocation string            `json:"target_location,omitempty"`
	TargetEnemy    string            `json:"target_enemy,omitempty"`
	TargetCount    int               `json:"target_count,omitempty"`
	TargetItems    []ItemRequirement `json:"target_items,omitempty"`
	TargetNPC      string            `json:"target_npc,omitempty"`
}

// ScaledRewards applies the difficulty multiplier and the character
// level bonus of 10% per level above the first.
func (q Quest) ScaledRewards(level int) QuestRewards {
	if level < 1 {
		level = 1
	}
	factor := q.Difficulty.Multiplier() * (1.0 + 0.1*float64(level-1))
	return QuestRewards{
		Experience: int(float64(q.Rewards.Experience) * factor),
		Gold:       int(float64(q.Rewards.Gold) * factor),
		Items:      q.Rewards.Items,
	}
}
