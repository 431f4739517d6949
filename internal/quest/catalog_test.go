package quest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SMCNetwolf/LLMGame/internal/domain"
	"github.com/SMCNetwolf/LLMGame/internal/world"
)

func testWorld(t *testing.T) *world.Registry {
	t.Helper()
	return world.DefaultRegistry()
}

func freshInventory() *domain.Inventory {
	return &domain.Inventory{
		Gold:     10,
		Capacity: domain.Capacity{MaxWeight: 50},
		Items:    map[string]int{},
	}
}

func TestNewCatalog_DefaultDataValidates(t *testing.T) {
	c, err := NewCatalog(Default(), testWorld(t))
	require.NoError(t, err)

	q, ok := c.Get("mq001")
	require.True(t, ok)
	assert.Equal(t, "O Chamado do Destino", q.Title)
	assert.Equal(t, "mq002", q.NextQuestID)
}

func TestNewCatalog_DanglingSuccessor(t *testing.T) {
	quests := []domain.Quest{
		{ID: "q1", Type: domain.QuestExploration, Difficulty: domain.DifficultyEasy, NextQuestID: "q9"},
	}
	_, err := NewCatalog(quests, testWorld(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
	assert.Contains(t, err.Error(), "q9")
}

func TestNewCatalog_UnknownTargetLocation(t *testing.T) {
	quests := []domain.Quest{
		{ID: "q1", Type: domain.QuestExploration, Difficulty: domain.DifficultyEasy, TargetLocation: "Avalon"},
	}
	_, err := NewCatalog(quests, testWorld(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Avalon")
}

func TestAvailable_FiltersByLevelPrereqsAndLocation(t *testing.T) {
	c := DefaultCatalog(testWorld(t))
	progress := domain.QuestProgress{}
	inv := freshInventory()

	// Fresh level 1 character in Meadowbrook: mq001 and sq001 only
	available := c.Available(1, progress, "Meadowbrook", inv)
	ids := questIDs(available)
	assert.ElementsMatch(t, []string{"mq001", "sq001"}, ids)

	// Level 2 unlocks sq002
	available = c.Available(2, progress, "Meadowbrook", inv)
	assert.ElementsMatch(t, []string{"mq001", "sq001", "sq002"}, questIDs(available))

	// mq002 needs level 3, mq001 done, and the scroll in the pack
	progress.MarkCompleted("mq001")
	available = c.Available(3, progress, "Vale do Oráculo", inv)
	assert.Empty(t, questIDs(available))

	inv.Items["pergaminho_destino"] = 1
	available = c.Available(3, progress, "Vale do Oráculo", inv)
	assert.ElementsMatch(t, []string{"mq002"}, questIDs(available))
}

func TestAvailable_CompletedQuestsExcluded(t *testing.T) {
	c := DefaultCatalog(testWorld(t))
	progress := domain.QuestProgress{}
	progress.MarkCompleted("sq001")

	available := c.Available(1, progress, "Meadowbrook", freshInventory())
	assert.ElementsMatch(t, []string{"mq001"}, questIDs(available))
}

func TestCheckCompletion_Exploration(t *testing.T) {
	c := DefaultCatalog(testWorld(t))

	assert.True(t, c.CheckCompletion("mq001", Action{Type: ActionMove, Target: "Vale do Oráculo"}, nil))
	assert.False(t, c.CheckCompletion("mq001", Action{Type: ActionMove, Target: "Portus"}, nil))
	assert.False(t, c.CheckCompletion("mq001", Action{Type: ActionAttack, Target: "Vale do Oráculo"}, nil))
}

func TestCheckCompletion_Combat(t *testing.T) {
	c := DefaultCatalog(testWorld(t))

	assert.True(t, c.CheckCompletion("sq001", Action{Type: ActionAttack, Target: "lobo"}, nil))
	assert.False(t, c.CheckCompletion("sq001", Action{Type: ActionAttack, Target: "urso"}, nil))
}

func TestCheckCompletion_Collection(t *testing.T) {
	c := DefaultCatalog(testWorld(t))
	inv := freshInventory()

	assert.False(t, c.CheckCompletion("sq002", Action{}, inv))

	inv.Items["flor_beladona"] = 4
	assert.False(t, c.CheckCompletion("sq002", Action{}, inv))

	inv.Items["flor_beladona"] = 5
	assert.True(t, c.CheckCompletion("sq002", Action{}, inv))
}

func TestComplete_UnlocksSuccessorIdempotently(t *testing.T) {
	c := DefaultCatalog(testWorld(t))
	progress := domain.QuestProgress{Available: []string{"mq001"}}

	c.Complete("mq001", &progress)
	assert.True(t, progress.IsCompleted("mq001"))
	assert.False(t, progress.IsAvailable("mq001"))
	assert.True(t, progress.IsAvailable("mq002"))

	c.Complete("mq001", &progress)
	assert.Len(t, progress.Completed, 1)
	assert.Len(t, progress.Available, 1)
}

func TestScaledRewards(t *testing.T) {
	c := DefaultCatalog(testWorld(t))
	q, _ := c.Get("mq001")

	// easy = 1.5x, level 1 adds nothing
	rewards := q.ScaledRewards(1)
	assert.Equal(t, 150, rewards.Experience)
	assert.Equal(t, 75, rewards.Gold)

	// level 3 adds 20%
	rewards = q.ScaledRewards(3)
	assert.Equal(t, 180, rewards.Experience)
	assert.Equal(t, 90, rewards.Gold)
	assert.Equal(t, []string{"pergaminho_destino"}, rewards.Items)
}

func questIDs(quests []domain.Quest) []string {
	ids := make([]string, len(quests))
	for i, q := range quests {
		ids[i] = q.ID
	}
	return ids
}
