package engine

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SMCNetwolf/LLMGame/internal/ai"
	"github.com/SMCNetwolf/LLMGame/internal/domain"
	"github.com/SMCNetwolf/LLMGame/internal/inventory"
	"github.com/SMCNetwolf/LLMGame/internal/quest"
	"github.com/SMCNetwolf/LLMGame/internal/safety"
	"github.com/SMCNetwolf/LLMGame/internal/world"
)

// calmSource never rolls an encounter; hostileSource always does and
// drops every loot entry.
type calmSource struct{}

func (calmSource) Uint64() uint64 { return ^uint64(0) }

type hostileSource struct{}

func (hostileSource) Uint64() uint64 { return 0 }

type stubClient struct {
	narrative string
	err       error
	calls     atomic.Int32
}

func (s *stubClient) GenerateNarrative(ctx context.Context, req ai.NarrativeRequest) (string, error) {
	s.calls.Add(1)
	return s.narrative, s.err
}

func (s *stubClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	return "/static/generated.png", nil
}

func (s *stubClient) GenerateSpeech(ctx context.Context, text string, voice ai.Voice) ([]byte, error) {
	return []byte("audio"), nil
}

func newTestEngine(t *testing.T, client ai.Client) *Engine {
	t.Helper()
	w := world.DefaultRegistry()
	e := New(w, quest.DefaultCatalog(w), inventory.NewLedger(w.Items()), safety.NewFilter(), client)
	e.SetRand(rand.New(calmSource{}))
	return e
}

func newTestCharacter(w *world.Registry) *domain.Character {
	class, _ := w.Class("warrior")
	return &domain.Character{
		ID:           1,
		UserID:       1,
		Name:         "Thorin",
		Class:        "warrior",
		Level:        1,
		Health:       class.BaseStats.Health,
		MaxHealth:    class.BaseStats.Health,
		Mana:         class.BaseStats.Mana,
		MaxMana:      class.BaseStats.Mana,
		Strength:     class.BaseStats.Strength,
		Intelligence: class.BaseStats.Intelligence,
		Dexterity:    class.BaseStats.Dexterity,
	}
}

func TestNewGameState_Defaults(t *testing.T) {
	e := newTestEngine(t, &stubClient{})
	char := newTestCharacter(e.world)

	state := e.NewGameState(context.Background(), char)

	assert.Equal(t, "Meadowbrook", state.CurrentLocation)
	assert.Equal(t, inventory.StartingGold, state.Inventory.Gold)
	assert.Equal(t, "espada_simples", state.Inventory.Equipped.Weapon)
	assert.Equal(t, 2, state.Inventory.Quantity("pocao_cura_menor"))
	assert.Equal(t, 8, state.Clock.Hour)
	assert.Equal(t, 1, state.Clock.Day)
	assert.ElementsMatch(t, []string{"mq001", "sq001", "sq002"}, state.QuestProgress.Available)
}

func TestProcessCommand_MoveSuccess(t *testing.T) {
	e := newTestEngine(t, &stubClient{})
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)

	result := e.ProcessCommand(context.Background(), char, &state, "ir para Floresta Sombria")

	assert.Equal(t, "Floresta Sombria", result.NewLocation)
	assert.Equal(t, "Floresta Sombria", state.CurrentLocation)
	assert.Equal(t, 9, state.Clock.Hour)
	assert.Contains(t, result.Narrative, "Floresta Sombria")
	assert.Contains(t, result.ImagePrompt, safety.SafeImagePromptStyle)
}

func TestProcessCommand_MoveFoldsAccents(t *testing.T) {
	e := newTestEngine(t, &stubClient{})
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)

	result := e.ProcessCommand(context.Background(), char, &state, "IR PARA floresta sombria")

	assert.Equal(t, "Floresta Sombria", state.CurrentLocation)
	assert.Equal(t, "Floresta Sombria", result.NewLocation)
}

func TestProcessCommand_MoveNoConnection(t *testing.T) {
	e := newTestEngine(t, &stubClient{})
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)

	result := e.ProcessCommand(context.Background(), char, &state, "ir para Portus")

	assert.Contains(t, result.Narrative, "Não há caminho")
	assert.Empty(t, result.NewLocation)
	assert.Equal(t, "Meadowbrook", state.CurrentLocation)
	assert.Equal(t, 8, state.Clock.Hour)
}

func TestProcessCommand_MoveUnknownPlace(t *testing.T) {
	e := newTestEngine(t, &stubClient{})
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)

	result := e.ProcessCommand(context.Background(), char, &state, "ir para Atlântida")

	assert.Equal(t, MsgUnknownPlace, result.Narrative)
	assert.Equal(t, "Meadowbrook", state.CurrentLocation)
}

func TestProcessCommand_MoveCompletesExplorationQuest(t *testing.T) {
	e := newTestEngine(t, &stubClient{})
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)
	state.CurrentLocation = "Montanhas do Norte"
	goldBefore := state.Inventory.Gold

	result := e.ProcessCommand(context.Background(), char, &state, "ir para Vale do Oráculo")

	assert.Contains(t, result.Narrative, "Missão concluída: O Chamado do Destino")
	assert.Contains(t, result.Narrative, "Nova missão disponível: Fragmentos da Visão")
	assert.True(t, state.QuestProgress.IsCompleted("mq001"))
	assert.True(t, state.QuestProgress.IsAvailable("mq002"))
	assert.Equal(t, 1, state.Inventory.Quantity("pergaminho_destino"))
	// Easy tier at level one pays 150 experience and 75 gold.
	assert.Equal(t, goldBefore+75, state.Inventory.Gold)
	assert.Equal(t, 150, char.Experience)
	assert.Equal(t, 3, char.Level)
	assert.Contains(t, result.Narrative, "Você subiu para o nível 3")
}

func TestProcessCommand_MoveEncounter(t *testing.T) {
	e := newTestEngine(t, &stubClient{})
	e.SetRand(rand.New(hostileSource{}))
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)

	result := e.ProcessCommand(context.Background(), char, &state, "ir para Floresta Sombria")

	assert.Contains(t, result.Narrative, "Lobo Selvagem")
	assert.Contains(t, result.Narrative, "Missão concluída: O Lobo Solitário")
	assert.True(t, state.QuestProgress.IsCompleted("sq001"))
	assert.Equal(t, char.MaxHealth-1, char.Health)
	assert.Equal(t, 1, state.Inventory.Quantity("pele_lobo"))
	assert.Equal(t, 1, state.Inventory.Quantity("carne_crua"))
}

func TestProcessCommand_TalkGreetingAndQuestOffer(t *testing.T) {
	e := newTestEngine(t, &stubClient{})
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)

	result := e.ProcessCommand(context.Background(), char, &state, "falar com Prefeito Galen")

	assert.Contains(t, result.Narrative, "diz:")
	assert.Contains(t, result.Narrative, "O Lobo Solitário")
}

func TestProcessCommand_TalkNPCNotHere(t *testing.T) {
	e := newTestEngine(t, &stubClient{})
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)

	result := e.ProcessCommand(context.Background(), char, &state, "falar com Oráculo")

	assert.Contains(t, result.Narrative, "Não há ninguém chamado")
}

func TestProcessCommand_Look(t *testing.T) {
	e := newTestEngine(t, &stubClient{})
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)

	result := e.ProcessCommand(context.Background(), char, &state, "olhar")

	assert.Contains(t, result.Narrative, "vila pacífica")
	assert.Contains(t, result.ImagePrompt, "Thorin")
	assert.Empty(t, result.NewLocation)
}

func TestProcessCommand_Help(t *testing.T) {
	e := newTestEngine(t, &stubClient{})
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)

	result := e.ProcessCommand(context.Background(), char, &state, "ajuda")

	assert.Equal(t, MsgHelp, result.Narrative)
}

func TestProcessCommand_Status(t *testing.T) {
	e := newTestEngine(t, &stubClient{})
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)

	result := e.ProcessCommand(context.Background(), char, &state, "status")

	assert.Contains(t, result.Narrative, "Thorin")
	assert.Contains(t, result.Narrative, "Guerreiro de nível 1")
	assert.Contains(t, result.Narrative, "Vida: 120/120")
	assert.Contains(t, result.Narrative, "Dia 1, 8 horas")
}

func TestProcessCommand_Inventory(t *testing.T) {
	e := newTestEngine(t, &stubClient{})
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)

	result := e.ProcessCommand(context.Background(), char, &state, "inventário")

	assert.Contains(t, result.Narrative, "Ouro: 10")
	assert.Contains(t, result.Narrative, "Espada Simples")
}

func TestProcessCommand_Quests(t *testing.T) {
	e := newTestEngine(t, &stubClient{})
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)

	result := e.ProcessCommand(context.Background(), char, &state, "missões")

	assert.Contains(t, result.Narrative, "O Chamado do Destino")
	assert.Contains(t, result.Narrative, "O Lobo Solitário")
	assert.Contains(t, result.Narrative, "Ervas Medicinais")
}

func TestProcessCommand_RestRestores(t *testing.T) {
	e := newTestEngine(t, &stubClient{})
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)
	char.Health = 50
	char.Mana = 5

	result := e.ProcessCommand(context.Background(), char, &state, "descansar")

	assert.Equal(t, 110, char.Health)
	assert.Equal(t, 40, char.Mana)
	assert.Equal(t, 16, state.Clock.Hour)
	assert.Contains(t, result.Narrative, "8 horas")
	assert.Contains(t, result.Narrative, "à tarde")
}

func TestProcessCommand_RestRefusedInDanger(t *testing.T) {
	e := newTestEngine(t, &stubClient{})
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)
	state.CurrentLocation = "Ruínas de Eldrath"
	char.Health = 50

	result := e.ProcessCommand(context.Background(), char, &state, "descansar")

	assert.Equal(t, MsgRestTooDangerous, result.Narrative)
	assert.Equal(t, 50, char.Health)
	assert.Equal(t, 8, state.Clock.Hour)
}

func TestProcessCommand_UseHealingPotion(t *testing.T) {
	e := newTestEngine(t, &stubClient{})
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)
	char.Health = 90

	result := e.ProcessCommand(context.Background(), char, &state, "usar Poção de Cura Menor")

	assert.Contains(t, result.Narrative, "Poção de Cura Menor")
	assert.Equal(t, 110, char.Health)
	assert.Equal(t, 1, state.Inventory.Quantity("pocao_cura_menor"))
}

func TestProcessCommand_UseUnknownItem(t *testing.T) {
	e := newTestEngine(t, &stubClient{})
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)

	result := e.ProcessCommand(context.Background(), char, &state, "usar Cálice Dourado")

	assert.Equal(t, inventory.MsgItemNotInInventory, result.Narrative)
}

func TestProcessCommand_Equip(t *testing.T) {
	e := newTestEngine(t, &stubClient{})
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)
	require.NoError(t, e.ledger.Add(context.Background(), &state.Inventory, "adaga", 1))

	result := e.ProcessCommand(context.Background(), char, &state, "equipar Adaga")

	assert.Contains(t, result.Narrative, "Equipou Adaga")
	assert.Equal(t, "adaga", state.Inventory.Equipped.Weapon)
	assert.Equal(t, 1, state.Inventory.Quantity("espada_simples"))
}

func TestProcessCommand_RejectedInputLeavesStateUntouched(t *testing.T) {
	client := &stubClient{narrative: "não deveria ser chamado"}
	e := newTestEngine(t, client)
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)

	result := e.ProcessCommand(context.Background(), char, &state, "quero matar e torturar todos na vila")

	assert.Equal(t, safety.RejectionViolent, result.Narrative)
	assert.Equal(t, safety.SafeImageFallback, result.ImagePrompt)
	assert.Equal(t, "Meadowbrook", state.CurrentLocation)
	assert.Equal(t, 8, state.Clock.Hour)
	assert.Equal(t, int32(0), client.calls.Load())
}

func TestProcessCommand_FreeformNarration(t *testing.T) {
	client := &stubClient{narrative: "Você examina o altar antigo e sente uma energia pulsante."}
	e := newTestEngine(t, client)
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)

	result := e.ProcessCommand(context.Background(), char, &state, "examinar o altar de pedra no centro da vila")

	assert.Equal(t, client.narrative, result.Narrative)
	assert.Equal(t, int32(1), client.calls.Load())
	assert.Contains(t, result.ImagePrompt, "Thorin")
}

func TestProcessCommand_FreeformProviderFailureStaysInCharacter(t *testing.T) {
	client := &stubClient{err: errors.New("timeout")}
	e := newTestEngine(t, client)
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)

	result := e.ProcessCommand(context.Background(), char, &state, "procurar tesouros escondidos")

	assert.Equal(t, ai.FallbackNarrative, result.Narrative)
	assert.Equal(t, "Meadowbrook", state.CurrentLocation)
	assert.NotEmpty(t, result.ImagePrompt)
}

func TestProcessCommand_MovePartialName(t *testing.T) {
	e := newTestEngine(t, &stubClient{})
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)

	result := e.ProcessCommand(context.Background(), char, &state, "ir para floresta")

	assert.Equal(t, "Floresta Sombria", result.NewLocation)
	assert.Equal(t, "Floresta Sombria", state.CurrentLocation)
}

func TestProcessCommand_TalkPartialName(t *testing.T) {
	e := newTestEngine(t, &stubClient{})
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)

	result := e.ProcessCommand(context.Background(), char, &state, "falar com prefeito")

	assert.Contains(t, result.Narrative, "Prefeito Galen diz:")
}

func TestProcessCommand_TalkLeadsWithQuestOffer(t *testing.T) {
	e := newTestEngine(t, &stubClient{})
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)

	result := e.ProcessCommand(context.Background(), char, &state, "falar com Prefeito Galen")

	// With sq001 still open the prefeito speaks his offer line, not the greeting.
	assert.Contains(t, result.Narrative, "Um lobo feroz tem atacado os rebanhos")
	assert.NotContains(t, result.Narrative, "Saudações, Thorin")
}

func TestProcessCommand_LookHealsUnknownLocation(t *testing.T) {
	e := newTestEngine(t, &stubClient{})
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)
	state.CurrentLocation = "Atlântida Perdida"

	result := e.ProcessCommand(context.Background(), char, &state, "olhar")

	assert.Equal(t, "Meadowbrook", state.CurrentLocation)
	assert.Contains(t, result.Narrative, "vila pacífica")
}

func TestProcessCommand_RestHealsUnknownLocation(t *testing.T) {
	e := newTestEngine(t, &stubClient{})
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)
	state.CurrentLocation = "Atlântida Perdida"
	char.Health = 50

	result := e.ProcessCommand(context.Background(), char, &state, "descansar")

	assert.Equal(t, "Meadowbrook", state.CurrentLocation)
	assert.Equal(t, 16, state.Clock.Hour)
	assert.Contains(t, result.Narrative, "revigorado")
}

func TestProcessCommand_InventoryHealsBrokenState(t *testing.T) {
	e := newTestEngine(t, &stubClient{})
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)
	state.Inventory = domain.Inventory{}

	result := e.ProcessCommand(context.Background(), char, &state, "inventário")

	assert.True(t, state.Inventory.Valid())
	assert.Contains(t, result.Narrative, "Ouro: 10")
}

func TestProcessCommand_QuestsHealBrokenProgress(t *testing.T) {
	e := newTestEngine(t, &stubClient{})
	char := newTestCharacter(e.world)
	state := e.NewGameState(context.Background(), char)
	state.QuestProgress = domain.QuestProgress{}

	result := e.ProcessCommand(context.Background(), char, &state, "missões")

	assert.ElementsMatch(t, []string{"mq001", "sq001", "sq002"}, state.QuestProgress.Available)
	assert.Contains(t, result.Narrative, "O Chamado do Destino")
}
