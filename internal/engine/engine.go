package engine

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/SMCNetwolf/LLMGame/internal/ai"
	"github.com/SMCNetwolf/LLMGame/internal/concurrency"
	"github.com/SMCNetwolf/LLMGame/internal/domain"
	"github.com/SMCNetwolf/LLMGame/internal/event"
	"github.com/SMCNetwolf/LLMGame/internal/inventory"
	"github.com/SMCNetwolf/LLMGame/internal/logger"
	"github.com/SMCNetwolf/LLMGame/internal/naming"
	"github.com/SMCNetwolf/LLMGame/internal/quest"
	"github.com/SMCNetwolf/LLMGame/internal/safety"
	"github.com/SMCNetwolf/LLMGame/internal/world"
)

// Result is the outcome of one processed command. Narrative is always
// set and always in character, whatever happened underneath.
type Result struct {
	Narrative   string `json:"narrative"`
	NewLocation string `json:"new_location,omitempty"`
	ImagePrompt string `json:"image_prompt,omitempty"`
}

// Engine interprets player commands and mutates the game state. Known
// command forms are resolved mechanically; anything else goes to the
// narrative generator.
type Engine struct {
	world  *world.Registry
	quests *quest.Catalog
	ledger *inventory.Ledger
	filter *safety.Filter
	ai     ai.Client
	locks  *concurrency.LockManager
	bus    event.Bus

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates an Engine over the given world, quest catalog, inventory
// ledger, content filter and narrative client.
func New(w *world.Registry, q *quest.Catalog, l *inventory.Ledger, f *safety.Filter, client ai.Client) *Engine {
	seed := uint64(time.Now().UnixNano())
	return &Engine{
		world:  w,
		quests: q,
		ledger: l,
		filter: f,
		ai:     client,
		locks:  concurrency.NewLockManager(),
		rng:    rand.New(rand.NewPCG(seed, seed>>1)),
	}
}

// SetRand replaces the encounter roll source. Intended for tests.
func (e *Engine) SetRand(rng *rand.Rand) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rng = rng
}

// SetEventBus attaches an event bus. Without one the engine simply
// does not publish.
func (e *Engine) SetEventBus(bus event.Bus) {
	e.bus = bus
}

func (e *Engine) publish(ctx context.Context, evt event.Event) {
	if e.bus == nil {
		return
	}
	if err := e.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", evt.Type, "error", err)
	}
}

// NewGameState builds the starting state for a freshly created
// character: starting location, class inventory and the root quests.
func (e *Engine) NewGameState(ctx context.Context, char *domain.Character) domain.GameState {
	class, ok := e.world.Class(char.Class)
	inv := e.ledger.Initialize()
	if ok {
		inv = e.ledger.InitializeForClass(ctx, class)
	}

	now := time.Now()
	return domain.GameState{
		CharacterID:     char.ID,
		CurrentLocation: e.world.StartingLocation(),
		Inventory:       inv,
		QuestProgress:   domain.QuestProgress{Available: e.quests.Roots()},
		Clock:           domain.NewClock(e.world.Rules().Time.StartingHour),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ProcessCommand interprets one player command against the state. It
// never returns an error; failures surface as in-character narrative.
// Calls for the same state are serialized on a per-state lock.
func (e *Engine) ProcessCommand(ctx context.Context, char *domain.Character, state *domain.GameState, command string) (result *Result) {
	log := logger.FromContext(ctx)

	lock := e.locks.GetLock(fmt.Sprintf("gamestate:%d", state.ID))
	lock.Lock()
	defer lock.Unlock()

	defer func() {
		if r := recover(); r != nil {
			log.Error(LogMsgCommandPanic, "panic", r, "command", command)
			result = &Result{Narrative: ai.FallbackNarrative}
		}
	}()

	command = strings.TrimSpace(command)
	log.Info(LogMsgCommandReceived, "character_id", char.ID, "command", command)

	if ok, rejection := e.filter.CheckPlayerInput(ctx, command); !ok {
		log.Warn(LogMsgCommandRejected, "character_id", char.ID)
		e.publish(ctx, event.NewContentFilteredEvent(char.ID, "input"))
		return &Result{Narrative: rejection, ImagePrompt: safety.SafeImageFallback}
	}

	e.healState(ctx, state)

	result, branch := e.dispatch(ctx, char, state, command)
	e.publish(ctx, event.NewCommandProcessedEvent(char.ID, branch))
	return result
}

// healState repairs a stale or malformed session before dispatch.
// Persisted state is treated as untrusted: an unknown location falls
// back to the starting location, a broken inventory or quest-progress
// blob is re-initialized. The caller persists the state after the
// command, which carries the correction along.
func (e *Engine) healState(ctx context.Context, state *domain.GameState) {
	log := logger.FromContext(ctx)

	if _, ok := e.world.Location(state.CurrentLocation); !ok {
		log.Warn(LogMsgLocationHealed, "location", state.CurrentLocation)
		state.CurrentLocation = e.world.StartingLocation()
	}
	e.ledger.SelfHeal(ctx, &state.Inventory)
	if state.QuestProgress.Available == nil && state.QuestProgress.Completed == nil {
		log.Warn(LogMsgQuestProgressHealed)
		state.QuestProgress = domain.QuestProgress{Available: e.quests.Roots()}
	}
}

func (e *Engine) dispatch(ctx context.Context, char *domain.Character, state *domain.GameState, command string) (*Result, string) {
	folded := naming.Fold(command)

	switch {
	case hasTarget(folded, "ir para ", "ir ate ", "viajar para ", "go to "):
		return e.handleMove(ctx, char, state, targetAfter(folded, "ir para ", "ir ate ", "viajar para ", "go to ")), "move"
	case hasTarget(folded, "falar com ", "conversar com ", "talk to "):
		return e.handleTalk(ctx, char, state, targetAfter(folded, "falar com ", "conversar com ", "talk to ")), "talk"
	case folded == "olhar" || folded == "examinar" || folded == "olhar ao redor" || folded == "look":
		return e.handleLook(ctx, char, state), "look"
	case folded == "ajuda" || folded == "comandos" || folded == "help":
		return &Result{Narrative: MsgHelp}, "help"
	case folded == "inventario" || folded == "mochila" || folded == "inventory":
		return &Result{Narrative: e.ledger.Summary(&state.Inventory)}, "inventory"
	case folded == "status" || folded == "ficha":
		return e.handleStatus(char, state), "status"
	case folded == "missoes" || folded == "missao" || folded == "quests":
		return e.handleQuests(char, state), "quests"
	case folded == "descansar" || folded == "dormir" || folded == "rest":
		return e.handleRest(char, state), "rest"
	case hasTarget(folded, "equipar "):
		return e.handleEquip(ctx, char, state, targetAfter(folded, "equipar ")), "equip"
	case hasTarget(folded, "usar ", "use "):
		return e.handleUse(ctx, char, state, targetAfter(folded, "usar ", "use ")), "use"
	}

	return e.handleFreeform(ctx, char, state, command), "freeform"
}

func hasTarget(folded string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(folded, p) && strings.TrimSpace(folded[len(p):]) != "" {
			return true
		}
	}
	return false
}

func targetAfter(folded string, prefixes ...string) string {
	for _, p := range prefixes {
		if strings.HasPrefix(folded, p) {
			return strings.TrimSpace(folded[len(p):])
		}
	}
	return ""
}

func (e *Engine) handleMove(ctx context.Context, char *domain.Character, state *domain.GameState, target string) *Result {
	current, _ := e.world.Location(state.CurrentLocation)
	dest, ok := e.world.ResolveConnection(current.ID, target)
	if !ok {
		// A known but unreachable place gets its own message.
		if known, found := e.world.ResolveLocation(target); found {
			return &Result{Narrative: fmt.Sprintf(MsgFmtNoConnection, current.Name, known.Name)}
		}
		return &Result{Narrative: MsgUnknownPlace}
	}

	state.CurrentLocation = dest.ID
	state.Clock.Advance(1)
	tod := state.Clock.TimeOfDay()

	var b strings.Builder
	fmt.Fprintf(&b, MsgFmtMoved, dest.Name, e.world.DescribeLocation(dest.ID, tod))

	if enc := e.rollEncounter(dest.ID, char.Level, tod); enc != nil {
		b.WriteString(e.resolveEncounter(ctx, char, state, enc))
	}

	b.WriteString(e.settleQuests(ctx, char, state, quest.Action{Type: quest.ActionMove, Target: dest.ID}))

	return &Result{
		Narrative:   b.String(),
		NewLocation: dest.ID,
		ImagePrompt: e.imagePrompt(ctx, char, state),
	}
}

func (e *Engine) rollEncounter(locationID string, level int, tod domain.TimeOfDay) *world.Encounter {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.world.RandomEncounter(e.rng, locationID, level, tod)
}

// resolveEncounter plays out a skirmish the character wins, at the
// price of some health. Health never drops below one here; dying to a
// random roll on the road would end the story mid-sentence.
func (e *Engine) resolveEncounter(ctx context.Context, char *domain.Character, state *domain.GameState, enc *world.Encounter) string {
	damage := enc.Attack - char.Strength/2
	if damage < 1 {
		damage = 1
	}
	char.Health -= damage
	if char.Health < 1 {
		char.Health = 1
	}

	e.ledger.AddGold(&state.Inventory, enc.GoldReward)
	for _, loot := range enc.PotentialLoot {
		_ = e.ledger.Add(ctx, &state.Inventory, loot, 1)
	}

	var b strings.Builder
	fmt.Fprintf(&b, MsgFmtEncounter, enc.Enemy.Name, damage, enc.XPReward, enc.GoldReward)
	for _, loot := range enc.PotentialLoot {
		fmt.Fprintf(&b, MsgFmtRewardItem, e.world.Items().DisplayName(loot))
	}

	if levels := e.world.Rules().ApplyExperience(char, enc.XPReward); levels > 0 {
		logger.FromContext(ctx).Info(LogMsgCharacterLeveled, "character_id", char.ID, "level", char.Level)
		e.publish(ctx, event.NewCharacterLeveledUpEvent(char.ID, char.Level))
		fmt.Fprintf(&b, MsgFmtLevelUp, char.Level)
	}

	b.WriteString(e.settleQuests(ctx, char, state, quest.Action{Type: quest.ActionAttack, Target: enc.Enemy.ID}))
	return b.String()
}

func (e *Engine) handleTalk(ctx context.Context, char *domain.Character, state *domain.GameState, target string) *Result {
	if target == "" {
		return &Result{Narrative: MsgWhoToTalk}
	}

	npc, ok := e.world.ResolveNPCAt(state.CurrentLocation, target)
	if !ok {
		return &Result{Narrative: fmt.Sprintf(MsgFmtNPCNotHere, target)}
	}

	var offered []domain.Quest
	for _, q := range e.quests.Available(char.Level, state.QuestProgress, state.CurrentLocation, &state.Inventory) {
		if q.NPCGiver == npc.ID {
			offered = append(offered, q)
		}
	}

	// An NPC with an open quest leads with the offer line.
	dtype := domain.DialogueGreeting
	if len(offered) > 0 {
		dtype = domain.DialogueQuestOffer
	}

	var b strings.Builder
	fmt.Fprintf(&b, MsgFmtDialogue, npc.Name, e.world.Dialogue(npc.ID, dtype, char))

	for _, q := range offered {
		fmt.Fprintf(&b, MsgFmtQuestOffer, npc.Name, q.Title, q.Description)
	}

	b.WriteString(e.settleQuests(ctx, char, state, quest.Action{Type: quest.ActionTalk, Target: npc.ID}))

	return &Result{Narrative: b.String()}
}

func (e *Engine) handleLook(ctx context.Context, char *domain.Character, state *domain.GameState) *Result {
	return &Result{
		Narrative:   e.world.DescribeLocation(state.CurrentLocation, state.Clock.TimeOfDay()),
		ImagePrompt: e.imagePrompt(ctx, char, state),
	}
}

func (e *Engine) handleStatus(char *domain.Character, state *domain.GameState) *Result {
	return &Result{Narrative: fmt.Sprintf(MsgFmtStatus,
		char.Name, e.className(char), char.Level,
		char.Experience, e.world.Rules().XPForLevel(char.Level+1),
		char.Health, char.HealthCap(),
		char.Mana, char.ManaCap(),
		char.Strength, char.Intelligence, char.Dexterity,
		state.Clock.Day, state.Clock.Hour,
	)}
}

func (e *Engine) handleQuests(char *domain.Character, state *domain.GameState) *Result {
	if len(state.QuestProgress.Available) == 0 && len(state.QuestProgress.Completed) == 0 {
		return &Result{Narrative: MsgNoQuests}
	}

	var b strings.Builder
	if len(state.QuestProgress.Available) > 0 {
		b.WriteString(MsgQuestsHeader)
		for _, id := range state.QuestProgress.Available {
			q, ok := e.quests.Get(id)
			if !ok {
				continue
			}
			fmt.Fprintf(&b, MsgFmtQuestLine, q.Title, string(q.Difficulty), q.Objective)
		}
	}
	if len(state.QuestProgress.Completed) > 0 {
		b.WriteString(MsgCompletedHeader)
		for _, id := range state.QuestProgress.Completed {
			if q, ok := e.quests.Get(id); ok {
				fmt.Fprintf(&b, MsgFmtCompletedLine, q.Title)
			}
		}
	}
	return &Result{Narrative: strings.TrimSuffix(b.String(), "\n")}
}

func (e *Engine) handleRest(char *domain.Character, state *domain.GameState) *Result {
	loc, _ := e.world.Location(state.CurrentLocation)
	if loc.DangerLevel >= domain.RestDangerThreshold {
		return &Result{Narrative: MsgRestTooDangerous}
	}

	rest := e.world.Rules().Rest
	healed := char.RestoreHealth(int(float64(char.HealthCap()) * rest.HealthRecovery))
	mana := char.RestoreMana(int(float64(char.ManaCap()) * rest.ManaRecovery))
	state.Clock.Advance(rest.HoursSpent)

	return &Result{Narrative: fmt.Sprintf(MsgFmtRested,
		rest.HoursSpent, healed, mana, timeNames[state.Clock.TimeOfDay()])}
}

func (e *Engine) handleEquip(ctx context.Context, char *domain.Character, state *domain.GameState, target string) *Result {
	if target == "" {
		return &Result{Narrative: MsgWhatToEquip}
	}
	it, ok := e.world.Items().Resolve(target)
	if !ok {
		return &Result{Narrative: inventory.MsgItemNotInInventory}
	}
	msg, _ := e.ledger.Equip(ctx, &state.Inventory, char, it.InternalName)
	return &Result{Narrative: msg}
}

func (e *Engine) handleUse(ctx context.Context, char *domain.Character, state *domain.GameState, target string) *Result {
	if target == "" {
		return &Result{Narrative: MsgWhatToUse}
	}
	it, ok := e.world.Items().Resolve(target)
	if !ok {
		return &Result{Narrative: inventory.MsgItemNotInInventory}
	}
	msg, _ := e.ledger.Use(ctx, &state.Inventory, char, it.InternalName)
	return &Result{Narrative: msg}
}

// handleFreeform sends anything the mechanical rules do not recognize
// to the narrative generator, wrapped by the content filter on both
// sides. A provider failure stays in character.
func (e *Engine) handleFreeform(ctx context.Context, char *domain.Character, state *domain.GameState, command string) *Result {
	loc, _ := e.world.Location(state.CurrentLocation)
	prompt := fmt.Sprintf(PromptFmtFreeform,
		char.Name, e.className(char), char.Level,
		loc.Name, timeNames[state.Clock.TimeOfDay()], command)

	text, err := e.filter.SafeRequest(ctx, prompt, func(ctx context.Context, safe string) (string, error) {
		return e.ai.GenerateNarrative(ctx, ai.NarrativeRequest{
			Prompt:        safe,
			SystemMessage: safety.SystemMessage,
		})
	})
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgNarrativeFailed, "error", err)
		return &Result{Narrative: ai.FallbackNarrative, ImagePrompt: e.imagePrompt(ctx, char, state)}
	}
	return &Result{Narrative: text, ImagePrompt: e.imagePrompt(ctx, char, state)}
}

// settleQuests checks every open quest against the action, paying out
// rewards and chaining successors for the ones it completes.
func (e *Engine) settleQuests(ctx context.Context, char *domain.Character, state *domain.GameState, action quest.Action) string {
	log := logger.FromContext(ctx)

	var b strings.Builder
	for _, id := range slices.Clone(state.QuestProgress.Available) {
		if !e.quests.CheckCompletion(id, action, &state.Inventory) {
			continue
		}
		q, _ := e.quests.Get(id)

		if q.Type == domain.QuestCollection {
			for _, req := range q.TargetItems {
				count := req.Count
				if count < 1 {
					count = 1
				}
				_ = e.ledger.Remove(ctx, &state.Inventory, req.Item, count)
			}
		}

		rewards := q.ScaledRewards(char.Level)
		e.quests.Complete(id, &state.QuestProgress)
		e.ledger.AddGold(&state.Inventory, rewards.Gold)
		for _, reward := range rewards.Items {
			_ = e.ledger.Add(ctx, &state.Inventory, reward, 1)
		}

		log.Info(LogMsgQuestCompleted, "quest_id", id, "character_id", char.ID)
		e.publish(ctx, event.NewQuestCompletedEvent(char.ID, id, rewards.Experience, rewards.Gold))
		fmt.Fprintf(&b, MsgFmtQuestCompleted, q.Title, rewards.Experience, rewards.Gold)
		for _, reward := range rewards.Items {
			fmt.Fprintf(&b, MsgFmtRewardItem, e.world.Items().DisplayName(reward))
		}
		if next, ok := e.quests.Get(q.NextQuestID); ok {
			fmt.Fprintf(&b, MsgFmtQuestUnlocked, next.Title)
		}

		if levels := e.world.Rules().ApplyExperience(char, rewards.Experience); levels > 0 {
			log.Info(LogMsgCharacterLeveled, "character_id", char.ID, "level", char.Level)
			e.publish(ctx, event.NewCharacterLeveledUpEvent(char.ID, char.Level))
			fmt.Fprintf(&b, MsgFmtLevelUp, char.Level)
		}
	}
	return b.String()
}

func (e *Engine) imagePrompt(ctx context.Context, char *domain.Character, state *domain.GameState) string {
	prompt := e.world.ImagePrompt(state.CurrentLocation, state.Clock.TimeOfDay(), char)
	_, safe := e.filter.FilterImagePrompt(ctx, prompt)
	return safe
}

func (e *Engine) className(char *domain.Character) string {
	if class, ok := e.world.Class(char.Class); ok {
		return class.Name
	}
	return char.Class
}

var timeNames = map[domain.TimeOfDay]string{
	domain.Morning:   "pela manhã",
	domain.Afternoon: "à tarde",
	domain.Evening:   "ao entardecer",
	domain.Night:     "à noite",
}
