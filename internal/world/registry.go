package world

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/SMCNetwolf/LLMGame/internal/domain"
	"github.com/SMCNetwolf/LLMGame/internal/item"
	"github.com/SMCNetwolf/LLMGame/internal/naming"
)

// Sentinel errors for registry construction
var (
	ErrInvalidWorld = errors.New("invalid world definition")
)

// Config is the raw world definition handed to NewRegistry.
type Config struct {
	Name             string
	Description      string
	StartingLocation string
	Rules            Rules
	Classes          []domain.CharacterClass
	Locations        []domain.Location
	NPCs             []domain.NPC
	Enemies          []domain.Enemy
	Items            *item.Catalog
}

// Registry is the immutable, validated world model. All cross-references
// between locations, NPCs, enemies, classes and items are resolved at
// construction, so lookups at runtime cannot dangle.
type Registry struct {
	name             string
	description      string
	startingLocation string
	rules            Rules

	classes   map[string]domain.CharacterClass
	locations map[string]domain.Location
	npcs      map[string]domain.NPC
	enemies   map[string]domain.Enemy
	items     *item.Catalog

	locationNames naming.Resolver
	npcNames      naming.Resolver
}

// NewRegistry validates the config and builds a registry. Every
// reference must resolve; a dangling id fails construction.
func NewRegistry(cfg Config) (*Registry, error) {
	if len(cfg.Locations) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidWorld, ErrMsgNoLocations)
	}
	if cfg.Items == nil {
		return nil, fmt.Errorf("%w: item catalog is required", ErrInvalidWorld)
	}

	r := &Registry{
		name:             cfg.Name,
		description:      cfg.Description,
		startingLocation: cfg.StartingLocation,
		rules:            cfg.Rules,
		classes:          make(map[string]domain.CharacterClass, len(cfg.Classes)),
		locations:        make(map[string]domain.Location, len(cfg.Locations)),
		npcs:             make(map[string]domain.NPC, len(cfg.NPCs)),
		enemies:          make(map[string]domain.Enemy, len(cfg.Enemies)),
		items:            cfg.Items,
		locationNames:    naming.NewResolver(),
		npcNames:         naming.NewResolver(),
	}

	for _, loc := range cfg.Locations {
		if _, dup := r.locations[loc.ID]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicateLocation, ErrInvalidWorld, loc.ID)
		}
		r.locations[loc.ID] = loc
		r.locationNames.Register(loc.ID, loc.Name)
	}
	for _, npc := range cfg.NPCs {
		if _, dup := r.npcs[npc.ID]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicateNPC, ErrInvalidWorld, npc.ID)
		}
		r.npcs[npc.ID] = npc
		r.npcNames.Register(npc.ID, npc.Name)
	}
	for _, enemy := range cfg.Enemies {
		if _, dup := r.enemies[enemy.ID]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicateEnemy, ErrInvalidWorld, enemy.ID)
		}
		r.enemies[enemy.ID] = enemy
	}
	for _, class := range cfg.Classes {
		if _, dup := r.classes[class.ID]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicateClass, ErrInvalidWorld, class.ID)
		}
		r.classes[class.ID] = class
	}

	if err := r.validateRefs(); err != nil {
		return nil, err
	}
	if _, ok := r.locations[r.startingLocation]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidWorld, ErrMsgStartingLocationAbsent)
	}

	return r, nil
}

func (r *Registry) validateRefs() error {
	for id, loc := range r.locations {
		for _, conn := range loc.Connections {
			if _, ok := r.locations[conn]; !ok {
				return fmt.Errorf(ErrFmtUnknownConnection, ErrInvalidWorld, id, conn)
			}
		}
		for _, npcID := range loc.NPCs {
			if _, ok := r.npcs[npcID]; !ok {
				return fmt.Errorf(ErrFmtUnknownLocationNPC, ErrInvalidWorld, id, npcID)
			}
		}
		for _, enemyID := range loc.Enemies {
			if _, ok := r.enemies[enemyID]; !ok {
				return fmt.Errorf(ErrFmtUnknownLocationEnemy, ErrInvalidWorld, id, enemyID)
			}
		}
	}

	for id, npc := range r.npcs {
		if _, ok := r.locations[npc.Location]; !ok {
			return fmt.Errorf(ErrFmtUnknownNPCLocation, ErrInvalidWorld, id, npc.Location)
		}
		for _, itemName := range npc.Inventory {
			if !r.items.Has(itemName) {
				return fmt.Errorf(ErrFmtUnknownNPCItem, ErrInvalidWorld, id, itemName)
			}
		}
	}

	for id, enemy := range r.enemies {
		for _, locID := range enemy.Locations {
			if _, ok := r.locations[locID]; !ok {
				return fmt.Errorf(ErrFmtUnknownEnemyLocation, ErrInvalidWorld, id, locID)
			}
		}
		for _, drop := range enemy.LootTable {
			if !r.items.Has(drop.Item) {
				return fmt.Errorf(ErrFmtUnknownLootItem, ErrInvalidWorld, id, drop.Item)
			}
			if drop.Chance < 0 || drop.Chance > 1 {
				return fmt.Errorf(ErrFmtBadLootChance, ErrInvalidWorld, id, drop.Item)
			}
		}
	}

	for id, class := range r.classes {
		for _, itemName := range append(class.StartingEquipment, class.StartingInventory...) {
			if !r.items.Has(itemName) {
				return fmt.Errorf(ErrFmtUnknownClassItem, ErrInvalidWorld, id, itemName)
			}
		}
	}

	return nil
}

// Name returns the world name.
func (r *Registry) Name() string { return r.name }

// StartingLocation returns the id of the location new sessions begin in.
func (r *Registry) StartingLocation() string { return r.startingLocation }

// Rules returns the mechanics rule set.
func (r *Registry) Rules() Rules { return r.rules }

// Items returns the item catalog the world was validated against.
func (r *Registry) Items() *item.Catalog { return r.items }

// Location returns a location by id.
func (r *Registry) Location(id string) (domain.Location, bool) {
	loc, ok := r.locations[id]
	return loc, ok
}

// ResolveLocation looks a location up by display name, folding case and
// accents.
func (r *Registry) ResolveLocation(name string) (domain.Location, bool) {
	id, ok := r.locationNames.ResolveDisplayName(name)
	if !ok {
		return domain.Location{}, false
	}
	return r.Location(id)
}

// ResolveConnection resolves a destination token against the
// connections of a location. The token matches when it folds equal to,
// or is a folded substring of, a connected location's display name or
// identifier, so "floresta" reaches "Floresta Sombria".
func (r *Registry) ResolveConnection(fromID, token string) (domain.Location, bool) {
	if strings.TrimSpace(token) == "" {
		return domain.Location{}, false
	}
	from, ok := r.locations[fromID]
	if !ok {
		return domain.Location{}, false
	}
	for _, conn := range from.Connections {
		loc := r.locations[conn]
		if naming.ContainsFold(loc.Name, token) || naming.ContainsFold(loc.ID, token) {
			return loc, true
		}
	}
	return domain.Location{}, false
}

// NPC returns an NPC by id.
func (r *Registry) NPC(id string) (domain.NPC, bool) {
	npc, ok := r.npcs[id]
	return npc, ok
}

// ResolveNPC looks an NPC up by display name, folding case and accents.
func (r *Registry) ResolveNPC(name string) (domain.NPC, bool) {
	id, ok := r.npcNames.ResolveDisplayName(name)
	if !ok {
		return domain.NPC{}, false
	}
	return r.NPC(id)
}

// ResolveNPCAt resolves an NPC token against the inhabitants of a
// location with the same substring rules as ResolveConnection.
func (r *Registry) ResolveNPCAt(locationID, token string) (domain.NPC, bool) {
	if strings.TrimSpace(token) == "" {
		return domain.NPC{}, false
	}
	loc, ok := r.locations[locationID]
	if !ok {
		return domain.NPC{}, false
	}
	for _, id := range loc.NPCs {
		npc := r.npcs[id]
		if naming.ContainsFold(npc.Name, token) || naming.ContainsFold(npc.ID, token) {
			return npc, true
		}
	}
	return domain.NPC{}, false
}

// Enemy returns an enemy by id.
func (r *Registry) Enemy(id string) (domain.Enemy, bool) {
	enemy, ok := r.enemies[id]
	return enemy, ok
}

// Class returns a character class by id.
func (r *Registry) Class(id string) (domain.CharacterClass, bool) {
	class, ok := r.classes[id]
	return class, ok
}

// Classes returns all class definitions.
func (r *Registry) Classes() []domain.CharacterClass {
	out := make([]domain.CharacterClass, 0, len(r.classes))
	for _, class := range r.classes {
		out = append(out, class)
	}
	return out
}

// HasLocation reports whether the location id exists.
func (r *Registry) HasLocation(id string) bool {
	_, ok := r.locations[id]
	return ok
}

// HasNPC reports whether the NPC id exists.
func (r *Registry) HasNPC(id string) bool {
	_, ok := r.npcs[id]
	return ok
}

// HasEnemy reports whether the enemy id exists.
func (r *Registry) HasEnemy(id string) bool {
	_, ok := r.enemies[id]
	return ok
}

// NPCsAt returns the NPCs present at a location.
func (r *Registry) NPCsAt(locationID string) []domain.NPC {
	loc, ok := r.locations[locationID]
	if !ok {
		return nil
	}
	npcs := make([]domain.NPC, 0, len(loc.NPCs))
	for _, id := range loc.NPCs {
		npcs = append(npcs, r.npcs[id])
	}
	return npcs
}

// EnemiesAt returns the enemies that can appear at a location.
func (r *Registry) EnemiesAt(locationID string) []domain.Enemy {
	loc, ok := r.locations[locationID]
	if !ok {
		return nil
	}
	enemies := make([]domain.Enemy, 0, len(loc.Enemies))
	for _, id := range loc.Enemies {
		enemies = append(enemies, r.enemies[id])
	}
	return enemies
}

// DescribeLocation composes the narration for a location: base
// description, time-of-day flavor, exits, visible NPCs and services.
func (r *Registry) DescribeLocation(locationID string, tod domain.TimeOfDay) string {
	loc, ok := r.locations[locationID]
	if !ok {
		return MsgUnknownLocation
	}

	var b strings.Builder
	b.WriteString(loc.Description)

	switch tod {
	case domain.Morning:
		b.WriteString(DescMorning)
	case domain.Afternoon:
		b.WriteString(DescAfternoon)
	case domain.Evening:
		b.WriteString(DescEvening)
	case domain.Night:
		b.WriteString(DescNight)
	}

	if len(loc.Connections) > 0 {
		names := make([]string, len(loc.Connections))
		for i, conn := range loc.Connections {
			names[i] = r.locations[conn].Name
		}
		fmt.Fprintf(&b, " Daqui você pode seguir para: %s.", strings.Join(names, ", "))
	}

	if npcs := r.NPCsAt(locationID); len(npcs) > 0 {
		names := make([]string, len(npcs))
		for i, npc := range npcs {
			names[i] = npc.Name
		}
		fmt.Fprintf(&b, " Você pode ver: %s.", strings.Join(names, ", "))
	}

	if len(loc.Services) > 0 {
		var services []string
		for _, s := range loc.Services {
			if display, ok := ServiceDisplayNames[s]; ok {
				services = append(services, display)
			}
		}
		if len(services) > 0 {
			fmt.Fprintf(&b, " Aqui você encontra: %s.", strings.Join(services, ", "))
		}
	}

	return b.String()
}

// ImagePrompt builds the raw illustration prompt for a location. The
// caller is expected to pass it through the safety filter before
// sending it anywhere.
func (r *Registry) ImagePrompt(locationID string, tod domain.TimeOfDay, character *domain.Character) string {
	loc, ok := r.locations[locationID]
	if !ok {
		return MsgUnknownImage
	}

	prompt := loc.ImageDescription
	switch tod {
	case domain.Morning:
		prompt += ImgMorning
	case domain.Afternoon:
		prompt += ImgAfternoon
	case domain.Evening:
		prompt += ImgEvening
	case domain.Night:
		prompt += ImgNight
	}

	if character != nil {
		className := character.Class
		if class, ok := r.classes[character.Class]; ok {
			className = class.Name
		}
		prompt = fmt.Sprintf("%s, %s, %s", character.Name, className, prompt)
	}

	return prompt + MsgImagePromptStyle
}

// Dialogue returns the canned utterance of an NPC, with character
// placeholders substituted. Unknown NPCs and missing dialogue types
// stay silent rather than erroring.
func (r *Registry) Dialogue(npcID string, dtype domain.DialogueType, character *domain.Character) string {
	npc, ok := r.npcs[npcID]
	if !ok {
		return MsgSilentDialogue
	}
	dialogue, ok := npc.Dialogue[dtype]
	if !ok {
		return MsgSilentDialogue
	}

	if character != nil {
		dialogue = strings.ReplaceAll(dialogue, TokenCharacterName, character.Name)
		className := character.Class
		if class, ok := r.classes[character.Class]; ok {
			className = class.Name
		}
		dialogue = strings.ReplaceAll(dialogue, TokenCharacterClass, className)
	}

	return dialogue
}

// EncounterChance returns the probability in [0, 0.9] of a hostile
// encounter at a location. Danger contributes 10% per level; night
// multiplies it.
func (r *Registry) EncounterChance(locationID string, tod domain.TimeOfDay) float64 {
	loc, ok := r.locations[locationID]
	if !ok {
		return 0
	}

	chance := float64(loc.DangerLevel) * 0.1
	if tod == domain.Night {
		chance *= r.rules.Time.NightDangerIncrease
	}
	return min(chance, 0.9)
}

// Encounter describes a rolled hostile encounter.
type Encounter struct {
	Enemy         domain.Enemy
	Level         int
	Health        int
	Attack        int
	Defense       int
	XPReward      int
	GoldReward    int
	PotentialLoot []string
}

// RandomEncounter rolls for an encounter at a location. Returns nil
// when nothing shows up or the location has no enemies. Enemies scale
// up toward characters more than two levels above them.
func (r *Registry) RandomEncounter(rng *rand.Rand, locationID string, characterLevel int, tod domain.TimeOfDay) *Encounter {
	if rng.Float64() > r.EncounterChance(locationID, tod) {
		return nil
	}

	enemies := r.EnemiesAt(locationID)
	if len(enemies) == 0 {
		return nil
	}

	enemy := enemies[rng.IntN(len(enemies))]
	level := enemy.Level
	if characterLevel > level+2 {
		level = characterLevel - 2
	}
	boost := level - enemy.Level

	gold := enemy.Stats.GoldReward[0]
	if spread := enemy.Stats.GoldReward[1] - enemy.Stats.GoldReward[0]; spread > 0 {
		gold += rng.IntN(spread + 1)
	}

	enc := &Encounter{
		Enemy:      enemy,
		Level:      level,
		Health:     enemy.Stats.Health + boost*10,
		Attack:     enemy.Stats.Attack + boost*2,
		Defense:    enemy.Stats.Defense + boost,
		XPReward:   int(float64(enemy.Stats.XPReward) * (1 + 0.1*float64(boost))),
		GoldReward: gold,
	}
	for _, drop := range enemy.LootTable {
		if rng.Float64() <= drop.Chance {
			enc.PotentialLoot = append(enc.PotentialLoot, drop.Item)
		}
	}
	return enc
}
