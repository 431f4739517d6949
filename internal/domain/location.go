package domain

// LocationType tags the terrain class of a location.
type LocationType string

const (
	LocationVillage    LocationType = "village"
	LocationWilderness LocationType = "wilderness"
	LocationRoad       LocationType = "road"
	LocationCity       LocationType = "city"
	LocationMountains  LocationType = "mountains"
	LocationRuins      LocationType = "ruins"
	LocationSwamp      LocationType = "swamp"
	LocationCoast      LocationType = "coast"
	LocationSpecial    LocationType = "special"
)

// Danger level at or above which resting is refused.
const RestDangerThreshold = 4

// Location is an immutable node of the world graph. Connections are
// one-directional identifiers; the registry validates that each one
// resolves but does not require the reverse edge.
type Location struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	Type             LocationType `json:"type"`
	Connections      []string     `json:"connections"`
	NPCs             []string     `json:"npcs,omitempty"`
	Enemies          []string     `json:"enemies,omitempty"`
	Services         []string     `json:"services,omitempty"`
	Quests           []string     `json:"quests,omitempty"`
	DangerLevel      int          `json:"danger_level"`
	ImageDescription string       `json:"image_description"`
}

// DialogueType selects which canned NPC utterance to surface.
type DialogueType string

const (
	DialogueGreeting    DialogueType = "greeting"
	DialogueFarewell    DialogueType = "farewell"
	DialogueQuestOffer  DialogueType = "quest_offer"
	DialogueTransaction DialogueType = "transaction"
)

// NPC is an immutable world inhabitant. Dialogue templates may contain
// {character_name} and {character_class} placeholder tokens.
type NPC struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Role        string                  `json:"role"`
	Location    string                  `json:"location"`
	Quests      []string                `json:"quests,omitempty"`
	Services    []string                `json:"services,omitempty"`
	Inventory   []string                `json:"inventory,omitempty"`
	Dialogue    map[DialogueType]string `json:"dialogue"`
}

// EnemyStats is the base stat block of an enemy at its base level.
type EnemyStats struct {
	Health     int    `json:"health"`
	Attack     int    `json:"attack"`
	Defense    int    `json:"defense"`
	XPReward   int    `json:"xp_reward"`
	GoldReward [2]int `json:"gold_reward"`
}

// LootDrop is one loot table entry; Chance is a probability in [0, 1].
type LootDrop struct {
	Item   string  `json:"item"`
	Chance float64 `json:"chance"`
}

// Enemy is an immutable bestiary entry.
type Enemy struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Level       int        `json:"level"`
	Stats       EnemyStats `json:"stats"`
	LootTable   []LootDrop `json:"loot_table,omitempty"`
	Locations   []string   `json:"locations,omitempty"`
}
