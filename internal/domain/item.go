package domain

// ItemCategory classifies catalog items. Only weapon, armor and accessory
// are equippable.
type ItemCategory string

const (
	CategoryWeapon    ItemCategory = "weapon"
	CategoryArmor     ItemCategory = "armor"
	CategoryAccessory ItemCategory = "accessory"
	CategoryPotion    ItemCategory = "potion"
	CategoryScroll    ItemCategory = "scroll"
	CategoryKey       ItemCategory = "key"
	CategoryQuest     ItemCategory = "quest"
	CategoryMaterial  ItemCategory = "material"
	CategoryFood      ItemCategory = "food"
	CategoryTreasure  ItemCategory = "treasure"
)

// Equippable reports whether items of this category can occupy an
// equipment slot.
func (c ItemCategory) Equippable() bool {
	return c == CategoryWeapon || c == CategoryArmor || c == CategoryAccessory
}

// ItemStats holds the optional numeric effects of an item. Zero means the
// stat does not apply.
type ItemStats struct {
	Damage          int `json:"damage,omitempty"`
	Defense         int `json:"defense,omitempty"`
	Durability      int `json:"durability,omitempty"`
	MagicBoost      int `json:"magic_boost,omitempty"`
	MagicResistance int `json:"magic_resistance,omitempty"`
	HealthRestore   int `json:"health_restore,omitempty"`
	ManaRestore     int `json:"mana_restore,omitempty"`
	Range           int `json:"range,omitempty"`
}

// ItemRequirements are the minimum character attributes needed to equip an
// item. Zero means no requirement.
type ItemRequirements struct {
	Level        int `json:"level,omitempty"`
	Strength     int `json:"strength,omitempty"`
	Dexterity    int `json:"dexterity,omitempty"`
	Intelligence int `json:"intelligence,omitempty"`
}

// Item is an immutable catalog entry. InternalName is the stable
// identifier used in inventories and loot tables; Name is the Portuguese
// display name players type in commands.
type Item struct {
	InternalName string           `json:"internal_name"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Category     ItemCategory     `json:"category"`
	Value        int              `json:"value"`
	Weight       float64          `json:"weight"`
	Stats        ItemStats        `json:"stats,omitempty"`
	Requirements ItemRequirements `json:"requirements,omitempty"`
	Consumable   bool             `json:"consumable,omitempty"`
	QuestID      string           `json:"quest_id,omitempty"`
}
