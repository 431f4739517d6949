package domain

// ClassBaseStats seeds a fresh character of a given class.
type ClassBaseStats struct {
	Health       int `json:"health"`
	Mana         int `json:"mana"`
	Strength     int `json:"strength"`
	Intelligence int `json:"intelligence"`
	Dexterity    int `json:"dexterity"`
}

// CharacterClass is an immutable class definition. StartingEquipment
// lists internal item names pre-equipped at creation; StartingInventory
// lists loose items added to the pack.
type CharacterClass struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Description       string         `json:"description"`
	BaseStats         ClassBaseStats `json:"base_stats"`
	Abilities         []string       `json:"abilities,omitempty"`
	StartingEquipment []string       `json:"starting_equipment,omitempty"`
	StartingInventory []string       `json:"starting_inventory,omitempty"`
}
