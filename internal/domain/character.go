package domain

import "time"

// Fallback stat bounds for characters created before class data existed.
const (
	DefaultMaxHealth = 100
	DefaultMaxMana   = 100
)

// Character is the mutable player avatar. Health and mana are clamped to
// [0, MaxHealth]/[0, MaxMana] by every mutating operation.
type Character struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	Name         string    `json:"name"`
	Class        string    `json:"character_class"`
	Level        int       `json:"level"`
	Experience   int       `json:"experience"`
	Health       int       `json:"health"`
	MaxHealth    int       `json:"max_health"`
	Mana         int       `json:"mana"`
	MaxMana      int       `json:"max_mana"`
	Strength     int       `json:"strength"`
	Intelligence int       `json:"intelligence"`
	Dexterity    int       `json:"dexterity"`
	CreatedAt    time.Time `json:"created_at"`
}

// HealthCap returns the effective maximum health.
func (c *Character) HealthCap() int {
	if c.MaxHealth > 0 {
		return c.MaxHealth
	}
	return DefaultMaxHealth
}

// ManaCap returns the effective maximum mana.
func (c *Character) ManaCap() int {
	if c.MaxMana > 0 {
		return c.MaxMana
	}
	return DefaultMaxMana
}

// RestoreHealth adds amount to health, clamped at the health cap, and
// returns the amount actually restored.
func (c *Character) RestoreHealth(amount int) int {
	before := c.Health
	c.Health += amount
	if limit := c.HealthCap(); c.Health > limit {
		c.Health = limit
	}
	return c.Health - before
}

// RestoreMana adds amount to mana, clamped at the mana cap, and returns
// the amount actually restored.
func (c *Character) RestoreMana(amount int) int {
	before := c.Mana
	c.Mana += amount
	if limit := c.ManaCap(); c.Mana > limit {
		c.Mana = limit
	}
	return c.Mana - before
}
