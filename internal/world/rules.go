package world

import (
	"math"

	"github.com/SMCNetwolf/LLMGame/internal/domain"
)

// LevelingRules control experience thresholds and level-up gains.
type LevelingRules struct {
	BaseXP      int     `json:"base_xp_required"`
	Scaling     float64 `json:"xp_scaling"`
	HealthGain  int     `json:"health_gain"`
	ManaGain    int     `json:"mana_gain"`
	StatPoints  int     `json:"stat_points"`
}

// RestRules control how much resting restores, as fractions of the
// respective maximums.
type RestRules struct {
	HealthRecovery float64 `json:"health_recovery"`
	ManaRecovery   float64 `json:"mana_recovery"`
	HoursSpent     int     `json:"hours_spent"`
}

// TimeRules control the simulated clock.
type TimeRules struct {
	DayLength           int     `json:"day_length"`
	StartingHour        int     `json:"starting_hour"`
	NightDangerIncrease float64 `json:"night_danger_increase"`
}

// Rules bundles the tunable mechanics of the simulation.
type Rules struct {
	Leveling LevelingRules `json:"leveling"`
	Rest     RestRules     `json:"rest"`
	Time     TimeRules     `json:"time"`
}

// DefaultRules returns the standard rule set.
func DefaultRules() Rules {
	return Rules{
		Leveling: LevelingRules{
			BaseXP:     100,
			Scaling:    1.5,
			HealthGain: 10,
			ManaGain:   8,
			StatPoints: 1,
		},
		Rest: RestRules{
			HealthRecovery: 0.5,
			ManaRecovery:   0.7,
			HoursSpent:     8,
		},
		Time: TimeRules{
			DayLength:           24,
			StartingHour:        8,
			NightDangerIncrease: 1.5,
		},
	}
}

// XPForLevel returns the total experience required to reach a level.
// Level 1 and below require nothing.
func (r Rules) XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return int(float64(r.Leveling.BaseXP) * math.Pow(r.Leveling.Scaling, float64(level-2)))
}

// ApplyExperience adds experience to the character and applies any
// level-ups it earns. Returns the number of levels gained.
func (r Rules) ApplyExperience(c *domain.Character, xp int) int {
	if xp <= 0 {
		return 0
	}
	c.Experience += xp

	gained := 0
	for c.Experience >= r.XPForLevel(c.Level+1) {
		c.Level++
		gained++
		c.MaxHealth = c.HealthCap() + r.Leveling.HealthGain
		c.MaxMana = c.ManaCap() + r.Leveling.ManaGain
		c.Health += r.Leveling.HealthGain
		c.Mana += r.Leveling.ManaGain
		c.Strength += r.Leveling.StatPoints
	}
	return gained
}
