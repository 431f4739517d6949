package domain

// TimeOfDay buckets the clock hour for description flavoring and
// encounter scaling.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"   // 5-11
	Afternoon TimeOfDay = "afternoon" // 12-16
	Evening   TimeOfDay = "evening"   // 17-20
	Night     TimeOfDay = "night"     // 21-4
)

// Clock tracks in-game time for one GameState. It is a value type owned by
// the state it belongs to; two characters never share a clock.
type Clock struct {
	Hour int `json:"hour"`
	Day  int `json:"day"`
}

// NewClock returns a clock at the given starting hour on day 1.
func NewClock(startingHour int) Clock {
	return Clock{Hour: startingHour, Day: 1}
}

// Advance moves the clock forward, rolling the day over at hour 24.
func (c *Clock) Advance(hours int) {
	c.Hour += hours
	for c.Hour >= 24 {
		c.Hour -= 24
		c.Day++
	}
}

// TimeOfDay returns the bucket for the current hour.
func (c Clock) TimeOfDay() TimeOfDay {
	switch {
	case c.Hour >= 5 && c.Hour <= 11:
		return Morning
	case c.Hour >= 12 && c.Hour <= 16:
		return Afternoon
	case c.Hour >= 17 && c.Hour <= 20:
		return Evening
	default:
		return Night
	}
}
