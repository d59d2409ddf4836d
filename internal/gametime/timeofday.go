package gametime

import (
	"fmt"

	"github.com/tartampluch/go-gameclock/internal/config"
)

// TimeOfDay is the coarse period of the day derived from the current hour.
type TimeOfDay int

const (
	Morning TimeOfDay = iota
	Afternoon
	Evening
	Night
)

var timeOfDayNames = [...]string{
	Morning:   "morning",
	Afternoon: "afternoon",
	Evening:   "evening",
	Night:     "night",
}

// PeriodOf classifies hour. Ranges are half-open: [6,12) morning,
// [12,17) afternoon, [17,21) evening, everything else night.
func PeriodOf(hour int) TimeOfDay {
	switch {
	case hour >= config.MorningStartHour && hour < config.AfternoonStartHour:
		return Morning
	case hour >= config.AfternoonStartHour && hour < config.EveningStartHour:
		return Afternoon
	case hour >= config.EveningStartHour && hour < config.NightStartHour:
		return Evening
	default:
		return Night
	}
}

func (t TimeOfDay) String() string {
	if t < Morning || t > Night {
		return fmt.Sprintf("TimeOfDay(%d)", int(t))
	}
	return timeOfDayNames[t]
}

// MarshalText renders the period by name so JSON payloads carry "morning"
// rather than an ordinal.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	if t < Morning || t > Night {
		return nil, fmt.Errorf("invalid time of day %d", int(t))
	}
	return []byte(timeOfDayNames[t]), nil
}

// UnmarshalText parses a period name produced by MarshalText.
func (t *TimeOfDay) UnmarshalText(b []byte) error {
	for i, name := range timeOfDayNames {
		if name == string(b) {
			*t = TimeOfDay(i)
			return nil
		}
	}
	return fmt.Errorf("unknown time of day %q", string(b))
}
