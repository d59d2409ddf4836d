package gametime

import (
	"fmt"

	"github.com/tartampluch/go-gameclock/internal/config"
)

// Narrator turns wait outcomes into player-facing text.
// It allows a localization layer to be injected into the clock.
type Narrator interface {
	Waited(hours, hour int) string
	NewDay(hours, day int) string
	InvalidDuration(minHours int) string
	InvalidTarget(minHour, maxHour int) string
	AlreadyAt(hour int) string
}

// EnglishNarrator produces the built-in English messages.
type EnglishNarrator struct{}

func (EnglishNarrator) Waited(hours, hour int) string {
	return fmt.Sprintf(config.FallbackWaitSameDay, hours, hour)
}

func (EnglishNarrator) NewDay(hours, day int) string {
	return fmt.Sprintf(config.FallbackWaitNewDay, hours, day)
}

func (EnglishNarrator) InvalidDuration(minHours int) string {
	return fmt.Sprintf(config.FallbackErrDuration, minHours)
}

func (EnglishNarrator) InvalidTarget(minHour, maxHour int) string {
	return fmt.Sprintf(config.FallbackErrTarget, minHour, maxHour)
}

func (EnglishNarrator) AlreadyAt(hour int) string {
	return fmt.Sprintf(config.FallbackErrAlreadyAt, hour)
}
