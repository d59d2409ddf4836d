package gametime

import (
	"log/slog"
	"math"

	"github.com/tartampluch/go-gameclock/internal/config"
)

// Clock tracks the in-game day and hour together with the per-day pool of
// action points. It is not safe for concurrent use; see session.Session.
type Clock struct {
	day             int
	hour            int
	actionPoints    int
	maxActionPoints int

	narrator Narrator
}

// NewClock starts a clock on day 1 at 08:00 with a full action point pool.
// A negative maxActionPoints is treated as zero.
func NewClock(maxActionPoints int) *Clock {
	return NewClockWithNarrator(maxActionPoints, EnglishNarrator{})
}

// NewClockWithNarrator is NewClock with player messages produced by n.
func NewClockWithNarrator(maxActionPoints int, n Narrator) *Clock {
	if maxActionPoints < 0 {
		maxActionPoints = 0
	}
	if n == nil {
		n = EnglishNarrator{}
	}
	return &Clock{
		day:             config.StartDay,
		hour:            config.StartHour,
		actionPoints:    maxActionPoints,
		maxActionPoints: maxActionPoints,
		narrator:        n,
	}
}

// Day returns the current day, starting at 1.
func (c *Clock) Day() int { return c.day }

// Hour returns the current hour in [0,23].
func (c *Clock) Hour() int { return c.hour }

// ActionPoints returns the points left for the current day.
func (c *Clock) ActionPoints() int { return c.actionPoints }

// MaxActionPoints returns the size of the daily pool.
func (c *Clock) MaxActionPoints() int { return c.maxActionPoints }

// TimeOfDay classifies the current hour.
func (c *Clock) TimeOfDay() TimeOfDay {
	return PeriodOf(c.hour)
}

// Wait advances the clock by hours. Crossing one or more midnights moves the
// day forward and refills the action points once, no matter how many days
// were skipped. hours below 1 is rejected without touching the clock.
func (c *Clock) Wait(hours int) WaitResult {
	if hours < config.MinWaitHours {
		return c.reject(ReasonInvalidDuration, c.narrator.InvalidDuration(config.MinWaitHours),
			config.LogKeyHours, hours)
	}

	// Split whole days off first so c.hour+hours cannot overflow.
	total := c.hour + hours%config.HoursPerDay
	daysCrossed := hours/config.HoursPerDay + total/config.HoursPerDay
	c.hour = total % config.HoursPerDay
	if daysCrossed > math.MaxInt-c.day {
		c.day = math.MaxInt
	} else {
		c.day += daysCrossed
	}

	var msg string
	if daysCrossed > 0 {
		c.actionPoints = c.maxActionPoints
		slog.Debug(config.MsgDayRollover,
			config.LogKeyComponent, config.CompClock,
			config.LogKeyDay, c.day,
			config.LogKeyDays, daysCrossed,
			config.LogKeyAP, c.actionPoints,
		)
		msg = c.narrator.NewDay(hours, c.day)
	} else {
		msg = c.narrator.Waited(hours, c.hour)
	}

	return WaitResult{
		Success:     true,
		HoursWaited: hours,
		NewHour:     c.hour,
		NewDay:      c.day,
		TimeOfDay:   c.TimeOfDay(),
		Message:     msg,
	}
}

// WaitUntil advances the clock to the next occurrence of target, wrapping to
// the following day when target is earlier than the current hour. Asking for
// the current hour is rejected rather than treated as a full-day wait.
func (c *Clock) WaitUntil(target int) WaitResult {
	switch {
	case target < config.MinHour || target > config.MaxHour:
		return c.reject(ReasonInvalidTarget, c.narrator.InvalidTarget(config.MinHour, config.MaxHour),
			config.LogKeyTarget, target)
	case target == c.hour:
		return c.reject(ReasonAlreadyAtTarget, c.narrator.AlreadyAt(target),
			config.LogKeyTarget, target)
	case target > c.hour:
		return c.Wait(target - c.hour)
	default:
		return c.Wait(config.HoursPerDay - c.hour + target)
	}
}

// SpendActionPoint uses one action point. It reports false, leaving the pool
// at zero, when none are left.
func (c *Clock) SpendActionPoint() bool {
	if c.actionPoints <= 0 {
		slog.Debug(config.MsgAPDepleted,
			config.LogKeyComponent, config.CompClock,
			config.LogKeyDay, c.day,
		)
		return false
	}
	c.actionPoints--
	return true
}

// Status returns a snapshot of the clock.
func (c *Clock) Status() Status {
	return Status{
		Day:             c.day,
		Hour:            c.hour,
		TimeOfDay:       c.TimeOfDay(),
		ActionPoints:    c.actionPoints,
		MaxActionPoints: c.maxActionPoints,
	}
}

func (c *Clock) reject(reason Reason, msg string, args ...any) WaitResult {
	slog.Debug(config.MsgWaitRejected, append([]any{
		config.LogKeyComponent, config.CompClock,
		config.LogKeyReason, reason.String(),
	}, args...)...)

	return WaitResult{
		Success:     false,
		HoursWaited: 0,
		NewHour:     c.hour,
		NewDay:      c.day,
		TimeOfDay:   c.TimeOfDay(),
		Message:     msg,
		Reason:      reason,
	}
}
