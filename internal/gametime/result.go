package gametime

import (
	"errors"
	"fmt"
)

// Reason tells why a wait was rejected. ReasonNone marks a successful wait.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonInvalidDuration
	ReasonInvalidTarget
	ReasonAlreadyAtTarget
)

// Sentinel errors matching each rejection Reason, for callers that prefer
// errors.Is over switching on the Reason.
var (
	ErrInvalidDuration = errors.New("invalid wait duration")
	ErrInvalidTarget   = errors.New("invalid target hour")
	ErrAlreadyAtTarget = errors.New("already at target hour")
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonInvalidDuration:
		return "invalid_duration"
	case ReasonInvalidTarget:
		return "invalid_target"
	case ReasonAlreadyAtTarget:
		return "already_at_target"
	default:
		return "unknown"
	}
}

// MarshalText renders the reason by name for JSON payloads.
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText parses a reason name produced by MarshalText.
func (r *Reason) UnmarshalText(b []byte) error {
	for _, cand := range []Reason{ReasonNone, ReasonInvalidDuration, ReasonInvalidTarget, ReasonAlreadyAtTarget} {
		if cand.String() == string(b) {
			*r = cand
			return nil
		}
	}
	return fmt.Errorf("unknown reason %q", string(b))
}

// WaitResult is the outcome of Wait or WaitUntil. A rejected wait is reported
// here with Success false; the clock is left untouched in that case.
type WaitResult struct {
	Success     bool      `json:"success"`
	HoursWaited int       `json:"hours_waited"`
	NewHour     int       `json:"new_hour"`
	NewDay      int       `json:"new_day"`
	TimeOfDay   TimeOfDay `json:"time_of_day"`
	Message     string    `json:"message"`
	Reason      Reason    `json:"reason"`
}

// Err returns the sentinel error for a rejected wait, or nil on success.
func (r WaitResult) Err() error {
	switch r.Reason {
	case ReasonInvalidDuration:
		return ErrInvalidDuration
	case ReasonInvalidTarget:
		return ErrInvalidTarget
	case ReasonAlreadyAtTarget:
		return ErrAlreadyAtTarget
	default:
		return nil
	}
}

// Status is a read-only snapshot of a Clock.
type Status struct {
	Day             int       `json:"day"`
	Hour            int       `json:"hour"`
	TimeOfDay       TimeOfDay `json:"time_of_day"`
	ActionPoints    int       `json:"action_points"`
	MaxActionPoints int       `json:"max_action_points"`
}
