package session

import (
	"log/slog"
	"sync"

	"github.com/tartampluch/go-gameclock/internal/config"
	"github.com/tartampluch/go-gameclock/internal/gametime"
)

// Session serializes access to one game clock so it can be shared by
// concurrent callers such as HTTP handlers.
type Session struct {
	mu  sync.Mutex
	clk *gametime.Clock

	// OnChange, when set, receives the new snapshot after every mutation.
	// It runs with the session lock held, so snapshots arrive in order; it
	// must not call back into the Session.
	OnChange func(gametime.Status)
}

// New wraps clk. The session takes ownership; clk must not be used directly afterwards.
func New(clk *gametime.Clock) *Session {
	return &Session{clk: clk}
}

// Wait advances the clock by hours under the session lock.
func (s *Session) Wait(hours int) gametime.WaitResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.clk.Wait(hours)
	if res.Success {
		s.changed()
	}
	return res
}

// WaitUntil advances the clock to the next occurrence of target.
func (s *Session) WaitUntil(target int) gametime.WaitResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.clk.WaitUntil(target)
	if res.Success {
		s.changed()
	}
	return res
}

// SpendActionPoint returns whether a point was spent and the snapshot after the attempt.
func (s *Session) SpendActionPoint() (bool, gametime.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := s.clk.SpendActionPoint()
	if ok {
		s.changed()
	}
	return ok, s.clk.Status()
}

// Status returns a snapshot of the clock.
func (s *Session) Status() gametime.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clk.Status()
}

func (s *Session) changed() {
	st := s.clk.Status()
	slog.Debug(config.MsgSessionChange,
		config.LogKeyComponent, config.CompSession,
		config.LogKeyDay, st.Day,
		config.LogKeyHour, st.Hour,
		config.LogKeyAP, st.ActionPoints,
	)
	if s.OnChange != nil {
		s.OnChange(st)
	}
}
