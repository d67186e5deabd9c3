package timer

import (
	"errors"
	"math"
	"time"
)

// Default durations in minutes.
const (
	DefaultWorkMinutes       = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 15

	// MaxMinutes is the longest interval whose length still fits in a
	// time.Duration.
	MaxMinutes = int(math.MaxInt64 / int64(time.Minute))
)

// Sequencing errors. Operations that return them leave the state unchanged.
var (
	ErrAlreadyRunning = errors.New("timer is already running")
	ErrAlreadyPaused  = errors.New("timer is already paused")
	ErrNothingRunning = errors.New("no timer is currently running")
	ErrNotPaused      = errors.New("timer is not paused")
	ErrNothingToReset = errors.New("nothing to reset")
)

// Phase is the kind of interval the session is in.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// Label returns the human-readable name of the phase, e.g. "short break".
func (p Phase) Label() string {
	switch p {
	case PhaseWork:
		return "work"
	case PhaseShortBreak:
		return "short break"
	case PhaseLongBreak:
		return "long break"
	default:
		return "idle"
	}
}

// IsBreak reports whether p is a short or long break.
func (p Phase) IsBreak() bool {
	return p == PhaseShortBreak || p == PhaseLongBreak
}

// Config holds the interval lengths for one session, in seconds.
type Config struct {
	WorkSeconds       int
	ShortBreakSeconds int
	LongBreakSeconds  int
}

// DefaultConfig returns the 25/5/15 minute configuration.
func DefaultConfig() Config {
	return NewConfig(0, 0, 0)
}

// NewConfig builds a Config from minute values. A non-positive value, or one
// above MaxMinutes, is replaced with that field's default.
func NewConfig(workMinutes, shortBreakMinutes, longBreakMinutes int) Config {
	return Config{
		WorkSeconds:       minutesOr(workMinutes, DefaultWorkMinutes) * 60,
		ShortBreakSeconds: minutesOr(shortBreakMinutes, DefaultShortBreakMinutes) * 60,
		LongBreakSeconds:  minutesOr(longBreakMinutes, DefaultLongBreakMinutes) * 60,
	}
}

func minutesOr(value, fallback int) int {
	if value <= 0 || value > MaxMinutes {
		return fallback
	}
	return value
}

// Seconds returns the configured length of phase p.
func (c Config) Seconds(p Phase) int {
	switch p {
	case PhaseWork:
		return c.WorkSeconds
	case PhaseShortBreak:
		return c.ShortBreakSeconds
	case PhaseLongBreak:
		return c.LongBreakSeconds
	default:
		return 0
	}
}

// State is a snapshot of the session.
type State struct {
	Phase                 Phase
	RemainingSeconds      int
	CompletedWorkSessions int
	Running               bool
	Paused                bool
}

// Remaining returns the time left in the current phase.
func (s State) Remaining() time.Duration {
	return time.Duration(s.RemainingSeconds) * time.Second
}
