package session

import (
	"time"

	"github.com/faize-ai/pomo/internal/log"
	"github.com/faize-ai/pomo/internal/timer"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Saver persists session records.
type Saver interface {
	Save(session *Session) error
}

// ConfigSource reports the interval lengths in effect.
type ConfigSource interface {
	Config() timer.Config
}

// Recorder turns controller events into session history records. Store
// failures are logged and never reach the controller.
type Recorder struct {
	store   Saver
	configs ConfigSource
	newID   func() string
	logger  zerolog.Logger

	current *Session
	cycle   int
}

// NewRecorder creates a Recorder that saves through store.
func NewRecorder(store Saver, configs ConfigSource) *Recorder {
	return &Recorder{
		store:   store,
		configs: configs,
		newID:   uuid.NewString,
		logger:  log.WithComponent("history"),
	}
}

// Current returns the open record, or nil between cycles.
func (r *Recorder) Current() *Session {
	return r.current
}

// Handle implements timer.Handler.
func (r *Recorder) Handle(e timer.Event) {
	switch e.Kind {
	case timer.EventStarted:
		if r.current != nil && e.Cycle == r.cycle {
			return
		}
		if r.current != nil {
			r.close(e.At, ExitRestarted)
		}
		r.open(e)
	case timer.EventFinished:
		if r.current == nil || e.Phase != timer.PhaseWork {
			return
		}
		r.current.CompletedWork = e.Completed
		r.save()
	case timer.EventReset:
		r.close(e.At, ExitReset)
	case timer.EventStopped:
		r.close(e.At, ExitStopped)
	}
}

func (r *Recorder) open(e timer.Event) {
	cfg := r.configs.Config()
	r.cycle = e.Cycle
	r.current = &Session{
		ID:                r.newID(),
		Status:            StatusRunning,
		WorkMinutes:       cfg.WorkSeconds / 60,
		ShortBreakMinutes: cfg.ShortBreakSeconds / 60,
		LongBreakMinutes:  cfg.LongBreakSeconds / 60,
		StartedAt:         e.At,
	}
	r.save()
}

func (r *Recorder) close(at time.Time, reason string) {
	if r.current == nil {
		return
	}
	r.current.Status = StatusStopped
	r.current.StoppedAt = &at
	r.current.ExitReason = reason
	r.save()
	r.current = nil
}

func (r *Recorder) save() {
	if err := r.store.Save(r.current); err != nil {
		r.logger.Warn().Err(err).Str("session", r.current.ID).Msg("failed to save session history")
	}
}
