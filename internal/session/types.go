package session

import "time"

// Session statuses.
const (
	StatusRunning = "running"
	StatusStopped = "stopped"
)

// Exit reasons recorded when a session is closed.
const (
	ExitStopped   = "stopped"
	ExitReset     = "reset"
	ExitRestarted = "restarted"
)

// Session is the history record of one Pomodoro cycle, from start until it
// is stopped, reset or restarted.
type Session struct {
	ID                string     `json:"id"`
	Status            string     `json:"status"` // "running", "stopped"
	WorkMinutes       int        `json:"work_minutes"`
	ShortBreakMinutes int        `json:"short_break_minutes"`
	LongBreakMinutes  int        `json:"long_break_minutes"`
	CompletedWork     int        `json:"completed_work"`
	StartedAt         time.Time  `json:"started_at"`
	StoppedAt         *time.Time `json:"stopped_at,omitempty"`
	ExitReason        string     `json:"exit_reason,omitempty"` // "stopped" | "reset" | "restarted"
}

// Length returns how long the session ran. Sessions still running report the
// time elapsed up to now.
func (s *Session) Length(now time.Time) time.Duration {
	end := now
	if s.StoppedAt != nil {
		end = *s.StoppedAt
	}
	if end.Before(s.StartedAt) {
		return 0
	}
	return end.Sub(s.StartedAt)
}
