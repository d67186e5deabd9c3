package timer

import "time"

// EventKind defines the type of controller event.
type EventKind string

const (
	EventStarted  EventKind = "started"
	EventTick     EventKind = "tick"
	EventFinished EventKind = "finished"
	EventPaused   EventKind = "paused"
	EventResumed  EventKind = "resumed"
	EventReset    EventKind = "reset"
	EventStopped  EventKind = "stopped"
)

// Event represents a controller update for observers.
type Event struct {
	Kind  EventKind
	Phase Phase
	// Remaining is the time left in Phase when the event was emitted.
	Remaining time.Duration
	// Duration is the full length of Phase.
	Duration time.Duration
	// Completed is the number of work phases finished in the current cycle.
	Completed int
	// Cycle increases by one on every Start, so observers can tell a fresh
	// cycle from an automatic phase advance.
	Cycle int
	At    time.Time
}

// Handler receives controller events. Handlers run synchronously on the
// goroutine driving the controller and must not change its state.
type Handler func(Event)
