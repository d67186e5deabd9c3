package timer

import "time"

// Options contains runtime options for the Controller.
type Options struct {
	Config       Config
	TickInterval time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// Controller is the Pomodoro state machine. It owns the session state, drives
// the countdown through a Scheduler and reports transitions to observers.
//
// A Controller is not safe for concurrent use: all operations, including the
// scheduled ticks, must run on one goroutine.
type Controller struct {
	config    Config
	interval  time.Duration
	now       func() time.Time
	scheduler Scheduler
	handlers  []Handler

	phase     Phase
	remaining int
	duration  int
	completed int
	running   bool
	paused    bool
	cycle     int
	countdown Handle
}

// NewController creates an idle Controller.
func NewController(scheduler Scheduler, options Options) *Controller {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.Config == (Config{}) {
		options.Config = DefaultConfig()
	}

	return &Controller{
		config:    options.Config,
		interval:  options.TickInterval,
		now:       options.Now,
		scheduler: scheduler,
		phase:     PhaseIdle,
	}
}

// Observe registers a handler for all subsequent events.
func (c *Controller) Observe(handler Handler) {
	if handler == nil {
		return
	}
	c.handlers = append(c.handlers, handler)
}

// Configure sets the interval lengths used by the next phase that begins.
// Non-positive values fall back to the per-field defaults.
func (c *Controller) Configure(workMinutes, shortBreakMinutes, longBreakMinutes int) {
	c.config = NewConfig(workMinutes, shortBreakMinutes, longBreakMinutes)
}

// Config returns the current interval lengths.
func (c *Controller) Config() Config {
	return c.config
}

// State returns a snapshot of the session.
func (c *Controller) State() State {
	return State{
		Phase:                 c.phase,
		RemainingSeconds:      c.remaining,
		CompletedWorkSessions: c.completed,
		Running:               c.running,
		Paused:                c.paused,
	}
}

// Start begins a new cycle with a work phase. A paused cycle is discarded.
func (c *Controller) Start() error {
	if c.running {
		return ErrAlreadyRunning
	}
	c.completed = 0
	c.cycle++
	c.beginPhase(PhaseWork, c.config.WorkSeconds)
	return nil
}

// Pause halts the countdown, keeping the remaining time.
func (c *Controller) Pause() error {
	if !c.running {
		if c.paused {
			return ErrAlreadyPaused
		}
		return ErrNothingRunning
	}
	c.cancelCountdown()
	c.running = false
	c.paused = true
	c.emit(EventPaused)
	return nil
}

// Resume continues the paused phase from where it stopped.
func (c *Controller) Resume() error {
	if !c.paused {
		return ErrNotPaused
	}
	c.running = true
	c.paused = false
	c.emit(EventResumed)
	c.scheduleCountdown()
	return nil
}

// Reset cancels the countdown and returns to idle. Completed work sessions
// are kept.
func (c *Controller) Reset() error {
	if !c.running && !c.paused {
		return ErrNothingToReset
	}
	c.halt()
	c.emit(EventReset)
	return nil
}

// Stop behaves like Reset but reports a stopped event.
func (c *Controller) Stop() error {
	if !c.running && !c.paused {
		return ErrNothingRunning
	}
	c.halt()
	c.emit(EventStopped)
	return nil
}

func (c *Controller) halt() {
	c.cancelCountdown()
	c.running = false
	c.paused = false
	c.phase = PhaseIdle
	c.remaining = 0
	c.duration = 0
}

func (c *Controller) beginPhase(phase Phase, seconds int) {
	c.phase = phase
	c.remaining = seconds
	c.duration = seconds
	c.running = true
	c.paused = false
	c.emit(EventStarted)
	c.scheduleCountdown()
}

// scheduleCountdown replaces any active countdown, so at most one is ever live.
func (c *Controller) scheduleCountdown() {
	c.cancelCountdown()
	c.countdown = c.scheduler.Every(c.interval, c.tick)
}

func (c *Controller) cancelCountdown() {
	if c.countdown == nil {
		return
	}
	c.countdown.Cancel()
	c.countdown = nil
}

func (c *Controller) tick() {
	if !c.running {
		return
	}
	if c.remaining > 0 {
		c.remaining--
		c.emit(EventTick)
	}
	if c.remaining > 0 {
		return
	}
	c.finishPhase()
}

func (c *Controller) finishPhase() {
	c.cancelCountdown()
	c.running = false

	finished := c.phase
	if finished == PhaseWork {
		c.completed++
	}
	c.emit(EventFinished)

	next := c.nextPhase(finished)
	c.beginPhase(next, c.config.Seconds(next))
}

// nextPhase applies the cycle rule: every second completed work phase is
// followed by a long break, other work phases by a short break, and breaks
// by work.
func (c *Controller) nextPhase(finished Phase) Phase {
	if finished != PhaseWork {
		return PhaseWork
	}
	if c.completed%2 == 0 {
		return PhaseLongBreak
	}
	return PhaseShortBreak
}

func (c *Controller) emit(kind EventKind) {
	event := Event{
		Kind:      kind,
		Phase:     c.phase,
		Remaining: time.Duration(c.remaining) * time.Second,
		Duration:  time.Duration(c.duration) * time.Second,
		Completed: c.completed,
		Cycle:     c.cycle,
		At:        c.now(),
	}
	for _, handler := range c.handlers {
		handler(event)
	}
}
