package shell

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/faize-ai/pomo/internal/notify"
	"github.com/faize-ai/pomo/internal/timer"
	"github.com/rs/zerolog"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	workStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	breakStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	clockStyle = lipgloss.NewStyle().Bold(true)
)

const clearLine = "\r\x1b[K"

// renderer prints controller events and forwards them as notifications.
type renderer struct {
	out      io.Writer
	notifier notify.Notifier
	logger   zerolog.Logger

	// onTickLine is set while the cursor sits at the end of the live countdown.
	onTickLine bool
}

// Handle implements timer.Handler.
func (r *renderer) Handle(e timer.Event) {
	switch e.Kind {
	case timer.EventTick:
		r.printTick(e.Remaining)
		return
	case timer.EventStarted:
		r.println(phaseStyle(e.Phase).Render(
			fmt.Sprintf("Starting %s timer for %s minutes...", e.Phase.Label(), minutes(e.Duration))))
	case timer.EventFinished:
		r.println(phaseStyle(e.Phase).Render(capitalize(e.Phase.Label()) + " is over!"))
	case timer.EventPaused:
		r.println("Timer paused.")
	case timer.EventResumed:
		r.println("Resuming timer...")
	case timer.EventReset:
		r.println("Timer reset.")
	case timer.EventStopped:
		r.println("Timer stopped.")
	}

	title, message := notification(e)
	if err := r.notifier.Notify(title, message); err != nil {
		r.logger.Warn().Err(err).Str("event", string(e.Kind)).Msg("notification failed")
	}
}

// notification returns the desktop notification text for a non-tick event.
func notification(e timer.Event) (title, message string) {
	name := capitalize(e.Phase.Label())
	switch e.Kind {
	case timer.EventStarted:
		return name + " Timer", fmt.Sprintf("Starting %s for %s minutes", e.Phase.Label(), minutes(e.Duration))
	case timer.EventFinished:
		return name + " Complete", name + " is done!"
	case timer.EventPaused:
		return "Timer Paused", "The timer has been paused."
	case timer.EventResumed:
		return "Timer Resumed", "The timer has been resumed."
	case timer.EventReset:
		return "Timer Reset", "The timer has been reset."
	default:
		return "Timer Stopped", "The timer has been stopped."
	}
}

func (r *renderer) printTick(remaining time.Duration) {
	_, _ = fmt.Fprint(r.out, clearLine+"Time left: "+clockStyle.Render(formatClock(remaining)))
	r.onTickLine = true
}

// println writes a full line, first ending the live countdown line if needed.
func (r *renderer) println(line string) {
	if r.onTickLine {
		_, _ = fmt.Fprintln(r.out)
		r.onTickLine = false
	}
	_, _ = fmt.Fprintln(r.out, line)
}

func (r *renderer) info(line string) {
	r.println(dimStyle.Render(line))
}

func (r *renderer) warn(line string) {
	r.println(warnStyle.Render(line))
}

func (r *renderer) status(s timer.State) {
	if s.Phase == timer.PhaseIdle {
		r.println(fmt.Sprintf("Idle. Completed work sessions: %d", s.CompletedWorkSessions))
		return
	}
	mode := "running"
	if s.Paused {
		mode = "paused"
	}
	r.println(fmt.Sprintf("%s (%s), time left %s. Completed work sessions: %d",
		phaseStyle(s.Phase).Render(capitalize(s.Phase.Label())), mode,
		formatClock(s.Remaining()), s.CompletedWorkSessions))
}

func phaseStyle(p timer.Phase) lipgloss.Style {
	if p.IsBreak() {
		return breakStyle
	}
	return workStyle
}

// formatClock renders d as M:SS.
func formatClock(d time.Duration) string {
	total := int(d / time.Second)
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// minutes renders d in minutes without trailing zeros, e.g. "25" or "1.5".
func minutes(d time.Duration) string {
	return strconv.FormatFloat(d.Minutes(), 'f', -1, 64)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
