package shell

import (
	"bytes"
	"testing"
	"time"

	"github.com/faize-ai/pomo/internal/notify"
	"github.com/faize-ai/pomo/internal/timer"
	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{9 * time.Second, "0:09"},
		{59 * time.Second, "0:59"},
		{25 * time.Minute, "25:00"},
		{90*time.Minute + 5*time.Second, "90:05"},
		{-time.Second, "0:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatClock(tt.in))
	}
}

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"25", 25},
		{" 7 ", 7},
		{"10min", 10},
		{"abc", 0},
		{"", 0},
		{"-5", 0},
		{"0", 0},
		{"99999999999999999999999", 0},
		{"153722867", 153722867},
		{"153722868", 0},
		{"153722867280912931", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseMinutes(tt.in))
		})
	}
}

func TestNotificationText(t *testing.T) {
	tests := []struct {
		name        string
		event       timer.Event
		wantTitle   string
		wantMessage string
	}{
		{
			name:        "work started",
			event:       timer.Event{Kind: timer.EventStarted, Phase: timer.PhaseWork, Duration: 25 * time.Minute},
			wantTitle:   "Work Timer",
			wantMessage: "Starting work for 25 minutes",
		},
		{
			name:        "long break started",
			event:       timer.Event{Kind: timer.EventStarted, Phase: timer.PhaseLongBreak, Duration: 90 * time.Second},
			wantTitle:   "Long break Timer",
			wantMessage: "Starting long break for 1.5 minutes",
		},
		{
			name:        "short break finished",
			event:       timer.Event{Kind: timer.EventFinished, Phase: timer.PhaseShortBreak},
			wantTitle:   "Short break Complete",
			wantMessage: "Short break is done!",
		},
		{
			name:        "paused",
			event:       timer.Event{Kind: timer.EventPaused, Phase: timer.PhaseWork},
			wantTitle:   "Timer Paused",
			wantMessage: "The timer has been paused.",
		},
		{
			name:        "resumed",
			event:       timer.Event{Kind: timer.EventResumed, Phase: timer.PhaseWork},
			wantTitle:   "Timer Resumed",
			wantMessage: "The timer has been resumed.",
		},
		{
			name:        "reset",
			event:       timer.Event{Kind: timer.EventReset},
			wantTitle:   "Timer Reset",
			wantMessage: "The timer has been reset.",
		},
		{
			name:        "stopped",
			event:       timer.Event{Kind: timer.EventStopped},
			wantTitle:   "Timer Stopped",
			wantMessage: "The timer has been stopped.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, message := notification(tt.event)
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestRendererTickLine(t *testing.T) {
	var out bytes.Buffer
	r := &renderer{out: &out, notifier: notify.Noop{}}

	r.Handle(timer.Event{Kind: timer.EventTick, Phase: timer.PhaseWork, Remaining: 61 * time.Second})
	r.Handle(timer.Event{Kind: timer.EventTick, Phase: timer.PhaseWork, Remaining: 60 * time.Second})
	r.Handle(timer.Event{Kind: timer.EventPaused, Phase: timer.PhaseWork})

	assert.Equal(t, clearLine+"Time left: 1:01"+clearLine+"Time left: 1:00\nTimer paused.\n", out.String())
}

func TestRendererTickDoesNotNotify(t *testing.T) {
	notifier := &fakeNotifier{}
	r := &renderer{out: &bytes.Buffer{}, notifier: notifier}

	r.Handle(timer.Event{Kind: timer.EventTick, Remaining: time.Second})

	assert.Empty(t, notifier.Titles())
}
