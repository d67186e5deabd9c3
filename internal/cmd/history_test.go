package cmd

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/faize-ai/pomo/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintHistory(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	stopped := now.Add(-30 * time.Minute)

	sessions := []*session.Session{
		{
			ID:                "0f1e2d3c-aaaa-bbbb-cccc-1234567890ab",
			Status:            session.StatusRunning,
			WorkMinutes:       25,
			ShortBreakMinutes: 5,
			LongBreakMinutes:  15,
			CompletedWork:     1,
			StartedAt:         now.Add(-40 * time.Minute),
		},
		{
			ID:                "short",
			Status:            session.StatusStopped,
			WorkMinutes:       50,
			ShortBreakMinutes: 10,
			LongBreakMinutes:  30,
			CompletedWork:     4,
			StartedAt:         now.Add(-5 * time.Hour),
			StoppedAt:         &stopped,
			ExitReason:        session.ExitStopped,
		},
	}

	var out bytes.Buffer
	printHistory(&out, "/tmp/sessions", sessions, 0, now)

	text := out.String()
	assert.Contains(t, text, "ID")
	assert.Contains(t, text, "WORK SESSIONS")
	assert.Contains(t, text, "0f1e2d3c")
	assert.NotContains(t, text, "0f1e2d3c-aaaa")
	assert.Contains(t, text, "running")
	assert.Contains(t, text, "40m0s")
	assert.Contains(t, text, "stopped (stopped)")
	assert.Contains(t, text, "50/10/30")
	assert.Contains(t, text, "4h30m0s")
}

func TestPrintHistoryLimitAndEmpty(t *testing.T) {
	now := time.Now()
	sessions := []*session.Session{
		{ID: "first", StartedAt: now},
		{ID: "second", StartedAt: now},
	}

	var out bytes.Buffer
	printHistory(&out, "/tmp/sessions", sessions, 1, now)
	assert.Contains(t, out.String(), "first")
	assert.NotContains(t, out.String(), "second")

	out.Reset()
	printHistory(&out, "/tmp/sessions", nil, 0, now)
	assert.Equal(t, "No recorded sessions in /tmp/sessions.\n", out.String())
}

type fakeStore struct {
	sessions  []*session.Session
	deleted   []string
	failOn    string
	listError error
}

func (f *fakeStore) List() ([]*session.Session, error) {
	return f.sessions, f.listError
}

func (f *fakeStore) Delete(id string) error {
	if id == f.failOn {
		return errors.New("permission denied")
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func TestPruneSessions(t *testing.T) {
	newStore := func() *fakeStore {
		return &fakeStore{sessions: []*session.Session{
			{ID: "a", Status: session.StatusStopped},
			{ID: "b", Status: session.StatusRunning},
			{ID: "c", Status: session.StatusStopped},
		}}
	}

	t.Run("stopped only", func(t *testing.T) {
		store := newStore()
		var out bytes.Buffer
		removed, err := pruneSessions(&out, store, false)
		require.NoError(t, err)
		assert.Equal(t, 2, removed)
		assert.Equal(t, []string{"a", "c"}, store.deleted)
	})

	t.Run("all", func(t *testing.T) {
		store := newStore()
		var out bytes.Buffer
		removed, err := pruneSessions(&out, store, true)
		require.NoError(t, err)
		assert.Equal(t, 3, removed)
	})

	t.Run("delete failure is reported", func(t *testing.T) {
		store := newStore()
		store.failOn = "a"
		var out bytes.Buffer
		removed, err := pruneSessions(&out, store, false)
		require.NoError(t, err)
		assert.Equal(t, 1, removed)
		assert.Contains(t, out.String(), "Warning: failed to delete session a")
	})

	t.Run("list failure", func(t *testing.T) {
		store := &fakeStore{listError: errors.New("unreadable")}
		var out bytes.Buffer
		_, err := pruneSessions(&out, store, false)
		require.Error(t, err)
	})
}
