package session

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionSerialization(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	stopped := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	t.Run("serializes all fields", func(t *testing.T) {
		s := Session{
			ID:                "test-session-1",
			Status:            StatusStopped,
			WorkMinutes:       25,
			ShortBreakMinutes: 5,
			LongBreakMinutes:  15,
			CompletedWork:     4,
			StartedAt:         now,
			StoppedAt:         &stopped,
			ExitReason:        ExitReset,
		}

		data, err := json.Marshal(s)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))

		assert.Equal(t, "test-session-1", m["id"])
		assert.Equal(t, float64(4), m["completed_work"])
		assert.Equal(t, "reset", m["exit_reason"])
		assert.NotEmpty(t, m["stopped_at"])
	})

	t.Run("omitempty omits open session fields", func(t *testing.T) {
		s := Session{
			ID:        "test-session-2",
			Status:    StatusRunning,
			StartedAt: now,
		}

		data, err := json.Marshal(s)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))

		assert.NotContains(t, m, "stopped_at")
		assert.NotContains(t, m, "exit_reason")
	})
}

func TestSessionLength(t *testing.T) {
	start := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	stopped := start.Add(90 * time.Minute)

	s := &Session{StartedAt: start}
	assert.Equal(t, 30*time.Minute, s.Length(start.Add(30*time.Minute)))
	assert.Zero(t, s.Length(start.Add(-time.Minute)))

	s.StoppedAt = &stopped
	assert.Equal(t, 90*time.Minute, s.Length(start.Add(5*time.Hour)))
}
