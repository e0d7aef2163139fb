package system

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugDBPathCmd(t *testing.T) {
	ctx, out := setupInitialized(t)

	require.NoError(t, (&DebugDBPathCmd{}).Run(ctx))

	var got map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, ctx.Store.GetConfigPath(), got["path"])
	assert.Equal(t, "sqlite", got["backend"])
}

func TestDebugDumpHabitCmd(t *testing.T) {
	ctx, out := setupInitialized(t)
	seedHabit(t, ctx, "Read", "2026-03-13", "2026-03-14")

	require.NoError(t, (&DebugDumpHabitCmd{Habit: "read"}).Run(ctx))

	var got struct {
		Habit struct {
			Name     string         `json:"name"`
			Schedule map[string]any `json:"schedule"`
		} `json:"habit"`
		Summary struct {
			CurrentStreak int `json:"current_streak"`
		} `json:"summary"`
		Logs []map[string]any `json:"logs"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "Read", got.Habit.Name)
	assert.Equal(t, "daily", got.Habit.Schedule["type"])
	assert.Equal(t, 2, got.Summary.CurrentStreak)
	assert.Len(t, got.Logs, 2)
}

func TestDebugDumpHabitCmd_Unknown(t *testing.T) {
	ctx, _ := setupInitialized(t)
	assert.Error(t, (&DebugDumpHabitCmd{Habit: "nope"}).Run(ctx))
}

func TestDebugDumpDayCmd(t *testing.T) {
	ctx, out := setupInitialized(t)
	seedHabit(t, ctx, "Read", "2026-03-14")
	seedHabit(t, ctx, "Walk")

	require.NoError(t, (&DebugDumpDayCmd{Date: "today"}).Run(ctx))

	var got struct {
		Summary map[string]any   `json:"summary"`
		Logs    []map[string]any `json:"logs"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Len(t, got.Logs, 1)
	assert.NotEmpty(t, got.Summary)

	assert.Error(t, (&DebugDumpDayCmd{Date: "14/03/2026"}).Run(ctx))
}
