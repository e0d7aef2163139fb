package system

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/clock"
	"github.com/julianstephens/habitual/internal/config"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// setupContext opens an uninitialized store at path; .json paths use the JSON backend.
func setupContext(t *testing.T, path string) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	t.Setenv(constants.EnvWeekStart, "")
	target := config.Classify(path, "flag")
	store := config.OpenStore(target)
	t.Cleanup(func() { _ = store.Close() })

	ctx := cli.NewContext(store, clock.Fixed(testNow), target)
	out := &bytes.Buffer{}
	ctx.Stdout = out
	return ctx, out
}

func setupInitialized(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	ctx, out := setupContext(t, filepath.Join(t.TempDir(), "habitual.db"))
	require.NoError(t, ctx.Store.Init())
	return ctx, out
}

func seedHabit(t *testing.T, ctx *cli.Context, name string, days ...string) models.Habit {
	t.Helper()
	h, err := ctx.Tracker.CreateHabit(models.Habit{
		Name: name,
		Goal: models.Goal{Value: 1, Unit: models.UnitCount},
	})
	require.NoError(t, err)
	for _, d := range days {
		_, err := ctx.Tracker.Log(trackerInput(h.ID, d))
		require.NoError(t, err)
	}
	return h
}

