package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/storage/storagetest"
)

func setupTestSQLiteStore(t *testing.T) storage.Provider {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	storagetest.Run(t, setupTestSQLiteStore)
}

func TestLoadUninitialized(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err != storage.ErrNotInitialized {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
	if _, err := store.GetAllHabits(false); err != storage.ErrNotLoaded {
		t.Fatalf("expected ErrNotLoaded before load, got %v", err)
	}
}

func TestInitIsIdempotentAndReloadable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	settings := models.DefaultSettings()
	settings.Theme = "dark"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	if err := store.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	store.Close()

	reopened := NewStore(dbPath)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if got.Theme != "dark" {
		t.Errorf("second Init overwrote settings: theme = %q", got.Theme)
	}
	if reopened.GetConfigPath() != dbPath {
		t.Errorf("GetConfigPath() = %q, want %q", reopened.GetConfigPath(), dbPath)
	}
}
