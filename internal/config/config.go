// Package config resolves where habitual keeps its data and which user overrides apply.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/keyring"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/storage/postgres"
	"github.com/julianstephens/habitual/internal/storage/sqlite"
)

type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendJSON     Backend = "json"
	BackendPostgres Backend = "postgres"
)

// Target is a resolved storage location.
type Target struct {
	Backend Backend
	// Location is a file path, or a connection string for postgres.
	Location string
	// Source names where the location came from: flag, env or keyring.
	Source string
}

// LoadDotEnv loads KEY=value pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	logger.Debug("Loaded environment file", "path", path)
	return nil
}

// keyringLookup is swapped in tests.
var keyringLookup = keyring.GetConnectionString

// Resolve picks the storage target. HABITUAL_DB_CONNECTION wins, then an explicit
// --config value, then a connection string saved in the OS keyring, then the
// default database path. Connection strings given on the command line must not
// carry a password.
func Resolve(configFlag string) (Target, error) {
	if env := strings.TrimSpace(os.Getenv(constants.EnvDBConnection)); env != "" {
		return Classify(env, "env"), nil
	}

	if configFlag != "" && configFlag != constants.DefaultConfigPath {
		t := Classify(configFlag, "flag")
		if t.Backend == BackendPostgres {
			if err := postgres.ValidateConnString(t.Location); err != nil {
				return Target{}, err
			}
		}
		return t, nil
	}

	connStr, err := keyringLookup()
	switch {
	case err == nil && connStr != "":
		return Target{Backend: BackendPostgres, Location: connStr, Source: "keyring"}, nil
	case err != nil && !errors.Is(err, keyring.ErrNotFound):
		logger.Debug("Keyring unavailable, using default path", "error", err)
	}

	return Classify(constants.DefaultConfigPath, "flag"), nil
}

// Classify decides the backend for a location: connection strings are PostgreSQL,
// .json paths use the JSON document store, anything else is a SQLite file.
func Classify(location, source string) Target {
	if postgres.IsConnString(location) {
		return Target{Backend: BackendPostgres, Location: location, Source: source}
	}
	path := kong.ExpandPath(location)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return Target{Backend: BackendJSON, Location: path, Source: source}
	}
	return Target{Backend: BackendSQLite, Location: path, Source: source}
}

// Dir returns the directory holding logs and backups for target.
func (t Target) Dir() string {
	if t.Backend == BackendPostgres {
		return filepath.Dir(kong.ExpandPath(constants.DefaultConfigPath))
	}
	return filepath.Dir(t.Location)
}

// OpenStore constructs the provider for target without loading it.
func OpenStore(t Target) storage.Provider {
	switch t.Backend {
	case BackendPostgres:
		return postgres.New(t.Location)
	case BackendJSON:
		return storage.NewJSONStore(t.Location)
	default:
		return sqlite.NewStore(t.Location)
	}
}

// ApplyEnvOverrides applies HABITUAL_WEEK_START on top of stored settings.
func ApplyEnvOverrides(settings models.Settings) (models.Settings, error) {
	if v := os.Getenv(constants.EnvWeekStart); v != "" {
		day, err := models.ParseWeekStart(v)
		if err != nil {
			return settings, fmt.Errorf("%s: %w", constants.EnvWeekStart, err)
		}
		settings.WeekStartsOn = day
	}
	return settings, nil
}
