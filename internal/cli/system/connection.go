package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/config"
	"github.com/julianstephens/habitual/internal/keyring"
	"github.com/julianstephens/habitual/internal/storage/postgres"
)

// ConfigCmd manages where habitual keeps its PostgreSQL credentials.
type ConfigCmd struct {
	SetConnection   SetConnectionCmd   `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
	ShowConnection  ShowConnectionCmd  `cmd:"" help:"Show the stored connection string with its password masked."`
	ClearConnection ClearConnectionCmd `cmd:"" help:"Remove the stored connection string from the OS keyring."`
	Status          ConfigStatusCmd    `cmd:"" default:"1" help:"Show the resolved storage target and keyring availability."`
}

type SetConnectionCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in keyring"`
}

func (cmd *SetConnectionCmd) Run(ctx *cli.Context) error {
	if !postgres.IsConnString(cmd.ConnectionString) {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if err := postgres.ValidateConnString(cmd.ConnectionString); err != nil {
		if !errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return fmt.Errorf("invalid connection string: %w", err)
		}
		// The keyring is encrypted, so an embedded password is tolerated here.
		ctx.Println("⚠️  Warning: Connection string contains embedded credentials.")
		ctx.Println("   It will be stored as-is in the encrypted OS keyring.")
	}

	if err := keyring.SetConnectionString(cmd.ConnectionString); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}

	ctx.Println("✓ Connection string stored successfully in OS keyring")
	ctx.Println("  habitual will use it when neither --config nor HABITUAL_DB_CONNECTION is given")
	return nil
}

type ShowConnectionCmd struct{}

func (cmd *ShowConnectionCmd) Run(ctx *cli.Context) error {
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring. Use 'habitual config set-connection' to store one")
		}
		return fmt.Errorf("failed to retrieve connection string from keyring: %w", err)
	}
	ctx.Println(maskPassword(connStr))
	return nil
}

type ClearConnectionCmd struct{}

func (cmd *ClearConnectionCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}
	ctx.Println("✓ Connection string deleted from OS keyring")
	return nil
}

type ConfigStatusCmd struct{}

func (cmd *ConfigStatusCmd) Run(ctx *cli.Context) error {
	location := ctx.Target.Location
	if ctx.Target.Backend == config.BackendPostgres {
		location = maskPassword(location)
	}
	ctx.Printf("Backend: %s\n", ctx.Target.Backend)
	ctx.Printf("Location: %s\n", location)
	if ctx.Target.Source != "" {
		ctx.Printf("Source: %s\n", ctx.Target.Source)
	}

	if !keyring.IsAvailable() {
		ctx.Println("❌ OS keyring is not available on this system")
		return nil
	}
	ctx.Println("✓ OS keyring is available")
	if _, err := keyring.GetConnectionString(); err == nil {
		ctx.Println("✓ Connection string is stored in keyring")
	} else if errors.Is(err, keyring.ErrNotFound) {
		ctx.Println("ℹ No connection string stored in keyring")
	}
	return nil
}

// maskPassword masks passwords in connection strings for display
func maskPassword(connStr string) string {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		if idx := strings.Index(connStr, "://"); idx != -1 {
			remaining := connStr[idx+3:]
			// The last @ separates user info from host.
			if atIdx := strings.LastIndex(remaining, "@"); atIdx != -1 {
				userInfo := remaining[:atIdx]
				if colonIdx := strings.Index(userInfo, ":"); colonIdx != -1 {
					return connStr[:idx+3] + userInfo[:colonIdx] + ":****" + connStr[idx+3+atIdx:]
				}
			}
		}
	}

	if strings.Contains(connStr, "password=") {
		parts := strings.Fields(connStr)
		for i, part := range parts {
			if strings.HasPrefix(part, "password=") {
				parts[i] = "password=****"
			}
		}
		return strings.Join(parts, " ")
	}

	return connStr
}
