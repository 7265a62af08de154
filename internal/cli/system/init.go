// Package system holds setup, integration and maintenance commands.
package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rahulraj-lab/Focus-flow/internal/cli"
	"github.com/rahulraj-lab/Focus-flow/internal/keyring"
	"github.com/rahulraj-lab/Focus-flow/internal/storage"
	"github.com/rahulraj-lab/Focus-flow/internal/storage/postgres"
	"github.com/rahulraj-lab/Focus-flow/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Delete an existing SQLite database before initializing."`
	Source string `help:"Database path or connection string to copy records from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized focusflow storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Copying records from: %s\n", c.Source)
		n, err := CopyRecords(OpenStore(c.Source), ctx.Store)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Printf("✓ Copied %d records\n", n)
	}
	return nil
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	dbPath := ctx.Store.GetConfigPath()
	if storage.IsPostgres(dbPath) || dbPath == "postgresql" {
		return fmt.Errorf("--force only applies to SQLite databases")
	}
	if c.Source != "" {
		absDB, _ := filepath.Abs(dbPath)
		absSource, _ := filepath.Abs(c.Source)
		if absDB == absSource {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
		}
	}

	if _, err := os.Stat(dbPath); err == nil {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		fmt.Printf("Deleted existing database at: %s\n", dbPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}

// KeyringTarget as a storage path selects the connection string kept in the OS keyring.
const KeyringTarget = "keyring"

// ResolveStore maps the configured storage path onto a backend. PostgreSQL
// URLs with a password are refused.
func ResolveStore(target string) (storage.Provider, error) {
	if target == KeyringTarget {
		connStr, err := keyring.GetConnectionString()
		if err != nil {
			return nil, fmt.Errorf("failed to read connection string from keyring: %w", err)
		}
		return postgres.New(connStr), nil
	}
	if storage.IsPostgres(target) {
		if _, err := postgres.ValidateConnString(target); err != nil {
			return nil, err
		}
	}
	return OpenStore(target), nil
}

// OpenStore picks the backend for a path or connection string.
func OpenStore(target string) storage.Provider {
	if storage.IsPostgres(target) {
		return postgres.New(target)
	}
	return sqlite.NewStore(target)
}

// CopyRecords copies every record from src into dst, overwriting keys that
// already exist. src is loaded and closed here.
func CopyRecords(src, dst storage.Provider) (int, error) {
	if err := src.Load(); err != nil {
		return 0, fmt.Errorf("failed to load source database: %w", err)
	}
	defer src.Close()

	keys, err := src.Keys("")
	if err != nil {
		return 0, err
	}
	for _, key := range keys {
		value, err := src.Get(key)
		if err != nil {
			return 0, fmt.Errorf("failed to read %s: %w", key, err)
		}
		if err := dst.Put(key, value); err != nil {
			return 0, fmt.Errorf("failed to write %s: %w", key, err)
		}
	}
	return len(keys), nil
}
