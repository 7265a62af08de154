package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rahulraj-lab/Focus-flow/internal/cli"
	"github.com/rahulraj-lab/Focus-flow/internal/constants"
	"github.com/rahulraj-lab/Focus-flow/internal/keyring"
	"github.com/rahulraj-lab/Focus-flow/internal/storage"
	"github.com/rahulraj-lab/Focus-flow/internal/storage/postgres"
)

// KeyringSetCmd stores a PostgreSQL connection string in the OS keyring.
type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in keyring."`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	if !storage.IsPostgres(cmd.ConnectionString) && !strings.Contains(cmd.ConnectionString, "host=") {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if _, err := postgres.ValidateConnString(cmd.ConnectionString); err != nil {
		if !errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return fmt.Errorf("invalid connection string: %w", err)
		}
		fmt.Println("⚠️  Connection string contains a password; it will be kept in the encrypted OS keyring.")
	}

	if err := keyring.SetConnectionString(cmd.ConnectionString); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}
	fmt.Println("✓ Connection string stored in OS keyring")
	fmt.Println("  Set storage.path to \"keyring\" to use it")
	return nil
}

// KeyringSetAPIKeyCmd stores the Gemini API key in the OS keyring.
type KeyringSetAPIKeyCmd struct {
	Key string `arg:"" help:"Gemini API key."`
}

func (cmd *KeyringSetAPIKeyCmd) Run(ctx *cli.Context) error {
	if err := keyring.SetAPIKey(strings.TrimSpace(cmd.Key)); err != nil {
		return err
	}
	fmt.Println("✓ API key stored in OS keyring")
	return nil
}

type KeyringGetCmd struct {
	APIKey bool `help:"Show the stored API key (masked) instead of the connection string." name:"api-key"`
}

func (cmd *KeyringGetCmd) Run(ctx *cli.Context) error {
	account, label := constants.KeyringConnectionUser, "connection string"
	if cmd.APIKey {
		account, label = constants.KeyringAPIKeyUser, "API key"
	}

	secret, err := keyring.Get(account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("no %s found in keyring", label)
		}
		return fmt.Errorf("failed to retrieve %s from keyring: %w", label, err)
	}

	if cmd.APIKey {
		fmt.Println(maskKey(secret))
	} else {
		fmt.Println(maskPassword(secret))
	}
	return nil
}

type KeyringDeleteCmd struct {
	APIKey bool `help:"Delete the API key instead of the connection string." name:"api-key"`
}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	account, label := constants.KeyringConnectionUser, "connection string"
	if cmd.APIKey {
		account, label = constants.KeyringAPIKeyUser, "API key"
	}

	if err := keyring.Delete(account); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("no %s found in keyring", label)
		}
		return err
	}
	fmt.Printf("✓ Deleted %s from OS keyring\n", label)
	return nil
}

type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		fmt.Println("❌ OS keyring is not available on this system")
		return keyring.ErrKeyringUnavailable
	}
	fmt.Println("✓ OS keyring is available")
	for _, item := range []struct{ account, label string }{
		{constants.KeyringConnectionUser, "Connection string"},
		{constants.KeyringAPIKeyUser, "API key"},
	} {
		if _, err := keyring.Get(item.account); err == nil {
			fmt.Printf("✓ %s is stored\n", item.label)
		} else {
			fmt.Printf("ℹ %s is not stored\n", item.label)
		}
	}
	return nil
}

// maskPassword hides the password of a URL or DSN connection string.
func maskPassword(connStr string) string {
	if storage.IsPostgres(connStr) {
		if idx := strings.Index(connStr, "://"); idx != -1 {
			remaining := connStr[idx+3:]
			if atIdx := strings.LastIndex(remaining, "@"); atIdx != -1 {
				userInfo := remaining[:atIdx]
				if colonIdx := strings.Index(userInfo, ":"); colonIdx != -1 {
					return connStr[:idx+3] + userInfo[:colonIdx] + ":****" + connStr[idx+3+atIdx:]
				}
			}
		}
		return connStr
	}

	parts := strings.Fields(connStr)
	for i, part := range parts {
		if strings.HasPrefix(part, "password=") {
			parts[i] = "password=****"
		}
	}
	return strings.Join(parts, " ")
}

// maskKey keeps the last four characters of an API key.
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
