package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/rahulraj-lab/Focus-flow/internal/ai"
	"github.com/rahulraj-lab/Focus-flow/internal/constants"
	"github.com/rahulraj-lab/Focus-flow/internal/keyring"
)

// Config holds application configuration.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	AI      AIConfig      `mapstructure:"ai"`
	UI      UIConfig      `mapstructure:"ui"`
	Log     LogConfig     `mapstructure:"log"`
}

// StorageConfig names the SQLite file or PostgreSQL connection string.
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// AIConfig holds plan generator settings.
type AIConfig struct {
	Model     string `mapstructure:"model"`
	APIKeyEnv string `mapstructure:"api_key_env"`
	APIKey    string `mapstructure:"api_key"`
}

type UIConfig struct {
	Timezone string `mapstructure:"timezone"`
}

type LogConfig struct {
	Debug bool `mapstructure:"debug"`
}

// Keys lists the settings accepted by SetValue.
var Keys = []string{"storage.path", "ai.model", "ai.api_key_env", "ai.api_key", "ui.timezone", "log.debug"}

// Path returns the config file location, honouring FOCUSFLOW_CONFIG.
func Path() string {
	if p := os.Getenv("FOCUSFLOW_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(configHome(), constants.AppName, "config.yaml")
}

func configHome() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	return filepath.Join(os.Getenv("HOME"), ".config")
}

// Load reads configuration from file and env. Env var overrides use prefix FOCUSFLOW_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("storage.path", constants.DefaultConfigPath)
	v.SetDefault("ai.model", constants.DefaultAIModel)
	v.SetDefault("ai.api_key_env", constants.DefaultAPIKeyEnv)
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ui.timezone", "Local")
	v.SetDefault("log.debug", false)

	v.SetConfigType("yaml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("FOCUSFLOW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file just leaves the defaults
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return Config{}, fmt.Errorf("read config %s: %w", Path(), err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Storage.Path = ExpandHome(c.Storage.Path)
	return c, nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

// Save writes cfg to Path(), creating the directory if needed. The API key
// is stored in plain text; the keyring is the better home for it.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("storage.path", cfg.Storage.Path)
	v.Set("ai.model", cfg.AI.Model)
	v.Set("ai.api_key_env", cfg.AI.APIKeyEnv)
	v.Set("ai.api_key", cfg.AI.APIKey)
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("log.debug", cfg.Log.Debug)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// SetValue updates one dotted key on cfg.
func SetValue(cfg *Config, key, value string) error {
	switch key {
	case "storage.path":
		cfg.Storage.Path = value
	case "ai.model":
		cfg.AI.Model = value
	case "ai.api_key_env":
		cfg.AI.APIKeyEnv = value
	case "ai.api_key":
		cfg.AI.APIKey = value
	case "ui.timezone":
		if _, err := time.LoadLocation(value); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", value, err)
		}
		cfg.UI.Timezone = value
	case "log.debug":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q for log.debug", value)
		}
		cfg.Log.Debug = b
	default:
		return fmt.Errorf("unknown config key %q (expected one of %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

// Location resolves the configured timezone, falling back to the local zone.
func (c Config) Location() *time.Location {
	if c.UI.Timezone == "" || c.UI.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.UI.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// ResolveAPIKey looks for the plan generator key in the config file, then
// the environment variable named by ai.api_key_env, then the OS keyring.
func ResolveAPIKey(c Config) (string, error) {
	if key := strings.TrimSpace(c.AI.APIKey); key != "" {
		return key, nil
	}
	if c.AI.APIKeyEnv != "" {
		if key := strings.TrimSpace(os.Getenv(c.AI.APIKeyEnv)); key != "" {
			return key, nil
		}
	}
	key, err := keyring.GetAPIKey()
	if err == nil {
		return key, nil
	}
	if errors.Is(err, keyring.ErrNotFound) || errors.Is(err, keyring.ErrKeyringUnavailable) {
		return "", ai.ErrNoAPIKey
	}
	return "", err
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
