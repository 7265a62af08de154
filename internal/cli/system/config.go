package system

import (
	"fmt"

	"github.com/rahulraj-lab/Focus-flow/internal/cli"
	"github.com/rahulraj-lab/Focus-flow/internal/config"
)

type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(ctx *cli.Context) error {
	cfg := ctx.Config
	apiKey := "(not set)"
	if cfg.AI.APIKey != "" {
		apiKey = maskKey(cfg.AI.APIKey)
	}

	fmt.Printf("Config file: %s\n\n", config.Path())
	fmt.Printf("  storage.path    = %s\n", cfg.Storage.Path)
	fmt.Printf("  ai.model        = %s\n", cfg.AI.Model)
	fmt.Printf("  ai.api_key_env  = %s\n", cfg.AI.APIKeyEnv)
	fmt.Printf("  ai.api_key      = %s\n", apiKey)
	fmt.Printf("  ui.timezone     = %s\n", cfg.UI.Timezone)
	fmt.Printf("  log.debug       = %t\n", cfg.Log.Debug)
	return nil
}

type ConfigSetCmd struct {
	Key   string `arg:"" help:"Setting to change, e.g. ai.model or ui.timezone."`
	Value string `arg:"" help:"New value."`
}

func (c *ConfigSetCmd) Run(ctx *cli.Context) error {
	// start from the file and env, not from command-line overrides
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := config.SetValue(&cfg, c.Key, c.Value); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return err
	}
	ctx.Config = cfg
	fmt.Printf("✓ %s updated in %s\n", c.Key, config.Path())
	return nil
}
