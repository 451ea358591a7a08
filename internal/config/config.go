// Package config loads the table configuration from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/blackjack/internal/store"
)

// Config is the complete table configuration.
type Config struct {
	Table TableSettings `hcl:"table,block"`
}

// TableSettings holds the knobs for a session.
type TableSettings struct {
	SaveFile         string `hcl:"save_file,optional"`
	StartingBankroll int    `hcl:"starting_bankroll,optional"`
	LogLevel         string `hcl:"log_level,optional"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Table: TableSettings{
			SaveFile:         "blackjack_save.json",
			StartingBankroll: store.DefaultBankroll,
			LogLevel:         "info",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults rather than an error; defaults also fill any omitted fields.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.Table.SaveFile == "" {
		cfg.Table.SaveFile = "blackjack_save.json"
	}
	if cfg.Table.StartingBankroll == 0 {
		cfg.Table.StartingBankroll = store.DefaultBankroll
	}
	if cfg.Table.LogLevel == "" {
		cfg.Table.LogLevel = "info"
	}

	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Table.StartingBankroll < 1 {
		return fmt.Errorf("starting bankroll must be positive, got %d", c.Table.StartingBankroll)
	}
	switch c.Table.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Table.LogLevel)
	}
	return nil
}
