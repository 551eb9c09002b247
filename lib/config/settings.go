package config

import (
	"fmt"

	"github.com/jessevdk/go-flags"
)

type Settings struct {
	Config         Config
	VerboseLogging bool
}

type cliOptions struct {
	ConfigFilePath string `short:"c" long:"config" description:"path to the tablesync YAML config"`
	Table          string `short:"t" long:"table" description:"table to copy, overrides table in the config"`
	BatchSize      int    `short:"b" long:"batch-size" description:"ids per batch, overrides batchSize in the config"`
	Verbose        bool   `short:"v" long:"verbose" description:"debug logging" optional:"true"`
}

// apply layers the command line overrides on top of the file config. Overrides are applied before validation.
func (o cliOptions) apply(cfg *Config) {
	if o.Table != "" {
		cfg.Table = o.Table
	}

	if o.BatchSize != 0 {
		cfg.BatchSize = o.BatchSize
	}
}

// LoadSettings parses the command line and, if [loadConfig] is set, reads and validates the sync config it points to.
func LoadSettings(args []string, loadConfig bool) (*Settings, error) {
	var opts cliOptions
	if _, err := flags.ParseArgs(&opts, args); err != nil {
		return nil, fmt.Errorf("failed to parse args: %w", err)
	}

	settings := &Settings{VerboseLogging: opts.Verbose}
	if !loadConfig {
		return settings, nil
	}

	if opts.ConfigFilePath == "" {
		return nil, fmt.Errorf("a config file is required, pass it with -c/--config")
	}

	cfg, err := readFileToConfig(opts.ConfigFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	opts.apply(cfg)
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	settings.Config = *cfg
	return settings, nil
}
