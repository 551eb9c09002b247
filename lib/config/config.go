package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/artie-labs/tablesync/lib/config/constants"
)

const (
	defaultConnectAttempts = 3
	maxConnectAttempts     = 10
)

type Sentry struct {
	DSN string `yaml:"dsn"`
}

type BulkCopy struct {
	// CheckConstraints and FireTriggers are independent toggles, both default to true.
	CheckConstraints *bool `yaml:"checkConstraints"`
	FireTriggers     *bool `yaml:"fireTriggers"`
}

func (b BulkCopy) CheckConstraintsEnabled() bool {
	return b.CheckConstraints == nil || *b.CheckConstraints
}

func (b BulkCopy) FireTriggersEnabled() bool {
	return b.FireTriggers == nil || *b.FireTriggers
}

type Config struct {
	Source      Database `yaml:"source"`
	Destination Database `yaml:"destination"`

	Table      string                 `yaml:"table"`
	PrimaryKey string                 `yaml:"primaryKey"`
	BatchSize  int                    `yaml:"batchSize"`
	Strategy   constants.StrategyKind `yaml:"strategy"`
	// Record is the name of a declared schema (e.g. "trades"), if empty the columns are discovered from the result set.
	Record string `yaml:"record"`

	BulkCopy BulkCopy `yaml:"bulkCopy"`

	ConnectAttempts     int     `yaml:"connectAttempts"`
	MaxBatchesPerSecond float64 `yaml:"maxBatchesPerSecond"`

	Reporting struct {
		Sentry *Sentry `yaml:"sentry"`
	} `yaml:"reporting"`

	Telemetry struct {
		Metrics struct {
			Provider constants.ExporterKind `yaml:"provider"`
			Settings map[string]any         `yaml:"settings,omitempty"`
		} `yaml:"metrics"`
	} `yaml:"telemetry"`
}

func readFileToConfig(pathToConfig string) (*Config, error) {
	file, err := os.Open(pathToConfig)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	var config Config
	if err = yaml.Unmarshal(bytes, &config); err != nil {
		return nil, err
	}

	config.setDefaults()
	return &config, nil
}

func (c *Config) setDefaults() {
	if c.Table == "" {
		c.Table = constants.DefaultTableName
	}

	if c.PrimaryKey == "" {
		c.PrimaryKey = constants.DefaultPrimaryKey
	}

	if c.BatchSize == 0 {
		c.BatchSize = constants.DefaultBatchSize
	}

	if c.Strategy == "" {
		c.Strategy = constants.ParameterizedInsert
	}

	if c.ConnectAttempts == 0 {
		c.ConnectAttempts = defaultConnectAttempts
	}
}

// Validate checks both databases, the strategy and the batch size.
// The batch size is bounded by the source's bind parameter limit since every id of a batch is bound in the IN list.
func (c Config) Validate() error {
	if err := c.Source.Validate(); err != nil {
		return fmt.Errorf("source is invalid: %w", err)
	}

	if err := c.Destination.Validate(); err != nil {
		return fmt.Errorf("destination is invalid: %w", err)
	}

	if c.Table == "" {
		return fmt.Errorf("table is empty")
	}

	if c.PrimaryKey == "" {
		return fmt.Errorf("primary key is empty")
	}

	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be a positive number, current value: %d", c.BatchSize)
	}

	if maxParams := c.Source.Kind.MaxBindParameters(); c.BatchSize > maxParams {
		return fmt.Errorf("batch size %d exceeds the %s bind parameter limit of %d", c.BatchSize, c.Source.Kind, maxParams)
	}

	if !c.Strategy.IsValid() {
		return fmt.Errorf("invalid strategy: %q", c.Strategy)
	}

	if c.Strategy == constants.BulkCopy && !c.Destination.Kind.SupportsBulkCopy() {
		return fmt.Errorf("destination %q does not support %s", c.Destination.Kind, constants.BulkCopy)
	}

	if c.ConnectAttempts < 1 || c.ConnectAttempts > maxConnectAttempts {
		return fmt.Errorf("connect attempts must be between 1 and %d, current value: %d", maxConnectAttempts, c.ConnectAttempts)
	}

	if c.MaxBatchesPerSecond < 0 {
		return fmt.Errorf("max batches per second cannot be negative, current value: %v", c.MaxBatchesPerSecond)
	}

	return nil
}
