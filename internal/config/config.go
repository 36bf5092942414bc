package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the full runtime configuration for a pipeline run.
type Config struct {
	Input   InputConfig   `mapstructure:"input"`
	Output  OutputConfig  `mapstructure:"output"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Report  ReportConfig  `mapstructure:"report"`
	Log     LogConfig     `mapstructure:"log"`
}

// InputConfig describes where the sales data comes from.
type InputConfig struct {
	// File is the path to the sales data file. Both pipe-delimited text
	// and .xlsx workbooks are accepted; the extension decides the reader.
	File string `mapstructure:"file"`
}

// OutputConfig describes the files a run produces.
type OutputConfig struct {
	EnrichedFile string `mapstructure:"enriched_file"`
	ReportFile   string `mapstructure:"report_file"`
}

// CatalogConfig describes the external product catalog service.
type CatalogConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	Limit          int    `mapstructure:"limit"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// ReportConfig holds report rendering knobs.
type ReportConfig struct {
	TopN         int    `mapstructure:"top_n"`
	LowThreshold int    `mapstructure:"low_threshold"`
	Currency     string `mapstructure:"currency"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from an optional YAML file layered over defaults
// and SALES_* environment variables. An empty path uses defaults only.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("input.file", "data/sales_data.txt")
	v.SetDefault("output.enriched_file", "data/enriched_sales_data.txt")
	v.SetDefault("output.report_file", "output/sales_report.txt")
	v.SetDefault("catalog.base_url", "https://dummyjson.com")
	v.SetDefault("catalog.limit", 100)
	v.SetDefault("catalog.timeout_seconds", 10)
	v.SetDefault("report.top_n", 5)
	v.SetDefault("report.low_threshold", 10)
	v.SetDefault("report.currency", "₹")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("SALES")
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config failed: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the loaded configuration for values the pipeline
// cannot work with.
func (c *Config) Validate() error {
	if c.Input.File == "" {
		return fmt.Errorf("input.file is required")
	}
	if c.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog.base_url is required")
	}
	if c.Catalog.Limit <= 0 {
		return fmt.Errorf("catalog.limit must be positive, got %d", c.Catalog.Limit)
	}
	if c.Report.TopN <= 0 {
		return fmt.Errorf("report.top_n must be positive, got %d", c.Report.TopN)
	}
	return nil
}
