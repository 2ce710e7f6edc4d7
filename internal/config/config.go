package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"RiskSentinel/internal/model"
	"RiskSentinel/internal/risk"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all application configuration.
type Config struct {
	Log struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`
	DataSource struct {
		Provider          string  `yaml:"provider" validate:"oneof=yahoo mock"`
		Benchmark         string  `yaml:"benchmark" validate:"required"`
		HistoryDays       int     `yaml:"history_days" validate:"gte=2"`
		RequestsPerSecond float64 `yaml:"requests_per_second" validate:"gt=0"`
	} `yaml:"data_source"`
	Portfolio struct {
		Securities    []string `yaml:"securities" validate:"required,min=1,dive,required"`
		MetricsFile   string   `yaml:"metrics_file"`
		DeriveMetrics bool     `yaml:"derive_metrics"`
	} `yaml:"portfolio"`
	Analytics struct {
		RiskFreeRate   float64 `yaml:"risk_free_rate"`
		PeriodsPerYear int     `yaml:"periods_per_year" validate:"gt=0"`
	} `yaml:"analytics"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron" validate:"required"`
		RunOnStart  bool   `yaml:"run_on_start"`
	} `yaml:"schedule"`
	Catalog      Catalog            `yaml:"catalog"`
	Descriptions risk.Descriptions  `yaml:"descriptions"`
	InflationRaw map[string]float64 `yaml:"inflation"`
	Proxy        string             `yaml:"proxy"`

	// Inflation is InflationRaw keyed by calendar month.
	Inflation model.InflationSeries `yaml:"-"`
}

// Catalog decodes the risk catalog from a YAML mapping while keeping the
// order in which categories and metrics are written:
//
//	Market Risk:
//	  Volatility: [0.1, 0.2]
//	  Volume: [1000000, .inf]
type Catalog struct {
	model.Catalog
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Catalog) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: catalog must be a mapping of categories", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		category := node.Content[i].Value
		metrics := node.Content[i+1]
		if metrics.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: category %q must be a mapping of metrics", metrics.Line, category)
		}
		c.AddCategory(category)
		for j := 0; j+1 < len(metrics.Content); j += 2 {
			name := metrics.Content[j].Value
			var bounds []float64
			if err := metrics.Content[j+1].Decode(&bounds); err != nil {
				return fmt.Errorf("line %d: %s/%s bounds: %w", metrics.Content[j+1].Line, category, name, err)
			}
			if len(bounds) != 2 {
				return fmt.Errorf("line %d: %s/%s needs [lower, upper], got %d values",
					metrics.Content[j+1].Line, category, name, len(bounds))
			}
			if err := c.AddMetric(category, name, bounds[0], bounds[1]); err != nil {
				return fmt.Errorf("line %d: %w", metrics.Content[j+1].Line, err)
			}
		}
	}
	return nil
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A .env file in the working directory is loaded first if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Analytics.RiskFreeRate = 0.05
	cfg.Portfolio.DeriveMetrics = true

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	cfg.Inflation = make(model.InflationSeries, len(cfg.InflationRaw))
	for key, rate := range cfg.InflationRaw {
		m, err := model.ParseMonth(key)
		if err != nil {
			return nil, fmt.Errorf("parse config inflation: %w", err)
		}
		cfg.Inflation[m] = rate
	}
	if cfg.Descriptions == nil {
		cfg.Descriptions = risk.Descriptions{}
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		c.Proxy = v
	}
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		c.DataSource.Provider = v
	}
	if v := os.Getenv("BENCHMARK_SYMBOL"); v != "" {
		c.DataSource.Benchmark = v
	}
	if v := os.Getenv("SECURITIES"); v != "" {
		c.Portfolio.Securities = splitSymbols(v)
	}
	if v := os.Getenv("METRICS_FILE"); v != "" {
		c.Portfolio.MetricsFile = v
	}
	if v := os.Getenv("RISK_FREE_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("RISK_FREE_RATE: %w", err)
		}
		c.Analytics.RiskFreeRate = rate
	}
	if v := os.Getenv("PERIODS_PER_YEAR"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PERIODS_PER_YEAR: %w", err)
		}
		c.Analytics.PeriodsPerYear = n
	}
	if v := os.Getenv("CRON_REFRESH"); v != "" {
		c.Schedule.RefreshCron = v
	}
	if v := os.Getenv("RUN_ON_START"); v != "" {
		c.Schedule.RunOnStart = v == "true" || v == "1"
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.DataSource.Provider == "" {
		c.DataSource.Provider = "yahoo"
	}
	if c.DataSource.Benchmark == "" {
		c.DataSource.Benchmark = "^NSEI"
	}
	if c.DataSource.HistoryDays == 0 {
		c.DataSource.HistoryDays = 365
	}
	if c.DataSource.RequestsPerSecond == 0 {
		c.DataSource.RequestsPerSecond = 2
	}
	if c.Analytics.PeriodsPerYear == 0 {
		c.Analytics.PeriodsPerYear = 252
	}
	if c.Schedule.RefreshCron == "" {
		c.Schedule.RefreshCron = "0 */15 * * * *"
	}
}

// Validate checks field constraints, then the catalog and description table.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Catalog.MetricCount() == 0 {
		return fmt.Errorf("%w: catalog has no metrics", ErrInvalidConfig)
	}
	for metric, levels := range c.Descriptions {
		for level := range levels {
			switch level {
			case model.LevelGood, model.LevelNeutral, model.LevelBad, model.LevelUnavailable:
			default:
				return fmt.Errorf("%w: descriptions.%s has unknown level %q", ErrInvalidConfig, metric, level)
			}
		}
	}
	return nil
}

func splitSymbols(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if sym := strings.TrimSpace(part); sym != "" {
			out = append(out, sym)
		}
	}
	return out
}
