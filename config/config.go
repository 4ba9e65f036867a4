package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rustyeddy/tradedash/backtest"
	"github.com/rustyeddy/tradedash/strategy"
	"gopkg.in/yaml.v3"
)

// Config represents the complete dashboard configuration
type Config struct {
	Store      StoreConfig         `json:"store" yaml:"store"`
	Backtest   BacktestConfig      `json:"backtest" yaml:"backtest"`
	Strategies []strategy.Strategy `json:"strategies,omitempty" yaml:"strategies,omitempty"`
	Log        LogConfig           `json:"log" yaml:"log"`
	Trace      TraceConfig         `json:"trace" yaml:"trace"`
}

// StoreConfig selects where journal entries live
type StoreConfig struct {
	Type string `json:"type" yaml:"type"` // "json", "sqlite", "postgres" or "memory"
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
	DSN  string `json:"dsn,omitempty" yaml:"dsn,omitempty"`
}

// BacktestConfig contains simulator defaults
type BacktestConfig struct {
	TradeCap     int    `json:"trade_cap" yaml:"trade_cap"`
	DefaultRange string `json:"default_range" yaml:"default_range"`
}

// LogConfig contains logger settings
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"` // "text" or "json"
}

// TraceConfig toggles span export
type TraceConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// Load reads path if it is set, otherwise starts from Default. A .env file
// in the working directory and the process environment override the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = readFile(path); err != nil {
			return nil, err
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	setDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a file without consulting the
// environment.
func LoadFromFile(path string) (*Config, error) {
	cfg, err := readFile(path)
	if err != nil {
		return nil, err
	}
	setDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func readFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}
	return cfg, nil
}

// SaveToFile saves configuration to a file (YAML for .yaml/.yml, JSON otherwise)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("TRADEDASH_STORE_TYPE"); v != "" {
		cfg.Store.Type = v
	}
	if v := os.Getenv("TRADEDASH_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Store.DSN = v
	}
	if v := os.Getenv("TRADEDASH_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TRADEDASH_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("TRADEDASH_TRACE"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TRADEDASH_TRACE: %w", err)
		}
		cfg.Trace.Enabled = on
	}
	return nil
}

func setDefaults(cfg *Config) {
	if cfg.Store.Type == "" {
		cfg.Store.Type = "json"
	}
	if cfg.Store.Path == "" {
		switch cfg.Store.Type {
		case "json":
			cfg.Store.Path = "./tradedash.json"
		case "sqlite":
			cfg.Store.Path = "./tradedash.db"
		}
	}
	if cfg.Backtest.TradeCap == 0 {
		cfg.Backtest.TradeCap = backtest.DefaultTradeCap
	}
	if cfg.Backtest.DefaultRange == "" {
		cfg.Backtest.DefaultRange = "3m"
	}
	if len(cfg.Strategies) == 0 {
		cfg.Strategies = strategy.Defaults()
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Store.Type {
	case "json", "sqlite":
		if c.Store.Path == "" {
			return fmt.Errorf("store.path required for %s store", c.Store.Type)
		}
	case "postgres":
		if c.Store.DSN == "" {
			return fmt.Errorf("store.dsn required for postgres store")
		}
	case "memory":
	default:
		return fmt.Errorf("store.type must be 'json', 'sqlite', 'postgres' or 'memory'")
	}
	if c.Backtest.TradeCap <= 0 || c.Backtest.TradeCap > backtest.MaxEquityPoints {
		return fmt.Errorf("backtest.trade_cap must be between 1 and %d", backtest.MaxEquityPoints)
	}
	if !validPreset(c.Backtest.DefaultRange) {
		return fmt.Errorf("backtest.default_range must be one of %s", strings.Join(backtest.Presets, ", "))
	}
	seen := map[string]bool{}
	for i, s := range c.Strategies {
		if s.ID == "" {
			return fmt.Errorf("strategies[%d].id is required", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate strategy id: %s", s.ID)
		}
		seen[s.ID] = true
		if s.RR <= 0 {
			return fmt.Errorf("strategies[%d].rr must be positive", i)
		}
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error")
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be 'text' or 'json'")
	}
	return nil
}

func validPreset(p string) bool {
	for _, v := range backtest.Presets {
		if v == p {
			return true
		}
	}
	return false
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Type: "json",
			Path: "./tradedash.json",
		},
		Backtest: BacktestConfig{
			TradeCap:     backtest.DefaultTradeCap,
			DefaultRange: "3m",
		},
		Strategies: strategy.Defaults(),
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
