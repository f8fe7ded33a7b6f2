package config

import (
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/rustyeddy/pricefeed/terminal"
	"github.com/rustyeddy/pricefeed/vendorapi"
	"gopkg.in/yaml.v3"
)

// Config represents the complete feed configuration
type Config struct {
	Vendor   VendorConfig   `json:"vendor" yaml:"vendor"`
	File     FileConfig     `json:"file" yaml:"file"`
	Terminal TerminalConfig `json:"terminal" yaml:"terminal"`
	Store    StoreConfig    `json:"store" yaml:"store"`
}

// VendorConfig contains vendor API connection parameters
type VendorConfig struct {
	BaseURL  string `json:"base_url" yaml:"base_url"`
	Token    string `json:"token,omitempty" yaml:"token,omitempty"`
	Interval string `json:"interval" yaml:"interval"`
}

// FileConfig contains bar-file ingestion parameters
type FileConfig struct {
	Path      string `json:"path,omitempty" yaml:"path,omitempty"`
	Delimiter string `json:"delimiter" yaml:"delimiter"`
	DailyBars bool   `json:"daily_bars" yaml:"daily_bars"`
}

// TerminalConfig contains trading-terminal parameters
type TerminalConfig struct {
	Symbol    string `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Timeframe string `json:"timeframe" yaml:"timeframe"`
}

// StoreConfig contains series store parameters
type StoreConfig struct {
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

var validIntervals = map[vendorapi.Interval]bool{
	vendorapi.I1m: true, vendorapi.I2m: true, vendorapi.I5m: true,
	vendorapi.I15m: true, vendorapi.I30m: true, vendorapi.I60m: true,
	vendorapi.I90m: true, vendorapi.I1h: true, vendorapi.I1d: true,
	vendorapi.I5d: true, vendorapi.I1wk: true, vendorapi.I1mo: true,
	vendorapi.I3mo: true,
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if (len(path) > 5 && path[len(path)-5:] == ".yaml") || (len(path) > 4 && path[len(path)-4:] == ".yml") {
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

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Vendor.BaseURL == "" {
		return fmt.Errorf("vendor.base_url is required")
	}
	if c.Vendor.Interval != "" && !validIntervals[vendorapi.Interval(c.Vendor.Interval)] {
		return fmt.Errorf("unknown vendor interval: %s", c.Vendor.Interval)
	}
	if utf8.RuneCountInString(c.File.Delimiter) != 1 {
		return fmt.Errorf("file.delimiter must be a single character")
	}
	if c.Terminal.Timeframe != "" {
		if _, ok := terminal.BarCode(terminal.Timeframe(c.Terminal.Timeframe)); !ok {
			return fmt.Errorf("unknown terminal timeframe: %s", c.Terminal.Timeframe)
		}
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Vendor: VendorConfig{
			BaseURL:  "https://api.example-data.com",
			Interval: string(vendorapi.I1d),
		},
		File: FileConfig{
			Delimiter: "\t",
			DailyBars: true,
		},
		Terminal: TerminalConfig{
			Timeframe: string(terminal.D1),
		},
		Store: StoreConfig{
			DBPath: "./pricefeed.sqlite",
		},
	}
}
