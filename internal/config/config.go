package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Fixed data source. The date range and interval are part of the path.
const (
	DefaultBaseURL = "https://api.polygon.io/v2/aggs/ticker/AAPL/range/1/day/2021-06-30/2024-06-01"
	DefaultAPIKey  = "YOUR_API_KEY"
	DefaultSymbol  = "AAPL"
	DefaultTitle   = "AAPL Stock Price (2021-2024)"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
		Symbol  string `yaml:"symbol"`
	} `yaml:"data_source"`
	HTTP struct {
		TimeoutSec int `yaml:"timeout_sec"`
	} `yaml:"http"`
	Chart struct {
		Title    string  `yaml:"title"`
		WidthIn  float64 `yaml:"width_in"`
		HeightIn float64 `yaml:"height_in"`
	} `yaml:"chart"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides
// and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("POLYGON_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("POLYGON_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("HTTP_TIMEOUT_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.TimeoutSec = n
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	// Defaults
	if cfg.DataSource.BaseURL == "" {
		cfg.DataSource.BaseURL = DefaultBaseURL
	}
	if cfg.DataSource.APIKey == "" {
		cfg.DataSource.APIKey = DefaultAPIKey
	}
	if cfg.DataSource.Symbol == "" {
		cfg.DataSource.Symbol = DefaultSymbol
	}
	if cfg.HTTP.TimeoutSec == 0 {
		cfg.HTTP.TimeoutSec = 30
	}
	if cfg.Chart.Title == "" {
		cfg.Chart.Title = DefaultTitle
	}
	if cfg.Chart.WidthIn == 0 {
		cfg.Chart.WidthIn = 10
	}
	if cfg.Chart.HeightIn == 0 {
		cfg.Chart.HeightIn = 5
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.DataSource.APIKey == "" {
		return fmt.Errorf("data_source.api_key is required")
	}
	u, err := url.Parse(c.DataSource.BaseURL)
	if err != nil {
		return fmt.Errorf("data_source.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("data_source.base_url must be an absolute http(s) URL")
	}
	if c.HTTP.TimeoutSec <= 0 {
		return fmt.Errorf("http.timeout_sec must be positive")
	}
	if c.Chart.WidthIn <= 0 || c.Chart.HeightIn <= 0 {
		return fmt.Errorf("chart.width_in and chart.height_in must be positive")
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
