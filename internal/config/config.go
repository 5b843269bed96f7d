package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EnvDataDir  = "ENRICHER_DATA_DIR"
	EnvLogLevel = "LOG_LEVEL"
)

type Config struct {
	App struct {
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	HTTP struct {
		TimeoutSeconds float64 `yaml:"timeout_seconds"`
		UserAgent      string  `yaml:"user_agent"`
		RatePerHost    float64 `yaml:"rate_per_host"`
		Burst          int     `yaml:"burst"`
		MaxBodyBytes   int64   `yaml:"max_body_bytes"`
	} `yaml:"http"`

	Discovery struct {
		TLDs           []string `yaml:"tlds"`
		Prefixes       []string `yaml:"prefixes"`
		CareerKeywords []string `yaml:"career_keywords"`
		MaxJobs        int      `yaml:"max_jobs"`
	} `yaml:"discovery"`

	Dispatch struct {
		Workers int `yaml:"workers"`
	} `yaml:"dispatch"`

	Report struct {
		DataSheet        string `yaml:"data_sheet"`
		MethodologySheet string `yaml:"methodology_sheet"`
	} `yaml:"report"`

	Store struct {
		Enabled      bool   `yaml:"enabled"`
		Path         string `yaml:"path"`
		CacheDomains bool   `yaml:"cache_domains"`
	} `yaml:"store"`

	Log struct {
		Level       string `yaml:"level"`
		Development bool   `yaml:"development"`
	} `yaml:"log"`
}

// Default returns the built-in configuration: a 3 second timeout, ten
// workers, three jobs per company and the fixed TLD, prefix and careers
// keyword lists.
func Default() Config {
	var c Config
	c.App.DataDir = "."

	c.HTTP.TimeoutSeconds = 3
	c.HTTP.UserAgent = "Mozilla/5.0 (compatible; company-jobs-enricher/1.0)"
	c.HTTP.RatePerHost = 2
	c.HTTP.Burst = 4
	c.HTTP.MaxBodyBytes = 5 << 20

	c.Discovery.TLDs = []string{"com", "org", "net", "io", "co", "ai"}
	c.Discovery.Prefixes = []string{"", "www."}
	c.Discovery.CareerKeywords = []string{"career", "job", "join-us", "work-with-us"}
	c.Discovery.MaxJobs = 3

	c.Dispatch.Workers = 10

	c.Report.DataSheet = "Data"
	c.Report.MethodologySheet = "Methodology"

	c.Store.Enabled = true
	c.Store.Path = "enricher.db"
	c.Store.CacheDomains = false

	c.Log.Level = "info"
	return c
}

// Load overlays the YAML file at path on Default. A missing file yields the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides the data dir and log level from the environment.
func ApplyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvDataDir)); v != "" {
		cfg.App.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Log.Level = v
	}
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds * float64(time.Second))
}

// StorePath resolves a relative store path against the data dir.
func (c Config) StorePath() string {
	if filepath.IsAbs(c.Store.Path) {
		return c.Store.Path
	}
	return filepath.Join(c.App.DataDir, c.Store.Path)
}
