package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/config"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/logger"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/scrape"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/scrape/util"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/scrape/web"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/scrape/website"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/store"
)

// app carries what every subcommand needs after flag parsing.
type app struct {
	cfg config.Config
	log *zap.Logger
}

func dataDir() string {
	if d := strings.TrimSpace(os.Getenv(config.EnvDataDir)); d != "" {
		return d
	}
	return "."
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return filepath.Join(dataDir(), config.FileName)
}

// resolveConfig is configPath for loading: an explicit --config is used as
// is, otherwise the data dir is created and seeded with the defaults on
// first use.
func resolveConfig() (string, error) {
	if flagConfig != "" {
		return flagConfig, nil
	}
	dir := dataDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return config.EnsureUserConfig(dir)
}

// setup loads config (file, then env, then flags via override), validates
// it and builds the logger.
func setup(override func(*config.Config)) (*app, error) {
	path, err := resolveConfig()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	config.ApplyEnv(&cfg)
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if override != nil {
		override(&cfg)
	}

	cfg, v := config.NormalizeAndValidate(cfg)
	if !v.OK() {
		return nil, v.Err()
	}

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Development: cfg.Log.Development})
	if err != nil {
		return nil, err
	}
	for _, w := range v.Warnings {
		log.Warn("config", zap.String("warning", w))
	}
	return &app{cfg: cfg, log: log}, nil
}

func (a *app) client() *web.Client {
	return web.New(web.Options{
		Timeout:      a.cfg.Timeout(),
		UserAgent:    a.cfg.HTTP.UserAgent,
		MaxBodyBytes: a.cfg.HTTP.MaxBodyBytes,
		Limiter:      util.NewHostLimiter(a.cfg.HTTP.RatePerHost, a.cfg.HTTP.Burst),
	})
}

func (a *app) pipeline(c *web.Client, db *store.DB) *scrape.Pipeline {
	var cache website.DomainCache
	if db != nil && a.cfg.Store.CacheDomains {
		cache = db
	}
	return scrape.NewPipeline(c, c, scrape.Config{
		TLDs:        a.cfg.Discovery.TLDs,
		Prefixes:    a.cfg.Discovery.Prefixes,
		Keywords:    a.cfg.Discovery.CareerKeywords,
		MaxJobs:     a.cfg.Discovery.MaxJobs,
		DomainCache: cache,
	}, a.log)
}

// openStore returns nil without error when the store is disabled.
func (a *app) openStore(ctx context.Context) (*store.DB, error) {
	if !a.cfg.Store.Enabled {
		return nil, nil
	}
	path := a.cfg.StorePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return store.Open(ctx, path)
}

func (a *app) close() {
	_ = a.log.Sync()
}
