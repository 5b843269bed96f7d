package website

import (
	"context"

	"go.uber.org/zap"
)

// DomainCache stores previously guessed websites by company name.
type DomainCache interface {
	GetCompanyDomain(ctx context.Context, company string) (string, error)
	UpsertCompanyDomain(ctx context.Context, company, website string) error
}

// CachedGuesser consults the cache before probing and stores new guesses.
// Misses are not cached, so an unreachable company is probed again next run.
type CachedGuesser struct {
	g     *Guesser
	cache DomainCache
	log   *zap.Logger
}

func NewCached(g *Guesser, cache DomainCache) *CachedGuesser {
	return &CachedGuesser{g: g, cache: cache, log: g.log.Named("cache")}
}

func (c *CachedGuesser) Guess(ctx context.Context, name string) (string, bool) {
	// 1) cached?
	site, err := c.cache.GetCompanyDomain(ctx, name)
	if err != nil {
		c.log.Warn("cache lookup failed", zap.String("company", name), zap.Error(err))
	}
	if site != "" {
		return site, true
	}

	// 2) probe
	site, ok := c.g.Guess(ctx, name)
	if !ok {
		return "", false
	}

	// 3) store
	if err := c.cache.UpsertCompanyDomain(ctx, name, site); err != nil {
		c.log.Warn("cache store failed", zap.String("company", name), zap.Error(err))
	}
	return site, true
}
