// Package linkcheck classifies URLs as live or dead.
package linkcheck

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/scrape/types"
)

type Validator struct {
	prober types.Prober
	group  singleflight.Group
	log    *zap.Logger
}

func New(prober types.Prober, log *zap.Logger) *Validator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Validator{prober: prober, log: log.Named("linkcheck")}
}

// Valid probes url following redirects and reports whether the final status
// is below 400. Empty URLs and every kind of failure are invalid. Concurrent
// checks of the same URL share one probe.
func (v *Validator) Valid(ctx context.Context, url string) bool {
	if url == "" {
		return false
	}

	res, _, _ := v.group.Do(url, func() (any, error) {
		status, err := v.prober.Probe(ctx, url, types.FollowRedirects)
		if err != nil {
			v.log.Debug("probe failed", zap.String("url", url), zap.Error(err))
			return false, nil
		}
		if status >= 400 {
			v.log.Debug("dead link", zap.String("url", url), zap.Int("status", status))
		}
		return status > 0 && status < 400, nil
	})
	ok, _ := res.(bool)
	return ok
}
