// Package website guesses a company's home page from its name by probing a
// small, fixed set of domain variants.
package website

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/scrape/types"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/scrape/util"
)

var (
	// DefaultTLDs is the TLD priority order; TLD is the outer loop.
	DefaultTLDs = []string{"com", "org", "net", "io", "co", "ai"}
	// DefaultPrefixes is tried within each TLD.
	DefaultPrefixes = []string{"", "www."}
)

type Config struct {
	TLDs     []string
	Prefixes []string
}

type Guesser struct {
	prober   types.Prober
	tlds     []string
	prefixes []string
	log      *zap.Logger
}

func New(prober types.Prober, cfg Config, log *zap.Logger) *Guesser {
	if len(cfg.TLDs) == 0 {
		cfg.TLDs = DefaultTLDs
	}
	if len(cfg.Prefixes) == 0 {
		cfg.Prefixes = DefaultPrefixes
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Guesser{
		prober:   prober,
		tlds:     cfg.TLDs,
		prefixes: cfg.Prefixes,
		log:      log.Named("guess"),
	}
}

// Candidates lists the URLs tried for token, in probe order.
func Candidates(token string, tlds, prefixes []string) []string {
	if token == "" {
		return nil
	}
	out := make([]string, 0, len(tlds)*len(prefixes))
	for _, tld := range tlds {
		for _, prefix := range prefixes {
			out = append(out, "https://"+prefix+token+"."+tld+"/")
		}
	}
	return out
}

// Reachable reports whether a probe status counts as "this site exists".
func Reachable(status int) bool {
	switch status {
	case http.StatusOK,
		http.StatusMovedPermanently,
		http.StatusFound,
		http.StatusSeeOther,
		http.StatusTemporaryRedirect,
		http.StatusPermanentRedirect:
		return true
	}
	return false
}

// Guess returns the first candidate that answers a probe with OK or a
// redirect. Every probe error means "not this one"; later candidates are not
// tried once one succeeds.
func (g *Guesser) Guess(ctx context.Context, name string) (string, bool) {
	token := util.NormalizeName(name)
	if token == "" {
		g.log.Debug("empty token", zap.String("company", name))
		return "", false
	}

	for _, candidate := range Candidates(token, g.tlds, g.prefixes) {
		if ctx.Err() != nil {
			return "", false
		}
		status, err := g.prober.Probe(ctx, candidate, types.NoRedirects)
		if err != nil {
			g.log.Debug("candidate unreachable", zap.String("url", candidate), zap.Error(err))
			continue
		}
		if Reachable(status) {
			g.log.Debug("candidate accepted", zap.String("url", candidate), zap.Int("status", status))
			return candidate, true
		}
		g.log.Debug("candidate rejected", zap.String("url", candidate), zap.Int("status", status))
	}
	return "", false
}
