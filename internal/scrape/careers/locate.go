// Package careers finds a careers page among the links of a company home page.
package careers

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/scrape/types"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/scrape/util"
)

// DefaultKeywords are matched as substrings of the lowercased href.
var DefaultKeywords = []string{"career", "job", "join-us", "work-with-us"}

type Locator struct {
	fetcher  types.PageFetcher
	keywords []string
	log      *zap.Logger
}

func New(fetcher types.PageFetcher, keywords []string, log *zap.Logger) *Locator {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	lower := make([]string, 0, len(keywords))
	for _, k := range keywords {
		lower = append(lower, strings.ToLower(k))
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Locator{fetcher: fetcher, keywords: lower, log: log.Named("careers")}
}

// Locate returns the first link on website whose href mentions a careers
// keyword, resolved against website. Fetch failures and pages without a match
// both report no result.
func (l *Locator) Locate(ctx context.Context, website string) (string, bool) {
	if website == "" {
		return "", false
	}

	doc, err := l.fetcher.Fetch(ctx, website)
	if err != nil {
		l.log.Debug("home page fetch failed", zap.String("url", website), zap.Error(err))
		return "", false
	}

	for _, link := range types.Links(doc) {
		if l.matches(link.Href) {
			return util.ResolveHref(website, link.Href), true
		}
	}
	l.log.Debug("no careers link", zap.String("url", website))
	return "", false
}

func (l *Locator) matches(href string) bool {
	h := strings.ToLower(href)
	for _, k := range l.keywords {
		if strings.Contains(h, k) {
			return true
		}
	}
	return false
}
