// Package jobs samples job posting links from a careers page.
package jobs

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/domain"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/scrape/types"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/scrape/util"
)

const DefaultMaxJobs = 3

type Sampler struct {
	fetcher types.PageFetcher
	max     int
	log     *zap.Logger
}

func New(fetcher types.PageFetcher, max int, log *zap.Logger) *Sampler {
	if max <= 0 {
		max = DefaultMaxJobs
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Sampler{fetcher: fetcher, max: max, log: log.Named("jobs")}
}

// Sample returns the first links on careersURL, in document order, as job
// postings. Links are not filtered. Validity is left false for the caller.
func (s *Sampler) Sample(ctx context.Context, careersURL string) []domain.JobPosting {
	out := []domain.JobPosting{}
	if careersURL == "" {
		return out
	}

	doc, err := s.fetcher.Fetch(ctx, careersURL)
	if err != nil {
		s.log.Debug("careers page fetch failed", zap.String("url", careersURL), zap.Error(err))
		return out
	}

	for _, link := range types.Links(doc) {
		if len(out) == s.max {
			break
		}
		out = append(out, domain.JobPosting{
			Title: strings.TrimSpace(link.Text),
			URL:   util.ResolveHref(careersURL, link.Href),
		})
	}
	return out
}
