// Package scrapetest provides in-memory Prober and PageFetcher fakes so the
// discovery stages can be tested without a network.
package scrapetest

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/scrape/types"
)

// ErrUnreachable is returned for any URL the fake does not know.
var ErrUnreachable = errors.New("scrapetest: unreachable")

// Prober answers from a status table. Unknown URLs fail with ErrUnreachable,
// which stands in for DNS failures, refused connections and timeouts.
type Prober struct {
	// Statuses is used for both modes unless Followed has an entry.
	Statuses map[string]int
	// Followed overrides Statuses for types.FollowRedirects.
	Followed map[string]int

	mu    sync.Mutex
	calls []string
}

func (p *Prober) Probe(_ context.Context, url string, mode types.ProbeMode) (int, error) {
	p.mu.Lock()
	p.calls = append(p.calls, url)
	p.mu.Unlock()

	if mode == types.FollowRedirects {
		if s, ok := p.Followed[url]; ok {
			return s, nil
		}
	}
	if s, ok := p.Statuses[url]; ok {
		return s, nil
	}
	return 0, ErrUnreachable
}

// Calls returns the probed URLs in call order.
func (p *Prober) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

// Fetcher serves HTML bodies keyed by URL. Unknown URLs fail with ErrUnreachable.
type Fetcher struct {
	Pages map[string]string

	mu    sync.Mutex
	calls []string
}

func (f *Fetcher) Fetch(_ context.Context, url string) (*goquery.Document, error) {
	f.mu.Lock()
	f.calls = append(f.calls, url)
	f.mu.Unlock()

	body, ok := f.Pages[url]
	if !ok {
		return nil, ErrUnreachable
	}
	return goquery.NewDocumentFromReader(strings.NewReader(body))
}

func (f *Fetcher) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}
