// Package web holds the HTTP primitives shared by every discovery stage: a
// HEAD existence probe and a GET that parses the body into a document.
package web

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/scrape/types"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/scrape/util"
)

const (
	DefaultTimeout      = 3 * time.Second
	DefaultUserAgent    = "Mozilla/5.0 (compatible; CompanyEnricher/1.0)"
	DefaultMaxBodyBytes = 5 << 20
)

type Options struct {
	Timeout      time.Duration
	UserAgent    string
	MaxBodyBytes int64
	Limiter      *util.HostLimiter
}

// Client implements types.Prober and types.PageFetcher.
type Client struct {
	opts     Options
	follow   *http.Client
	noFollow *http.Client
}

var (
	_ types.Prober      = (*Client)(nil)
	_ types.PageFetcher = (*Client)(nil)
)

func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.MaxIdleConnsPerHost = 4

	return &Client{
		opts:   opts,
		follow: &http.Client{Timeout: opts.Timeout, Transport: tr},
		noFollow: &http.Client{
			Timeout:   opts.Timeout,
			Transport: tr,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Probe sends a HEAD request and returns the response status.
func (c *Client) Probe(ctx context.Context, rawURL string, mode types.ProbeMode) (int, error) {
	hc := c.noFollow
	if mode == types.FollowRedirects {
		hc = c.follow
	}

	res, err := c.do(ctx, hc, http.MethodHead, rawURL)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 4096))
	return res.StatusCode, nil
}

// Fetch GETs rawURL and parses the body. Statuses >= 400 are errors.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*goquery.Document, error) {
	res, err := c.do(ctx, c.follow, http.MethodGet, rawURL)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, &Error{Op: "fetch", URL: rawURL, Status: res.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(res.Body, c.opts.MaxBodyBytes))
	if err != nil {
		return nil, &Error{Op: "parse", URL: rawURL, Status: res.StatusCode, Cause: err}
	}
	return doc, nil
}

func (c *Client) do(ctx context.Context, hc *http.Client, method, rawURL string) (*http.Response, error) {
	op := "probe"
	if method == http.MethodGet {
		op = "fetch"
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		if err == nil {
			err = errors.New("invalid URL")
		}
		return nil, &Error{Op: op, URL: rawURL, Cause: err}
	}

	if err := c.opts.Limiter.WaitURL(ctx, rawURL); err != nil {
		return nil, &Error{Op: op, URL: rawURL, Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, &Error{Op: op, URL: rawURL, Cause: err}
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	if method == http.MethodGet {
		req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	}

	res, err := hc.Do(req)
	if err != nil {
		return nil, &Error{Op: op, URL: rawURL, Cause: err}
	}
	return res, nil
}
