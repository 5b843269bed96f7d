package scrape

import (
	"context"

	"go.uber.org/zap"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/domain"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/scrape/careers"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/scrape/jobs"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/scrape/linkcheck"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/scrape/types"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/scrape/website"
)

type WebsiteGuesser interface {
	Guess(ctx context.Context, name string) (string, bool)
}

type CareersLocator interface {
	Locate(ctx context.Context, website string) (string, bool)
}

type JobSampler interface {
	Sample(ctx context.Context, careersURL string) []domain.JobPosting
}

type LinkValidator interface {
	Valid(ctx context.Context, url string) bool
}

// Config tunes the stages built by NewPipeline. Zero values use the stage defaults.
type Config struct {
	TLDs     []string
	Prefixes []string
	Keywords []string
	MaxJobs  int
	// DomainCache, when set, serves and stores guessed websites.
	DomainCache website.DomainCache
}

// Pipeline runs the discovery stages for one company at a time. It holds no
// per-company state and is safe for concurrent use.
type Pipeline struct {
	Guesser   WebsiteGuesser
	Locator   CareersLocator
	Sampler   JobSampler
	Validator LinkValidator
	Log       *zap.Logger
}

func NewPipeline(prober types.Prober, fetcher types.PageFetcher, cfg Config, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}

	g := website.New(prober, website.Config{TLDs: cfg.TLDs, Prefixes: cfg.Prefixes}, log)
	var guesser WebsiteGuesser = g
	if cfg.DomainCache != nil {
		guesser = website.NewCached(g, cfg.DomainCache)
	}

	return &Pipeline{
		Guesser:   guesser,
		Locator:   careers.New(fetcher, cfg.Keywords, log),
		Sampler:   jobs.New(fetcher, cfg.MaxJobs, log),
		Validator: linkcheck.New(prober, log),
		Log:       log.Named("process"),
	}
}

// ProcessCompany guesses the website, finds the careers page, samples jobs
// and validates every URL it produced. A failed stage leaves its fields and
// every later field at "", false or empty; nothing is retried.
func (p *Pipeline) ProcessCompany(ctx context.Context, in domain.CompanyInput) domain.CompanyResult {
	res := domain.NewCompanyResult(in)

	site, ok := p.Guesser.Guess(ctx, in.Name)
	if !ok {
		p.Log.Info("no website", zap.Int("index", in.Index), zap.String("company", in.Name))
		return res
	}
	res.Website = site
	res.WebsiteValid = p.Validator.Valid(ctx, site)

	page, ok := p.Locator.Locate(ctx, site)
	if !ok {
		p.Log.Info("no careers page",
			zap.Int("index", in.Index), zap.String("company", in.Name), zap.String("website", site))
		return res
	}
	res.CareersPage = page
	res.CareersValid = p.Validator.Valid(ctx, page)

	for _, job := range p.Sampler.Sample(ctx, page) {
		job.Valid = p.Validator.Valid(ctx, job.URL)
		res.Jobs = append(res.Jobs, job)
	}

	p.Log.Info("company done",
		zap.Int("index", in.Index),
		zap.String("company", in.Name),
		zap.String("website", site),
		zap.String("careers", page),
		zap.Int("jobs", len(res.Jobs)),
		zap.Int("valid_jobs", res.ValidJobs()),
	)
	return res
}
