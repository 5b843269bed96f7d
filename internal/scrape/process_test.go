package scrape

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/domain"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/scrape/scrapetest"
)

// staticWeb is a small fake internet: www.foo.io has a careers page with four
// links, one of which is dead.
func staticWeb() (*scrapetest.Prober, *scrapetest.Fetcher) {
	p := &scrapetest.Prober{
		Statuses: map[string]int{
			"https://www.foo.io/":               http.StatusOK,
			"https://www.foo.io/careers":        http.StatusOK,
			"https://www.foo.io/careers/jobs/1": http.StatusOK,
			"https://www.foo.io/careers/jobs/2": http.StatusNotFound,
			"https://ats.example.com/foo/3":     http.StatusMovedPermanently,
			"https://bar.com/":                  http.StatusOK,
			"https://nocareers.com/":            http.StatusFound,
		},
		Followed: map[string]int{
			"https://nocareers.com/": http.StatusOK,
		},
	}
	f := &scrapetest.Fetcher{Pages: map[string]string{
		"https://www.foo.io/": `<a href="/about">About</a><a href="/careers">Careers</a>`,
		"https://www.foo.io/careers": `
			<a href="/jobs/1"> Engineer </a>
			<a href="jobs/2">Designer</a>
			<a href="https://ats.example.com/foo/3">PM</a>
			<a href="/jobs/4">Ignored</a>`,
		"https://nocareers.com/": `<a href="/about">About</a>`,
		// bar.com home page links to a careers page that cannot be fetched.
		"https://bar.com/": `<a href="/jobs">Jobs</a>`,
	}}
	return p, f
}

func TestProcessCompany_FullPath(t *testing.T) {
	p, f := staticWeb()
	pl := NewPipeline(p, f, Config{}, nil)

	got := pl.ProcessCompany(context.Background(), domain.CompanyInput{Index: 4, Name: "Foo"})

	assert.Equal(t, domain.CompanyResult{
		Index:        4,
		Name:         "Foo",
		Website:      "https://www.foo.io/",
		WebsiteValid: true,
		CareersPage:  "https://www.foo.io/careers",
		CareersValid: true,
		Jobs: []domain.JobPosting{
			{Title: "Engineer", URL: "https://www.foo.io/careers/jobs/1", Valid: true},
			{Title: "Designer", URL: "https://www.foo.io/careers/jobs/2", Valid: false},
			{Title: "PM", URL: "https://ats.example.com/foo/3", Valid: true},
		},
	}, got)
}

func TestProcessCompany_NoWebsite(t *testing.T) {
	p, f := staticWeb()
	pl := NewPipeline(p, f, Config{}, nil)

	got := pl.ProcessCompany(context.Background(), domain.CompanyInput{Index: 0, Name: "Acme"})

	assert.Equal(t, domain.CompanyResult{Index: 0, Name: "Acme", Jobs: []domain.JobPosting{}}, got)
	assert.Empty(t, f.Calls(), "no page is fetched without a website")
}

func TestProcessCompany_NoCareersPage(t *testing.T) {
	p, f := staticWeb()
	pl := NewPipeline(p, f, Config{}, nil)

	got := pl.ProcessCompany(context.Background(), domain.CompanyInput{Name: "NoCareers"})

	assert.Equal(t, "https://nocareers.com/", got.Website)
	assert.True(t, got.WebsiteValid)
	assert.Empty(t, got.CareersPage)
	assert.False(t, got.CareersValid)
	assert.Empty(t, got.Jobs)
}

func TestProcessCompany_CareersPageUnfetchable(t *testing.T) {
	p, f := staticWeb()
	pl := NewPipeline(p, f, Config{}, nil)

	got := pl.ProcessCompany(context.Background(), domain.CompanyInput{Name: "Bar"})

	assert.Equal(t, "https://bar.com/", got.Website)
	assert.Equal(t, "https://bar.com/jobs", got.CareersPage)
	assert.False(t, got.CareersValid)
	assert.NotNil(t, got.Jobs)
	assert.Empty(t, got.Jobs)
}

func TestProcessCompany_Idempotent(t *testing.T) {
	p, f := staticWeb()
	pl := NewPipeline(p, f, Config{}, nil)
	in := domain.CompanyInput{Index: 1, Name: "Foo"}

	first := pl.ProcessCompany(context.Background(), in)
	second := pl.ProcessCompany(context.Background(), in)
	assert.Equal(t, first, second)
}

func TestProcessCompany_Invariants(t *testing.T) {
	p, f := staticWeb()
	pl := NewPipeline(p, f, Config{}, nil)

	for _, name := range []string{"Foo", "Bar", "NoCareers", "Acme", ""} {
		got := pl.ProcessCompany(context.Background(), domain.CompanyInput{Name: name})
		if got.CareersPage != "" {
			assert.NotEmpty(t, got.Website, name)
		}
		if len(got.Jobs) > 0 {
			assert.NotEmpty(t, got.CareersPage, name)
		}
		if got.Website == "" {
			assert.False(t, got.WebsiteValid, name)
		}
		if got.CareersPage == "" {
			assert.False(t, got.CareersValid, name)
		}
	}
}

type stubGuesser struct{ site string }

func (s stubGuesser) Guess(context.Context, string) (string, bool) { return s.site, s.site != "" }

func TestProcessCompany_InjectedStages(t *testing.T) {
	_, f := staticWeb()
	p := &scrapetest.Prober{}
	pl := NewPipeline(p, f, Config{MaxJobs: 1}, nil)
	pl.Guesser = stubGuesser{site: "https://www.foo.io/"}

	got := pl.ProcessCompany(context.Background(), domain.CompanyInput{Name: "Whatever"})
	require.Len(t, got.Jobs, 1)
	assert.Equal(t, "https://www.foo.io/", got.Website)
	assert.False(t, got.WebsiteValid, "validator sees an empty network")
	assert.Equal(t, "Engineer", got.Jobs[0].Title)
}
