package report

import (
	"testing"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten_OneRowPerCompanyPaddedToWidestJobs(t *testing.T) {
	results := []domain.CompanyResult{
		{
			Index: 1, Name: "Foo", Website: "https://www.foo.io/", WebsiteValid: true,
			CareersPage: "https://www.foo.io/careers", CareersValid: true,
			Jobs: []domain.JobPosting{
				{Title: "Engineer", URL: "https://www.foo.io/careers/1", Valid: true},
				{Title: "Designer", URL: "https://www.foo.io/careers/2", Valid: false},
			},
		},
		{Index: 0, Name: "Acme", Jobs: []domain.JobPosting{}},
		{
			Index: 2, Name: "Bar", Website: "https://bar.com/", WebsiteValid: true,
			CareersPage: "https://bar.com/jobs", CareersValid: false,
			Jobs: []domain.JobPosting{{Title: "", URL: "https://bar.com/jobs/x", Valid: true}},
		},
	}

	got := Flatten(results)

	assert.Equal(t, []string{
		"Company Name", "Website", "Website Valid", "Careers Page", "Careers Valid",
		"Job1 Title", "Job1 URL", "Job1 Valid",
		"Job2 Title", "Job2 URL", "Job2 Valid",
	}, got.Header)
	require.Len(t, got.Rows, 3)

	assert.Equal(t, []any{"Acme", "", false, "", false, nil, nil, nil, nil, nil, nil}, got.Rows[0])
	assert.Equal(t, []any{
		"Foo", "https://www.foo.io/", true, "https://www.foo.io/careers", true,
		"Engineer", "https://www.foo.io/careers/1", true,
		"Designer", "https://www.foo.io/careers/2", false,
	}, got.Rows[1])
	assert.Equal(t, []any{
		"Bar", "https://bar.com/", true, "https://bar.com/jobs", false,
		"", "https://bar.com/jobs/x", true, nil, nil, nil,
	}, got.Rows[2])
}

func TestFlatten_NoJobsAnywhere(t *testing.T) {
	got := Flatten([]domain.CompanyResult{domain.NewCompanyResult(domain.CompanyInput{Name: "Acme"})})

	assert.Len(t, got.Header, 5)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "Acme", got.Rows[0][0])
}

func TestFlatten_DoesNotReorderInput(t *testing.T) {
	in := []domain.CompanyResult{{Index: 1, Name: "B"}, {Index: 0, Name: "A"}}

	Flatten(in)

	assert.Equal(t, "B", in[0].Name)
}

func TestFlatten_Empty(t *testing.T) {
	got := Flatten(nil)
	assert.Empty(t, got.Rows)
	assert.Len(t, got.Header, 5)
}

func TestSummarize(t *testing.T) {
	s := Summarize([]domain.CompanyResult{
		{Website: "https://a.com/", WebsiteValid: true, CareersPage: "https://a.com/jobs",
			Jobs: []domain.JobPosting{{Valid: true}, {Valid: false}}},
		{Jobs: []domain.JobPosting{}},
	})

	assert.Equal(t, Summary{
		Companies: 2, WebsitesFound: 1, WebsitesValid: 1,
		CareersFound: 1, CareersValid: 0, JobsSampled: 2, JobsValid: 1,
	}, s)
}
