package report

import (
	"io"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/domain"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type Summary struct {
	Companies     int
	WebsitesFound int
	WebsitesValid int
	CareersFound  int
	CareersValid  int
	JobsSampled   int
	JobsValid     int
}

func Summarize(results []domain.CompanyResult) Summary {
	var s Summary
	for _, r := range results {
		s.Companies++
		if r.Website != "" {
			s.WebsitesFound++
		}
		if r.WebsiteValid {
			s.WebsitesValid++
		}
		if r.CareersPage != "" {
			s.CareersFound++
		}
		if r.CareersValid {
			s.CareersValid++
		}
		s.JobsSampled += len(r.Jobs)
		s.JobsValid += r.ValidJobs()
	}
	return s
}

func NewTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	// keep header and footer text as written instead of upper-casing it
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetOutputMirror(w)
	return t
}

func RenderSummary(w io.Writer, s Summary) {
	t := NewTable(w)
	t.AppendHeader(table.Row{"", "Found", "Valid"})
	t.AppendRow(table.Row{"Websites", s.WebsitesFound, s.WebsitesValid})
	t.AppendRow(table.Row{"Careers pages", s.CareersFound, s.CareersValid})
	t.AppendRow(table.Row{"Job postings", s.JobsSampled, s.JobsValid})
	t.AppendFooter(table.Row{"Companies", s.Companies, ""})
	t.Render()
}
