package report

import (
	"fmt"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/domain"
)

// Table is the flattened, spreadsheet-shaped form of a result set. Cells hold
// strings, bools or nil for a blank.
type Table struct {
	Header []string
	Rows   [][]any
}

var baseHeader = []string{"Company Name", "Website", "Website Valid", "Careers Page", "Careers Valid"}

func JobHeader(n int) []string {
	return []string{
		fmt.Sprintf("Job%d Title", n),
		fmt.Sprintf("Job%d URL", n),
		fmt.Sprintf("Job%d Valid", n),
	}
}

// Flatten emits one row per company, in input order, with as many job column
// groups as the company with the most postings. Shorter rows are padded with
// blanks. A company without any postings still gets its row.
func Flatten(results []domain.CompanyResult) Table {
	sorted := make([]domain.CompanyResult, len(results))
	copy(sorted, results)
	domain.SortByIndex(sorted)

	maxJobs := 0
	for _, r := range sorted {
		if len(r.Jobs) > maxJobs {
			maxJobs = len(r.Jobs)
		}
	}

	header := append([]string{}, baseHeader...)
	for i := 1; i <= maxJobs; i++ {
		header = append(header, JobHeader(i)...)
	}

	rows := make([][]any, 0, len(sorted))
	for _, r := range sorted {
		row := make([]any, len(header))
		row[0] = r.Name
		row[1] = r.Website
		row[2] = r.WebsiteValid
		row[3] = r.CareersPage
		row[4] = r.CareersValid
		for i, j := range r.Jobs {
			off := len(baseHeader) + i*3
			row[off] = j.Title
			row[off+1] = j.URL
			row[off+2] = j.Valid
		}
		rows = append(rows, row)
	}
	return Table{Header: header, Rows: rows}
}
