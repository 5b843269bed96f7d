package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/domain"
	"github.com/gofrs/flock"
	"github.com/xuri/excelize/v2"
)

const (
	CompanyColumn           = "Company Name"
	DefaultDataSheet        = "Data"
	DefaultMethodologySheet = "Methodology"
	DefaultOutputFile       = "companies_jobs_with_methodology_validated.xlsx"
)

var (
	ErrNoCompanyColumn = errors.New("report: input has no \"Company Name\" column")
	ErrOutputLocked    = errors.New("report: output workbook is locked by another run")
)

// Methodology is written one line per row into the methodology sheet.
var Methodology = []string{
	"Methodology",
	"1. Enriched company data using Go with net/http and goquery.",
	"2. Guessed official websites using common TLDs (.com, .org, .net, .io, .co, .ai).",
	"3. Identified careers pages by searching for links containing 'career', 'job', 'join-us', 'work-with-us'.",
	"4. Scraped up to 3 job postings per company (title + URL).",
	"5. Checked all URLs for validity automatically (valid=TRUE, broken=FALSE).",
	"6. Saved the final Excel with two sheets: Data (company/jobs) and Methodology (steps above).",
}

type WorkbookOptions struct {
	DataSheet        string
	MethodologySheet string
}

func (o WorkbookOptions) withDefaults() WorkbookOptions {
	if strings.TrimSpace(o.DataSheet) == "" {
		o.DataSheet = DefaultDataSheet
	}
	if strings.TrimSpace(o.MethodologySheet) == "" {
		o.MethodologySheet = DefaultMethodologySheet
	}
	return o
}

// ReadCompanies reads company names from the first sheet of a workbook. The
// header row must contain a "Company Name" column (matched ignoring case and
// surrounding whitespace). Blank names are skipped and reported back as
// skipped spreadsheet row numbers.
func ReadCompanies(r io.Reader) ([]domain.CompanyInput, []int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, ErrNoCompanyColumn
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil, ErrNoCompanyColumn
	}

	col := -1
	for i, h := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(h), CompanyColumn) {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, nil, ErrNoCompanyColumn
	}

	var (
		out     []domain.CompanyInput
		skipped []int
	)
	for i, row := range rows[1:] {
		name := ""
		if col < len(row) {
			name = strings.TrimSpace(row[col])
		}
		if name == "" {
			// header is spreadsheet row 1
			skipped = append(skipped, i+2)
			continue
		}
		out = append(out, domain.CompanyInput{Index: len(out), Name: name})
	}
	return out, skipped, nil
}

func ReadCompaniesFile(path string) ([]domain.CompanyInput, []int, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	defer fh.Close()
	return ReadCompanies(fh)
}

// BuildWorkbook renders the table and the methodology into a new workbook.
func BuildWorkbook(t Table, opts WorkbookOptions) (*excelize.File, error) {
	opts = opts.withDefaults()
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", opts.DataSheet); err != nil {
		f.Close()
		return nil, err
	}
	for i, h := range t.Header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(opts.DataSheet, cell, h); err != nil {
			f.Close()
			return nil, err
		}
	}
	for r, row := range t.Rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				f.Close()
				return nil, err
			}
			if err := f.SetCellValue(opts.DataSheet, cell, v); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	if _, err := f.NewSheet(opts.MethodologySheet); err != nil {
		f.Close()
		return nil, err
	}
	for i, line := range Methodology {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(opts.MethodologySheet, cell, line); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// WriteWorkbook saves the report to path while holding an exclusive lock on
// path+".lock", so two runs never interleave writes to the same file. The
// lock file stays on disk after the write; only the lock is released.
func WriteWorkbook(path string, t Table, opts WorkbookOptions) error {
	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock output: %w", err)
	}
	if !ok {
		return ErrOutputLocked
	}
	defer func() { _ = lock.Unlock() }()

	f, err := BuildWorkbook(t, opts)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
