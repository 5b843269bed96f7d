package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/domain"
	"github.com/google/uuid"
)

type RunMeta struct {
	// ID is generated when empty.
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	InputPath  string
	OutputPath string
}

type Run struct {
	ID            string    `json:"id"`
	StartedAt     time.Time `json:"startedAt"`
	FinishedAt    time.Time `json:"finishedAt"`
	InputPath     string    `json:"inputPath"`
	OutputPath    string    `json:"outputPath"`
	Companies     int       `json:"companies"`
	WebsitesFound int       `json:"websitesFound"`
	CareersFound  int       `json:"careersFound"`
	JobsSampled   int       `json:"jobsSampled"`
	JobsValid     int       `json:"jobsValid"`
}

// SaveRun stores one finished run with all of its company results and
// returns the new run id.
func (d *DB) SaveRun(ctx context.Context, meta RunMeta, results []domain.CompanyResult) (string, error) {
	id := meta.ID
	if id == "" {
		id = uuid.NewString()
	}

	tx, err := d.Pool.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
INSERT INTO runs(id, started_at, finished_at, input_path, output_path, companies)
VALUES(?,?,?,?,?,?);`,
		id,
		meta.StartedAt.UTC().Format(time.RFC3339),
		meta.FinishedAt.UTC().Format(time.RFC3339),
		meta.InputPath, meta.OutputPath, len(results),
	); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for _, r := range results {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO company_results(run_id, idx, name, website, website_valid, careers_page, careers_valid)
VALUES(?,?,?,?,?,?,?);`,
			id, r.Index, r.Name, r.Website, r.WebsiteValid, r.CareersPage, r.CareersValid,
		); err != nil {
			return "", fmt.Errorf("insert company %q: %w", r.Name, err)
		}
		for pos, j := range r.Jobs {
			if _, err := tx.ExecContext(ctx, `
INSERT INTO job_postings(run_id, company_idx, pos, title, url, valid)
VALUES(?,?,?,?,?,?);`,
				id, r.Index, pos, j.Title, j.URL, j.Valid,
			); err != nil {
				return "", fmt.Errorf("insert job for %q: %w", r.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// ListRuns returns the most recent runs first.
func (d *DB) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := d.Pool.QueryContext(ctx, `
SELECT r.id, r.started_at, r.finished_at, r.input_path, r.output_path, r.companies,
  (SELECT COUNT(*) FROM company_results c WHERE c.run_id = r.id AND c.website != ''),
  (SELECT COUNT(*) FROM company_results c WHERE c.run_id = r.id AND c.careers_page != ''),
  (SELECT COUNT(*) FROM job_postings j WHERE j.run_id = r.id),
  (SELECT COUNT(*) FROM job_postings j WHERE j.run_id = r.id AND j.valid = 1)
FROM runs r
ORDER BY r.started_at DESC, r.rowid DESC
LIMIT ?;`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r                 Run
			started, finished string
		)
		if err := rows.Scan(
			&r.ID, &started, &finished, &r.InputPath, &r.OutputPath, &r.Companies,
			&r.WebsitesFound, &r.CareersFound, &r.JobsSampled, &r.JobsValid,
		); err != nil {
			return nil, err
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, started)
		r.FinishedAt, _ = time.Parse(time.RFC3339, finished)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadResults rebuilds the company results of a stored run, ordered by index.
func (d *DB) LoadResults(ctx context.Context, runID string) ([]domain.CompanyResult, error) {
	var one int
	err := d.Pool.QueryRowContext(ctx, `SELECT 1 FROM runs WHERE id = ?;`, runID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %s: %w", runID, ErrRunNotFound)
	}
	if err != nil {
		return nil, err
	}

	rows, err := d.Pool.QueryContext(ctx, `
SELECT idx, name, website, website_valid, careers_page, careers_valid
FROM company_results
WHERE run_id = ?
ORDER BY idx;`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.CompanyResult{}
	byIdx := map[int]int{}
	for rows.Next() {
		r := domain.CompanyResult{Jobs: []domain.JobPosting{}}
		if err := rows.Scan(&r.Index, &r.Name, &r.Website, &r.WebsiteValid, &r.CareersPage, &r.CareersValid); err != nil {
			return nil, err
		}
		byIdx[r.Index] = len(out)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	jrows, err := d.Pool.QueryContext(ctx, `
SELECT company_idx, title, url, valid
FROM job_postings
WHERE run_id = ?
ORDER BY company_idx, pos;`, runID)
	if err != nil {
		return nil, err
	}
	defer jrows.Close()

	for jrows.Next() {
		var (
			idx int
			j   domain.JobPosting
		)
		if err := jrows.Scan(&idx, &j.Title, &j.URL, &j.Valid); err != nil {
			return nil, err
		}
		if i, ok := byIdx[idx]; ok {
			out[i].Jobs = append(out[i].Jobs, j)
		}
	}
	return out, jrows.Err()
}
