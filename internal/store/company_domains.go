package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

// GetCompanyDomain returns the cached website or "" if missing.
func (d *DB) GetCompanyDomain(ctx context.Context, company string) (string, error) {
	company = normalizeCompanyKey(company)
	if company == "" {
		return "", nil
	}

	var domain string
	err := d.Pool.QueryRowContext(ctx,
		`SELECT domain FROM company_domains WHERE company = ? LIMIT 1;`,
		company,
	).Scan(&domain)

	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(domain), nil
}

func (d *DB) UpsertCompanyDomain(ctx context.Context, company, website string) error {
	company = normalizeCompanyKey(company)
	website = strings.ToLower(strings.TrimSpace(website))

	if company == "" || website == "" {
		return nil
	}

	_, err := d.Pool.ExecContext(ctx, `
INSERT INTO company_domains(company, domain, fetched_at)
VALUES(?,?,?)
ON CONFLICT(company) DO UPDATE SET
  domain = excluded.domain,
  fetched_at = excluded.fetched_at;
`, company, website, time.Now().UTC().Format(time.RFC3339))

	return err
}

func normalizeCompanyKey(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Join(strings.Fields(s), " ")
	s = strings.ToLower(s)
	return s
}
