package store

import (
	"context"
	"database/sql"
)

const schemaVersion = 1

func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRowContext(ctx, `PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}

	if v >= schemaVersion {
		return tx.Commit()
	}

	// ---- Schema v1: tables ----

	stmts := []string{`
CREATE TABLE IF NOT EXISTS runs (
  id TEXT PRIMARY KEY,
  started_at TEXT NOT NULL,
  finished_at TEXT NOT NULL,
  input_path TEXT NOT NULL DEFAULT '',
  output_path TEXT NOT NULL DEFAULT '',
  companies INTEGER NOT NULL DEFAULT 0
);
`, `
CREATE TABLE IF NOT EXISTS company_results (
  run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
  idx INTEGER NOT NULL,
  name TEXT NOT NULL,
  website TEXT NOT NULL DEFAULT '',
  website_valid INTEGER NOT NULL DEFAULT 0,
  careers_page TEXT NOT NULL DEFAULT '',
  careers_valid INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (run_id, idx)
);
`, `
CREATE TABLE IF NOT EXISTS job_postings (
  run_id TEXT NOT NULL,
  company_idx INTEGER NOT NULL,
  pos INTEGER NOT NULL,
  title TEXT NOT NULL DEFAULT '',
  url TEXT NOT NULL,
  valid INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (run_id, company_idx, pos),
  FOREIGN KEY (run_id, company_idx) REFERENCES company_results(run_id, idx) ON DELETE CASCADE
);
`, `
CREATE TABLE IF NOT EXISTS company_domains (
  company TEXT PRIMARY KEY,
  domain TEXT NOT NULL,
  fetched_at TEXT NOT NULL
);
`,
		// ---- Schema v1: indexes ----
		`
CREATE INDEX IF NOT EXISTS idx_runs_started_at
ON runs(started_at);
`}

	for _, s := range stmts {
		if _, err := tx.ExecContext(ctx, s); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}
