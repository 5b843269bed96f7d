package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/domain"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/scrape/website"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ website.DomainCache = (*DB)(nil)

func openTemp(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "enricher.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTemp(t)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, db.Pool))

	var v int
	require.NoError(t, db.Pool.QueryRow(`PRAGMA user_version;`).Scan(&v))
	assert.Equal(t, schemaVersion, v)
}

func TestCompanyDomains(t *testing.T) {
	db := openTemp(t)
	ctx := context.Background()

	got, err := db.GetCompanyDomain(ctx, "Foo")
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, db.UpsertCompanyDomain(ctx, "  Foo   Labs ", "https://www.FOO.io/"))
	got, err = db.GetCompanyDomain(ctx, "foo labs")
	require.NoError(t, err)
	assert.Equal(t, "https://www.foo.io/", got)

	require.NoError(t, db.UpsertCompanyDomain(ctx, "Foo Labs", "https://foo.com/"))
	got, err = db.GetCompanyDomain(ctx, "FOO LABS")
	require.NoError(t, err)
	assert.Equal(t, "https://foo.com/", got)

	// blanks are ignored
	require.NoError(t, db.UpsertCompanyDomain(ctx, "", "https://x.com/"))
	require.NoError(t, db.UpsertCompanyDomain(ctx, "Bar", ""))
	got, err = db.GetCompanyDomain(ctx, "Bar")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSaveRun_ListAndLoad(t *testing.T) {
	db := openTemp(t)
	ctx := context.Background()
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	results := []domain.CompanyResult{
		{Index: 0, Name: "Acme", Jobs: []domain.JobPosting{}},
		{
			Index: 1, Name: "Foo", Website: "https://www.foo.io/", WebsiteValid: true,
			CareersPage: "https://www.foo.io/careers", CareersValid: true,
			Jobs: []domain.JobPosting{
				{Title: "Engineer", URL: "https://www.foo.io/careers/1", Valid: true},
				{Title: "", URL: "https://www.foo.io/careers/2", Valid: false},
			},
		},
	}

	id, err := db.SaveRun(ctx, RunMeta{
		StartedAt: start, FinishedAt: start.Add(time.Minute),
		InputPath: "in.xlsx", OutputPath: "out.xlsx",
	}, results)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	runs, err := db.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, Run{
		ID: id, StartedAt: start, FinishedAt: start.Add(time.Minute),
		InputPath: "in.xlsx", OutputPath: "out.xlsx",
		Companies: 2, WebsitesFound: 1, CareersFound: 1, JobsSampled: 2, JobsValid: 1,
	}, runs[0])

	loaded, err := db.LoadResults(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, results, loaded)
}

func TestListRuns_NewestFirst(t *testing.T) {
	db := openTemp(t)
	ctx := context.Background()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	older, err := db.SaveRun(ctx, RunMeta{StartedAt: t0, FinishedAt: t0}, nil)
	require.NoError(t, err)
	newer, err := db.SaveRun(ctx, RunMeta{StartedAt: t0.Add(time.Hour), FinishedAt: t0.Add(time.Hour)}, nil)
	require.NoError(t, err)

	runs, err := db.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, newer, runs[0].ID)
	assert.Equal(t, older, runs[1].ID)

	runs, err = db.ListRuns(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestLoadResults_UnknownRun(t *testing.T) {
	db := openTemp(t)

	_, err := db.LoadResults(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestLoadResults_EmptyRun(t *testing.T) {
	db := openTemp(t)
	ctx := context.Background()
	id, err := db.SaveRun(ctx, RunMeta{StartedAt: time.Now(), FinishedAt: time.Now()}, nil)
	require.NoError(t, err)

	got, err := db.LoadResults(ctx, id)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSaveRun_KeepsGivenID(t *testing.T) {
	db := openTemp(t)

	id, err := db.SaveRun(context.Background(), RunMeta{ID: "fixed", StartedAt: time.Now(), FinishedAt: time.Now()}, nil)

	require.NoError(t, err)
	assert.Equal(t, "fixed", id)
}
