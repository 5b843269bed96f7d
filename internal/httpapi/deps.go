package httpapi

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/config"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/dispatch"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/domain"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/events"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/store"
)

// RunStore is the part of the store the API reads and writes.
type RunStore interface {
	SaveRun(ctx context.Context, meta store.RunMeta, results []domain.CompanyResult) (string, error)
	ListRuns(ctx context.Context, limit int) ([]store.Run, error)
	LoadResults(ctx context.Context, runID string) ([]domain.CompanyResult, error)
}

type Deps struct {
	Store RunStore

	Hub *events.Hub

	Cfg config.Config

	// Processor runs one company; usually a *scrape.Pipeline.
	Processor dispatch.Processor

	// RunStatus stores httpapi.RunStatus
	RunStatus *atomic.Value

	// Runs counts background runs still in flight. Callers that own Store
	// wait on it before closing the store.
	Runs *sync.WaitGroup

	// BaseCtx bounds background runs; cancelled on shutdown.
	BaseCtx context.Context

	Log *zap.Logger
}
