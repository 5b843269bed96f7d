package dispatch

import (
	"context"
	"sync/atomic"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/domain"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/events"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const DefaultWorkers = 10

// Processor runs the full pipeline for one company. Implementations must not
// fail: every stage problem is already folded into the result.
type Processor interface {
	ProcessCompany(ctx context.Context, in domain.CompanyInput) domain.CompanyResult
}

type ProcessorFunc func(ctx context.Context, in domain.CompanyInput) domain.CompanyResult

func (f ProcessorFunc) ProcessCompany(ctx context.Context, in domain.CompanyInput) domain.CompanyResult {
	return f(ctx, in)
}

type Options struct {
	Workers int
	RunID   string
	Hub     *events.Hub
	Log     *zap.Logger
}

// RunOnce processes every company on a bounded pool and returns exactly one
// result per input, ordered by input index.
func RunOnce(ctx context.Context, p Processor, companies []domain.CompanyInput, opts Options) []domain.CompanyResult {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("dispatch")

	var g errgroup.Group
	g.SetLimit(workers)

	results := make(chan domain.CompanyResult, len(companies))
	total := len(companies)
	var done atomic.Int64

	log.Info("starting", zap.Int("companies", total), zap.Int("workers", workers))

	for _, c := range companies {
		c := c
		g.Go(func() error {
			res := p.ProcessCompany(ctx, c)
			results <- res

			n := int(done.Add(1))
			opts.Hub.Publish(events.MakeEvent(opts.RunID, events.TypeCompanyDone, 1, events.Progress{
				Index:   res.Index,
				Company: res.Name,
				Website: res.Website,
				Jobs:    len(res.Jobs),
				Done:    n,
				Total:   total,
			}))
			return nil
		})
	}

	_ = g.Wait()
	close(results)

	out := make([]domain.CompanyResult, 0, total)
	for res := range results {
		out = append(out, res)
	}
	domain.SortByIndex(out)

	opts.Hub.Publish(events.MakeEvent(opts.RunID, events.TypeRunDone, 1, events.Progress{Done: len(out), Total: total}))
	log.Info("finished", zap.Int("results", len(out)))
	return out
}
