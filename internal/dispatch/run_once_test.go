package dispatch

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/domain"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inputs(n int) []domain.CompanyInput {
	out := make([]domain.CompanyInput, n)
	for i := range out {
		out[i] = domain.CompanyInput{Index: i, Name: fmt.Sprintf("Company %d", i)}
	}
	return out
}

func TestRunOnce_CompleteAndOrderedDespiteCompletionOrder(t *testing.T) {
	in := inputs(25)
	// Later inputs finish first.
	p := ProcessorFunc(func(ctx context.Context, c domain.CompanyInput) domain.CompanyResult {
		time.Sleep(time.Duration(len(in)-c.Index) * time.Millisecond)
		return domain.NewCompanyResult(c)
	})

	got := RunOnce(context.Background(), p, in, Options{Workers: 5})

	require.Len(t, got, len(in))
	for i, r := range got {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, in[i].Name, r.Name)
	}
}

func TestRunOnce_BoundsConcurrency(t *testing.T) {
	var inFlight, peak atomic.Int64
	p := ProcessorFunc(func(ctx context.Context, c domain.CompanyInput) domain.CompanyResult {
		n := inFlight.Add(1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return domain.NewCompanyResult(c)
	})

	got := RunOnce(context.Background(), p, inputs(40), Options{Workers: 3})

	assert.Len(t, got, 40)
	assert.LessOrEqual(t, peak.Load(), int64(3))
	assert.Positive(t, peak.Load())
}

func TestRunOnce_DefaultWorkers(t *testing.T) {
	var inFlight, peak atomic.Int64
	var mu sync.Mutex
	p := ProcessorFunc(func(ctx context.Context, c domain.CompanyInput) domain.CompanyResult {
		n := inFlight.Add(1)
		mu.Lock()
		if n > peak.Load() {
			peak.Store(n)
		}
		mu.Unlock()
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return domain.NewCompanyResult(c)
	})

	RunOnce(context.Background(), p, inputs(30), Options{})

	assert.LessOrEqual(t, peak.Load(), int64(DefaultWorkers))
}

func TestRunOnce_Empty(t *testing.T) {
	got := RunOnce(context.Background(), ProcessorFunc(func(ctx context.Context, c domain.CompanyInput) domain.CompanyResult {
		t.Fatal("processor should not be called")
		return domain.CompanyResult{}
	}), nil, Options{})

	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestRunOnce_CancelledContextStillReportsEveryCompany(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := ProcessorFunc(func(ctx context.Context, c domain.CompanyInput) domain.CompanyResult {
		return domain.NewCompanyResult(c)
	})

	got := RunOnce(ctx, p, inputs(4), Options{Workers: 2})

	assert.Len(t, got, 4)
}

func TestRunOnce_PublishesProgress(t *testing.T) {
	hub := events.NewHub()
	ch := hub.Subscribe(16)
	p := ProcessorFunc(func(ctx context.Context, c domain.CompanyInput) domain.CompanyResult {
		return domain.NewCompanyResult(c)
	})

	RunOnce(context.Background(), p, inputs(3), Options{Workers: 2, Hub: hub, RunID: "r1"})

	var companyDone, runDone int
	for len(ch) > 0 {
		e, err := events.ParseEvent(<-ch)
		require.NoError(t, err)
		assert.Equal(t, "r1", e.RunID)
		switch e.Type {
		case events.TypeCompanyDone:
			companyDone++
		case events.TypeRunDone:
			runDone++
		}
	}
	assert.Equal(t, 3, companyDone)
	assert.Equal(t, 1, runDone)
}
