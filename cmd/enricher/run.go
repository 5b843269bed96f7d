package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/config"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/dispatch"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/events"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/report"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/scheduler"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Enrich every company in an input workbook and write the report",
	RunE:  runRun,
}

var (
	runInput        string
	runOutput       string
	runWorkers      int
	runTimeout      float64
	runCacheDomains bool
	runNoStore      bool
	runEvery        time.Duration
)

func init() {
	runCmd.Flags().StringVarP(&runInput, "input", "i", "", "Input .xlsx with a \"Company Name\" column (required)")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", report.DefaultOutputFile, "Output .xlsx path")
	runCmd.Flags().IntVarP(&runWorkers, "workers", "w", 0, "Concurrent companies (default from config: 10)")
	runCmd.Flags().Float64Var(&runTimeout, "timeout", 0, "Per-request timeout in seconds (default from config: 3)")
	runCmd.Flags().BoolVar(&runCacheDomains, "cache-domains", false, "Reuse websites found by earlier runs")
	runCmd.Flags().BoolVar(&runNoStore, "no-store", false, "Do not record this run in the history database")
	runCmd.Flags().DurationVar(&runEvery, "every", 0, "Repeat the run on this interval until interrupted (e.g. 24h)")

	if err := runCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	a, err := setup(func(c *config.Config) {
		if runWorkers > 0 {
			c.Dispatch.Workers = runWorkers
		}
		if runTimeout > 0 {
			c.HTTP.TimeoutSeconds = runTimeout
		}
		if cmd.Flags().Changed("cache-domains") {
			c.Store.CacheDomains = runCacheDomains
		}
		if runNoStore {
			c.Store.Enabled = false
		}
	})
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	db, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	job := enrichJob{
		InputPath:  runInput,
		OutputPath: runOutput,
		Processor:  a.pipeline(a.client(), db),
		Workers:    a.cfg.Dispatch.Workers,
		Sheets: report.WorkbookOptions{
			DataSheet:        a.cfg.Report.DataSheet,
			MethodologySheet: a.cfg.Report.MethodologySheet,
		},
		Store: db,
		Log:   a.log,
	}
	once := func(ctx context.Context) error {
		summary, err := enrich(ctx, job)
		if err != nil {
			return err
		}
		report.RenderSummary(os.Stdout, summary)
		return nil
	}

	if runEvery <= 0 {
		return once(ctx)
	}
	scheduler.Every(ctx, runEvery, "run", a.log, once)
	return nil
}

type enrichJob struct {
	InputPath  string
	OutputPath string
	Processor  dispatch.Processor
	Workers    int
	Sheets     report.WorkbookOptions
	// Store is optional; nil skips run history.
	Store      *store.DB
	Log        *zap.Logger
}

// enrich reads the input, runs every company through the processor, writes
// the workbook and records the run. Only input, output and store failures
// are returned; per-company problems are already part of the results.
func enrich(ctx context.Context, job enrichJob) (report.Summary, error) {
	log := job.Log
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("run")
	started := time.Now()

	companies, skipped, err := report.ReadCompaniesFile(job.InputPath)
	if err != nil {
		return report.Summary{}, err
	}
	for _, row := range skipped {
		log.Warn("skipping blank company name", zap.Int("row", row))
	}
	log.Info("loaded input", zap.String("path", job.InputPath), zap.Int("companies", len(companies)))

	hub := events.NewHub()
	progress := hub.Subscribe(len(companies) + 1)
	doneLogging := make(chan struct{})
	go func() {
		defer close(doneLogging)
		logProgress(log, progress)
	}()

	results := dispatch.RunOnce(ctx, job.Processor, companies, dispatch.Options{
		Workers: job.Workers,
		Hub:     hub,
		Log:     log,
	})
	hub.Unsubscribe(progress)
	<-doneLogging

	if err := report.WriteWorkbook(job.OutputPath, report.Flatten(results), job.Sheets); err != nil {
		return report.Summary{}, err
	}
	log.Info("wrote report", zap.String("path", job.OutputPath))

	if job.Store != nil {
		// record even an interrupted run; its results are already on disk
		id, err := job.Store.SaveRun(context.WithoutCancel(ctx), store.RunMeta{
			StartedAt:  started,
			FinishedAt: time.Now(),
			InputPath:  job.InputPath,
			OutputPath: job.OutputPath,
		}, results)
		if err != nil {
			return report.Summary{}, fmt.Errorf("record run: %w", err)
		}
		log.Info("recorded run", zap.String("run_id", id))
	}

	return report.Summarize(results), nil
}

func logProgress(log *zap.Logger, ch <-chan string) {
	for raw := range ch {
		e, err := events.ParseEvent(raw)
		if err != nil || e.Type != events.TypeCompanyDone {
			continue
		}
		var p events.Progress
		if err := json.Unmarshal(e.Data, &p); err != nil {
			continue
		}
		log.Info("company done",
			zap.Int("done", p.Done),
			zap.Int("total", p.Total),
			zap.String("company", p.Company),
			zap.String("website", p.Website),
			zap.Int("jobs", p.Jobs))
	}
}
