package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/domain"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/report"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded runs, or show and re-export one run",
	RunE:  runHistory,
}

var (
	historyLimit  int
	historyRun    string
	historyExport string
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of runs to list")
	historyCmd.Flags().StringVar(&historyRun, "run", "", "Show the companies of one run")
	historyCmd.Flags().StringVar(&historyExport, "export", "", "With --run, write that run's report to this .xlsx path")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyExport != "" && historyRun == "" {
		return errors.New("--export requires --run")
	}

	a, err := setup(nil)
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	db, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	if db == nil {
		return errors.New("run history is disabled (store.enabled=false)")
	}
	defer db.Close()

	if historyRun == "" {
		runs, err := db.ListRuns(ctx, historyLimit)
		if err != nil {
			return fmt.Errorf("list runs: %w", err)
		}
		renderRuns(os.Stdout, runs)
		return nil
	}

	results, err := db.LoadResults(ctx, historyRun)
	if err != nil {
		return err
	}
	if historyExport != "" {
		return report.WriteWorkbook(historyExport, report.Flatten(results), report.WorkbookOptions{
			DataSheet:        a.cfg.Report.DataSheet,
			MethodologySheet: a.cfg.Report.MethodologySheet,
		})
	}
	renderResults(os.Stdout, results)
	return nil
}

func renderRuns(w io.Writer, runs []store.Run) {
	t := report.NewTable(w)
	t.AppendHeader(table.Row{"Run", "Started", "Input", "Companies", "Websites", "Careers", "Jobs (valid)"})
	for _, r := range runs {
		t.AppendRow(table.Row{
			r.ID,
			r.StartedAt.Local().Format("2006-01-02 15:04"),
			r.InputPath,
			r.Companies,
			r.WebsitesFound,
			r.CareersFound,
			fmt.Sprintf("%d (%d)", r.JobsSampled, r.JobsValid),
		})
	}
	t.AppendFooter(table.Row{"Total", len(runs)})
	t.Render()
}

func renderResults(w io.Writer, results []domain.CompanyResult) {
	t := report.NewTable(w)
	t.AppendHeader(table.Row{"#", "Company", "Website", "Careers Page", "Jobs (valid)"})
	for _, r := range results {
		t.AppendRow(table.Row{
			r.Index + 1,
			r.Name,
			r.Website,
			r.CareersPage,
			fmt.Sprintf("%d (%d)", len(r.Jobs), r.ValidJobs()),
		})
	}
	t.Render()
}
