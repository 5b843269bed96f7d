package main

import (
	"context"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/config"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/report"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/scrape"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/scrape/linkcheck"
)

var checkCmd = &cobra.Command{
	Use:   "check <url>...",
	Short: "Validate URLs the same way report links are validated",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, err := setup(func(c *config.Config) { c.Store.Enabled = false })
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	v := linkcheck.New(a.client(), a.log)
	renderChecks(os.Stdout, args, checkURLs(ctx, v, args, a.cfg.Dispatch.Workers))
	return nil
}

// checkURLs validates urls concurrently and returns verdicts in input order.
func checkURLs(ctx context.Context, v scrape.LinkValidator, urls []string, workers int) []bool {
	out := make([]bool, len(urls))
	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			out[i] = v.Valid(ctx, u)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func renderChecks(w io.Writer, urls []string, valid []bool) {
	t := report.NewTable(w)
	t.AppendHeader(table.Row{"URL", "Valid"})
	ok := 0
	for i, u := range urls {
		if valid[i] {
			ok++
		}
		t.AppendRow(table.Row{u, valid[i]})
	}
	t.AppendFooter(table.Row{"Valid", ok})
	t.Render()
}
