package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/config"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/domain"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/scrape/util"
)

var guessCmd = &cobra.Command{
	Use:   "guess <company name>",
	Short: "Guess the website of one company (add --full for the whole pipeline)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGuess,
}

var guessFull bool

func init() {
	guessCmd.Flags().BoolVar(&guessFull, "full", false, "Also locate the careers page, sample jobs and validate links; print JSON")
	rootCmd.AddCommand(guessCmd)
}

func runGuess(cmd *cobra.Command, args []string) error {
	a, err := setup(func(c *config.Config) {
		// one-off lookups never touch run history
		c.Store.Enabled = false
	})
	if err != nil {
		return err
	}
	defer a.close()

	name := strings.Join(args, " ")
	pl := a.pipeline(a.client(), nil)
	ctx := cmd.Context()

	if guessFull {
		res := pl.ProcessCompany(ctx, domain.CompanyInput{Name: name})
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	site, ok := pl.Guesser.Guess(ctx, name)
	if !ok {
		return fmt.Errorf("no website found for %q (token %q)", name, util.NormalizeName(name))
	}
	fmt.Println(site)
	return nil
}
