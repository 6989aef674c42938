package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mhollis/diamond-stats/internal/export"
	"github.com/mhollis/diamond-stats/internal/fetch"
	"github.com/mhollis/diamond-stats/internal/links"
	"github.com/mhollis/diamond-stats/internal/logger"
	"github.com/mhollis/diamond-stats/internal/scrape"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagLeague     string
	flagLimitYears int
	flagMenuURL    string
	flagOutDir     string
	flagDelay      time.Duration
	flagVerbose    bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diamond-stats",
		Short: "Scrape Baseball Almanac yearly league statistics into CSV files",
		Long: `Scrapes yearly league statistics (player and team hitting/pitching,
standings, and the yearly events blurb) from Baseball Almanac and writes
normalized CSV tables.`,
		RunE: runScrape,
	}

	cmd.Flags().StringVar(&flagLeague, "league", "BOTH", "League to scrape: AL, NL, or BOTH")
	cmd.Flags().IntVar(&flagLimitYears, "limit-years", 0, "Only scrape the first N yearly links (useful for testing)")
	cmd.Flags().StringVar(&flagMenuURL, "menu-url", scrape.DefaultMenuURL, "Year-menu URL to start from")
	cmd.Flags().StringVar(&flagOutDir, "out-dir", ".", "Directory to write CSV outputs")
	cmd.Flags().DurationVar(&flagDelay, "delay", 2*time.Second, "Minimum delay between page loads")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runScrape is the main command logic
func runScrape(cmd *cobra.Command, args []string) error {
	league, err := links.ParseLeague(flagLeague)
	if err != nil {
		return err
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	writer, err := export.New(flagOutDir)
	if err != nil {
		return fmt.Errorf("initializing output directory: %w", err)
	}

	runner := scrape.New(fetch.NewClient(flagDelay))

	acc, err := runner.Run(context.Background(), scrape.Params{
		MenuURL:  flagMenuURL,
		League:   league,
		Limit:    flagLimitYears,
		HasLimit: cmd.Flags().Changed("limit-years"),
	})
	if err != nil {
		return fmt.Errorf("scraping: %w", err)
	}

	tables := append(acc.Flatten(), acc.EventsTable())
	if err := writer.WriteAll(tables); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	writeSummary(os.Stdout, tables, writer, logger.CountersSnapshot())
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
