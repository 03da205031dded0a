package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"

	"github.com/etnz/eventstudy"
	"github.com/etnz/eventstudy/renderer"
)

// runCmd holds the flags for the 'run' subcommand.
type runCmd struct {
	pricesFile string
	eventsFile string
	outputFile string
	entryLag   int
	horizons   string
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "measure growth after each event" }
func (*runCmd) Usage() string {
	return `esc run [-prices <file>] [-events <file>] [-o <file>] [-lag <sessions>] [-horizons <list>]

  Runs the event study: resolves each event to a trading session, takes the
  entry a few sessions later, and measures the compound annual growth rate to
  each horizon. Events that cannot be measured are skipped with a warning.
  Writes the results file and prints the results table.

Usage Examples:
# Measures S&P 500 growth after the events.
$ esc run -prices sp500.csv -events events.csv

`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.pricesFile, "prices", "prices.csv", "Path to the daily prices file (CSV format)")
	f.StringVar(&c.eventsFile, "events", "events.csv", "Path to the events file (CSV format)")
	f.StringVar(&c.outputFile, "o", "", "Path to write the results file. Defaults to -results-file.")
	f.IntVar(&c.entryLag, "lag", eventstudy.DefaultEntryLag, "Trading sessions between the event session and the entry")
	f.StringVar(&c.horizons, "horizons", "1,3,5", "Comma-separated horizons, in years")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	horizons, err := parseHorizons(c.horizons)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing horizons: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.entryLag < 0 {
		fmt.Fprintln(os.Stderr, "-lag cannot be negative")
		return subcommands.ExitUsageError
	}

	series, err := ReadPrices(c.pricesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	events, err := ReadEvents(c.eventsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	study := eventstudy.NewStudy(series)
	study.EntryLag = c.entryLag
	study.Horizons = horizons

	bar := initProgressBar(len(events))
	records := make([]*eventstudy.Record, 0, len(events))
	for _, e := range events {
		rec, err := study.Process(e)
		if err != nil {
			log.Printf("skipping: %v", err)
		} else {
			records = append(records, rec)
		}
		bar.Add(1)
	}
	fmt.Fprintln(os.Stderr)

	out, err := WriteRecords(c.outputFile, records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ResultsMarkdown(records))
	fmt.Fprintf(os.Stderr, "Successfully wrote %d results to %s\n", len(records), out)
	return subcommands.ExitSuccess
}

// parseHorizons parses a comma-separated horizon list like "1,3,5".
func parseHorizons(list string) ([]eventstudy.Horizon, error) {
	var horizons []eventstudy.Horizon
	for _, s := range strings.Split(list, ",") {
		h, err := eventstudy.ParseHorizon(strings.TrimSpace(s))
		if err != nil {
			return nil, err
		}
		horizons = append(horizons, h)
	}
	return horizons, nil
}

func initProgressBar(events int) *progressbar.ProgressBar {
	return progressbar.NewOptions(events,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("Measuring events..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
