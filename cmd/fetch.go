package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/eventstudy"
	"github.com/etnz/eventstudy/yahoo"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	symbol     string
	from       string
	to         string
	outputFile string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch daily prices from Yahoo Finance" }
func (*fetchCmd) Usage() string {
	return `esc fetch [-s <symbol>] [-from <date>] [-to <date>] [-o <file>]

  Fetches the daily price history of an index from Yahoo Finance and writes
  it as a prices file for run. Adjusted closes are used when available. See
  the symbols topic for the accepted symbols.

Usage Examples:
# Fetches 30 years of S&P 500 history.
$ esc fetch -s SP500 -o sp500.csv

`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "SP500", "Index symbol or alias to fetch")
	f.StringVar(&c.from, "from", "-30y", "First date to fetch. See the dates topic for supported formats.")
	f.StringVar(&c.to, "to", "0d", "Last date to fetch. See the dates topic for supported formats.")
	f.StringVar(&c.outputFile, "o", "prices.csv", "Path to write the prices file (CSV format)")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, err := eventstudy.ParseDate(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -from date: %v\n", err)
		return subcommands.ExitUsageError
	}
	to, err := eventstudy.ParseDate(c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -to date: %v\n", err)
		return subcommands.ExitUsageError
	}

	series, err := yahoo.History(c.symbol, from, to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching %q: %v\n", c.symbol, err)
		return subcommands.ExitFailure
	}

	out, err := os.Create(c.outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating prices file %q: %v\n", c.outputFile, err)
		return subcommands.ExitFailure
	}
	if err := eventstudy.ExportPrices(out, series); err != nil {
		out.Close()
		fmt.Fprintf(os.Stderr, "Error writing prices file %q: %v\n", c.outputFile, err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing prices file %q: %v\n", c.outputFile, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Successfully wrote %d sessions of %s to %s\n", series.Len(), yahoo.Symbol(c.symbol), c.outputFile)
	return subcommands.ExitSuccess
}
