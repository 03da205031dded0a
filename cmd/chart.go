package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/eventstudy/chart"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	outputFile string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render the results as an interactive HTML report" }
func (*chartCmd) Usage() string {
	return `esc chart [-o <file>]

  Renders the study results as an interactive HTML report: growth per event,
  an event-by-horizon heat map, and growth against event date. Reads the
  -results-file written by run.

Usage Examples:
# Renders the results and opens chart.html in a browser.
$ esc chart -o chart.html

`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "chart.html", "Path to write the HTML report")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, err := ReadRecords()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	out, err := os.Create(c.outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating chart file %q: %v\n", c.outputFile, err)
		return subcommands.ExitFailure
	}
	if err := chart.WritePage(out, records); err != nil {
		out.Close()
		fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing chart file %q: %v\n", c.outputFile, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Successfully wrote %d events to %s\n", len(records), c.outputFile)
	return subcommands.ExitSuccess
}
