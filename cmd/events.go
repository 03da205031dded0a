package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// eventsCmd holds the flags for the 'events' subcommand.
type eventsCmd struct {
	eventsFile string
}

func (*eventsCmd) Name() string     { return "events" }
func (*eventsCmd) Synopsis() string { return "list the events a study would measure" }
func (*eventsCmd) Usage() string {
	return `esc events [-events <file>]

  Parses the events file and lists the events with their resolved dates.
  Events whose date cannot be read are reported as warnings, exactly as run
  would skip them.
`
}

func (c *eventsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.eventsFile, "events", "events.csv", "Path to the events file (CSV format)")
}

func (c *eventsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	events, err := ReadEvents(c.eventsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, e := range events {
		fmt.Println(e)
	}
	fmt.Fprintf(os.Stderr, "%d events in %s\n", len(events), c.eventsFile)
	return subcommands.ExitSuccess
}
