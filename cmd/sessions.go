package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/eventstudy"
)

// sessionsCmd holds the flags for the 'sessions' subcommand.
type sessionsCmd struct {
	pricesFile string
	on         string
	offset     int
	direction  string
}

func (*sessionsCmd) Name() string     { return "sessions" }
func (*sessionsCmd) Synopsis() string { return "inspect the trading calendar of a prices file" }
func (*sessionsCmd) Usage() string {
	return `esc sessions [-prices <file>] [-on <date> [-offset <n>] [-dir <forward|backward>]]

  Without -on, prints the span of the trading calendar. With -on, resolves
  the date to its closest session, and optionally walks the calendar by
  -offset sessions from there.

Usage Examples:
# Where would an event on a Saturday enter?
$ esc sessions -prices sp500.csv -on 2020-03-14 -offset 2

`
}

func (c *sessionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.pricesFile, "prices", "prices.csv", "Path to the daily prices file (CSV format)")
	f.StringVar(&c.on, "on", "", "Date to resolve. See the dates topic for supported formats.")
	f.IntVar(&c.offset, "offset", 0, "Sessions to walk from the resolved session, negative for backward")
	f.StringVar(&c.direction, "dir", eventstudy.Forward.String(), "Resolution direction when the date is not a session (forward, backward)")
}

func (c *sessionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	series, err := ReadPrices(c.pricesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	cal := series.Calendar()

	if c.on == "" {
		first, ok := cal.First()
		if !ok {
			fmt.Printf("0 sessions in %s\n", c.pricesFile)
			return subcommands.ExitSuccess
		}
		// a calendar with a first session has a last one too
		last, _ := cal.Last()
		fmt.Printf("%d sessions from %s to %s\n", cal.Len(), first, last)
		return subcommands.ExitSuccess
	}

	on, err := eventstudy.ParseDate(c.on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	dir, err := eventstudy.ParseDirection(c.direction)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing direction: %v\n", err)
		return subcommands.ExitUsageError
	}

	session, ok := cal.Closest(on, dir)
	if !ok {
		fmt.Fprintf(os.Stderr, "No session %s of %s\n", dir, on)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s resolves to %s\n", on, session)

	if c.offset != 0 {
		target, ok := cal.Offset(session, c.offset)
		if !ok {
			fmt.Fprintf(os.Stderr, "No session %+d sessions from %s\n", c.offset, session)
			return subcommands.ExitFailure
		}
		fmt.Printf("%+d sessions: %s\n", c.offset, target)
	}
	return subcommands.ExitSuccess
}
