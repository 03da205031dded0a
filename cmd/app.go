// Package cmd implements the CLI application to run event studies.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/etnz/eventstudy"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&runCmd{}, "study")
	c.Register(&summaryCmd{}, "study")
	c.Register(&chartCmd{}, "study")

	c.Register(&eventsCmd{}, "data")
	c.Register(&sessionsCmd{}, "data")
	c.Register(&fetchCmd{}, "data")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var resultsFile = flag.String("results-file", "results.csv", "Path to the study results file (CSV format)")

// ReadPrices loads a daily price series from a CSV file.
func ReadPrices(file string) (*eventstudy.Series, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open prices file %q: %w", file, err)
	}
	defer f.Close()

	series, err := eventstudy.ImportPrices(f)
	if err != nil {
		return nil, fmt.Errorf("could not read prices file %q: %w", file, err)
	}
	return series, nil
}

// ReadEvents loads the events from a CSV file.
func ReadEvents(file string) ([]eventstudy.Event, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open events file %q: %w", file, err)
	}
	defer f.Close()

	events, err := eventstudy.ImportEvents(f)
	if err != nil {
		return nil, fmt.Errorf("could not read events file %q: %w", file, err)
	}
	return events, nil
}

// ReadRecords loads the study records from the app results file.
func ReadRecords() ([]*eventstudy.Record, error) {
	f, err := os.Open(*resultsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open results file %q: %w", *resultsFile, err)
	}
	defer f.Close()

	records, err := eventstudy.ImportRecords(f)
	if err != nil {
		return nil, fmt.Errorf("could not read results file %q: %w", *resultsFile, err)
	}
	return records, nil
}

// WriteRecords writes the study records to the given file, or to the app
// results file when file is empty.
func WriteRecords(file string, records []*eventstudy.Record) (string, error) {
	if file == "" {
		file = *resultsFile
	}
	f, err := os.Create(file)
	if err != nil {
		return file, fmt.Errorf("could not create results file %q: %w", file, err)
	}
	if err := eventstudy.ExportRecords(f, records); err != nil {
		f.Close()
		return file, fmt.Errorf("could not write results file %q: %w", file, err)
	}
	return file, f.Close()
}

// printMarkdown renders a markdown document on the terminal.
func printMarkdown(doc string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Println(doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Println(doc)
		return
	}
	fmt.Print(out)
}
