package cmd

import (
	"context"
	"flag"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// captureStdout runs fn with os.Stdout redirected and returns what it printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("cannot create pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()
	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("cannot read captured output: %v", err)
	}
	return string(out)
}

func TestSessionsCmd(t *testing.T) {
	tmp := t.TempDir()
	prices := writeFile(t, tmp, "prices.csv", `Date,Adj Close
2020-01-02,100
2020-01-03,101
2020-01-06,102
2020-01-07,103
2020-01-08,104
`)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			"span without -on",
			[]string{"-prices", prices},
			[]string{"5 sessions from 2020-01-02 to 2020-01-08"},
		},
		{
			"weekend resolves forward",
			[]string{"-prices", prices, "-on", "2020-01-04"},
			[]string{"2020-01-04 resolves to 2020-01-06"},
		},
		{
			"offset walks the calendar",
			[]string{"-prices", prices, "-on", "2020-01-02", "-offset", "2"},
			[]string{"2020-01-02 resolves to 2020-01-02", "+2 sessions: 2020-01-06"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &sessionsCmd{}
			f := flag.NewFlagSet("test", flag.ContinueOnError)
			cmd.SetFlags(f)
			if err := f.Parse(tt.args); err != nil {
				t.Fatal(err)
			}

			var status subcommands.ExitStatus
			out := captureStdout(t, func() {
				status = cmd.Execute(context.Background(), f)
			})
			if status != subcommands.ExitSuccess {
				t.Fatalf("Execute() = %v, want ExitSuccess", status)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output %q does not contain %q", out, want)
				}
			}
		})
	}
}

func TestSessionsCmd_EmptyCalendar(t *testing.T) {
	tmp := t.TempDir()
	prices := writeFile(t, tmp, "prices.csv", "Date,Adj Close\n")

	cmd := &sessionsCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse([]string{"-prices", prices}); err != nil {
		t.Fatal(err)
	}

	var status subcommands.ExitStatus
	out := captureStdout(t, func() {
		status = cmd.Execute(context.Background(), f)
	})
	if status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}
	if !strings.Contains(out, "0 sessions in") {
		t.Errorf("output %q does not report an empty calendar", out)
	}
}

func TestSessionsCmd_OutOfRange(t *testing.T) {
	tmp := t.TempDir()
	prices := writeFile(t, tmp, "prices.csv", "Date,Adj Close\n2020-01-02,100\n")

	cmd := &sessionsCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse([]string{"-prices", prices, "-on", "1990-01-01", "-dir", "backward"}); err != nil {
		t.Fatal(err)
	}

	var status subcommands.ExitStatus
	captureStdout(t, func() {
		status = cmd.Execute(context.Background(), f)
	})
	if status != subcommands.ExitFailure {
		t.Fatalf("Execute() = %v, want ExitFailure", status)
	}
}
