package agent

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"

	"github.com/etnz/eventstudy"
	"github.com/etnz/eventstudy/docs"
	"github.com/etnz/eventstudy/renderer"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here to understand how markets behaved after historical events:
			what the measured results mean, which horizons could be measured, and how
			single events compare to the overall picture.

			Devise a plan of questions to ask each expert and come up with the best
			response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewHistorian returns the expert on the events themselves.
func NewHistorian() *Expert {
	return &Expert{
		Name: "Historian",
		Description: `This is an expert historian,
		very well aware of the context, causes and aftermath of wars, crashes,
		pandemics and the other events the user studies.
		Ask the Historian whenever you need background or grounding information about an event.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in history and market history. You can search and find
			about anything related to historical events, their dates, their context and
			their aftermath. You leverage Google Search to ground your assertions in a
			solid truth, and you know how to relate events to the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the expert on the study's numbers. It reads the results
// from resultsFile and computes growth rates on demand.
func NewAnalyst(resultsFile string) *Expert {
	lib := []Function{newResultsFunc(resultsFile), cagrFunc}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He reads the measured study results and computes
		growth figures. Ask the Analyst for the results table or for a compound
		annual growth rate.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a quantitative analyst in charge of the user's event study results.
				You know how to use the Tools to read the measured results and to compute
				compound annual growth rates. You are part of a team of experts, yours is
				everything about the study's numbers. They might ask you questions with
				approximative language, pardon them and figure out what they meant.

				How the results are measured:

			` + must(docs.GetTopic("method"))}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// newResultsFunc reads the study results and renders them for the expert.
func newResultsFunc(resultsFile string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Results",
			Description: `Results returns the measured study results as markdown: one row per
			event with its entry and the compound annual growth rate per horizon,
			followed by a per-horizon summary.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report of the study results.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			records, err := readResults(resultsFile)
			if err != nil {
				return errorResponse(id, "Results", err)
			}
			report := renderer.ResultsMarkdown(records) + "\n" + renderer.SummaryMarkdown(records)
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Results",
				Response: map[string]any{
					"output": report,
				},
			}
		},
	}
}

var cagrFunc = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Cagr",
		Description: `Cagr computes the compound annual growth rate between two prices over
		a number of years, in percent.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"entry": {
					Type:        genai.TypeNumber,
					Description: "The entry price. Must be positive.",
				},
				"exit": {
					Type:        genai.TypeNumber,
					Description: "The exit price. Must be positive.",
				},
				"years": {
					Type:        genai.TypeNumber,
					Description: "The holding period in years. Must be positive.",
				},
			},
			Required: []string{"entry", "exit", "years"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "The growth rate in percent, like +8.45%.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		entry, errEntry := number(args, "entry")
		exit, errExit := number(args, "exit")
		years, errYears := number(args, "years")
		if err := errors.Join(errEntry, errExit, errYears); err != nil {
			return errorResponse(id, "Cagr", err)
		}

		rate, ok := eventstudy.CAGR(decimal.NewFromFloat(entry), decimal.NewFromFloat(exit), years)
		if !ok {
			return errorResponse(id, "Cagr", fmt.Errorf("cagr is undefined for non-positive prices or years"))
		}
		return &genai.FunctionResponse{
			ID:   id,
			Name: "Cagr",
			Response: map[string]any{
				"output": rate.SignedString(),
			},
		}
	},
}

// readResults loads the study records from a results file.
func readResults(file string) ([]*eventstudy.Record, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open results file %q: %w", file, err)
	}
	defer f.Close()

	records, err := eventstudy.ImportRecords(f)
	if err != nil {
		return nil, fmt.Errorf("could not read results file %q: %w", file, err)
	}
	return records, nil
}

func number(args map[string]any, name string) (float64, error) {
	v, ok := args[name]
	if !ok {
		return 0, fmt.Errorf("argument %q is missing", name)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("argument %q is not a number as expected but %T", name, v)
	}
	return f, nil
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}
