// Package cli prints search outcomes for the non-interactive mode.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"termsearch/internal/outcome"
)

// OutputFormat represents the output format of the non-interactive mode
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ErrNotComplete is returned when asked to print a pending outcome.
var ErrNotComplete = errors.New("search has not completed")

// ParseOutputFormat validates a user supplied format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "", OutputFormatTable:
		return OutputFormatTable, nil
	case OutputFormatJSON, OutputFormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want table, json or yaml)", s)
	}
}

// PrinterOptions contains options for printing results
type PrinterOptions struct {
	Format OutputFormat
	// Quiet prints only the links, one per line.
	Quiet bool
	// Out defaults to os.Stdout.
	Out io.Writer
}

// Printer renders one search outcome.
type Printer struct {
	options PrinterOptions
}

// NewPrinter creates a printer.
func NewPrinter(options PrinterOptions) *Printer {
	if options.Format == "" {
		options.Format = OutputFormatTable
	}
	if options.Out == nil {
		options.Out = os.Stdout
	}
	return &Printer{options: options}
}

// result is the structured form used for JSON and YAML output.
type result struct {
	Query        string       `json:"query" yaml:"query"`
	TotalResults string       `json:"totalResults" yaml:"totalResults"`
	SearchTime   string       `json:"searchTime" yaml:"searchTime"`
	Items        []resultItem `json:"items" yaml:"items"`
}

type resultItem struct {
	Title       string `json:"title" yaml:"title"`
	Link        string `json:"link" yaml:"link"`
	DisplayLink string `json:"displayLink" yaml:"displayLink"`
	Snippet     string `json:"snippet,omitempty" yaml:"snippet,omitempty"`
}

// Print writes the outcome of the search for query. A failed search is
// returned as an error so the caller can exit non-zero.
func (p *Printer) Print(query string, o outcome.Outcome) error {
	switch o.State {
	case outcome.StatePending:
		return ErrNotComplete
	case outcome.StateFailed:
		return fmt.Errorf("search for %q failed: %w", query, o.Err)
	}

	res := toResult(query, o)
	if p.options.Quiet {
		for _, it := range res.Items {
			fmt.Fprintln(p.options.Out, it.Link)
		}
		return nil
	}

	switch p.options.Format {
	case OutputFormatJSON:
		enc := json.NewEncoder(p.options.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case OutputFormatYAML:
		enc := yaml.NewEncoder(p.options.Out)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	default:
		p.printTable(res)
		return nil
	}
}

func toResult(query string, o outcome.Outcome) result {
	res := result{Query: query, Items: []resultItem{}}
	if o.Response != nil {
		res.TotalResults = o.Response.TotalResults
		res.SearchTime = o.Response.SearchTime
	}
	for _, it := range o.Items() {
		res.Items = append(res.Items, resultItem{
			Title:       it.Title,
			Link:        it.Link,
			DisplayLink: it.DisplayLink,
			Snippet:     strings.Join(strings.Fields(it.Snippet), " "),
		})
	}
	return res
}

func (p *Printer) printTable(res result) {
	fmt.Fprintf(p.options.Out, "%s %s results in %s seconds for '%s'\n",
		text.FgHiBlue.Sprint("Found"),
		text.FgHiWhite.Sprint(orDefault(res.TotalResults, "0")),
		orDefault(res.SearchTime, "0"),
		res.Query,
	)

	if len(res.Items) == 0 {
		fmt.Fprintln(p.options.Out, text.FgYellow.Sprint("No results"))
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(p.options.Out)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("#"),
		text.FgHiCyan.Sprint("TITLE"),
		text.FgHiCyan.Sprint("LINK"),
		text.FgHiCyan.Sprint("SNIPPET"),
	})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 40},
		{Number: 4, WidthMax: 60},
	})
	for i, it := range res.Items {
		t.AppendRow(table.Row{strconv.Itoa(i + 1), it.Title, it.Link, it.Snippet})
	}
	t.Render()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
