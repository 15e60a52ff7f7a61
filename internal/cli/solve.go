package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/traverse/internal/presentation/tui"
	"github.com/aretw0/traverse/internal/report"
	"github.com/aretw0/traverse/internal/validator"
	"github.com/aretw0/traverse/pkg/domain"
)

// Format selects how a report is written.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatMarkdown, FormatJSON, FormatYAML:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, markdown, json or yaml)", s)
}

// SolveOptions configures RunSolve.
type SolveOptions struct {
	Name   string
	Format Format
	Unit   domain.Unit
	Debug  bool
}

// RunSolve solves a catalogue traverse and writes its report to w.
func RunSolve(w io.Writer, opts SolveOptions) error {
	engine := newEngine(opts.Debug)
	rep, err := engine.RunNamed(opts.Name)
	if err != nil {
		return err
	}
	return WriteReport(w, rep.In(opts.Unit), opts.Format)
}

// WriteReport encodes rep in the requested format.
// Text output is rendered with glamour only when w is a terminal.
func WriteReport(w io.Writer, rep *report.Report, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	case FormatMarkdown:
		_, err := io.WriteString(w, tui.Markdown(rep))
		return err
	default:
		return writeText(w, rep)
	}
}

func writeText(w io.Writer, rep *report.Report) error {
	p := colorProfile(w)
	md := tui.Markdown(rep)
	if isTerminal(w) {
		tui.PrintBanner(w, p)
		out, err := tui.NewRenderer()(md)
		if err != nil {
			return err
		}
		md = out
	}
	if _, err := io.WriteString(w, md); err != nil {
		return err
	}
	printSystemMessage(w, "%s", tui.ClosureStatus(rep, p))
	return nil
}

// RunList writes the catalogue names and titles.
func RunList(w io.Writer, debug bool) error {
	engine := newEngine(debug)
	for _, name := range engine.Traverses() {
		t, err := engine.Lookup(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%-16s %s\n", name, t.Title); err != nil {
			return err
		}
	}
	return nil
}

// RunValidate solves a catalogue traverse and runs the quality checks on it.
func RunValidate(w io.Writer, name string, opts validator.Options, debug bool) error {
	rep, err := newEngine(debug).RunNamed(name)
	if err != nil {
		return err
	}
	if err := validator.ValidateReport(rep, opts); err != nil {
		return err
	}
	printSystemMessage(w, "Traverse '%s' is valid: %s", name, tui.ClosureStatus(rep, termenv.Ascii))
	return nil
}
