package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/sofmeright/premerge/src/config"
	"github.com/sofmeright/premerge/src/merge"
)

// Colors for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
)

// Printer formats and writes validation results.
type Printer struct {
	Writer io.Writer
	Color  bool
}

// NewPrinter creates a printer writing to stdout with color auto-detection.
func NewPrinter() *Printer {
	return &Printer{
		Writer: os.Stdout,
		Color:  UseColor(),
	}
}

// Print outputs results file by file in the given order, returns true if
// any file has errors.
func (p *Printer) Print(results []config.FileResult) bool {
	failed := false

	for _, r := range results {
		if r.Err == nil && len(r.Warnings) == 0 {
			continue
		}

		fmt.Fprintf(p.Writer, "\n%s\n", p.colorize(r.Path, colorBold))

		for _, w := range r.Warnings {
			fmt.Fprintf(p.Writer, "  %s %s\n", p.colorize("WARN", colorYellow), w)
		}
		if r.Err != nil {
			failed = true
			for _, e := range flatten(r.Err) {
				fmt.Fprintf(p.Writer, "  %s %s\n", p.colorize("ERR ", colorRed), e)
			}
		}
	}

	return failed
}

// Summary prints a final summary line.
func (p *Printer) Summary(results []config.FileResult) {
	failed, warnings := 0, 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
		warnings += len(r.Warnings)
	}
	fmt.Fprintf(p.Writer, "\n%s\n", SummaryLine(len(results), failed, warnings, p.Color))
}

// SummaryLine returns a one-line validation summary, optionally colored.
func SummaryLine(files, failed, warnings int, color bool) string {
	parts := []string{}
	if failed > 0 {
		s := fmt.Sprintf("%d invalid", failed)
		if color {
			s = colorRed + s + colorReset
		}
		parts = append(parts, s)
	}
	if warnings > 0 {
		s := fmt.Sprintf("%d warning", warnings)
		if warnings > 1 {
			s += "s"
		}
		if color {
			s = colorYellow + s + colorReset
		}
		parts = append(parts, s)
	}

	summary := "all valid"
	if len(parts) > 0 {
		summary = strings.Join(parts, ", ")
	}

	filesStr := fmt.Sprintf("%d", files)
	if color {
		filesStr = colorBold + filesStr + colorReset
	}
	return fmt.Sprintf("%s config files checked: %s", filesStr, summary)
}

// flatten splits an aggregated validation error into its parts.
func flatten(err error) []error {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		return merr.WrappedErrors()
	}
	return []error{err}
}

// MergeSection renders resolved merge options. Identifiers that fell back
// to a default are shown next to what they resolved to.
func MergeSection(w io.Writer, o merge.Options, color bool) {
	sec := NewSection(w, "Merge", 0, color)
	defer sec.Close()

	sec.KV("remote", o.Remote())
	sec.KV("target", o.Target())
	sec.KV("ref", o.Ref())
	sec.Separator()
	sec.KV("strategy", resolved(o.Strategy().String(), o.RawStrategy(), color))
	sec.KV("fast-forward", resolved(o.FastForwardMode().String(), o.RawFastForwardMode(), color))
	sec.Separator()
	sec.Row("%s", Dimmed(o.String(), color))
}

func resolved(canonical, raw string, color bool) string {
	if raw == canonical {
		return canonical
	}
	if raw == "" {
		return canonical + " " + Dimmed("(default)", color)
	}
	return fmt.Sprintf("%s %s", canonical, Dimmed(fmt.Sprintf("(from unknown %q)", raw), color))
}

// OptionTable writes label/value rows, marking the default.
func OptionTable(w io.Writer, opts []merge.Option, def string, color bool) {
	fmt.Fprintf(w, "%-20s%s\n", "LABEL", "VALUE")
	for _, o := range opts {
		mark := ""
		if o.Value == def {
			mark = " " + StatusIcon("success", color)
		}
		fmt.Fprintf(w, "%-20s%s%s\n", o.Label, o.Value, mark)
	}
}

func (p *Printer) colorize(text, color string) string {
	if !p.Color {
		return text
	}
	return color + text + colorReset
}

func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// UseColor returns true if colored output should be used.
// Respects NO_COLOR env, TERM=dumb, and terminal detection.
func UseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal() || IsCI()
}
