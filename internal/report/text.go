// Package report renders pipeline results for humans and machines.
package report

import (
	"fmt"
	"io"

	"github.com/canonfmt/canonfmt/internal/pipeline"
)

// Reporter renders a pipeline result to a writer. Reporters perform no I/O
// beyond the writer they are handed.
type Reporter interface {
	Write(w io.Writer, res *pipeline.Result) error
}

// TextReporter renders plain text, one line per changed or errored file,
// using display paths. When WriteMode is set the changed label reads as a
// completed rewrite rather than a finding.
type TextReporter struct {
	UseColour bool
	WriteMode bool
}

const (
	colReset     = "\033[0m"
	colRed       = "\033[31m"
	colGreen     = "\033[32m"
	colGrey      = "\033[90m"
	colBoldRed   = "\033[1;31m"
	colBoldGreen = "\033[1;32m"
)

// cs returns a string which will render with the given colour
// if colourisation is enabled.
func (tr *TextReporter) cs(c, s string) string {
	if !tr.UseColour {
		return s
	}
	return c + s + colReset
}

func (tr *TextReporter) Write(w io.Writer, res *pipeline.Result) error {
	changedLabel := "[CHANGED]"
	if tr.WriteMode {
		changedLabel = "[REWROTE]"
	}

	for _, o := range res.Outcomes {
		switch o.Status {
		case pipeline.StatusChanged:
			fmt.Fprintf(w, "%s %s\n", tr.cs(colRed, changedLabel), o.File.Display)
		case pipeline.StatusParseError:
			fmt.Fprintf(w, "%s %s: %s\n", tr.cs(colBoldRed, "[ERROR]"), o.File.Display, o.Message)
		case pipeline.StatusUnchanged:
		}
	}

	changed := len(res.Changed())
	errored := len(res.Errored())
	if changed == 0 && errored == 0 {
		fmt.Fprintf(w, "%s\n", tr.cs(colGreen, "All files are formatted correctly"))
		return nil
	}

	summary := fmt.Sprintf("%d changed, %d parse errors, %d files scanned",
		changed, errored, len(res.Outcomes))
	fmt.Fprintf(w, "%s %s\n", tr.cs(colGrey, "Summary:"), tr.cs(colBoldRed, summary))
	return nil
}
