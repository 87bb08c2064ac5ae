package report

import (
	"encoding/json"
	"io"

	"github.com/canonfmt/canonfmt/internal/pipeline"
)

// JSONReporter renders a machine-readable result.
type JSONReporter struct {
	WriteMode bool
}

type jsonError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type jsonOutput struct {
	Mode    string      `json:"mode"`
	Changed []string    `json:"changed"`
	Errors  []jsonError `json:"errors"`
	Stats   struct {
		Scanned int `json:"scanned"`
		Changed int `json:"changed"`
		Errors  int `json:"errors"`
	} `json:"stats"`
}

func (jr *JSONReporter) Write(w io.Writer, res *pipeline.Result) error {
	out := jsonOutput{
		Mode:    "check",
		Changed: []string{},
		Errors:  []jsonError{},
	}
	if jr.WriteMode {
		out.Mode = "write"
	}

	for _, o := range res.Changed() {
		out.Changed = append(out.Changed, o.File.Display)
	}
	for _, o := range res.Errored() {
		out.Errors = append(out.Errors, jsonError{Path: o.File.Display, Message: o.Message})
	}

	out.Stats.Scanned = len(res.Outcomes)
	out.Stats.Changed = len(out.Changed)
	out.Stats.Errors = len(out.Errors)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
