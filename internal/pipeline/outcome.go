// Package pipeline implements the formatting verification pipeline: file
// discovery, per-file formatting through a pluggable formatter, and the run
// result the reporters and modes consume. The pipeline itself never writes to
// the filesystem; persisting formatted output is the caller's job.
package pipeline

// Status classifies the formatting result for one file.
type Status string

const (
	// StatusUnchanged means the file is already in canonical form.
	StatusUnchanged Status = "unchanged"

	// StatusChanged means the formatter produced different text.
	StatusChanged Status = "changed"

	// StatusParseError means the formatter could not parse the file. The
	// original content stays authoritative and is never overwritten.
	StatusParseError Status = "parse-error"
)

// SourceFile identifies one discovered file.
type SourceFile struct {
	// Path is the absolute path, used for reading and writing.
	Path string

	// Display is the path as the operator should see it: the root as given
	// by the caller joined with the root-relative path, slash-separated.
	Display string
}

// Outcome records the formatting result for one file. It is created once per
// file per run and never mutated afterwards.
type Outcome struct {
	File      SourceFile
	Original  []byte
	Formatted []byte // populated only for StatusChanged
	Status    Status
	Message   string // formatter's message for StatusParseError
}

// Result is the ordered sequence of outcomes for one pipeline run. The order
// is discovery order; every discovered file appears exactly once.
type Result struct {
	Outcomes []Outcome
}

// Changed returns the outcomes whose formatting differs from the original,
// in outcome order.
func (r *Result) Changed() []Outcome {
	return r.withStatus(StatusChanged)
}

// Errored returns the outcomes the formatter could not parse, in outcome
// order.
func (r *Result) Errored() []Outcome {
	return r.withStatus(StatusParseError)
}

// Clean reports whether no file needs attention.
func (r *Result) Clean() bool {
	for _, o := range r.Outcomes {
		if o.Status != StatusUnchanged {
			return false
		}
	}
	return true
}

func (r *Result) withStatus(s Status) []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Status == s {
			out = append(out, o)
		}
	}
	return out
}
