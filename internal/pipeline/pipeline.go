package pipeline

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"runtime"

	"github.com/sourcegraph/conc/pool"

	"github.com/canonfmt/canonfmt/internal/formatter"
)

// Runner formats discovered files and classifies the outcomes. It performs no
// filesystem writes.
type Runner struct {
	registry *formatter.Registry
	logger   *slog.Logger
	workers  int
}

// NewRunner creates a runner over the given formatter registry.
func NewRunner(registry *formatter.Registry, logger *slog.Logger) *Runner {
	return &Runner{
		registry: registry,
		logger:   logger.With("component", "pipeline"),
		workers:  runtime.GOMAXPROCS(0),
	}
}

// SetWorkers controls how many files are formatted concurrently. Values
// below 1 are treated as 1.
func (r *Runner) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	r.workers = n
}

// Run produces one outcome per file, in the order the files were given.
// Outcomes are written into index-addressed slots, so worker scheduling is
// not observable in the result. A file that cannot be read aborts the whole
// run with a *ReadError; a file the formatter cannot parse only produces a
// parse-error outcome.
func (r *Runner) Run(ctx context.Context, files []SourceFile) (*Result, error) {
	outcomes := make([]Outcome, len(files))

	p := pool.New().
		WithMaxGoroutines(r.workers).
		WithErrors().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()

	for i := range files {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			o, err := r.formatOne(files[i])
			if err != nil {
				return err
			}
			outcomes[i] = o
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return &Result{Outcomes: outcomes}, nil
}

func (r *Runner) formatOne(f SourceFile) (Outcome, error) {
	src, err := os.ReadFile(f.Path)
	if err != nil {
		return Outcome{}, &ReadError{Path: f.Display, Wrapped: err}
	}

	fm := r.registry.ForPath(f.Path)
	if fm == nil {
		// Discovery only admits recognised extensions, so a missing
		// formatter means the file arrived outside discovery. Leave it
		// alone.
		return Outcome{File: f, Original: src, Status: StatusUnchanged}, nil
	}

	formatted, err := fm.Format(f.Path, src)
	if err != nil {
		var pe *formatter.ParseError
		msg := err.Error()
		if errors.As(err, &pe) {
			msg = pe.Message
		}
		r.logger.Debug("parse failure", "path", f.Display, "error", msg)
		return Outcome{File: f, Original: src, Status: StatusParseError, Message: msg}, nil
	}

	if bytes.Equal(formatted, src) {
		return Outcome{File: f, Original: src, Status: StatusUnchanged}, nil
	}

	r.logger.Debug("needs formatting", "path", f.Display, "formatter", fm.Name())
	return Outcome{File: f, Original: src, Formatted: formatted, Status: StatusChanged}, nil
}
