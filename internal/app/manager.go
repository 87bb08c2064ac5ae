package app

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/canonfmt/canonfmt/internal/config"
	"github.com/canonfmt/canonfmt/internal/formatter"
	"github.com/canonfmt/canonfmt/internal/pipeline"
	"github.com/canonfmt/canonfmt/internal/report"
)

// Manager defines the business logic behind the canonfmt commands: the three
// modes over the shared pipeline, plus access to the formatter registry.
type Manager interface {
	// FormatTree rewrites every misformatted file under the roots.
	FormatTree(ctx context.Context, roots []string, output string, useColour bool) error

	// CheckTree reports misformatted files without writing. With strict
	// set it returns *UnformattedFilesError when any file needs attention,
	// after the report has been emitted.
	CheckTree(ctx context.Context, roots []string, output string, useColour bool, strict bool) error

	// WatchCheck runs CheckTree, then reruns it whenever a relevant file
	// changes, until the context is cancelled. readyChan, if non-nil, is
	// signalled once the watcher is installed.
	WatchCheck(ctx context.Context, roots []string, output string, useColour bool,
		readyChan chan<- struct{}) error

	Registry() *formatter.Registry
}

// Ensure the interface is satisfied.
var _ Manager = (*LazyManager)(nil)

// LazyManager acts as a placeholder for a real Manager implementation,
// allowing for deferred initialization of dependencies.
type LazyManager struct {
	inner Manager
}

func (l *LazyManager) SetInner(m Manager) {
	l.inner = m
}

// HasInner returns true if the inner manager has been set.
// This is used by PersistentPreRunE to skip initialization if already configured (e.g., in tests).
func (l *LazyManager) HasInner() bool {
	return l.inner != nil
}

func (l *LazyManager) check() Manager {
	if l.inner == nil {
		panic("LazyManager accessed before initialization; check command wiring.")
	}
	return l.inner
}

func (l *LazyManager) FormatTree(ctx context.Context, roots []string, output string, useColour bool) error {
	return l.check().FormatTree(ctx, roots, output, useColour)
}

func (l *LazyManager) CheckTree(ctx context.Context, roots []string, output string,
	useColour bool, strict bool,
) error {
	return l.check().CheckTree(ctx, roots, output, useColour, strict)
}

func (l *LazyManager) WatchCheck(ctx context.Context, roots []string, output string,
	useColour bool, readyChan chan<- struct{},
) error {
	return l.check().WatchCheck(ctx, roots, output, useColour, readyChan)
}

func (l *LazyManager) Registry() *formatter.Registry {
	return l.check().Registry()
}

// Ensure the interface is satisfied.
var _ Manager = (*CLIManager)(nil)

// CLIManager is the concrete implementation of the Manager interface.
type CLIManager struct {
	logger   *slog.Logger
	cfg      *config.Config
	registry *formatter.Registry
	runner   *pipeline.Runner
	out      io.Writer
}

func NewCLIManager(
	l *slog.Logger,
	cfg *config.Config,
	registry *formatter.Registry,
	runner *pipeline.Runner,
	out io.Writer,
) *CLIManager {
	if out == nil {
		out = os.Stdout
	}
	return &CLIManager{
		logger:   l,
		cfg:      cfg,
		registry: registry,
		runner:   runner,
		out:      out,
	}
}

func (m *CLIManager) Registry() *formatter.Registry {
	return m.registry
}

func (m *CLIManager) filter() pipeline.Filter {
	return pipeline.Filter{
		Include:    m.cfg.Include,
		Exclude:    m.cfg.Exclude,
		Extensions: m.registry.Extensions(),
	}
}

func (m *CLIManager) runPipeline(ctx context.Context, roots []string) (*pipeline.Result, error) {
	filter := m.filter()
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	files, err := pipeline.Discover(ctx, roots, filter)
	if err != nil {
		return nil, err
	}
	m.logger.Debug("discovered files", "count", len(files))

	return m.runner.Run(ctx, files)
}

func (m *CLIManager) reporter(output string, useColour, writeMode bool) report.Reporter {
	if output == "json" {
		return &report.JSONReporter{WriteMode: writeMode}
	}
	return &report.TextReporter{UseColour: useColour, WriteMode: writeMode}
}

func (m *CLIManager) CheckTree(ctx context.Context, roots []string, output string,
	useColour bool, strict bool,
) error {
	res, err := m.runPipeline(ctx, roots)
	if err != nil {
		return err
	}

	if err := m.reporter(output, useColour, false).Write(m.out, res); err != nil {
		return err
	}

	if strict && !res.Clean() {
		return &UnformattedFilesError{}
	}
	return nil
}

func (m *CLIManager) FormatTree(ctx context.Context, roots []string, output string, useColour bool) error {
	res, err := m.runPipeline(ctx, roots)
	if err != nil {
		return err
	}

	for _, o := range res.Changed() {
		if err := writeFormatted(o); err != nil {
			return err
		}
		m.logger.Debug("rewrote file", "path", o.File.Display)
	}

	return m.reporter(output, useColour, true).Write(m.out, res)
}

// writeFormatted persists a changed outcome to its source path, keeping the
// file's existing permission bits.
func writeFormatted(o pipeline.Outcome) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(o.File.Path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(o.File.Path, o.Formatted, mode); err != nil {
		return fmt.Errorf("failed to rewrite %s: %w", o.File.Display, err)
	}
	return nil
}

func (m *CLIManager) WatchCheck(ctx context.Context, roots []string, output string,
	useColour bool, readyChan chan<- struct{},
) error {
	if err := m.CheckTree(ctx, roots, output, useColour, false); err != nil {
		return err
	}

	watcher := pipeline.NewWatcher(roots, m.filter(), m.logger)
	if readyChan != nil {
		go func() {
			<-watcher.Ready
			readyChan <- struct{}{}
		}()
	}

	err := watcher.Watch(ctx, func(display string) {
		m.logger.Info("Change detected", "path", display)
		if cErr := m.CheckTree(ctx, roots, output, useColour, false); cErr != nil {
			m.logger.Error("Check failed", "error", cErr)
		}
	})
	if err != nil && ctx.Err() != nil {
		// Cancellation is how a watch session normally ends.
		return nil
	}
	return err
}
