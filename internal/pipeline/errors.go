package pipeline

import "fmt"

// DiscoveryError reports that a root directory could not be scanned. It is
// fatal to the run: an unreadable root is an environment problem, not a
// formatting finding.
type DiscoveryError struct {
	Root    string
	Wrapped error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("cannot scan root '%s': %v", e.Root, e.Wrapped)
}

func (e *DiscoveryError) Unwrap() error { return e.Wrapped }

// ReadError reports that a discovered file could not be read. Fatal to the
// run for the same reason as DiscoveryError.
type ReadError struct {
	Path    string
	Wrapped error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("cannot read '%s': %v", e.Path, e.Wrapped)
}

func (e *ReadError) Unwrap() error { return e.Wrapped }

// InvalidPatternError reports a malformed include or exclude glob.
type InvalidPatternError struct {
	Pattern string
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid glob pattern '%s'", e.Pattern)
}
