// Package formatter defines the boundary between the formatting pipeline and
// the concrete formatting engines behind it. The pipeline only sees the
// Formatter interface; which engine handles a file is decided by the Registry
// based on the file's extension.
package formatter

import "fmt"

// Formatter turns source text into its canonical form, or reports that the
// text cannot be parsed by returning a *ParseError.
type Formatter interface {
	// Name returns the language name used in configuration, e.g. "shell".
	Name() string

	// Extensions returns the file extensions this formatter claims,
	// including the leading dot.
	Extensions() []string

	// Format returns the canonical form of src. The path is used only for
	// error messages. A structural parse failure is reported as a
	// *ParseError; the caller must treat the original content as
	// authoritative in that case.
	Format(path string, src []byte) ([]byte, error)
}

// ParseError reports that a formatter could not parse its input. It is a
// per-file condition: the pipeline records it and carries on.
type ParseError struct {
	Path    string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// UnknownLanguageError is returned when a configured language has no
// registered formatter.
type UnknownLanguageError struct {
	Language string
}

func (e *UnknownLanguageError) Error() string {
	return fmt.Sprintf("no formatter registered for language '%s'", e.Language)
}

// UnknownDialectError is returned when a language-version hint is not
// understood by the formatter it was handed to.
type UnknownDialectError struct {
	Language string
	Dialect  string
}

func (e *UnknownDialectError) Error() string {
	return fmt.Sprintf("formatter '%s' does not understand language version '%s'", e.Language, e.Dialect)
}
