package formatter

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Registry maps file extensions to formatters.
type Registry struct {
	formatters []Formatter
	byExt      map[string]Formatter
}

// NewRegistry creates a registry from the given formatters. Two formatters
// claiming the same extension is a wiring mistake and produces an error.
func NewRegistry(formatters ...Formatter) (*Registry, error) {
	r := &Registry{byExt: make(map[string]Formatter)}
	for _, f := range formatters {
		for _, ext := range f.Extensions() {
			if prev, ok := r.byExt[ext]; ok {
				return nil, fmt.Errorf("extension %s claimed by both '%s' and '%s'", ext, prev.Name(), f.Name())
			}
			r.byExt[ext] = f
		}
		r.formatters = append(r.formatters, f)
	}
	return r, nil
}

// Build constructs a registry containing the built-in formatters for the
// requested languages. An empty language list enables all of them. The indent
// and version hint are bound into each formatter; the version hint is opaque
// here and interpreted (or ignored) by individual formatters.
func Build(languages []string, indent int, version string) (*Registry, error) {
	if len(languages) == 0 {
		languages = []string{"shell", "json", "yaml", "go"}
	}

	var formatters []Formatter
	for _, lang := range languages {
		switch lang {
		case "shell":
			sh, err := NewShell(indent, version)
			if err != nil {
				return nil, err
			}
			formatters = append(formatters, sh)
		case "json":
			formatters = append(formatters, NewJSON(indent))
		case "yaml":
			formatters = append(formatters, NewYAML(indent))
		case "go":
			formatters = append(formatters, NewGo())
		default:
			return nil, &UnknownLanguageError{Language: lang}
		}
	}

	return NewRegistry(formatters...)
}

// ForPath returns the formatter claiming the path's extension, or nil if no
// formatter recognises it.
func (r *Registry) ForPath(path string) Formatter {
	return r.byExt[strings.ToLower(filepath.Ext(path))]
}

// Formatters returns the registered formatters in registration order.
func (r *Registry) Formatters() []Formatter {
	return r.formatters
}

// Extensions returns every claimed extension, sorted.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
