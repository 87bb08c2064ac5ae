// Package config loads and validates the canonfmt run configuration.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the default configuration file name, looked up in the
// working directory.
const ConfigFile = ".canonfmt.yml"

const DefaultConfigContent = `# canonfmt configuration

# LANGUAGES
#
# Which built-in formatters take part in a run. Each formatter claims a set
# of file extensions; discovery only admits files with a claimed extension.
# Supported: shell (.sh, .bash), json (.json), yaml (.yml, .yaml), go (.go).
languages: [shell, json, yaml, go]

# LANGUAGE VERSION
#
# An opaque hint handed to the formatters. The shell formatter reads it as
# the dialect: bash (default), posix, mksh or bats. Other formatters ignore
# it.
languageVersion: ""

# INDENT
#
# Indentation width in spaces. 0 keeps each formatter's default (tabs for
# shell and go, two spaces for json and yaml).
indent: 0

# FILTERS
#
# include: glob patterns relative to each root, applied on top of the claimed
# extensions (a glob never admits a file no formatter claims). A pattern
# without a slash matches base names at any depth; "**" in a slashed pattern
# matches any number of directories. Empty means "every file with a claimed
# extension".
# exclude: files matching any of these are never formatted.
include: []
exclude: []
`

// Config is the immutable configuration for one run. Formatting preferences
// (indent, languageVersion) are opaque to the pipeline and are bound into
// the formatters at construction.
type Config struct {
	Languages       []string `yaml:"languages"`
	LanguageVersion string   `yaml:"languageVersion"`
	Indent          int      `yaml:"indent"`
	Include         []string `yaml:"include"`
	Exclude         []string `yaml:"exclude"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{}
}

// Load reads and validates the configuration at the given path. A missing
// file is a *MissingConfigError.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &MissingConfigError{Path: path}
	}
	if err != nil {
		return nil, err
	}
	return parse(data)
}

// LoadOrDefault loads ConfigFile from the given directory, falling back to
// defaults when it does not exist.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, ConfigFile))
	if err != nil {
		var missing *MissingConfigError
		if errors.As(err, &missing) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func parse(data []byte) (*Config, error) {
	// Decode to a generic document first so schema validation can reject
	// unknown keys, which a struct decode would silently drop.
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &InvalidYAMLError{Wrapped: err}
	}

	if doc != nil {
		if err := validateDocument(doc); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &InvalidYAMLError{Wrapped: err}
	}
	return &cfg, nil
}
