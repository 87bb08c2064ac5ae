package config

import "fmt"

type MissingConfigError struct {
	Path string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("configuration file missing: %s", e.Path)
}

type InvalidYAMLError struct {
	Wrapped error
}

func (e *InvalidYAMLError) Error() string {
	return fmt.Sprintf("%s is not a valid yaml document: %v", ConfigFile, e.Wrapped)
}

func (e *InvalidYAMLError) Unwrap() error { return e.Wrapped }

type InvalidConfigError struct {
	Wrapped error
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("%s is not a valid canonfmt configuration: %v", ConfigFile, e.Wrapped)
}

func (e *InvalidConfigError) Unwrap() error { return e.Wrapped }
