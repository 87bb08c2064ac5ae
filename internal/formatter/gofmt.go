package formatter

import (
	"go/format"
)

// Go formats Go source with the standard library's go/format, which is the
// canonical gofmt engine.
type Go struct{}

func NewGo() *Go { return &Go{} }

func (g *Go) Name() string { return "go" }

func (g *Go) Extensions() []string { return []string{".go"} }

func (g *Go) Format(path string, src []byte) ([]byte, error) {
	out, err := format.Source(src)
	if err != nil {
		return nil, &ParseError{Path: path, Message: err.Error()}
	}
	return out, nil
}
