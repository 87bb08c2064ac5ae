package formatter

import (
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// JSON formats JSON documents: validity is checked with gjson, indentation is
// canonicalised with tidwall/pretty.
type JSON struct {
	opts *pretty.Options
}

// NewJSON creates a JSON formatter. An indent of 0 uses two spaces.
func NewJSON(indent int) *JSON {
	ind := "  "
	if indent > 0 {
		ind = strings.Repeat(" ", indent)
	}
	return &JSON{opts: &pretty.Options{Width: 80, Indent: ind}}
}

func (j *JSON) Name() string { return "json" }

func (j *JSON) Extensions() []string { return []string{".json"} }

func (j *JSON) Format(path string, src []byte) ([]byte, error) {
	if !gjson.ValidBytes(src) {
		return nil, &ParseError{Path: path, Message: "invalid JSON document"}
	}

	out := pretty.PrettyOptions(src, j.opts)
	if len(out) == 0 || out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	return out, nil
}
