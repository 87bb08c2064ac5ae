package formatter

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// YAML formats YAML documents by round-tripping them through the yaml.v3 node
// representation, which preserves comments and key order.
type YAML struct {
	indent int
}

// NewYAML creates a YAML formatter. An indent of 0 uses two spaces.
func NewYAML(indent int) *YAML {
	if indent <= 0 {
		indent = 2
	}
	return &YAML{indent: indent}
}

func (y *YAML) Name() string { return "yaml" }

func (y *YAML) Extensions() []string { return []string{".yml", ".yaml"} }

func (y *YAML) Format(path string, src []byte) ([]byte, error) {
	// A file may hold a stream of documents separated by "---"; every one
	// of them must survive the round trip.
	dec := yaml.NewDecoder(bytes.NewReader(src))
	var docs []*yaml.Node
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Path: path, Message: err.Error()}
		}
		docs = append(docs, &node)
	}

	// An empty document has nothing to canonicalise.
	if len(docs) == 0 {
		return src, nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(y.indent)
	for _, doc := range docs {
		if err := enc.Encode(doc); err != nil {
			return nil, &ParseError{Path: path, Message: err.Error()}
		}
	}
	if err := enc.Close(); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error()}
	}
	return buf.Bytes(), nil
}
