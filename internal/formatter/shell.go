package formatter

import (
	"bytes"

	"mvdan.cc/sh/v3/syntax"
)

// Shell formats shell scripts using the shfmt syntax engine.
type Shell struct {
	lang   syntax.LangVariant
	indent uint
}

// NewShell creates a shell formatter. The version hint selects the dialect:
// bash (default), posix, mksh or bats. An indent of 0 keeps shfmt's default
// of tabs.
func NewShell(indent int, version string) (*Shell, error) {
	var lang syntax.LangVariant
	switch version {
	case "", "bash":
		lang = syntax.LangBash
	case "posix", "sh":
		lang = syntax.LangPOSIX
	case "mksh":
		lang = syntax.LangMirBSDKorn
	case "bats":
		lang = syntax.LangBats
	default:
		return nil, &UnknownDialectError{Language: "shell", Dialect: version}
	}

	if indent < 0 {
		indent = 0
	}
	return &Shell{lang: lang, indent: uint(indent)}, nil
}

func (s *Shell) Name() string { return "shell" }

func (s *Shell) Extensions() []string { return []string{".sh", ".bash"} }

// Format parses and reprints src. Parser and printer are created per call;
// the syntax package's types are not safe for concurrent use.
func (s *Shell) Format(path string, src []byte) ([]byte, error) {
	parser := syntax.NewParser(syntax.KeepComments(true), syntax.Variant(s.lang))

	file, err := parser.Parse(bytes.NewReader(src), path)
	if err != nil {
		return nil, &ParseError{Path: path, Message: err.Error()}
	}

	printer := syntax.NewPrinter(syntax.Indent(s.indent))
	var buf bytes.Buffer
	if err := printer.Print(&buf, file); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error()}
	}
	return buf.Bytes(), nil
}
