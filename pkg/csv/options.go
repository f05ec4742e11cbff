package csv

import (
	"io"
	"strings"

	"github.com/shapestone/shape-core/pkg/ast"
)

// ReaderOptions configures Excel CSV parsing.
type ReaderOptions struct {
	// CommentStart lists the characters that mark a comment line when they
	// appear as the first character of a physical line. Commas, quotes and
	// line terminators are not allowed.
	// Default: "" (no comments)
	CommentStart string

	// Latin1 reads every input byte as one character (ISO-8859-1) instead
	// of decoding UTF-8. String input is already decoded and ignores it.
	// Default: false
	Latin1 bool
}

// DefaultReaderOptions returns the default reader configuration.
func DefaultReaderOptions() ReaderOptions {
	return ReaderOptions{
		CommentStart: "",
		Latin1:       false,
	}
}

// Validate checks if the options are valid.
func (o ReaderOptions) Validate() error {
	if strings.ContainsAny(o.CommentStart, ",\"\r\n") {
		return &OptionsError{Field: "CommentStart", Err: ErrCommentStart}
	}
	return nil
}

// NewParserWithOptions creates a Parser reading from r with custom options.
//
// Example:
//
//	opts := csv.DefaultReaderOptions()
//	opts.CommentStart = "#;"
//	p, err := csv.NewParserWithOptions(file, opts)
func NewParserWithOptions(r io.Reader, opts ReaderOptions) (*Parser, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	var p *Parser
	if opts.Latin1 {
		p = NewLatin1Parser(r)
	} else {
		p = NewParser(r)
	}
	p.SetCommentStart(opts.CommentStart)
	return p, nil
}

// ParseWithOptions parses Excel CSV into an AST from a string with custom options.
//
// Example:
//
//	opts := csv.DefaultReaderOptions()
//	opts.CommentStart = "#"
//	node, err := csv.ParseWithOptions("# header comment\nAlice,30", opts)
func ParseWithOptions(input string, opts ReaderOptions) (ast.SchemaNode, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	p := NewParserFromString(input)
	p.SetCommentStart(opts.CommentStart)
	return p.parse()
}

// ParseReaderWithOptions parses Excel CSV into an AST from an io.Reader with custom options.
//
// Example:
//
//	opts := csv.DefaultReaderOptions()
//	opts.Latin1 = true
//	node, err := csv.ParseReaderWithOptions(file, opts)
func ParseReaderWithOptions(reader io.Reader, opts ReaderOptions) (ast.SchemaNode, error) {
	p, err := NewParserWithOptions(reader, opts)
	if err != nil {
		return nil, err
	}
	return p.parse()
}
