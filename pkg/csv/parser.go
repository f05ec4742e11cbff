package csv

import (
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-excelcsv/internal/parser"
	"github.com/shapestone/shape-excelcsv/internal/tokenizer"
)

// Parser reads Excel CSV values one at a time or one record at a time.
//
// Values and records may be read in any interleaving; no value is skipped or
// returned twice. A Parser is not safe for concurrent use.
//
// Example:
//
//	p := csv.NewParser(os.Stdin)
//	for {
//	    v, ok, err := p.NextValue()
//	    if err != nil {
//	        // handle error
//	    }
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(p.LastLineNumber(), v)
//	}
type Parser struct {
	p *parser.Parser
}

// NewParser creates a Parser reading UTF-8 text from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{p: parser.NewParserFromReader(tokenizer.NewUTF8Reader(r))}
}

// NewLatin1Parser creates a Parser that reads every byte of r as one
// character, without decoding.
func NewLatin1Parser(r io.Reader) *Parser {
	return &Parser{p: parser.NewParserFromReader(tokenizer.NewStraightReader(r))}
}

// NewParserFromString creates a Parser over an in-memory string.
func NewParserFromString(input string) *Parser {
	return &Parser{p: parser.NewParser(input)}
}

// NextValue returns the next field value regardless of record boundaries.
// ok is false once the input is exhausted. A non-nil error is a *ReadError.
func (p *Parser) NextValue() (value string, ok bool, err error) {
	value, ok, err = p.p.NextValue()
	return value, ok, wrapReadError(p.p.Line(), err)
}

// NextLine returns all values of the next record. ok is false once the input
// is exhausted; a returned record always has at least one field.
// A non-nil error is a *ReadError.
func (p *Parser) NextLine() (fields []string, ok bool, err error) {
	fields, ok, err = p.p.NextLine()
	return fields, ok, wrapReadError(p.p.Line(), err)
}

// Read reads one record, returning io.EOF at end of input, in the manner of
// encoding/csv.Reader.
func (p *Parser) Read() ([]string, error) {
	fields, ok, err := p.NextLine()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, io.EOF
	}
	return fields, nil
}

// LastLineNumber returns the line from which the last value was read, or -1
// if no value has been read yet.
func (p *Parser) LastLineNumber() int {
	return p.p.LastLineNumber()
}

// SetCommentStart sets the characters that indicate a comment at the
// beginning of a line. For example, with "#;!" all of these lines are
// comments:
//
//	# Comment
//	; Another Comment
//	! Yet another comment
//
// An empty string disables comments, which is the default. The change
// applies to lines not yet read.
func (p *Parser) SetCommentStart(chars string) {
	p.p.SetCommentStart(chars)
}

func (p *Parser) parse() (ast.SchemaNode, error) {
	node, err := p.p.Parse()
	if err != nil {
		return nil, wrapReadError(p.p.Line(), err)
	}
	return node, nil
}
