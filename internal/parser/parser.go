// Package parser groups Excel CSV tokens into records.
//
// Records are formed from consecutive tokens that share a line number, so a
// quoted field spanning several physical lines belongs to the record of the
// line on which it ends. One token of lookahead is held between calls to
// decide where a record stops.
package parser

import (
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-excelcsv/internal/tokenizer"
)

// Parser reads values and records from a tokenizer.
// It is not safe for concurrent use.
type Parser struct {
	tokenizer *tokenizer.Tokenizer
	cache     tokenizer.Token
	hasCache  bool
	lastLine  int
}

// NewParser creates a parser for the given input string.
// For parsing from an io.Reader, use NewParserFromReader instead.
func NewParser(input string) *Parser {
	return NewParserFromStream(shapetokenizer.NewStream(input))
}

// NewParserFromStream creates a parser over a shape-core stream.
func NewParserFromStream(stream shapetokenizer.Stream) *Parser {
	return NewParserFromReader(tokenizer.NewStreamSource(stream))
}

// NewParserFromReader creates a parser over any rune source.
func NewParserFromReader(src io.RuneReader) *Parser {
	return &Parser{
		tokenizer: tokenizer.New(src),
		lastLine:  -1,
	}
}

// SetCommentStart sets the runes that start a comment line.
// Lines already buffered in the lookahead are not affected.
func (p *Parser) SetCommentStart(chars string) {
	p.tokenizer.SetCommentStart(chars)
}

// LastLineNumber returns the line of the most recently returned value or
// record, or -1 if nothing has been returned yet.
func (p *Parser) LastLineNumber() int {
	return p.lastLine
}

// Line returns the tokenizer's current line counter.
func (p *Parser) Line() int {
	return p.tokenizer.Line()
}

// NextValue returns the next field regardless of record boundaries.
// ok is false at end of input.
func (p *Parser) NextValue() (value string, ok bool, err error) {
	tok, ok, err := p.take()
	if err != nil || !ok {
		return "", false, err
	}
	p.lastLine = tok.Line
	return tok.Value, true, nil
}

// NextLine returns all fields of the next record. The returned slice is never
// empty when ok is true; ok is false at end of input.
func (p *Parser) NextLine() (fields []string, ok bool, err error) {
	first, ok, err := p.take()
	if err != nil || !ok {
		return nil, false, err
	}

	line := first.Line
	fields = append(make([]string, 0, 8), first.Value)
	for {
		tok, ok, err := p.tokenizer.Next()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			break
		}
		if tok.Line != line {
			p.cache = tok
			p.hasCache = true
			break
		}
		fields = append(fields, tok.Value)
	}

	p.lastLine = line
	return fields, true, nil
}

// Parse reads all remaining records into an AST.
//
// Returns *ast.ArrayDataNode - an array of records, where each record is an
// ArrayDataNode of LiteralNode string fields positioned at the record's line.
func (p *Parser) Parse() (ast.SchemaNode, error) {
	records := make([]ast.SchemaNode, 0, 16)
	for {
		fields, ok, err := p.NextLine()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		pos := ast.NewPosition(0, p.lastLine, 1)
		nodes := make([]ast.SchemaNode, len(fields))
		for i, f := range fields {
			nodes[i] = ast.NewLiteralNode(f, pos)
		}
		records = append(records, ast.NewArrayDataNode(nodes, pos))
	}
	return ast.NewArrayDataNode(records, ast.ZeroPosition()), nil
}

// take returns the cached token if present, otherwise a fresh one.
func (p *Parser) take() (tokenizer.Token, bool, error) {
	if p.hasCache {
		tok := p.cache
		p.cache = tokenizer.Token{}
		p.hasCache = false
		return tok, true, nil
	}
	return p.tokenizer.Next()
}
