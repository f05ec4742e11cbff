// Package csv reads comma separated values in the format written by
// Microsoft Excel.
//
// The dialect differs from the ISO CSV standard in several respects:
//
//   - Leading and trailing whitespace is significant.
//   - A backslash is not a special character and escapes nothing.
//   - Quotes inside quoted fields are escaped by doubling them ("").
//   - Text after a closing quote and before the next comma is ignored.
//   - A quote that is not the first character of a field is literal.
//
// Empty fields are returned as empty strings. The following line has three
// empty fields and three non-empty ones, one of which is a single space:
//
//	,second,, ,fifth,
//
// Blank lines are always ignored. Other lines are ignored if they start with
// a comment character set with SetCommentStart.
//
// Malformed input is never rejected: a quoted field left open at end of
// input ends there with whatever it contains. Line terminators inside quoted
// fields are returned verbatim. The only errors are failures of the
// underlying reader, reported as *ReadError.
//
// Records are grouped by the line on which each field ends, so a quoted
// field spanning several lines belongs to the record of its last line.
//
// # Thread Safety
//
// A Parser or Scanner must be driven by one goroutine at a time. The
// package-level functions create their own parser and are safe for
// concurrent use.
//
// # Example usage with Parser:
//
//	p := csv.NewParser(file)
//	p.SetCommentStart("#")
//	for {
//	    fields, ok, err := p.NextLine()
//	    if err != nil {
//	        // handle error
//	    }
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(p.LastLineNumber(), fields)
//	}
//
// # Example usage with Parse:
//
//	node, err := csv.Parse("name,age\nAlice,30\nBob,25")
//	if err != nil {
//	    // handle error
//	}
//	// node is now a *ast.ArrayDataNode representing the CSV data
package csv

import (
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Parse parses Excel CSV into an AST from a string.
//
// Returns an ast.ArrayDataNode representing the parsed CSV:
//   - *ast.ArrayDataNode for the file (array of records)
//   - Each record is an *ast.ArrayDataNode of fields
//   - Each field is an *ast.LiteralNode containing a string value
//
// Example:
//
//	node, err := csv.Parse("name,age\nAlice,30\nBob,25")
//	arrayNode := node.(*ast.ArrayDataNode)
//	records := arrayNode.Elements()
func Parse(input string) (ast.SchemaNode, error) {
	return NewParserFromString(input).parse()
}

// ParseReader parses Excel CSV into an AST from an io.Reader decoded as UTF-8.
//
// Example:
//
//	file, err := os.Open("data.csv")
//	if err != nil {
//	    // handle error
//	}
//	defer file.Close()
//
//	node, err := csv.ParseReader(file)
func ParseReader(reader io.Reader) (ast.SchemaNode, error) {
	return NewParser(reader).parse()
}

// ReadAll reads all remaining records from reader.
// Empty input yields an empty, non-nil slice.
func ReadAll(reader io.Reader) ([][]string, error) {
	p := NewParser(reader)
	records := make([][]string, 0, 16)
	for {
		fields, ok, err := p.NextLine()
		if err != nil {
			return nil, err
		}
		if !ok {
			return records, nil
		}
		records = append(records, fields)
	}
}

// Format returns the format identifier for this parser.
func Format() string {
	return "ExcelCSV"
}
