// Package tokenizer turns a rune stream in Excel CSV format into field tokens.
package tokenizer

import "fmt"

// Token is one decoded field value.
//
// Line is the 1-based line on which the field ended. A quoted field that
// spans several physical lines reports the last of them.
type Token struct {
	Value string
	Line  int
}

// State is a state of the tokenizer's state machine.
type State int

// Tokenizer states.
const (
	// StateLineStart is the beginning of a physical line.
	StateLineStart State = iota
	// StateFieldStart is the first rune of a field that is not at line start.
	StateFieldStart
	// StateUnquoted accumulates an unquoted field.
	StateUnquoted
	// StateQuoted is inside an open quoted field.
	StateQuoted
	// StateQuoteSeen follows a quote inside a quoted field.
	StateQuoteSeen
	// StatePostQuote discards runes between a closing quote and the delimiter.
	StatePostQuote
	// StateComment discards the rest of a comment line.
	StateComment
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateLineStart:
		return "LineStart"
	case StateFieldStart:
		return "FieldStart"
	case StateUnquoted:
		return "Unquoted"
	case StateQuoted:
		return "Quoted"
	case StateQuoteSeen:
		return "QuoteSeen"
	case StatePostQuote:
		return "PostQuote"
	case StateComment:
		return "Comment"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Structural runes of the dialect.
const (
	Comma = ','
	Quote = '"'
	CR    = '\r'
	LF    = '\n'
)

func isTerminator(r rune) bool {
	return r == CR || r == LF
}
