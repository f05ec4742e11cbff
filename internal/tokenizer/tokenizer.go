package tokenizer

import (
	"errors"
	"io"
	"strings"
)

// Tokenizer reads Excel CSV fields from a rune source.
//
// Grammar (informal):
//
//	File         = { Line } ;
//	Line         = Comment | Blank | Field { "," Field } Terminator ;
//	Field        = QuotedField | UnquotedField ;
//	QuotedField  = '"' { QuotedChar | '""' } [ '"' { Ignored } ] ;
//	Terminator   = CR | LF | CR LF | EOF ;
//
// A quote only opens a quoted field when it is the field's first rune; later
// quotes are literal. Runes after a closing quote are dropped up to the next
// delimiter. An unterminated quoted field ends at end of input without error.
// Line terminators inside quoted fields are kept verbatim.
//
// A Tokenizer is not safe for concurrent use.
type Tokenizer struct {
	src     io.RuneReader
	state   State
	line    int
	value   strings.Builder
	comment string
	prevCR  bool
	done    bool
}

// New creates a tokenizer reading from src.
func New(src io.RuneReader) *Tokenizer {
	return &Tokenizer{
		src:   src,
		state: StateLineStart,
		line:  1,
	}
}

// SetCommentStart sets the runes that mark a comment line when they appear
// as the first rune of a physical line. An empty string disables comments.
// Lines already read are not affected.
func (t *Tokenizer) SetCommentStart(chars string) {
	t.comment = chars
}

// Line returns the current line counter.
func (t *Tokenizer) Line() int {
	return t.line
}

// State returns the current state.
func (t *Tokenizer) State() State {
	return t.state
}

// Next returns the next token. ok is false once the input is exhausted.
// Errors from the source other than io.EOF are returned as is and no token
// is produced.
func (t *Tokenizer) Next() (tok Token, ok bool, err error) {
	if t.done {
		return Token{}, false, nil
	}
	for {
		r, _, err := t.src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return t.finish()
			}
			return Token{}, false, err
		}
		if tok, ok := t.step(r); ok {
			return tok, true, nil
		}
	}
}

// finish handles end of input in the current state.
func (t *Tokenizer) finish() (Token, bool, error) {
	t.done = true
	switch t.state {
	case StateLineStart, StateComment:
		return Token{}, false, nil
	default:
		// FieldStart yields the empty field after a trailing comma.
		return t.emit(), true, nil
	}
}

// step feeds one rune to the state machine and reports whether a token
// was completed.
func (t *Tokenizer) step(r rune) (Token, bool) {
	// LF completing a CRLF pair is not a second terminator.
	crlf := r == LF && t.prevCR
	t.prevCR = r == CR

	switch t.state {
	case StateLineStart:
		if crlf {
			return Token{}, false
		}
		if isTerminator(r) {
			// Blank line.
			t.line++
			return Token{}, false
		}
		if t.isCommentStart(r) {
			t.state = StateComment
			return Token{}, false
		}
		return t.fieldStart(r)

	case StateFieldStart:
		return t.fieldStart(r)

	case StateUnquoted:
		switch {
		case r == Comma:
			t.state = StateFieldStart
			return t.emit(), true
		case isTerminator(r):
			return t.endRecord(), true
		}
		t.value.WriteRune(r)
		return Token{}, false

	case StateQuoted:
		if r == Quote {
			t.state = StateQuoteSeen
			return Token{}, false
		}
		if isTerminator(r) && !crlf {
			t.line++
		}
		t.value.WriteRune(r)
		return Token{}, false

	case StateQuoteSeen:
		if r == Quote {
			t.value.WriteRune(Quote)
			t.state = StateQuoted
			return Token{}, false
		}
		t.state = StatePostQuote
		return t.postQuote(r)

	case StatePostQuote:
		return t.postQuote(r)

	case StateComment:
		if isTerminator(r) {
			t.line++
			t.state = StateLineStart
		}
		return Token{}, false
	}
	return Token{}, false
}

func (t *Tokenizer) fieldStart(r rune) (Token, bool) {
	switch {
	case r == Quote:
		t.state = StateQuoted
		return Token{}, false
	case r == Comma:
		t.state = StateFieldStart
		return t.emit(), true
	case isTerminator(r):
		return t.endRecord(), true
	}
	t.value.WriteRune(r)
	t.state = StateUnquoted
	return Token{}, false
}

func (t *Tokenizer) postQuote(r rune) (Token, bool) {
	switch {
	case r == Comma:
		t.state = StateFieldStart
		return t.emit(), true
	case isTerminator(r):
		return t.endRecord(), true
	}
	return Token{}, false
}

// endRecord emits the pending field on the current line and moves to the
// next one.
func (t *Tokenizer) endRecord() Token {
	tok := t.emit()
	t.line++
	t.state = StateLineStart
	return tok
}

func (t *Tokenizer) emit() Token {
	tok := Token{Value: t.value.String(), Line: t.line}
	t.value.Reset()
	return tok
}

func (t *Tokenizer) isCommentStart(r rune) bool {
	return t.comment != "" && strings.ContainsRune(t.comment, r)
}
