//go:build go1.18
// +build go1.18

package tokenizer

import (
	"strings"
	"testing"
)

// FuzzTokenizer tests the tokenizer with random inputs to find edge cases and panics.
// Run with: go test -fuzz=FuzzTokenizer -fuzztime=30s ./internal/tokenizer
func FuzzTokenizer(f *testing.F) {
	seeds := []string{
		"",
		"a",
		",",
		"\n",
		"\r\n",
		"\"",
		"\"\"",
		"a,b,c",
		"\"quoted\"",
		"\"with,comma\"",
		"\"with\"\"quote\"",
		"\"closed\"junk,next",
		"#comment\na",
		"a\nb\nc",
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		tok := New(strings.NewReader(input))
		tok.SetCommentStart("#")
		last := 0
		for {
			token, ok, err := tok.Next()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !ok {
				break
			}
			// Line numbers never decrease.
			if token.Line < last {
				t.Fatalf("line went back from %d to %d", last, token.Line)
			}
			last = token.Line
		}
		if tok.Line() < last {
			t.Fatalf("final line %d before last token line %d", tok.Line(), last)
		}
	})
}
