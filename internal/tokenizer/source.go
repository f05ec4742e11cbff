package tokenizer

import (
	"bufio"
	"io"
	"unicode/utf8"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
)

// streamSource reads runes from a shape-core stream.
type streamSource struct {
	stream shapetokenizer.Stream
}

// NewStreamSource adapts a shape-core stream to io.RuneReader.
// Streams cannot fail, so the only error returned is io.EOF.
func NewStreamSource(stream shapetokenizer.Stream) io.RuneReader {
	return &streamSource{stream: stream}
}

func (s *streamSource) ReadRune() (rune, int, error) {
	r, ok := s.stream.PeekChar()
	if !ok {
		return 0, 0, io.EOF
	}
	s.stream.NextChar()
	return r, utf8.RuneLen(r), nil
}

// straightReader maps each byte to the rune with the same value.
type straightReader struct {
	br io.ByteReader
}

// NewStraightReader returns a rune reader that performs no decoding: every
// byte read from r becomes one rune in the range 0x00-0xFF. This matches
// ISO-8859-1 input. Read errors are passed through.
func NewStraightReader(r io.Reader) io.RuneReader {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &straightReader{br: br}
}

func (s *straightReader) ReadRune() (rune, int, error) {
	b, err := s.br.ReadByte()
	if err != nil {
		return 0, 0, err
	}
	return rune(b), 1, nil
}

// NewUTF8Reader returns r when it already reads runes. Otherwise r is
// buffered and decoded as UTF-8, with invalid bytes decoding to
// utf8.RuneError.
func NewUTF8Reader(r io.Reader) io.RuneReader {
	if rr, ok := r.(io.RuneReader); ok {
		return rr
	}
	return bufio.NewReader(r)
}
