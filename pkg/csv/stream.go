package csv

import (
	"io"
)

// Scanner provides a streaming interface for reading records one at a time.
// Only one record is held in memory, so it suits files of any size.
//
// Example usage:
//
//	file, _ := os.Open("data.csv")
//	defer file.Close()
//
//	scanner := csv.NewScanner(file).SetHasHeaders(true)
//	for scanner.Scan() {
//	    record := scanner.Record()
//	    name, _ := record.GetByName("name")
//	    fmt.Println(name)
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
type Scanner struct {
	parser      *Parser
	hasHeaders  bool
	headersRead bool
	headers     []string
	current     Record
	err         error
	done        bool
}

// NewScanner creates a new Scanner that reads UTF-8 CSV from the given io.Reader.
// By default, the scanner assumes no headers. Use SetHasHeaders(true) to treat
// the first record as headers.
func NewScanner(reader io.Reader) *Scanner {
	return NewScannerFromParser(NewParser(reader))
}

// NewScannerFromParser creates a Scanner over an existing Parser, for
// example one created with NewLatin1Parser or NewParserWithOptions.
func NewScannerFromParser(p *Parser) *Scanner {
	return &Scanner{
		parser:  p,
		headers: []string{},
	}
}

// SetHasHeaders sets whether the first record should be treated as headers.
// It must be called before the first Scan.
// Returns the Scanner for method chaining.
func (s *Scanner) SetHasHeaders(hasHeaders bool) *Scanner {
	s.hasHeaders = hasHeaders
	return s
}

// SetCommentStart sets the comment characters of the underlying Parser.
// Returns the Scanner for method chaining.
func (s *Scanner) SetCommentStart(chars string) *Scanner {
	s.parser.SetCommentStart(chars)
	return s
}

// Scan advances the scanner to the next record.
// It returns false when there are no more records or an error occurs.
// After Scan returns false, the Err method will return any error that occurred.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}

	if s.hasHeaders && !s.headersRead {
		s.headersRead = true
		headers, ok := s.next()
		if !ok {
			return false
		}
		s.headers = headers
	}

	fields, ok := s.next()
	if !ok {
		s.current = Record{}
		return false
	}
	s.current = Record{
		fields:  fields,
		headers: s.headers,
		line:    s.parser.LastLineNumber(),
	}
	return true
}

// next reads one record, recording errors and end of input.
func (s *Scanner) next() ([]string, bool) {
	fields, ok, err := s.parser.NextLine()
	if err != nil {
		s.err = err
	}
	if err != nil || !ok {
		s.done = true
		return nil, false
	}
	return fields, true
}

// Record returns the current record.
// This should only be called after Scan() returns true.
func (s *Scanner) Record() Record {
	return s.current
}

// Err returns the error, if any, that was encountered during scanning.
// It returns nil if no error occurred or at EOF.
func (s *Scanner) Err() error {
	return s.err
}

// Headers returns the column headers if SetHasHeaders(true) was called.
// Returns an empty slice if no headers were set.
// This is available after the first call to Scan().
// The returned slice is a copy.
func (s *Scanner) Headers() []string {
	headers := make([]string, len(s.headers))
	copy(headers, s.headers)
	return headers
}
