package csv

// Record represents a single record read by a Scanner.
// It provides access to field values by index or by header name.
type Record struct {
	fields  []string
	headers []string // shared with the Scanner for name-based access
	line    int
}

// Get gets the field value at the specified index.
// Returns (value, false) if the index is out of bounds.
// Index is 0-based.
func (r Record) Get(index int) (string, bool) {
	if index < 0 || index >= len(r.fields) {
		return "", false
	}
	return r.fields[index], true
}

// GetByName gets the field value by header name.
// Returns (value, false) if the header name is not found, if no headers are
// set, or if the record is shorter than the header row.
//
// Example:
//
//	name, ok := scanner.Record().GetByName("name")
//	if !ok {
//	    // Header "name" not found or no headers set
//	}
func (r Record) GetByName(name string) (string, bool) {
	for i, header := range r.headers {
		if header == name {
			return r.Get(i)
		}
	}
	return "", false
}

// Fields returns a copy of all field values in the record.
func (r Record) Fields() []string {
	fields := make([]string, len(r.fields))
	copy(fields, r.fields)
	return fields
}

// Len returns the number of fields in the record.
func (r Record) Len() int {
	return len(r.fields)
}

// Line returns the line number the record was read from.
func (r Record) Line() int {
	return r.line
}
