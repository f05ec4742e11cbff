package csv_test

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/shapestone/shape-excelcsv/pkg/csv"
)

// TestStreamRecords tests streaming CSV records one at a time.
func TestStreamRecords(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		hasHeaders  bool
		wantHeaders []string
		want        [][]string
		wantLines   []int
	}{
		{
			name:        "simple CSV with headers",
			input:       "name,age\nAlice,30\nBob,25\n",
			hasHeaders:  true,
			wantHeaders: []string{"name", "age"},
			want:        [][]string{{"Alice", "30"}, {"Bob", "25"}},
			wantLines:   []int{2, 3},
		},
		{
			name:        "CSV without headers",
			input:       "Alice,30\nBob,25\n",
			wantHeaders: []string{},
			want:        [][]string{{"Alice", "30"}, {"Bob", "25"}},
			wantLines:   []int{1, 2},
		},
		{
			name:        "empty CSV",
			input:       "",
			hasHeaders:  true,
			wantHeaders: []string{},
		},
		{
			name:        "headers only",
			input:       "a,b\n",
			hasHeaders:  true,
			wantHeaders: []string{"a", "b"},
		},
		{
			name:        "quoted and empty fields",
			input:       "a,b,c\n1,,\"x\"\"y\"\n",
			hasHeaders:  true,
			wantHeaders: []string{"a", "b", "c"},
			want:        [][]string{{"1", "", "x\"y"}},
			wantLines:   []int{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scanner := csv.NewScanner(strings.NewReader(tt.input)).SetHasHeaders(tt.hasHeaders)
			var got [][]string
			var lines []int
			for scanner.Scan() {
				rec := scanner.Record()
				got = append(got, rec.Fields())
				lines = append(lines, rec.Line())
			}
			if err := scanner.Err(); err != nil {
				t.Fatalf("Err() = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("records = %q, want %q", got, tt.want)
			}
			if !reflect.DeepEqual(lines, tt.wantLines) {
				t.Errorf("lines = %v, want %v", lines, tt.wantLines)
			}
			if !reflect.DeepEqual(scanner.Headers(), tt.wantHeaders) {
				t.Errorf("Headers() = %q, want %q", scanner.Headers(), tt.wantHeaders)
			}
			if scanner.Scan() {
				t.Error("Scan() after end returned true")
			}
		})
	}
}

func TestScanner_RecordAccess(t *testing.T) {
	scanner := csv.NewScanner(strings.NewReader("id,name\n1\n")).SetHasHeaders(true)
	if !scanner.Scan() {
		t.Fatalf("Scan() = false, err = %v", scanner.Err())
	}
	rec := scanner.Record()

	if v, ok := rec.Get(0); !ok || v != "1" {
		t.Errorf("Get(0) = %q, %v", v, ok)
	}
	if _, ok := rec.Get(5); ok {
		t.Error("Get(5) should be out of bounds")
	}
	if _, ok := rec.Get(-1); ok {
		t.Error("Get(-1) should be out of bounds")
	}
	if v, ok := rec.GetByName("id"); !ok || v != "1" {
		t.Errorf("GetByName(id) = %q, %v", v, ok)
	}
	if _, ok := rec.GetByName("name"); ok {
		t.Error("GetByName(name) should miss on a short record")
	}
	if _, ok := rec.GetByName("missing"); ok {
		t.Error("GetByName(missing) should miss")
	}
	if rec.Len() != 1 {
		t.Errorf("Len() = %d, want 1", rec.Len())
	}

	fields := rec.Fields()
	fields[0] = "changed"
	if v, _ := rec.Get(0); v != "1" {
		t.Error("Fields() must return a copy")
	}
}

func TestScanner_SetCommentStart(t *testing.T) {
	scanner := csv.NewScanner(strings.NewReader("#c\nx\n")).SetCommentStart("#")
	var got [][]string
	for scanner.Scan() {
		got = append(got, scanner.Record().Fields())
	}
	if !reflect.DeepEqual(got, [][]string{{"x"}}) {
		t.Errorf("records = %q", got)
	}
}

func TestScanner_FromParser(t *testing.T) {
	scanner := csv.NewScannerFromParser(csv.NewParserFromString("a\nb"))
	n := 0
	for scanner.Scan() {
		n++
	}
	if n != 2 {
		t.Errorf("scanned %d records, want 2", n)
	}
}

func TestScanner_Error(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(strings.NewReader("a\nb,"), iotest.ErrReader(boom))
	scanner := csv.NewScanner(r)

	if !scanner.Scan() {
		t.Fatalf("first Scan() = false, err = %v", scanner.Err())
	}
	if scanner.Scan() {
		t.Fatal("second Scan() = true, want failure")
	}
	if !errors.Is(scanner.Err(), boom) {
		t.Errorf("Err() = %v, want %v", scanner.Err(), boom)
	}
	if scanner.Scan() {
		t.Error("Scan() after failure returned true")
	}
}

func TestScanner_HeadersCopy(t *testing.T) {
	scanner := csv.NewScanner(strings.NewReader("id,name\n1,Alice\n")).SetHasHeaders(true)
	if !scanner.Scan() {
		t.Fatalf("Scan() = false, err = %v", scanner.Err())
	}

	headers := scanner.Headers()
	headers[1] = "changed"

	if got := scanner.Headers(); !reflect.DeepEqual(got, []string{"id", "name"}) {
		t.Errorf("Headers() = %q after caller modification", got)
	}
	if v, ok := scanner.Record().GetByName("name"); !ok || v != "Alice" {
		t.Errorf("GetByName(name) = %q, %v, want Alice", v, ok)
	}
}
