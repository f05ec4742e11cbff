package csv

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// NodeToRecords converts an AST produced by Parse back to records.
//
// A file node (array of arrays) yields one []string per record; a single
// record node (array of literals) is wrapped in a one-element slice. Any
// other node yields an empty slice.
//
// Example:
//
//	node, _ := csv.Parse("name,age\nAlice,30\n")
//	records := csv.NodeToRecords(node)
//	// records is [][]string{{"name","age"}, {"Alice","30"}}
func NodeToRecords(node ast.SchemaNode) [][]string {
	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return [][]string{}
	}
	elements := arr.Elements()
	if len(elements) == 0 {
		return [][]string{}
	}

	if _, isRecord := elements[0].(*ast.LiteralNode); isRecord {
		return [][]string{recordFields(arr)}
	}

	records := make([][]string, 0, len(elements))
	for _, elem := range elements {
		if rec, ok := elem.(*ast.ArrayDataNode); ok {
			records = append(records, recordFields(rec))
		}
	}
	return records
}

// recordFields converts a record node to its field values.
func recordFields(rec *ast.ArrayDataNode) []string {
	elements := rec.Elements()
	fields := make([]string, 0, len(elements))
	for _, elem := range elements {
		lit, ok := elem.(*ast.LiteralNode)
		if !ok {
			continue
		}
		if s, ok := lit.Value().(string); ok {
			fields = append(fields, s)
		} else {
			fields = append(fields, fmt.Sprintf("%v", lit.Value()))
		}
	}
	return fields
}
