package jsonstat

import "fmt"

// ValueColumn is the name of the trailing value column in decoded tables.
const ValueColumn = "value"

// Row maps a column name to a display label (string) for dimension columns,
// and to a float64 or nil for the value column.
type Row map[string]any

// Table is the flattened form of a Dataset.
//
// Columns holds one name per dimension, in the dataset's dimension order,
// followed by ValueColumn. TotalRows is the length of the dataset's value
// array before any truncation; Truncated reports whether rows were dropped
// to honor the caller's limit.
type Table struct {
	Title     string
	Source    string
	Updated   string
	Columns   []string
	Rows      []Row
	TotalRows int
	Truncated bool
}

// decodedDim is a dimension normalized for decoding: its output column name
// and its category labels in position order.
type decodedDim struct {
	column string
	labels []string
}

// Decode flattens a dataset into at most rowLimit rows.
//
// Row order is deterministic and equals ascending flat-index order. A
// rowLimit of zero or less yields an empty table that still reports the
// true total. Decode never fails: an out-of-range category index (malformed
// input) is rendered as a placeholder label carrying the raw index.
func Decode(ds *Dataset, rowLimit int) *Table {
	dims := make([]decodedDim, len(ds.ID))
	columns := make([]string, 0, len(ds.ID)+1)
	for i, id := range ds.ID {
		dim := ds.Dimension[id]
		name := dim.Label
		if name == "" {
			name = id
		}
		dims[i] = decodedDim{
			column: name,
			labels: categoryLabels(dim.Category),
		}
		columns = append(columns, name)
	}
	columns = append(columns, ValueColumn)

	strides := strideTable(ds.Size)

	n := len(ds.Value)
	if rowLimit < n {
		n = rowLimit
	}
	if n < 0 {
		n = 0
	}

	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		row := make(Row, len(dims)+1)
		remaining := i
		for d, dim := range dims {
			idx := 0
			if strides[d] > 0 {
				idx = remaining / strides[d]
				remaining %= strides[d]
			}
			row[dim.column] = labelAt(dim.labels, idx)
		}
		if v := ds.Value[i]; v != nil {
			row[ValueColumn] = *v
		} else {
			row[ValueColumn] = nil
		}
		rows = append(rows, row)
	}

	return &Table{
		Title:     ds.Label,
		Source:    ds.Source,
		Updated:   ds.Updated,
		Columns:   columns,
		Rows:      rows,
		TotalRows: len(ds.Value),
		Truncated: len(ds.Value) > rowLimit,
	}
}

// strideTable computes row-major strides: the last dimension has stride 1,
// and each earlier dimension's stride is the product of all later sizes.
func strideTable(sizes []int) []int {
	strides := make([]int, len(sizes))
	acc := 1
	for d := len(sizes) - 1; d >= 0; d-- {
		strides[d] = acc
		acc *= sizes[d]
	}
	return strides
}

// categoryLabels resolves a category's display labels in position order,
// falling back to the raw code when no label is present. A category without
// an index resolves to its labelled codes (the single-category case in
// JSON-stat omits the index).
func categoryLabels(c Category) []string {
	codes := c.Index.Codes
	if len(codes) == 0 && len(c.Label) == 1 {
		for code := range c.Label {
			codes = []string{code}
		}
	}

	labels := make([]string, len(codes))
	for i, code := range codes {
		if label, ok := c.Label[code]; ok && label != "" {
			labels[i] = label
		} else {
			labels[i] = code
		}
	}
	return labels
}

// labelAt returns the label at idx, or a diagnostic placeholder when idx is
// outside the resolved category list.
func labelAt(labels []string, idx int) string {
	if idx < 0 || idx >= len(labels) {
		return fmt.Sprintf("[index %d]", idx)
	}
	return labels[idx]
}
