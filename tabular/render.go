package tabular

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/statbridge/statbank-mcp/jsonstat"
)

const (
	// absentCell is the placeholder for a missing observation.
	absentCell = "-"

	// noDataNotice replaces the table when the decode produced no rows.
	noDataNotice = "No data rows matched the query."
)

var printer = message.NewPrinter(language.English)

// Render serializes a decoded table as markdown display text.
func Render(t *jsonstat.Table) string {
	var b strings.Builder

	if t.Title != "" {
		fmt.Fprintf(&b, "**%s**\n", t.Title)
	}
	if t.Source != "" {
		fmt.Fprintf(&b, "Source: %s\n", t.Source)
	}
	if t.Updated != "" {
		fmt.Fprintf(&b, "Updated: %s\n", t.Updated)
	}
	b.WriteString("\n")

	if len(t.Rows) == 0 {
		b.WriteString(noDataNotice)
		b.WriteString("\n")
		return b.String()
	}

	writeHeaderRow(&b, t.Columns)
	for _, row := range t.Rows {
		writeDataRow(&b, t.Columns, row)
	}

	if t.Truncated {
		fmt.Fprintf(&b, "\nShowing %d of %d rows. Narrow the selection to see the rest.\n",
			len(t.Rows), t.TotalRows)
	}

	return b.String()
}

func writeHeaderRow(b *strings.Builder, columns []string) {
	b.WriteString("|")
	for _, col := range columns {
		fmt.Fprintf(b, " %s |", col)
	}
	b.WriteString("\n|")
	for range columns {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
}

func writeDataRow(b *strings.Builder, columns []string, row jsonstat.Row) {
	b.WriteString("|")
	for _, col := range columns {
		fmt.Fprintf(b, " %s |", formatCell(row[col]))
	}
	b.WriteString("\n")
}

func formatCell(v any) string {
	switch cell := v.(type) {
	case nil:
		return absentCell
	case float64:
		return formatNumber(cell)
	case string:
		return cell
	default:
		return fmt.Sprintf("%v", cell)
	}
}

// formatNumber groups digits with locale separators. Integers render with
// no decimal places; everything else rounds to at most two.
func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return printer.Sprintf("%d", int64(v))
	}
	s := printer.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}
