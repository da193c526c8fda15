// Package tabular renders decoded statistical tables as display text.
//
// Render produces a header block (title, source, last updated) followed by
// a markdown table. Absent observations render as "-", numbers are grouped
// with locale separators, and truncated tables carry a trailing notice with
// the true row count. Rendering is a pure function of its input.
package tabular
