package tools

import (
	"fmt"
	"strings"

	"github.com/statbridge/statbank-mcp/statbank"
)

// maxCategoryPreview bounds how many category labels a metadata listing
// shows per dimension.
const maxCategoryPreview = 10

func renderFolder(f *statbank.Folder) string {
	var b strings.Builder

	label := f.Label
	if label == "" {
		label = "Root"
	}
	if f.ID != "" {
		fmt.Fprintf(&b, "**%s** (%s)\n", label, f.ID)
	} else {
		fmt.Fprintf(&b, "**%s**\n", label)
	}
	if f.Description != "" {
		fmt.Fprintf(&b, "%s\n", f.Description)
	}

	var folders, tables []statbank.FolderItem
	for _, item := range f.Contents {
		if item.Type == statbank.ItemTypeTable {
			tables = append(tables, item)
		} else {
			folders = append(folders, item)
		}
	}

	if len(folders) == 0 && len(tables) == 0 {
		b.WriteString("\nThis folder is empty.\n")
		return b.String()
	}

	if len(folders) > 0 {
		b.WriteString("\nFolders:\n")
		for _, item := range folders {
			fmt.Fprintf(&b, "- %s: %s\n", item.ID, item.Label)
		}
	}
	if len(tables) > 0 {
		b.WriteString("\nTables:\n")
		for _, item := range tables {
			if item.Updated != "" {
				fmt.Fprintf(&b, "- %s: %s (updated %s)\n", item.ID, item.Label, item.Updated)
			} else {
				fmt.Fprintf(&b, "- %s: %s\n", item.ID, item.Label)
			}
		}
	}
	return b.String()
}

func renderTables(tables []statbank.TableSummary, total int) string {
	if len(tables) == 0 {
		return "No tables matched the query.\n"
	}

	var b strings.Builder
	if total > len(tables) {
		fmt.Fprintf(&b, "Top %d of %d matching tables:\n", len(tables), total)
	} else {
		fmt.Fprintf(&b, "Found %d matching tables:\n", len(tables))
	}

	for _, table := range tables {
		fmt.Fprintf(&b, "- %s: %s", table.ID, table.Label)
		if table.FirstPeriod != "" && table.LastPeriod != "" {
			fmt.Fprintf(&b, " (%s–%s)", table.FirstPeriod, table.LastPeriod)
		}
		b.WriteString("\n")
		if len(table.VariableNames) > 0 {
			fmt.Fprintf(&b, "  variables: %s\n", strings.Join(table.VariableNames, ", "))
		}
	}
	return b.String()
}

func renderMetadata(meta *statbank.TableMetadata) string {
	var b strings.Builder

	fmt.Fprintf(&b, "**%s** (%s)\n", meta.Label, meta.ID)
	if meta.Source != "" {
		fmt.Fprintf(&b, "Source: %s\n", meta.Source)
	}
	if meta.Updated != "" {
		fmt.Fprintf(&b, "Updated: %s\n", meta.Updated)
	}

	b.WriteString("\nDimensions:\n")
	for _, v := range meta.Variables {
		fmt.Fprintf(&b, "- %s (%s), %d values", v.Label, v.Code, len(v.Values))
		var notes []string
		if v.Time {
			notes = append(notes, "time")
		}
		if v.Elimination {
			notes = append(notes, "optional")
		}
		if len(notes) > 0 {
			fmt.Fprintf(&b, " [%s]", strings.Join(notes, ", "))
		}
		b.WriteString("\n")

		if len(v.Values) > 0 {
			preview := v.Values
			more := 0
			if len(preview) > maxCategoryPreview {
				more = len(preview) - maxCategoryPreview
				preview = preview[:maxCategoryPreview]
			}
			labels := make([]string, len(preview))
			for i, val := range preview {
				labels[i] = val.Label
				if labels[i] == "" {
					labels[i] = val.Code
				}
			}
			fmt.Fprintf(&b, "  %s", strings.Join(labels, ", "))
			if more > 0 {
				fmt.Fprintf(&b, " (+%d more)", more)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
