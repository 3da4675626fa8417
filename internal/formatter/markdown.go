// Package formatter renders analytics reports as a Markdown dashboard and an SVG chart.
package formatter

import (
	"strings"

	"bookstats/pkg/metadata"

	"github.com/mattn/go-runewidth"
)

// AlignTables rewrites every pipe table in content so its columns line up,
// measuring cells by display width.
func AlignTables(content string) string {
	lines := strings.Split(content, "\n")

	var formattedLines []string

	var tableBuffer []string

	for _, line := range lines {
		trimmedLine := strings.TrimSpace(line)

		// Simple heuristic: starts and ends with |
		if strings.HasPrefix(trimmedLine, "|") && strings.HasSuffix(trimmedLine, "|") {
			tableBuffer = append(tableBuffer, line)

			continue
		}

		if len(tableBuffer) > 0 {
			formattedLines = append(formattedLines, processTable(tableBuffer)...)
			tableBuffer = nil
		}

		formattedLines = append(formattedLines, line)
	}

	if len(tableBuffer) > 0 {
		formattedLines = append(formattedLines, processTable(tableBuffer)...)
	}

	return strings.Join(formattedLines, "\n")
}

// FormatMarkdown aligns the tables of content and signs the result. Any existing
// metadata block is dropped before formatting.
func FormatMarkdown(content string, meta metadata.Metadata) string {
	_, cleanContent := metadata.Extract(content)

	return metadata.Sign(AlignTables(cleanContent), meta)
}

// Table builds a pipe table from a header and rows. Pipes inside cells are escaped.
func Table(header []string, rows [][]string) string {
	var sb strings.Builder

	writeRow := func(cells []string) {
		sb.WriteString("|")

		for _, c := range cells {
			sb.WriteString(" ")
			sb.WriteString(strings.ReplaceAll(c, "|", "\\|"))
			sb.WriteString(" |")
		}

		sb.WriteString("\n")
	}

	writeRow(header)

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}

	writeRow(sep)

	for _, r := range rows {
		writeRow(r)
	}

	return sb.String()
}

type alignment int

const (
	alignLeft alignment = iota
	alignRight
)

// splitCells splits a table row on pipes that are not escaped.
func splitCells(row string) []string {
	var (
		cells []string
		cur   strings.Builder
	)

	row = strings.TrimSpace(row)
	for i := 0; i < len(row); i++ {
		switch {
		case row[i] == '\\' && i+1 < len(row) && row[i+1] == '|':
			cur.WriteString(`\|`)
			i++
		case row[i] == '|':
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(row[i])
		}
	}

	cells = append(cells, strings.TrimSpace(cur.String()))

	// A row written as | a | b | yields empty cells at both ends.
	if len(cells) > 0 && cells[0] == "" {
		cells = cells[1:]
	}

	if len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}

	return cells
}

func isSeparatorRow(cells []string) bool {
	if len(cells) == 0 {
		return false
	}

	for _, cell := range cells {
		trim := strings.NewReplacer("-", "", ":", "", " ", "").Replace(cell)
		if trim != "" || !strings.Contains(cell, "-") {
			return false
		}
	}

	return true
}

func processTable(rows []string) []string {
	// A header needs a separator below it to be worth formatting.
	if len(rows) < 2 {
		return rows
	}

	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		table = append(table, splitCells(row))
	}

	colCount := 0
	for _, row := range table {
		colCount = max(colCount, len(row))
	}

	separatorRowIdx := -1
	if isSeparatorRow(table[1]) {
		separatorRowIdx = 1
	}

	aligns := make([]alignment, colCount)
	if separatorRowIdx >= 0 {
		for i, cell := range table[separatorRowIdx] {
			if strings.HasSuffix(cell, ":") && !strings.HasPrefix(cell, ":") {
				aligns[i] = alignRight
			}
		}
	}

	// Minimum width fits the "---" separator.
	colWidths := make([]int, colCount)
	for i := range colWidths {
		colWidths[i] = 3
	}

	for rIdx, row := range table {
		if rIdx == separatorRowIdx {
			continue
		}

		for i, cell := range row {
			colWidths[i] = max(colWidths[i], runewidth.StringWidth(cell))
		}
	}

	result := make([]string, 0, len(table))

	for i, row := range table {
		var sb strings.Builder

		sb.WriteString("|")

		for j := 0; j < colCount; j++ {
			sb.WriteString(" ")

			if i == separatorRowIdx {
				dashes := strings.Repeat("-", colWidths[j])
				if aligns[j] == alignRight {
					dashes = dashes[:len(dashes)-1] + ":"
				}

				sb.WriteString(dashes)
				sb.WriteString(" |")

				continue
			}

			content := ""
			if j < len(row) {
				content = row[j]
			}

			padding := strings.Repeat(" ", colWidths[j]-runewidth.StringWidth(content))
			if aligns[j] == alignRight {
				sb.WriteString(padding + content)
			} else {
				sb.WriteString(content + padding)
			}

			sb.WriteString(" |")
		}

		result = append(result, sb.String())
	}

	return result
}
