// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package output

import (
	"fmt"
	"io"
	"strings"
)

// Column describes one table column. Width is the display width cells
// are padded or truncated to; the last column is never padded, only
// truncated.
type Column struct {
	Name  string
	Width int
}

// Table renders records as a fixed-width aligned text table with a
// title banner, a header row, a separator rule, and a trailing count
// line.
type Table struct {
	title      string
	countLabel string
	columns    []Column
	rows       [][]string
}

// NewTable creates an empty table with the given title, count label,
// and columns.
func NewTable(title, countLabel string, columns ...Column) *Table {
	return &Table{
		title:      title,
		countLabel: countLabel,
		columns:    columns,
	}
}

// AddRow appends one record row. Missing cells render empty; extra
// cells are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.columns))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
	}
	t.rows = append(t.rows, row)
}

// Len returns the number of record rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render writes the table to w.
func (t *Table) Render(w io.Writer) error {
	width := t.ruleWidth()
	rule := strings.Repeat("=", width)
	innerRule := strings.Repeat("-", width)

	header := make([]string, len(t.columns))
	for i, c := range t.columns {
		header[i] = c.Name
	}

	lines := []string{
		rule,
		t.title,
		rule,
		t.formatRow(header),
		innerRule,
	}
	for _, row := range t.rows {
		lines = append(lines, t.formatRow(row))
	}
	lines = append(lines,
		innerRule,
		fmt.Sprintf("%s: %d", t.countLabel, len(t.rows)),
		"",
	)

	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

// formatRow pads and truncates cells to their column widths. The last
// column is only truncated, never padded, so rows have no trailing
// spaces.
func (t *Table) formatRow(cells []string) string {
	parts := make([]string, len(t.columns))
	for i, c := range t.columns {
		cell := truncate(cells[i], c.Width)
		if i < len(t.columns)-1 {
			cell = fmt.Sprintf("%-*s", c.Width, cell)
		}
		parts[i] = cell
	}
	return strings.TrimRight(strings.Join(parts, " "), " ")
}

// ruleWidth is the width of the separator rules: the sum of the column
// widths plus the single spaces between them.
func (t *Table) ruleWidth() int {
	width := len(t.columns) - 1
	for _, c := range t.columns {
		width += c.Width
	}
	return width
}

// truncate shortens s to at most width characters, marking the cut
// with an ellipsis.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
