package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/readage/internal/agegroup"
	"github.com/verte-zerg/readage/internal/textstats"
)

var (
	tableHeaders = []string{"Metric", "Score", "Level", "Ages", "Grade"}
	countHeaders = []string{"Count", "Value"}
	groupHeaders = []string{"Level", "Ages", "Grade"}
)

func renderTableHeader(w io.Writer, text string, st textstats.Stats) error {
	if _, err := fmt.Fprintf(w, "The text is:\n%s\n\n", text); err != nil {
		return err
	}
	rows := [][]string{
		{"Words", strconv.Itoa(st.Words)},
		{"Sentences", strconv.Itoa(st.Sentences)},
		{"Characters", strconv.Itoa(st.Characters)},
		{"Syllables", strconv.Itoa(st.Syllables)},
		{"Polysyllables", strconv.Itoa(st.Polysyllables)},
	}
	return writeTable(w, countHeaders, rows, map[int]bool{1: true})
}

func renderTable(w io.Writer, r Report) error {
	rows := make([][]string, 0, len(r.Assessment.Scores))
	for _, s := range r.Assessment.Scores {
		rows = append(rows, []string{
			s.Metric.Name(),
			fmt.Sprintf("%.2f", s.Value),
			strconv.Itoa(s.Group.Level),
			s.Group.Ages(),
			s.Group.Grade,
		})
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if err := writeTable(w, tableHeaders, rows, map[int]bool{1: true, 2: true}); err != nil {
		return err
	}
	if r.Assessment.HasAverage {
		if _, err := fmt.Fprintf(w, "\nAverage age: %.2f\n", r.Assessment.Average); err != nil {
			return err
		}
	}
	return nil
}

// RenderGroups writes the age group table.
func RenderGroups(w io.Writer, groups []agegroup.Group) error {
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{strconv.Itoa(g.Level), g.Ages(), g.Grade})
	}
	return writeTable(w, groupHeaders, rows, map[int]bool{0: true})
}

// writeTable prints an aligned table with a bold header row.
func writeTable(w io.Writer, headers []string, rows [][]string, rightAlignCols map[int]bool) error {
	headerStyle := lipgloss.NewRenderer(w).NewStyle().Bold(true)
	for i, line := range formatTable(headers, rows, rightAlignCols) {
		if i == 0 {
			line = headerStyle.Render(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = displayWidth(header)
	}
	for _, row := range rows {
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(padCell(cell, widths[i], rightAlignCols[i]))
	}
	return strings.TrimRight(b.String(), " ")
}

func padCell(value string, width int, rightAlign bool) string {
	valueWidth := displayWidth(value)
	if valueWidth >= width {
		return value
	}
	padding := width - valueWidth
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}

func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}
