package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table renders rows under headers. On a terminal it draws a themed
// lipgloss table; otherwise it falls back to tab-separated lines.
func Table(headers []string, rows [][]string) string {
	if !IsTTY() {
		return plainTable(headers, rows)
	}

	theme := GetTheme()
	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Primary)).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Value)).Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Muted))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	return t.Render() + "\n"
}

func plainTable(headers []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(strings.Join(headers, "\t"))
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(strings.Join(r, "\t"))
		b.WriteString("\n")
	}
	return b.String()
}
