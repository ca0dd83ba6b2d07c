package ui

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

//go:embed banner.txt
var bannerText string

// bannerGradient colors successive banner lines, top to bottom.
var bannerGradient = []string{"214", "208", "202", "198", "163"}

// Banner returns the program banner followed by a blank line. It is empty
// when stdout is not a terminal so piped help output stays plain.
func Banner() string {
	if !IsTTY() {
		return ""
	}
	return renderBanner() + "\n"
}

func renderBanner() string {
	lines := strings.Split(strings.TrimRight(bannerText, "\n"), "\n")
	var b strings.Builder
	for i, line := range lines {
		color := bannerGradient[min(i, len(bannerGradient)-1)]
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
