package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Preview renders the theme as terminal swatches for the configuration
// surface: one row per named color plus the font family line.
func Preview(cfg Config) string {
	rows := []struct {
		name  string
		value string
	}{
		{"primary", cfg.Colors.Primary},
		{"primaryHover", cfg.Colors.PrimaryHover},
		{"surface", cfg.Colors.Surface},
		{"background", cfg.Colors.Background},
		{"text", cfg.Colors.Text},
		{"muted", cfg.Colors.Muted},
		{"danger", cfg.Colors.Danger},
		{"warning", cfg.Colors.Warning},
		{"success", cfg.Colors.Success},
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(cfg.Colors.Primary))

	var b strings.Builder
	b.WriteString(titleStyle.Render(cfg.AppName))
	b.WriteString("\n")
	for _, row := range rows {
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(row.value)).
			Render("      ")
		fmt.Fprintf(&b, "%-14s %s %s\n", row.name, swatch, row.value)
	}
	fmt.Fprintf(&b, "%-14s %s\n", "font.sans", cfg.Fonts.Sans)
	return b.String()
}
