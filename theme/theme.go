// Package theme holds the branding/theme configuration engine: the token
// schema, the compiled-in defaults, and the store that applies and persists
// user edits.
package theme

// Colors is the fixed set of named theme colors.
type Colors struct {
	Primary      string `json:"primary"`
	PrimaryHover string `json:"primaryHover"`
	Surface      string `json:"surface"`
	Background   string `json:"background"`
	Text         string `json:"text"`
	Muted        string `json:"muted"`
	Danger       string `json:"danger"`
	Warning      string `json:"warning"`
	Success      string `json:"success"`
}

// Fonts carries the theme's font families.
type Fonts struct {
	Sans string `json:"sans"`
}

// Config is the full theme token set. Every field has a default; updates
// replace the whole record, never individual fields.
type Config struct {
	AppName  string `json:"appName"`
	LogoPath string `json:"logoPath"`
	Colors   Colors `json:"colors"`
	Fonts    Fonts  `json:"fonts"`
}

// Default returns the compiled-in theme.
func Default() Config {
	return Config{
		AppName:  "Inventario Empresarial",
		LogoPath: "/assets/logo.svg",
		Colors: Colors{
			Primary:      "#4f46e5",
			PrimaryHover: "#4338ca",
			Surface:      "#ffffff",
			Background:   "#f3f4f6",
			Text:         "#111827",
			Muted:        "#6b7280",
			Danger:       "#dc2626",
			Warning:      "#f59e0b",
			Success:      "#16a34a",
		},
		Fonts: Fonts{
			Sans: "Inter, ui-sans-serif, system-ui, -apple-system, 'Segoe UI', Roboto, 'Helvetica Neue', Arial",
		},
	}
}
