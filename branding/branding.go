// Package branding is the static branding model: the canonical field set
// consumed by the theme store's defaults and by the administrative editing
// surfaces. Read-only from the core's perspective.
package branding

// Config identifies the deployment's brand.
type Config struct {
	AppName       string `json:"appName"`
	ShortName     string `json:"shortName"`
	LogoPath      string `json:"logoPath"`
	FaviconPath   string `json:"faviconPath,omitempty"`
	DefaultLocale string `json:"defaultLocale"`
	ThemeName     string `json:"themeName"`
}

// Default returns the compiled-in branding record.
func Default() Config {
	return Config{
		AppName:       "Inventario Empresarial",
		ShortName:     "Inventario",
		LogoPath:      "/assets/logo.svg",
		FaviconPath:   "/favicon.ico",
		DefaultLocale: "es",
		ThemeName:     "default",
	}
}
