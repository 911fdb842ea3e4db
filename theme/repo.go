package theme

// Repo defines the interface for theme persistence. One record per store,
// overwritten on every change, never partially merged.
type Repo interface {
	// Load retrieves the persisted theme. Absence is reported as
	// internal/errors.ErrNotFound.
	Load() (*Config, error)

	// Save writes the theme, replacing any previous record.
	Save(cfg *Config) error

	// Delete removes the persisted record.
	Delete() error
}
