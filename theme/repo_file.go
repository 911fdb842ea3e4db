package theme

import (
	"encoding/json"
	"os"
	"path/filepath"

	apperrors "github.com/crimsonknight90/inventario-admin/internal/errors"
)

const themeFilename = "theme.json"

var _ Repo = (*FileRepo)(nil)

// FileRepo persists the theme as JSON under the state directory.
type FileRepo struct {
	dir string
}

func NewFileRepo(dir string) *FileRepo {
	return &FileRepo{dir: dir}
}

func (r *FileRepo) path() string {
	return filepath.Join(r.dir, themeFilename)
}

func (r *FileRepo) Load() (*Config, error) {
	raw, err := os.ReadFile(r.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrapf(apperrors.ErrStorage, "reading theme: %v", err)
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrStorage, "decoding theme: %v", err)
	}
	return &cfg, nil
}

func (r *FileRepo) Save(cfg *Config) error {
	if err := os.MkdirAll(r.dir, 0o700); err != nil {
		return apperrors.Wrapf(apperrors.ErrStorage, "creating state dir: %v", err)
	}
	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrStorage, "encoding theme: %v", err)
	}
	if err := os.WriteFile(r.path(), raw, 0o600); err != nil {
		return apperrors.Wrapf(apperrors.ErrStorage, "writing theme: %v", err)
	}
	return nil
}

func (r *FileRepo) Delete() error {
	if err := os.Remove(r.path()); err != nil && !os.IsNotExist(err) {
		return apperrors.Wrapf(apperrors.ErrStorage, "deleting theme: %v", err)
	}
	return nil
}
