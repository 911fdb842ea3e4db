package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	apperrors "github.com/crimsonknight90/inventario-admin/internal/errors"
)

const snapshotFilename = "session.json"

var _ Repo = (*FileRepo)(nil)

// FileRepo persists the session snapshot as JSON under the state directory.
// The file carries the access credential, so the directory is created 0700
// and the file written 0600.
type FileRepo struct {
	dir string
}

func NewFileRepo(dir string) *FileRepo {
	return &FileRepo{dir: dir}
}

func (r *FileRepo) path() string {
	return filepath.Join(r.dir, snapshotFilename)
}

func (r *FileRepo) Load() (*Snapshot, error) {
	raw, err := os.ReadFile(r.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrapf(apperrors.ErrStorage, "reading session snapshot: %v", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrStorage, "decoding session snapshot: %v", err)
	}
	return &snapshot, nil
}

func (r *FileRepo) Save(snapshot *Snapshot) error {
	if err := os.MkdirAll(r.dir, 0o700); err != nil {
		return apperrors.Wrapf(apperrors.ErrStorage, "creating state dir: %v", err)
	}
	raw, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrStorage, "encoding session snapshot: %v", err)
	}
	if err := os.WriteFile(r.path(), raw, 0o600); err != nil {
		return apperrors.Wrapf(apperrors.ErrStorage, "writing session snapshot: %v", err)
	}
	return nil
}

func (r *FileRepo) Delete() error {
	if err := os.Remove(r.path()); err != nil && !os.IsNotExist(err) {
		return apperrors.Wrapf(apperrors.ErrStorage, "deleting session snapshot: %v", err)
	}
	return nil
}
