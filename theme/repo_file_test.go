package theme_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/crimsonknight90/inventario-admin/internal/errors"
	"github.com/crimsonknight90/inventario-admin/theme"
)

func TestFileRepoRoundTrip(t *testing.T) {
	repo := theme.NewFileRepo(t.TempDir())

	_, err := repo.Load()
	require.True(t, apperrors.Is(err, apperrors.ErrNotFound))

	custom := customTheme()
	require.NoError(t, repo.Save(&custom))

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Equal(t, custom, *loaded)

	require.NoError(t, repo.Delete())
	_, err = repo.Load()
	require.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestFileRepoCorruptRecord(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "theme.json"), []byte("][ nope"), 0o600))

	_, err := theme.NewFileRepo(dir).Load()
	require.True(t, apperrors.Is(err, apperrors.ErrStorage))
}

// Initialize on a corrupted record must fall back to defaults, not fail.
func TestInitializeWithCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "theme.json"), []byte("{\"colors\":"), 0o600))

	applier := &recordingApplier{}
	store, err := theme.NewStore(theme.NewFileRepo(dir), applier)
	require.NoError(t, err)

	store.Initialize()
	require.Equal(t, theme.Default(), store.Current())
	require.Len(t, applier.applied, 1)
}
