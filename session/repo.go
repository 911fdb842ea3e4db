package session

// Repo defines the interface for session snapshot persistence. There is a
// single snapshot per store; every write replaces it wholesale.
type Repo interface {
	// Load retrieves the snapshot. Absence is reported as
	// internal/errors.ErrNotFound.
	Load() (*Snapshot, error)

	// Save writes the snapshot, replacing any previous one.
	Save(snapshot *Snapshot) error

	// Delete removes the snapshot. Deleting an absent snapshot is not an
	// error.
	Delete() error
}
