package config

type Config interface {
	EnvConfig
	StorageConfig
}

type EnvConfig interface {
	GetAPIBaseURL() string
	GetAppName() string
	GetHTTPTimeoutSeconds() int
	GetLogLevel() string
	GetEnv() string
}

type StorageConfig interface {
	GetStateDir() string
	GetSessionScope() SessionScope
}

// SessionScope selects where the session snapshot lives. Persistent maps to
// the state directory on disk; Ephemeral keeps it in process memory only,
// matching session-scoped browser storage.
type SessionScope string

const (
	ScopePersistent SessionScope = "persistent"
	ScopeEphemeral  SessionScope = "ephemeral"
)

type mainConfig struct {
	EnvVars
}

func New() Config {
	return mainConfig{}
}
