package config

import (
	"os"
	"path/filepath"
	"strconv"
)

const (
	apiBaseURLVar   = "API_BASE_URL"
	appNameVar      = "APP_NAME"
	stateDirVar     = "STATE_DIR"
	httpTimeoutVar  = "HTTP_TIMEOUT_SECONDS"
	logLevelVar     = "LOG_LEVEL"
	sessionScopeVar = "SESSION_SCOPE"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}
var _ StorageConfig = EnvVars{}

func (EnvVars) GetAPIBaseURL() string {
	return GetEnv(apiBaseURLVar, "http://localhost:8000")
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Inventario Empresarial")
}

func (EnvVars) GetHTTPTimeoutSeconds() int {
	raw := GetEnv(httpTimeoutVar, "10")
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 10
	}
	return seconds
}

func (EnvVars) GetLogLevel() string {
	return GetEnv(logLevelVar, "info")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

// GetStateDir returns the directory for persisted snapshots (session, theme).
// Defaults to an application subdirectory of the user config dir, falling
// back to the working directory when no home is resolvable.
func (EnvVars) GetStateDir() string {
	if dir := os.Getenv(stateDirVar); dir != "" {
		return dir
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "inventario-admin")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".inventario-admin"
	}
	return filepath.Join(home, ".config", "inventario-admin")
}

func (EnvVars) GetSessionScope() SessionScope {
	if GetEnv(sessionScopeVar, string(ScopePersistent)) == string(ScopeEphemeral) {
		return ScopeEphemeral
	}
	return ScopePersistent
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
