// Package testutil provides shared helpers for integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

var (
	integEnvOnce sync.Once
	integEnvVars map[string]string
)

// IntegEnvFile is the dotenv file consulted for integration test credentials.
func IntegEnvFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "build-ideas", ".env.integ-test")
}

func loadIntegEnvFile() map[string]string {
	integEnvOnce.Do(func() {
		integEnvVars = map[string]string{}
		path := IntegEnvFile()
		if path == "" {
			return
		}
		vars, err := godotenv.Read(path)
		if err != nil {
			return
		}
		integEnvVars = vars
	})
	return integEnvVars
}

// IntegEnv returns the value of key from the environment, falling back to
// IntegEnvFile if the env var is not set.
func IntegEnv(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return loadIntegEnvFile()[key]
}
