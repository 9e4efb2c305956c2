package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	AppName     = "flipai"
	EnvFileName = "config.env"
)

// requiredKeys are the provider credentials no search can run without.
var requiredKeys = []string{"GEMINI_API_KEY", "SERPAPI_API_KEY"}

// LoadEnvFile loads environment variables from the config file in the user's
// config directory. Errors are ignored since the file may not exist. Values
// already set in the environment win, so the file acts as a user-level
// override for keys the deployment didn't provide.
func LoadEnvFile() {
	configBase, err := os.UserConfigDir()
	if err != nil {
		return
	}
	configPath := filepath.Join(configBase, AppName, EnvFileName)
	_ = godotenv.Load(configPath)
}

// CheckRequired returns the names of required environment variables that are
// not set.
func CheckRequired() []string {
	var missing []string
	for _, key := range requiredKeys {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}
