package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// A missing file is not an error, and variables already set win.
func LoadDotEnv(path string) error {
	if path == "" {
		path = envOr("ENV_FILE", ".env")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config.stat(%s): %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config.godotenv(%s): %w", path, err)
	}
	return nil
}
