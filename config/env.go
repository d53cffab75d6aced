package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadDotEnv reads .env files into the process environment. Variables that
// are already set win. Missing files are ignored.
func LoadDotEnv(paths ...string) {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("WARNING: failed to load .env: %v", err)
	}
}
