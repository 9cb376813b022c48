package cliconfig

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// ApplyEnvConfig applies HQWALK_* variables, skipping flags set on the command line.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)
	s.setString("input", os.Getenv("HQWALK_INPUT"), &cfg.InputPath)
	s.setString("log-level", os.Getenv("HQWALK_LOG_LEVEL"), &cfg.LogLevel)
	s.setBoolFromString("pause", os.Getenv("HQWALK_PAUSE"), &cfg.Pause)
}
