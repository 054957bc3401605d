// Package deckconfig loads the optional .deckrc.yaml file: default debug
// flags and a search path for source roots. Nothing under internal/core
// reads this package; it is a CLI-level convenience only.
package deckconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/go-deck/deck/internal/deckdebug"
)

// FileName is the config file's name, searched for in the current
// directory and then in ConfigDir.
const FileName = ".deckrc.yaml"

// Config is the parsed contents of a .deckrc.yaml file.
type Config struct {
	// Debug seeds deckdebug.Flags for a run that doesn't set DECK_DEBUG
	// explicitly; an explicit DECK_DEBUG environment variable still wins.
	Debug deckdebug.Config `yaml:"debug"`

	// SourceRoots lists additional directories the CLI searches for
	// named source files, in order, when a name is not found as given
	// (relative to the current directory).
	SourceRoots []string `yaml:"sourceRoots"`
}

// ConfigDir returns the directory .deckrc.yaml lives in when it isn't
// found in the current directory: $DECK_CONFIG_DIR if set, otherwise the
// OS user config directory joined with "deck".
func ConfigDir(getenv func(string) string) (string, error) {
	if dir := getenv("DECK_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine system config directory: %v", err)
	}
	return filepath.Join(dir, "deck"), nil
}

// Load reads and parses .deckrc.yaml, checking the current directory
// first and then ConfigDir. It returns a zero Config, no error, if
// neither location has one.
func Load(getenv func(string) string) (Config, error) {
	path, err := find(getenv)
	if err != nil {
		return Config{}, err
	}
	if path == "" {
		return Config{}, nil
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read %s: %v", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(body, &cfg); err != nil {
		return Config{}, fmt.Errorf("cannot parse %s: %v", path, err)
	}
	return cfg, nil
}

func find(getenv func(string) string) (string, error) {
	if _, err := os.Stat(FileName); err == nil {
		return FileName, nil
	}

	dir, err := ConfigDir(getenv)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return "", nil
}
