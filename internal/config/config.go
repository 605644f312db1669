// Package config provides functions for loading and saving the release-notes state
// file and for managing configuration templates.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alan/release-notes/cmd"
	"github.com/alan/release-notes/internal/config/templates"
	"gopkg.in/yaml.v3"
)

// LoadState loads the state from the specified file
func LoadState(filename string) (*cmd.State, error) {
	data, err := os.ReadFile(filename) //nolint:gosec // State filename is from command-line flag
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var state cmd.State
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}

	return &state, nil
}

// LoadOrDefaultState loads the state file, returning an empty state when it does not exist yet
func LoadOrDefaultState(filename string) (*cmd.State, error) {
	state, err := LoadState(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return &cmd.State{ActiveTemplate: templates.DefaultID}, nil
	}
	return state, err
}

// SaveState saves the state to the specified file
func SaveState(filename string, state *cmd.State) error {
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}
