// Package config manages arithtutor configuration and its file location.
//
// Configuration is layered: built-in defaults, then an optional TOML file at
// ~/.arithtutor/config.toml, then ARITHTUTOR_* environment variables. The root
// directory can be moved with ARITHTUTOR_ROOT.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains the filesystem paths used by arithtutor.
type Paths struct {
	// Root is the base directory (default: ~/.arithtutor)
	Root string

	// Config is the path to the TOML config file
	Config string
}

// DefaultPaths returns the default paths for arithtutor.
// Paths can be overridden with environment variables:
// - ARITHTUTOR_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("ARITHTUTOR_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".arithtutor")
	}

	return &Paths{
		Root:   root,
		Config: filepath.Join(root, "config.toml"),
	}, nil
}
