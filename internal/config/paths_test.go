package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	t.Run("returns paths based on home directory", func(t *testing.T) {
		t.Setenv("ARITHTUTOR_ROOT", "")
		t.Setenv("HOME", t.TempDir())

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if filepath.Base(paths.Root) != ".arithtutor" {
			t.Errorf("Root should end with .arithtutor, got: %s", paths.Root)
		}
		if paths.Config != filepath.Join(paths.Root, "config.toml") {
			t.Errorf("Config path incorrect: got %s", paths.Config)
		}
	})

	t.Run("respects ARITHTUTOR_ROOT environment variable", func(t *testing.T) {
		customRoot := "/custom/arithtutor/path"
		t.Setenv("ARITHTUTOR_ROOT", customRoot)

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if paths.Root != customRoot {
			t.Errorf("Expected root %s, got %s", customRoot, paths.Root)
		}
		if paths.Config != filepath.Join(customRoot, "config.toml") {
			t.Errorf("Config path incorrect: got %s", paths.Config)
		}
	})
}
