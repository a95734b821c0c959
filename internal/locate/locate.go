// Package locate finds the application executable and the test resources
// directory on disk. It is the boundary through which a test runner uses the
// platform probe: both lookups end in platform.FileExists.
package locate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hostkit-labs/hostkit/internal/platform"
)

var (
	// ErrNotFound is returned when a candidate path does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotConfigured is returned when no resources path was supplied.
	ErrNotConfigured = errors.New("not configured")
)

// BinaryName returns the file name of executable name for the running build:
// "64" is appended on 64-bit builds and ".exe" on Windows, giving for example
// "mrswatson64.exe".
func BinaryName(name string) string {
	return binaryName(platform.Current(), platform.Is64Bit(), name)
}

func binaryName(p platform.Type, is64 bool, name string) string {
	if is64 {
		name += "64"
	}
	return p.ExecutableName(name)
}

// Executable returns explicit if it is set and exists. Otherwise it looks for
// BinaryName(name) next to the running executable.
func Executable(explicit, name string) (string, error) {
	if explicit != "" {
		if !platform.FileExists(explicit) {
			return "", fmt.Errorf("executable %s: %w", explicit, ErrNotFound)
		}
		return explicit, nil
	}

	self, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolving own executable: %w", err)
	}
	return InDir(filepath.Dir(self), name)
}

// InDir looks for BinaryName(name) inside dir.
func InDir(dir, name string) (string, error) {
	candidate := filepath.Join(dir, BinaryName(name))
	if !platform.FileExists(candidate) {
		return "", fmt.Errorf("executable %s: %w", candidate, ErrNotFound)
	}
	return candidate, nil
}

// Resources returns the absolute path of the resources directory. Relative
// paths are resolved against the working directory.
func Resources(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("resources directory: %w", ErrNotConfigured)
	}

	if !platform.IsAbsolutePath(path) {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		path = filepath.Join(wd, path)
	}

	if !platform.FileExists(path) {
		return "", fmt.Errorf("resources %s: %w", path, ErrNotFound)
	}
	return path, nil
}
