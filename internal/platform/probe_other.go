//go:build !linux && !darwin && !windows

package platform

import (
	"errors"
	"io/fs"
	"os"
)

// Targets without a native backend use the portable os API. It never yields
// "." and "..", so they are put back to keep listings uniform.

var errNotDir = errors.New("not a directory")

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func readDirNames(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: errNotDir}
	}

	names, err := f.Readdirnames(-1)
	return append([]string{".", ".."}, names...), err
}
