//go:build windows

package platform

import (
	"errors"
	"io/fs"

	"golang.org/x/sys/windows"
)

func fileExists(path string) bool {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false
	}
	return attrs != windows.INVALID_FILE_ATTRIBUTES
}

// readDirNames walks dir with FindFirstFile/FindNextFile. The find data is
// overwritten on every step, so each name is converted to a new string before
// advancing.
func readDirNames(dir string) ([]string, error) {
	pattern, err := windows.UTF16PtrFromString(dir + `\*`)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: err}
	}

	var data windows.Win32finddata
	h, err := windows.FindFirstFile(pattern, &data)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: err}
	}
	defer windows.FindClose(h)

	var names []string
	for {
		names = append(names, windows.UTF16ToString(data.FileName[:]))

		err := windows.FindNextFile(h, &data)
		if errors.Is(err, windows.ERROR_NO_MORE_FILES) {
			return names, nil
		}
		if err != nil {
			return names, &fs.PathError{Op: "readdir", Path: dir, Err: err}
		}
	}
}
