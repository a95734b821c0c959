//go:build linux || darwin

package platform

// probe_unix.go implements the filesystem probe for Linux and macOS on top of
// golang.org/x/sys/unix.
//
// Directory enumeration reads raw dirent records with unix.ReadDirent
// (getdents64 on Linux, the getdirentries emulation on macOS). os.ReadDir
// drops the "." and ".." entries the native stream emits.

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

const direntBufSize = 8192

// Field offsets of unix.Dirent. Both platforms store a NUL-terminated name
// after a fixed header; only the header length differs.
const (
	direntInoOffset    = int(unsafe.Offsetof(unix.Dirent{}.Ino))
	direntReclenOffset = int(unsafe.Offsetof(unix.Dirent{}.Reclen))
	direntNameOffset   = int(unsafe.Offsetof(unix.Dirent{}.Name))
)

var errInvalidDirent = errors.New("invalid dirent")

func fileExists(path string) bool {
	var st unix.Stat_t
	for {
		err := unix.Stat(path, &st)
		if err == syscall.EINTR {
			continue
		}
		return err == nil
	}
}

func openDirFD(dir string) (int, error) {
	for {
		fd, err := unix.Open(dir, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
		if err == syscall.EINTR {
			continue
		}
		if err != nil {
			return -1, &fs.PathError{Op: "open", Path: dir, Err: err}
		}
		return fd, nil
	}
}

func readDirNames(dir string) ([]string, error) {
	fd, err := openDirFD(dir)
	if err != nil {
		return nil, err
	}
	defer unix.Close(fd)

	buf := make([]byte, direntBufSize)
	var names []string
	for {
		var n int
		for {
			n, err = unix.ReadDirent(fd, buf)
			if err != syscall.EINTR {
				break
			}
		}
		if err != nil {
			return names, &fs.PathError{Op: "readdirent", Path: dir, Err: err}
		}
		if n <= 0 {
			return names, nil
		}

		names, err = appendDirentNames(names, buf[:n])
		if err != nil {
			return names, fmt.Errorf("parsing entries of %s: %w", dir, err)
		}
	}
}

// appendDirentNames copies the name of every record in buf onto names.
// Records with a zero inode number are slots of removed entries and are
// skipped, matching what the C library's readdir does.
func appendDirentNames(names []string, buf []byte) ([]string, error) {
	for len(buf) > 0 {
		if len(buf) < direntNameOffset {
			return names, errInvalidDirent
		}

		reclen := int(binary.NativeEndian.Uint16(buf[direntReclenOffset:]))
		if reclen <= direntNameOffset || reclen > len(buf) {
			return names, errInvalidDirent
		}

		rec := buf[:reclen]
		buf = buf[reclen:]

		if binary.NativeEndian.Uint64(rec[direntInoOffset:]) == 0 {
			continue
		}

		name := rec[direntNameOffset:]
		if i := bytes.IndexByte(name, 0); i >= 0 {
			name = name[:i]
		}
		if len(name) == 0 {
			continue
		}

		// string(name) copies out of the reusable read buffer.
		names = append(names, string(name))
	}
	return names, nil
}
