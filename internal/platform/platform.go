package platform

import (
	"fmt"
	"math/bits"
	"strings"
)

// Type identifies the operating system family a binary was built for.
type Type int

const (
	Unsupported Type = iota // any target other than the three below
	MacOSX                  // macOS (GOOS darwin)
	Windows                 // Windows
	Linux                   // Linux
)

// Current returns the platform selected at build time.
func Current() Type {
	return current
}

// String returns the lower-case platform name, e.g. "macosx".
func (t Type) String() string {
	switch t {
	case MacOSX:
		return "macosx"
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	default:
		return "unsupported"
	}
}

// ParseType maps a platform name back to a Type. It accepts the String forms
// plus the GOOS spellings "darwin" and "macos".
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "macosx", "macos", "darwin":
		return MacOSX, nil
	case "windows":
		return Windows, nil
	case "linux":
		return Linux, nil
	case "unsupported":
		return Unsupported, nil
	default:
		return Unsupported, fmt.Errorf("unknown platform %q: expected macosx, windows or linux", name)
	}
}

// Separator returns the path separator used on platform t.
func (t Type) Separator() byte {
	if t == Windows {
		return '\\'
	}
	return '/'
}

// ExecutableName returns the on-disk name of an executable called base.
func (t Type) ExecutableName(base string) string {
	if t == Windows {
		return base + ".exe"
	}
	return base
}

// Is64Bit reports whether the binary was built for a 64-bit target.
func Is64Bit() bool {
	return bits.UintSize == 64
}
