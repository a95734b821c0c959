package platform

// Buffer is a caller-owned string buffer with a fixed capacity. Writes never
// grow it past the capacity given to NewBuffer; excess bytes are dropped.
type Buffer struct {
	data []byte
}

// NewBuffer returns an empty Buffer that holds at most capacity bytes.
func NewBuffer(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{data: make([]byte, 0, capacity)}
}

// Cap returns the maximum number of bytes the buffer can hold.
func (b *Buffer) Cap() int { return cap(b.data) }

// Len returns the number of bytes currently held.
func (b *Buffer) Len() int { return len(b.data) }

// String returns a copy of the buffer contents.
func (b *Buffer) String() string { return string(b.data) }

// Reset empties the buffer without releasing its storage.
func (b *Buffer) Reset() { b.data = b.data[:0] }

// write appends parts until capacity is reached. It reports false if any byte
// had to be dropped.
func (b *Buffer) write(parts ...string) bool {
	for _, p := range parts {
		room := cap(b.data) - len(b.data)
		if len(p) > room {
			b.data = append(b.data, p[:room]...)
			return false
		}
		b.data = append(b.data, p...)
	}
	return true
}

// BuildAbsolutePath writes dir + Separator + base + "." + ext into out,
// replacing its previous contents. It returns false when out was too small and
// the path was truncated; out then holds the longest prefix that fits.
func BuildAbsolutePath(dir, base, ext string, out *Buffer) bool {
	return current.BuildAbsolutePath(dir, base, ext, out)
}

// BuildAbsolutePath is like the package-level BuildAbsolutePath but uses the
// separator of platform t.
func (t Type) BuildAbsolutePath(dir, base, ext string, out *Buffer) bool {
	if out == nil {
		return false
	}
	out.Reset()
	return out.write(dir, string(t.Separator()), base, ".", ext)
}

// IsAbsolutePath reports whether path is absolute on the build platform.
//
// Only drive-letter paths ("C:\...") are absolute on Windows; UNC paths,
// drive-relative paths ("C:foo") and "~" are not recognized anywhere.
func IsAbsolutePath(path string) bool {
	return current.IsAbsolutePath(path)
}

// IsAbsolutePath applies the absolute-path rule of platform t.
func (t Type) IsAbsolutePath(path string) bool {
	sep := t.Separator()
	if t == Windows {
		return len(path) >= 3 && path[1] == ':' && path[2] == sep
	}
	return len(path) > 0 && path[0] == sep
}
