package platform

import "context"

// FileExists reports whether a metadata query on path succeeds. Any failure,
// including a permission error or a malformed path, yields false. A true
// result does not promise that the path can be opened afterwards.
func FileExists(path string) bool {
	return fileExists(path)
}

// ReadDirectory returns every entry the native directory stream yields for
// dir, in stream order, including the "." and ".." pseudo-entries. Each name
// is an independent copy owned by the caller.
//
// Unlike ListDirectory, a directory that cannot be opened is reported as an
// error, so errors.Is(err, fs.ErrNotExist) separates a missing directory from
// an empty one. If enumeration fails part way, the entries read so far are
// returned together with the error.
func ReadDirectory(dir string) ([]string, error) {
	return readDirNames(dir)
}

// ListDirectory appends the name of every entry of dir to out and returns how
// many names were appended. It returns 0 both when the directory is empty and
// when it cannot be opened. A nil out only counts the entries.
func ListDirectory(dir string, out *[]string) int {
	names, _ := ReadDirectory(dir)
	if out != nil {
		*out = append(*out, names...)
	}
	return len(names)
}

// FileExistsContext runs FileExists on its own goroutine so that a probe of a
// slow mount can be abandoned. When ctx ends first it returns false and
// ctx.Err(); the abandoned query still runs to completion in the background.
func FileExistsContext(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	done := make(chan bool, 1)
	go func() {
		done <- fileExists(path)
	}()

	select {
	case ok := <-done:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

type dirResult struct {
	names []string
	err   error
}

// ReadDirectoryContext is ReadDirectory bounded by ctx.
func ReadDirectoryContext(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan dirResult, 1)
	go func() {
		names, err := readDirNames(dir)
		done <- dirResult{names: names, err: err}
	}()

	select {
	case r := <-done:
		return r.names, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
