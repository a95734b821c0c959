package layout

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hostkit-labs/hostkit/internal/platform"
)

// MaxPathLen bounds the buffer used to build each file path.
const MaxPathLen = 4096

// FileResult is the outcome of probing one manifest file.
type FileResult struct {
	Spec      FileSpec
	Path      string
	Exists    bool
	Truncated bool
}

// DirResult is the outcome of listing one manifest directory.
type DirResult struct {
	Spec    DirSpec
	Path    string
	Entries int // entries other than "." and ".."
	Err     error
}

// OK reports whether the directory could be read and holds enough entries.
func (r DirResult) OK() bool {
	return r.Err == nil && r.Entries >= r.Spec.MinEntries
}

// Report collects the results of Check.
type Report struct {
	Manifest string
	Platform platform.Type
	Files    []FileResult
	Dirs     []DirResult
}

// OK reports whether every file exists and every directory passed.
func (r *Report) OK() bool {
	for _, f := range r.Files {
		if !f.Exists {
			return false
		}
	}
	for _, d := range r.Dirs {
		if !d.OK() {
			return false
		}
	}
	return true
}

// Missing returns the number of failed file and directory checks.
func (r *Report) Missing() int {
	n := 0
	for _, f := range r.Files {
		if !f.Exists {
			n++
		}
	}
	for _, d := range r.Dirs {
		if !d.OK() {
			n++
		}
	}
	return n
}

// Check probes the filesystem for everything m declares. Paths are built with
// the separator of m.Platform, or of the running platform when it is empty.
func Check(m *Manifest) (*Report, error) {
	return CheckContext(context.Background(), m)
}

// CheckContext is Check with every probe bounded by ctx. When ctx ends, the
// results gathered so far are returned along with the context error.
func CheckContext(ctx context.Context, m *Manifest) (*Report, error) {
	t := platform.Current()
	if m.Platform != "" {
		parsed, err := platform.ParseType(m.Platform)
		if err != nil {
			return nil, fmt.Errorf("layout %s: %w", m.Name, err)
		}
		t = parsed
	}

	report := &Report{Manifest: m.Name, Platform: t}
	buf := platform.NewBuffer(MaxPathLen)

	for _, f := range m.Files {
		dir := resolve(t, m.Root, f.Dir)
		ok := t.BuildAbsolutePath(dir, f.Base, f.Ext, buf)
		res := FileResult{Spec: f, Path: buf.String(), Truncated: !ok}
		if ok {
			exists, err := platform.FileExistsContext(ctx, res.Path)
			if err != nil {
				return report, fmt.Errorf("probing %s: %w", res.Path, err)
			}
			res.Exists = exists
		}
		report.Files = append(report.Files, res)
	}

	for _, d := range m.Dirs {
		res := DirResult{Spec: d, Path: resolve(t, m.Root, d.Path)}
		names, err := platform.ReadDirectoryContext(ctx, res.Path)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return report, fmt.Errorf("listing %s: %w", res.Path, ctxErr)
		}
		if err != nil {
			res.Err = err
		} else {
			res.Entries = countEntries(names)
		}
		report.Dirs = append(report.Dirs, res)
	}

	return report, nil
}

// resolve places a relative dir under root. Absolute dirs, judged by the
// rule of platform t, are used as given.
func resolve(t platform.Type, root, dir string) string {
	switch {
	case dir == "" || dir == ".":
		if root == "" {
			return "."
		}
		return root
	case root == "" || t.IsAbsolutePath(dir):
		return dir
	case t == platform.Current():
		return filepath.Join(root, dir)
	default:
		return root + string(t.Separator()) + dir
	}
}

func countEntries(names []string) int {
	n := 0
	for _, name := range names {
		if name != "." && name != ".." {
			n++
		}
	}
	return n
}
