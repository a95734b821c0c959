//go:build integration

package integration_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/hostkit-labs/hostkit/internal/locate"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir      string // HOSTKIT_HOME, holds config.yaml
	BinDir       string // directory holding the fake application binary
	ResourcesDir string // test resources tree
}

// setupTestEnv creates isolated temp directories and points HOSTKIT_HOME at
// one of them so no test touches the real user config.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:      t.TempDir(),
		BinDir:       t.TempDir(),
		ResourcesDir: t.TempDir(),
	}
	t.Setenv("HOSTKIT_HOME", env.HomeDir)
	return env
}

// setupResources creates a resources tree shaped like the application's:
// audio/ with a WAV and an AIFF file, midi/ and vst/<platform>/.
func setupResources(t *testing.T, root string) {
	t.Helper()

	writeFile(t, filepath.Join(root, "audio", "a440-stereo.wav"), wavHeader(44100, 2))
	writeFile(t, filepath.Join(root, "audio", "a440-mono.aif"), aiffHeader(1))
	writeFile(t, filepath.Join(root, "midi", "c-scale.mid"), []byte("MThd"))
	for _, p := range []string{"linux", "macosx", "windows"} {
		writeFile(t, filepath.Join(root, "vst", p, "again"), nil)
	}
}

// installBinary creates an empty file named like the application executable
// for the running build inside dir.
func installBinary(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, locate.BinaryName(name))
	writeFile(t, path, nil)
	if err := os.Chmod(path, 0755); err != nil {
		t.Fatalf("chmod %s: %v", path, err)
	}
	return path
}

// wavHeader returns the first 28 bytes of a RIFF/WAVE file. Multi-byte
// fields are little-endian.
func wavHeader(sampleRate uint32, channels uint16) []byte {
	b := make([]byte, 28)
	copy(b[0:], "RIFF")
	binary.LittleEndian.PutUint32(b[4:], 36)
	copy(b[8:], "WAVEfmt ")
	binary.LittleEndian.PutUint32(b[16:], 16)
	binary.LittleEndian.PutUint16(b[20:], 1)
	binary.LittleEndian.PutUint16(b[22:], channels)
	binary.LittleEndian.PutUint32(b[24:], sampleRate)
	return b
}

// aiffHeader returns a FORM/AIFF header with a COMM chunk. Multi-byte fields
// are big-endian.
func aiffHeader(channels uint16) []byte {
	b := make([]byte, 22)
	copy(b[0:], "FORM")
	binary.BigEndian.PutUint32(b[4:], 14)
	copy(b[8:], "AIFFCOMM")
	binary.BigEndian.PutUint32(b[16:], 18)
	binary.BigEndian.PutUint16(b[20:], channels)
	return b
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return data
}
