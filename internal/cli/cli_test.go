package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hostkit-labs/hostkit/internal/branding"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// execute runs the root command with args against an isolated config
// directory and returns what it wrote to stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeVersion(t, "1.4.0", args...)
}

// executeVersion is execute with the given build version stamped in.
func executeVersion(t *testing.T, version string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(branding.EnvVar("HOME"), t.TempDir())
	viper.Reset()
	resetFlags(rootCmd)
	buildVersion, buildCommit, buildDate = version, "abc1234", "2026-01-02"

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags restores every flag of cmd and its children to its default, as
// flag variables outlive a single Execute.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestInfoText(t *testing.T) {
	out, _, err := execute(t, "info")
	if err != nil {
		t.Fatalf("info error: %v", err)
	}
	for _, want := range []string{"Platform:", "Separator:", "Byte order:", "64-bit:", "1.4.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("info output missing %q:\n%s", want, out)
		}
	}
}

func TestInfoJSON(t *testing.T) {
	out, _, err := execute(t, "info", "--output", "json")
	if err != nil {
		t.Fatalf("info error: %v", err)
	}
	var info hostInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("decoding %q: %v", out, err)
	}
	if info != collectHostInfo() {
		t.Errorf("info = %+v, want %+v", info, collectHostInfo())
	}
}

func TestInfoYAML(t *testing.T) {
	out, _, err := execute(t, "info", "-o", "yaml")
	if err != nil {
		t.Fatalf("info error: %v", err)
	}
	if !strings.Contains(out, "byte_order: ") {
		t.Errorf("yaml output = %q", out)
	}
}

func TestUnknownOutputFormat(t *testing.T) {
	_, _, err := execute(t, "info", "--output", "xml")
	if err == nil || !strings.Contains(err.Error(), "xml") {
		t.Errorf("err = %v, want unknown format error", err)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.wav")
	if err := os.WriteFile(present, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	absent := filepath.Join(dir, "absent.wav")

	out, _, err := execute(t, "exists", present, dir)
	if err != nil {
		t.Fatalf("exists error: %v", err)
	}
	if strings.Count(out, markOK) != 2 {
		t.Errorf("output = %q, want two OK lines", out)
	}

	out, _, err = execute(t, "exists", present, absent)
	if err == nil {
		t.Fatal("expected error for missing path")
	}
	if !strings.Contains(out, markMiss+" "+absent) {
		t.Errorf("output = %q, want MISS line for %s", out, absent)
	}
}

func TestLs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.wav", ".hidden"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	out, _, err := execute(t, "ls", dir, "-o", "json")
	if err != nil {
		t.Fatalf("ls error: %v", err)
	}
	var names []string
	if err := json.Unmarshal([]byte(out), &names); err != nil {
		t.Fatalf("decoding %q: %v", out, err)
	}
	want := map[string]bool{".": true, "..": true, "a.wav": true, ".hidden": true}
	if len(names) != len(want) {
		t.Fatalf("names = %v", names)
	}
	for _, n := range names {
		if !want[n] {
			t.Errorf("unexpected entry %q", n)
		}
	}

	out, _, err = execute(t, "ls", "--count", dir)
	if err != nil {
		t.Fatalf("ls --count error: %v", err)
	}
	if strings.TrimSpace(out) != "4" {
		t.Errorf("count = %q, want 4", out)
	}
}

func TestLsMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	out, _, err := execute(t, "ls", missing)
	if err != nil {
		t.Fatalf("ls without --strict error: %v", err)
	}
	if out != "" {
		t.Errorf("output = %q, want empty", out)
	}

	if _, _, err := execute(t, "ls", "--strict", missing); err == nil {
		t.Error("ls --strict: expected error for missing directory")
	}
}

func TestPathBuild(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"linux", []string{"path", "build", "/tmp", "output", "wav", "--as", "linux"}, "/tmp/output.wav", false},
		{"windows", []string{"path", "build", `C:\audio`, "output", "aif", "--as", "windows"}, `C:\audio\output.aif`, false},
		{"exact fit", []string{"path", "build", "/tmp", "output", "wav", "--as", "linux", "--capacity", "15"}, "/tmp/output.wav", false},
		{"truncated", []string{"path", "build", "/tmp", "output", "wav", "--as", "linux", "--capacity", "14"}, "/tmp/output.wa", true},
		{"bad platform", []string{"path", "build", "/tmp", "output", "wav", "--as", "beos"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got := strings.TrimRight(out, "\n"); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPathAbs(t *testing.T) {
	tests := []struct {
		path string
		as   string
		want string
	}{
		{"/usr/lib", "linux", "true"},
		{"relative/dir", "linux", "false"},
		{`C:\Windows`, "windows", "true"},
		{`\\server\share`, "windows", "false"},
		{"/usr/lib", "windows", "false"},
	}
	for _, tt := range tests {
		t.Run(tt.as+" "+tt.path, func(t *testing.T) {
			out, _, err := execute(t, "path", "abs", tt.path, "--as", tt.as)
			if err != nil {
				t.Fatalf("path abs error: %v", err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if !strings.Contains(out, "hostkit version 1.4.0 (release, commit: abc1234") {
		t.Errorf("output = %q", out)
	}

	out, _, err = execute(t, "version", "--short")
	if err != nil || strings.TrimSpace(out) != "1.4.0" {
		t.Errorf("version --short = %q, %v", out, err)
	}

	if _, _, err := execute(t, "version", "--require", ">= 1.2"); err != nil {
		t.Errorf("version --require >= 1.2: %v", err)
	}
	if _, _, err := execute(t, "version", "--require", ">= 2.0"); err == nil {
		t.Error("version --require >= 2.0: expected error")
	}
}

func TestVersionJSON(t *testing.T) {
	out, _, err := execute(t, "version", "--json")
	if err != nil {
		t.Fatalf("version --json error: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decoding %q: %v", out, err)
	}
	if got["version"] != "1.4.0" || got["commit"] != "abc1234" || got["date"] != "2026-01-02" {
		t.Errorf("version info = %v", got)
	}
	if got["release"] != true {
		t.Errorf("release = %v, want true", got["release"])
	}
}

func TestVerboseWritesRFC5424(t *testing.T) {
	_, stderr, err := execute(t, "--verbose", "info")
	if err != nil {
		t.Fatalf("info error: %v", err)
	}
	if !strings.HasPrefix(stderr, "<15>1 ") {
		t.Errorf("stderr = %q, want RFC 5424 debug record", stderr)
	}
	if !strings.Contains(stderr, "command started") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestVersionDevelopmentBuild(t *testing.T) {
	out, _, err := executeVersion(t, "dev", "version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if !strings.Contains(out, "(development build,") {
		t.Errorf("output = %q", out)
	}
	if collectHostInfo().Release {
		t.Error("info reports a dev build as a release")
	}
}

func TestErrorLineNamesRunID(t *testing.T) {
	_, stderr, err := execute(t, "--verbose", "exists", filepath.Join(t.TempDir(), "absent"))
	if err == nil {
		t.Fatal("expected error for missing path")
	}
	if runID == "" || !strings.Contains(stderr, runID) {
		t.Fatalf("run id %q not in diagnostics %q", runID, stderr)
	}
	if got := errorLine(err); !strings.HasSuffix(got, "(run "+runID+")") {
		t.Errorf("errorLine = %q", got)
	}

	if _, _, err := execute(t, "info"); err != nil {
		t.Fatal(err)
	}
	if got := errorLine(errors.New("boom")); got != "Error: boom" {
		t.Errorf("errorLine without --verbose = %q", got)
	}
}

func TestTimeoutFlag(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tone.wav"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "exists", "--timeout", "1m", filepath.Join(dir, "tone.wav"))
	if err != nil || !strings.Contains(out, markOK) {
		t.Errorf("exists --timeout = %q, %v", out, err)
	}

	out, _, err = execute(t, "ls", "--timeout", "1m", "--count", dir)
	if err != nil || strings.TrimSpace(out) != "3" {
		t.Errorf("ls --timeout --count = %q, %v", out, err)
	}

	out, _, err = execute(t, "ls", "--timeout", "1m", filepath.Join(dir, "absent"))
	if err != nil || out != "" {
		t.Errorf("ls --timeout on missing dir = %q, %v; want empty listing", out, err)
	}
}

func TestConfigSetGet(t *testing.T) {
	home := t.TempDir()

	run := func(args ...string) string {
		t.Helper()
		viper.Reset()
		resetFlags(rootCmd)
		t.Setenv(branding.EnvVar("HOME"), home)
		var stdout bytes.Buffer
		rootCmd.SetOut(&stdout)
		rootCmd.SetArgs(args)
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		return stdout.String()
	}
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	run("config", "set", "resources", "/srv/resources")
	if got := strings.TrimSpace(run("config", "get", "resources")); got != "/srv/resources" {
		t.Errorf("config get resources = %q", got)
	}
	if got := strings.TrimSpace(run("config", "get", "exe_name")); got != branding.DefaultExeName() {
		t.Errorf("config get exe_name = %q, want default", got)
	}
	if _, err := os.Stat(filepath.Join(home, "config.yaml")); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}

func TestConfigUnknownKey(t *testing.T) {
	if _, _, err := execute(t, "config", "get", "colour"); err == nil {
		t.Error("expected error for unknown key")
	}
}
