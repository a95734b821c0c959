package layout

import (
	"path/filepath"
	"strings"
	"testing"
)

func testPath(name string) string {
	return filepath.Join("testdata", name)
}

func TestValidateFile_Valid(t *testing.T) {
	for _, file := range []string{"valid-files.yaml", "valid-dirs.yaml"} {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  %s (keyword=%s)", issue, issue.Keyword)
				}
			}
		})
	}
}

func TestValidateFile_Invalid(t *testing.T) {
	tests := []struct {
		file    string
		keyword string
		path    string
	}{
		{"invalid-missing-name.yaml", "required", ""},
		{"invalid-bad-name-pattern.yaml", "pattern", "/name"},
		{"invalid-empty.yaml", "required", ""},
		{"invalid-bad-ext.yaml", "pattern", "/files/0/ext"},
		{"invalid-platform.yaml", "enum", "/platform"},
		{"invalid-unknown-field.yaml", "additionalProperties", "/files/0"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Fatalf("expected invalid for %s", tt.file)
			}

			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.keyword && issue.Path == tt.path {
					found = true
				}
				if issue.Message == "" {
					t.Errorf("issue at %q has empty message", issue.Path)
				}
			}
			if !found {
				t.Errorf("no %s issue at %q in %v", tt.keyword, tt.path, result.Issues)
			}
		})
	}
}

func TestValidate_NoDuplicateIssues(t *testing.T) {
	result, err := Validate([]byte("name: x\n"))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	seen := make(map[string]bool)
	for _, issue := range result.Issues {
		key := issue.String() + issue.Keyword
		if seen[key] {
			t.Errorf("duplicate issue %q", issue)
		}
		seen[key] = true
	}
}

func TestValidateFile_InvalidYAML(t *testing.T) {
	if _, err := ValidateFile(testPath("invalid-not-yaml.yaml")); err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestValidateFile_NotFound(t *testing.T) {
	if _, err := ValidateFile(testPath("nonexistent.yaml")); err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestValidationIssue_String(t *testing.T) {
	i := ValidationIssue{Path: "/name", Message: "does not match pattern"}
	if got := i.String(); got != "/name: does not match pattern" {
		t.Errorf("String() = %q", got)
	}
	i.Path = ""
	if got := i.String(); strings.Contains(got, ":") {
		t.Errorf("String() without path = %q", got)
	}
}
