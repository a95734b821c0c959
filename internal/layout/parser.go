package layout

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Parse decodes a manifest from YAML.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}
	return &m, nil
}

// Load validates the manifest at path against the schema and parses it.
// Schema violations are returned as a *ValidationResult inside an
// *InvalidError.
func Load(path string) (*Manifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	if !result.Valid {
		return nil, &InvalidError{Path: path, Result: result}
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// InvalidError reports a manifest that failed schema validation.
type InvalidError struct {
	Path   string
	Result *ValidationResult
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("layout %s has %d validation issue(s)", e.Path, len(e.Result.Issues))
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
