// Package buildinfo holds the version stamped into the binary with ldflags
// and interprets it as a semantic version.
package buildinfo

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Info describes one build.
type Info struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
}

// Semver parses the build version, tolerating a leading "v".
func (i Info) Semver() (*semver.Version, error) {
	return parseSemver(i.Version)
}

// IsRelease reports whether the version is a semantic version without a
// prerelease tag. Development builds ("dev") are not releases.
func (i Info) IsRelease() bool {
	v, err := i.Semver()
	if err != nil {
		return false
	}
	return v.Prerelease() == ""
}

// Satisfies reports whether the build version meets constraint, e.g. ">= 1.2".
// A version that is not semver never satisfies anything.
func (i Info) Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	v, err := i.Semver()
	if err != nil {
		return false, nil
	}
	return c.Check(v), nil
}

func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
