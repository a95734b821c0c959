// Package layout reads host layout manifests: YAML files that list the files
// and directories a host is expected to provide (test fixtures, plugin
// folders, resource trees). Manifests are validated against an embedded JSON
// Schema and then checked against the filesystem through the platform probe.
package layout
