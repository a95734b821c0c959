//go:build windows

package platform

const current = Windows

// Separator is the path separator of the build target.
const Separator byte = '\\'
