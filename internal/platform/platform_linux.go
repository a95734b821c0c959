//go:build linux

package platform

const current = Linux

// Separator is the path separator of the build target.
const Separator byte = '/'
