//go:build darwin

package platform

const current = MacOSX

// Separator is the path separator of the build target.
const Separator byte = '/'
