//go:build !linux && !darwin && !windows

package platform

const current = Unsupported

// Separator is the path separator of the build target.
const Separator byte = '/'
