// Package platform gives the rest of hostkit one OS-independent view of the
// host: which platform the binary was built for, whether a path exists, what a
// directory contains, and how absolute paths are built and recognized.
//
// The platform identity and path separator are fixed at build time by
// build-tagged files. Filesystem queries go through the native facility of each
// OS (getdents/getdirentries on Linux and macOS, FindFirstFile on Windows) but
// share one signature. None of the probe functions report why a query failed:
// FileExists collapses every failure to false and ListDirectory to a count of 0.
// Callers that need the cause use ReadDirectory.
package platform
