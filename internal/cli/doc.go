// Package cli defines the Cobra command tree for the hostkit CLI. Each file
// registers one top-level command (info, exists, ls, path, endian, locate,
// check, config, version) with the root command. Commands delegate to the
// platform, byteorder, locate and layout packages and only handle flag
// parsing and output formatting.
package cli
