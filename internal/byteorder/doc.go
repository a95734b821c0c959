// Package byteorder converts 16- and 32-bit integers and 32-bit IEEE floats
// between big-endian, little-endian and host byte order.
//
// Media formats disagree on byte order (AIFF headers are big-endian, WAV
// headers little-endian), so values read from disk are normalized here before
// use. The host order is detected once at run time rather than assumed from
// the build target.
package byteorder
