// Package ffmpeg builds and executes ffmpeg invocations.
//
// Build assembles the complete argument vector for one conversion from the
// runtime config and the input/output paths; it is a pure function with no
// filesystem access. Execute spawns the binary with inherited stdio, blocks
// until it exits, and maps the failure modes onto [ErrExecutableNotFound]
// and [ConversionError].
package ffmpeg
