// Package pipeline turns one CLI invocation into an ordered batch of
// conversion requests and runs them sequentially against ffmpeg, collecting
// aggregate stats. One file is converted at a time; a failed conversion is
// logged and the batch continues.
package pipeline
