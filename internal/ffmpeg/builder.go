package ffmpeg

import (
	"strconv"

	"github.com/backmassage/mov2mp4/internal/config"
)

// Build constructs the complete ffmpeg argument slice for one conversion,
// binary name included. Pure function of its inputs.
//
// Ordering contract: preamble, input, codec section (copy or encode, never
// both), subtitle copy, faststart, passthrough args, output path. The
// passthrough args sit directly before the output so they can override any
// generated option (ffmpeg last-one-wins).
func Build(cfg *config.Config, input, output string) []string {
	args := make([]string, 0, 24)

	// --- Preamble ---
	args = append(args, "ffmpeg", "-hide_banner", "-nostdin", "-y")

	// Loglevel: info when verbose, otherwise error. -stats keeps the live
	// progress line visible either way.
	if cfg.Verbose {
		args = append(args, "-loglevel", "info")
	} else {
		args = append(args, "-loglevel", "error")
	}
	args = append(args, "-stats")

	// --- Input ---
	args = append(args, "-i", input)

	// --- Codec section ---
	if cfg.CopyStreams {
		// Remux only; assumes the source streams are already MP4-compatible.
		args = append(args, "-c", "copy")
	} else {
		args = append(args,
			"-c:v", "libx264",
			"-crf", strconv.Itoa(cfg.CRF),
			"-preset", cfg.Preset,
			"-c:a", "aac",
			"-b:a", cfg.AudioBitrate,
		)
	}

	// Text subtitles survive the container change as-is.
	args = append(args, "-c:s", "copy")

	// Front-load the moov atom for web playback.
	args = append(args, "-movflags", "+faststart")

	// --- Passthrough args, verbatim ---
	args = append(args, cfg.ExtraArgs...)

	// --- Output ---
	args = append(args, output)

	return args
}
