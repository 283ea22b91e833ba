// Package check provides the --check diagnostics: ffmpeg availability, the
// libx264 and AAC encoders, and short test encodes for each.
package check

import (
	"os/exec"
	"strings"
)

// Logger is the minimal logging interface needed by RunCheck. Defined here
// (rather than importing the logging package) so that check stays
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the interactive --check flow: ffmpeg presence and version,
// available H.264 encoders, and test encodes for libx264 and AAC. Returns
// false when any required piece is missing or broken.
func RunCheck(log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkFfmpeg(log)
	if ok {
		listH264Encoders(log)
		ok = checkX264(log) && ok
		ok = checkAAC(log) && ok
	}
	return ok
}

// checkFfmpeg verifies ffmpeg is on PATH and logs its version string.
func checkFfmpeg(log Logger) bool {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		log.Error("ffmpeg not found on PATH")
		return false
	}
	out, err := exec.Command("ffmpeg", "-version").Output()
	if err != nil {
		log.Warn("ffmpeg found but -version failed: %v", err)
		return true
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Info("ffmpeg: %s", firstLine)
	return true
}

// listH264Encoders logs all H.264-related encoders reported by ffmpeg.
func listH264Encoders(log Logger) {
	out, err := exec.Command("ffmpeg", "-hide_banner", "-encoders").Output()
	if err != nil {
		log.Warn("Could not list encoders: %v", err)
		return
	}
	log.Info("H.264 encoders:")
	for _, line := range strings.Split(string(out), "\n") {
		if strings.Contains(strings.ToLower(line), "264") {
			log.Info("  %s", strings.TrimSpace(line))
		}
	}
}

// checkX264 runs a minimal libx264 encode to verify the video path works.
func checkX264(log Logger) bool {
	log.Info("Testing libx264...")
	if runSilent("ffmpeg",
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=256x256:d=0.1",
		"-c:v", "libx264",
		"-f", "null", "-",
	) {
		log.Info("libx264 works")
		return true
	}
	log.Error("libx264 test encode failed")
	return false
}

// checkAAC runs a minimal AAC encode to verify the audio path works.
func checkAAC(log Logger) bool {
	log.Info("Testing AAC encoder...")
	if runSilent("ffmpeg",
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "sine=frequency=1000:duration=0.1",
		"-c:a", "aac", "-f", "null", "-",
	) {
		log.Info("AAC encoder works")
		return true
	}
	log.Error("AAC encoder test failed")
	return false
}

// runSilent runs a command and reports whether it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
