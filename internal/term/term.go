// Package term provides terminal detection and color-mode resolution.
package term

import (
	"os"
	"strings"

	"github.com/backmassage/mov2mp4/internal/config"
)

// ColorsEnabled resolves the configured color mode against the environment.
// Auto mode enables colors only when stderr is a TTY, NO_COLOR is unset
// (https://no-color.org), and TERM is not "dumb".
func ColorsEnabled(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stderr) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
