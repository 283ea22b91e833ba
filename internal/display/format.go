package display

import (
	"github.com/dustin/go-humanize"
)

// FormatBytes returns a human-readable binary size ("1.5 GiB"). Callers pass
// non-negative values; negate before calling when displaying a deficit.
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.IBytes(uint64(bytes))
}

// FormatBytesWithSign prefixes the size with + or - for delta display.
func FormatBytesWithSign(bytes int64) string {
	switch {
	case bytes > 0:
		return "+ " + humanize.IBytes(uint64(bytes))
	case bytes < 0:
		return "- " + humanize.IBytes(uint64(-bytes))
	default:
		return humanize.IBytes(0)
	}
}
