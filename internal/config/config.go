// Package config holds runtime configuration: defaults, validation, and the
// splitting of passthrough ffmpeg arguments out of the raw argv.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Usage-error sentinels. Callers wrap these with path/value context via
// errors.Wrapf; main maps anything carrying one of them to exit code 2.
var (
	ErrInvalidPreset       = errors.New("invalid preset")
	ErrIncompatibleOptions = errors.New("incompatible options")
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stderr is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Presets is the fixed x264 preset set accepted by --preset.
var Presets = []string{
	"ultrafast", "superfast", "veryfast", "faster", "fast",
	"medium", "slow", "slower", "veryslow", "placebo",
}

// Config holds all runtime settings. It is populated by [Default], mutated
// by the cobra flag bindings, and then passed (by pointer) to packages that
// need it. Field comments document defaults.
type Config struct {
	// Paths (positional arg and -o).
	Input  string
	Output string // Explicit output path; single-file mode only.

	// Encoding.
	CopyStreams  bool   // --copy: remux without re-encoding.
	CRF          int    // Default: 23.
	Preset       string // Default: "medium".
	AudioBitrate string // Default: "192k".

	// Set when the user passed the flag explicitly; used to reject
	// --crf/--preset alongside --copy while leaving the defaults alone.
	CRFSet    bool
	PresetSet bool

	// Behavior flags.
	Recursive bool
	Force     bool // Overwrite existing outputs. Default: false (skip).
	DryRun    bool

	// Passthrough arguments forwarded verbatim to ffmpeg.
	ExtraArgs []string

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// Default returns a Config with all defaults applied, used as the base
// before flag bindings overwrite individual fields.
func Default() Config {
	return Config{
		CRF:          23,
		Preset:       "medium",
		AudioBitrate: "192k",
		ColorMode:    ColorAuto,
	}
}

// SplitExtra separates the passthrough arguments from argv. Everything after
// the first "--extra" token is forwarded to ffmpeg untouched; the tokens
// before it are returned for normal flag parsing. The "--extra" token itself
// is consumed.
func SplitExtra(argv []string) (args, extra []string) {
	for i, a := range argv {
		if a == "--extra" {
			return argv[:i], argv[i+1:]
		}
	}
	return argv, nil
}

// Validate checks enum fields and option compatibility. It must pass before
// any filesystem access or subprocess spawn.
func (c *Config) Validate() error {
	if !validPreset(c.Preset) {
		return errors.Wrapf(ErrInvalidPreset, "%q (use one of: %s)", c.Preset, strings.Join(Presets, ", "))
	}
	if c.CRF < 0 {
		return errors.Wrapf(ErrIncompatibleOptions, "--crf must be non-negative (got %d)", c.CRF)
	}
	if c.CopyStreams && (c.CRFSet || c.PresetSet) {
		return errors.Wrap(ErrIncompatibleOptions, "--copy cannot be combined with --crf or --preset")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.Wrapf(ErrIncompatibleOptions, "invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	normalized, err := normalizeAudioBitrate(c.AudioBitrate)
	if err != nil {
		return err
	}
	c.AudioBitrate = normalized

	if c.CheckOnly {
		return nil
	}
	if c.Input == "" {
		return errors.Wrap(ErrIncompatibleOptions, "need an input file or directory")
	}
	return nil
}

func validPreset(name string) bool {
	for _, p := range Presets {
		if p == name {
			return true
		}
	}
	return false
}

// normalizeAudioBitrate validates and canonicalizes user bitrate input.
// Accepted forms: "192", "192k", "192K", "192kbps". Output is "<n>k".
func normalizeAudioBitrate(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", errors.Wrap(ErrIncompatibleOptions, "audio bitrate must not be empty")
	}
	if strings.HasSuffix(s, "kbps") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "kbps"))
	} else if strings.HasSuffix(s, "k") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "k"))
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return "", errors.Wrapf(ErrIncompatibleOptions, "invalid audio bitrate %q (use positive Kbps value, e.g. 192k)", raw)
	}
	return fmt.Sprintf("%dk", n), nil
}
