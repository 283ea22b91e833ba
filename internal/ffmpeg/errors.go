package ffmpeg

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrExecutableNotFound means the ffmpeg binary is not on PATH. It is fatal
// for the whole run; main maps it to exit code 127.
var ErrExecutableNotFound = errors.New("ffmpeg not found on PATH (install it from https://ffmpeg.org/)")

// ConversionError reports a non-zero exit status from a child ffmpeg
// process. In batch mode it is logged per file and the run continues.
type ConversionError struct {
	ExitCode int
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("ffmpeg exited with status %d", e.ExitCode)
}
