package ffmpeg

import (
	"context"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

// ExecResult holds the outcome of a single ffmpeg invocation.
type ExecResult struct {
	ExitCode int
	Err      error
}

// OK reports whether the invocation succeeded.
func (r ExecResult) OK() bool { return r.Err == nil }

// LookPath verifies the ffmpeg binary is resolvable. Called once before the
// first spawn so a missing install fails the run up front instead of on the
// first file.
func LookPath() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrExecutableNotFound
	}
	return nil
}

// Execute runs the prepared argument vector (args[0] is the binary name).
// The child inherits the parent's stdout and stderr so ffmpeg's progress and
// diagnostics reach the user in real time, unbuffered. Blocks until the
// child exits; cancelling ctx kills it.
func Execute(ctx context.Context, args []string) ExecResult {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return ExecResult{}
	}

	if errors.Is(err, exec.ErrNotFound) {
		return ExecResult{ExitCode: 127, Err: ErrExecutableNotFound}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		return ExecResult{ExitCode: code, Err: &ConversionError{ExitCode: code}}
	}

	// Spawn failed for some other reason (permissions, resources).
	return ExecResult{ExitCode: 1, Err: errors.Wrap(err, "spawning ffmpeg")}
}
