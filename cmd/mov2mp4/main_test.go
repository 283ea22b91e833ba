package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/mov2mp4/internal/ffmpeg"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, 127, exitCode(ffmpeg.ErrExecutableNotFound))
	assert.Equal(t, 127, exitCode(errors.Wrap(ffmpeg.ErrExecutableNotFound, "pre-run check")))
	assert.Equal(t, 1, exitCode(errConversionsFailed))
	assert.Equal(t, 1, exitCode(errCheckFailed))
	assert.Equal(t, 1, exitCode(&ffmpeg.ConversionError{ExitCode: 3}))
	assert.Equal(t, 2, exitCode(errors.New("invalid flag")))
}

func TestRun_UsageErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clip.mov"), []byte("x"), 0o644))

	clip := filepath.Join(dir, "clip.mov")

	// Unknown preset fails before any subprocess is spawned.
	assert.Equal(t, 2, run([]string{clip, "--preset", "turbo", "--color", "never"}))

	// --copy with an explicit quality flag is rejected.
	assert.Equal(t, 2, run([]string{clip, "--copy", "--crf", "20", "--color", "never"}))

	// -o with a directory input is rejected.
	assert.Equal(t, 2, run([]string{dir, "-o", "out.mp4", "--color", "never"}))

	// Nonexistent input path.
	assert.Equal(t, 2, run([]string{filepath.Join(dir, "nope.mov"), "--color", "never"}))

	// Non-.mov file input.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clip.avi"), []byte("x"), 0o644))
	assert.Equal(t, 2, run([]string{filepath.Join(dir, "clip.avi"), "--color", "never"}))
}

func TestRun_MissingFfmpeg(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clip.mov"), []byte("x"), 0o644))
	t.Setenv("PATH", t.TempDir())

	assert.Equal(t, 127, run([]string{filepath.Join(dir, "clip.mov"), "--color", "never"}))
}

func TestRun_ExtraSplitNotParsedAsFlags(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clip.mov"), []byte("x"), 0o644))
	t.Setenv("PATH", t.TempDir())

	// "--definitely-not-a-flag" would be a cobra parse error (exit 2) if it
	// were not carved off by the --extra split; with ffmpeg missing the run
	// reaches the lookup gate instead and exits 127.
	code := run([]string{filepath.Join(dir, "clip.mov"), "--color", "never",
		"--extra", "--definitely-not-a-flag", "-t", "30"})
	assert.Equal(t, 127, code)
}
