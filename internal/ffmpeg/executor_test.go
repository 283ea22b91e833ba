package ffmpeg

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_Success(t *testing.T) {
	res := Execute(context.Background(), []string{"true"})
	assert.True(t, res.OK())
	assert.Equal(t, 0, res.ExitCode)
}

func TestExecute_NonZeroExit(t *testing.T) {
	res := Execute(context.Background(), []string{"sh", "-c", "exit 3"})
	require.False(t, res.OK())
	assert.Equal(t, 3, res.ExitCode)

	var convErr *ConversionError
	require.True(t, errors.As(res.Err, &convErr))
	assert.Equal(t, 3, convErr.ExitCode)
}

func TestExecute_MissingBinary(t *testing.T) {
	res := Execute(context.Background(), []string{"definitely-not-a-real-binary-xyz"})
	require.False(t, res.OK())
	assert.True(t, errors.Is(res.Err, ErrExecutableNotFound))
	assert.Equal(t, 127, res.ExitCode)
}

func TestLookPath_Missing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	assert.ErrorIs(t, LookPath(), ErrExecutableNotFound)
}
