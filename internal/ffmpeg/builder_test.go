package ffmpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/mov2mp4/internal/config"
)

func buildCfg() config.Config {
	return config.Default()
}

func count(args []string, want string) int {
	n := 0
	for _, a := range args {
		if a == want {
			n++
		}
	}
	return n
}

func TestBuild_EncodeMode(t *testing.T) {
	for _, preset := range config.Presets {
		for _, crf := range []int{0, 18, 23, 51} {
			cfg := buildCfg()
			cfg.CRF = crf
			cfg.Preset = preset

			args := Build(&cfg, "in.mov", "out.mp4")

			// Exactly one video and one audio codec directive, never copy.
			assert.Equal(t, 1, count(args, "-c:v"), "preset=%s crf=%d", preset, crf)
			assert.Equal(t, 1, count(args, "-c:a"), "preset=%s crf=%d", preset, crf)
			assert.Equal(t, 0, count(args, "-c"), "preset=%s crf=%d", preset, crf)
			assert.Contains(t, args, "libx264")
			assert.Contains(t, args, "aac")
		}
	}
}

func TestBuild_CopyMode(t *testing.T) {
	cfg := buildCfg()
	cfg.CopyStreams = true

	args := Build(&cfg, "in.mov", "out.mp4")

	assert.Equal(t, 1, count(args, "-c"))
	assert.Equal(t, 0, count(args, "-c:v"))
	assert.Equal(t, 0, count(args, "-c:a"))
	assert.NotContains(t, args, "libx264")
	assert.NotContains(t, args, "-crf")
	assert.NotContains(t, args, "-preset")
}

func TestBuild_AlwaysFaststartAndSubtitleCopy(t *testing.T) {
	for _, copyMode := range []bool{false, true} {
		cfg := buildCfg()
		cfg.CopyStreams = copyMode

		args := Build(&cfg, "in.mov", "out.mp4")

		assert.Contains(t, args, "-movflags")
		assert.Contains(t, args, "+faststart")
		assert.Equal(t, 1, count(args, "-c:s"), "copy=%v", copyMode)
	}
}

func TestBuild_Ordering(t *testing.T) {
	cfg := buildCfg()
	args := Build(&cfg, "clip.mov", "clip.mp4")

	require.Equal(t, "ffmpeg", args[0])
	require.Equal(t, "clip.mp4", args[len(args)-1])

	// -i precedes the codec section.
	iIdx := indexOf(args, "-i")
	require.GreaterOrEqual(t, iIdx, 0)
	assert.Equal(t, "clip.mov", args[iIdx+1])
	assert.Greater(t, indexOf(args, "-c:v"), iIdx)
}

func TestBuild_PassthroughSuffix(t *testing.T) {
	extra := []string{"-t", "30", "-vf", "scale=1280:-2"}
	cfg := buildCfg()
	cfg.ExtraArgs = extra

	args := Build(&cfg, "in.mov", "out.mp4")

	// The passthrough args are an unbroken, order-preserving block sitting
	// directly before the output path.
	tail := args[len(args)-1-len(extra) : len(args)-1]
	assert.Equal(t, extra, tail)
	assert.Equal(t, "out.mp4", args[len(args)-1])
}

func TestBuild_VerboseLoglevel(t *testing.T) {
	cfg := buildCfg()
	args := Build(&cfg, "in.mov", "out.mp4")
	assert.Equal(t, "error", args[indexOf(args, "-loglevel")+1])

	cfg.Verbose = true
	args = Build(&cfg, "in.mov", "out.mp4")
	assert.Equal(t, "info", args[indexOf(args, "-loglevel")+1])
}

func indexOf(args []string, want string) int {
	for i, a := range args {
		if a == want {
			return i
		}
	}
	return -1
}
