package check

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Info(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}
func (r *recordingLogger) Warn(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}
func (r *recordingLogger) Error(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func TestRunCheck_MissingFfmpeg(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	log := &recordingLogger{}
	ok := RunCheck(log)

	assert.False(t, ok)
	assert.Contains(t, log.lines, "ffmpeg not found on PATH")
}
