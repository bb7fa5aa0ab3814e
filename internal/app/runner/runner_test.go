package runner

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type captureSink struct {
	lines []string
}

func (c *captureSink) Emit(message string) {
	c.lines = append(c.lines, message)
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test relies on sh")
	}
}

func TestExecRunnerCapturesOutput(t *testing.T) {
	skipOnWindows(t)

	sink := &captureSink{}
	r := NewExecRunner(zap.NewNop().Sugar(), sink)

	result := r.Run(context.Background(), "sh", []string{"-c", "echo out-line; echo err-line 1>&2"}, time.Minute)

	assert.Equal(t, 0, result.ExitCode)
	assert.Contains(t, result.Stdout, "out-line")
	assert.Contains(t, result.Stderr, "err-line")
	require.Len(t, sink.lines, 1)
	assert.Equal(t, "out-line", sink.lines[0])
}

func TestExecRunnerNonZeroExitIsNotAnError(t *testing.T) {
	skipOnWindows(t)

	r := NewExecRunner(zap.NewNop().Sugar(), nil)

	result := r.Run(context.Background(), "sh", []string{"-c", "echo partial; exit 3"}, time.Minute)

	assert.Equal(t, 3, result.ExitCode)
	assert.Contains(t, result.Stdout, "partial", "output before a bad exit must still be captured")
}

func TestExecRunnerMissingBinary(t *testing.T) {
	r := NewExecRunner(zap.NewNop().Sugar(), nil)

	result := r.Run(context.Background(), "definitely-not-a-binary-a2t", nil, time.Minute)

	assert.Equal(t, -1, result.ExitCode)
	assert.NotEmpty(t, result.Stderr, "the start failure reason lands in stderr")
}

func TestExecRunnerTimeout(t *testing.T) {
	skipOnWindows(t)

	r := NewExecRunner(zap.NewNop().Sugar(), nil)

	start := time.Now()
	result := r.Run(context.Background(), "sh", []string{"-c", "sleep 5"}, 100*time.Millisecond)

	assert.Less(t, time.Since(start), 3*time.Second)
	assert.NotEqual(t, 0, result.ExitCode)
}

func TestLineWriterSplitsLines(t *testing.T) {
	sink := &captureSink{}
	w := newLineWriter(sink)

	w.Write([]byte("first li"))
	w.Write([]byte("ne\nsecond line\r\npartial"))

	assert.Equal(t, []string{"first line", "second line"}, sink.lines)

	w.Write([]byte(" tail\n"))
	assert.Equal(t, []string{"first line", "second line", "partial tail"}, sink.lines)
}
