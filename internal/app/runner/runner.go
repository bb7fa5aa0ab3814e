package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"audio2text/internal/app/status"
)

// Result holds everything captured from one external process invocation.
// ExitCode is informational: the transcription loop deliberately ignores it
// because several whisper.cpp builds exit non-zero after writing a perfectly
// good transcript. A start failure or timeout is reported as exit code -1
// with the reason appended to Stderr.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes an external command and always returns captured output,
// regardless of how the process exited.
type Runner interface {
	Run(ctx context.Context, name string, args []string, timeout time.Duration) Result
}

// ExecRunner runs commands through os/exec, teeing stdout lines to a status
// sink as they arrive.
type ExecRunner struct {
	logger *zap.SugaredLogger
	sink   status.Sink
}

// NewExecRunner creates the production runner. A nil sink discards partial
// output.
func NewExecRunner(logger *zap.SugaredLogger, sink status.Sink) *ExecRunner {
	if sink == nil {
		sink = status.NopSink{}
	}
	return &ExecRunner{logger: logger, sink: sink}
}

// Run executes one command with a hard timeout and captures its output.
// It never returns an error: missing binaries, non-zero exits, and timeouts
// all come back as an ordinary Result.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string, timeout time.Duration) Result {
	runCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = io.MultiWriter(&stdout, newLineWriter(r.sink))
	cmd.Stderr = &stderr

	r.logger.Debugw("running command", "command", name, "args", strings.Join(args, " "))

	err := cmd.Run()
	result := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: 0,
	}
	if err != nil {
		result.ExitCode = -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			if result.Stderr != "" && !strings.HasSuffix(result.Stderr, "\n") {
				result.Stderr += "\n"
			}
			result.Stderr += err.Error()
		}
		r.logger.Debugw("command finished with error", "command", name, "exitCode", result.ExitCode, "err", err)
	}

	return result
}

// lineWriter buffers writes and forwards complete lines to the sink, so
// partial process output reaches the caller while the command is running.
type lineWriter struct {
	sink status.Sink
	buf  bytes.Buffer
}

func newLineWriter(sink status.Sink) *lineWriter {
	return &lineWriter{sink: sink}
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	for {
		data := w.buf.Bytes()
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 {
			break
		}
		line := strings.TrimRight(string(data[:idx]), "\r")
		w.buf.Next(idx + 1)
		if strings.TrimSpace(line) != "" {
			w.sink.Emit(line)
		}
	}
	return len(p), nil
}
