package transcribe

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"audio2text/internal/app/audio"
	apperrors "audio2text/internal/app/errors"
	"audio2text/internal/app/runner"
	"audio2text/internal/app/status"
	"audio2text/internal/app/util/files"
)

// attemptTimeout bounds one transcriber invocation. A timed-out attempt is
// treated like any other inconclusive one.
const attemptTimeout = 10 * time.Minute

// stdoutFallbackNote accompanies results whose content came from captured
// stdout rather than a file the tool wrote.
const stdoutFallbackNote = "Saved from stdout fallback."

// Request describes one transcription job. It is immutable once submitted.
type Request struct {
	AudioPath    string `json:"audioPath" validate:"required"`
	BinaryPath   string `json:"transcriberBinaryPath,omitempty"`
	ModelPath    string `json:"modelPath,omitempty"`
	Language     string `json:"language,omitempty"`
	NoTimestamps bool   `json:"noTimestamps,omitempty"`
}

// Result is the single externally observed artifact of a job besides the
// files it leaves on disk.
type Result struct {
	OK         bool   `json:"ok"`
	OutputPath string `json:"outputPath,omitempty"`
	Error      string `json:"error,omitempty"`
	Note       string `json:"note,omitempty"`
	Provenance string `json:"provenance,omitempty"`
}

// AttemptOutcome is the capture from the most recent invocation attempt.
// Exit status is deliberately absent: it is not a reliable success signal
// across transcriber builds and must never fail an attempt.
type AttemptOutcome struct {
	Stdout string
	Stderr string
}

// Job orchestrates one transcription: audio normalization, the ordered
// variant loop, output resolution, fallback, and cleanup.
type Job struct {
	run      runner.Runner
	preparer *audio.Preparer
	variants []Variant
	sink     status.Sink
	logger   *zap.SugaredLogger
	validate *validator.Validate
}

// NewJob wires a job orchestrator from its collaborators. A nil sink
// discards progress messages.
func NewJob(run runner.Runner, preparer *audio.Preparer, sink status.Sink, logger *zap.SugaredLogger) *Job {
	if sink == nil {
		sink = status.NopSink{}
	}
	return &Job{
		run:      run,
		preparer: preparer,
		variants: DefaultVariants(),
		sink:     sink,
		logger:   logger,
		validate: validator.New(),
	}
}

// Run executes the job and always terminates in exactly one of two
// classified outcomes. Errors never escape: they are converted into a
// failed Result at this boundary.
func (j *Job) Run(ctx context.Context, req Request) Result {
	result, err := j.execute(ctx, req)
	if err != nil {
		j.logger.Warnw("transcription job failed", "audio", req.AudioPath, "kind", apperrors.KindOf(err), "err", err)
		return Result{OK: false, Error: err.Error()}
	}
	return result
}

func (j *Job) execute(ctx context.Context, req Request) (Result, error) {
	if err := j.validate.Struct(req); err != nil {
		return Result{}, apperrors.Wrap(apperrors.KindInputNotFound, err, "invalid transcription request")
	}
	if _, err := os.Stat(req.AudioPath); err != nil {
		return Result{}, apperrors.Newf(apperrors.KindInputNotFound, "input audio not found: %s", req.AudioPath)
	}

	jobID := shortID()
	canonicalPath := files.CanonicalTranscriptPath(req.AudioPath)

	resolver, err := NewResolver(canonicalPath, j.logger)
	if err != nil {
		return Result{}, err
	}

	j.emit(jobID, "preparing audio: "+req.AudioPath)
	prepared, err := j.preparer.Prepare(ctx, req.AudioPath)
	if err != nil {
		return Result{}, err
	}
	if prepared.Temporary {
		defer func() {
			// Best-effort: a leftover temp waveform never fails the job.
			if err := os.Remove(prepared.Path); err != nil {
				j.logger.Warnw("could not remove temporary waveform", "path", prepared.Path, "err", err)
			}
		}()
	}

	binary := j.resolveBinary(req.BinaryPath)
	common := commonFlags(req)

	var last AttemptOutcome
	for _, variant := range j.variants {
		j.emit(jobID, "invoking transcriber ("+variant.Name+")")
		args := variant.Args(prepared.Path, canonicalPath, common)
		r := j.run.Run(ctx, binary, args, attemptTimeout)
		last = AttemptOutcome{Stdout: r.Stdout, Stderr: r.Stderr}

		discovered, err := resolver.Resolve()
		if err != nil {
			return Result{}, err
		}
		if discovered != nil {
			j.emit(jobID, "transcript ready: "+discovered.Path)
			return Result{
				OK:         true,
				OutputPath: discovered.Path,
				Provenance: string(discovered.Provenance),
			}, nil
		}
		j.logger.Debugw("attempt inconclusive", "variant", variant.Name)
	}

	discovered, err := resolver.FallbackFromStdout(last.Stdout)
	if err != nil {
		return Result{}, err
	}
	if discovered != nil {
		j.emit(jobID, "transcript salvaged from transcriber stdout")
		return Result{
			OK:         true,
			OutputPath: discovered.Path,
			Note:       stdoutFallbackNote,
			Provenance: string(discovered.Provenance),
		}, nil
	}

	logPath, err := WriteDiagnosticsLog(req.AudioPath, last.Stdout, last.Stderr)
	if err != nil {
		return Result{}, err
	}
	return Result{}, apperrors.Newf(apperrors.KindInvocationExhausted,
		"transcription produced no output after trying every invocation variant; diagnostics written to %s", logPath)
}

// resolveBinary falls back to the platform default executable name when the
// requested binary is absent or missing on disk.
func (j *Job) resolveBinary(requested string) string {
	requested = strings.TrimSpace(requested)
	if requested != "" {
		if _, err := os.Stat(requested); err == nil {
			return requested
		}
		if _, err := exec.LookPath(requested); err == nil {
			return requested
		}
		j.logger.Warnw("configured transcriber binary not found, using default", "requested", requested)
	}
	return DefaultBinaryName()
}

// DefaultBinaryName returns the platform-specific transcriber executable
// looked up on PATH when no binary path is configured.
func DefaultBinaryName() string {
	if runtime.GOOS == "windows" {
		return "whisper-cli.exe"
	}
	return "whisper-cli"
}

func (j *Job) emit(jobID, message string) {
	j.sink.Emit("[" + jobID + "] " + message)
}

func shortID() string {
	return uuid.NewString()[:8]
}
