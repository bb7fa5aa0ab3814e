package audio

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "audio2text/internal/app/errors"
	"audio2text/internal/app/runner"
	"audio2text/internal/app/util/files"
)

const (
	wavExt          = ".wav"
	convertTimeout  = 5 * time.Minute
	probeTimeout    = 30 * time.Second
	stderrTailLines = 8
)

// PreparedAudio is the waveform handed to the transcriber. Temporary marks a
// converted sibling file the job owns and must delete; the original input is
// never marked temporary.
type PreparedAudio struct {
	Path      string
	Temporary bool
}

// Preparer normalizes input audio to the 16 kHz mono WAV the transcription
// engine expects, shelling out to ffmpeg when the source is anything else.
type Preparer struct {
	ffmpegPath  string
	ffprobePath string
	run         runner.Runner
	logger      *zap.SugaredLogger
}

// NewPreparer creates a preparer using the given converter binaries.
func NewPreparer(ffmpegPath, ffprobePath string, run runner.Runner, logger *zap.SugaredLogger) *Preparer {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Preparer{ffmpegPath: ffmpegPath, ffprobePath: ffprobePath, run: run, logger: logger}
}

// Prepare returns the waveform path to feed the transcriber. A .wav input is
// passed through untouched; anything else is converted to a sibling
// <base>__tmp.wav at 16 kHz mono PCM.
func (p *Preparer) Prepare(ctx context.Context, inputPath string) (PreparedAudio, error) {
	if strings.EqualFold(filepath.Ext(inputPath), wavExt) {
		return PreparedAudio{Path: inputPath, Temporary: false}, nil
	}

	outPath := files.TempWavPath(inputPath)
	args := []string{
		"-hide_banner",
		"-nostdin",
		"-y",
		"-i", inputPath,
		"-vn",
		"-ac", "1",
		"-ar", "16000",
		"-acodec", "pcm_s16le",
		outPath,
	}

	p.logger.Infow("converting input to 16kHz mono wav", "input", inputPath, "output", outPath)
	result := p.run.Run(ctx, p.ffmpegPath, args, convertTimeout)
	if result.ExitCode != 0 {
		return PreparedAudio{}, apperrors.Newf(apperrors.KindConversion,
			"audio conversion failed (exit %d): %s", result.ExitCode, stderrTail(result.Stderr))
	}

	info, err := os.Stat(outPath)
	if err != nil || info.Size() == 0 {
		return PreparedAudio{}, apperrors.Newf(apperrors.KindConversion,
			"converter exited cleanly but produced no usable file at %s: %s", outPath, stderrTail(result.Stderr))
	}

	return PreparedAudio{Path: outPath, Temporary: true}, nil
}

// Duration probes the audio length in whole seconds. It is advisory: history
// records carry it, but a probe failure never fails a job.
func (p *Preparer) Duration(ctx context.Context, filePath string) (int, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		filePath,
	}
	result := p.run.Run(ctx, p.ffprobePath, args, probeTimeout)
	if result.ExitCode != 0 {
		return 0, apperrors.Newf(apperrors.KindIO, "ffprobe failed: %s", stderrTail(result.Stderr))
	}

	durationFloat, err := strconv.ParseFloat(strings.TrimSpace(result.Stdout), 64)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.KindIO, err, "unexpected ffprobe duration output")
	}
	return int(math.Round(durationFloat)), nil
}

// stderrTail keeps the last few diagnostic lines so error messages stay
// readable when ffmpeg dumps its full configuration banner.
func stderrTail(stderr string) string {
	trimmed := strings.TrimSpace(stderr)
	if trimmed == "" {
		return "(no converter output)"
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) > stderrTailLines {
		lines = lines[len(lines)-stderrTailLines:]
	}
	return strings.Join(lines, "\n")
}
