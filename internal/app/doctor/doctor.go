package doctor

import (
	"fmt"
	"os"
	"os/exec"
	"time"
)

// Status is the outcome of one environment check.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusWarn Status = "warn"
)

// Item is one tool or path check with an optional remediation hint.
type Item struct {
	Name    string
	Status  Status
	Message string
	Hint    string
}

// Report aggregates all environment checks.
type Report struct {
	GeneratedAt time.Time
	HasFailures bool
	Items       []Item
}

// Checker validates that the external tools a transcription job shells out
// to are actually present before any job runs.
type Checker struct {
	lookPath func(string) (string, error)
	stat     func(string) (os.FileInfo, error)
}

// NewChecker builds a checker using real OS dependencies.
func NewChecker() *Checker {
	return &Checker{
		lookPath: exec.LookPath,
		stat:     os.Stat,
	}
}

// NewCheckerForTests builds a checker with injectable lookups.
func NewCheckerForTests(lookPath func(string) (string, error), stat func(string) (os.FileInfo, error)) *Checker {
	return &Checker{lookPath: lookPath, stat: stat}
}

// Run checks the converter, the prober, the transcriber binary, and the
// model file, and returns a combined report.
func (c *Checker) Run(ffmpegPath, ffprobePath, whisperBinary, modelPath string) Report {
	items := []Item{
		c.checkTool("ffmpeg", ffmpegPath),
		c.checkTool("ffprobe", ffprobePath),
		c.checkTool("transcriber", whisperBinary),
		c.checkModel(modelPath),
	}

	hasFailures := false
	for _, item := range items {
		if item.Status == StatusFail {
			hasFailures = true
			break
		}
	}

	return Report{
		GeneratedAt: time.Now().UTC(),
		HasFailures: hasFailures,
		Items:       items,
	}
}

// checkTool verifies an executable exists on disk or on PATH.
func (c *Checker) checkTool(name, path string) Item {
	if path == "" {
		return Item{
			Name:    name,
			Status:  StatusFail,
			Message: "no binary configured",
			Hint:    "Set the binary path in ~/.a2t/config.yaml or the matching A2T_* environment variable.",
		}
	}
	if _, err := c.stat(path); err == nil {
		return Item{Name: name, Status: StatusPass, Message: fmt.Sprintf("found at %s", path)}
	}
	if resolved, err := c.lookPath(path); err == nil {
		return Item{Name: name, Status: StatusPass, Message: fmt.Sprintf("found at %s", resolved)}
	}
	return Item{
		Name:    name,
		Status:  StatusFail,
		Message: fmt.Sprintf("not found: %s", path),
		Hint:    "Install it and ensure the binary is available on PATH before starting a transcription job.",
	}
}

// checkModel validates the configured model file. A missing model is a
// warning rather than a failure: some transcriber builds embed a default.
func (c *Checker) checkModel(modelPath string) Item {
	if modelPath == "" {
		return Item{
			Name:    "model",
			Status:  StatusWarn,
			Message: "no model file configured",
			Hint:    "Set A2T_WHISPER_MODEL to a ggml .bin/.gguf model for reproducible results.",
		}
	}
	info, err := c.stat(modelPath)
	if err != nil {
		return Item{
			Name:    "model",
			Status:  StatusFail,
			Message: fmt.Sprintf("model file missing: %s", modelPath),
			Hint:    "Download a whisper.cpp model and point A2T_WHISPER_MODEL at it.",
		}
	}
	if info.Size() == 0 {
		return Item{
			Name:    "model",
			Status:  StatusFail,
			Message: fmt.Sprintf("model file is empty: %s", modelPath),
		}
	}
	return Item{Name: "model", Status: StatusPass, Message: fmt.Sprintf("found at %s", modelPath)}
}
