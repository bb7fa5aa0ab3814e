package transcribe

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	apperrors "audio2text/internal/app/errors"
	"audio2text/internal/app/model"
)

// Provenance records how the canonical transcript content was obtained.
type Provenance string

const (
	// ProvenanceDirect means the tool wrote the canonical path itself.
	ProvenanceDirect Provenance = "direct"
	// ProvenanceHeuristic means the newest text file created during the job
	// was claimed as the transcript.
	ProvenanceHeuristic Provenance = "heuristic"
	// ProvenanceStdoutFallback means no file appeared and the transcript was
	// salvaged from captured stdout.
	ProvenanceStdoutFallback Provenance = "stdout-fallback"
)

// DiscoveredOutput is a resolved transcript with its provenance.
type DiscoveredOutput struct {
	Path       string
	Provenance Provenance
}

// Resolver locates transcript output after each invocation attempt. The
// directory snapshot is taken once, before the first attempt, and is
// deliberately not refreshed between attempts: a stray text file created by
// an early variant stays out of the snapshot and can be claimed by a later
// one.
type Resolver struct {
	canonicalPath string
	dir           string
	snapshot      map[string]struct{}
	logger        *zap.SugaredLogger
}

// NewResolver snapshots the pre-existing .txt files next to the audio input.
func NewResolver(canonicalPath string, logger *zap.SugaredLogger) (*Resolver, error) {
	dir := filepath.Dir(canonicalPath)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.KindIO, err, "cannot list audio directory %s", dir)
	}

	snapshot := make(map[string]struct{})
	for _, entry := range entries {
		if !entry.IsDir() && isTextOutput(entry.Name()) {
			snapshot[entry.Name()] = struct{}{}
		}
	}

	return &Resolver{
		canonicalPath: canonicalPath,
		dir:           dir,
		snapshot:      snapshot,
		logger:        logger,
	}, nil
}

// Resolve checks whether usable transcript content exists after an attempt.
// Direct match on the canonical path wins; otherwise the newest text file
// not present in the snapshot is claimed. A nil result means the attempt was
// inconclusive.
func (r *Resolver) Resolve() (*DiscoveredOutput, error) {
	if nonEmptyFile(r.canonicalPath) {
		return &DiscoveredOutput{Path: r.canonicalPath, Provenance: ProvenanceDirect}, nil
	}

	candidate, ok := r.newestNewTextFile()
	if !ok {
		return nil, nil
	}

	content, err := os.ReadFile(candidate.FullPath)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.KindIO, err, "cannot read discovered transcript %s", candidate.FullPath)
	}
	if err := os.WriteFile(r.canonicalPath, content, 0o644); err != nil {
		return nil, apperrors.Wrapf(apperrors.KindIO, err, "cannot write transcript to %s", r.canonicalPath)
	}

	if filepath.Clean(candidate.FullPath) != filepath.Clean(r.canonicalPath) {
		// Best-effort removal of the superseded file.
		if err := os.Remove(candidate.FullPath); err != nil {
			r.logger.Warnw("could not remove superseded transcript", "path", candidate.FullPath, "err", err)
		}
	}

	return &DiscoveredOutput{Path: r.canonicalPath, Provenance: ProvenanceHeuristic}, nil
}

// FallbackFromStdout persists the last captured stdout as the transcript
// when every variant failed to produce a file.
func (r *Resolver) FallbackFromStdout(stdout string) (*DiscoveredOutput, error) {
	if strings.TrimSpace(stdout) == "" {
		return nil, nil
	}
	if err := os.WriteFile(r.canonicalPath, []byte(stdout), 0o644); err != nil {
		return nil, apperrors.Wrapf(apperrors.KindIO, err, "cannot write stdout transcript to %s", r.canonicalPath)
	}
	return &DiscoveredOutput{Path: r.canonicalPath, Provenance: ProvenanceStdoutFallback}, nil
}

// newestNewTextFile finds the most recently modified text file that was not
// present when the job started.
func (r *Resolver) newestNewTextFile() (model.FileInfo, bool) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		r.logger.Warnw("cannot re-list audio directory", "dir", r.dir, "err", err)
		return model.FileInfo{}, false
	}

	var candidates []model.FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !isTextOutput(entry.Name()) {
			continue
		}
		if _, existed := r.snapshot[entry.Name()]; existed {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.Size() == 0 {
			continue
		}
		candidates = append(candidates, model.FileInfo{
			FullPath: filepath.Join(r.dir, entry.Name()),
			ModTime:  info.ModTime(),
			Name:     entry.Name(),
		})
	}
	if len(candidates) == 0 {
		return model.FileInfo{}, false
	}

	newest := lo.MaxBy(candidates, func(a, b model.FileInfo) bool {
		return a.ModTime.After(b.ModTime)
	})
	return newest, true
}

func isTextOutput(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".txt")
}

func nonEmptyFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir() && info.Size() > 0
}
