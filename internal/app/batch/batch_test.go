package batch

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"audio2text/internal/app/audio"
	"audio2text/internal/app/model"
	"audio2text/internal/app/runner"
)

type fakeTranscriber struct {
	calls []string
	fail  map[string]bool
}

func (f *fakeTranscriber) Transcript(inputFilePath string) (string, error) {
	f.calls = append(f.calls, filepath.Base(inputFilePath))
	if f.fail[filepath.Base(inputFilePath)] {
		return "", errors.New("engine exploded")
	}
	return "transcript of " + filepath.Base(inputFilePath), nil
}

type recordedRow struct {
	fileName      string
	transcription string
	hasError      int
	errorMessage  string
}

type fakeDAO struct {
	processed map[string]int
	records   []recordedRow
}

func (f *fakeDAO) Close() error { return nil }

func (f *fakeDAO) GetAllByUser(string) ([]model.Transcription, error) { return nil, nil }

func (f *fakeDAO) CheckIfFileProcessed(fileName string) (int, error) {
	if id, ok := f.processed[fileName]; ok {
		return id, nil
	}
	return 0, sql.ErrNoRows
}

func (f *fakeDAO) RecordToDB(_, _, fileName, _ string, _ int, transcription string,
	_ string, _ time.Time, hasError int, errorMessage string) error {
	f.records = append(f.records, recordedRow{
		fileName:      fileName,
		transcription: transcription,
		hasError:      hasError,
		errorMessage:  errorMessage,
	})
	return nil
}

type stubRunner struct{}

func (stubRunner) Run(context.Context, string, []string, time.Duration) runner.Result {
	return runner.Result{Stdout: "3.0"}
}

func writeAudioFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for i, name := range names {
		path := filepath.Join(root, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		// Keep ordering deterministic.
		mod := time.Now().Add(time.Duration(i-len(names)) * time.Minute)
		require.NoError(t, os.Chtimes(path, mod, mod))
	}
}

func newTestProcessor(transcriber *fakeTranscriber, dao *fakeDAO) *Processor {
	log := zap.NewNop().Sugar()
	preparer := audio.NewPreparer("ffmpeg", "ffprobe", stubRunner{}, log)
	return NewProcessor(transcriber, dao, preparer, NewProgressManager(ProgressConfig{Enabled: false}), log)
}

func TestDoSkipsProcessedFiles(t *testing.T) {
	root := t.TempDir()
	writeAudioFiles(t, root, "old.mp3", "new.mp3")

	transcriber := &fakeTranscriber{}
	dao := &fakeDAO{processed: map[string]int{"old.mp3": 1}}
	p := newTestProcessor(transcriber, dao)

	require.NoError(t, p.Do("alice", root, 500))

	assert.Equal(t, []string{"new.mp3"}, transcriber.calls)
	require.Len(t, dao.records, 1)
	assert.Equal(t, "new.mp3", dao.records[0].fileName)
	assert.Equal(t, 0, dao.records[0].hasError)
	assert.Equal(t, "transcript of new.mp3", dao.records[0].transcription)
}

func TestDoHonorsConvertCount(t *testing.T) {
	root := t.TempDir()
	writeAudioFiles(t, root, "a.mp3", "b.mp3", "c.mp3")

	transcriber := &fakeTranscriber{}
	dao := &fakeDAO{}
	p := newTestProcessor(transcriber, dao)

	require.NoError(t, p.Do("alice", root, 2))

	// Oldest first, capped at the requested count.
	assert.Equal(t, []string{"a.mp3", "b.mp3"}, transcriber.calls)
}

func TestDoRecordsFailuresAndContinues(t *testing.T) {
	root := t.TempDir()
	writeAudioFiles(t, root, "bad.mp3", "good.mp3")

	transcriber := &fakeTranscriber{fail: map[string]bool{"bad.mp3": true}}
	dao := &fakeDAO{}
	p := newTestProcessor(transcriber, dao)

	require.NoError(t, p.Do("alice", root, 500))

	require.Len(t, dao.records, 2)
	assert.Equal(t, 1, dao.records[0].hasError)
	assert.Contains(t, dao.records[0].errorMessage, "engine exploded")
	assert.Equal(t, 0, dao.records[1].hasError)
}

func TestDoMissingDirectory(t *testing.T) {
	p := newTestProcessor(&fakeTranscriber{}, &fakeDAO{})
	err := p.Do("alice", filepath.Join(t.TempDir(), "nope"), 500)
	assert.Error(t, err)
}
