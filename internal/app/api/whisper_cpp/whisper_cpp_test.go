package whisper_cpp

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"audio2text/internal/app/audio"
	"audio2text/internal/app/runner"
	"audio2text/internal/app/status"
	"audio2text/internal/app/transcribe"
)

type fakeRunner struct {
	run func(name string, args []string) runner.Result
}

func (f *fakeRunner) Run(_ context.Context, name string, args []string, _ time.Duration) runner.Result {
	if f.run == nil {
		return runner.Result{}
	}
	return f.run(name, args)
}

func argValue(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func TestLocalTranscriberReturnsTranscriptText(t *testing.T) {
	root := t.TempDir()
	audioPath := filepath.Join(root, "jfk.wav")
	require.NoError(t, os.WriteFile(audioPath, []byte("audio"), 0o644))
	binary := filepath.Join(root, "whisper-cli")
	require.NoError(t, os.WriteFile(binary, []byte("#!/bin/sh\n"), 0o755))

	fake := &fakeRunner{
		run: func(name string, args []string) runner.Result {
			base := argValue(args, "-of")
			require.NoError(t, os.WriteFile(base+".txt", []byte(" ask not what your country can do for you \n"), 0o644))
			return runner.Result{}
		},
	}

	log := zap.NewNop().Sugar()
	job := transcribe.NewJob(fake, audio.NewPreparer("ffmpeg", "ffprobe", fake, log), status.NopSink{}, log)
	lt := NewLocalTranscriber(job, binary, "", "", false)

	text, err := lt.Transcript(audioPath)
	require.NoError(t, err)
	assert.Equal(t, "ask not what your country can do for you", text)
}

func TestLocalTranscriberPropagatesJobFailure(t *testing.T) {
	root := t.TempDir()
	audioPath := filepath.Join(root, "silent.wav")
	require.NoError(t, os.WriteFile(audioPath, []byte("audio"), 0o644))
	binary := filepath.Join(root, "whisper-cli")
	require.NoError(t, os.WriteFile(binary, []byte("#!/bin/sh\n"), 0o755))

	fake := &fakeRunner{}

	log := zap.NewNop().Sugar()
	job := transcribe.NewJob(fake, audio.NewPreparer("ffmpeg", "ffprobe", fake, log), status.NopSink{}, log)
	lt := NewLocalTranscriber(job, binary, "", "", false)

	_, err := lt.Transcript(audioPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "diagnostics written to")
}
