package whisper_cpp

import (
	"context"
	"errors"

	"audio2text/internal/app/transcribe"
	"audio2text/internal/app/util/files"
)

// LocalTranscriber implements local transcription on top of the job
// orchestrator, using a native whisper.cpp style binary.
type LocalTranscriber struct {
	job          *transcribe.Job
	binaryPath   string
	modelPath    string
	language     string
	noTimestamps bool
}

// NewLocalTranscriber creates a new instance of LocalTranscriber.
func NewLocalTranscriber(job *transcribe.Job, binaryPath, modelPath, language string, noTimestamps bool) *LocalTranscriber {
	return &LocalTranscriber{
		job:          job,
		binaryPath:   binaryPath,
		modelPath:    modelPath,
		language:     language,
		noTimestamps: noTimestamps,
	}
}

// Transcript runs one full transcription job for the input file and returns
// the transcript text.
func (lt *LocalTranscriber) Transcript(inputFilePath string) (string, error) {
	result := lt.job.Run(context.Background(), transcribe.Request{
		AudioPath:    inputFilePath,
		BinaryPath:   lt.binaryPath,
		ModelPath:    lt.modelPath,
		Language:     lt.language,
		NoTimestamps: lt.noTimestamps,
	})
	if !result.OK {
		return "", errors.New(result.Error)
	}

	return files.ReadOutputFile(result.OutputPath)
}
