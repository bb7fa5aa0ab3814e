//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"audio2text/internal/app/batch"
	"audio2text/internal/app/repository"
	"audio2text/internal/app/transcribe"
)

// InitializeJob builds the single-file job orchestrator with production
// dependencies.
func InitializeJob() *transcribe.Job {
	wire.Build(
		transcribe.NewJob,
		provideLogger,
		provideSink,
		provideRunner,
		provideSettings,
		providePreparer,
	)
	return &transcribe.Job{}
}

// InitializeProcessor builds the batch processor, engine selection and
// history backend included.
func InitializeProcessor(progressConfig batch.ProgressConfig) *batch.Processor {
	wire.Build(
		batch.NewProcessor,
		batch.NewProgressManager,
		transcribe.NewJob,
		provideTranscriber,
		provideTranscriptionDAO,
		provideLogger,
		provideSink,
		provideRunner,
		provideSettings,
		providePreparer,
	)
	return &batch.Processor{}
}

// InitializeDAO builds the configured history store for commands that only
// read or export records.
func InitializeDAO() repository.TranscriptionDAO {
	wire.Build(
		provideTranscriptionDAO,
		provideSettings,
	)
	return nil
}
