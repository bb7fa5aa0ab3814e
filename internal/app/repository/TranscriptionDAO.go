package repository

import (
	"time"

	"audio2text/internal/app/model"
)

// TranscriptionDAO persists job history so batch runs can skip files that
// were already transcribed.
type TranscriptionDAO interface {
	Close() error

	GetAllByUser(userNickname string) ([]model.Transcription, error)

	CheckIfFileProcessed(fileName string) (int, error)

	RecordToDB(user, inputDir, fileName, transcriptPath string, audioDuration int, transcription string,
		provenance string, lastConversionTime time.Time, hasError int, errorMessage string) error
}
