package model

import "time"

type Transcription struct {
	ID                 int
	User               string
	LastConversionTime time.Time
	FileName           string
	TranscriptPath     string
	AudioDuration      float64
	Transcription      string
	Provenance         string
	ErrorMessage       string
}
