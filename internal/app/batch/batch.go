package batch

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"audio2text/internal/app/api"
	"audio2text/internal/app/audio"
	"audio2text/internal/app/model"
	"audio2text/internal/app/repository"
	"audio2text/internal/app/util/files"
)

// Processor walks a directory of recordings and transcribes the ones not
// yet in the history database. Files are processed strictly one at a time:
// the heuristic output resolution inside a job relies on nothing else
// touching the audio directory while it runs.
type Processor struct {
	transcriber api.Transcriber
	db          repository.TranscriptionDAO
	preparer    *audio.Preparer
	progress    *ProgressManager
	logger      *zap.SugaredLogger
}

// NewProcessor wires a batch processor.
func NewProcessor(transcriber api.Transcriber, db repository.TranscriptionDAO, preparer *audio.Preparer,
	progress *ProgressManager, logger *zap.SugaredLogger) *Processor {
	return &Processor{
		transcriber: transcriber,
		db:          db,
		preparer:    preparer,
		progress:    progress,
		logger:      logger,
	}
}

func (p *Processor) Close() error {
	return p.db.Close()
}

// Do transcribes up to convertCount unprocessed audio files from inputDir,
// recording every outcome under the given user.
func (p *Processor) Do(userNickname string, inputDir string, convertCount int) error {
	fileInfos, err := files.GetAllAudioFiles(inputDir)
	if err != nil {
		return fmt.Errorf("failed to read input directory: %v", err)
	}

	filesToProcess := p.filterUnProcessedFiles(fileInfos, convertCount)
	if len(filesToProcess) == 0 {
		fmt.Println("nothing to do: all audio files in this directory have been processed")
		return nil
	}

	bar := p.progress.CreateBar(len(filesToProcess), "transcribing")
	for _, file := range filesToProcess {
		if err := p.processFile(userNickname, inputDir, file); err != nil {
			p.logger.Warnw("transcription failed", "file", file.Name, "err", err)
		}
		bar.Increment()
	}
	p.progress.Wait()
	return nil
}

func (p *Processor) filterUnProcessedFiles(fileInfos []model.FileInfo, convertCount int) []model.FileInfo {
	filesToProcess := make([]model.FileInfo, 0, convertCount)

	for _, fileInfo := range fileInfos {
		// Check if the file has been processed
		id, err := p.db.CheckIfFileProcessed(fileInfo.Name)
		if err == nil {
			fmt.Printf("File '%s' with id '%d' has already been processed, skipping...\n", fileInfo.Name, id)
			continue
		}

		filesToProcess = append(filesToProcess, fileInfo)
		if len(filesToProcess) >= convertCount {
			break
		}
	}
	return filesToProcess
}

func (p *Processor) processFile(userNickname, inputDir string, file model.FileInfo) error {
	fmt.Printf("Processing file '%s'\n", file.Name)

	duration, err := p.preparer.Duration(context.Background(), file.FullPath)
	if err != nil {
		// Advisory only; a recording with an unreadable header can still transcribe.
		p.logger.Debugw("could not probe audio duration", "file", file.Name, "err", err)
		duration = 0
	}

	transcriptPath := files.CanonicalTranscriptPath(file.FullPath)
	transcription, err := p.transcriber.Transcript(file.FullPath)
	if err != nil {
		if dbErr := p.db.RecordToDB(userNickname, inputDir, file.Name, "", duration, "",
			"", time.Now(), 1, fmt.Sprintf("Transcription error: %v", err)); dbErr != nil {
			p.logger.Warnw("could not record failed job", "file", file.Name, "err", dbErr)
		}
		return fmt.Errorf("transcription error: %v", err)
	}

	if err := p.db.RecordToDB(userNickname, inputDir, file.Name, transcriptPath, duration, transcription,
		"", time.Now(), 0, ""); err != nil {
		p.logger.Warnw("could not record completed job", "file", file.Name, "err", err)
	}

	fmt.Printf("Transcription completed for file '%s'\n", file.Name)
	return nil
}
