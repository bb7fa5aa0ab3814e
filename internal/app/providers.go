package app

import (
	"log"
	"os"

	"go.uber.org/zap"

	"audio2text/internal/app/api"
	"audio2text/internal/app/api/openai"
	"audio2text/internal/app/api/openai/whisper"
	"audio2text/internal/app/api/whisper_cpp"
	"audio2text/internal/app/audio"
	"audio2text/internal/app/repository"
	"audio2text/internal/app/repository/pg"
	"audio2text/internal/app/repository/sqlite"
	"audio2text/internal/app/runner"
	"audio2text/internal/app/status"
	"audio2text/internal/app/transcribe"
	"audio2text/internal/app/util/logger"
	"audio2text/internal/config"
)

func provideLogger() *zap.SugaredLogger {
	return logger.MustNewSugared(os.Getenv("A2T_DEBUG") != "")
}

func provideSink() status.Sink {
	return status.NewConsoleSink(os.Stderr)
}

func provideRunner(log *zap.SugaredLogger, sink status.Sink) runner.Runner {
	return runner.NewExecRunner(log, sink)
}

func provideSettings() *config.Settings {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	return settings
}

func providePreparer(settings *config.Settings, run runner.Runner, zlog *zap.SugaredLogger) *audio.Preparer {
	return audio.NewPreparer(settings.FFmpegBinary, settings.FFprobeBinary, run, zlog)
}

// provideTranscriber selects the engine: native whisper.cpp conversion by
// default, or OpenAI's remote service when configured (requires
// OPENAI_API_KEY).
func provideTranscriber(settings *config.Settings, job *transcribe.Job) api.Transcriber {
	if settings.Engine == "openai" {
		return whisper.NewRemoteTranscriber(openai.GetClient())
	}
	return whisper_cpp.NewLocalTranscriber(job, settings.WhisperBinary, settings.WhisperModel,
		settings.Language, settings.NoTimestamps)
}

func provideTranscriptionDAO(settings *config.Settings) repository.TranscriptionDAO {
	if settings.DBBackend == "postgres" {
		db, err := pg.NewPostgresDB(settings.PostgresDSN)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		return db
	}

	db, err := sqlite.NewSQLiteDB(settings.DBPath)
	if err != nil {
		log.Fatalf("failed to open history database: %v", err)
	}
	return db
}
