package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds the runtime configuration for transcription jobs. Values
// come from ~/.a2t/config.yaml first; environment variables win over the
// file.
type Settings struct {
	WhisperBinary string `yaml:"whisper_binary"`
	WhisperModel  string `yaml:"whisper_model"`
	FFmpegBinary  string `yaml:"ffmpeg_binary"`
	FFprobeBinary string `yaml:"ffprobe_binary"`
	Language      string `yaml:"language"`
	NoTimestamps  bool   `yaml:"no_timestamps"`

	// Engine selects the transcription backend: "local" (default) or "openai".
	Engine string `yaml:"engine"`

	// DBBackend selects the history store: "sqlite" (default) or "postgres".
	DBBackend   string `yaml:"db_backend"`
	DBPath      string `yaml:"db_path"`
	PostgresDSN string `yaml:"postgres_dsn"`
}

// Load reads settings from the yaml config file when present and applies
// environment overrides.
func Load() (*Settings, error) {
	settings := &Settings{
		FFmpegBinary:  "ffmpeg",
		FFprobeBinary: "ffprobe",
		Engine:        "local",
		DBBackend:     "sqlite",
	}

	if path, err := configFilePath(); err == nil {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, settings); err != nil {
				return nil, fmt.Errorf("invalid config file %s: %w", path, err)
			}
		}
	}

	settings.WhisperBinary = envOr("A2T_WHISPER_BINARY", settings.WhisperBinary)
	settings.WhisperModel = envOr("A2T_WHISPER_MODEL", settings.WhisperModel)
	settings.FFmpegBinary = envOr("A2T_FFMPEG_BINARY", settings.FFmpegBinary)
	settings.FFprobeBinary = envOr("A2T_FFPROBE_BINARY", settings.FFprobeBinary)
	settings.Language = envOr("A2T_LANGUAGE", settings.Language)
	if envBool("A2T_NO_TIMESTAMPS") {
		settings.NoTimestamps = true
	}
	settings.Engine = envOr("A2T_ENGINE", settings.Engine)
	settings.DBBackend = envOr("A2T_DB_BACKEND", settings.DBBackend)
	settings.PostgresDSN = envOr("A2T_PG_DSN", settings.PostgresDSN)
	settings.DBPath = envOr("A2T_DB_PATH", settings.DBPath)

	if settings.DBPath == "" {
		dataDir, err := defaultDataDir()
		if err != nil {
			return nil, err
		}
		settings.DBPath = filepath.Join(dataDir, "transcription.db")
	}

	return settings, nil
}

func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".a2t", "config.yaml"), nil
}

func defaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate home directory: %w", err)
	}
	dir := filepath.Join(home, ".a2t")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create data directory %s: %w", dir, err)
	}
	return dir, nil
}
