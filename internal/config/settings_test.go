package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	for _, key := range []string{
		"A2T_WHISPER_BINARY", "A2T_WHISPER_MODEL", "A2T_FFMPEG_BINARY", "A2T_FFPROBE_BINARY",
		"A2T_LANGUAGE", "A2T_NO_TIMESTAMPS", "A2T_ENGINE", "A2T_DB_BACKEND", "A2T_PG_DSN", "A2T_DB_PATH",
	} {
		t.Setenv(key, "")
	}
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolateHome(t)

	settings, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ffmpeg", settings.FFmpegBinary)
	assert.Equal(t, "ffprobe", settings.FFprobeBinary)
	assert.Equal(t, "local", settings.Engine)
	assert.Equal(t, "sqlite", settings.DBBackend)
	assert.Equal(t, filepath.Join(home, ".a2t", "transcription.db"), settings.DBPath)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := isolateHome(t)
	configDir := filepath.Join(home, ".a2t")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	configYAML := `
whisper_binary: /opt/whisper/main
whisper_model: /opt/whisper/models/ggml-base.bin
language: en
no_timestamps: true
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configYAML), 0o644))

	settings, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/opt/whisper/main", settings.WhisperBinary)
	assert.Equal(t, "/opt/whisper/models/ggml-base.bin", settings.WhisperModel)
	assert.Equal(t, "en", settings.Language)
	assert.True(t, settings.NoTimestamps)
}

func TestEnvOverridesConfigFile(t *testing.T) {
	home := isolateHome(t)
	configDir := filepath.Join(home, ".a2t")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"),
		[]byte("whisper_binary: /from/file\nlanguage: de\n"), 0o644))

	t.Setenv("A2T_WHISPER_BINARY", "/from/env")
	t.Setenv("A2T_DB_BACKEND", "postgres")
	t.Setenv("A2T_PG_DSN", "user=a2t dbname=a2t sslmode=disable")

	settings, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/from/env", settings.WhisperBinary)
	assert.Equal(t, "de", settings.Language, "values absent from env stay file-backed")
	assert.Equal(t, "postgres", settings.DBBackend)
	assert.Equal(t, "user=a2t dbname=a2t sslmode=disable", settings.PostgresDSN)
}

func TestLoadInvalidConfigFile(t *testing.T) {
	home := isolateHome(t)
	configDir := filepath.Join(home, ".a2t")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"),
		[]byte("whisper_binary: [unterminated"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}
