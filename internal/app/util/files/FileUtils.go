package files

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"audio2text/internal/app/model"
)

// audioExtensions lists the input containers the batch scanner picks up.
var audioExtensions = map[string]bool{
	".mp3":  true,
	".m4a":  true,
	".wav":  true,
	".mp4":  true,
	".ogg":  true,
	".flac": true,
}

// CanonicalTranscriptPath derives the contractual transcript location for an
// input audio file: same directory, same base name, .txt extension.
func CanonicalTranscriptPath(audioPath string) string {
	return strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".txt"
}

// TempWavPath derives the sibling path used for a converted waveform.
func TempWavPath(audioPath string) string {
	return strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + "__tmp.wav"
}

// DiagnosticsLogPath derives the sibling log location used when a job fails
// without producing any transcript.
func DiagnosticsLogPath(audioPath string) string {
	return strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".log.txt"
}

// IsAudioFile reports whether the file name carries a supported container
// extension.
func IsAudioFile(name string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(name))]
}

// GetAllAudioFiles returns the supported audio files in inputDir, oldest
// first, so batch runs process recordings in the order they arrived.
func GetAllAudioFiles(inputDir string) ([]model.FileInfo, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, err
	}

	var fileInfos []model.FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !IsAudioFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		fileInfos = append(fileInfos, model.FileInfo{
			FullPath: filepath.Join(inputDir, entry.Name()),
			ModTime:  info.ModTime(),
			Name:     entry.Name(),
		})
	}

	sort.Slice(fileInfos, func(i, j int) bool {
		return fileInfos[i].ModTime.Before(fileInfos[j].ModTime)
	})

	return fileInfos, nil
}

// ReadOutputFile reads the specified output file and returns its text content.
func ReadOutputFile(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(content)), nil
}
