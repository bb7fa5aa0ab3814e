package transcribe

import (
	"fmt"
	"os"
	"strings"

	apperrors "audio2text/internal/app/errors"
	"audio2text/internal/app/util/files"
)

const emptyCapture = "(no output captured)"

// WriteDiagnosticsLog persists the last captured stdout and stderr next to
// the input audio so a failed job can be inspected. It is called only after
// every variant and the stdout fallback came up empty.
func WriteDiagnosticsLog(audioPath, stdout, stderr string) (string, error) {
	logPath := files.DiagnosticsLogPath(audioPath)
	content := fmt.Sprintf(
		"=== transcriber stdout ===\n%s\n\n=== transcriber stderr ===\n%s\n",
		orPlaceholder(stdout),
		orPlaceholder(stderr),
	)
	if err := os.WriteFile(logPath, []byte(content), 0o644); err != nil {
		return "", apperrors.Wrapf(apperrors.KindIO, err, "cannot write diagnostics log %s", logPath)
	}
	return logPath, nil
}

func orPlaceholder(capture string) string {
	if strings.TrimSpace(capture) == "" {
		return emptyCapture
	}
	return strings.TrimRight(capture, "\n")
}
