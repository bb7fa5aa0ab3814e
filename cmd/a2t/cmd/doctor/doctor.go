package doctor

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"audio2text/internal/app/doctor"
	"audio2text/internal/app/transcribe"
	"audio2text/internal/config"
)

// Cmd represents the doctor command
var Cmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the external tools needed for transcription are available",
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := config.Load()
		if err != nil {
			log.Fatalf("failed to load configuration: %v", err)
		}

		whisperBinary := settings.WhisperBinary
		if whisperBinary == "" {
			whisperBinary = transcribe.DefaultBinaryName()
		}

		checker := doctor.NewChecker()
		report := checker.Run(settings.FFmpegBinary, settings.FFprobeBinary, whisperBinary, settings.WhisperModel)

		for _, item := range report.Items {
			marker := "✅"
			switch item.Status {
			case doctor.StatusFail:
				marker = "❌"
			case doctor.StatusWarn:
				marker = "⚠️"
			}
			fmt.Printf("%s %-12s %s\n", marker, item.Name, item.Message)
			if item.Hint != "" && item.Status != doctor.StatusPass {
				fmt.Printf("   hint: %s\n", item.Hint)
			}
		}

		if report.HasFailures {
			os.Exit(1)
		}
	},
}
