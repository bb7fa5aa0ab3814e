package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"audio2text/internal/app"
	"audio2text/internal/app/transcribe"
)

var (
	audioPath    string
	binaryPath   string
	modelPath    string
	language     string
	noTimestamps bool
	jsonOutput   bool
)

func init() {
	Cmd.Flags().StringVarP(&audioPath, "input", "i", "", "path to the audio file to transcribe")
	Cmd.Flags().StringVarP(&binaryPath, "binary", "b", "", "transcriber binary (default: configured or whisper-cli on PATH)")
	Cmd.Flags().StringVarP(&modelPath, "model", "m", "", "model file passed to the transcriber")
	Cmd.Flags().StringVarP(&language, "language", "l", "", "spoken language code, e.g. en")
	Cmd.Flags().BoolVar(&noTimestamps, "no-timestamps", false, "ask the transcriber to omit timestamps")
	Cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the job result as JSON")

	Cmd.MarkFlagRequired("input")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe",
	Short: "Transcribe a single audio file to a sibling .txt",
	Long: `Transcribe a single audio file to a sibling .txt

- Converts the input to 16kHz mono WAV first when it is not already a .wav
- Tries the known whisper.cpp CLI conventions in order until output appears
- On total failure writes a <name>.log.txt next to the input for inspection`,
	Run: func(cmd *cobra.Command, args []string) {
		job := app.InitializeJob()

		result := job.Run(context.Background(), transcribe.Request{
			AudioPath:    audioPath,
			BinaryPath:   binaryPath,
			ModelPath:    modelPath,
			Language:     language,
			NoTimestamps: noTimestamps,
		})

		if jsonOutput {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to encode result: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(data))
			if !result.OK {
				os.Exit(1)
			}
			return
		}

		if !result.OK {
			fmt.Fprintf(os.Stderr, "transcription failed: %s\n", result.Error)
			os.Exit(1)
		}

		fmt.Printf("Transcript saved to %s\n", result.OutputPath)
		if result.Note != "" {
			fmt.Printf("Note: %s\n", result.Note)
		}
	},
}
