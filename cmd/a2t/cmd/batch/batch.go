package batch

import (
	"log"

	"github.com/spf13/cobra"

	"audio2text/internal/app"
	"audio2text/internal/app/batch"
)

var (
	userNickname string
	audioDir     string
	convertCount int
	showProgress bool
)

func init() {
	Cmd.Flags().StringVarP(&userNickname, "userNickname", "n", "",
		"Which user owns the recordings, this parameter affects the 'user' field when they are saved to the database")
	Cmd.Flags().StringVarP(&audioDir, "audioDir", "d", "",
		"audioDir specifies the audio file directory, example: ./test/data/audio")
	Cmd.Flags().IntVarP(&convertCount, "count", "c", 500, "maximum number of files to transcribe in one run")
	Cmd.Flags().BoolVar(&showProgress, "progress", true, "render a progress bar on stderr")

	Cmd.MarkFlagRequired("userNickname")
	Cmd.MarkFlagRequired("audioDir")
}

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Transcribe the unprocessed audio files in a directory",
	Long: `Transcribe the unprocessed audio files in a directory

- Iterates over the audio files in the specified directory, oldest first
- Skips files already recorded in the history database
- Processes strictly one file at a time`,
	Run: func(cmd *cobra.Command, args []string) {
		processor := app.InitializeProcessor(batch.ProgressConfig{Enabled: showProgress})
		defer processor.Close()

		if err := processor.Do(userNickname, audioDir, convertCount); err != nil {
			log.Fatalln(err)
		}
	},
}
