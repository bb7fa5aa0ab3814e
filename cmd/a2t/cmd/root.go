package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"audio2text/cmd/a2t/cmd/batch"
	"audio2text/cmd/a2t/cmd/doctor"
	"audio2text/cmd/a2t/cmd/export"
	"audio2text/cmd/a2t/cmd/transcribe"
	"audio2text/cmd/a2t/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "a2t",
	Short: "An application for converting audio recordings to text with a local whisper.cpp binary",
	Long: `An application for converting audio recordings to text.
- Normalizes input audio to 16kHz mono WAV with ffmpeg
- Drives a whisper.cpp style binary, tolerating the CLI differences between builds
- Records processed files to a local history database`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(batch.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(doctor.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
