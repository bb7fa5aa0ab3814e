package export

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"audio2text/internal/app"
	"audio2text/internal/app/batch/export"
)

var userNickname string
var outputFilePath string

func init() {
	Cmd.Flags().StringVarP(&userNickname, "userNickname", "n", "", "set userNickname")
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "set outputFilePath")

	Cmd.MarkFlagRequired("userNickname")
	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the specified user's transcripts to excel",
	Long: `Export the specified user's transcripts to excel

- Exports all the user's transcription history to an xlsx workbook`,
	Run: func(cmd *cobra.Command, args []string) {
		db := app.InitializeDAO()
		defer db.Close()

		transcriptions, err := db.GetAllByUser(userNickname)
		if err != nil {
			log.Fatal(err)
		}

		if err := export.ToExcel(transcriptions, outputFilePath); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("export finished, exported file path: %v\n", outputFilePath)
	},
}
