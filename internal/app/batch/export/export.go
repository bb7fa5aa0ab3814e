package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"audio2text/internal/app/model"
)

// ToExcel writes a user's transcription history to an xlsx workbook.
func ToExcel(transcriptions []model.Transcription, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcriptions")
	if err != nil {
		return err
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "User"
	headerRow.AddCell().Value = "Last Conversion Time"
	headerRow.AddCell().Value = "File Name"
	headerRow.AddCell().Value = "Transcript Path"
	headerRow.AddCell().Value = "Audio Duration"
	headerRow.AddCell().Value = "Transcription"
	headerRow.AddCell().Value = "Provenance"
	headerRow.AddCell().Value = "Error Message"

	for _, t := range transcriptions {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(t.ID)
		row.AddCell().Value = t.User
		row.AddCell().Value = t.LastConversionTime.Format(time.RFC3339)
		row.AddCell().Value = t.FileName
		row.AddCell().Value = t.TranscriptPath
		row.AddCell().Value = fmt.Sprintf("%.0f", t.AudioDuration)
		row.AddCell().Value = t.Transcription
		row.AddCell().Value = t.Provenance
		row.AddCell().Value = t.ErrorMessage
	}

	return file.Save(outputFilePath)
}
