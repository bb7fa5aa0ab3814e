package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"audio2text/internal/app/model"
)

type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens the history database at dbFilePath, creating the schema
// on first use.
func NewSQLiteDB(dbFilePath string) (*SQLiteDB, error) {
	db, err := Open(dbFilePath)
	if err != nil {
		return nil, err
	}
	return &SQLiteDB{db: db}, nil
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}

func (sdb *SQLiteDB) CheckIfFileProcessed(fileName string) (int, error) {
	query := `SELECT id FROM transcriptions WHERE file_name = ? AND has_error = 0`
	row := sdb.db.QueryRow(query, fileName)
	var id int
	err := row.Scan(&id)
	return id, err
}

func (sdb *SQLiteDB) RecordToDB(user, inputDir, fileName, transcriptPath string, audioDuration int, transcription string,
	provenance string, lastConversionTime time.Time, hasError int, errorMessage string) error {
	insertSQL := `INSERT INTO transcriptions (user_nickname, input_dir, file_name, transcript_path, audio_duration, transcription, provenance, last_conversion_time, has_error, error_message) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
	_, err := sdb.db.Exec(insertSQL, user, inputDir, fileName, transcriptPath, audioDuration, transcription, provenance, lastConversionTime, hasError, errorMessage)
	if err != nil {
		return fmt.Errorf("failed to insert transcription record: %v", err)
	}
	return nil
}

func (sdb *SQLiteDB) GetAllByUser(userNickname string) ([]model.Transcription, error) {
	sqlStr := `
		SELECT id, user_nickname, last_conversion_time, file_name, transcript_path, audio_duration, transcription, provenance, error_message
		FROM transcriptions
		WHERE has_error = 0
		  AND user_nickname = ?
		ORDER BY last_conversion_time DESC;`
	rows, err := sdb.db.Query(sqlStr, userNickname)
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	defer rows.Close()

	transcriptions := make([]model.Transcription, 0)

	for rows.Next() {
		var t model.Transcription
		err = rows.Scan(&t.ID, &t.User, &t.LastConversionTime, &t.FileName, &t.TranscriptPath, &t.AudioDuration, &t.Transcription, &t.Provenance, &t.ErrorMessage)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %v", err)
		}

		transcriptions = append(transcriptions, t)
	}
	return transcriptions, nil
}
