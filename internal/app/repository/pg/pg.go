package pg

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"audio2text/internal/app/model"
)

type PostgresDB struct {
	db *sql.DB
}

// NewPostgresDB connects to the history database using a lib/pq connection
// string, e.g. "user=postgres password=... dbname=audio2text sslmode=disable".
func NewPostgresDB(connectionString string) (*PostgresDB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, err
	}
	return &PostgresDB{db: db}, nil
}

// NewPostgresDBFromConn wraps an existing connection (used by tests).
func NewPostgresDBFromConn(db *sql.DB) *PostgresDB {
	return &PostgresDB{db: db}
}

func (pdb *PostgresDB) Close() error {
	return pdb.db.Close()
}

func (pdb *PostgresDB) CheckIfFileProcessed(fileName string) (int, error) {
	query := `SELECT id FROM transcriptions WHERE file_name = $1 AND has_error = 0`
	row := pdb.db.QueryRow(query, fileName)
	var id int
	err := row.Scan(&id)
	return id, err
}

func (pdb *PostgresDB) RecordToDB(user, inputDir, fileName, transcriptPath string, audioDuration int, transcription string,
	provenance string, lastConversionTime time.Time, hasError int, errorMessage string) error {
	insertSQL := `INSERT INTO transcriptions (user_nickname, input_dir, file_name, transcript_path, audio_duration, transcription, provenance, last_conversion_time, has_error, error_message) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
	_, err := pdb.db.Exec(insertSQL, user, inputDir, fileName, transcriptPath, audioDuration, transcription, provenance, lastConversionTime, hasError, errorMessage)
	if err != nil {
		return fmt.Errorf("failed to insert transcription record: %v", err)
	}
	return nil
}

func (pdb *PostgresDB) GetAllByUser(userNickname string) ([]model.Transcription, error) {
	query := `
		SELECT id, user_nickname, last_conversion_time, file_name, transcript_path, audio_duration, transcription, provenance, error_message
		FROM transcriptions
		WHERE has_error = 0
		  AND user_nickname = $1
		ORDER BY last_conversion_time DESC`

	rows, err := pdb.db.Query(query, userNickname)
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	defer rows.Close()

	var transcriptions []model.Transcription
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
