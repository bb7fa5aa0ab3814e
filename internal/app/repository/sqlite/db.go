package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS transcriptions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_nickname TEXT NOT NULL,
	input_dir TEXT NOT NULL,
	file_name TEXT NOT NULL,
	transcript_path TEXT NOT NULL DEFAULT '',
	audio_duration INTEGER NOT NULL DEFAULT 0,
	transcription TEXT NOT NULL DEFAULT '',
	provenance TEXT NOT NULL DEFAULT '',
	last_conversion_time TIMESTAMP NOT NULL,
	has_error INTEGER NOT NULL DEFAULT 0,
	error_message TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_transcriptions_file_name ON transcriptions (file_name);
`

// Open opens (and initializes when needed) the history database at the
// given path.
func Open(dbFilePath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", dbFilePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %v", err)
	}
	return db, nil
}
