package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *SQLiteDB {
	t.Helper()
	db, err := NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndCheckProcessed(t *testing.T) {
	db := newTestDB(t)

	_, err := db.CheckIfFileProcessed("lecture.mp3")
	require.Error(t, err, "unknown files are not processed")

	err = db.RecordToDB("alice", "/rec", "lecture.mp3", "/rec/lecture.txt", 42, "test transcript",
		"heuristic", time.Now(), 0, "")
	require.NoError(t, err)

	id, err := db.CheckIfFileProcessed("lecture.mp3")
	require.NoError(t, err)
	assert.Greater(t, id, 0)
}

func TestFailedRecordsDoNotCountAsProcessed(t *testing.T) {
	db := newTestDB(t)

	err := db.RecordToDB("alice", "/rec", "broken.mp3", "", 0, "",
		"", time.Now(), 1, "Transcription error: no output")
	require.NoError(t, err)

	_, err = db.CheckIfFileProcessed("broken.mp3")
	assert.Error(t, err, "failed jobs must be retried on the next batch run")
}

func TestGetAllByUser(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.RecordToDB("alice", "/rec", "one.mp3", "/rec/one.txt", 10, "first",
		"direct", time.Now().Add(-time.Hour), 0, ""))
	require.NoError(t, db.RecordToDB("alice", "/rec", "two.mp3", "/rec/two.txt", 20, "second",
		"stdout-fallback", time.Now(), 0, ""))
	require.NoError(t, db.RecordToDB("bob", "/rec", "three.mp3", "/rec/three.txt", 30, "third",
		"direct", time.Now(), 0, ""))
	require.NoError(t, db.RecordToDB("alice", "/rec", "bad.mp3", "", 0, "",
		"", time.Now(), 1, "boom"))

	transcriptions, err := db.GetAllByUser("alice")
	require.NoError(t, err)
	require.Len(t, transcriptions, 2)

	// Most recent first, failures excluded.
	assert.Equal(t, "two.mp3", transcriptions[0].FileName)
	assert.Equal(t, "stdout-fallback", transcriptions[0].Provenance)
	assert.Equal(t, "one.mp3", transcriptions[1].FileName)
}
