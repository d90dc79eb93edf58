package testutil

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/infrastructure/datastore"
)

// NewDBClient opens a throwaway SQLite database for a test.
func NewDBClient(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := datastore.NewClientWithPath(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

// DropAll drops all the data from database

func DropAll(t *testing.T, db *sqlx.DB) {
	t.Log("drop data from database")
	DropTodo(t, db)
	DropReminder(t, db)
	DropCalendarEvent(t, db)
}

// DropTodo drops all the data from todos.

func DropTodo(t *testing.T, db *sqlx.DB) {
	if _, err := db.Exec("DELETE FROM todos"); err != nil {
		t.Error(err)
		t.FailNow()
	}
}

// DropReminder drops all the data from reminders.

func DropReminder(t *testing.T, db *sqlx.DB) {
	if _, err := db.Exec("DELETE FROM reminders"); err != nil {
		t.Error(err)
		t.FailNow()
	}
}

// DropCalendarEvent drops all the data from calendar_events.

func DropCalendarEvent(t *testing.T, db *sqlx.DB) {
	if _, err := db.Exec("DELETE FROM calendar_events"); err != nil {
		t.Error(err)
		t.FailNow()
	}
}
