package datastore

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/config"
)

// schema creates the three tables on first start. There are no further
// migrations; the tables are independent and carry no foreign keys.
const schema = `
CREATE TABLE IF NOT EXISTS todos (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	completed   INTEGER NOT NULL DEFAULT 0 CHECK(completed IN (0, 1))
);

CREATE TABLE IF NOT EXISTS reminders (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	reminder_text TEXT NOT NULL,
	importance    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS calendar_events (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	event_from  DATETIME NOT NULL,
	event_to    DATETIME NOT NULL
);
`

// NewClient opens the SQLite database at the configured path.
func NewClient() (*sqlx.DB, error) {
	return NewClientWithPath(config.C.Database.Path)
}

// NewClientWithPath opens (or creates) a SQLite database at path, enables
// WAL mode and creates the tables.
func NewClientWithPath(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "opening sqlite db")
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "enabling WAL mode")
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "creating tables")
	}

	return db, nil
}
