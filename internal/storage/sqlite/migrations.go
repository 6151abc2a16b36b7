package sqlite

import "database/sql"

// schema sets up the database. It runs on startup to ensure tables exist.
// Timestamps are stored as unix seconds; due dates as unix seconds of UTC midnight.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE,
    email TEXT NOT NULL UNIQUE,
    mpin_hash TEXT NOT NULL,
    otp TEXT,
    otp_expiry INTEGER,
    otp_verified INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS people (
    person_id INTEGER PRIMARY KEY AUTOINCREMENT,
    person_name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS events (
    event_id INTEGER PRIMARY KEY AUTOINCREMENT,
    event_name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS transactions (
    transaction_id INTEGER PRIMARY KEY AUTOINCREMENT,
    person_id INTEGER NOT NULL,
    event_id INTEGER,
    amount REAL NOT NULL,
    paid_amount REAL NOT NULL DEFAULT 0,
    reason TEXT NOT NULL,
    due_date INTEGER NOT NULL,
    status INTEGER NOT NULL DEFAULT 0,
    created_date INTEGER NOT NULL,
    FOREIGN KEY (person_id) REFERENCES people(person_id) ON DELETE RESTRICT,
    FOREIGN KEY (event_id) REFERENCES events(event_id) ON DELETE SET NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_person_id ON transactions(person_id);
CREATE INDEX IF NOT EXISTS idx_transactions_event_id ON transactions(event_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
