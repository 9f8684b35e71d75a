package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// The schema is small and fixed, so it is applied directly on startup
// rather than through a migration tool. Statements are idempotent.
var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,
	`CREATE TABLE IF NOT EXISTS events (
		id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name        TEXT NOT NULL,
		event_date  DATE NOT NULL,
		event_time  TEXT NOT NULL,
		venue       TEXT NOT NULL,
		total_slots INT NOT NULL CHECK (total_slots > 0),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS students (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL UNIQUE,
		course     TEXT NOT NULL DEFAULT '',
		year       INT NOT NULL CHECK (year > 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS registrations (
		id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		event_id      UUID NOT NULL REFERENCES events(id),
		student_id    TEXT NOT NULL REFERENCES students(id),
		registered_at TIMESTAMPTZ NOT NULL,
		UNIQUE (event_id, student_id)
	)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		event_id   UUID NOT NULL REFERENCES events(id),
		student_id TEXT NOT NULL REFERENCES students(id),
		status     TEXT NOT NULL CHECK (status IN ('present', 'absent')),
		UNIQUE (event_id, student_id)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		salt          TEXT NOT NULL,
		role          TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
