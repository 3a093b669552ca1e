package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS cases (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		nickname   TEXT NOT NULL DEFAULT '',
		status     TEXT NOT NULL DEFAULT 'pending_referral'
		           CHECK(status IN ('pending_referral','welcome','co_diagnosis',
		                            'shared_planning','accompaniment','follow_up','closed')),
		address    TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS professionals (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT NOT NULL
		     CHECK(role IN ('social_worker','edis_technician','coordinator')),
		ceas TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS case_professionals (
		case_id         TEXT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
		professional_id TEXT NOT NULL REFERENCES professionals(id) ON DELETE CASCADE,
		PRIMARY KEY (case_id, professional_id)
	)`,

	`CREATE TABLE IF NOT EXISTS interventions (
		id                TEXT PRIMARY KEY,
		case_id           TEXT REFERENCES cases(id) ON DELETE CASCADE,
		title             TEXT NOT NULL,
		type              TEXT NOT NULL,
		start_at          TEXT NOT NULL,
		end_at            TEXT NOT NULL,
		is_all_day        INTEGER NOT NULL DEFAULT 0,
		notes             TEXT NOT NULL DEFAULT '',
		status            TEXT NOT NULL DEFAULT 'planned'
		                  CHECK(status IN ('planned','completed','cancelled')),
		cancellation_time TEXT,
		registered        INTEGER NOT NULL DEFAULT 0,
		created_by        TEXT NOT NULL DEFAULT '',
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_interventions_case ON interventions(case_id)`,
	`CREATE INDEX IF NOT EXISTS idx_interventions_start ON interventions(start_at)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id          TEXT PRIMARY KEY,
		case_id     TEXT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
		text        TEXT NOT NULL,
		completed   INTEGER NOT NULL DEFAULT 0,
		assigned_to TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_case ON tasks(case_id)`,

	`CREATE TABLE IF NOT EXISTS family_members (
		id           TEXT PRIMARY KEY,
		case_id      TEXT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
		name         TEXT NOT NULL,
		relationship TEXT NOT NULL DEFAULT '',
		birth_date   TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS notes (
		id         TEXT PRIMARY KEY,
		case_id    TEXT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
		author_id  TEXT NOT NULL,
		text       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_notes_case ON notes(case_id)`,

	// Single-row table holding the identity the CLI acts as.
	`CREATE TABLE IF NOT EXISTS profile (
		id              INTEGER PRIMARY KEY CHECK(id = 1),
		professional_id TEXT NOT NULL
	)`,
}
