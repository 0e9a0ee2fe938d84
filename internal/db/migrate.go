package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// full list is replayed on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id             TEXT PRIMARY KEY,
		code           TEXT NOT NULL UNIQUE,
		name           TEXT NOT NULL,
		status         TEXT NOT NULL DEFAULT 'planning'
		               CHECK(status IN ('planning','active','on_hold','completed','cancelled')),
		target_start   TEXT,
		target_finish  TEXT,
		completion_pct INTEGER NOT NULL DEFAULT 0 CHECK(completion_pct BETWEEN 0 AND 100),
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS resources (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		role       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS phases (
		id                     TEXT PRIMARY KEY,
		project_id             TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name                   TEXT NOT NULL,
		planned_start          TEXT,
		planned_end            TEXT,
		actual_start           TEXT,
		actual_end             TEXT,
		baseline_start         TEXT,
		baseline_end           TEXT,
		duration_days          INTEGER NOT NULL DEFAULT 0,
		baseline_duration_days INTEGER NOT NULL DEFAULT 0,
		completion_pct         INTEGER NOT NULL DEFAULT 0 CHECK(completion_pct BETWEEN 0 AND 100),
		status                 TEXT NOT NULL DEFAULT 'Planned'
		                       CHECK(status IN ('Planned','In Progress','Completed','On Hold','Cancelled')),
		priority               TEXT NOT NULL DEFAULT 'Medium'
		                       CHECK(priority IN ('Low','Medium','High','Critical')),
		is_critical_path       INTEGER NOT NULL DEFAULT 0,
		resource_id            TEXT REFERENCES resources(id) ON DELETE SET NULL,
		effort_hours           REAL NOT NULL DEFAULT 0 CHECK(effort_hours >= 0),
		color                  TEXT NOT NULL DEFAULT '',
		seq                    INTEGER NOT NULL DEFAULT 0,
		created_at             TEXT NOT NULL,
		updated_at             TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_phases_project ON phases(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_phases_resource ON phases(resource_id)`,

	`CREATE TABLE IF NOT EXISTS milestones (
		id             TEXT PRIMARY KEY,
		project_id     TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name           TEXT NOT NULL,
		target_date    TEXT,
		actual_date    TEXT,
		type           TEXT NOT NULL DEFAULT 'delivery'
		               CHECK(type IN ('delivery','review','payment','approval','start','finish')),
		is_critical    INTEGER NOT NULL DEFAULT 0,
		completion_pct INTEGER NOT NULL DEFAULT 0 CHECK(completion_pct BETWEEN 0 AND 100),
		color          TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_milestones_project ON milestones(project_id)`,

	`CREATE TABLE IF NOT EXISTS view_settings (
		id                TEXT PRIMARY KEY DEFAULT 'default',
		zoom              TEXT NOT NULL DEFAULT 'weeks'
		                  CHECK(zoom IN ('days','weeks','months','quarters')),
		show_critical     INTEGER NOT NULL DEFAULT 1,
		show_baselines    INTEGER NOT NULL DEFAULT 0,
		show_progress     INTEGER NOT NULL DEFAULT 1,
		show_milestones   INTEGER NOT NULL DEFAULT 1,
		show_dependencies INTEGER NOT NULL DEFAULT 1,
		group_by          TEXT NOT NULL DEFAULT 'none'
		                  CHECK(group_by IN ('none','status','resource','priority')),
		status_filter     TEXT NOT NULL DEFAULT '',
		resource_filter   TEXT NOT NULL DEFAULT ''
	)`,

	// Older stores predate per-project ordering of phases.
	`ALTER TABLE phases ADD COLUMN seq INTEGER NOT NULL DEFAULT 0`,
}
