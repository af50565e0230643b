package models

import (
	"database/sql"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

// migrateDB creates the catalog schema. All statements are idempotent
// so restarts against an existing database are safe.
func migrateDB(db *sql.DB) error {
	// Sequences for auto-incrementing IDs in DuckDB
	sequences := []string{
		"CREATE SEQUENCE IF NOT EXISTS component_ratings_id_seq START 1",
		"CREATE SEQUENCE IF NOT EXISTS snapshots_id_seq START 1",
		"CREATE SEQUENCE IF NOT EXISTS admins_id_seq START 1",
	}

	for _, seqSQL := range sequences {
		if _, err := db.Exec(seqSQL); err != nil {
			logger.LogErr(err, "failed to create sequence", "sql", seqSQL)
			// Continue even if sequence exists
		}
	}

	// Component ratings: one row per submitted score, aggregated on read
	ratingsTableSQL := `
	CREATE TABLE IF NOT EXISTS component_ratings (
		id BIGINT PRIMARY KEY DEFAULT nextval('component_ratings_id_seq'),
		component VARCHAR NOT NULL,
		score INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`

	if _, err := db.Exec(ratingsTableSQL); err != nil {
		return serr.Wrap(err, "failed to create component_ratings table")
	}

	// Playground snapshots: attrs is a msgpack-encoded attribute map
	snapshotsTableSQL := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id BIGINT PRIMARY KEY DEFAULT nextval('snapshots_id_seq'),
		guid VARCHAR NOT NULL UNIQUE,
		name VARCHAR NOT NULL,
		component VARCHAR NOT NULL,
		attrs BLOB,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`

	if _, err := db.Exec(snapshotsTableSQL); err != nil {
		return serr.Wrap(err, "failed to create snapshots table")
	}

	// Admin accounts for the /admin area
	adminsTableSQL := `
	CREATE TABLE IF NOT EXISTS admins (
		id BIGINT PRIMARY KEY DEFAULT nextval('admins_id_seq'),
		username VARCHAR NOT NULL UNIQUE,
		password_hash VARCHAR NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		last_login_at TIMESTAMP
	)`

	if _, err := db.Exec(adminsTableSQL); err != nil {
		return serr.Wrap(err, "failed to create admins table")
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_ratings_component ON component_ratings(component)",
		"CREATE INDEX IF NOT EXISTS idx_snapshots_component ON snapshots(component)",
		"CREATE INDEX IF NOT EXISTS idx_snapshots_updated ON snapshots(updated_at DESC)",
	}

	for _, indexSQL := range indexes {
		if _, err := db.Exec(indexSQL); err != nil {
			logger.LogErr(err, "failed to create index", "sql", indexSQL)
			// Continue with other indexes even if one fails
		}
	}

	logger.Info("Database migration completed")
	return nil
}
