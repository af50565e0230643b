// Package models is plume's storage layer: component ratings, saved
// playground snapshots, and admin accounts, all persisted in DuckDB.
package models

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

const dbFileName = "plume.ddb"

// db is the shared DuckDB handle. An empty data dir opens an
// in-memory database, which is what tests and `plume inspect` use.
var (
	db   *sql.DB
	dbMu sync.RWMutex
)

// InitDB opens (or creates) the catalog database and runs migrations.
// Pass an empty dataDir for an ephemeral in-memory database.
func InitDB(dataDir string) error {
	dsn := ""
	if dataDir != "" {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return serr.Wrap(err, "failed to create data directory: "+dataDir)
		}
		dsn = filepath.Join(dataDir, dbFileName)
	}

	d, err := sql.Open("duckdb", dsn)
	if err != nil {
		return serr.Wrap(err, "failed to open database")
	}

	if err := d.Ping(); err != nil {
		d.Close()
		return serr.Wrap(err, "failed to ping database")
	}

	if err := migrateDB(d); err != nil {
		d.Close()
		return serr.Wrap(err, "failed to migrate database")
	}

	dbMu.Lock()
	db = d
	dbMu.Unlock()

	if dsn == "" {
		logger.Info("Database initialized in memory")
	} else {
		logger.Info("Database initialized", "path", dsn)
	}
	return nil
}

// getDB returns the shared handle, erroring if InitDB was never called.
func getDB() (*sql.DB, error) {
	dbMu.RLock()
	defer dbMu.RUnlock()
	if db == nil {
		return nil, serr.New("database not initialized - call InitDB first")
	}
	return db, nil
}

// PingDB reports database liveness for the health endpoint.
func PingDB() error {
	d, err := getDB()
	if err != nil {
		return err
	}
	if err := d.Ping(); err != nil {
		return serr.Wrap(err, "database ping failed")
	}
	return nil
}

// CloseDB releases the database handle. Safe to call more than once.
func CloseDB() {
	dbMu.Lock()
	defer dbMu.Unlock()
	if db != nil {
		if err := db.Close(); err != nil {
			logger.LogErr(err, "error closing database")
		}
		db = nil
	}
}
