// Package sqlite implements the scan repository on modernc.org/sqlite
// (pure Go, no CGO).
package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/remedyhq/remedy/pkg/domain/interfaces"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS scans (
	id TEXT PRIMARY KEY,
	repo TEXT NOT NULL,
	pr_number INTEGER NOT NULL DEFAULT 0,
	commit_sha TEXT NOT NULL DEFAULT '',
	scan_type TEXT NOT NULL DEFAULT '',
	artifact_url TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS findings (
	id TEXT PRIMARY KEY,
	scan_id TEXT NOT NULL REFERENCES scans(id),
	seq INTEGER NOT NULL,
	file_path TEXT NOT NULL DEFAULT '',
	start_line INTEGER NOT NULL DEFAULT 0,
	end_line INTEGER NOT NULL DEFAULT 0,
	rule_id TEXT NOT NULL DEFAULT '',
	message TEXT NOT NULL DEFAULT '',
	severity TEXT NOT NULL DEFAULT '',
	raw BLOB,
	created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scans_repo ON scans(repo, created_at);
CREATE INDEX IF NOT EXISTS idx_findings_scan ON findings(scan_id, seq);
`

type Client struct {
	db *sql.DB
}

var _ interfaces.ScanRepository = &Client{}

// New opens (or creates) a SQLite database at the given path and prepares the
// schema.
func New(ctx context.Context, dbPath string) (*Client, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, goerr.Wrap(err, "failed to create database directory", goerr.V("dir", dir))
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open database", goerr.V("path", dbPath))
	}

	// SQLite supports one concurrent writer. A single connection serializes
	// all access through Go's connection pool, preventing "database is
	// locked" errors from concurrent ingestions.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, goerr.Wrap(err, "failed to configure database", goerr.V("pragma", pragma))
		}
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to prepare schema")
	}

	return &Client{db: db}, nil
}

// Close releases the underlying database handle.
func (r *Client) Close() error {
	if err := r.db.Close(); err != nil {
		return goerr.Wrap(err, "failed to close database")
	}
	return nil
}
