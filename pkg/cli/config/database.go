package config

import (
	"context"
	"log/slog"

	"github.com/remedyhq/remedy/pkg/domain/interfaces"
	"github.com/remedyhq/remedy/pkg/repository/memory"
	"github.com/remedyhq/remedy/pkg/repository/sqlite"
	"github.com/urfave/cli/v3"
)

type Database struct {
	dbPath string
}

func (x *Database) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "db-path",
			Usage:       "Path to SQLite database file (empty for in-memory storage)",
			Category:    "Database",
			Sources:     cli.EnvVars("REMEDY_DB_PATH"),
			Destination: &x.dbPath,
		},
	}
}

func (x *Database) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("dbPath", x.dbPath),
	)
}

// NewRepository builds the scan repository. Without a database path the
// in-memory store is used and all data is lost on restart.
func (x *Database) NewRepository(ctx context.Context) (interfaces.ScanRepository, func() error, error) {
	if x.dbPath == "" {
		return memory.New(), func() error { return nil }, nil
	}

	repo, err := sqlite.New(ctx, x.dbPath)
	if err != nil {
		return nil, nil, err
	}
	return repo, repo.Close, nil
}
