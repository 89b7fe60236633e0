// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the schema of both databases: the server's
// Postgres webhook ledger and the client's SQLite key-value store.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Supported dialects. Each one has its own directory of migrations.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

var ErrUnknownDialect = errors.New("unknown migration dialect")

//go:embed postgres/*.sql sqlite3/*.sql
var embedMigrations embed.FS

func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, gooseDialect, err := resolve(dialect)
	if err != nil {
		return err
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func resolve(dialect string) (dir, gooseDialect string, err error) {
	switch dialect {
	case DialectPostgres:
		return "postgres", "pgx", nil
	case DialectSQLite:
		return "sqlite3", "sqlite3", nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}
}
