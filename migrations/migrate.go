package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Dialect names a migration directory. Each process migrates exactly one
// database, so the goose globals are set per call.
type Dialect string

const (
	// Postgres is the note server database.
	Postgres Dialect = "postgres"
	// SQLite is the local client database.
	SQLite Dialect = "sqlite"
)

var ErrUnknownDialect = errors.New("unknown migration dialect")

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

func Migrate(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return fmt.Errorf("migration error: db is nil")
	}

	gooseDialect, err := gooseDialectFor(dialect)
	if err != nil {
		return err
	}

	goose.SetBaseFS(embedMigrations)

	if err = goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err = goose.Up(db, string(dialect)); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func gooseDialectFor(dialect Dialect) (string, error) {
	switch dialect {
	case Postgres:
		return "pgx", nil
	case SQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}
}
