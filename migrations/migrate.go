// Package migrations embeds the SQL schema of both binaries: the PostgreSQL
// schema of the draft service and the SQLite schema of the exam client cache.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed server/*.sql
var serverMigrations embed.FS

//go:embed client/*.sql
var clientMigrations embed.FS

// Target is one embedded migration set together with its goose dialect.
type Target struct {
	fs      embed.FS
	dir     string
	dialect string
}

var (
	Server = Target{fs: serverMigrations, dir: "server", dialect: "pgx"}
	Client = Target{fs: clientMigrations, dir: "client", dialect: "sqlite3"}
)

// goose keeps its base FS and dialect in package globals
var gooseMu sync.Mutex

func Migrate(db *sql.DB, target Target) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(target.fs)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(target.dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, target.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
