package system

import (
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/julianstephens/timebloom/internal/cli"
	"github.com/julianstephens/timebloom/internal/migration"
	"github.com/julianstephens/timebloom/internal/storage"
	"github.com/julianstephens/timebloom/migrations"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	defer ctx.Store.Close()

	// Open without the usual schema-version check: migrating an out-of-date
	// database is the whole point here.
	var (
		db     *sql.DB
		driver string
	)
	switch store := ctx.Store.(type) {
	case *storage.SQLiteStore:
		if err := store.Open(); err != nil {
			return err
		}
		db = store.GetDB()
		driver = "sqlite"
	case *storage.PostgresStore:
		if err := store.Open(); err != nil {
			return err
		}
		db = store.GetDB()
		driver = "postgres"
	default:
		return fmt.Errorf("unsupported storage backend")
	}
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	subFS, err := fs.Sub(migrations.FS, driver)
	if err != nil {
		return fmt.Errorf("failed to access %s migrations: %w", driver, err)
	}

	count, err := migration.NewRunner(db, subFS).Apply(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Println("No migrations to apply. Database is up to date.")
	} else {
		fmt.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}
	return nil
}
