package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/timebloom/internal/cli"
	"github.com/julianstephens/timebloom/internal/export"
	"github.com/julianstephens/timebloom/internal/storage"
)

type InitCmd struct {
	Force  bool   `help:"Delete the existing database before initializing."`
	Source string `help:"Garden backup JSON file to seed the new database from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if _, ok := ctx.Store.(*storage.PostgresStore); ok {
			return fmt.Errorf("--force is only supported for the SQLite backend; drop the PostgreSQL schema manually")
		}

		dbPath := ctx.Store.GetConfigPath()
		if c.Source != "" {
			absSource, err := filepath.Abs(c.Source)
			if err == nil && absSource == dbPath {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
			}
		}
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized timebloom storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Importing garden from: %s\n", c.Source)
		result, err := export.NewExporter(ctx.Store).ImportFile(c.Source)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		fmt.Printf("Imported %d plant(s) and %d check-in(s).\n", result.Plants, result.CheckIns)
	}

	fmt.Println("Plant your first habit with 'timebloom plant add'.")
	return nil
}
