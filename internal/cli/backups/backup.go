package backups

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/timebloom/internal/backup"
	"github.com/julianstephens/timebloom/internal/cli"
	"github.com/julianstephens/timebloom/internal/constants"
	"github.com/julianstephens/timebloom/internal/export"
	"github.com/julianstephens/timebloom/internal/storage"
)

// requireSQLite guards the file-based backup commands. PostgreSQL gardens
// are backed up server-side; JSON export works for both backends.
func requireSQLite(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*storage.PostgresStore); ok {
		return fmt.Errorf("file backups are only available for the SQLite backend; use 'timebloom export' or pg_dump instead")
	}
	return nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	if err := requireSQLite(ctx); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	path, err := mgr.Create()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	fmt.Printf("✓ Backup created: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	if err := requireSQLite(ctx); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		fmt.Printf("Backups are stored in: %s\n", mgr.BackupDir())
		return nil
	}

	fmt.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for _, b := range backups {
		fmt.Printf("  %s  %s  (%.1f KB)\n",
			b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), float64(b.Size)/1024.0)
	}
	fmt.Printf("\nBackup directory: %s\n", mgr.BackupDir())
	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	if err := requireSQLite(ctx); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())

	backupPath, err := resolveBackupPath(mgr, c.BackupFile)
	if err != nil {
		return err
	}

	fmt.Println("⚠️  WARNING: This will replace your current garden with the backup.")
	fmt.Println("   All timebloom processes (including the TUI) must be stopped first.")
	fmt.Println("   A backup of the current database will be created before restoring.")
	fmt.Printf("\nRestore from: %s\n", backupPath)
	fmt.Print("Continue? [y/N]: ")

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	if response != "y" && response != "yes" {
		fmt.Println("Restore cancelled.")
		return nil
	}

	if err := ctx.Store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close database connection: %v\n", err)
	}

	if err := mgr.Restore(backupPath); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	fmt.Println("✓ Garden restored successfully!")
	return nil
}

// resolveBackupPath accepts an absolute path, a path relative to the current
// directory, or a bare filename in the backup directory.
func resolveBackupPath(mgr *backup.Manager, ref string) (string, error) {
	if filepath.IsAbs(ref) {
		if _, err := os.Stat(ref); os.IsNotExist(err) {
			return "", fmt.Errorf("backup file not found: %s", ref)
		}
		return ref, nil
	}

	if _, err := os.Stat(ref); err == nil {
		return filepath.Abs(ref)
	}

	candidate := filepath.Join(mgr.BackupDir(), ref)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return "", fmt.Errorf("backup file not found: tried current directory and %s", mgr.BackupDir())
}

type ExportCmd struct {
	Output string `arg:"" optional:"" help:"Output file path." default:"timebloom-garden.json"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	if err := export.NewExporter(ctx.Store).WriteFile(c.Output); err != nil {
		return err
	}
	fmt.Printf("✓ Garden exported to %s\n", c.Output)
	return nil
}

type ImportCmd struct {
	Input string `arg:"" help:"Backup JSON file to import."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	result, err := export.NewExporter(ctx.Store).ImportFile(c.Input)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Imported %d plant(s), %d check-in(s), %d achievement(s).\n",
		result.Plants, result.CheckIns, result.Achievements)
	if len(result.Skipped) > 0 {
		fmt.Printf("  Skipped existing plants: %s\n", strings.Join(result.Skipped, ", "))
	}
	return nil
}
