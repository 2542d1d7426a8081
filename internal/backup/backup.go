// Package backup manages timestamped copies of the SQLite database file.
// Backups live in a "backups" directory next to the database and rotate out
// once the retention limit is reached. The PostgreSQL backend is excluded:
// server databases are backed up server-side.
package backup

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/timebloom/internal/constants"
	"github.com/julianstephens/timebloom/internal/logger"
)

// Info describes one backup file on disk.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager creates, lists, rotates, and restores database backups.
type Manager struct {
	dbPath    string
	backupDir string
}

func NewManager(dbPath string) *Manager {
	return &Manager{
		dbPath:    dbPath,
		backupDir: filepath.Join(filepath.Dir(dbPath), constants.BackupDirName),
	}
}

func (m *Manager) BackupDir() string {
	return m.backupDir
}

// Create copies the database into a new timestamped backup and rotates old
// ones out.
func (m *Manager) Create() (string, error) {
	return m.create(false)
}

func (m *Manager) create(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}
	if _, err := os.Stat(m.dbPath); os.IsNotExist(err) {
		return "", fmt.Errorf("database does not exist: %s", m.dbPath)
	}

	path, err := m.nextBackupPath(time.Now())
	if err != nil {
		return "", err
	}

	if err := m.copyDatabase(path); err != nil {
		return "", fmt.Errorf("failed to back up database: %w", err)
	}

	if !skipRotation {
		if err := m.rotate(); err != nil {
			// a failed rotation shouldn't invalidate the fresh backup
			logger.Warn("Failed to rotate old backups", "error", err)
		}
	}

	logger.Info("Created backup", "path", path)
	return path, nil
}

// nextBackupPath picks an unused filename, extending the timestamp precision
// and finally appending a counter when backups land in the same second.
func (m *Manager) nextBackupPath(now time.Time) (string, error) {
	candidates := []string{
		now.Format("20060102-1504"),
		now.Format("20060102-150405"),
	}
	for i := 1; i <= 100; i++ {
		candidates = append(candidates, fmt.Sprintf("%s-%d", now.Format("20060102-150405"), i))
	}

	for _, stamp := range candidates {
		path := filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+constants.BackupFileSuffix)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique backup filename")
}

// copyDatabase snapshots the database with VACUUM INTO, which produces a
// clean, consistent copy even while other readers hold the file. Falls back
// to a plain file copy on SQLite builds without VACUUM INTO support.
func (m *Manager) copyDatabase(destPath string) error {
	db, err := sql.Open("sqlite", m.dbPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("database appears to be corrupted: %w", err)
	}

	if _, err := db.Exec("VACUUM INTO ?", destPath); err != nil {
		return copyFile(m.dbPath, destPath)
	}
	return nil
}

// List returns all backups sorted newest first.
func (m *Manager) List() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
			continue
		}

		timestamp, ok := parseBackupStamp(strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), constants.BackupFileSuffix))
		if !ok {
			continue
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		backups = append(backups, Info{Path: path, Timestamp: timestamp, Size: info.Size()})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// parseBackupStamp recovers the timestamp from a backup filename stem,
// tolerating the optional "-N" uniqueness counter.
func parseBackupStamp(stem string) (time.Time, bool) {
	if t, err := time.Parse("20060102-1504", stem); err == nil {
		return t, true
	}
	if t, err := time.Parse("20060102-150405", stem); err == nil {
		return t, true
	}
	if i := strings.LastIndex(stem, "-"); i > 0 {
		if t, err := time.Parse("20060102-150405", stem[:i]); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// Restore replaces the database with a backup file. The current database is
// itself backed up first, and the swap happens through a temp file plus
// atomic rename.
func (m *Manager) Restore(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}
	if err := verifyDatabase(backupPath); err != nil {
		return fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	if _, err := os.Stat(m.dbPath); err == nil {
		safety, err := m.create(true)
		if err != nil {
			return fmt.Errorf("failed to back up current database before restore: %w", err)
		}
		logger.Info("Backed up current database before restore", "path", safety)
	}

	tempPath := m.dbPath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tempPath, m.dbPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to restore database: %w", err)
	}

	logger.Info("Restored database from backup", "backup", backupPath)
	return nil
}

func verifyDatabase(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

func copyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return err
	}
	defer source.Close()

	dest, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dest.Close()

	if _, err := dest.ReadFrom(source); err != nil {
		return err
	}
	return dest.Sync()
}
