package storage

import (
	"net/url"
	"strings"

	"github.com/julianstephens/timebloom/internal/storage/postgres"
	"github.com/julianstephens/timebloom/internal/storage/sqlite"
)

// SQLiteStore is the default, file-backed storage provider.
type SQLiteStore struct {
	*sqlite.Store
}

// NewSQLiteStore creates a SQLite provider rooted at the given database path.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{Store: sqlite.NewStore(path)}
}

// PostgresStore is the optional server-backed storage provider.
type PostgresStore struct {
	*postgres.Store
}

// NewPostgresStore creates a PostgreSQL provider from a connection string.
// Credentials must come from the environment, .pgpass, or the OS keyring;
// see HasEmbeddedCredentials.
func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{Store: postgres.New(connStr)}
}

// IsPostgresConnString reports whether the config value selects the
// PostgreSQL backend.
func IsPostgresConnString(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries an inline password. Such strings are rejected so credentials never
// end up in shell history or process listings.
func HasEmbeddedCredentials(connStr string) bool {
	if IsPostgresConnString(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User == nil {
			return false
		}
		_, hasPassword := u.User.Password()
		return hasPassword
	}

	// DSN format
	for _, part := range strings.Fields(connStr) {
		key, _, ok := strings.Cut(part, "=")
		if ok && strings.EqualFold(key, "password") {
			return true
		}
	}
	return false
}

var (
	_ Provider = (*SQLiteStore)(nil)
	_ Provider = (*PostgresStore)(nil)
)
