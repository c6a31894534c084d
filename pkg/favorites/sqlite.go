package favorites

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/trojanworks/resourcehub/internal/utils"
)

// DB is the SQLite-backed favorites store. Insertion order is preserved by
// rowid; the UNIQUE constraint on name keeps duplicates out of the set even
// if two writers race.
type DB struct {
	sql  *sql.DB
	lock *utils.DBLock
}

// Open opens (and if necessary creates) the favorites database at path. An
// empty path resolves to the default location under the user's config dir.
func Open(path string) (*DB, error) {
	absPath, err := utils.GetAbsDBPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	dsn := "file:" + absPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS favorites (
  id       INTEGER PRIMARY KEY,
  name     TEXT NOT NULL UNIQUE,
  added_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
	`); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	lock, err := utils.NewDBLock(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &DB{sql: db, lock: lock}, nil
}

func (d *DB) Close() error {
	if d == nil || d.sql == nil {
		return nil
	}
	return d.sql.Close()
}

// Read returns the stored names in insertion order.
func (d *DB) Read(ctx context.Context) ([]string, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT name FROM favorites ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return names, nil
}

// Write replaces the stored set with names, keeping the given order. The
// file lock serializes writers across processes; within the transaction the
// replace is atomic, so a reader never observes a half-written set.
func (d *DB) Write(ctx context.Context, names []string) error {
	if err := d.lock.Lock(); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	defer d.lock.Unlock()

	tx, err := d.sql.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM favorites"); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	for _, name := range names {
		if _, err = tx.ExecContext(ctx,
			"INSERT INTO favorites (name) VALUES (?) ON CONFLICT(name) DO NOTHING", name); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
