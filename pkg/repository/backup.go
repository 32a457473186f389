package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// BackupAndReset moves an existing database file (and its WAL sidecars) aside
// as <path>.<YYYYMMDD-HHMMSS>.bak so the next open starts with an empty schema.
// Returns the backup path, empty if there was nothing to back up.
func BackupAndReset(path string, now time.Time) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("stat database: %w", err)
	}

	backup := fmt.Sprintf("%s.%s.bak", path, now.Format("20060102-150405"))
	if err := os.Rename(path, backup); err != nil {
		return "", fmt.Errorf("backup database: %w", err)
	}

	for _, suffix := range []string{"-wal", "-shm"} {
		if err := os.Rename(path+suffix, backup+suffix); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return backup, fmt.Errorf("backup %s: %w", path+suffix, err)
		}
	}
	return backup, nil
}
