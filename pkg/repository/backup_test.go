package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupAndReset(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

	t.Run("no database", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bot.db")
		backup, err := BackupAndReset(path, now)
		require.NoError(t, err)
		assert.Empty(t, backup)
	})

	t.Run("moves database and sidecars", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "bot.db")
		require.NoError(t, os.WriteFile(path, []byte("db"), 0o600))
		require.NoError(t, os.WriteFile(path+"-wal", []byte("wal"), 0o600))

		backup, err := BackupAndReset(path, now)
		require.NoError(t, err)
		assert.Equal(t, path+".20240305-140709.bak", backup)

		_, err = os.Stat(path)
		assert.True(t, os.IsNotExist(err))
		data, err := os.ReadFile(backup)
		require.NoError(t, err)
		assert.Equal(t, "db", string(data))
		data, err = os.ReadFile(backup + "-wal")
		require.NoError(t, err)
		assert.Equal(t, "wal", string(data))
	})
}
