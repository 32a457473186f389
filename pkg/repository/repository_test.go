package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory database with all repositories
func setupTestDB(t *testing.T) *Repositories {
	t.Helper()
	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}
	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })
	return repos
}

func TestNewRepositories(t *testing.T) {
	repos := setupTestDB(t)
	require.NoError(t, repos.Ping(context.Background()))

	var tables []string
	err := repos.DB.Select(&tables, "SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	require.NoError(t, err)
	assert.Equal(t, []string{"guild_settings", "link_entries", "slap_entries", "thread_settings"}, tables)

	var fk int
	require.NoError(t, repos.DB.Get(&fk, "PRAGMA foreign_keys"))
	assert.Equal(t, 1, fk)
}

func TestNewRepositories_FileReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "bot.db")
	ctx := context.Background()

	repos, err := NewRepositories(ctx, Config{DSN: dbPath})
	require.NoError(t, err)
	require.NoError(t, repos.Guild.UpdateFeature(ctx, "g1", "qotd", true))
	require.NoError(t, repos.Close())

	// schema creation is idempotent and data survives reopen
	repos, err = NewRepositories(ctx, Config{DSN: dbPath})
	require.NoError(t, err)
	defer repos.Close()
	g, err := repos.Guild.GetOrCreate(ctx, "g1")
	require.NoError(t, err)
	assert.True(t, g.QOTDEnabled)
}
