package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/guildbot/pkg/domain"
)

func TestGuildRepository_GetOrCreate(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	g, err := repos.Guild.GetOrCreate(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, "100", g.GuildID)
	for _, f := range domain.AllFeatures() {
		assert.False(t, g.Enabled(f), "feature %s should be off by default", f)
	}
	assert.Empty(t, g.Settings)
	assert.NotNil(t, g.Settings)
	assert.Equal(t, int64(0), g.Version)
	assert.False(t, g.CreatedAt.IsZero())

	// second call returns the same row
	g2, err := repos.Guild.GetOrCreate(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, g.CreatedAt, g2.CreatedAt)

	list, err := repos.Guild.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestGuildRepository_UpdateFeature(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	t.Run("materializes missing row", func(t *testing.T) {
		require.NoError(t, repos.Guild.UpdateFeature(ctx, "g1", domain.FeatureFactCheck, true))
		g, err := repos.Guild.GetOrCreate(ctx, "g1")
		require.NoError(t, err)
		assert.True(t, g.FactCheckEnabled)
		assert.False(t, g.AIEnabled)
		assert.False(t, g.GrokEnabled)
		assert.False(t, g.QOTDEnabled)
	})

	t.Run("idempotent toggle", func(t *testing.T) {
		require.NoError(t, repos.Guild.UpdateFeature(ctx, "g2", domain.FeatureAI, true))
		require.NoError(t, repos.Guild.UpdateFeature(ctx, "g2", domain.FeatureAI, true))
		g, err := repos.Guild.GetOrCreate(ctx, "g2")
		require.NoError(t, err)
		assert.True(t, g.AIEnabled)

		require.NoError(t, repos.Guild.UpdateFeature(ctx, "g2", domain.FeatureAI, false))
		g, err = repos.Guild.GetOrCreate(ctx, "g2")
		require.NoError(t, err)
		assert.False(t, g.AIEnabled)
	})

	t.Run("keeps freeform settings", func(t *testing.T) {
		require.NoError(t, repos.Guild.ReplaceSettings(ctx, "g3", map[string]any{"a": "1"}))
		require.NoError(t, repos.Guild.UpdateFeature(ctx, "g3", domain.FeatureGrok, true))
		settings, _, err := repos.Guild.GetSettings(ctx, "g3")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": "1"}, settings)
	})

	t.Run("invalid feature", func(t *testing.T) {
		err := repos.Guild.UpdateFeature(ctx, "g4", domain.Feature("music"), true)
		require.ErrorIs(t, err, domain.ErrInvalidSetting)
		settings, _, err := repos.Guild.GetSettings(ctx, "g4")
		require.NoError(t, err)
		assert.Nil(t, settings, "invalid feature must not create a row")
	})
}

func TestGuildRepository_Settings(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	settings, version, err := repos.Guild.GetSettings(ctx, "unknown")
	require.NoError(t, err)
	assert.Nil(t, settings)
	assert.Zero(t, version)

	require.NoError(t, repos.Guild.ReplaceSettings(ctx, "g1", map[string]any{"a": "1", "n": 2.0}))
	settings, version, err = repos.Guild.GetSettings(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "1", "n": 2.0}, settings)
	assert.Equal(t, int64(1), version)

	require.NoError(t, repos.Guild.ReplaceSettings(ctx, "g1", map[string]any{"b": "2"}))
	settings, version, err = repos.Guild.GetSettings(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"b": "2"}, settings, "replace is a full overwrite")
	assert.Equal(t, int64(2), version)
}

func TestGuildRepository_CompareAndReplaceSettings(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	g, err := repos.Guild.GetOrCreate(ctx, "g1")
	require.NoError(t, err)

	require.NoError(t, repos.Guild.CompareAndReplaceSettings(ctx, "g1", g.Version, map[string]any{"x": "1"}))

	// stale version loses
	err = repos.Guild.CompareAndReplaceSettings(ctx, "g1", g.Version, map[string]any{"y": "2"})
	require.ErrorIs(t, err, domain.ErrConflict)

	settings, version, err := repos.Guild.GetSettings(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"x": "1"}, settings)
	assert.Equal(t, g.Version+1, version)

	// missing row with version 0 is created
	require.NoError(t, repos.Guild.CompareAndReplaceSettings(ctx, "g2", 0, map[string]any{"z": "3"}))
	settings, _, err = repos.Guild.GetSettings(ctx, "g2")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"z": "3"}, settings)
}
