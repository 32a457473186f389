package guild

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/guildbot/pkg/domain"
	"github.com/umputun/guildbot/pkg/guild/mocks"
)

// memStore is a tiny versioned store used to exercise read-modify-write behavior
type memStore struct {
	mu       sync.Mutex
	settings map[string]map[string]any
	versions map[string]int64
}

func newMemStore() *memStore {
	return &memStore{settings: map[string]map[string]any{}, versions: map[string]int64{}}
}

func (s *memStore) mock() *mocks.StoreMock {
	return &mocks.StoreMock{
		GetSettingsFunc: func(ctx context.Context, guildID string) (map[string]any, int64, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			cur, ok := s.settings[guildID]
			if !ok {
				return nil, 0, nil
			}
			cp := make(map[string]any, len(cur))
			for k, v := range cur {
				cp[k] = v
			}
			return cp, s.versions[guildID], nil
		},
		CompareAndReplaceSettingsFunc: func(ctx context.Context, guildID string, expected int64, settings map[string]any) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.versions[guildID] != expected {
				return domain.ErrConflict
			}
			s.settings[guildID] = settings
			s.versions[guildID]++
			return nil
		},
	}
}

func TestManager_SetFeature(t *testing.T) {
	store := &mocks.StoreMock{
		UpdateFeatureFunc: func(ctx context.Context, guildID string, f domain.Feature, enabled bool) error {
			return nil
		},
	}
	m := NewManager(store)

	t.Run("valid name, case insensitive", func(t *testing.T) {
		f, err := m.SetFeature(context.Background(), "g1", "FactCheck", true)
		require.NoError(t, err)
		assert.Equal(t, domain.FeatureFactCheck, f)
		require.Len(t, store.UpdateFeatureCalls(), 1)
		call := store.UpdateFeatureCalls()[0]
		assert.Equal(t, "g1", call.GuildID)
		assert.Equal(t, domain.FeatureFactCheck, call.F)
		assert.True(t, call.Enabled)
	})

	t.Run("invalid name never reaches store", func(t *testing.T) {
		_, err := m.SetFeature(context.Background(), "g1", "music", true)
		var inv *InvalidFeatureError
		require.ErrorAs(t, err, &inv)
		assert.Equal(t, domain.AllFeatures(), inv.Choices)
		assert.Len(t, store.UpdateFeatureCalls(), 1)
	})

	t.Run("outside guild", func(t *testing.T) {
		_, err := m.SetFeature(context.Background(), "", "ai", true)
		require.ErrorIs(t, err, ErrGuildOnly)
	})

	t.Run("store error", func(t *testing.T) {
		failing := &mocks.StoreMock{
			UpdateFeatureFunc: func(ctx context.Context, guildID string, f domain.Feature, enabled bool) error {
				return errors.New("locked")
			},
		}
		_, err := NewManager(failing).SetFeature(context.Background(), "g1", "ai", false)
		require.EqualError(t, err, "set feature: locked")
	})
}

func TestManager_Config(t *testing.T) {
	ms := newMemStore()
	m := NewManager(ms.mock())
	ctx := context.Background()

	cfg, err := m.Config(ctx, "g1")
	require.NoError(t, err)
	assert.Empty(t, cfg)

	require.NoError(t, m.SetConfig(ctx, "g1", "a", "1"))
	require.NoError(t, m.SetConfig(ctx, "g1", "b", "2"))
	require.NoError(t, m.SetConfig(ctx, "g1", "a", "3"))

	cfg, err = m.Config(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "3", "b": "2"}, cfg, "other keys preserved")

	v, ok, err := m.GetConfig(ctx, "g1", "b")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	_, ok, err = m.GetConfig(ctx, "g1", "zzz")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.DeleteConfig(ctx, "g1", "a"))
	cfg, err = m.Config(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"b": "2"}, cfg)

	t.Run("delete missing does not write", func(t *testing.T) {
		store := ms.mock()
		err := NewManager(store).DeleteConfig(ctx, "g1", "nope")
		require.ErrorIs(t, err, ErrConfigNotFound)
		assert.True(t, IsRefusal(err))
		assert.Empty(t, store.CompareAndReplaceSettingsCalls())
		cfg, err := m.Config(ctx, "g1")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"b": "2"}, cfg)
	})
}

func TestManager_SetConfigRetriesOnConflict(t *testing.T) {
	ms := newMemStore()
	store := ms.mock()
	casCalls := 0
	cas := store.CompareAndReplaceSettingsFunc
	store.CompareAndReplaceSettingsFunc = func(ctx context.Context, guildID string, expected int64, settings map[string]any) error {
		casCalls++
		if casCalls == 1 {
			// concurrent writer sneaks in between read and write
			ms.mu.Lock()
			ms.settings[guildID] = map[string]any{"other": "x"}
			ms.versions[guildID]++
			ms.mu.Unlock()
		}
		return cas(ctx, guildID, expected, settings)
	}

	m := NewManager(store)
	require.NoError(t, m.SetConfig(context.Background(), "g1", "mine", "y"))
	assert.Equal(t, 2, casCalls)
	assert.Len(t, store.GetSettingsCalls(), 2)

	cfg, err := m.Config(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"other": "x", "mine": "y"}, cfg, "concurrent key not lost")
}

func TestManager_SetConfigGivesUp(t *testing.T) {
	store := &mocks.StoreMock{
		GetSettingsFunc: func(ctx context.Context, guildID string) (map[string]any, int64, error) {
			return map[string]any{}, 1, nil
		},
		CompareAndReplaceSettingsFunc: func(ctx context.Context, guildID string, expected int64, settings map[string]any) error {
			return domain.ErrConflict
		},
	}
	err := NewManager(store).SetConfig(context.Background(), "g1", "k", "v")
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, store.CompareAndReplaceSettingsCalls(), casAttempts)
}
