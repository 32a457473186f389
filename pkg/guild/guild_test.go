package guild

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/guildbot/pkg/domain"
	"github.com/umputun/guildbot/pkg/guild/mocks"
)

func TestGate_Check(t *testing.T) {
	store := &mocks.StoreMock{
		GetOrCreateFunc: func(ctx context.Context, guildID string) (*domain.GuildSettings, error) {
			switch guildID {
			case "on":
				return &domain.GuildSettings{GuildID: guildID, AIEnabled: true, QOTDEnabled: true}, nil
			case "broken":
				return nil, errors.New("db down")
			}
			return &domain.GuildSettings{GuildID: guildID}, nil
		},
	}
	gate := NewGate(store)

	t.Run("direct message refused before store", func(t *testing.T) {
		err := gate.Check(context.Background(), "", domain.FeatureAI)
		require.ErrorIs(t, err, ErrGuildOnly)
		assert.Empty(t, store.GetOrCreateCalls())
	})

	t.Run("enabled", func(t *testing.T) {
		require.NoError(t, gate.Check(context.Background(), "on", domain.FeatureAI))
		require.NoError(t, gate.Check(context.Background(), "on", domain.FeatureQOTD))
	})

	t.Run("disabled", func(t *testing.T) {
		err := gate.Check(context.Background(), "on", domain.FeatureFactCheck)
		var fd *FeatureDisabledError
		require.ErrorAs(t, err, &fd)
		assert.Equal(t, domain.FeatureFactCheck, fd.Feature)
		assert.True(t, IsRefusal(err))
	})

	t.Run("fresh guild has everything off", func(t *testing.T) {
		for _, f := range domain.AllFeatures() {
			err := gate.Check(context.Background(), "fresh", f)
			var fd *FeatureDisabledError
			assert.ErrorAs(t, err, &fd, "feature %s", f)
		}
	})

	t.Run("store failure is not a refusal", func(t *testing.T) {
		err := gate.Check(context.Background(), "broken", domain.FeatureAI)
		require.Error(t, err)
		assert.False(t, IsRefusal(err))
		assert.Contains(t, err.Error(), "db down")
	})

	t.Run("unknown feature", func(t *testing.T) {
		_, err := gate.Enabled(context.Background(), "on", domain.Feature("music"))
		require.ErrorIs(t, err, domain.ErrInvalidSetting)
	})
}

func TestInvalidFeatureError(t *testing.T) {
	err := &InvalidFeatureError{Name: "music", Choices: domain.AllFeatures()}
	assert.Equal(t, `invalid feature "music", available options: ai, factcheck, grok, qotd`, err.Error())
	assert.ErrorIs(t, err, domain.ErrInvalidSetting)
	assert.True(t, IsRefusal(err))
}

func TestIsRefusal(t *testing.T) {
	assert.True(t, IsRefusal(ErrGuildOnly))
	assert.True(t, IsRefusal(fmt.Errorf("wrapped: %w", ErrNotAdmin)))
	assert.True(t, IsRefusal(ErrConfigNotFound))
	assert.True(t, IsRefusal(domain.ErrConflict))
	assert.True(t, IsRefusal(&FeatureDisabledError{Feature: domain.FeatureGrok}))
	assert.False(t, IsRefusal(errors.New("llm request failed")))
	assert.False(t, IsRefusal(nil))
}
