package guild

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/guildbot/pkg/domain"
)

// casAttempts limits read-modify-write retries on concurrent freeform updates
const casAttempts = 3

// Manager edits feature flags and freeform settings of guilds
type Manager struct {
	store Store
}

// NewManager makes a settings manager over the store
func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Settings returns the guild row, creating the default one if needed
func (m *Manager) Settings(ctx context.Context, guildID string) (*domain.GuildSettings, error) {
	if guildID == "" {
		return nil, ErrGuildOnly
	}
	return m.store.GetOrCreate(ctx, guildID)
}

// SetFeature turns a feature on or off by its user-facing name.
// Unknown names are rejected with InvalidFeatureError and never reach the store.
func (m *Manager) SetFeature(ctx context.Context, guildID, name string, enabled bool) (domain.Feature, error) {
	if guildID == "" {
		return "", ErrGuildOnly
	}
	f, err := domain.ParseFeature(name)
	if err != nil {
		return "", &InvalidFeatureError{Name: name, Choices: domain.AllFeatures()}
	}
	if err := m.store.UpdateFeature(ctx, guildID, f, enabled); err != nil {
		return "", fmt.Errorf("set feature: %w", err)
	}
	lgr.Printf("[INFO] guild %s: feature %s set to %v", guildID, f, enabled)
	return f, nil
}

// Config returns the whole freeform map, empty for unconfigured guilds
func (m *Manager) Config(ctx context.Context, guildID string) (map[string]any, error) {
	if guildID == "" {
		return nil, ErrGuildOnly
	}
	settings, _, err := m.store.GetSettings(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("get config: %w", err)
	}
	if settings == nil {
		settings = map[string]any{}
	}
	return settings, nil
}

// GetConfig returns a single freeform value, ok is false when the key is not set
func (m *Manager) GetConfig(ctx context.Context, guildID, key string) (value any, ok bool, err error) {
	settings, err := m.Config(ctx, guildID)
	if err != nil {
		return nil, false, err
	}
	value, ok = settings[key]
	return value, ok, nil
}

// SetConfig sets one freeform key, all other keys are preserved
func (m *Manager) SetConfig(ctx context.Context, guildID, key string, value any) error {
	if guildID == "" {
		return ErrGuildOnly
	}
	err := m.update(ctx, guildID, func(settings map[string]any) error {
		settings[key] = value
		return nil
	})
	if err != nil {
		return fmt.Errorf("set config %s: %w", key, err)
	}
	lgr.Printf("[DEBUG] guild %s: config %s set", guildID, key)
	return nil
}

// DeleteConfig removes one freeform key, ErrConfigNotFound if it was not set
func (m *Manager) DeleteConfig(ctx context.Context, guildID, key string) error {
	if guildID == "" {
		return ErrGuildOnly
	}
	err := m.update(ctx, guildID, func(settings map[string]any) error {
		if _, ok := settings[key]; !ok {
			return ErrConfigNotFound
		}
		delete(settings, key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete config %s: %w", key, err)
	}
	lgr.Printf("[DEBUG] guild %s: config %s deleted", guildID, key)
	return nil
}

// update runs a read-modify-write cycle guarded by the settings version.
// A mutate error aborts without writing.
func (m *Manager) update(ctx context.Context, guildID string, mutate func(map[string]any) error) error {
	for attempt := 1; attempt <= casAttempts; attempt++ {
		current, version, err := m.store.GetSettings(ctx, guildID)
		if err != nil {
			return err
		}
		settings := make(map[string]any, len(current)+1)
		maps.Copy(settings, current)
		if err := mutate(settings); err != nil {
			return err
		}

		err = m.store.CompareAndReplaceSettings(ctx, guildID, version, settings)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return err
		}
		lgr.Printf("[DEBUG] guild %s: settings conflict, attempt %d", guildID, attempt)
	}
	return domain.ErrConflict
}
