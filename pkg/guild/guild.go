// Package guild implements per-guild feature gating and settings management.
package guild

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/guildbot/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store is the persistence used by Gate and Manager
type Store interface {
	GetOrCreate(ctx context.Context, guildID string) (*domain.GuildSettings, error)
	UpdateFeature(ctx context.Context, guildID string, f domain.Feature, enabled bool) error
	GetSettings(ctx context.Context, guildID string) (map[string]any, int64, error)
	CompareAndReplaceSettings(ctx context.Context, guildID string, expected int64, settings map[string]any) error
}

// ErrGuildOnly is returned for commands invoked outside of a guild
var ErrGuildOnly = errors.New("command can only be used in a server")

// ErrNotAdmin is returned when a member without administrator permission runs an admin command
var ErrNotAdmin = errors.New("administrator permission required")

// ErrConfigNotFound is returned when deleting or reading a key that is not set
var ErrConfigNotFound = errors.New("config key not found")

// FeatureDisabledError is a refusal, the feature is turned off for the guild
type FeatureDisabledError struct {
	Feature domain.Feature
}

func (e *FeatureDisabledError) Error() string {
	return fmt.Sprintf("feature %q is not enabled for this server", string(e.Feature))
}

// InvalidFeatureError carries the rejected name and the valid choices
type InvalidFeatureError struct {
	Name    string
	Choices []domain.Feature
}

func (e *InvalidFeatureError) Error() string {
	names := make([]string, len(e.Choices))
	for i, c := range e.Choices {
		names[i] = string(c)
	}
	return fmt.Sprintf("invalid feature %q, available options: %s", e.Name, strings.Join(names, ", "))
}

// Unwrap makes InvalidFeatureError match domain.ErrInvalidSetting
func (e *InvalidFeatureError) Unwrap() error { return domain.ErrInvalidSetting }

// IsRefusal reports whether err is an expected user-facing refusal rather than a failure
func IsRefusal(err error) bool {
	var fd *FeatureDisabledError
	var inv *InvalidFeatureError
	return errors.Is(err, ErrGuildOnly) || errors.Is(err, ErrNotAdmin) || errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, domain.ErrConflict) || errors.As(err, &fd) || errors.As(err, &inv)
}

// Gate answers whether a feature may run in a given context
type Gate struct {
	store Store
}

// NewGate makes a gate over the store
func NewGate(store Store) *Gate {
	return &Gate{store: store}
}

// Check refuses with ErrGuildOnly outside of a guild and with FeatureDisabledError when the flag is off.
// Guild context is checked first, the store is not touched for direct messages.
func (g *Gate) Check(ctx context.Context, guildID string, f domain.Feature) error {
	if guildID == "" {
		return ErrGuildOnly
	}
	ok, err := g.Enabled(ctx, guildID, f)
	if err != nil {
		return err
	}
	if !ok {
		lgr.Printf("[INFO] feature %s refused for guild %s, disabled", f, guildID)
		return &FeatureDisabledError{Feature: f}
	}
	return nil
}

// Enabled returns the flag value, reading (and materializing) the guild row
func (g *Gate) Enabled(ctx context.Context, guildID string, f domain.Feature) (bool, error) {
	if !f.Valid() {
		return false, fmt.Errorf("%w: %q", domain.ErrInvalidSetting, string(f))
	}
	settings, err := g.store.GetOrCreate(ctx, guildID)
	if err != nil {
		return false, fmt.Errorf("check feature %s: %w", f, err)
	}
	return settings.Enabled(f), nil
}
