// Package thread pins a model to a conversation thread on first use.
package thread

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/guildbot/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store persists thread bindings
type Store interface {
	Get(ctx context.Context, threadID string) (*domain.ThreadBinding, error)
	Bind(ctx context.Context, b *domain.ThreadBinding) error
	BindIfAbsent(ctx context.Context, b *domain.ThreadBinding) (*domain.ThreadBinding, error)
}

// Binder resolves which model a thread uses
type Binder struct {
	store        Store
	defaultModel string
}

// NewBinder makes a binder, defaultModel is used when a request names no model
func NewBinder(store Store, defaultModel string) *Binder {
	return &Binder{store: store, defaultModel: defaultModel}
}

// Resolve returns the effective binding for a message in the thread.
// The first binding wins; a different requested model on later messages is ignored.
// A new binding stores the model only, per-call parameters are applied to the returned copy
// and never persisted.
func (b *Binder) Resolve(ctx context.Context, guildID, threadID, model string, params domain.GenParams) (*domain.ThreadBinding, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if model == "" {
		model = b.defaultModel
	}

	existing, err := b.store.Get(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("resolve thread %s: %w", threadID, err)
	}
	if existing != nil {
		if model != existing.Model {
			lgr.Printf("[DEBUG] thread %s already bound to %s, ignoring %s", threadID, existing.Model, model)
		}
		return withParams(existing, params), nil
	}

	// only the model is pinned, per-call parameters stay with the call
	bound, err := b.store.BindIfAbsent(ctx, &domain.ThreadBinding{ThreadID: threadID, GuildID: guildID, Model: model})
	if err != nil {
		return nil, fmt.Errorf("resolve thread %s: %w", threadID, err)
	}
	lgr.Printf("[INFO] thread %s bound to model %s", threadID, bound.Model)
	return withParams(bound, params), nil
}

// Rebind explicitly replaces the thread's model and parameters
func (b *Binder) Rebind(ctx context.Context, guildID, threadID, model string, params domain.GenParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if model == "" {
		return fmt.Errorf("rebind thread %s: empty model", threadID)
	}
	err := b.store.Bind(ctx, &domain.ThreadBinding{
		ThreadID: threadID, GuildID: guildID, Model: model,
		Temperature: params.Temperature, MaxTokens: params.MaxTokens,
	})
	if err != nil {
		return fmt.Errorf("rebind thread %s: %w", threadID, err)
	}
	return nil
}

// Get returns the stored binding or nil
func (b *Binder) Get(ctx context.Context, threadID string) (*domain.ThreadBinding, error) {
	return b.store.Get(ctx, threadID)
}

// withParams returns a copy with non-nil per-call overrides applied
func withParams(b *domain.ThreadBinding, params domain.GenParams) *domain.ThreadBinding {
	res := *b
	if params.Temperature != nil {
		res.Temperature = params.Temperature
	}
	if params.MaxTokens != nil {
		res.MaxTokens = params.MaxTokens
	}
	return &res
}
