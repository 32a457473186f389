// Package qotd posts the daily question of the day poll.
package qotd

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/guildbot/pkg/domain"
)

//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . Generator
//go:generate moq -out mocks/publisher.go -pkg mocks -skip-ensure -fmt goimports . Publisher
//go:generate moq -out mocks/gate.go -pkg mocks -skip-ensure -fmt goimports . Gate
//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . Settings

// Generator produces a validated question
type Generator interface {
	GenerateQuestion(ctx context.Context) (*domain.Question, error)
}

// Publisher is the chat platform side of posting
type Publisher interface {
	Guilds(ctx context.Context) ([]string, error)
	ChannelExists(ctx context.Context, channelID string) bool
	DefaultChannel(ctx context.Context, guildID string) (string, error)
	PostPoll(ctx context.Context, channelID string, q *domain.Question, duration time.Duration) error
}

// Gate reports per-guild feature flags
type Gate interface {
	Enabled(ctx context.Context, guildID string, f domain.Feature) (bool, error)
}

// Settings reads freeform guild settings
type Settings interface {
	GetConfig(ctx context.Context, guildID, key string) (value any, ok bool, err error)
}

// Poster generates one question and publishes it as a poll
type Poster struct {
	gen      Generator
	pub      Publisher
	duration time.Duration
}

// NewPoster makes a poster, pollHours is the poll duration
func NewPoster(gen Generator, pub Publisher, pollHours int) *Poster {
	if pollHours <= 0 {
		pollHours = 24
	}
	return &Poster{gen: gen, pub: pub, duration: time.Duration(pollHours) * time.Hour}
}

// Post generates a question and posts it to the channel
func (p *Poster) Post(ctx context.Context, channelID string) (*domain.Question, error) {
	q, err := p.gen.GenerateQuestion(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate question: %w", err)
	}
	if err := p.pub.PostPoll(ctx, channelID, q, p.duration); err != nil {
		return nil, fmt.Errorf("post poll to %s: %w", channelID, err)
	}
	lgr.Printf("[INFO] qotd posted to channel %s: %q", channelID, q.Question)
	return q, nil
}
