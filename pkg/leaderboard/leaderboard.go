// Package leaderboard builds link and slap summaries from recorded events.
package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/guildbot/pkg/domain"
)

//go:generate moq -out mocks/links.go -pkg mocks -skip-ensure -fmt goimports . LinkStore
//go:generate moq -out mocks/slaps.go -pkg mocks -skip-ensure -fmt goimports . SlapStore

// TopN is the size of every top list
const TopN = 5

// LinkStore is the link event storage
type LinkStore interface {
	Add(ctx context.Context, e *domain.LinkEntry) error
	TopUsers(ctx context.Context, guildID string, limit int) ([]domain.Count, error)
	TopHosts(ctx context.Context, guildID string, limit int) ([]domain.Count, error)
	Total(ctx context.Context, guildID string) (int, error)
	UserTopHosts(ctx context.Context, guildID, userID string, limit int) ([]domain.Count, error)
	UserTotal(ctx context.Context, guildID, userID string) (int, error)
	UserRank(ctx context.Context, guildID, userID string) (int, error)
}

// SlapStore is the slap event storage
type SlapStore interface {
	Add(ctx context.Context, e *domain.SlapEntry) error
	TopSlapped(ctx context.Context, guildID string, limit int) ([]domain.Count, error)
	Total(ctx context.Context, guildID string) (int, error)
	SlappedCount(ctx context.Context, guildID, userID string) (int, error)
	SlapperCount(ctx context.Context, guildID, userID string) (int, error)
	SlappedRank(ctx context.Context, guildID, userID string) (int, error)
	SlapperRank(ctx context.Context, guildID, userID string) (int, error)
}

// ErrSelfSlap is returned when a user tries to slap themselves
var ErrSelfSlap = errors.New("you can't slap yourself")

var urlRe = regexp.MustCompile(`https?://\S+`)

// Service records social events and answers leaderboard queries
type Service struct {
	links LinkStore
	slaps SlapStore
}

// NewService makes a leaderboard service
func NewService(links LinkStore, slaps SlapStore) *Service {
	return &Service{links: links, slaps: slaps}
}

// RecordLinks extracts every http(s) URL from the message text and stores one event per URL.
// A failed store write is logged and the rest of the links are still recorded.
// Returns number of recorded links.
func (s *Service) RecordLinks(ctx context.Context, guildID, userID, text string) (int, error) {
	recorded := 0
	for _, raw := range urlRe.FindAllString(text, -1) {
		u, err := url.Parse(raw)
		if err != nil || u.Host == "" {
			continue
		}
		e := &domain.LinkEntry{GuildID: guildID, UserID: userID, Hostname: strings.ToLower(u.Host), URL: raw}
		if err := s.links.Add(ctx, e); err != nil {
			lgr.Printf("[WARN] record link %s in guild %s: %v", raw, guildID, err)
			continue
		}
		recorded++
	}
	return recorded, nil
}

// Links returns the guild link leaderboard, nil when the guild has no links
func (s *Service) Links(ctx context.Context, guildID string) (*domain.LinkLeaderboard, error) {
	total, err := s.links.Total(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, nil
	}
	users, err := s.links.TopUsers(ctx, guildID, TopN)
	if err != nil {
		return nil, err
	}
	hosts, err := s.links.TopHosts(ctx, guildID, TopN)
	if err != nil {
		return nil, err
	}
	return &domain.LinkLeaderboard{TopUsers: users, TopHosts: hosts, Total: total}, nil
}

// LinkStats returns one user's link summary; a user without links gets zero total and rank
func (s *Service) LinkStats(ctx context.Context, guildID, userID string) (*domain.LinkStats, error) {
	total, err := s.links.UserTotal(ctx, guildID, userID)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return &domain.LinkStats{}, nil
	}
	hosts, err := s.links.UserTopHosts(ctx, guildID, userID, TopN)
	if err != nil {
		return nil, err
	}
	rank, err := s.links.UserRank(ctx, guildID, userID)
	if err != nil {
		return nil, err
	}
	return &domain.LinkStats{TopHosts: hosts, Total: total, Rank: rank}, nil
}

// Slap records a slap, self-slaps are refused with ErrSelfSlap
func (s *Service) Slap(ctx context.Context, guildID, slapperID, slappedID string) error {
	if slapperID == slappedID {
		return ErrSelfSlap
	}
	if err := s.slaps.Add(ctx, &domain.SlapEntry{GuildID: guildID, SlapperID: slapperID, SlappedID: slappedID}); err != nil {
		return fmt.Errorf("record slap: %w", err)
	}
	return nil
}

// Slaps returns the most slapped users, nil when the guild has no slaps
func (s *Service) Slaps(ctx context.Context, guildID string) (*domain.SlapLeaderboard, error) {
	total, err := s.slaps.Total(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, nil
	}
	top, err := s.slaps.TopSlapped(ctx, guildID, TopN)
	if err != nil {
		return nil, err
	}
	return &domain.SlapLeaderboard{MostSlapped: top, Total: total}, nil
}

// SlapStats returns one user's slap summary on both axes
func (s *Service) SlapStats(ctx context.Context, guildID, userID string) (*domain.SlapStats, error) {
	var res domain.SlapStats
	var err error
	if res.TimesSlapped, err = s.slaps.SlappedCount(ctx, guildID, userID); err != nil {
		return nil, err
	}
	if res.TimesSlapping, err = s.slaps.SlapperCount(ctx, guildID, userID); err != nil {
		return nil, err
	}
	if res.SlappedRank, err = s.slaps.SlappedRank(ctx, guildID, userID); err != nil {
		return nil, err
	}
	if res.SlapperRank, err = s.slaps.SlapperRank(ctx, guildID, userID); err != nil {
		return nil, err
	}
	return &res, nil
}
