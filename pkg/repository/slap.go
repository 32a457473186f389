package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/guildbot/pkg/domain"
)

// SlapRepository stores slap events and aggregates them
type SlapRepository struct {
	db  *sqlx.DB
	agg aggregator
}

// NewSlapRepository creates a new slap repository
func NewSlapRepository(db *sqlx.DB) *SlapRepository {
	return &SlapRepository{db: db, agg: aggregator{db: db, table: "slap_entries"}}
}

// Add appends a slap event
func (r *SlapRepository) Add(ctx context.Context, e *domain.SlapEntry) error {
	var id int64
	err := withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx,
			"INSERT INTO slap_entries (guild_id, slapper_id, slapped_id) VALUES (?, ?, ?)",
			e.GuildID, e.SlapperID, e.SlappedID)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return fmt.Errorf("add slap: %w", err)
	}
	e.ID = id
	return nil
}

// TopSlapped returns the most slapped users in a guild
func (r *SlapRepository) TopSlapped(ctx context.Context, guildID string, limit int) ([]domain.Count, error) {
	return r.agg.top(ctx, guildID, "slapped_id", limit, "", "")
}

// TopSlappers returns users who slapped the most
func (r *SlapRepository) TopSlappers(ctx context.Context, guildID string, limit int) ([]domain.Count, error) {
	return r.agg.top(ctx, guildID, "slapper_id", limit, "", "")
}

// Total returns number of slaps in a guild
func (r *SlapRepository) Total(ctx context.Context, guildID string) (int, error) {
	return r.agg.count(ctx, guildID, "", "")
}

// SlappedCount returns how many times a user was slapped
func (r *SlapRepository) SlappedCount(ctx context.Context, guildID, userID string) (int, error) {
	return r.agg.count(ctx, guildID, "slapped_id", userID)
}

// SlapperCount returns how many slaps a user handed out
func (r *SlapRepository) SlapperCount(ctx context.Context, guildID, userID string) (int, error) {
	return r.agg.count(ctx, guildID, "slapper_id", userID)
}

// SlappedRank returns the user's position among slapped users, 0 when never slapped
func (r *SlapRepository) SlappedRank(ctx context.Context, guildID, userID string) (int, error) {
	return r.agg.rank(ctx, guildID, "slapped_id", userID)
}

// SlapperRank returns the user's position among slappers, 0 when never slapped anyone
func (r *SlapRepository) SlapperRank(ctx context.Context, guildID, userID string) (int, error) {
	return r.agg.rank(ctx, guildID, "slapper_id", userID)
}
