package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/guildbot/pkg/domain"
)

// LinkRepository stores posted links and aggregates them
type LinkRepository struct {
	db  *sqlx.DB
	agg aggregator
}

// NewLinkRepository creates a new link repository
func NewLinkRepository(db *sqlx.DB) *LinkRepository {
	return &LinkRepository{db: db, agg: aggregator{db: db, table: "link_entries"}}
}

// Add appends a link event
func (r *LinkRepository) Add(ctx context.Context, e *domain.LinkEntry) error {
	var id int64
	err := withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx,
			"INSERT INTO link_entries (guild_id, user_id, hostname, url) VALUES (?, ?, ?, ?)",
			e.GuildID, e.UserID, e.Hostname, e.URL)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return fmt.Errorf("add link: %w", err)
	}
	e.ID = id
	return nil
}

// TopUsers returns users with the most links in a guild
func (r *LinkRepository) TopUsers(ctx context.Context, guildID string, limit int) ([]domain.Count, error) {
	return r.agg.top(ctx, guildID, "user_id", limit, "", "")
}

// TopHosts returns the most linked hostnames in a guild
func (r *LinkRepository) TopHosts(ctx context.Context, guildID string, limit int) ([]domain.Count, error) {
	return r.agg.top(ctx, guildID, "hostname", limit, "", "")
}

// Total returns number of links in a guild
func (r *LinkRepository) Total(ctx context.Context, guildID string) (int, error) {
	return r.agg.count(ctx, guildID, "", "")
}

// UserTopHosts returns the hostnames a user linked most
func (r *LinkRepository) UserTopHosts(ctx context.Context, guildID, userID string, limit int) ([]domain.Count, error) {
	return r.agg.top(ctx, guildID, "hostname", limit, "user_id", userID)
}

// UserTotal returns number of links posted by a user
func (r *LinkRepository) UserTotal(ctx context.Context, guildID, userID string) (int, error) {
	return r.agg.count(ctx, guildID, "user_id", userID)
}

// UserRank returns the user's position by link count, 0 when the user has no links
func (r *LinkRepository) UserRank(ctx context.Context, guildID, userID string) (int, error) {
	return r.agg.rank(ctx, guildID, "user_id", userID)
}
