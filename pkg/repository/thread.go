package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/guildbot/pkg/domain"
)

// ThreadRepository handles per-thread model bindings
type ThreadRepository struct {
	db *sqlx.DB
}

// threadSQL represents a thread binding row for SQL operations
type threadSQL struct {
	ThreadID    string          `db:"thread_id"`
	GuildID     string          `db:"guild_id"`
	Model       string          `db:"model"`
	Temperature sql.NullFloat64 `db:"temperature"`
	MaxTokens   sql.NullInt64   `db:"max_tokens"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

// NewThreadRepository creates a new thread repository
func NewThreadRepository(db *sqlx.DB) *ThreadRepository {
	return &ThreadRepository{db: db}
}

// Get returns the binding for a thread, nil if the thread was never bound
func (r *ThreadRepository) Get(ctx context.Context, threadID string) (*domain.ThreadBinding, error) {
	var row threadSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM thread_settings WHERE thread_id = ?", threadID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get thread binding: %w", err)
	}
	return r.toDomainThread(&row), nil
}

// Bind creates or updates the binding, thread identity is preserved on update
func (r *ThreadRepository) Bind(ctx context.Context, b *domain.ThreadBinding) error {
	query := `
		INSERT INTO thread_settings (thread_id, guild_id, model, temperature, max_tokens)
		VALUES (:thread_id, :guild_id, :model, :temperature, :max_tokens)
		ON CONFLICT(thread_id) DO UPDATE SET
			model = excluded.model,
			temperature = excluded.temperature,
			max_tokens = excluded.max_tokens,
			updated_at = CURRENT_TIMESTAMP`
	if err := r.insert(ctx, query, b); err != nil {
		return fmt.Errorf("bind thread: %w", err)
	}
	return nil
}

// BindIfAbsent stores the binding only when the thread has none and returns whatever binding won
func (r *ThreadRepository) BindIfAbsent(ctx context.Context, b *domain.ThreadBinding) (*domain.ThreadBinding, error) {
	query := `
		INSERT INTO thread_settings (thread_id, guild_id, model, temperature, max_tokens)
		VALUES (:thread_id, :guild_id, :model, :temperature, :max_tokens)
		ON CONFLICT(thread_id) DO NOTHING`
	if err := r.insert(ctx, query, b); err != nil {
		return nil, fmt.Errorf("bind thread: %w", err)
	}
	res, err := r.Get(ctx, b.ThreadID)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("bind thread: binding for %s vanished", b.ThreadID)
	}
	return res, nil
}

// insert runs the binding statement in a transaction together with the parent guild row
func (r *ThreadRepository) insert(ctx context.Context, query string, b *domain.ThreadBinding) error {
	row := threadSQL{ThreadID: b.ThreadID, GuildID: b.GuildID, Model: b.Model}
	if b.Temperature != nil {
		row.Temperature = sql.NullFloat64{Float64: *b.Temperature, Valid: true}
	}
	if b.MaxTokens != nil {
		row.MaxTokens = sql.NullInt64{Int64: int64(*b.MaxTokens), Valid: true}
	}

	return withRetry(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		if _, err := tx.ExecContext(ctx, "INSERT OR IGNORE INTO guild_settings (guild_id) VALUES (?)", b.GuildID); err != nil {
			return err
		}
		if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
			return err
		}
		return tx.Commit()
	})
}

func (r *ThreadRepository) toDomainThread(row *threadSQL) *domain.ThreadBinding {
	b := &domain.ThreadBinding{
		ThreadID:  row.ThreadID,
		GuildID:   row.GuildID,
		Model:     row.Model,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Temperature.Valid {
		t := row.Temperature.Float64
		b.Temperature = &t
	}
	if row.MaxTokens.Valid {
		m := int(row.MaxTokens.Int64)
		b.MaxTokens = &m
	}
	return b
}
