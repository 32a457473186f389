package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/guildbot/pkg/domain"
)

// GuildRepository handles guild settings rows
type GuildRepository struct {
	db *sqlx.DB
}

// guildSQL represents a guild settings row for SQL operations
type guildSQL struct {
	GuildID          string    `db:"guild_id"`
	AIEnabled        bool      `db:"ai_enabled"`
	FactCheckEnabled bool      `db:"fact_check_enabled"`
	GrokEnabled      bool      `db:"grok_enabled"`
	QOTDEnabled      bool      `db:"qotd_enabled"`
	SettingsJSON     string    `db:"settings_json"`
	SettingsVersion  int64     `db:"settings_version"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// NewGuildRepository creates a new guild repository
func NewGuildRepository(db *sqlx.DB) *GuildRepository {
	return &GuildRepository{db: db}
}

// GetOrCreate returns the guild row, materializing the default one on first access
func (r *GuildRepository) GetOrCreate(ctx context.Context, guildID string) (*domain.GuildSettings, error) {
	err := withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "INSERT OR IGNORE INTO guild_settings (guild_id) VALUES (?)", guildID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create guild settings: %w", err)
	}

	var row guildSQL
	if err := r.db.GetContext(ctx, &row, "SELECT * FROM guild_settings WHERE guild_id = ?", guildID); err != nil {
		return nil, fmt.Errorf("get guild settings: %w", err)
	}
	return r.toDomainGuild(&row)
}

// List returns all known guild rows ordered by id
func (r *GuildRepository) List(ctx context.Context) ([]*domain.GuildSettings, error) {
	var rows []guildSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM guild_settings ORDER BY guild_id"); err != nil {
		return nil, fmt.Errorf("list guild settings: %w", err)
	}
	res := make([]*domain.GuildSettings, 0, len(rows))
	for i := range rows {
		g, err := r.toDomainGuild(&rows[i])
		if err != nil {
			return nil, err
		}
		res = append(res, g)
	}
	return res, nil
}

// UpdateFeature sets one feature flag, creating the guild row if missing
func (r *GuildRepository) UpdateFeature(ctx context.Context, guildID string, f domain.Feature, enabled bool) error {
	column, err := f.Column()
	if err != nil {
		return err
	}

	// column comes from the fixed feature table, never from user input
	query := fmt.Sprintf(`
		INSERT INTO guild_settings (guild_id, %[1]s) VALUES (?, ?)
		ON CONFLICT(guild_id) DO UPDATE SET %[1]s = excluded.%[1]s, updated_at = CURRENT_TIMESTAMP`, column)

	err = withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query, guildID, enabled)
		return err
	})
	if err != nil {
		return fmt.Errorf("update feature %s: %w", f, err)
	}
	return nil
}

// GetSettings returns the freeform settings map and its version, nil map when the guild has no row
func (r *GuildRepository) GetSettings(ctx context.Context, guildID string) (map[string]any, int64, error) {
	var row struct {
		SettingsJSON    string `db:"settings_json"`
		SettingsVersion int64  `db:"settings_version"`
	}
	err := r.db.GetContext(ctx, &row, "SELECT settings_json, settings_version FROM guild_settings WHERE guild_id = ?", guildID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("get settings: %w", err)
	}
	settings, err := decodeSettings(row.SettingsJSON)
	if err != nil {
		return nil, 0, err
	}
	return settings, row.SettingsVersion, nil
}

// ReplaceSettings overwrites the whole freeform map unconditionally
func (r *GuildRepository) ReplaceSettings(ctx context.Context, guildID string, settings map[string]any) error {
	data, err := encodeSettings(settings)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO guild_settings (guild_id, settings_json, settings_version) VALUES (?, ?, 1)
		ON CONFLICT(guild_id) DO UPDATE SET
			settings_json = excluded.settings_json,
			settings_version = guild_settings.settings_version + 1,
			updated_at = CURRENT_TIMESTAMP`
	err = withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query, guildID, data)
		return err
	})
	if err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}

// CompareAndReplaceSettings overwrites the freeform map only if the stored version still equals expected.
// Returns domain.ErrConflict when another writer got there first.
func (r *GuildRepository) CompareAndReplaceSettings(ctx context.Context, guildID string, expected int64, settings map[string]any) error {
	data, err := encodeSettings(settings)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO guild_settings (guild_id, settings_json, settings_version) VALUES (?, ?, 1)
		ON CONFLICT(guild_id) DO UPDATE SET
			settings_json = excluded.settings_json,
			settings_version = guild_settings.settings_version + 1,
			updated_at = CURRENT_TIMESTAMP
		WHERE guild_settings.settings_version = ?`

	var affected int64
	err = withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, guildID, data, expected)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}
	if affected == 0 {
		return domain.ErrConflict
	}
	return nil
}

func (r *GuildRepository) toDomainGuild(row *guildSQL) (*domain.GuildSettings, error) {
	settings, err := decodeSettings(row.SettingsJSON)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = map[string]any{}
	}
	return &domain.GuildSettings{
		GuildID:          row.GuildID,
		AIEnabled:        row.AIEnabled,
		FactCheckEnabled: row.FactCheckEnabled,
		GrokEnabled:      row.GrokEnabled,
		QOTDEnabled:      row.QOTDEnabled,
		Settings:         settings,
		Version:          row.SettingsVersion,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}, nil
}

func decodeSettings(data string) (map[string]any, error) {
	settings := map[string]any{}
	if data == "" {
		return settings, nil
	}
	if err := json.Unmarshal([]byte(data), &settings); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return settings, nil
}

func encodeSettings(settings map[string]any) (string, error) {
	if settings == nil {
		return "{}", nil
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return "", fmt.Errorf("encode settings: %w", err)
	}
	return string(data), nil
}
