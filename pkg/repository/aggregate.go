package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/guildbot/pkg/domain"
)

// countSQL is a grouped count row
type countSQL struct {
	Name string `db:"name"`
	Cnt  int    `db:"cnt"`
}

// ranking order shared by top lists and ranks: count desc, then earliest first event, then key
const rankOrder = "COUNT(*) DESC, MIN(id) ASC, %[1]s ASC"

// aggregator runs grouped counts over one append-only event table.
// table and columns are always package constants.
type aggregator struct {
	db    *sqlx.DB
	table string
}

// top returns up to limit groups of column, optionally restricted by an extra equality filter
func (a aggregator) top(ctx context.Context, guildID, column string, limit int, filterCol, filterVal string) ([]domain.Count, error) {
	query := fmt.Sprintf("SELECT %[1]s AS name, COUNT(*) AS cnt FROM %[2]s WHERE guild_id = ?", column, a.table)
	args := []any{guildID}
	if filterCol != "" {
		query += fmt.Sprintf(" AND %s = ?", filterCol)
		args = append(args, filterVal)
	}
	query += fmt.Sprintf(" GROUP BY %[1]s ORDER BY "+rankOrder+" LIMIT ?", column)
	args = append(args, limit)

	var rows []countSQL
	if err := a.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("top %s by %s: %w", a.table, column, err)
	}
	res := make([]domain.Count, len(rows))
	for i, r := range rows {
		res[i] = domain.Count{Key: r.Name, Count: r.Cnt}
	}
	return res, nil
}

// count returns number of events in a guild, optionally filtered by column = value
func (a aggregator) count(ctx context.Context, guildID, filterCol, filterVal string) (int, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE guild_id = ?", a.table)
	args := []any{guildID}
	if filterCol != "" {
		query += fmt.Sprintf(" AND %s = ?", filterCol)
		args = append(args, filterVal)
	}
	var n int
	if err := a.db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, fmt.Errorf("count %s: %w", a.table, err)
	}
	return n, nil
}

// rank returns 1-based position of key among groups of column, 0 if key has no events
func (a aggregator) rank(ctx context.Context, guildID, column, key string) (int, error) {
	query := fmt.Sprintf(`
		SELECT rnk FROM (
			SELECT %[1]s AS name, ROW_NUMBER() OVER (ORDER BY `+rankOrder+`) AS rnk
			FROM %[2]s WHERE guild_id = ? GROUP BY %[1]s
		) WHERE name = ?`, column, a.table)

	var rnk int
	err := a.db.GetContext(ctx, &rnk, query, guildID, key)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("rank %s by %s: %w", a.table, column, err)
	}
	return rnk, nil
}
