package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/guildbot/pkg/domain"
)

func TestLinkRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	add := func(guild, user, host string) {
		e := &domain.LinkEntry{GuildID: guild, UserID: user, Hostname: host, URL: "https://" + host + "/x"}
		require.NoError(t, repos.Link.Add(ctx, e))
		assert.NotZero(t, e.ID)
	}
	add("g1", "bob", "youtube.com")   // bob's first event comes before alice's
	add("g1", "alice", "github.com")
	add("g1", "alice", "github.com")
	add("g1", "bob", "youtube.com")
	add("g1", "carol", "github.com")
	add("g1", "alice", "news.com")
	add("g2", "alice", "other.com")

	total, err := repos.Link.Total(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, 6, total)

	users, err := repos.Link.TopUsers(ctx, "g1", 5)
	require.NoError(t, err)
	assert.Equal(t, []domain.Count{{Key: "alice", Count: 3}, {Key: "bob", Count: 2}, {Key: "carol", Count: 1}}, users)

	hosts, err := repos.Link.TopHosts(ctx, "g1", 2)
	require.NoError(t, err)
	assert.Equal(t, []domain.Count{{Key: "github.com", Count: 3}, {Key: "youtube.com", Count: 2}}, hosts)

	mine, err := repos.Link.UserTopHosts(ctx, "g1", "alice", 5)
	require.NoError(t, err)
	assert.Equal(t, []domain.Count{{Key: "github.com", Count: 2}, {Key: "news.com", Count: 1}}, mine)

	n, err := repos.Link.UserTotal(ctx, "g1", "alice")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	tests := []struct {
		user string
		rank int
	}{
		{"alice", 1}, {"bob", 2}, {"carol", 3}, {"dave", 0},
	}
	for _, tt := range tests {
		t.Run("rank "+tt.user, func(t *testing.T) {
			r, err := repos.Link.UserRank(ctx, "g1", tt.user)
			require.NoError(t, err)
			assert.Equal(t, tt.rank, r)
		})
	}
}

func TestLinkRepository_TieBreakEarliestFirst(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	for _, u := range []string{"zed", "amy", "amy", "zed"} {
		require.NoError(t, repos.Link.Add(ctx, &domain.LinkEntry{GuildID: "g", UserID: u, Hostname: "h.com", URL: "https://h.com"}))
	}

	users, err := repos.Link.TopUsers(ctx, "g", 5)
	require.NoError(t, err)
	assert.Equal(t, []domain.Count{{Key: "zed", Count: 2}, {Key: "amy", Count: 2}}, users)

	r, err := repos.Link.UserRank(ctx, "g", "zed")
	require.NoError(t, err)
	assert.Equal(t, 1, r)
	r, err = repos.Link.UserRank(ctx, "g", "amy")
	require.NoError(t, err)
	assert.Equal(t, 2, r, "ranks are unique even for equal counts")
}

func TestSlapRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	slap := func(from, to string) {
		require.NoError(t, repos.Slap.Add(ctx, &domain.SlapEntry{GuildID: "g1", SlapperID: from, SlappedID: to}))
	}
	slap("a", "b")
	slap("a", "c")
	slap("b", "c")
	slap("a", "c")

	total, err := repos.Slap.Total(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, 4, total)

	top, err := repos.Slap.TopSlapped(ctx, "g1", 5)
	require.NoError(t, err)
	assert.Equal(t, []domain.Count{{Key: "c", Count: 3}, {Key: "b", Count: 1}}, top)

	slappers, err := repos.Slap.TopSlappers(ctx, "g1", 5)
	require.NoError(t, err)
	assert.Equal(t, []domain.Count{{Key: "a", Count: 3}, {Key: "b", Count: 1}}, slappers)

	n, err := repos.Slap.SlappedCount(ctx, "g1", "c")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	n, err = repos.Slap.SlapperCount(ctx, "g1", "b")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	r, err := repos.Slap.SlappedRank(ctx, "g1", "b")
	require.NoError(t, err)
	assert.Equal(t, 2, r)
	r, err = repos.Slap.SlapperRank(ctx, "g1", "b")
	require.NoError(t, err)
	assert.Equal(t, 2, r)
	r, err = repos.Slap.SlapperRank(ctx, "g1", "c")
	require.NoError(t, err)
	assert.Equal(t, 0, r)

	empty, err := repos.Slap.TopSlapped(ctx, "nothing", 5)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
