package bot

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/guildbot/pkg/bot/mocks"
	"github.com/umputun/guildbot/pkg/domain"
	"github.com/umputun/guildbot/pkg/leaderboard"
)

func TestCmdSlap(t *testing.T) {
	social := &mocks.SocialMock{SlapFunc: func(_ context.Context, _, slapper, slapped string) error {
		if slapper == slapped {
			return leaderboard.ErrSelfSlap
		}
		return nil
	}}

	run := func(t *testing.T, target *discordgo.User) *mocks.DiscordMock {
		t.Helper()
		d := replyDiscord()
		b := newBot(Config{}, Deps{Social: social}, d)
		b.randN = func(int) int { return 2 }
		ic := slash("g1", "slap", sub("user", opt("target", target.ID)))
		ic.Data = discordgo.ApplicationCommandInteractionData{
			Name:     "slap",
			Options:  ic.Data.(discordgo.ApplicationCommandInteractionData).Options,
			Resolved: &discordgo.ApplicationCommandInteractionDataResolved{Users: map[string]*discordgo.User{target.ID: target}},
		}
		b.dispatch(context.Background(), newRequest(ic))
		return d
	}

	t.Run("slap recorded", func(t *testing.T) {
		d := run(t, &discordgo.User{ID: "u2"})
		resps := d.InteractionRespondCalls()
		require.Len(t, resps, 1)
		require.Len(t, resps[0].Resp.Data.Embeds, 1)
		assert.Equal(t, "👋 SLAP!", resps[0].Resp.Data.Embeds[0].Title)
		assert.Equal(t, "<@u1> slaps <@u2> with a wet noodle! 🍜", resps[0].Resp.Data.Embeds[0].Description)
		require.Len(t, social.SlapCalls(), 1)
		assert.Equal(t, "g1", social.SlapCalls()[0].GuildID)
		assert.Equal(t, "u1", social.SlapCalls()[0].SlapperID)
		assert.Equal(t, "u2", social.SlapCalls()[0].SlappedID)
	})

	t.Run("self slap", func(t *testing.T) {
		d := run(t, &discordgo.User{ID: "u1"})
		assert.Equal(t, "🤔 You can't slap yourself! That's just sad.", lastContent(t, d))
		assert.Len(t, social.SlapCalls(), 1, "not recorded")
	})

	t.Run("bot target", func(t *testing.T) {
		d := run(t, &discordgo.User{ID: "b1", Bot: true})
		assert.Equal(t, "🤖 You can't slap bots! They have feelings too... maybe.", lastContent(t, d))
		assert.Len(t, social.SlapCalls(), 1, "not recorded")
	})
}

func TestSlapLeaderboard(t *testing.T) {
	tbl := []struct {
		name      string
		lb        *domain.SlapLeaderboard
		wantDesc  string
		wantField string
	}{
		{name: "empty", wantDesc: "Total slaps delivered: 0",
			wantField: "No slaps recorded yet! Be the first to slap someone! 👋"},
		{name: "ranked", lb: &domain.SlapLeaderboard{Total: 9, MostSlapped: []domain.Count{
			{Key: "a", Count: 4}, {Key: "b", Count: 3}, {Key: "c", Count: 1}, {Key: "d", Count: 1}}},
			wantDesc: "Total slaps delivered: 9",
			wantField: "🥇 1. <@a>: 4 slaps\n🥈 2. <@b>: 3 slaps\n🥉 3. <@c>: 1 slaps\n4. <@d>: 1 slaps\n"},
	}
	for _, tc := range tbl {
		t.Run(tc.name, func(t *testing.T) {
			social := &mocks.SocialMock{SlapsFunc: func(context.Context, string) (*domain.SlapLeaderboard, error) {
				return tc.lb, nil
			}}
			b := newBot(Config{}, Deps{Social: social}, nil)
			rep, err := b.cmdSlapLeaderboard(context.Background(), newRequest(slash("g1", "slap", sub("leaderboard"))))
			require.NoError(t, err)
			require.Len(t, rep.embeds, 1)
			assert.Equal(t, tc.wantDesc, rep.embeds[0].Description)
			assert.Equal(t, tc.wantField, rep.embeds[0].Fields[0].Value)
		})
	}
}

func TestSlapStats(t *testing.T) {
	tbl := []struct {
		stats    domain.SlapStats
		wantDesc string
		slapped  string
		slapping string
	}{
		{domain.SlapStats{}, "hasn't participated", "0 times", "0 times"},
		{domain.SlapStats{TimesSlapped: 3, SlappedRank: 1}, "receiving end", "3 times (Rank #1)", "0 times"},
		{domain.SlapStats{TimesSlapping: 2, SlapperRank: 4}, "dishing out", "0 times", "2 times (Rank #4)"},
		{domain.SlapStats{TimesSlapped: 1, TimesSlapping: 1, SlappedRank: 2, SlapperRank: 2}, "balanced",
			"1 times (Rank #2)", "1 times (Rank #2)"},
	}
	for _, tc := range tbl {
		t.Run(tc.wantDesc, func(t *testing.T) {
			social := &mocks.SocialMock{SlapStatsFunc: func(context.Context, string, string) (*domain.SlapStats, error) {
				return &tc.stats, nil
			}}
			b := newBot(Config{}, Deps{Social: social}, nil)
			rep, err := b.cmdSlapStats(context.Background(), newRequest(slash("g1", "slap", sub("stats"))))
			require.NoError(t, err)
			e := rep.embeds[0]
			assert.Contains(t, e.Description, "<@u1>")
			assert.Contains(t, e.Description, tc.wantDesc)
			assert.Equal(t, tc.slapped, e.Fields[0].Value)
			assert.Equal(t, tc.slapping, e.Fields[1].Value)
		})
	}
}

func TestLinks(t *testing.T) {
	social := &mocks.SocialMock{
		LinksFunc: func(_ context.Context, guildID string) (*domain.LinkLeaderboard, error) {
			if guildID == "empty" {
				return nil, nil
			}
			return &domain.LinkLeaderboard{Total: 5,
				TopUsers: []domain.Count{{Key: "u1", Count: 3}, {Key: "u2", Count: 2}},
				TopHosts: []domain.Count{{Key: "github.com", Count: 4}, {Key: "go.dev", Count: 1}},
			}, nil
		},
		LinkStatsFunc: func(_ context.Context, _, userID string) (*domain.LinkStats, error) {
			if userID != "u1" {
				return &domain.LinkStats{}, nil
			}
			return &domain.LinkStats{Total: 3, Rank: 1, TopHosts: []domain.Count{{Key: "github.com", Count: 3}}}, nil
		},
	}
	b := newBot(Config{}, Deps{Social: social}, nil)

	t.Run("leaderboard", func(t *testing.T) {
		rep, err := b.cmdLinks(context.Background(), newRequest(slash("g1", "links", sub("stats"))))
		require.NoError(t, err)
		e := rep.embeds[0]
		assert.Equal(t, "Total links shared: 5", e.Description)
		assert.Equal(t, "🥇 1. <@u1>: 3 links\n🥈 2. <@u2>: 2 links\n", e.Fields[0].Value)
		assert.Equal(t, "1. github.com: 4 links\n2. go.dev: 1 links\n", e.Fields[1].Value)
	})

	t.Run("empty leaderboard", func(t *testing.T) {
		rep, err := b.cmdLinks(context.Background(), newRequest(slash("empty", "links", sub("stats"))))
		require.NoError(t, err)
		e := rep.embeds[0]
		assert.Equal(t, "Total links shared: 0", e.Description)
		assert.Equal(t, "No links shared yet", e.Fields[0].Value)
		assert.Equal(t, "No domains yet", e.Fields[1].Value)
	})

	t.Run("my links", func(t *testing.T) {
		rep, err := b.cmdLinksMy(context.Background(), newRequest(slash("g1", "links", sub("my"))))
		require.NoError(t, err)
		e := rep.embeds[0]
		assert.Equal(t, "<@u1>\nRank: #1 • Total links shared: 3", e.Description)
		assert.Equal(t, "1. github.com: 3 links\n", e.Fields[0].Value)
	})
}
