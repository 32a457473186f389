package bot

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/guildbot/pkg/bot/mocks"
	"github.com/umputun/guildbot/pkg/domain"
	"github.com/umputun/guildbot/pkg/guild"
	"github.com/umputun/guildbot/pkg/leaderboard"
	"github.com/umputun/guildbot/pkg/llm"
	"github.com/umputun/guildbot/pkg/market"
)

// slash makes a slash command interaction from user u1 in channel ch1, guildID empty means a DM
func slash(guildID, name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.Interaction {
	ic := &discordgo.Interaction{
		ID:        "ic1",
		Type:      discordgo.InteractionApplicationCommand,
		GuildID:   guildID,
		ChannelID: "ch1",
		Data:      discordgo.ApplicationCommandInteractionData{Name: name, Options: opts},
	}
	if guildID == "" {
		ic.User = &discordgo.User{ID: "u1", Username: "alice"}
		return ic
	}
	ic.Member = &discordgo.Member{User: &discordgo.User{ID: "u1", Username: "alice"}}
	return ic
}

func opt(name string, v any) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Value: v}
}

func sub(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionSubCommand, Options: opts}
}

// replyDiscord accepts every response and edit
func replyDiscord() *mocks.DiscordMock {
	return &mocks.DiscordMock{
		InteractionRespondFunc: func(*discordgo.Interaction, *discordgo.InteractionResponse, ...discordgo.RequestOption) error {
			return nil
		},
		InteractionResponseEditFunc: func(*discordgo.Interaction, *discordgo.WebhookEdit, ...discordgo.RequestOption) (*discordgo.Message, error) {
			return &discordgo.Message{}, nil
		},
	}
}

func openGate() *mocks.GateMock {
	return &mocks.GateMock{CheckFunc: func(context.Context, string, domain.Feature) error { return nil }}
}

// lastContent returns the text of the final answer, whether it was a response or an edit
func lastContent(t *testing.T, d *mocks.DiscordMock) string {
	t.Helper()
	if edits := d.InteractionResponseEditCalls(); len(edits) > 0 {
		return *edits[len(edits)-1].Newresp.Content
	}
	resps := d.InteractionRespondCalls()
	require.NotEmpty(t, resps)
	return resps[len(resps)-1].Resp.Data.Content
}

func TestDispatch_Refusals(t *testing.T) {
	tbl := []struct {
		name    string
		ic      *discordgo.Interaction
		gateErr error
		want    string
	}{
		{name: "unknown command", ic: slash("g1", "nope"), want: "Unknown command."},
		{name: "guild only in dm", ic: slash("", "settings"), want: "This command can only be used in a server."},
		{name: "feature command in dm", ic: slash("", "grok", opt("question", "hi")),
			want: "This command can only be used in a server."},
		{name: "feature disabled", ic: slash("g1", "grok", opt("question", "hi")),
			gateErr: &guild.FeatureDisabledError{Feature: domain.FeatureGrok},
			want:    "The 'Grok AI' feature is not enabled for this server."},
		{name: "not admin", ic: slash("g1", "enable", opt("feature", "ai")),
			want: "You need administrator permission to use this command."},
		{name: "admin check after gate", ic: slash("g1", "qotdchannel"),
			gateErr: &guild.FeatureDisabledError{Feature: domain.FeatureQOTD},
			want:    "The 'Question of the Day' feature is not enabled for this server."},
	}

	for _, tc := range tbl {
		t.Run(tc.name, func(t *testing.T) {
			d := replyDiscord()
			gate := &mocks.GateMock{CheckFunc: func(context.Context, string, domain.Feature) error { return tc.gateErr }}
			b := newBot(Config{}, Deps{Gate: gate}, d)

			b.dispatch(context.Background(), newRequest(tc.ic))

			resps := d.InteractionRespondCalls()
			require.Len(t, resps, 1)
			assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, resps[0].Resp.Type)
			assert.Equal(t, discordgo.MessageFlagsEphemeral, resps[0].Resp.Data.Flags)
			assert.Equal(t, tc.want, resps[0].Resp.Data.Content)
			assert.Empty(t, d.InteractionResponseEditCalls())
		})
	}
}

func TestDispatch_Admin(t *testing.T) {
	settings := &mocks.SettingsMock{
		SetFeatureFunc: func(_ context.Context, _, name string, _ bool) (domain.Feature, error) {
			return domain.ParseFeature(name)
		},
	}

	t.Run("administrator permission", func(t *testing.T) {
		d := replyDiscord()
		b := newBot(Config{}, Deps{Settings: settings}, d)
		ic := slash("g1", "enable", opt("feature", "AI"))
		ic.Member.Permissions = discordgo.PermissionAdministrator
		b.dispatch(context.Background(), newRequest(ic))

		resps := d.InteractionRespondCalls()
		require.Len(t, resps, 1)
		assert.Equal(t, discordgo.MessageFlagsEphemeral, resps[0].Resp.Data.Flags)
		require.Len(t, resps[0].Resp.Data.Embeds, 1)
		assert.Equal(t, "AI Ask Command Enabled", resps[0].Resp.Data.Embeds[0].Title)
	})

	t.Run("developer id", func(t *testing.T) {
		d := replyDiscord()
		b := newBot(Config{DeveloperIDs: []string{"u1"}}, Deps{Settings: settings}, d)
		b.dispatch(context.Background(), newRequest(slash("g1", "disable", opt("feature", "qotd"))))

		resps := d.InteractionRespondCalls()
		require.Len(t, resps, 1)
		assert.Equal(t, "Question of the Day Disabled", resps[0].Resp.Data.Embeds[0].Title)
		assert.Equal(t, colorRed, resps[0].Resp.Data.Embeds[0].Color)
	})

	calls := settings.SetFeatureCalls()
	require.Len(t, calls, 2)
	assert.True(t, calls[0].Enabled)
	assert.False(t, calls[1].Enabled)
}

func TestDispatch_Deferred(t *testing.T) {
	ai := &mocks.AIMock{AskFunc: func(_ context.Context, req llm.AskRequest) (string, error) {
		if req.Question == "fail" {
			return "", errors.New("upstream down")
		}
		return "an answer", nil
	}}

	t.Run("acknowledged then edited", func(t *testing.T) {
		d := replyDiscord()
		b := newBot(Config{GrokModel: "grok-model"}, Deps{Gate: openGate(), AI: ai}, d)
		b.dispatch(context.Background(), newRequest(slash("g1", "grok", opt("question", "hi"))))

		resps := d.InteractionRespondCalls()
		require.Len(t, resps, 1)
		assert.Equal(t, discordgo.InteractionResponseDeferredChannelMessageWithSource, resps[0].Resp.Type)
		assert.Nil(t, resps[0].Resp.Data)
		assert.Equal(t, "**Q:** hi\n\nan answer", lastContent(t, d))
		assert.Equal(t, "grok-model", ai.AskCalls()[0].Req.Model)
		assert.Equal(t, grokSystemPrompt, ai.AskCalls()[0].Req.System)
	})

	t.Run("failure reported in the edit", func(t *testing.T) {
		d := replyDiscord()
		b := newBot(Config{}, Deps{Gate: openGate(), AI: ai}, d)
		b.dispatch(context.Background(), newRequest(slash("g1", "grok", opt("question", "fail"))))
		assert.Len(t, d.InteractionRespondCalls(), 1)
		assert.Equal(t, "❌ grok error: upstream down", lastContent(t, d))
	})

	t.Run("ephemeral acknowledge", func(t *testing.T) {
		d := replyDiscord()
		poster := &mocks.PosterMock{PostFunc: func(context.Context, string) (*domain.Question, error) {
			return &domain.Question{Question: "Tabs or spaces?"}, nil
		}}
		b := newBot(Config{}, Deps{Gate: openGate(), QOTD: poster}, d)
		b.dispatch(context.Background(), newRequest(slash("g1", "qotd")))
		resps := d.InteractionRespondCalls()
		require.Len(t, resps, 1)
		assert.Equal(t, discordgo.MessageFlagsEphemeral, resps[0].Resp.Data.Flags)
		assert.Equal(t, "✅ Question of the day posted: **Tabs or spaces?**", lastContent(t, d))
		assert.Equal(t, "ch1", poster.PostCalls()[0].ChannelID)
	})
}

func TestDispatch_Panic(t *testing.T) {
	d := replyDiscord()
	social := &mocks.SocialMock{SlapsFunc: func(context.Context, string) (*domain.SlapLeaderboard, error) {
		panic("boom")
	}}
	b := newBot(Config{}, Deps{Social: social}, d)
	b.dispatch(context.Background(), newRequest(slash("g1", "slap", sub("leaderboard"))))

	resps := d.InteractionRespondCalls()
	require.Len(t, resps, 1)
	assert.Equal(t, "❌ slap leaderboard error: internal error", resps[0].Resp.Data.Content)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, resps[0].Resp.Data.Flags)
}

func TestDispatch_LongErrorTruncated(t *testing.T) {
	d := replyDiscord()
	stocks := &mocks.StocksMock{QuoteFunc: func(context.Context, string) (*market.Quote, error) {
		return nil, errors.New(string(make([]byte, 3000)))
	}}
	b := newBot(Config{}, Deps{Stocks: stocks}, d)
	b.dispatch(context.Background(), newRequest(slash("g1", "stock", sub("price", opt("symbol", "aapl")))))
	assert.LessOrEqual(t, len(lastContent(t, d)), maxContent)
}

func TestNewRequest(t *testing.T) {
	ic := slash("g1", "factcheck", opt("message_url", "  https://x  "), opt("messages_before", float64(3)),
		opt("user", "u9"), opt("temperature", 0.5))
	ic.Data = discordgo.ApplicationCommandInteractionData{
		Name:     "factcheck",
		Options:  ic.Data.(discordgo.ApplicationCommandInteractionData).Options,
		Resolved: &discordgo.ApplicationCommandInteractionDataResolved{Users: map[string]*discordgo.User{"u9": {ID: "u9", Username: "bob"}}},
	}
	ic.Member.Permissions = 42
	req := newRequest(ic)

	assert.Equal(t, "factcheck", req.name)
	assert.Equal(t, "g1", req.guildID)
	assert.Equal(t, "ch1", req.channelID)
	assert.Equal(t, "u1", req.userID)
	assert.Equal(t, int64(42), req.perms)
	assert.Equal(t, "https://x", req.str("message_url"))
	assert.Empty(t, req.str("missing"))
	n, ok := req.int("messages_before")
	assert.True(t, ok)
	assert.Equal(t, 3, n)
	_, ok = req.int("missing")
	assert.False(t, ok)
	f, ok := req.float("temperature")
	assert.True(t, ok)
	assert.InDelta(t, 0.5, f, 0.0001)
	assert.Equal(t, "bob", req.user("user").Username)
	assert.Nil(t, req.user("missing"))

	t.Run("subcommand", func(t *testing.T) {
		req := newRequest(slash("", "slap", sub("user", opt("target", "u2"))))
		assert.Equal(t, "slap user", req.name)
		assert.Equal(t, "u1", req.userID)
		assert.Equal(t, "u2", req.user("target").ID)
	})
}

func TestRefusalText(t *testing.T) {
	tbl := []struct {
		err  error
		want string
		ok   bool
	}{
		{guild.ErrGuildOnly, "This command can only be used in a server.", true},
		{fmt.Errorf("wrapped: %w", guild.ErrNotAdmin), "You need administrator permission to use this command.", true},
		{&guild.InvalidFeatureError{Name: "x", Choices: domain.AllFeatures()},
			"❌ Invalid feature. Available options: `ai`, `factcheck`, `grok`, `qotd`", true},
		{guild.ErrConfigNotFound, "Configuration key not found.", true},
		{fmt.Errorf("save: %w", domain.ErrConflict), "Settings changed concurrently, try again.", true},
		{fmt.Errorf("%w: empty key", domain.ErrInvalidSetting), "❌ invalid setting: empty key", true},
		{leaderboard.ErrSelfSlap, "🤔 You can't slap yourself! That's just sad.", true},
		{errBotSlap, "🤖 You can't slap bots! They have feelings too... maybe.", true},
		{errBadMessageLink, "❌ Please provide a valid Discord message link from this server.", true},
		{errors.New("db down"), "", false},
	}
	for _, tc := range tbl {
		t.Run(tc.err.Error(), func(t *testing.T) {
			got, ok := refusalText(tc.err)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
