package bot

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/guildbot/pkg/bot/mocks"
	"github.com/umputun/guildbot/pkg/domain"
	"github.com/umputun/guildbot/pkg/guild"
)

func TestSettingsEmbed(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	gs := &domain.GuildSettings{GuildID: "g1", AIEnabled: true, QOTDEnabled: true}

	t.Run("flags only", func(t *testing.T) {
		e := settingsEmbed(gs, map[string]any{}, now)
		assert.Equal(t, "🔧 Guild Settings", e.Title)
		assert.Equal(t, "2025-06-01T12:00:00Z", e.Timestamp)
		assert.Equal(t, "Guild ID: g1", e.Footer.Text)
		require.Len(t, e.Fields, 1)
		assert.Equal(t, "**AI Ask Command:** ✅ Enabled\n**Fact Check:** ❌ Disabled\n"+
			"**Grok AI:** ❌ Disabled\n**Question of the Day:** ✅ Enabled", e.Fields[0].Value)
	})

	t.Run("with freeform settings", func(t *testing.T) {
		e := settingsEmbed(gs, map[string]any{"qotd_channel_id": "c1"}, now)
		require.Len(t, e.Fields, 2)
		assert.Equal(t, "⚙️ Additional Settings", e.Fields[1].Name)
		assert.Equal(t, "```json\n{\"qotd_channel_id\":\"c1\"}\n```", e.Fields[1].Value)
	})

	t.Run("long settings truncated", func(t *testing.T) {
		e := settingsEmbed(gs, map[string]any{"k": strings.Repeat("x", 900)}, now)
		require.Len(t, e.Fields, 2)
		assert.Less(t, len(e.Fields[1].Value), maxSettingsLen+20)
		assert.Contains(t, e.Fields[1].Value, "…")
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg…", truncate("abcdefghijkl", 10))

	s := truncate(strings.Repeat("щ", 10), 9)
	assert.True(t, utf8.ValidString(s))
	assert.LessOrEqual(t, len(s), 9)
}

func TestSplitMessage(t *testing.T) {
	assert.Equal(t, []string{"abc"}, splitMessage("abc", 10))
	assert.Empty(t, splitMessage("", 10))
	assert.Equal(t, []string{"aaaa", "bbbb", "cc"}, splitMessage("aaaa\nbbbb\ncc", 6))
	assert.Equal(t, []string{"aaaaa", "aaaaa", "aa"}, splitMessage("aaaaaaaaaaaa", 5))

	parts := splitMessage(strings.Repeat("ж", 7), 5)
	for _, p := range parts {
		assert.True(t, utf8.ValidString(p), p)
		assert.LessOrEqual(t, len(p), 5)
	}
	assert.Equal(t, strings.Repeat("ж", 7), strings.Join(parts, ""))
}

func TestSettingsCommands(t *testing.T) {
	store := map[string]any{"color": "blue"}
	settings := &mocks.SettingsMock{
		SettingsFunc: func(_ context.Context, guildID string) (*domain.GuildSettings, error) {
			return &domain.GuildSettings{GuildID: guildID, GrokEnabled: true}, nil
		},
		ConfigFunc: func(context.Context, string) (map[string]any, error) { return store, nil },
		GetConfigFunc: func(_ context.Context, _, key string) (any, bool, error) {
			v, ok := store[key]
			return v, ok, nil
		},
		SetConfigFunc: func(_ context.Context, _, key string, value any) error {
			store[key] = value
			return nil
		},
		DeleteConfigFunc: func(_ context.Context, _, key string) error {
			if _, ok := store[key]; !ok {
				return fmt.Errorf("delete config: %w", guild.ErrConfigNotFound)
			}
			delete(store, key)
			return nil
		},
	}
	admin := func(ic *discordgo.Interaction) *discordgo.Interaction {
		ic.Member.Permissions = discordgo.PermissionAdministrator
		return ic
	}

	embedOf := func(t *testing.T, ic *discordgo.Interaction) *discordgo.MessageEmbed {
		t.Helper()
		d := replyDiscord()
		b := newBot(Config{}, Deps{Settings: settings}, d)
		b.dispatch(context.Background(), newRequest(ic))
		resps := d.InteractionRespondCalls()
		require.Len(t, resps, 1)
		require.Len(t, resps[0].Resp.Data.Embeds, 1, resps[0].Resp.Data.Content)
		return resps[0].Resp.Data.Embeds[0]
	}

	e := embedOf(t, slash("g1", "settings"))
	assert.Contains(t, e.Fields[0].Value, "**Grok AI:** ✅ Enabled")
	assert.Contains(t, e.Fields[1].Value, `"color":"blue"`)

	e = embedOf(t, admin(slash("g1", "setconfig", opt("key", "mood"), opt("value", "happy"))))
	assert.Equal(t, "Configuration Updated", e.Title)
	assert.Equal(t, "happy", store["mood"])

	e = embedOf(t, slash("g1", "getconfig", opt("key", "mood")))
	assert.Equal(t, "`mood` = `happy`", e.Description)

	e = embedOf(t, admin(slash("g1", "delconfig", opt("key", "mood"))))
	assert.Equal(t, "Configuration Deleted", e.Title)

	e = embedOf(t, admin(slash("g1", "delconfig", opt("key", "mood"))))
	assert.Equal(t, "Configuration Not Found", e.Title)

	e = embedOf(t, slash("g1", "getconfig", opt("key", "mood")))
	assert.Equal(t, "Configuration key `mood` not found.", e.Description)

	t.Run("empty key refused", func(t *testing.T) {
		d := replyDiscord()
		b := newBot(Config{}, Deps{Settings: settings}, d)
		b.dispatch(context.Background(), newRequest(admin(slash("g1", "setconfig", opt("key", " "), opt("value", "x")))))
		assert.Equal(t, "❌ invalid setting: empty key", lastContent(t, d))
	})
}
