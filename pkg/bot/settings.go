package bot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"github.com/umputun/guildbot/pkg/domain"
	"github.com/umputun/guildbot/pkg/guild"
)

const (
	colorBlue   = 0x3498db
	colorGreen  = 0x2ecc71
	colorRed    = 0xe74c3c
	colorOrange = 0xe67e22

	maxContent     = 2000
	maxEmbedDesc   = 4096
	maxFieldValue  = 1024
	maxSettingsLen = 500
)

func (b *Bot) cmdSettings(ctx context.Context, req *request) (*reply, error) {
	gs, err := b.deps.Settings.Settings(ctx, req.guildID)
	if err != nil {
		return nil, err
	}
	cfg, err := b.deps.Settings.Config(ctx, req.guildID)
	if err != nil {
		return nil, err
	}
	return &reply{embeds: []*discordgo.MessageEmbed{settingsEmbed(gs, cfg, b.now())}}, nil
}

func (b *Bot) cmdEnable(ctx context.Context, req *request) (*reply, error) {
	return b.setFeature(ctx, req, true)
}

func (b *Bot) cmdDisable(ctx context.Context, req *request) (*reply, error) {
	return b.setFeature(ctx, req, false)
}

func (b *Bot) setFeature(ctx context.Context, req *request, enabled bool) (*reply, error) {
	f, err := b.deps.Settings.SetFeature(ctx, req.guildID, req.str("feature"), enabled)
	if err != nil {
		return nil, err
	}
	state, color := "Enabled", colorGreen
	if !enabled {
		state, color = "Disabled", colorRed
	}
	return &reply{embeds: []*discordgo.MessageEmbed{{
		Title:       fmt.Sprintf("%s %s", f.DisplayName(), state),
		Description: fmt.Sprintf("**%s** has been %s for this guild!", f.DisplayName(), strings.ToLower(state)),
		Color:       color,
	}}}, nil
}

func (b *Bot) cmdSetConfig(ctx context.Context, req *request) (*reply, error) {
	key, value := req.str("key"), req.str("value")
	if key == "" {
		return nil, fmt.Errorf("%w: empty key", domain.ErrInvalidSetting)
	}
	if err := b.deps.Settings.SetConfig(ctx, req.guildID, key, value); err != nil {
		return nil, err
	}
	return &reply{embeds: []*discordgo.MessageEmbed{{
		Title:       "Configuration Updated",
		Description: fmt.Sprintf("Configuration `%s` set to `%s` for this guild!", key, value),
		Color:       colorGreen,
	}}}, nil
}

func (b *Bot) cmdGetConfig(ctx context.Context, req *request) (*reply, error) {
	key := req.str("key")
	v, ok, err := b.deps.Settings.GetConfig(ctx, req.guildID, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &reply{embeds: []*discordgo.MessageEmbed{configNotFound(key)}}, nil
	}
	return &reply{embeds: []*discordgo.MessageEmbed{{
		Title:       "Configuration Value",
		Description: fmt.Sprintf("`%s` = `%v`", key, v),
		Color:       colorBlue,
	}}}, nil
}

func (b *Bot) cmdDelConfig(ctx context.Context, req *request) (*reply, error) {
	key := req.str("key")
	err := b.deps.Settings.DeleteConfig(ctx, req.guildID, key)
	if errors.Is(err, guild.ErrConfigNotFound) {
		return &reply{embeds: []*discordgo.MessageEmbed{configNotFound(key)}}, nil
	}
	if err != nil {
		return nil, err
	}
	return &reply{embeds: []*discordgo.MessageEmbed{{
		Title:       "Configuration Deleted",
		Description: fmt.Sprintf("Configuration `%s` has been removed.", key),
		Color:       colorGreen,
	}}}, nil
}

func configNotFound(key string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Configuration Not Found",
		Description: fmt.Sprintf("Configuration key `%s` not found.", key),
		Color:       colorRed,
	}
}

// settingsEmbed shows the four flags and, when present, the freeform settings as JSON
func settingsEmbed(gs *domain.GuildSettings, cfg map[string]any, now time.Time) *discordgo.MessageEmbed {
	var sb strings.Builder
	for i, f := range domain.AllFeatures() {
		status := "❌ Disabled"
		if gs.Enabled(f) {
			status = "✅ Enabled"
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "**%s:** %s", f.DisplayName(), status)
	}

	embed := &discordgo.MessageEmbed{
		Title:     "🔧 Guild Settings",
		Color:     colorBlue,
		Timestamp: now.UTC().Format(time.RFC3339),
		Fields:    []*discordgo.MessageEmbedField{{Name: "🤖 AI Features", Value: sb.String()}},
		Footer:    &discordgo.MessageEmbedFooter{Text: "Guild ID: " + gs.GuildID},
	}

	if len(cfg) > 0 {
		data, err := json.Marshal(cfg)
		if err != nil {
			data = []byte(fmt.Sprintf("%v", cfg))
		}
		text := truncate(string(data), maxSettingsLen)
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "⚙️ Additional Settings",
			Value: "```json\n" + text + "\n```",
		})
	}
	return embed
}

// truncate cuts s to at most n bytes on a rune boundary, marking the cut with an ellipsis
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n - len("…")
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
