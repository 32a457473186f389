package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/go-pkgz/lgr"

	"github.com/umputun/guildbot/pkg/domain"
	"github.com/umputun/guildbot/pkg/leaderboard"
)

var slapMessages = []string{
	"%s slaps %s around a bit with a large trout! 🐟",
	"%s gives %s a mighty slap! 👋",
	"%s slaps %s with a wet noodle! 🍜",
	"%s delivers a crisp slap to %s! ✋",
	"%s slaps %s with a rubber chicken! 🐔",
	"%s gives %s a gentle slap on the wrist! 👋",
	"%s slaps %s with a pillow! 🛏️",
	"%s delivers an epic slap to %s! 💥",
	"%s slaps %s with a banana! 🍌",
	"%s gives %s a theatrical slap! 🎭",
}

func (b *Bot) cmdSlap(ctx context.Context, req *request) (*reply, error) {
	target := req.user("target")
	if target == nil {
		return nil, fmt.Errorf("%w: no target", domain.ErrInvalidSetting)
	}
	if target.ID == req.userID {
		return nil, leaderboard.ErrSelfSlap
	}
	if target.Bot {
		return nil, errBotSlap
	}
	if err := b.deps.Social.Slap(ctx, req.guildID, req.userID, target.ID); err != nil {
		return nil, err
	}
	lgr.Printf("[INFO] %s slapped %s in guild %s", req.userID, target.ID, req.guildID)
	msg := fmt.Sprintf(slapMessages[b.randN(len(slapMessages))], mention(req.userID), mention(target.ID))
	return &reply{embeds: []*discordgo.MessageEmbed{{Title: "👋 SLAP!", Description: msg, Color: colorRed}}}, nil
}

func (b *Bot) cmdSlapLeaderboard(ctx context.Context, req *request) (*reply, error) {
	lb, err := b.deps.Social.Slaps(ctx, req.guildID)
	if err != nil {
		return nil, err
	}
	if lb == nil {
		lb = &domain.SlapLeaderboard{}
	}
	value := rankedList(lb.MostSlapped, true, "slaps")
	if value == "" {
		value = "No slaps recorded yet! Be the first to slap someone! 👋"
	}
	return &reply{embeds: []*discordgo.MessageEmbed{{
		Title:       "👋 Slap Leaderboard",
		Description: fmt.Sprintf("Total slaps delivered: %d", lb.Total),
		Color:       colorRed,
		Fields:      []*discordgo.MessageEmbedField{{Name: "Most Slapped Users", Value: value}},
	}}}, nil
}

func (b *Bot) cmdSlapStats(ctx context.Context, req *request) (*reply, error) {
	st, err := b.deps.Social.SlapStats(ctx, req.guildID, req.userID)
	if err != nil {
		return nil, err
	}
	var desc string
	switch {
	case st.TimesSlapped == 0 && st.TimesSlapping == 0:
		desc = "This user hasn't participated in any slapping yet!"
	case st.TimesSlapped > st.TimesSlapping:
		desc = "This user seems to be on the receiving end of slaps! 😅"
	case st.TimesSlapping > st.TimesSlapped:
		desc = "This user loves dishing out slaps! 😈"
	default:
		desc = "Perfectly balanced slapping record! ⚖️"
	}
	return &reply{embeds: []*discordgo.MessageEmbed{{
		Title:       "👋 Slap Stats",
		Description: mention(req.userID) + "\n" + desc,
		Color:       colorRed,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Times Slapped", Value: timesWithRank(st.TimesSlapped, st.SlappedRank), Inline: true},
			{Name: "Times Slapping Others", Value: timesWithRank(st.TimesSlapping, st.SlapperRank), Inline: true},
		},
	}}}, nil
}

func (b *Bot) cmdLinks(ctx context.Context, req *request) (*reply, error) {
	lb, err := b.deps.Social.Links(ctx, req.guildID)
	if err != nil {
		return nil, err
	}
	if lb == nil {
		lb = &domain.LinkLeaderboard{}
	}
	users := rankedList(lb.TopUsers, true, "links")
	if users == "" {
		users = "No links shared yet"
	}
	hosts := rankedList(lb.TopHosts, false, "links")
	if hosts == "" {
		hosts = "No domains yet"
	}
	return &reply{embeds: []*discordgo.MessageEmbed{{
		Title:       "📊 Link Leaderboard",
		Description: fmt.Sprintf("Total links shared: %d", lb.Total),
		Color:       colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Top Link Sharers", Value: users},
			{Name: "Top Domains", Value: hosts},
		},
	}}}, nil
}

func (b *Bot) cmdLinksMy(ctx context.Context, req *request) (*reply, error) {
	st, err := b.deps.Social.LinkStats(ctx, req.guildID, req.userID)
	if err != nil {
		return nil, err
	}
	hosts := rankedList(st.TopHosts, false, "links")
	if hosts == "" {
		hosts = "No links shared yet"
	}
	return &reply{embeds: []*discordgo.MessageEmbed{{
		Title:       "🔗 Link Stats",
		Description: fmt.Sprintf("%s\nRank: #%d • Total links shared: %d", mention(req.userID), st.Rank, st.Total),
		Color:       colorBlue,
		Fields:      []*discordgo.MessageEmbedField{{Name: "Your Top Domains", Value: hosts}},
	}}}, nil
}

// rankedList renders numbered rows, users as mentions with trophies for the top three
func rankedList(rows []domain.Count, users bool, unit string) string {
	trophies := []string{"🥇 ", "🥈 ", "🥉 "}
	var sb strings.Builder
	for i, r := range rows {
		key := r.Key
		prefix := ""
		if users {
			key = mention(r.Key)
			if i < len(trophies) {
				prefix = trophies[i]
			}
		}
		fmt.Fprintf(&sb, "%s%d. %s: %d %s\n", prefix, i+1, key, r.Count, unit)
	}
	return truncate(sb.String(), maxFieldValue)
}

func timesWithRank(n, rank int) string {
	if rank > 0 {
		return fmt.Sprintf("%d times (Rank #%d)", n, rank)
	}
	return fmt.Sprintf("%d times", n)
}

func mention(userID string) string { return "<@" + userID + ">" }
