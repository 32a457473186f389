package bot

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/umputun/guildbot/pkg/domain"
)

// discord poll limits, in characters
const (
	pollQuestionLen = 300
	pollAnswerLen   = 55
)

// SetPoster sets the question of the day poster. The poster publishes through the bot,
// so it can only be made after the bot exists.
func (b *Bot) SetPoster(p Poster) {
	b.deps.QOTD = p
}

// Guilds returns ids of guilds the bot is in
func (b *Bot) Guilds(context.Context) ([]string, error) {
	return b.guildIDs(), nil
}

// ChannelExists reports whether channelID is a text channel visible to the bot
func (b *Bot) ChannelExists(_ context.Context, channelID string) bool {
	ch, err := b.discord.Channel(channelID)
	if err != nil || ch == nil {
		return false
	}
	return ch.Type == discordgo.ChannelTypeGuildText
}

// DefaultChannel returns the top text channel of the guild, empty for guilds without one
func (b *Bot) DefaultChannel(_ context.Context, guildID string) (string, error) {
	channels, err := b.discord.GuildChannels(guildID)
	if err != nil {
		return "", fmt.Errorf("list channels of %s: %w", guildID, err)
	}
	var text []*discordgo.Channel
	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildText {
			text = append(text, ch)
		}
	}
	if len(text) == 0 {
		return "", nil
	}
	slices.SortStableFunc(text, func(a, b *discordgo.Channel) int { return a.Position - b.Position })
	return text[0].ID, nil
}

// PostPoll sends the question embed together with a native poll of four answers
func (b *Bot) PostPoll(_ context.Context, channelID string, q *domain.Question, duration time.Duration) error {
	hours := max(int(math.Ceil(duration.Hours())), 1)
	answers := make([]discordgo.PollAnswer, 0, 4)
	for _, opt := range q.Options() {
		answers = append(answers, discordgo.PollAnswer{Media: &discordgo.PollMedia{Text: truncate(opt, pollAnswerLen)}})
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "💭 Why This Question Matters", Value: truncate(q.Reasoning, maxFieldValue)},
		{Name: "🗣️ Expected Discussion", Value: truncate(q.ExpectedDiscussion, maxFieldValue)},
	}

	msg := &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       "📊 Question of the Day - " + q.PollType.Title(),
			Description: truncate("**"+q.Question+"**", maxEmbedDesc),
			Color:       colorGreen,
			Fields:      fields,
			Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Vote in the poll above! Poll closes in %d hours.", hours)},
			Timestamp:   b.now().UTC().Format(time.RFC3339),
		}},
		Poll: &discordgo.Poll{
			Question: discordgo.PollMedia{Text: truncate("🤔 "+q.Question, pollQuestionLen)},
			Answers:  answers,
			Duration: hours,
		},
	}
	if _, err := b.discord.ChannelMessageSendComplex(channelID, msg); err != nil {
		return fmt.Errorf("send poll: %w", err)
	}
	return nil
}
