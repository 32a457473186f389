package bot

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"github.com/umputun/guildbot/pkg/domain"
	"github.com/umputun/guildbot/pkg/llm"
)

const (
	maxContextMessages = 20
	historyScan        = 50
	threadArchiveMins  = 60
)

const grokSystemPrompt = "You are Grok, a witty and direct assistant. Answer concisely, at most a few short paragraphs, in Discord markdown."

var messageURLRe = regexp.MustCompile(`https?://(?:canary\.|ptb\.)?discord(?:app)?\.com/channels/(\d+)/(\d+)/(\d+)`)

// errBadMessageLink refuses fact checks of links that are not messages of the current guild
var errBadMessageLink = errors.New("invalid message link")

// cmdAsk answers in a thread. Inside an existing thread the model pinned to it wins,
// otherwise a new thread is started and bound to the requested model.
func (b *Bot) cmdAsk(ctx context.Context, req *request) (*reply, error) {
	question := req.str("question")
	if question == "" {
		return nil, fmt.Errorf("%w: empty question", domain.ErrInvalidSetting)
	}
	var params domain.GenParams
	if t, ok := req.float("temperature"); ok {
		params.Temperature = &t
	}
	if n, ok := req.int("max_tokens"); ok {
		params.MaxTokens = &n
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSetting, err)
	}
	model := req.str("model")
	if model == "" {
		model = b.cfg.DefaultModel
	}

	req.progress(fmt.Sprintf("🚀 Hey <@%s>, we're sending your request to the AI with your prompt:\n```\n%s\n```",
		req.userID, truncate(question, 1500)))

	ch, err := b.discord.Channel(req.channelID)
	if err != nil {
		return nil, fmt.Errorf("get channel %s: %w", req.channelID, err)
	}

	askReq := llm.AskRequest{Model: model, Question: question, Temperature: params.Temperature, MaxTokens: params.MaxTokens}
	threadID := ""
	if ch.IsThread() {
		threadID = ch.ID
		binding, err := b.deps.Threads.Resolve(ctx, req.guildID, threadID, model, params)
		if err != nil {
			return nil, err
		}
		askReq.Model, askReq.Temperature, askReq.MaxTokens = binding.Model, binding.Temperature, binding.MaxTokens
	}

	answer, err := b.deps.AI.Ask(ctx, askReq)
	if err != nil {
		return nil, err
	}

	if threadID == "" {
		th, err := b.discord.ThreadStartComplex(req.channelID, &discordgo.ThreadStart{
			Name:                threadName(question),
			AutoArchiveDuration: threadArchiveMins,
			Type:                discordgo.ChannelTypeGuildPublicThread,
		})
		if err != nil {
			return nil, fmt.Errorf("start thread: %w", err)
		}
		threadID = th.ID
		if _, err := b.deps.Threads.Resolve(ctx, req.guildID, threadID, model, params); err != nil {
			return nil, err
		}
	}

	text := fmt.Sprintf("💡 **Question from <@%s>:**\n```\n%s\n```\n\n🤖 **Answer (using %s):**\n%s",
		req.userID, question, askReq.Model, answer)
	for _, part := range splitMessage(text, maxContent) {
		if _, err := b.discord.ChannelMessageSendComplex(threadID, &discordgo.MessageSend{Content: part}); err != nil {
			return nil, fmt.Errorf("send answer to thread %s: %w", threadID, err)
		}
	}
	return &reply{content: fmt.Sprintf("✅ Your question has been answered in <#%s>.", threadID)}, nil
}

func threadName(question string) string {
	q := strings.Join(strings.Fields(question), " ")
	if r := []rune(q); len(r) > 50 {
		return "Question: " + string(r[:50]) + "…"
	}
	return "Question: " + q
}

func (b *Bot) cmdGrok(ctx context.Context, req *request) (*reply, error) {
	question := req.str("question")
	if question == "" {
		return nil, fmt.Errorf("%w: empty question", domain.ErrInvalidSetting)
	}
	answer, err := b.deps.AI.Ask(ctx, llm.AskRequest{Model: b.cfg.GrokModel, System: grokSystemPrompt, Question: question})
	if err != nil {
		return nil, err
	}
	return &reply{content: truncate(fmt.Sprintf("**Q:** %s\n\n%s", question, answer), maxContent)}, nil
}

// cmdFactCheck checks a linked message plus optional context before it, answers with a summary
// embed and attaches the full markdown report
func (b *Bot) cmdFactCheck(ctx context.Context, req *request) (*reply, error) {
	m := messageURLRe.FindStringSubmatch(req.str("message_url"))
	if m == nil || m[1] != req.guildID {
		return nil, errBadMessageLink
	}
	channelID, messageID := m[2], m[3]

	msg, err := b.discord.ChannelMessage(channelID, messageID)
	if err != nil {
		return nil, fmt.Errorf("fetch message %s: %w", messageID, err)
	}
	count, _ := req.int("messages_before")
	count = min(max(count, 0), maxContextMessages)
	filter := req.user("user")

	contextMsgs, err := b.contextMessages(channelID, messageID, count, filter)
	if err != nil {
		return nil, err
	}

	chat := make([]domain.ChatMessage, 0, len(contextMsgs)+1)
	for _, cm := range append(slices.Clone(contextMsgs), msg) {
		chat = append(chat, domain.ChatMessage{Author: authorName(cm), Content: cm.Content})
	}
	req.progress("🔍 Fact-checking message...")
	res, err := b.deps.AI.FactCheck(ctx, chat)
	if err != nil {
		return nil, err
	}

	now := b.now()
	return &reply{
		embeds: []*discordgo.MessageEmbed{factCheckEmbed(msg, len(contextMsgs), res, now)},
		files: []*discordgo.File{{
			Name:        fmt.Sprintf("fact_check_%s.md", messageID),
			ContentType: "text/markdown",
			Reader:      strings.NewReader(factCheckReport(msg, contextMsgs, res, filter, now)),
		}},
	}, nil
}

// contextMessages returns up to count non-bot messages before messageID, oldest first
func (b *Bot) contextMessages(channelID, messageID string, count int, filter *discordgo.User) ([]*discordgo.Message, error) {
	if count <= 0 {
		return nil, nil
	}
	history, err := b.discord.ChannelMessages(channelID, historyScan, messageID, "", "")
	if err != nil {
		return nil, fmt.Errorf("fetch context messages: %w", err)
	}
	res := make([]*discordgo.Message, 0, count)
	for _, hm := range history { // newest first
		if hm.Author == nil || hm.Author.Bot {
			continue
		}
		if filter != nil && hm.Author.ID != filter.ID {
			continue
		}
		res = append(res, hm)
		if len(res) >= count {
			break
		}
	}
	slices.Reverse(res)
	return res, nil
}

func authorName(m *discordgo.Message) string {
	if m.Author == nil {
		return "unknown"
	}
	return m.Author.Username
}

func (b *Bot) cmdQOTD(ctx context.Context, req *request) (*reply, error) {
	q, err := b.deps.QOTD.Post(ctx, req.channelID)
	if err != nil {
		return nil, err
	}
	return &reply{content: fmt.Sprintf("✅ Question of the day posted: **%s**", q.Question)}, nil
}

func (b *Bot) cmdQOTDChannel(ctx context.Context, req *request) (*reply, error) {
	channelID := req.str("channel")
	if channelID == "" {
		channelID = req.channelID
	}
	if err := b.deps.Settings.SetConfig(ctx, req.guildID, domain.QOTDChannelKey, channelID); err != nil {
		return nil, err
	}
	return &reply{embeds: []*discordgo.MessageEmbed{{
		Title:       "Question of the Day Channel",
		Description: fmt.Sprintf("📅 Daily questions will be posted in <#%s>.", channelID),
		Color:       colorGreen,
	}}}, nil
}

// splitMessage breaks s into parts of at most n bytes, preferring a line break in the second half
func splitMessage(s string, n int) []string {
	var parts []string
	for len(s) > n {
		cut := strings.LastIndex(s[:n], "\n")
		if cut < n/2 {
			cut = n
			for cut > 0 && !utf8.RuneStart(s[cut]) {
				cut--
			}
		}
		parts = append(parts, s[:cut])
		s = strings.TrimPrefix(s[cut:], "\n")
	}
	if s != "" {
		parts = append(parts, s)
	}
	return parts
}

func factCheckEmbed(msg *discordgo.Message, contextCount int, res *domain.FactCheck, now time.Time) *discordgo.MessageEmbed {
	title := "🔍 Fact Check Results"
	if contextCount > 0 {
		suffix := "s"
		if contextCount == 1 {
			suffix = ""
		}
		title += fmt.Sprintf(" (with %d context message%s)", contextCount, suffix)
	}
	author := "unknown"
	if msg.Author != nil {
		author = "<@" + msg.Author.ID + ">"
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("**Message from %s:**\n>>> %s", author, truncate(msg.Content, maxSettingsLen)),
		Color:       verdictColor(res.Claims),
		Timestamp:   now.UTC().Format(time.RFC3339),
	}
	for i, c := range res.Claims {
		if i == 10 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name: "…", Value: fmt.Sprintf("%d more claims in the attached report", len(res.Claims)-10)})
			break
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  truncate(fmt.Sprintf("%s %s (%s confidence)", c.Verdict.Emoji(), c.Verdict, c.Confidence), 256),
			Value: truncate(fmt.Sprintf("> %s\n%s", c.Claim, c.Explanation), maxFieldValue),
		})
	}
	if len(res.Claims) == 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Claims", Value: "No factual claims found."})
	}
	if res.OverallAssessment != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "📋 Overall Assessment", Value: truncate(res.OverallAssessment, maxFieldValue)})
	}
	var notes []string
	if res.RequiresCurrentData {
		notes = append(notes, "🕐 Requires current data")
	}
	if res.NeedsWebSearch {
		notes = append(notes, "🌐 Web search recommended")
	}
	if len(notes) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Notes", Value: strings.Join(notes, "\n")})
	}
	embed.Footer = &discordgo.MessageEmbedFooter{Text: "AI fact check, verify important information with authoritative sources"}
	return embed
}

// verdictColor is red for any false claim, orange for misleading or unverifiable, green otherwise
func verdictColor(claims []domain.Claim) int {
	if len(claims) == 0 {
		return colorBlue
	}
	color := colorGreen
	for _, c := range claims {
		switch c.Verdict {
		case domain.VerdictFalse:
			return colorRed
		case domain.VerdictMisleading, domain.VerdictUnverifiable:
			color = colorOrange
		}
	}
	return color
}

func factCheckReport(msg *discordgo.Message, contextMsgs []*discordgo.Message, res *domain.FactCheck,
	filter *discordgo.User, now time.Time) string {
	const ts = "2006-01-02 15:04:05 UTC"
	var sb strings.Builder
	w := func(format string, args ...any) { fmt.Fprintf(&sb, format+"\n", args...) }

	w("# Fact Check Report\n")
	w("**Generated:** %s\n", now.UTC().Format(ts))
	w("---\n")
	w("## Original Message\n")
	authorID := ""
	if msg.Author != nil {
		authorID = msg.Author.ID
	}
	w("**Author:** %s (ID: %s)", authorName(msg), authorID)
	w("**Timestamp:** %s", msg.Timestamp.UTC().Format(ts))
	w("**Message ID:** %s\n", msg.ID)
	w("**Content:**\n```\n%s\n```\n", msg.Content)

	if len(contextMsgs) > 0 {
		w("## Context Messages (%d messages)", len(contextMsgs))
		if filter != nil {
			name := filter.Username
			if name == "" {
				name = filter.ID
			}
			w("*Filtered for messages from: %s*", name)
		}
		for i, cm := range contextMsgs {
			w("\n### Context Message %d", i+1)
			w("**Author:** %s", authorName(cm))
			w("**Timestamp:** %s", cm.Timestamp.UTC().Format(ts))
			w("**Content:**\n```\n%s\n```", cm.Content)
		}
	}

	w("\n---\n")
	w("## Analysis Results\n")
	if len(res.Claims) > 0 {
		w("### Claims Analyzed (%d total)\n", len(res.Claims))
		for i, c := range res.Claims {
			w("#### Claim %d: %s %s\n", i+1, c.Verdict.Emoji(), c.Verdict)
			w("**Confidence:** %s\n", c.Confidence)
			w("**Claim Statement:**\n> %s\n", c.Claim)
			w("**Explanation:**\n%s", c.Explanation)
			if c.ContextNeeded != "" {
				w("\n**Additional Context:**\n%s", c.ContextNeeded)
			}
			w("")
		}
	}
	w("### Overall Assessment\n")
	w("%s\n", res.OverallAssessment)
	if res.RequiresCurrentData || res.NeedsWebSearch {
		w("### Notes\n")
		if res.RequiresCurrentData {
			w("- 🕐 Requires current data")
		}
		if res.NeedsWebSearch {
			w("- 🌐 Web search recommended")
		}
	}
	w("\n---\n")
	w("*This report was generated by an AI fact-checking system and should be used as a reference tool.*")
	w("*Always verify important information with authoritative sources.*")
	return sb.String()
}
