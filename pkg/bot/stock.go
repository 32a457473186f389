package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/umputun/guildbot/pkg/domain"
)

const colorAnalysis = 0x00FFAA

func (b *Bot) cmdStockPrice(ctx context.Context, req *request) (*reply, error) {
	symbol := strings.ToUpper(req.str("symbol"))
	if symbol == "" {
		return nil, fmt.Errorf("%w: empty symbol", domain.ErrInvalidSetting)
	}
	q, err := b.deps.Stocks.Quote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	color, sign := colorGreen, "+"
	if q.Change < 0 {
		color, sign = colorRed, ""
	}
	title := symbol
	if q.Name != "" {
		title = fmt.Sprintf("%s (%s)", q.Name, symbol)
	}
	fields := []*discordgo.MessageEmbedField{
		{Name: "💰 Price", Value: fmt.Sprintf("%.2f %s", q.Price, q.Currency), Inline: true},
		{Name: "📈 Change", Value: fmt.Sprintf("%s%.2f (%s%.2f%%)", sign, q.Change, sign, q.ChangePercent), Inline: true},
	}
	if q.DayHigh > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "📊 Day Range", Value: fmt.Sprintf("%.2f - %.2f", q.DayLow, q.DayHigh), Inline: true})
	}
	if q.FiftyTwoWeekHigh > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "📅 52 Week Range", Value: fmt.Sprintf("%.2f - %.2f", q.FiftyTwoWeekLow, q.FiftyTwoWeekHigh), Inline: true})
	}
	ts := q.Time
	if ts.IsZero() {
		ts = b.now()
	}
	return &reply{embeds: []*discordgo.MessageEmbed{{
		Title:     title,
		Color:     color,
		Fields:    fields,
		Footer:    &discordgo.MessageEmbedFooter{Text: "Data from Yahoo Finance"},
		Timestamp: ts.UTC().Format(time.RFC3339),
	}}}, nil
}

// cmdStockAnalyze runs the analyst and shows each tool call as a progress edit
func (b *Bot) cmdStockAnalyze(ctx context.Context, req *request) (*reply, error) {
	symbol := strings.ToUpper(req.str("symbol"))
	if symbol == "" {
		return nil, fmt.Errorf("%w: empty symbol", domain.ErrInvalidSetting)
	}
	question := req.str("question")

	var steps []string
	req.progress(fmt.Sprintf("📊 Analyzing **%s**...", symbol))
	answer, err := b.deps.Analyst.Analyze(ctx, symbol, question, func(step string) {
		steps = append(steps, step)
		req.progress(truncate(fmt.Sprintf("📊 Analyzing **%s**...\n%s", symbol, strings.Join(steps, "\n")), maxContent))
	})
	if err != nil {
		return nil, err
	}
	return analysisReply(symbol, answer, steps), nil
}

// analysisReply renders the analysis as one embed, a longer text is attached in full as markdown
func analysisReply(symbol, text string, steps []string) *reply {
	if strings.TrimSpace(text) == "" {
		text = "No analysis produced."
	}
	embed := &discordgo.MessageEmbed{
		Title:       "📊 Analysis for " + symbol,
		Description: truncate(text, maxEmbedDesc),
		Color:       colorAnalysis,
	}
	if len(steps) > 0 {
		embed.Fields = []*discordgo.MessageEmbedField{{
			Name: "🛠 Tools Used", Value: truncate("```\n"+strings.Join(steps, "\n"), maxFieldValue-4) + "\n```",
		}}
	}
	rep := &reply{embeds: []*discordgo.MessageEmbed{embed}}
	if len(text) > maxEmbedDesc {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "Full analysis attached"}
		rep.files = []*discordgo.File{{
			Name:        fmt.Sprintf("analysis_%s.md", symbol),
			ContentType: "text/markdown",
			Reader:      strings.NewReader(fmt.Sprintf("# Analysis for %s\n\n%s\n", symbol, text)),
		}}
	}
	return rep
}
