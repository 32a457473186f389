package bot

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/umputun/guildbot/pkg/domain"
)

const colorEightBall = 0xBEBEFE

var eightBallAnswers = []string{
	"It is certain.",
	"It is decidedly so.",
	"You may rely on it.",
	"Without a doubt.",
	"Yes - definitely.",
	"As I see it, yes.",
	"Most likely.",
	"Outlook good.",
	"Yes.",
	"Signs point to yes.",
	"Reply hazy, try again.",
	"Ask again later.",
	"Better not tell you now.",
	"Cannot predict now.",
	"Concentrate and ask again later.",
	"Don't count on it.",
	"My reply is no.",
	"My sources say no.",
	"Outlook not so good.",
	"Very doubtful.",
}

func (b *Bot) cmdPraise(context.Context, *request) (*reply, error) {
	return &reply{content: "OOF"}, nil
}

func (b *Bot) cmdEightBall(_ context.Context, req *request) (*reply, error) {
	question := strings.TrimSpace(req.str("question"))
	if question == "" {
		return nil, fmt.Errorf("%w: empty question", domain.ErrInvalidSetting)
	}
	return &reply{embeds: []*discordgo.MessageEmbed{{
		Title:       "🎱 My Answer:",
		Description: eightBallAnswers[b.randN(len(eightBallAnswers))],
		Color:       colorEightBall,
		Footer:      &discordgo.MessageEmbedFooter{Text: "The question was: " + truncate(question, 200)},
	}}}, nil
}

// cmdHost reports the platform and the bot process resources
func (b *Bot) cmdHost(context.Context, *request) (*reply, error) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	uptime := b.now().Sub(b.started).Truncate(time.Second)
	return &reply{embeds: []*discordgo.MessageEmbed{{
		Title: "💻 Host Machine Information",
		Color: colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "OS", Value: fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
			{Name: "CPU", Value: fmt.Sprintf("%d cores", runtime.NumCPU())},
			{Name: "Memory", Value: fmt.Sprintf("%.2fMB heap / %.2fMB from system", mb(m.HeapAlloc), mb(m.Sys))},
			{Name: "Runtime", Value: fmt.Sprintf("%s, %d goroutines", runtime.Version(), runtime.NumGoroutine())},
			{Name: "Uptime", Value: uptime.String()},
		},
	}}}, nil
}

func mb(n uint64) float64 { return float64(n) / (1024 * 1024) }
