// Package bot connects the guild services to Discord: slash commands, the link listener,
// the question of the day publisher and presence rotation.
package bot

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/go-pkgz/lgr"

	"github.com/umputun/guildbot/pkg/domain"
	"github.com/umputun/guildbot/pkg/llm"
	"github.com/umputun/guildbot/pkg/market"
)

//go:generate moq -out mocks/discord.go -pkg mocks -skip-ensure -fmt goimports . Discord
//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . Settings
//go:generate moq -out mocks/gate.go -pkg mocks -skip-ensure -fmt goimports . Gate
//go:generate moq -out mocks/threads.go -pkg mocks -skip-ensure -fmt goimports . Threads
//go:generate moq -out mocks/social.go -pkg mocks -skip-ensure -fmt goimports . Social
//go:generate moq -out mocks/ai.go -pkg mocks -skip-ensure -fmt goimports . AI
//go:generate moq -out mocks/poster.go -pkg mocks -skip-ensure -fmt goimports . Poster
//go:generate moq -out mocks/stocks.go -pkg mocks -skip-ensure -fmt goimports . Stocks
//go:generate moq -out mocks/analyst.go -pkg mocks -skip-ensure -fmt goimports . Analyst

// Discord is the part of *discordgo.Session used by command handlers and the publisher
type Discord interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessage(channelID, messageID string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error)
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	GuildChannels(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Channel, error)
	ThreadStartComplex(channelID string, data *discordgo.ThreadStart, options ...discordgo.RequestOption) (*discordgo.Channel, error)
}

// Settings manages guild feature flags and freeform config
type Settings interface {
	Settings(ctx context.Context, guildID string) (*domain.GuildSettings, error)
	SetFeature(ctx context.Context, guildID, name string, enabled bool) (domain.Feature, error)
	Config(ctx context.Context, guildID string) (map[string]any, error)
	GetConfig(ctx context.Context, guildID, key string) (value any, ok bool, err error)
	SetConfig(ctx context.Context, guildID, key string, value any) error
	DeleteConfig(ctx context.Context, guildID, key string) error
}

// Gate refuses commands outside a guild or with the feature turned off
type Gate interface {
	Check(ctx context.Context, guildID string, f domain.Feature) error
}

// Threads pins a model to a conversation thread
type Threads interface {
	Resolve(ctx context.Context, guildID, threadID, model string, params domain.GenParams) (*domain.ThreadBinding, error)
}

// Social records and summarizes links and slaps
type Social interface {
	RecordLinks(ctx context.Context, guildID, userID, text string) (int, error)
	Links(ctx context.Context, guildID string) (*domain.LinkLeaderboard, error)
	LinkStats(ctx context.Context, guildID, userID string) (*domain.LinkStats, error)
	Slap(ctx context.Context, guildID, slapperID, slappedID string) error
	Slaps(ctx context.Context, guildID string) (*domain.SlapLeaderboard, error)
	SlapStats(ctx context.Context, guildID, userID string) (*domain.SlapStats, error)
}

// AI answers questions and checks facts
type AI interface {
	Ask(ctx context.Context, req llm.AskRequest) (string, error)
	FactCheck(ctx context.Context, messages []domain.ChatMessage) (*domain.FactCheck, error)
}

// Poster posts a question of the day to a channel
type Poster interface {
	Post(ctx context.Context, channelID string) (*domain.Question, error)
}

// Stocks returns market quotes
type Stocks interface {
	Quote(ctx context.Context, symbol string) (*market.Quote, error)
}

// Analyst runs the stock analysis agent
type Analyst interface {
	Analyze(ctx context.Context, symbol, question string, progress llm.ProgressFunc) (string, error)
}

// Config holds bot parameters
type Config struct {
	Token          string
	DevGuildID     string
	DeveloperIDs   []string
	Statuses       []string
	StatusEvery    time.Duration
	DefaultModel   string
	GrokModel      string
	CommandTimeout time.Duration
}

// Deps are the services behind the commands
type Deps struct {
	Settings Settings
	Gate     Gate
	Threads  Threads
	Social   Social
	AI       AI
	QOTD     Poster
	Stocks   Stocks
	Analyst  Analyst
}

// Bot is the Discord front end
type Bot struct {
	cfg     Config
	deps    Deps
	session *discordgo.Session
	discord Discord
	routes  map[string]route
	randN   func(n int) int
	now     func() time.Time
	started time.Time

	ctx context.Context //nolint:containedctx // discordgo handlers carry no context

	guildsMu sync.RWMutex
	guilds   map[string]struct{}
}

// New makes a bot with a discordgo session, the session is opened by Run
func New(cfg Config, deps Deps) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent
	b := newBot(cfg, deps, session)
	b.session = session
	return b, nil
}

func newBot(cfg Config, deps Deps, discord Discord) *Bot {
	if cfg.CommandTimeout == 0 {
		cfg.CommandTimeout = 3 * time.Minute
	}
	if cfg.StatusEvery == 0 {
		cfg.StatusEvery = 5 * time.Minute
	}
	b := &Bot{
		cfg:     cfg,
		deps:    deps,
		discord: discord,
		randN:   rand.IntN,
		now:     time.Now,
		ctx:     context.Background(),
		guilds:  map[string]struct{}{},
	}
	b.started = b.now()
	b.routes = b.makeRoutes()
	return b
}

// Run opens the gateway connection and blocks until ctx is canceled
func (b *Bot) Run(ctx context.Context) error {
	b.ctx = ctx
	b.session.AddHandler(b.onReady)
	b.session.AddHandler(b.onInteraction)
	b.session.AddHandler(b.onMessage)
	b.session.AddHandler(b.onGuildCreate)
	b.session.AddHandler(b.onGuildDelete)

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	lgr.Printf("[INFO] discord session opened")

	var wg sync.WaitGroup
	if len(b.cfg.Statuses) > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.rotateStatus(ctx, b.session)
		}()
	}

	<-ctx.Done()
	wg.Wait()
	if err := b.session.Close(); err != nil {
		lgr.Printf("[WARN] close discord session: %v", err)
	}
	lgr.Printf("[INFO] discord session closed")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	for _, g := range r.Guilds {
		b.addGuild(g.ID)
	}
	cmds, err := s.ApplicationCommandBulkOverwrite(r.User.ID, b.cfg.DevGuildID, commands())
	if err != nil {
		lgr.Printf("[ERROR] register commands: %v", err)
		return
	}
	scope := "globally"
	if b.cfg.DevGuildID != "" {
		scope = "in guild " + b.cfg.DevGuildID
	}
	lgr.Printf("[INFO] logged in as %s, %d commands registered %s", r.User.Username, len(cmds), scope)
}

func (b *Bot) onGuildCreate(_ *discordgo.Session, g *discordgo.GuildCreate) {
	if g.Guild == nil || g.ID == "" {
		return
	}
	b.addGuild(g.ID)
	lgr.Printf("[DEBUG] guild available %s (%s)", g.ID, g.Name)
}

func (b *Bot) onGuildDelete(_ *discordgo.Session, g *discordgo.GuildDelete) {
	if g.Guild == nil || g.ID == "" {
		return
	}
	b.guildsMu.Lock()
	delete(b.guilds, g.ID)
	b.guildsMu.Unlock()
	lgr.Printf("[INFO] left guild %s", g.ID)
}

func (b *Bot) addGuild(id string) {
	b.guildsMu.Lock()
	b.guilds[id] = struct{}{}
	b.guildsMu.Unlock()
}

// guildIDs returns known guild ids, sorted
func (b *Bot) guildIDs() []string {
	b.guildsMu.RLock()
	defer b.guildsMu.RUnlock()
	res := make([]string, 0, len(b.guilds))
	for id := range b.guilds {
		res = append(res, id)
	}
	slices.Sort(res)
	return res
}

// onMessage records links posted by people in guild channels
func (b *Bot) onMessage(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}
	ctx, cancel := context.WithTimeout(b.ctx, 10*time.Second)
	defer cancel()
	n, err := b.deps.Social.RecordLinks(ctx, m.GuildID, m.Author.ID, m.Content)
	if err != nil {
		lgr.Printf("[WARN] record links from %s in guild %s: %v", m.Author.ID, m.GuildID, err)
		return
	}
	if n > 0 {
		lgr.Printf("[DEBUG] recorded %d link(s) from %s in guild %s", n, m.Author.ID, m.GuildID)
	}
}

// statusUpdater is satisfied by *discordgo.Session
type statusUpdater interface {
	UpdateStatusComplex(usd discordgo.UpdateStatusData) error
}

// rotateStatus cycles presence messages until ctx is done
func (b *Bot) rotateStatus(ctx context.Context, s statusUpdater) {
	ticker := time.NewTicker(b.cfg.StatusEvery)
	defer ticker.Stop()
	idx := 0
	for {
		err := s.UpdateStatusComplex(discordgo.UpdateStatusData{
			Activities: []*discordgo.Activity{{Name: b.cfg.Statuses[idx], Type: discordgo.ActivityTypeWatching}},
		})
		if err != nil {
			lgr.Printf("[DEBUG] update status: %v", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			idx = (idx + 1) % len(b.cfg.Statuses)
		}
	}
}
