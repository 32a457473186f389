package bot

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"slices"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/go-pkgz/lgr"

	"github.com/umputun/guildbot/pkg/domain"
	"github.com/umputun/guildbot/pkg/guild"
	"github.com/umputun/guildbot/pkg/leaderboard"
)

// errBotSlap refuses slapping bot accounts
var errBotSlap = errors.New("can't slap bots")

// route describes how a command is checked, acknowledged and handled
type route struct {
	guildOnly bool
	feature   domain.Feature // checked by the gate when set
	admin     bool
	deferred  bool // acknowledged first, answered by editing the response
	ephemeral bool
	handler   func(ctx context.Context, req *request) (*reply, error)
}

// request is a parsed slash command invocation
type request struct {
	ic        *discordgo.Interaction
	name      string // command path, e.g. "slap user"
	guildID   string
	channelID string
	userID    string
	perms     int64
	opts      map[string]*discordgo.ApplicationCommandInteractionDataOption
	resolved  *discordgo.ApplicationCommandInteractionDataResolved
	progress  func(content string)
}

// reply is what a handler answers with
type reply struct {
	content   string
	embeds    []*discordgo.MessageEmbed
	files     []*discordgo.File
	ephemeral bool
}

func newRequest(ic *discordgo.Interaction) *request {
	data := ic.ApplicationCommandData()
	req := &request{
		ic:        ic,
		name:      data.Name,
		guildID:   ic.GuildID,
		channelID: ic.ChannelID,
		opts:      map[string]*discordgo.ApplicationCommandInteractionDataOption{},
		resolved:  data.Resolved,
		progress:  func(string) {},
	}
	switch {
	case ic.Member != nil && ic.Member.User != nil:
		req.userID = ic.Member.User.ID
		req.perms = ic.Member.Permissions
	case ic.User != nil:
		req.userID = ic.User.ID
	}

	opts := data.Options
	if len(opts) == 1 && opts[0].Type == discordgo.ApplicationCommandOptionSubCommand {
		req.name += " " + opts[0].Name
		opts = opts[0].Options
	}
	for _, o := range opts {
		req.opts[o.Name] = o
	}
	return req
}

func (r *request) str(name string) string {
	if o, ok := r.opts[name]; ok {
		if v, ok := o.Value.(string); ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func (r *request) int(name string) (int, bool) {
	o, ok := r.opts[name]
	if !ok {
		return 0, false
	}
	switch v := o.Value.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	}
	return 0, false
}

func (r *request) float(name string) (float64, bool) {
	o, ok := r.opts[name]
	if !ok {
		return 0, false
	}
	v, ok := o.Value.(float64)
	return v, ok
}

// user returns the resolved user for a user option, nil when the option is absent
func (r *request) user(name string) *discordgo.User {
	id := r.str(name)
	if id == "" {
		return nil
	}
	if r.resolved != nil {
		if u, ok := r.resolved.Users[id]; ok && u != nil {
			return u
		}
	}
	return &discordgo.User{ID: id}
}

// onInteraction is the discordgo handler for all slash commands
func (b *Bot) onInteraction(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	ctx, cancel := context.WithTimeout(b.ctx, b.cfg.CommandTimeout)
	defer cancel()
	b.dispatch(ctx, newRequest(i.Interaction))
}

// dispatch runs checks, acknowledges and executes the command. Refusals are answered privately
// and logged at INFO, failures are reported to the user and logged at WARN.
func (b *Bot) dispatch(ctx context.Context, req *request) {
	rt, ok := b.routes[req.name]
	if !ok {
		lgr.Printf("[WARN] unknown command %q", req.name)
		b.respond(req, &reply{content: "Unknown command.", ephemeral: true}, false)
		return
	}

	deferred := false
	defer func() {
		if r := recover(); r != nil {
			lgr.Printf("[ERROR] panic in command %s: %v\n%s", req.name, r, debug.Stack())
			b.respond(req, &reply{content: fmt.Sprintf("❌ %s error: internal error", req.name), ephemeral: true}, deferred)
		}
	}()

	if err := b.precheck(ctx, rt, req); err != nil {
		b.fail(req, err, false)
		return
	}

	if rt.deferred {
		if err := b.acknowledge(req, rt.ephemeral); err != nil {
			lgr.Printf("[WARN] acknowledge %s: %v", req.name, err)
			return
		}
		deferred = true
		req.progress = func(content string) {
			if _, err := b.discord.InteractionResponseEdit(req.ic, &discordgo.WebhookEdit{Content: &content}); err != nil {
				lgr.Printf("[DEBUG] progress edit for %s: %v", req.name, err)
			}
		}
	}

	rep, err := rt.handler(ctx, req)
	if err != nil {
		b.fail(req, err, deferred)
		return
	}
	if rt.ephemeral {
		rep.ephemeral = true
	}
	b.respond(req, rep, deferred)
	lgr.Printf("[DEBUG] command %s done for user %s in guild %s", req.name, req.userID, req.guildID)
}

// precheck applies guild context, feature gate and admin checks, in that order
func (b *Bot) precheck(ctx context.Context, rt route, req *request) error {
	if (rt.guildOnly || rt.feature != "" || rt.admin) && req.guildID == "" {
		return guild.ErrGuildOnly
	}
	if rt.feature != "" {
		if err := b.deps.Gate.Check(ctx, req.guildID, rt.feature); err != nil {
			return err
		}
	}
	if rt.admin && !b.isAdmin(req) {
		lgr.Printf("[INFO] %s denied for non-admin %s in guild %s", req.name, req.userID, req.guildID)
		return guild.ErrNotAdmin
	}
	return nil
}

func (b *Bot) isAdmin(req *request) bool {
	return req.perms&discordgo.PermissionAdministrator != 0 || slices.Contains(b.cfg.DeveloperIDs, req.userID)
}

func (b *Bot) acknowledge(req *request, ephemeral bool) error {
	resp := &discordgo.InteractionResponse{Type: discordgo.InteractionResponseDeferredChannelMessageWithSource}
	if ephemeral {
		resp.Data = &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral}
	}
	return b.discord.InteractionRespond(req.ic, resp)
}

// fail answers with a refusal text or an error line
func (b *Bot) fail(req *request, err error, deferred bool) {
	if text, ok := refusalText(err); ok {
		lgr.Printf("[INFO] %s refused for %s in guild %q: %v", req.name, req.userID, req.guildID, err)
		b.respond(req, &reply{content: text, ephemeral: true}, deferred)
		return
	}
	lgr.Printf("[WARN] %s failed for %s in guild %q: %v", req.name, req.userID, req.guildID, err)
	b.respond(req, &reply{content: truncate(fmt.Sprintf("❌ %s error: %v", req.name, err), maxContent), ephemeral: true}, deferred)
}

// respond sends the reply as the interaction response, or edits the deferred one
func (b *Bot) respond(req *request, rep *reply, deferred bool) {
	if deferred {
		content := rep.content
		embeds := rep.embeds
		if embeds == nil {
			embeds = []*discordgo.MessageEmbed{}
		}
		edit := &discordgo.WebhookEdit{Content: &content, Embeds: &embeds, Files: rep.files}
		if _, err := b.discord.InteractionResponseEdit(req.ic, edit); err != nil {
			lgr.Printf("[WARN] edit response for %s: %v", req.name, err)
		}
		return
	}

	data := &discordgo.InteractionResponseData{Content: rep.content, Embeds: rep.embeds, Files: rep.files}
	if rep.ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	err := b.discord.InteractionRespond(req.ic, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		lgr.Printf("[WARN] respond to %s: %v", req.name, err)
	}
}

// refusalText maps expected refusals to user-facing text
func refusalText(err error) (string, bool) {
	var fd *guild.FeatureDisabledError
	var inv *guild.InvalidFeatureError
	switch {
	case errors.Is(err, guild.ErrGuildOnly):
		return "This command can only be used in a server.", true
	case errors.As(err, &fd):
		return fmt.Sprintf("The '%s' feature is not enabled for this server.", fd.Feature.DisplayName()), true
	case errors.Is(err, guild.ErrNotAdmin):
		return "You need administrator permission to use this command.", true
	case errors.As(err, &inv):
		names := make([]string, len(inv.Choices))
		for i, c := range inv.Choices {
			names[i] = "`" + string(c) + "`"
		}
		return "❌ Invalid feature. Available options: " + strings.Join(names, ", "), true
	case errors.Is(err, guild.ErrConfigNotFound):
		return "Configuration key not found.", true
	case errors.Is(err, domain.ErrConflict):
		return "Settings changed concurrently, try again.", true
	case errors.Is(err, domain.ErrInvalidSetting):
		return "❌ " + err.Error(), true
	case errors.Is(err, leaderboard.ErrSelfSlap):
		return "🤔 You can't slap yourself! That's just sad.", true
	case errors.Is(err, errBotSlap):
		return "🤖 You can't slap bots! They have feelings too... maybe.", true
	case errors.Is(err, errBadMessageLink):
		return "❌ Please provide a valid Discord message link from this server.", true
	}
	return "", false
}
