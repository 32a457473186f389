package bot

import (
	"github.com/bwmarrin/discordgo"

	"github.com/umputun/guildbot/pkg/domain"
)

func featureChoices() []*discordgo.ApplicationCommandOptionChoice {
	res := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.AllFeatures()))
	for _, f := range domain.AllFeatures() {
		res = append(res, &discordgo.ApplicationCommandOptionChoice{Name: f.DisplayName(), Value: string(f)})
	}
	return res
}

func ptr[T any](v T) *T { return &v }

// commands returns slash command definitions registered on ready
func commands() []*discordgo.ApplicationCommand {
	featureOpt := func(verb string) []*discordgo.ApplicationCommandOption {
		return []*discordgo.ApplicationCommandOption{{
			Type: discordgo.ApplicationCommandOptionString, Name: "feature", Required: true,
			Description: "The feature to " + verb + " (ai, factcheck, grok, qotd)",
			Choices:     featureChoices(),
		}}
	}
	keyOpt := &discordgo.ApplicationCommandOption{
		Type: discordgo.ApplicationCommandOptionString, Name: "key", Description: "The configuration key", Required: true,
	}
	symbolOpt := &discordgo.ApplicationCommandOption{
		Type: discordgo.ApplicationCommandOptionString, Name: "symbol", Description: "Ticker symbol, e.g. AAPL", Required: true,
	}

	return []*discordgo.ApplicationCommand{
		{Name: "settings", Description: "View current guild settings"},
		{Name: "enable", Description: "Enable a feature for this guild", Options: featureOpt("enable")},
		{Name: "disable", Description: "Disable a feature for this guild", Options: featureOpt("disable")},
		{Name: "setconfig", Description: "Set a custom configuration value", Options: []*discordgo.ApplicationCommandOption{
			keyOpt,
			{Type: discordgo.ApplicationCommandOptionString, Name: "value", Description: "The configuration value", Required: true},
		}},
		{Name: "getconfig", Description: "Get a custom configuration value", Options: []*discordgo.ApplicationCommandOption{keyOpt}},
		{Name: "delconfig", Description: "Delete a custom configuration value", Options: []*discordgo.ApplicationCommandOption{keyOpt}},
		{Name: "ask", Description: "Ask a question to an AI model and get an answer in a thread", Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "question", Description: "What do you want to ask?", Required: true},
			{Type: discordgo.ApplicationCommandOptionString, Name: "model", Description: "The AI model to use"},
			{Type: discordgo.ApplicationCommandOptionNumber, Name: "temperature", Description: "How creative the model should be (0.01-1.0)",
				MinValue: ptr(domain.MinTemperature), MaxValue: domain.MaxTemperature},
			{Type: discordgo.ApplicationCommandOptionInteger, Name: "max_tokens", Description: "Maximum number of tokens for the response (1-500)",
				MinValue: ptr(float64(domain.MinMaxTokens)), MaxValue: float64(domain.MaxMaxTokens)},
		}},
		{Name: "grok", Description: "Get a quick answer from Grok", Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "question", Description: "What do you want to ask?", Required: true},
		}},
		{Name: "factcheck", Description: "Fact-check a message", Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "message_url", Description: "Link to the message to check", Required: true},
			{Type: discordgo.ApplicationCommandOptionInteger, Name: "messages_before", Description: "Context messages before it (1-20)",
				MinValue: ptr(1.0), MaxValue: maxContextMessages},
			{Type: discordgo.ApplicationCommandOptionUser, Name: "user", Description: "Only use context messages from this user"},
		}},
		{Name: "qotd", Description: "Post a question of the day in this channel"},
		{Name: "qotdchannel", Description: "Set the channel for the daily question", Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionChannel, Name: "channel", Description: "Channel for daily questions, current when empty",
				ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText}},
		}},
		{Name: "slap", Description: "Slap commands", Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "user", Description: "Slap someone!",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionUser, Name: "target", Description: "The user you want to slap", Required: true},
				}},
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "leaderboard", Description: "Show who's been slapped the most"},
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "stats", Description: "Show your personal slap statistics"},
		}},
		{Name: "links", Description: "Link tracking commands", Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "stats", Description: "Show the link leaderboard"},
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "my", Description: "Show your link statistics"},
		}},
		{Name: "praise", Description: "Praise the bot!"},
		{Name: "8ball", Description: "Ask the 8-ball a question", Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "question", Description: "Your question", Required: true},
		}},
		{Name: "host", Description: "Information about the bot process and its host"},
		{Name: "stock", Description: "Stock market commands", Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "price", Description: "Get the current price and change for a stock",
				Options: []*discordgo.ApplicationCommandOption{symbolOpt}},
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "analyze", Description: "Get AI-powered analysis of a stock",
				Options: []*discordgo.ApplicationCommandOption{
					symbolOpt,
					{Type: discordgo.ApplicationCommandOptionString, Name: "question", Description: "What should the analysis focus on?"},
				}},
		}},
	}
}

// makeRoutes binds command paths to checks and handlers
func (b *Bot) makeRoutes() map[string]route {
	return map[string]route{
		"settings":    {guildOnly: true, handler: b.cmdSettings},
		"enable":      {guildOnly: true, admin: true, ephemeral: true, handler: b.cmdEnable},
		"disable":     {guildOnly: true, admin: true, ephemeral: true, handler: b.cmdDisable},
		"setconfig":   {guildOnly: true, admin: true, ephemeral: true, handler: b.cmdSetConfig},
		"getconfig":   {guildOnly: true, ephemeral: true, handler: b.cmdGetConfig},
		"delconfig":   {guildOnly: true, admin: true, ephemeral: true, handler: b.cmdDelConfig},
		"ask":         {feature: domain.FeatureAI, deferred: true, handler: b.cmdAsk},
		"grok":        {feature: domain.FeatureGrok, deferred: true, handler: b.cmdGrok},
		"factcheck":   {feature: domain.FeatureFactCheck, deferred: true, handler: b.cmdFactCheck},
		"qotd":        {feature: domain.FeatureQOTD, deferred: true, ephemeral: true, handler: b.cmdQOTD},
		"qotdchannel": {feature: domain.FeatureQOTD, admin: true, ephemeral: true, handler: b.cmdQOTDChannel},

		"slap user":        {guildOnly: true, handler: b.cmdSlap},
		"slap leaderboard": {guildOnly: true, handler: b.cmdSlapLeaderboard},
		"slap stats":       {guildOnly: true, handler: b.cmdSlapStats},
		"links stats":      {guildOnly: true, handler: b.cmdLinks},
		"links my":         {guildOnly: true, handler: b.cmdLinksMy},

		"praise": {handler: b.cmdPraise},
		"8ball":  {handler: b.cmdEightBall},
		"host":   {handler: b.cmdHost},

		"stock price":   {deferred: true, handler: b.cmdStockPrice},
		"stock analyze": {deferred: true, handler: b.cmdStockAnalyze},
	}
}
