package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/sashabaranov/go-openai"

	"github.com/umputun/guildbot/pkg/market"
)

//go:generate moq -out mocks/market_data.go -pkg mocks -skip-ensure -fmt goimports . MarketData

// MarketData is the data source behind the analyst's tools
type MarketData interface {
	Quote(ctx context.Context, symbol string) (*market.Quote, error)
	History(ctx context.Context, symbol, rng, interval string) ([]market.Bar, error)
}

// ErrTooManyTurns is returned when the agent does not produce an answer within the turn limit
var ErrTooManyTurns = errors.New("analysis did not finish within turn limit")

const (
	analystMaxTurns   = 15
	historyMaxBars    = 60
	compareMaxSymbols = 5
)

const analystSystemPrompt = `You are a careful equity analyst. Use the tools to gather data before answering.

Workflow:
1. Start with get_price for the requested symbol.
2. Review get_price_history with a period that fits the question (short term 1mo-3mo, medium 6mo-1y, long 2y-5y).
3. Use compare_stocks for peer context when useful.
4. Synthesize: brief executive summary, key numbers, bull and bear case, risks.

Rules: disclose data limitations, state explicitly when a tool fails, never invent numbers. Format the answer in Discord markdown.`

// ProgressFunc receives a short human readable line for each tool call
type ProgressFunc func(step string)

// Analyst runs a tool-calling agent loop over market data
type Analyst struct {
	client *Client
	data   MarketData
	model  string
	now    func() time.Time
}

// NewAnalyst makes a stock analyst
func NewAnalyst(client *Client, data MarketData) *Analyst {
	return &Analyst{client: client, data: data, model: client.cfg.AnalystModel, now: time.Now}
}

type priceArgs struct {
	Symbol string `json:"symbol" jsonschema:"description=Ticker symbol, e.g. AAPL"`
}

type historyArgs struct {
	Symbol   string `json:"symbol" jsonschema:"description=Ticker symbol"`
	Period   string `json:"period" jsonschema:"enum=1mo,enum=3mo,enum=6mo,enum=1y,enum=2y,enum=5y,description=History range"`
	Interval string `json:"interval" jsonschema:"enum=1d,enum=1wk,enum=1mo,description=Candle interval"`
}

type compareArgs struct {
	Symbols []string `json:"symbols" jsonschema:"description=Ticker symbols to compare (max 5)"`
}

// tools describes the functions offered to the model
func (a *Analyst) tools() ([]openai.Tool, error) {
	defs := []struct {
		name, description string
		args              any
	}{
		{"get_price", "Current price, daily change, day range, 52 week range and volume for a ticker", &priceArgs{}},
		{"get_price_history", "OHLCV candles and summary statistics for a ticker over a period", &historyArgs{}},
		{"compare_stocks", "Side by side current quotes for several tickers", &compareArgs{}},
	}
	res := make([]openai.Tool, 0, len(defs))
	for _, d := range defs {
		schema, err := schemaFor(d.args)
		if err != nil {
			return nil, err
		}
		res = append(res, openai.Tool{
			Type:     openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{Name: d.name, Description: d.description, Parameters: schema},
		})
	}
	return res, nil
}

// Analyze answers question about symbol, calling tools until the model replies with plain content
func (a *Analyst) Analyze(ctx context.Context, symbol, question string, progress ProgressFunc) (string, error) {
	if progress == nil {
		progress = func(string) {}
	}
	tools, err := a.tools()
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf("Analyze %s. Today is %s.", strings.ToUpper(symbol), a.now().Format("2006-01-02"))
	if question != "" {
		prompt += " Focus on this question: " + question
	}
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: analystSystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	}

	for turn := 0; turn < analystMaxTurns; turn++ {
		resp, err := a.client.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:      a.model,
			Messages:   messages,
			Tools:      tools,
			ToolChoice: "auto",
		})
		if err != nil {
			return "", fmt.Errorf("llm request failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("no response from llm")
		}

		msg := resp.Choices[0].Message
		if len(msg.ToolCalls) == 0 {
			answer := a.client.Sanitize(msg.Content)
			if answer == "" {
				return "", fmt.Errorf("empty analysis from llm")
			}
			return answer, nil
		}

		messages = append(messages, msg)
		for _, tc := range msg.ToolCalls {
			progress(fmt.Sprintf("🔧 %s %s", tc.Function.Name, compactArgs(tc.Function.Arguments)))
			out := a.runTool(ctx, tc.Function.Name, tc.Function.Arguments)
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    out,
				Name:       tc.Function.Name,
				ToolCallID: tc.ID,
			})
		}
	}
	return "", ErrTooManyTurns
}

// runTool executes one tool call, failures are reported to the model as {"error": ...}
func (a *Analyst) runTool(ctx context.Context, name, rawArgs string) string {
	res, err := a.callTool(ctx, name, rawArgs)
	if err != nil {
		lgr.Printf("[DEBUG] analyst tool %s failed: %v", name, err)
		res = map[string]string{"error": err.Error()}
	}
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Sprintf(`{"error":%q}`, err.Error())
	}
	return string(data)
}

func (a *Analyst) callTool(ctx context.Context, name, rawArgs string) (any, error) {
	switch name {
	case "get_price":
		var args priceArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return nil, fmt.Errorf("bad arguments: %w", err)
		}
		return a.data.Quote(ctx, args.Symbol)

	case "get_price_history":
		args := historyArgs{Period: "1y", Interval: "1d"}
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return nil, fmt.Errorf("bad arguments: %w", err)
		}
		bars, err := a.data.History(ctx, args.Symbol, args.Period, args.Interval)
		if err != nil {
			return nil, err
		}
		return summarizeHistory(args.Symbol, bars), nil

	case "compare_stocks":
		var args compareArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return nil, fmt.Errorf("bad arguments: %w", err)
		}
		if len(args.Symbols) > compareMaxSymbols {
			args.Symbols = args.Symbols[:compareMaxSymbols]
		}
		quotes := make(map[string]any, len(args.Symbols))
		for _, s := range args.Symbols {
			q, err := a.data.Quote(ctx, s)
			if err != nil {
				quotes[s] = map[string]string{"error": err.Error()}
				continue
			}
			quotes[s] = q
		}
		return quotes, nil
	}
	return nil, fmt.Errorf("unknown tool %q", name)
}

type historySummary struct {
	Symbol        string       `json:"symbol"`
	Points        int          `json:"points"`
	First         float64      `json:"first_close"`
	Last          float64      `json:"last_close"`
	Min           float64      `json:"min_close"`
	Max           float64      `json:"max_close"`
	ChangePercent float64      `json:"change_percent"`
	Bars          []market.Bar `json:"bars"`
}

// summarizeHistory keeps the most recent bars and adds range statistics
func summarizeHistory(symbol string, bars []market.Bar) historySummary {
	res := historySummary{Symbol: strings.ToUpper(symbol), Points: len(bars)}
	if len(bars) == 0 {
		res.Bars = []market.Bar{}
		return res
	}
	res.First, res.Last = bars[0].Close, bars[len(bars)-1].Close
	res.Min, res.Max = bars[0].Close, bars[0].Close
	for _, b := range bars {
		res.Min = min(res.Min, b.Close)
		res.Max = max(res.Max, b.Close)
	}
	if res.First != 0 {
		res.ChangePercent = (res.Last - res.First) / res.First * 100
	}
	if len(bars) > historyMaxBars {
		bars = bars[len(bars)-historyMaxBars:]
	}
	res.Bars = bars
	return res
}

func compactArgs(raw string) string {
	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err != nil || len(args) == 0 {
		return ""
	}
	parts := make([]string, 0, len(args))
	for _, k := range []string{"symbol", "symbols", "period", "interval"} {
		if v, ok := args[k]; ok {
			parts = append(parts, fmt.Sprintf("%s=%v", k, v))
		}
	}
	return strings.Join(parts, " ")
}
