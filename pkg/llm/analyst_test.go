package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/guildbot/pkg/llm/mocks"
	"github.com/umputun/guildbot/pkg/market"
)

func toolCall(id, name, args string) openai.ToolCall {
	return openai.ToolCall{ID: id, Type: openai.ToolTypeFunction,
		Function: openai.FunctionCall{Name: name, Arguments: args}}
}

func TestAnalyst_Analyze(t *testing.T) {
	data := &mocks.MarketDataMock{
		QuoteFunc: func(_ context.Context, symbol string) (*market.Quote, error) {
			if symbol == "NOPE" {
				return nil, market.ErrNotFound
			}
			return &market.Quote{Symbol: symbol, Price: 100, ChangePercent: 1.5}, nil
		},
		HistoryFunc: func(_ context.Context, symbol, rng, interval string) ([]market.Bar, error) {
			return []market.Bar{{Close: 80}, {Close: 120}, {Close: 100}}, nil
		},
	}

	var mu sync.Mutex
	var toolReplies []string
	srv, calls := completionServer(t, func(req openai.ChatCompletionRequest, _ *http.Request) {
		assert.Equal(t, "test-analyst", req.Model)
		assert.Len(t, req.Tools, 3)
		mu.Lock()
		defer mu.Unlock()
		for _, m := range req.Messages {
			if m.Role == openai.ChatMessageRoleTool {
				toolReplies = append(toolReplies, m.ToolCallID+"="+m.Content)
			}
		}
	},
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, ToolCalls: []openai.ToolCall{
			toolCall("c1", "get_price", `{"symbol":"AAPL"}`),
			toolCall("c2", "get_price_history", `{"symbol":"AAPL","period":"6mo","interval":"1d"}`),
		}},
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, ToolCalls: []openai.ToolCall{
			toolCall("c3", "compare_stocks", `{"symbols":["MSFT","NOPE"]}`),
		}},
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "**AAPL** looks fine"},
	)

	a := NewAnalyst(NewClient(testConfig(srv.URL)), data)
	a.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }

	var steps []string
	answer, err := a.Analyze(context.Background(), "aapl", "is it overvalued?", func(s string) { steps = append(steps, s) })
	require.NoError(t, err)
	assert.Equal(t, "**AAPL** looks fine", answer)
	assert.Equal(t, int32(3), atomic.LoadInt32(calls))

	require.Len(t, steps, 3)
	assert.Equal(t, "🔧 get_price symbol=AAPL", steps[0])
	assert.Equal(t, "🔧 get_price_history symbol=AAPL period=6mo interval=1d", steps[1])
	assert.Contains(t, steps[2], "compare_stocks")

	require.Len(t, data.QuoteCalls(), 3)
	require.Len(t, data.HistoryCalls(), 1)
	assert.Equal(t, "6mo", data.HistoryCalls()[0].Rng)

	joined := strings.Join(toolReplies, "\n")
	assert.Contains(t, joined, `c1={"symbol":"AAPL"`)
	assert.Contains(t, joined, `"change_percent":25`)
	assert.Contains(t, joined, `"min_close":80`)
	assert.Contains(t, joined, `"NOPE":{"error":"symbol not found"}`)
}

func TestAnalyst_ToolErrors(t *testing.T) {
	data := &mocks.MarketDataMock{
		QuoteFunc: func(context.Context, string) (*market.Quote, error) { return nil, errors.New("upstream down") },
	}
	a := NewAnalyst(NewClient(testConfig("http://127.0.0.1:0")), data)

	assert.JSONEq(t, `{"error":"upstream down"}`, a.runTool(context.Background(), "get_price", `{"symbol":"X"}`))
	assert.Contains(t, a.runTool(context.Background(), "get_price", `not json`), "bad arguments")
	assert.JSONEq(t, `{"error":"unknown tool \"buy_stock\""}`, a.runTool(context.Background(), "buy_stock", `{}`))
}

func TestAnalyst_TooManyTurns(t *testing.T) {
	data := &mocks.MarketDataMock{
		QuoteFunc: func(_ context.Context, symbol string) (*market.Quote, error) {
			return &market.Quote{Symbol: symbol}, nil
		},
	}
	srv, calls := completionServer(t, nil, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant,
		ToolCalls: []openai.ToolCall{toolCall("c", "get_price", `{"symbol":"AAPL"}`)}})

	a := NewAnalyst(NewClient(testConfig(srv.URL)), data)
	_, err := a.Analyze(context.Background(), "AAPL", "", nil)
	require.ErrorIs(t, err, ErrTooManyTurns)
	assert.Equal(t, int32(analystMaxTurns), atomic.LoadInt32(calls))
}

func TestSummarizeHistory(t *testing.T) {
	res := summarizeHistory("msft", nil)
	assert.Equal(t, "MSFT", res.Symbol)
	assert.Empty(t, res.Bars)

	bars := make([]market.Bar, 100)
	for i := range bars {
		bars[i] = market.Bar{Close: float64(i + 1)}
	}
	res = summarizeHistory("msft", bars)
	assert.Equal(t, 100, res.Points)
	assert.Len(t, res.Bars, historyMaxBars)
	assert.InDelta(t, 1.0, res.Min, 0.001)
	assert.InDelta(t, 100.0, res.Max, 0.001)
	assert.InDelta(t, 9900.0, res.ChangePercent, 0.001)
	assert.InDelta(t, 41.0, res.Bars[0].Close, 0.001)
}
