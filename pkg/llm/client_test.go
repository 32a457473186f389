package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/guildbot/pkg/config"
	"github.com/umputun/guildbot/pkg/domain"
)

// completionServer replies to each chat completion with the next message from replies
func completionServer(t *testing.T, check func(req openai.ChatCompletionRequest, r *http.Request),
	replies ...openai.ChatCompletionMessage) (srv *httptest.Server, calls *int32) {
	t.Helper()
	calls = new(int32)
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		var req openai.ChatCompletionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if check != nil {
			check(req, r)
		}
		n := int(atomic.AddInt32(calls, 1)) - 1
		if n >= len(replies) {
			n = len(replies) - 1
		}
		resp := openai.ChatCompletionResponse{Choices: []openai.ChatCompletionChoice{{Message: replies[n]}}}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv, calls
}

func testConfig(endpoint string) config.LLMConfig {
	return config.LLMConfig{
		Endpoint:       endpoint + "/v1",
		APIKey:         "test-key",
		Referer:        "https://example.com/bot",
		Title:          "guildbot",
		DefaultModel:   "test-default",
		FactCheckModel: "test-factcheck",
		QOTDModel:      "test-qotd",
		GrokModel:      "test-grok",
		AnalystModel:   "test-analyst",
		Temperature:    0.5,
		MaxTokens:      300,
		Timeout:        5 * time.Second,
	}
}

func TestClient_Ask(t *testing.T) {
	t.Run("defaults and headers", func(t *testing.T) {
		srv, calls := completionServer(t, func(req openai.ChatCompletionRequest, r *http.Request) {
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			assert.Equal(t, "https://example.com/bot", r.Header.Get("HTTP-Referer"))
			assert.Equal(t, "guildbot", r.Header.Get("X-Title"))
			assert.Equal(t, "test-default", req.Model)
			assert.InDelta(t, 0.5, req.Temperature, 0.001)
			assert.Equal(t, 300, req.MaxTokens)
			require.Len(t, req.Messages, 2)
			assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
			assert.Equal(t, "what is go?", req.Messages[1].Content)
		}, openai.ChatCompletionMessage{Content: "  <b>Go</b> is a language &amp; a <script>x()</script>toolchain  "})

		c := NewClient(testConfig(srv.URL))
		answer, err := c.Ask(context.Background(), AskRequest{System: "be brief", Question: "what is go?"})
		require.NoError(t, err)
		assert.Equal(t, "Go is a language & a toolchain", answer)
		assert.Equal(t, int32(1), atomic.LoadInt32(calls))
	})

	t.Run("overrides", func(t *testing.T) {
		temp, tokens := 0.9, 42
		srv, _ := completionServer(t, func(req openai.ChatCompletionRequest, _ *http.Request) {
			assert.Equal(t, "custom/model", req.Model)
			assert.InDelta(t, 0.9, req.Temperature, 0.001)
			assert.Equal(t, 42, req.MaxTokens)
			require.Len(t, req.Messages, 1)
		}, openai.ChatCompletionMessage{Content: "ok"})

		c := NewClient(testConfig(srv.URL))
		answer, err := c.Ask(context.Background(), AskRequest{Model: "custom/model", Question: "q",
			Temperature: &temp, MaxTokens: &tokens})
		require.NoError(t, err)
		assert.Equal(t, "ok", answer)
	})

	t.Run("empty answer", func(t *testing.T) {
		srv, _ := completionServer(t, nil, openai.ChatCompletionMessage{Content: "<p></p>"})
		c := NewClient(testConfig(srv.URL))
		_, err := c.Ask(context.Background(), AskRequest{Question: "q"})
		require.Error(t, err)
	})

	t.Run("api error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"message":"boom"}}`))
		}))
		defer srv.Close()
		c := NewClient(testConfig(srv.URL))
		_, err := c.Ask(context.Background(), AskRequest{Question: "q"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "llm request failed")
	})
}

func TestParseObject(t *testing.T) {
	type obj struct {
		A string `json:"a"`
	}
	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{name: "plain", content: `{"a":"x"}`, want: "x"},
		{name: "fenced", content: "```json\n{\"a\":\"y\"}\n```", want: "y"},
		{name: "chatter", content: `Sure! here it is {"a":"z"} hope it helps`, want: "z"},
		{name: "no object", content: "nothing here", wantErr: true},
		{name: "broken", content: `{"a": }`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := parseObject[obj](tt.content)
			if tt.wantErr {
				require.ErrorIs(t, err, errParse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.A)
		})
	}
}

func TestClient_GenerateQuestion(t *testing.T) {
	valid := `{"question":"Should cities ban cars downtown?","poll_type":"debate",
		"option_a":"Yes, fully","option_b":"Only on weekends","option_c":"No, improve transit instead","option_d":"Let each district decide",
		"reasoning":"touches daily life","expected_discussion":"urban planning"}`

	t.Run("valid after a broken reply", func(t *testing.T) {
		srv, calls := completionServer(t, func(req openai.ChatCompletionRequest, _ *http.Request) {
			assert.Equal(t, "test-qotd", req.Model)
			require.NotNil(t, req.ResponseFormat)
			assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONSchema, req.ResponseFormat.Type)
			assert.Equal(t, "question_of_the_day", req.ResponseFormat.JSONSchema.Name)
		}, openai.ChatCompletionMessage{Content: "sorry, no json"}, openai.ChatCompletionMessage{Content: valid})

		c := NewClient(testConfig(srv.URL))
		q, err := c.GenerateQuestion(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(2), atomic.LoadInt32(calls))
		assert.Equal(t, "Should cities ban cars downtown?", q.Question)
		assert.Equal(t, domain.PollDebate, q.PollType)
		assert.Equal(t, []string{"Yes, fully", "Only on weekends", "No, improve transit instead", "Let each district decide"}, q.Options())
	})

	t.Run("duplicate options rejected", func(t *testing.T) {
		dup := `{"question":"q?","poll_type":"opinion","option_a":"a","option_b":"a","option_c":"c","option_d":"d",
			"reasoning":"r","expected_discussion":"e"}`
		srv, _ := completionServer(t, nil, openai.ChatCompletionMessage{Content: dup})
		c := NewClient(testConfig(srv.URL))
		_, err := c.GenerateQuestion(context.Background())
		require.ErrorIs(t, err, domain.ErrInvalidQuestion)
	})

	t.Run("missing explanation fields rejected", func(t *testing.T) {
		noReasoning := `{"question":"q?","poll_type":"opinion","option_a":"a","option_b":"b","option_c":"c","option_d":"d",
			"expected_discussion":"lively"}`
		srv, _ := completionServer(t, nil, openai.ChatCompletionMessage{Content: noReasoning})
		_, err := NewClient(testConfig(srv.URL)).GenerateQuestion(context.Background())
		require.ErrorIs(t, err, domain.ErrInvalidQuestion)
		assert.Contains(t, err.Error(), "empty reasoning")

		noDiscussion := `{"question":"q?","poll_type":"opinion","option_a":"a","option_b":"b","option_c":"c","option_d":"d",
			"reasoning":"why not"}`
		srv, _ = completionServer(t, nil, openai.ChatCompletionMessage{Content: noDiscussion})
		_, err = NewClient(testConfig(srv.URL)).GenerateQuestion(context.Background())
		require.ErrorIs(t, err, domain.ErrInvalidQuestion)
		assert.Contains(t, err.Error(), "empty expected_discussion")
	})

	t.Run("gives up after three parse failures", func(t *testing.T) {
		srv, calls := completionServer(t, nil, openai.ChatCompletionMessage{Content: "no"})
		c := NewClient(testConfig(srv.URL))
		_, err := c.GenerateQuestion(context.Background())
		require.ErrorIs(t, err, errParse)
		assert.Equal(t, int32(3), atomic.LoadInt32(calls))
	})
}

func TestClient_FactCheck(t *testing.T) {
	reply := `{"claims_analyzed":[{"claim":"the earth is flat","verdict":"false","explanation":"it is an oblate spheroid","confidence":"high"}],
		"overall_assessment":"one false claim","requires_current_data":false,"needs_web_search":false}`

	srv, _ := completionServer(t, func(req openai.ChatCompletionRequest, _ *http.Request) {
		assert.Equal(t, "test-factcheck", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Contains(t, req.Messages[1].Content, "alice: the earth is flat")
		assert.Contains(t, req.Messages[1].Content, "bob: lol")
	}, openai.ChatCompletionMessage{Content: reply})

	c := NewClient(testConfig(srv.URL))
	res, err := c.FactCheck(context.Background(), []domain.ChatMessage{
		{Author: "alice", Content: "the earth is flat"},
		{Author: "bob", Content: "lol"},
	})
	require.NoError(t, err)
	require.Len(t, res.Claims, 1)
	assert.Equal(t, domain.VerdictFalse, res.Claims[0].Verdict)
	assert.Equal(t, domain.Confidence("HIGH"), res.Claims[0].Confidence)
	assert.Equal(t, "one false claim", res.OverallAssessment)

	_, err = c.FactCheck(context.Background(), nil)
	require.Error(t, err)
}
