// Package llm wraps an OpenAI-compatible completion API for the bot's AI commands.
package llm

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/sashabaranov/go-openai"

	"github.com/umputun/guildbot/pkg/config"
)

// Client is the completion client shared by ask, grok, fact check, qotd and the analyst
type Client struct {
	api       *openai.Client
	cfg       config.LLMConfig
	sanitizer *bluemonday.Policy
}

// headerTransport adds OpenRouter attribution headers to every request
type headerTransport struct {
	rt      http.RoundTripper
	headers http.Header
}

func (t headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cl := req.Clone(req.Context())
	for k, vs := range t.headers {
		for _, v := range vs {
			cl.Header.Add(k, v)
		}
	}
	return t.rt.RoundTrip(cl)
}

// NewClient creates a completion client
func NewClient(cfg config.LLMConfig) *Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	h := http.Header{}
	if cfg.Referer != "" {
		h.Set("HTTP-Referer", cfg.Referer)
	}
	if cfg.Title != "" {
		h.Set("X-Title", cfg.Title)
	}
	clientConfig.HTTPClient = &http.Client{
		Timeout:   cfg.Timeout,
		Transport: headerTransport{rt: http.DefaultTransport, headers: h},
	}

	return &Client{
		api:       openai.NewClientWithConfig(clientConfig),
		cfg:       cfg,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// AskRequest is a free-form question
type AskRequest struct {
	Model       string
	System      string
	Question    string
	Temperature *float64
	MaxTokens   *int
}

// Ask answers a question with a single completion, the answer is stripped of HTML
func (c *Client) Ask(ctx context.Context, req AskRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = c.cfg.DefaultModel
	}
	temperature := c.cfg.Temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	maxTokens := c.cfg.MaxTokens
	if req.MaxTokens != nil {
		maxTokens = *req.MaxTokens
	}

	var messages []openai.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.System})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.Question})

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Temperature: float32(temperature),
		MaxTokens:   maxTokens,
		Messages:    messages,
	})
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}
	answer := c.Sanitize(resp.Choices[0].Message.Content)
	if answer == "" {
		return "", fmt.Errorf("empty response from llm")
	}
	return answer, nil
}

// Sanitize strips HTML markup from model output, leaving plain text and markdown
func (c *Client) Sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(c.sanitizer.Sanitize(s)))
}
