package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/sashabaranov/go-openai"
)

// errParse marks responses that did not contain a decodable JSON object
var errParse = errors.New("failed to parse json")

// structuredRequest describes a completion that must return an object of type T
type structuredRequest struct {
	Name        string
	Model       string
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// schemaFor reflects an inline JSON schema for v, suitable for response_format
func schemaFor(v any) (json.RawMessage, error) {
	r := &jsonschema.Reflector{DoNotReference: true, ExpandedStruct: true}
	schema := r.Reflect(v)
	schema.Version = ""
	schema.ID = ""
	data, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}

// completeStructured asks for a JSON object matching T's schema and decodes it.
// Retries up to 3 times when the reply is not valid JSON.
func completeStructured[T any](ctx context.Context, c *Client, req structuredRequest) (*T, error) {
	var zero T
	schema, err := schemaFor(&zero)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       req.Model,
			Temperature: float32(req.Temperature),
			MaxTokens:   req.MaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: req.System},
				{Role: openai.ChatMessageRoleUser, Content: req.User},
			},
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
				JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
					Name:   req.Name,
					Schema: schema,
					Strict: true,
				},
			},
		})
		if err != nil {
			return nil, fmt.Errorf("llm request failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("no response from llm")
		}

		res, err := parseObject[T](resp.Choices[0].Message.Content)
		if err == nil {
			return res, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("failed after 3 attempts: %w", lastErr)
}

// parseObject decodes the outermost JSON object found in content, tolerating code fences and chatter
func parseObject[T any](content string) (*T, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || start >= end {
		return nil, fmt.Errorf("%w: no json object found in response", errParse)
	}
	var res T
	if err := json.Unmarshal([]byte(content[start:end+1]), &res); err != nil {
		return nil, fmt.Errorf("%w: %v", errParse, err)
	}
	return &res, nil
}
