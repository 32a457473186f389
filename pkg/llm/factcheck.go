package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/umputun/guildbot/pkg/domain"
)

const factCheckSystemPrompt = `You are a rigorous fact-checking assistant. Verify claims with precision and objectivity.

Process:
1. Identify all factual claims in the input, ignore opinions, predictions and subjective statements.
2. For each claim assess verifiable facts, proper context and potential inaccuracies.
3. Flag claims that are false, misleading, lack context or cannot be verified.

Guidelines:
- Distinguish completely false from misleading from lacking context.
- Only flag genuine inaccuracies, not minor imprecisions.
- Use UNVERIFIABLE when you cannot confirm a claim.
- Set requires_current_data=true for claims about recent events, current statistics or time-sensitive information.
- Set needs_web_search=true if verification would benefit from real-time web search.
- Stay neutral and give a clear, concise explanation for each claim.
- If the content has no factual claims (pure opinion, questions, greetings) say so in overall_assessment and return an empty claims list.`

// FactCheck analyses the conversation excerpt and returns structured verdicts
func (c *Client) FactCheck(ctx context.Context, messages []domain.ChatMessage) (*domain.FactCheck, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("fact check: nothing to check")
	}

	var sb strings.Builder
	sb.WriteString("Fact-check the following content thoroughly:\n\nCONTENT TO VERIFY:\n")
	for _, m := range messages {
		fmt.Fprintf(&sb, "%s: %s\n", m.Author, m.Content)
	}
	sb.WriteString("\nAnalyze each factual claim and provide your structured assessment.")

	res, err := completeStructured[domain.FactCheck](ctx, c, structuredRequest{
		Name:        "fact_check",
		Model:       c.cfg.FactCheckModel,
		System:      factCheckSystemPrompt,
		User:        sb.String(),
		Temperature: 0,
		MaxTokens:   1500,
	})
	if err != nil {
		return nil, fmt.Errorf("fact check: %w", err)
	}

	for i := range res.Claims {
		res.Claims[i].Verdict = domain.Verdict(strings.ToUpper(string(res.Claims[i].Verdict)))
		res.Claims[i].Confidence = domain.Confidence(strings.ToUpper(string(res.Claims[i].Confidence)))
	}
	return res, nil
}
