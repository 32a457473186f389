package llm

import (
	"context"
	"fmt"

	"github.com/umputun/guildbot/pkg/domain"
)

const qotdSystemPrompt = `You generate questions for daily community polls. Create one controversial, thought-provoking question that sparks meaningful discussion.

Requirements:
1. Exactly ONE question.
2. Exactly 4 answer options, each a genuinely different viewpoint, not degrees of agreement.
3. Relevant to current events, social issues or universal topics.
4. Categorize the poll type: controversial (divisive), debate (clear opposing sides), opinion (personal preference), current_events (recent news), social_issue (societal problems and solutions).
5. Explain why the question is thought-provoking and what discussion it should spark.

Answer options must be short enough to fit a poll answer (under 55 characters).`

const qotdUserPrompt = "Generate today's Question of the Day with a controversial, thought-provoking question that will spark meaningful discussion."

// GenerateQuestion produces one validated question of the day.
// Missing fields, an unknown poll type or duplicate options fail the call.
func (c *Client) GenerateQuestion(ctx context.Context) (*domain.Question, error) {
	q, err := completeStructured[domain.Question](ctx, c, structuredRequest{
		Name:        "question_of_the_day",
		Model:       c.cfg.QOTDModel,
		System:      qotdSystemPrompt,
		User:        qotdUserPrompt,
		Temperature: 0.8,
		MaxTokens:   400,
	})
	if err != nil {
		return nil, fmt.Errorf("generate question: %w", err)
	}

	q.Question = c.Sanitize(q.Question)
	q.OptionA, q.OptionB = c.Sanitize(q.OptionA), c.Sanitize(q.OptionB)
	q.OptionC, q.OptionD = c.Sanitize(q.OptionC), c.Sanitize(q.OptionD)
	q.Reasoning, q.ExpectedDiscussion = c.Sanitize(q.Reasoning), c.Sanitize(q.ExpectedDiscussion)
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("generate question: %w", err)
	}
	return q, nil
}
