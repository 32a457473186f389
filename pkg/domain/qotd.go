package domain

import (
	"errors"
	"fmt"
	"strings"
)

// PollType classifies a question of the day
type PollType string

// known poll types
const (
	PollControversial PollType = "controversial"
	PollDebate        PollType = "debate"
	PollOpinion       PollType = "opinion"
	PollCurrentEvents PollType = "current_events"
	PollSocialIssue   PollType = "social_issue"
)

// Title returns the poll type as shown in the embed header
func (p PollType) Title() string {
	words := strings.Split(string(p), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// Question is a generated question of the day with exactly four answers
type Question struct {
	Question           string   `json:"question" jsonschema:"description=The discussion question"`
	PollType           PollType `json:"poll_type" jsonschema:"enum=controversial,enum=debate,enum=opinion,enum=current_events,enum=social_issue"`
	OptionA            string   `json:"option_a" jsonschema:"description=First answer option"`
	OptionB            string   `json:"option_b" jsonschema:"description=Second answer option"`
	OptionC            string   `json:"option_c" jsonschema:"description=Third answer option"`
	OptionD            string   `json:"option_d" jsonschema:"description=Fourth answer option"`
	Reasoning          string   `json:"reasoning" jsonschema:"description=Why this question sparks discussion"`
	ExpectedDiscussion string   `json:"expected_discussion" jsonschema:"description=What kind of discussion is expected"`
}

// ErrInvalidQuestion is returned when a generated question misses required fields
var ErrInvalidQuestion = errors.New("invalid question")

// Options returns the four answers in order
func (q *Question) Options() []string {
	return []string{q.OptionA, q.OptionB, q.OptionC, q.OptionD}
}

// Validate checks required fields, the poll type and option distinctness.
// Every field is required, a missing one is never defaulted.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("%w: empty question", ErrInvalidQuestion)
	}
	switch q.PollType {
	case PollControversial, PollDebate, PollOpinion, PollCurrentEvents, PollSocialIssue:
	default:
		return fmt.Errorf("%w: unknown poll type %q", ErrInvalidQuestion, q.PollType)
	}
	if strings.TrimSpace(q.Reasoning) == "" {
		return fmt.Errorf("%w: empty reasoning", ErrInvalidQuestion)
	}
	if strings.TrimSpace(q.ExpectedDiscussion) == "" {
		return fmt.Errorf("%w: empty expected_discussion", ErrInvalidQuestion)
	}
	seen := make(map[string]bool, 4)
	for i, opt := range q.Options() {
		norm := strings.ToLower(strings.TrimSpace(opt))
		if norm == "" {
			return fmt.Errorf("%w: option %c is empty", ErrInvalidQuestion, 'a'+rune(i))
		}
		if seen[norm] {
			return fmt.Errorf("%w: duplicate option %q", ErrInvalidQuestion, opt)
		}
		seen[norm] = true
	}
	return nil
}
