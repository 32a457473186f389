package domain

// Verdict is the outcome for a single checked claim
type Verdict string

// claim verdicts
const (
	VerdictTrue         Verdict = "TRUE"
	VerdictFalse        Verdict = "FALSE"
	VerdictMisleading   Verdict = "MISLEADING"
	VerdictUnverifiable Verdict = "UNVERIFIABLE"
)

// Confidence of a verdict
type Confidence string

// confidence levels
const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// Claim is one analysed statement
type Claim struct {
	Claim         string     `json:"claim" jsonschema:"description=The exact claim being analyzed"`
	Verdict       Verdict    `json:"verdict" jsonschema:"enum=TRUE,enum=FALSE,enum=MISLEADING,enum=UNVERIFIABLE"`
	Confidence    Confidence `json:"confidence" jsonschema:"enum=HIGH,enum=MEDIUM,enum=LOW"`
	Explanation   string     `json:"explanation" jsonschema:"description=Detailed explanation of the verdict"`
	ContextNeeded string     `json:"context_needed" jsonschema:"description=Additional context needed if any"`
}

// FactCheck is the structured result of a fact check
type FactCheck struct {
	Claims              []Claim `json:"claims_analyzed"`
	OverallAssessment   string  `json:"overall_assessment" jsonschema:"description=Overall assessment of the message"`
	RequiresCurrentData bool    `json:"requires_current_data"`
	NeedsWebSearch      bool    `json:"needs_web_search"`
}

// ChatMessage is a message of the checked conversation
type ChatMessage struct {
	Author  string
	Content string
}

// Emoji returns the marker used when rendering a verdict
func (v Verdict) Emoji() string {
	switch v {
	case VerdictTrue:
		return "✅"
	case VerdictFalse:
		return "❌"
	case VerdictMisleading:
		return "⚠️"
	default:
		return "❓"
	}
}
