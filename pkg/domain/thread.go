package domain

import (
	"fmt"
	"time"
)

// allowed ranges for per-thread generation parameters
const (
	MinTemperature = 0.01
	MaxTemperature = 1.0
	MinMaxTokens   = 1
	MaxMaxTokens   = 500
)

// ThreadBinding pins a model and optional generation parameters to a conversation thread
type ThreadBinding struct {
	ThreadID    string
	GuildID     string
	Model       string
	Temperature *float64
	MaxTokens   *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GenParams are optional per-call generation overrides
type GenParams struct {
	Temperature *float64
	MaxTokens   *int
}

// Validate checks the overrides against allowed ranges
func (p GenParams) Validate() error {
	if p.Temperature != nil && (*p.Temperature < MinTemperature || *p.Temperature > MaxTemperature) {
		return fmt.Errorf("temperature %.2f out of range [%.2f, %.1f]", *p.Temperature, MinTemperature, MaxTemperature)
	}
	if p.MaxTokens != nil && (*p.MaxTokens < MinMaxTokens || *p.MaxTokens > MaxMaxTokens) {
		return fmt.Errorf("max tokens %d out of range [%d, %d]", *p.MaxTokens, MinMaxTokens, MaxMaxTokens)
	}
	return nil
}
