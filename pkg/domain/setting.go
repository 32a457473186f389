package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Feature is a per-guild toggleable bot capability
type Feature string

// supported features, short names are what users type
const (
	FeatureAI        Feature = "ai"
	FeatureFactCheck Feature = "factcheck"
	FeatureGrok      Feature = "grok"
	FeatureQOTD      Feature = "qotd"
)

type featureInfo struct {
	column  string
	display string
}

// features is the fixed allow-list, the only place mapping names to storage columns
var features = map[Feature]featureInfo{
	FeatureAI:        {column: "ai_enabled", display: "AI Ask Command"},
	FeatureFactCheck: {column: "fact_check_enabled", display: "Fact Check"},
	FeatureGrok:      {column: "grok_enabled", display: "Grok AI"},
	FeatureQOTD:      {column: "qotd_enabled", display: "Question of the Day"},
}

// AllFeatures returns features in display order
func AllFeatures() []Feature {
	return []Feature{FeatureAI, FeatureFactCheck, FeatureGrok, FeatureQOTD}
}

// ErrInvalidSetting is returned when a feature name is outside the allow-list
var ErrInvalidSetting = errors.New("invalid setting")

// ErrConflict is returned when the freeform settings changed between read and write
var ErrConflict = errors.New("settings changed concurrently")

// ParseFeature resolves a user-supplied feature name, case-insensitive
func ParseFeature(name string) (Feature, error) {
	f := Feature(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := features[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidSetting, name)
	}
	return f, nil
}

// Valid reports whether the feature is in the allow-list
func (f Feature) Valid() bool {
	_, ok := features[f]
	return ok
}

// Column returns the storage column backing the feature flag
func (f Feature) Column() (string, error) {
	info, ok := features[f]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidSetting, string(f))
	}
	return info.column, nil
}

// DisplayName returns the human readable feature name
func (f Feature) DisplayName() string {
	if info, ok := features[f]; ok {
		return info.display
	}
	return string(f)
}

// GuildSettings is the per-guild configuration row
type GuildSettings struct {
	GuildID          string
	AIEnabled        bool
	FactCheckEnabled bool
	GrokEnabled      bool
	QOTDEnabled      bool
	Settings         map[string]any
	Version          int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Enabled returns the flag value for a feature, false for unknown features
func (g *GuildSettings) Enabled(f Feature) bool {
	switch f {
	case FeatureAI:
		return g.AIEnabled
	case FeatureFactCheck:
		return g.FactCheckEnabled
	case FeatureGrok:
		return g.GrokEnabled
	case FeatureQOTD:
		return g.QOTDEnabled
	}
	return false
}

// QOTDChannelKey is the freeform settings key holding the configured QOTD channel
const QOTDChannelKey = "qotd_channel_id"
