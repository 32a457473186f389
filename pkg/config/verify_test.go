package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	var cfg Config
	SetDefaults(&cfg)
	require.NoError(t, VerifyAgainstEmbeddedSchema(&cfg), "embedded schema must match Config")
}

func TestVerifyObject(t *testing.T) {
	defs := map[string]any{
		"Inner": map[string]any{
			"properties": map[string]any{"a": map[string]any{"type": "string"}},
			"required":   []any{"a"},
		},
	}
	root := map[string]any{
		"properties": map[string]any{"inner": map[string]any{"$ref": "#/$defs/Inner"}},
		"required":   []any{"inner"},
	}

	t.Run("ok", func(t *testing.T) {
		err := verifyObject(root, defs, map[string]any{"inner": map[string]any{"a": "x"}}, "")
		require.NoError(t, err)
	})

	t.Run("missing required", func(t *testing.T) {
		err := verifyObject(root, defs, map[string]any{"inner": map[string]any{}}, "")
		require.EqualError(t, err, "inner.a is required")
	})

	t.Run("unknown key", func(t *testing.T) {
		err := verifyObject(root, defs, map[string]any{"inner": map[string]any{"a": "x", "b": 1}}, "")
		require.EqualError(t, err, "inner.b is not described by schema")
	})
}

func TestGenerateSchema(t *testing.T) {
	schema := GenerateSchema()
	require.NotNil(t, schema)

	data, err := json.Marshal(schema)
	require.NoError(t, err)

	var generated map[string]any
	require.NoError(t, json.Unmarshal(data, &generated))
	defs, ok := generated["$defs"].(map[string]any)
	require.True(t, ok)
	for _, name := range []string{"Config", "DiscordConfig", "DatabaseConfig", "LLMConfig", "QOTDConfig", "MarketConfig", "BackupConfig", "ServerConfig"} {
		assert.Contains(t, defs, name)
	}
}
