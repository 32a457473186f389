package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema checks that every config key is known to the embedded schema
// and every required key is present. A mismatch usually means schema.json is stale.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema map[string]any
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	defs, _ := schema["$defs"].(map[string]any)
	return verifyObject(resolve(schema, defs), defs, configMap, "")
}

// verifyObject walks an object schema against a decoded config value
func verifyObject(node, defs, value map[string]any, path string) error {
	props, _ := node["properties"].(map[string]any)
	if required, ok := node["required"].([]any); ok {
		for _, r := range required {
			name, _ := r.(string)
			if _, ok := value[name]; !ok {
				return fmt.Errorf("%s is required", join(path, name))
			}
		}
	}

	keys := make([]string, 0, len(value))
	for k := range value {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		propSchema, ok := props[k].(map[string]any)
		if !ok {
			return fmt.Errorf("%s is not described by schema", join(path, k))
		}
		child, isObj := value[k].(map[string]any)
		if !isObj {
			continue
		}
		if err := verifyObject(resolve(propSchema, defs), defs, child, join(path, k)); err != nil {
			return err
		}
	}
	return nil
}

// resolve follows a local "#/$defs/Name" reference
func resolve(node, defs map[string]any) map[string]any {
	ref, ok := node["$ref"].(string)
	if !ok {
		return node
	}
	if def, ok := defs[strings.TrimPrefix(ref, "#/$defs/")].(map[string]any); ok {
		return def
	}
	return node
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}
