package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates a JSON schema for the Config struct.
// Only fields tagged with jsonschema "required" are listed as required.
func GenerateSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{RequiredFromJSONSchemaTags: true, ExpandedStruct: true, DoNotReference: true}
	return r.Reflect(&Config{})
}

// Verify checks that every field the schema marks as required has a value
func Verify(cfg *Config) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return checkRequired(GenerateSchema(), values, "")
}

func checkRequired(schema *jsonschema.Schema, values map[string]any, prefix string) error {
	for _, name := range schema.Required {
		if isEmpty(values[name]) {
			return fmt.Errorf("%s%s is required", prefix, name)
		}
	}
	if schema.Properties == nil {
		return nil
	}
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		nested, ok := values[pair.Key].(map[string]any)
		if !ok {
			continue
		}
		if err := checkRequired(pair.Value, nested, prefix+pair.Key+"."); err != nil {
			return err
		}
	}
	return nil
}

func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case float64:
		return val == 0
	case bool:
		return !val
	default:
		return false
	}
}
