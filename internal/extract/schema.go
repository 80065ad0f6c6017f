package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/scanfolio/cv-scanner/constants"
)

// BuildCandidateJSONSchema returns a JSON-Schema (draft 2020-12 subset)
// as a generic map. It encodes the structural invariants of an assembled
// candidate: at least one experience entry and closed category/level
// enums on every skill.
func BuildCandidateJSONSchema() map[string]any {
	str := func() map[string]any { return map[string]any{"type": "string"} }

	experience := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"position":    str(),
			"company":     str(),
			"location":    str(),
			"start_date":  map[string]any{"type": "string", "pattern": `^(\d{4}-\d{2})?$`},
			"end_date":    str(),
			"description": str(),
		},
		"required": []string{"position"},
	}

	education := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"degree":      str(),
			"school":      str(),
			"location":    str(),
			"start_year":  str(),
			"end_year":    str(),
			"description": str(),
		},
	}

	skill := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":     map[string]any{"type": "string", "minLength": 1},
			"category": map[string]any{"type": "string", "enum": constants.CategoriesAsStringSlice()},
			"level":    map[string]any{"type": "string", "enum": constants.LevelsAsStringSlice()},
		},
		"required": []string{"name", "category", "level"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"fields": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"first_name": str(),
					"last_name":  str(),
					"email":      str(),
					"phone":      str(),
					"location":   str(),
					"headline":   str(),
				},
			},
			"experiences": map[string]any{"type": "array", "minItems": 1, "items": experience},
			"educations":  map[string]any{"type": "array", "items": education},
			"skills":      map[string]any{"type": "array", "items": skill},
			"raw_text":    str(),
		},
		"required": []string{"fields", "experiences", "educations", "skills"},
	}
}

// ValidateCandidateJSON validates a serialized candidate against the schema.
func ValidateCandidateJSON(data []byte) error {
	return ValidateJSONAgainstSchema(BuildCandidateJSONSchema(), data)
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
