package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCandidateJSON(t *testing.T) []byte {
	t.Helper()
	c := Assemble(Fields{FirstName: "Jean", Email: "jean@mail.fr"}, nil, nil,
		[]Skill{{Name: "react", Category: "Frontend", Level: "Expert"}}, "raw")
	data, err := json.Marshal(c)
	require.NoError(t, err)
	return data
}

func TestValidateCandidateJSONAccepts(t *testing.T) {
	assert.NoError(t, ValidateCandidateJSON(validCandidateJSON(t)))
}

func TestValidateCandidateJSONRejectsEmptyExperiences(t *testing.T) {
	var doc map[string]any
	require.NoError(t, json.Unmarshal(validCandidateJSON(t), &doc))
	doc["experiences"] = []any{}
	data, _ := json.Marshal(doc)

	assert.Error(t, ValidateCandidateJSON(data))
}

func TestValidateCandidateJSONRejectsUnknownCategory(t *testing.T) {
	var doc map[string]any
	require.NoError(t, json.Unmarshal(validCandidateJSON(t), &doc))
	doc["skills"] = []any{map[string]any{"name": "react", "category": "Mobile", "level": "Expert"}}
	data, _ := json.Marshal(doc)

	assert.Error(t, ValidateCandidateJSON(data))
}

func TestValidateCandidateJSONRejectsUnknownLevel(t *testing.T) {
	var doc map[string]any
	require.NoError(t, json.Unmarshal(validCandidateJSON(t), &doc))
	doc["skills"] = []any{map[string]any{"name": "react", "category": "Frontend", "level": "Maître"}}
	data, _ := json.Marshal(doc)

	assert.Error(t, ValidateCandidateJSON(data))
}

func TestValidateCandidateJSONRejectsMalformed(t *testing.T) {
	assert.Error(t, ValidateCandidateJSON([]byte("{not json")))
	assert.Error(t, ValidateCandidateJSON([]byte(`{"fields": {}}`)))
}
