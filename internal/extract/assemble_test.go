package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanfolio/cv-scanner/constants"
)

func TestAssemblePlaceholderExperienceInvariant(t *testing.T) {
	c := Assemble(Fields{}, nil, nil, nil, "")

	require.Len(t, c.Experiences, 1)
	assert.Equal(t, PlaceholderPosition, c.Experiences[0].Position)
	assert.NotNil(t, c.Educations)
	assert.NotNil(t, c.Skills)
}

func TestAssembleKeepsExtractedExperiences(t *testing.T) {
	exps := []Experience{{Position: "Dev", Company: "Acme"}}

	c := Assemble(Fields{}, exps, nil, nil, "")

	require.Len(t, c.Experiences, 1)
	assert.Equal(t, "Acme", c.Experiences[0].Company)
}

func TestRunScenarioHeaderOnly(t *testing.T) {
	text := "jean.dupont@mail.com 06 12 34 56 78 Paris Développeur React"

	c := Run(text)

	assert.Equal(t, "jean.dupont@mail.com", c.Fields.Email)
	assert.Equal(t, "06 12 34 56 78", c.Fields.Phone)
	assert.Equal(t, "Paris", c.Fields.Location)

	require.Len(t, c.Skills, 1)
	assert.Equal(t, "React", c.Skills[0].Name)
	assert.Equal(t, constants.CategoryFrontend, c.Skills[0].Category)
	assert.Equal(t, constants.LevelIntermediate, c.Skills[0].Level)

	require.Len(t, c.Experiences, 1)
	assert.Equal(t, PlaceholderPosition, c.Experiences[0].Position)
}

func TestRunFullDocument(t *testing.T) {
	text := `Jean Dupont
Développeur web
jean.dupont@mail.com
06 12 34 56 78
Paris

Expérience professionnelle
2020 chez Google 2023

Formation
Master informatique, Université de Lyon, 2018

Compétences
React expert, Python, Git`

	c := Run(text)

	assert.Equal(t, "Jean", c.Fields.FirstName)
	assert.Equal(t, "Dupont", c.Fields.LastName)
	assert.Equal(t, "Développeur web", c.Fields.Headline)

	require.Len(t, c.Experiences, 1)
	assert.Equal(t, "Google", c.Experiences[0].Company)
	assert.Equal(t, "2020-01", c.Experiences[0].StartDate)
	assert.Equal(t, "2023-12", c.Experiences[0].EndDate)

	require.Len(t, c.Educations, 1)
	assert.Equal(t, "Université de Lyon", c.Educations[0].School)

	require.Len(t, c.Skills, 3)
	assert.Equal(t, constants.LevelExpert, c.Skills[0].Level)
	assert.Equal(t, constants.LevelIntermediate, c.Skills[1].Level)
	assert.Equal(t, constants.CategoryTools, c.Skills[2].Category)
}

func TestRunEmptyTextDoesNotPanic(t *testing.T) {
	c := Run("")

	assert.Empty(t, c.Fields.Email)
	require.Len(t, c.Experiences, 1)
	assert.Empty(t, c.Educations)
	assert.Empty(t, c.Skills)
}

func TestRunDeterministic(t *testing.T) {
	text := "Jean Dupont\nCompétences\nReact, Python"

	a := Run(text)
	b := Run(text)

	assert.Equal(t, a, b)
}

func TestRunOutputValidatesAgainstSchema(t *testing.T) {
	c := Run("Marie Martin\nmarie@mail.fr\nCompétences\nFigma expert")

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.NoError(t, ValidateCandidateJSON(data))
}

func TestCloneIsDeep(t *testing.T) {
	orig := Run("Compétences\nReact")
	clone := orig.Clone()

	clone.Fields.Email = "edited@mail.com"
	clone.Skills[0].Level = constants.LevelExpert
	clone.Experiences[0].Position = "edited"

	assert.Empty(t, orig.Fields.Email)
	assert.Equal(t, constants.LevelIntermediate, orig.Skills[0].Level)
	assert.Equal(t, PlaceholderPosition, orig.Experiences[0].Position)
}
