package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scanfolio/cv-scanner/constants"
)

func TestCategoryOf(t *testing.T) {
	cases := []struct {
		token string
		want  constants.SkillCategory
	}{
		{"react", constants.CategoryFrontend},
		{"React", constants.CategoryFrontend},
		{"python", constants.CategoryBackend},
		{"figma", constants.CategoryDesign},
		{"git", constants.CategoryTools},
		{"cobol", constants.CategoryGeneral},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CategoryOf(tc.token), "token %q", tc.token)
	}
}

func TestLevelOfDefaultsToIntermediate(t *testing.T) {
	assert.Equal(t, constants.LevelIntermediate, LevelOf("react", "maîtrise de react"))
}

func TestLevelOfAdjacentKeyword(t *testing.T) {
	cases := []struct {
		text string
		want constants.SkillLevel
	}{
		{"react expert", constants.LevelExpert},
		{"expert react", constants.LevelExpert},
		{"react (avancé)", constants.LevelAdvanced},
		{"react : confirmé", constants.LevelAdvanced},
		{"react - débutant", constants.LevelBeginner},
		{"react (notions)", constants.LevelBeginner},
		{"react intermédiaire", constants.LevelIntermediate},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LevelOf("react", tc.text), "text %q", tc.text)
	}
}

func TestLevelOfStrongestKeywordWins(t *testing.T) {
	// expert outranks débutant when both are adjacent
	assert.Equal(t, constants.LevelExpert, LevelOf("react", "débutant react expert"))
}

func TestLevelOfKeywordDoesNotCrossSeparator(t *testing.T) {
	// the "expert" belonging to react must not leak onto the next
	// list item
	text := "React expert, Python, Git"
	assert.Equal(t, constants.LevelIntermediate, LevelOf("python", text))
	assert.Equal(t, constants.LevelIntermediate, LevelOf("git", text))
	assert.Equal(t, constants.LevelExpert, LevelOf("react", text))

	for _, sep := range []string{";", "/", "|"} {
		assert.Equal(t, constants.LevelIntermediate,
			LevelOf("python", "React expert"+sep+" Python"), "separator %q", sep)
	}
}

func TestLevelOfKeywordTooFarAway(t *testing.T) {
	// adjacency window is narrow; a distant keyword does not bind
	text := "react est utilisé partout et je suis par ailleurs expert en cuisine"
	assert.Equal(t, constants.LevelIntermediate, LevelOf("react", text))
}

func TestClassifyScenarioReactExpert(t *testing.T) {
	skill := Classify("react", "compétences : react expert, python")

	assert.Equal(t, "react", skill.Name)
	assert.Equal(t, constants.CategoryFrontend, skill.Category)
	assert.Equal(t, constants.LevelExpert, skill.Level)
}
