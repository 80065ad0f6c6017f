package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeCategory(t *testing.T) {
	cases := []struct {
		in    string
		want  SkillCategory
		known bool
	}{
		{"Frontend", CategoryFrontend, true},
		{"front-end", CategoryFrontend, true},
		{"Backend", CategoryBackend, true},
		{"ux", CategoryDesign, true},
		{"Outils", CategoryTools, true},
		{"tools", CategoryTools, true},
		{"Général", CategoryGeneral, true},
		{"autre", CategoryGeneral, true},
		{"blockchain", CategoryGeneral, false},
		{"", CategoryGeneral, false},
	}
	for _, tc := range cases {
		got, known := CanonicalizeCategory(tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
		assert.Equal(t, tc.known, known, "input %q", tc.in)
	}
}

func TestCategoriesAsStringSlice(t *testing.T) {
	assert.Equal(t,
		[]string{"Frontend", "Backend", "Design", "Outils", "Général"},
		CategoriesAsStringSlice())
}

func TestCanonicalizeLevel(t *testing.T) {
	cases := []struct {
		in    string
		want  SkillLevel
		known bool
	}{
		{"Expert", LevelExpert, true},
		{"expertise", LevelExpert, true},
		{"avance", LevelAdvanced, true},
		{"Avancé", LevelAdvanced, true},
		{"senior", LevelAdvanced, true},
		{"junior", LevelBeginner, true},
		{"Intermédiaire", LevelIntermediate, true},
		{"gourou", LevelIntermediate, false},
		{"", LevelIntermediate, false},
	}
	for _, tc := range cases {
		got, known := CanonicalizeLevel(tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
		assert.Equal(t, tc.known, known, "input %q", tc.in)
	}
}

func TestLevelRankOrdering(t *testing.T) {
	assert.Greater(t, LevelExpert.Rank(), LevelAdvanced.Rank())
	assert.Greater(t, LevelAdvanced.Rank(), LevelIntermediate.Rank())
	assert.Greater(t, LevelIntermediate.Rank(), LevelBeginner.Rank())
	assert.Zero(t, SkillLevel("inconnu").Rank())
}

func TestMapExtToFormat(t *testing.T) {
	assert.Equal(t, IMAGE, MapExtToFormat(".JPG"))
	assert.Equal(t, IMAGE, MapExtToFormat("tiff"))
	assert.Equal(t, TXT, MapExtToFormat("txt"))
	assert.Empty(t, MapExtToFormat("pdf"))
}
