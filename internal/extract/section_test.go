package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentNoKeywordsAllPersonal(t *testing.T) {
	text := "Jean Dupont\njean.dupont@mail.com\n06 12 34 56 78"

	sections := Segment(text)

	assert.Equal(t, text, sections[SectionPersonal])
	assert.Empty(t, sections[SectionExperience])
	assert.Empty(t, sections[SectionEducation])
	assert.Empty(t, sections[SectionSkills])
}

func TestSegmentAllKeysAlwaysPresent(t *testing.T) {
	sections := Segment("")

	for _, sec := range []Section{SectionPersonal, SectionExperience, SectionEducation, SectionSkills} {
		_, ok := sections[sec]
		require.True(t, ok, "missing zone %s", sec)
	}
}

func TestSegmentRoutesLinesToZones(t *testing.T) {
	text := strings.Join([]string{
		"Jean Dupont",
		"Expérience professionnelle",
		"Développeur chez Acme 2020",
		"Formation",
		"Master informatique",
		"Compétences",
		"React, Python",
	}, "\n")

	sections := Segment(text)

	assert.Equal(t, "Jean Dupont", sections[SectionPersonal])
	assert.Contains(t, sections[SectionExperience], "Expérience professionnelle")
	assert.Contains(t, sections[SectionExperience], "Développeur chez Acme 2020")
	assert.Contains(t, sections[SectionEducation], "Master informatique")
	assert.Contains(t, sections[SectionSkills], "React, Python")
}

func TestSegmentHeaderLineBelongsToItsSection(t *testing.T) {
	sections := Segment("Intro\nCompétences techniques\ngit")

	assert.Equal(t, "Intro", sections[SectionPersonal])
	assert.Equal(t, "Compétences techniques\ngit", sections[SectionSkills])
}

func TestSegmentKeywordVariants(t *testing.T) {
	cases := []struct {
		line string
		zone Section
	}{
		{"EXPERIENCES", SectionExperience},
		{"Parcours professionnel", SectionExperience},
		{"Études supérieures", SectionEducation},
		{"études", SectionEducation},
		{"Éducation", SectionEducation},
		{"Scolarité", SectionEducation},
		{"Formation", SectionEducation},
		{"Diplômes", SectionEducation},
		{"Skills", SectionSkills},
		{"Savoir-faire", SectionSkills},
	}
	for _, tc := range cases {
		sections := Segment("header\n" + tc.line)
		assert.Equal(t, tc.line, sections[tc.zone], "line %q", tc.line)
	}
}

func TestSegmentKeywordPriorityExperienceFirst(t *testing.T) {
	// A line carrying both families opens experience, not education.
	sections := Segment("Expérience et formation\ncontenu")

	assert.Contains(t, sections[SectionExperience], "contenu")
	assert.Empty(t, sections[SectionEducation])
}
