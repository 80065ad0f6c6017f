package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractExperiencesScenarioGoogle(t *testing.T) {
	exps := ExtractExperiences("2020 chez Google 2023")

	require.Len(t, exps, 1)
	assert.Equal(t, "Google", exps[0].Company)
	assert.Equal(t, "2020-01", exps[0].StartDate)
	assert.Equal(t, "2023-12", exps[0].EndDate)
	assert.Equal(t, PlaceholderPosition, exps[0].Position)
	assert.Equal(t, PlaceholderDescription, exps[0].Description)
}

func TestExtractExperiencesPresentSynonym(t *testing.T) {
	cases := []string{
		"depuis 2021 chez Acme, aujourd'hui",
		"2021 chez Acme - présent",
		"2021 chez Acme (actuellement)",
	}
	for _, line := range cases {
		exps := ExtractExperiences(line)
		require.Len(t, exps, 1, "line %q", line)
		assert.Equal(t, "2021-01", exps[0].StartDate)
		assert.Equal(t, EndDatePresent, exps[0].EndDate, "line %q", line)
	}
}

func TestExtractExperiencesSingleYear(t *testing.T) {
	exps := ExtractExperiences("stage chez Renault 2019")

	require.Len(t, exps, 1)
	assert.Equal(t, "2019-01", exps[0].StartDate)
	assert.Equal(t, "2019-12", exps[0].EndDate)
}

func TestExtractExperiencesMultiWordCompany(t *testing.T) {
	exps := ExtractExperiences("2018 chez Crédit Agricole 2020")

	require.Len(t, exps, 1)
	assert.Equal(t, "Crédit Agricole", exps[0].Company)
}

func TestExtractExperiencesAtMarkers(t *testing.T) {
	exps := ExtractExperiences("developer at Spotify 2022\ningénieur @ Thales 2021")

	require.Len(t, exps, 2)
	assert.Equal(t, "Spotify", exps[0].Company)
	assert.Equal(t, "Thales", exps[1].Company)
}

func TestExtractExperiencesNeedsOrgAndYear(t *testing.T) {
	// a year without an org marker, and an org without a year, both skip
	assert.Empty(t, ExtractExperiences("divers travaux en 2020"))
	assert.Empty(t, ExtractExperiences("consultant chez Capgemini"))
	assert.Empty(t, ExtractExperiences(""))
}

func TestPlaceholderExperience(t *testing.T) {
	exp := PlaceholderExperience()

	assert.Equal(t, PlaceholderPosition, exp.Position)
	assert.Equal(t, PlaceholderDescription, exp.Description)
	assert.Empty(t, exp.Company)
	assert.Empty(t, exp.StartDate)
}
