package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEducations(t *testing.T) {
	edus := ExtractEducations("Master informatique, Université de Lyon, 2018 2020")

	require.Len(t, edus, 1)
	assert.Contains(t, edus[0].Degree, "Master informatique")
	assert.Equal(t, "Université de Lyon", edus[0].School)
	assert.Equal(t, "Lyon", edus[0].Location)
	assert.Equal(t, "2018", edus[0].StartYear)
	assert.Equal(t, "2020", edus[0].EndYear)
}

func TestExtractEducationsDegreeVariants(t *testing.T) {
	for _, line := range []string{
		"Licence de droit",
		"BTS électrotechnique",
		"Bac +5 ingénierie",
		"Doctorat en physique",
		"Diplôme d'état",
	} {
		assert.Len(t, ExtractEducations(line), 1, "line %q", line)
	}
}

func TestExtractEducationsSchoolAtLineStart(t *testing.T) {
	// school names starting or ending on an accented letter
	edus := ExtractEducations("École 42, Licence informatique")

	require.Len(t, edus, 1)
	assert.Equal(t, "École 42", edus[0].School)

	edus = ExtractEducations("Master à la Faculté de Rennes")
	require.Len(t, edus, 1)
	assert.Equal(t, "Faculté de Rennes", edus[0].School)
}

func TestExtractEducationsNoDegreeNoEntry(t *testing.T) {
	assert.Empty(t, ExtractEducations("cours du soir sans titre"))
	assert.Empty(t, ExtractEducations(""))
}

func TestExtractEducationsNoYears(t *testing.T) {
	edus := ExtractEducations("Master marketing digital")

	require.Len(t, edus, 1)
	assert.Empty(t, edus[0].StartYear)
	assert.Empty(t, edus[0].EndYear)
}
