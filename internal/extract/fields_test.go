package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEmail(t *testing.T) {
	assert.Equal(t, "jean.dupont@mail.com", ExtractEmail("contact: jean.dupont@mail.com / tel"))
	assert.Equal(t, "a+b@sub.domain.fr", ExtractEmail("a+b@sub.domain.fr"))
	assert.Empty(t, ExtractEmail("pas d'adresse ici"))
}

func TestExtractPhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"tel 06 12 34 56 78", "06 12 34 56 78"},
		{"06.12.34.56.78", "06.12.34.56.78"},
		{"+33 6 12 34 56 78", "+33 6 12 34 56 78"},
		{"0612345678", "0612345678"},
		{"no phone", ""},
		{"00 00 00 00 00", ""}, // leading digit must be 1-9
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExtractPhone(tc.in), "input %q", tc.in)
	}
}

func TestExtractName(t *testing.T) {
	first, last := ExtractName("Jean Dupont\nDéveloppeur")
	assert.Equal(t, "Jean", first)
	assert.Equal(t, "Dupont", last)
}

func TestExtractNameDiacritics(t *testing.T) {
	first, last := ExtractName("Éloïse Lefèvre\nParis")
	assert.Equal(t, "Éloïse", first)
	assert.Equal(t, "Lefèvre", last)
}

func TestExtractNameThreeTokens(t *testing.T) {
	// first token -> first name, last token -> last name
	first, last := ExtractName("Jean Pierre Martin")
	assert.Equal(t, "Jean", first)
	assert.Equal(t, "Martin", last)
}

func TestExtractNameLabelFallback(t *testing.T) {
	first, last := ExtractName("nom: marie curie")
	assert.Equal(t, "marie", first)
	assert.Equal(t, "curie", last)
}

func TestExtractNameNothing(t *testing.T) {
	first, last := ExtractName("texte en minuscules sans majuscule initiale")
	assert.Empty(t, first)
	assert.Empty(t, last)
}

func TestExtractLocationGazetteer(t *testing.T) {
	assert.Equal(t, "Paris", ExtractLocation("habite à paris depuis 2019"))
	assert.Equal(t, "Lyon", ExtractLocation("LYON"))
	assert.Empty(t, ExtractLocation("Berlin"))
}

func TestExtractLocationFirstEntryWins(t *testing.T) {
	// gazetteer order decides, not text order
	assert.Equal(t, "Paris", ExtractLocation("Lyon puis Paris"))
}

func TestExtractHeadlineLabel(t *testing.T) {
	assert.Equal(t, "Lead Developer", ExtractHeadline("Poste : Lead Developer\nautre"))
}

func TestExtractHeadlineVocabulary(t *testing.T) {
	assert.Equal(t, "Développeur web", ExtractHeadline("Jean Dupont\nDéveloppeur web senior"))
	assert.Equal(t, "chef de projet", ExtractHeadline("expérimenté chef de projet digital"))
	assert.Empty(t, ExtractHeadline("aucun métier connu"))
}

func TestExtractFieldsScenarioHeader(t *testing.T) {
	text := "Jean Dupont\njean.dupont@mail.com\n06 12 34 56 78\nParis\nDéveloppeur React"

	first, last := ExtractName(text)
	assert.Equal(t, "Jean", first)
	assert.Equal(t, "Dupont", last)
	assert.Equal(t, "jean.dupont@mail.com", ExtractEmail(text))
	assert.Equal(t, "06 12 34 56 78", ExtractPhone(text))
	assert.Equal(t, "Paris", ExtractLocation(text))
	assert.Equal(t, "Développeur", ExtractHeadline(text))
}
