package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"crlf", "a\r\nb\rc", "a\nb\nc"},
		{"tabs and runs of spaces", "a\t\tb   c", "a b c"},
		{"blank line runs collapse", "a\n\n\n\nb", "a\n\nb"},
		{"trailing spaces stripped", "a  \nb", "a\nb"},
		{"surrounding whitespace trimmed", "\n\n a \n\n", "a"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestHeuristicConfidence(t *testing.T) {
	assert.InDelta(t, 0.2, heuristicConfidence("rien"), 0.001)
	assert.InDelta(t, 0.4, heuristicConfidence("mail a@b.fr"), 0.001)
	assert.InDelta(t, 0.35, heuristicConfidence("tel 06 12 34 56 78"), 0.001)
	assert.InDelta(t, 0.35, heuristicConfidence("depuis 2020"), 0.001)
	assert.InDelta(t, 0.55, heuristicConfidence("a@b.fr 06 12 34 56 78"), 0.001)
}
