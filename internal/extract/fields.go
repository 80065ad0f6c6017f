package extract

import (
	"regexp"
	"strings"
)

// Every extractor in this file is a pure function over text: it returns
// its best match or an empty value, and never fails. Extractors with
// several strategies are ordered cascades; the first non-empty result wins.

// matcher is one strategy in a cascade.
type matcher func(text string) string

func firstMatch(text string, matchers ...matcher) string {
	for _, m := range matchers {
		if v := m(text); v != "" {
			return v
		}
	}
	return ""
}

var (
	reEmail = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	// French mobile/landline, national or international prefix.
	rePhone  = regexp.MustCompile(`(?:\+33[\s.\-]?|0)[1-9](?:[\s.\-]?\d{2}){4}`)
	reSpaces = regexp.MustCompile(`\s+`)

	// Two or more capitalized tokens anchored at a line start, diacritic-aware.
	reNameSequence = regexp.MustCompile(`(?m)^[ \t]*([A-ZÀÂÄÇÉÈÊËÎÏÔÖÙÛÜ][a-zà-öø-ÿ'\-]+(?:[ \t]+[A-ZÀÂÄÇÉÈÊËÎÏÔÖÙÛÜ][A-Za-zà-öø-ÿ'\-]*)+)`)
	reNameLabel    = regexp.MustCompile(`(?i)(?:nom|pr[ée]nom|name)\s*[:\-]\s*([^\n]+)`)

	reHeadlineLabel = regexp.MustCompile(`(?i)(?:poste|titre|position)\s*[:\-]\s*([^\n]+)`)
	reHeadlineVocab = regexp.MustCompile(`(?i)\b(d[ée]veloppeu(?:r|se)(?:\s+(?:web|mobile|full[\s-]?stack|front[\s-]?end|back[\s-]?end))?|ing[ée]nieure?|designer|chef de projet|product owner|data scientist|consultante?|architecte|commerciale?|comptable|technicien(?:ne)?)\b`)
)

// gazetteer is the closed list of recognized place names. First hit wins.
var gazetteer = []string{
	"Paris", "Lyon", "Marseille", "Toulouse", "Bordeaux", "Lille",
	"Nantes", "Strasbourg", "Nice", "Rennes", "Montpellier", "Grenoble",
	"France",
}

var gazetteerPatterns = func() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(gazetteer))
	for i, city := range gazetteer {
		out[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(city) + `\b`)
	}
	return out
}()

// ExtractEmail returns the first email-shaped match, or "".
func ExtractEmail(text string) string {
	return reEmail.FindString(text)
}

// ExtractPhone returns the first French phone match with whitespace
// collapsed to single spaces, or "".
func ExtractPhone(text string) string {
	m := rePhone.FindString(text)
	if m == "" {
		return ""
	}
	return strings.TrimSpace(reSpaces.ReplaceAllString(m, " "))
}

// ExtractName returns (firstName, lastName) from the first capitalized
// word sequence, falling back to an explicit Nom/Prénom label. The first
// token of the match is the first name, the last token the last name.
func ExtractName(text string) (string, string) {
	seq := firstMatch(text,
		func(t string) string {
			if m := reNameSequence.FindStringSubmatch(t); m != nil {
				return m[1]
			}
			return ""
		},
		func(t string) string {
			if m := reNameLabel.FindStringSubmatch(t); m != nil {
				return strings.TrimSpace(m[1])
			}
			return ""
		},
	)
	if seq == "" {
		return "", ""
	}
	tokens := strings.Fields(seq)
	if len(tokens) == 1 {
		return tokens[0], ""
	}
	return tokens[0], tokens[len(tokens)-1]
}

// ExtractLocation matches the gazetteer against the text; first entry wins.
func ExtractLocation(text string) string {
	for i, re := range gazetteerPatterns {
		if re.MatchString(text) {
			return gazetteer[i]
		}
	}
	return ""
}

// ExtractHeadline tries an explicit Poste/Titre/Position label first,
// then a closed vocabulary of job titles.
func ExtractHeadline(text string) string {
	return firstMatch(text,
		func(t string) string {
			if m := reHeadlineLabel.FindStringSubmatch(t); m != nil {
				return strings.TrimSpace(m[1])
			}
			return ""
		},
		func(t string) string {
			return strings.TrimSpace(reHeadlineVocab.FindString(t))
		},
	)
}
