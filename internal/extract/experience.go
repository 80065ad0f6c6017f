package extract

import (
	"regexp"
	"strings"
)

// Placeholder values used when the extractor declines to guess. The
// organization name is the only thing committed from a matched line;
// position and description are left for manual review on purpose, since
// guessing titles out of OCR-degraded text produces false precision.
const (
	PlaceholderPosition    = "Poste à définir"
	PlaceholderDescription = "À compléter"
	EndDatePresent         = "présent"
)

var (
	reYear    = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	rePresent = regexp.MustCompile(`(?i)\b(?:pr[ée]sent|present|aujourd'hui|actuel(?:lement)?)\b`)
	reOrg     = regexp.MustCompile(`(?:\b[Cc]hez|\b[Aa]t|@)\s+([A-ZÀÂÄÇÉÈÊËÎÏÔÖÙÛÜ][\wà-öø-ÿ&.'\-]*(?:\s+[A-ZÀÂÄÇÉÈÊËÎÏÔÖÙÛÜ][\wà-öø-ÿ&.'\-]*)*)`)
)

// ExtractExperiences scans the experience zone line by line. A line
// yields one entry when it carries an organization marker (chez/at/@)
// and at least one year. Matched years only bound a default range
// (YYYY-01 .. YYYY-12); a present-synonym closes the range with the
// literal "présent".
func ExtractExperiences(zone string) []Experience {
	var out []Experience
	for _, line := range strings.Split(zone, "\n") {
		org := reOrg.FindStringSubmatch(line)
		if org == nil {
			continue
		}
		years := reYear.FindAllString(line, -1)
		if len(years) == 0 {
			continue
		}

		end := years[len(years)-1] + "-12"
		if rePresent.MatchString(line) {
			end = EndDatePresent
		}

		out = append(out, Experience{
			Position:    PlaceholderPosition,
			Company:     strings.TrimRight(strings.TrimSpace(org[1]), ".,;"),
			StartDate:   years[0] + "-01",
			EndDate:     end,
			Description: PlaceholderDescription,
		})
	}
	return out
}

// PlaceholderExperience is the structurally required entry inserted when
// nothing matched, so the review screens always have one editable row.
func PlaceholderExperience() Experience {
	return Experience{
		Position:    PlaceholderPosition,
		Description: PlaceholderDescription,
	}
}
