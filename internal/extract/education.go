package extract

import (
	"regexp"
	"strings"
)

var (
	reDegree = regexp.MustCompile(`(?i)\b(master|licence|doctorat|bac(?:\s*\+\s*[1-8])?|bts|dut|but|mba|cap|dipl[ôo]me)\b`)
	// accented edges cannot use \b (ASCII-only), so the school name is
	// captured as a submatch behind an explicit non-letter boundary
	reSchool = regexp.MustCompile(`(?i)(?:^|[^\p{L}])((?:universit[ée]|[ée]cole|institut|iut|lyc[ée]e|facult[ée]|conservatoire)(?:[^\p{L}\n,;][^\n,;]*)?)`)
)

// ExtractEducations scans the education zone line by line. Unlike
// experiences there is no placeholder: a line must carry a degree
// indicator to produce an entry, and an empty zone yields an empty list.
func ExtractEducations(zone string) []Education {
	var out []Education
	for _, line := range strings.Split(zone, "\n") {
		if !reDegree.MatchString(line) {
			continue
		}

		var start, end string
		if years := reYear.FindAllString(line, -1); len(years) > 0 {
			start = years[0]
			end = years[len(years)-1]
		}

		var school string
		if m := reSchool.FindStringSubmatch(line); m != nil {
			school = strings.TrimSpace(m[1])
		}

		out = append(out, Education{
			Degree:    strings.TrimSpace(line),
			School:    school,
			Location:  ExtractLocation(line),
			StartYear: start,
			EndYear:   end,
		})
	}
	return out
}
