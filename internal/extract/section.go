package extract

import (
	"regexp"
	"strings"
)

// Section tags one coarse zone of the recognized text.
type Section string

const (
	SectionPersonal   Section = "personal"
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionSkills     Section = "skills"
)

// SectionMap holds the lines assigned to each zone, newline-joined.
// All four keys are always present; an empty zone maps to "".
type SectionMap map[Section]string

// Keyword families that open a section. A line is tested in this fixed
// priority order and can open at most one section. \b is ASCII-only in
// Go regexes, so alternatives that start or end on an accented letter
// need explicit non-letter boundaries instead.
var (
	reExperienceKw = regexp.MustCompile(`(?i)\b(exp[ée]riences?|parcours|emplois?)\b`)
	reEducationKw  = regexp.MustCompile(`(?i)(?:^|[^\p{L}])(formations?|[ée]tudes|dipl[ôo]mes?|scolarit[ée]|[ée]ducation)(?:$|[^\p{L}])`)
	reSkillsKw     = regexp.MustCompile(`(?i)\b(comp[ée]tences?|skills|savoir-faire|technologies)\b`)
)

// Segment splits text into the four zones in a single linear pass.
// The cursor starts on personal; a keyword match moves it and the header
// line itself is appended to the section it just opened. If no keyword
// ever matches, the whole document lands in personal.
func Segment(text string) SectionMap {
	buffers := map[Section]*strings.Builder{
		SectionPersonal:   {},
		SectionExperience: {},
		SectionEducation:  {},
		SectionSkills:     {},
	}

	current := SectionPersonal
	for _, line := range strings.Split(text, "\n") {
		switch {
		case reExperienceKw.MatchString(line):
			current = SectionExperience
		case reEducationKw.MatchString(line):
			current = SectionEducation
		case reSkillsKw.MatchString(line):
			current = SectionSkills
		}
		b := buffers[current]
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}

	out := make(SectionMap, len(buffers))
	for sec, b := range buffers {
		out[sec] = b.String()
	}
	return out
}
