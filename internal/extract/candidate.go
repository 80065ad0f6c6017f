package extract

import (
	"github.com/scanfolio/cv-scanner/constants"
)

// Fields is the flat bag of identity values recovered from the text.
// Every field is best-effort: empty means the extractor found nothing.
type Fields struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Headline  string `json:"headline"`
}

// Experience is one work entry. Company is the only value the extractor
// commits to with confidence; position and dates carry placeholder
// defaults meant to be corrected during review.
type Experience struct {
	Position    string `json:"position"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"` // YYYY-MM
	EndDate     string `json:"end_date"`   // YYYY-MM or "présent"
	Description string `json:"description"`
}

// Education is one study entry.
type Education struct {
	Degree      string `json:"degree"`
	School      string `json:"school"`
	Location    string `json:"location"`
	StartYear   string `json:"start_year"`
	EndYear     string `json:"end_year"`
	Description string `json:"description"`
}

// Skill is a vocabulary hit enriched by the classifier.
type Skill struct {
	Name     string                  `json:"name"`
	Category constants.SkillCategory `json:"category"`
	Level    constants.SkillLevel    `json:"level"`
}

// Candidate is the fully assembled, extraction-derived representation of
// one scanned CV. It is created fresh per capture and never mutated after
// assembly; review edits go through a Clone.
type Candidate struct {
	Fields      Fields       `json:"fields"`
	Experiences []Experience `json:"experiences"`
	Educations  []Education  `json:"educations"`
	Skills      []Skill      `json:"skills"`
	RawText     string       `json:"raw_text"`
}

// Clone returns a deep copy safe for independent mutation.
func (c *Candidate) Clone() *Candidate {
	if c == nil {
		return nil
	}
	out := &Candidate{
		Fields:  c.Fields,
		RawText: c.RawText,
	}
	out.Experiences = make([]Experience, len(c.Experiences))
	copy(out.Experiences, c.Experiences)
	out.Educations = make([]Education, len(c.Educations))
	copy(out.Educations, c.Educations)
	out.Skills = make([]Skill, len(c.Skills))
	copy(out.Skills, c.Skills)
	return out
}
