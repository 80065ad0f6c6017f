package extract

// Assemble composes extractor outputs into a Candidate. Pure composition:
// no deduplication or cross-zone validation happens here (that is left to
// human review), only the placeholder rule that guarantees at least one
// experience entry for the review screens.
func Assemble(fields Fields, exps []Experience, edus []Education, skills []Skill, rawText string) *Candidate {
	if len(exps) == 0 {
		exps = []Experience{PlaceholderExperience()}
	}
	if edus == nil {
		edus = []Education{}
	}
	if skills == nil {
		skills = []Skill{}
	}
	return &Candidate{
		Fields:      fields,
		Experiences: exps,
		Educations:  edus,
		Skills:      skills,
		RawText:     rawText,
	}
}

// Run executes the full structuring pass over recognized text:
// segmentation, field extraction, assembly, then skill classification.
// It is deterministic and side-effect free; running it twice on the same
// text produces identical candidates.
func Run(text string) *Candidate {
	sections := Segment(text)
	personal := sections[SectionPersonal]

	// Contact-like fields match anywhere; name-like fields only make
	// sense in the header zone.
	first, last := ExtractName(personal)
	fields := Fields{
		FirstName: first,
		LastName:  last,
		Email:     ExtractEmail(text),
		Phone:     ExtractPhone(text),
		Location:  ExtractLocation(text),
		Headline:  ExtractHeadline(personal),
	}

	exps := ExtractExperiences(sections[SectionExperience])
	edus := ExtractEducations(sections[SectionEducation])

	var skills []Skill
	for _, token := range ExtractSkillTokens(text) {
		skills = append(skills, Classify(token, text))
	}

	return Assemble(fields, exps, edus, skills, text)
}
