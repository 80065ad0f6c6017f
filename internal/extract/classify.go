package extract

import (
	"regexp"
	"strings"

	"github.com/scanfolio/cv-scanner/constants"
)

// Category membership lists, tested in this order; first hit wins and
// anything unknown falls back to Général.
var categoryTokens = []struct {
	category constants.SkillCategory
	tokens   []string
}{
	{constants.CategoryFrontend, []string{
		"javascript", "typescript", "react", "angular", "vue", "html",
		"css", "sass",
	}},
	{constants.CategoryBackend, []string{
		"node.js", "node", "express", "php", "python", "java", "golang",
		"spring", "laravel", "symfony", "django", "sql", "mysql",
		"postgresql", "mongodb", "redis", "docker", "kubernetes",
	}},
	{constants.CategoryDesign, []string{
		"figma", "sketch", "photoshop", "illustrator",
	}},
	{constants.CategoryTools, []string{
		"git", "jira", "trello", "slack", "notion", "excel", "powerpoint",
	}},
}

// Level keyword families in descending strength, so the strongest stated
// claim wins when several co-occur with the same token.
var levelKeywords = []struct {
	level   constants.SkillLevel
	pattern string
}{
	{constants.LevelExpert, `expert(?:e|ise)?`},
	{constants.LevelAdvanced, `avanc[ée]e?|confirm[ée]e?`},
	{constants.LevelIntermediate, `interm[ée]diaire|moyen(?:ne)?`},
	{constants.LevelBeginner, `d[ée]butante?|notions?`},
}

// CategoryOf resolves a raw skill token to its closed category.
func CategoryOf(token string) constants.SkillCategory {
	normalized := strings.ToLower(strings.TrimSpace(token))
	for _, group := range categoryTokens {
		for _, t := range group.tokens {
			if normalized == t {
				return group.category
			}
		}
	}
	return constants.CategoryGeneral
}

// LevelOf infers a proficiency level from the co-occurrence of the token
// immediately adjacent to a level keyword anywhere in the full text.
// Defaults to Intermédiaire: the review UI needs a concrete value and
// the midpoint is the least overconfident choice.
func LevelOf(token, fullText string) constants.SkillLevel {
	q := regexp.QuoteMeta(strings.TrimSpace(token))
	if q == "" {
		return constants.LevelIntermediate
	}
	for _, kw := range levelKeywords {
		// the gap must not cross list separators, or a keyword would
		// bind to both of its neighbors in "React expert, Python"
		re := regexp.MustCompile(`(?i)(?:` + kw.pattern + `)[^\w\n,;/|]{1,12}` + q +
			`|` + q + `[^\w\n,;/|]{1,12}(?:` + kw.pattern + `)`)
		if re.MatchString(fullText) {
			return kw.level
		}
	}
	return constants.LevelIntermediate
}

// Classify maps a raw skill token to its category and inferred level.
func Classify(token, fullText string) Skill {
	return Skill{
		Name:     token,
		Category: CategoryOf(token),
		Level:    LevelOf(token, fullText),
	}
}
