package constants

import (
	"strings"
)

// SkillCategory is the closed set of skill families shown in the review UI.
type SkillCategory string

const (
	CategoryFrontend SkillCategory = "Frontend"
	CategoryBackend  SkillCategory = "Backend"
	CategoryDesign   SkillCategory = "Design"
	CategoryTools    SkillCategory = "Outils"
	CategoryGeneral  SkillCategory = "Général"
)

var allCategories = []SkillCategory{
	CategoryFrontend,
	CategoryBackend,
	CategoryDesign,
	CategoryTools,
	CategoryGeneral,
}

func CategoriesAsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// CanonicalizeCategory maps a free-form label back onto the closed set.
// Unknown labels land on Général.
func CanonicalizeCategory(input string) (SkillCategory, bool) {
	if input == "" {
		return CategoryGeneral, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]SkillCategory{
		"front":      CategoryFrontend,
		"front-end":  CategoryFrontend,
		"frontend":   CategoryFrontend,
		"back":       CategoryBackend,
		"back-end":   CategoryBackend,
		"backend":    CategoryBackend,
		"ui":         CategoryDesign,
		"ux":         CategoryDesign,
		"graphisme":  CategoryDesign,
		"tools":      CategoryTools,
		"outil":      CategoryTools,
		"general":    CategoryGeneral,
		"génerale":   CategoryGeneral,
		"autre":      CategoryGeneral,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return CategoryGeneral, false
}
