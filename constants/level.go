package constants

import "strings"

// SkillLevel is the four-point ordinal proficiency scale.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Débutant"
	LevelIntermediate SkillLevel = "Intermédiaire"
	LevelAdvanced     SkillLevel = "Avancé"
	LevelExpert       SkillLevel = "Expert"
)

// levelRank orders levels for comparisons; higher is stronger.
var levelRank = map[SkillLevel]int{
	LevelBeginner:     1,
	LevelIntermediate: 2,
	LevelAdvanced:     3,
	LevelExpert:       4,
}

var allLevels = []SkillLevel{
	LevelBeginner,
	LevelIntermediate,
	LevelAdvanced,
	LevelExpert,
}

func LevelsAsStringSlice() []string {
	result := make([]string, len(allLevels))
	for i, lvl := range allLevels {
		result[i] = string(lvl)
	}
	return result
}

// Rank returns the ordinal position of a level (0 for unknown labels).
func (l SkillLevel) Rank() int {
	return levelRank[l]
}

// CanonicalizeLevel maps a free-form label back onto the scale.
// Unknown labels land on Intermédiaire, the least overconfident default.
func CanonicalizeLevel(input string) (SkillLevel, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return LevelIntermediate, false
	}

	synonyms := map[string]SkillLevel{
		"debutant":      LevelBeginner,
		"notions":       LevelBeginner,
		"junior":        LevelBeginner,
		"intermediaire": LevelIntermediate,
		"moyen":         LevelIntermediate,
		"avance":        LevelAdvanced,
		"confirme":      LevelAdvanced,
		"confirmé":      LevelAdvanced,
		"senior":        LevelAdvanced,
		"expertise":     LevelExpert,
	}
	if lvl, ok := synonyms[normalized]; ok {
		return lvl, true
	}

	for _, lvl := range allLevels {
		if normalized == strings.ToLower(string(lvl)) {
			return lvl, true
		}
	}
	return LevelIntermediate, false
}
