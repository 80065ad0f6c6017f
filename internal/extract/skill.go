package extract

import (
	"regexp"
	"strings"
)

// skillVocabulary is the closed list of recognizable skill tokens.
// Longer alternations come first so "javascript" is never cut to "java".
var skillVocabulary = []string{
	"javascript", "typescript", "react", "angular", "vue", "html", "css",
	"sass", "node.js", "node", "express", "php", "python", "java",
	"golang", "spring", "laravel", "symfony", "django", "sql", "mysql",
	"postgresql", "mongodb", "redis", "docker", "kubernetes",
	"figma", "sketch", "photoshop", "illustrator",
	"git", "jira", "trello", "slack", "notion", "excel", "powerpoint",
}

var reSkillVocab = func() *regexp.Regexp {
	quoted := make([]string, len(skillVocabulary))
	for i, tok := range skillVocabulary {
		quoted[i] = regexp.QuoteMeta(tok)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}()

// ExtractSkillTokens scans the full text against the vocabulary and
// returns the hits as written, deduplicated case-insensitively, in
// order of first appearance.
func ExtractSkillTokens(text string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, hit := range reSkillVocab.FindAllString(text, -1) {
		key := strings.ToLower(hit)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, hit)
	}
	return out
}
