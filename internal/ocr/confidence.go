package ocr

import (
	"regexp"
	"strings"
)

var (
	reEmailish = regexp.MustCompile(`\b[\w.+\-]+@[\w.\-]+\.[a-z]{2,}\b`)
	rePhoneish = regexp.MustCompile(`(?:\+33|0)[1-9](?:[\s.\-]?\d{2}){4}`)
	reYearish  = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

func hasEmailPattern(s string) bool { return reEmailish.MatchString(s) }
func hasPhonePattern(s string) bool { return rePhoneish.MatchString(s) }
func hasYearPattern(s string) bool  { return reYearish.MatchString(s) }

// naive heuristic confidence based on decoded text characteristics
func heuristicConfidence(txt string) float32 {
	// very simple: boost if we see common CV artifacts
	// (email-ish, phone-ish, year-ish). Each adds ~0.15.
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base
	if hasEmailPattern(txtL) {
		score += 0.2
	}
	if hasPhonePattern(txtL) {
		score += 0.15
	}
	if hasYearPattern(txtL) {
		score += 0.15
	}
	if len(txt) > 200 {
		score += 0.1
	} // enough content
	if score > 1.0 {
		score = 1.0
	}
	return score
}
