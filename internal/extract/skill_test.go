package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkillTokens(t *testing.T) {
	tokens := ExtractSkillTokens("Compétences : React, Python, Docker")
	assert.Equal(t, []string{"React", "Python", "Docker"}, tokens)
}

func TestExtractSkillTokensDedupCaseInsensitive(t *testing.T) {
	tokens := ExtractSkillTokens("React react REACT python")
	assert.Equal(t, []string{"React", "python"}, tokens)
}

func TestExtractSkillTokensJavascriptNotCutToJava(t *testing.T) {
	tokens := ExtractSkillTokens("javascript uniquement")
	assert.Equal(t, []string{"javascript"}, tokens)
}

func TestExtractSkillTokensJavaAlone(t *testing.T) {
	tokens := ExtractSkillTokens("java et spring")
	assert.Equal(t, []string{"java", "spring"}, tokens)
}

func TestExtractSkillTokensUnknownWordsIgnored(t *testing.T) {
	assert.Empty(t, ExtractSkillTokens("cuisine jardinage bricolage"))
}

func TestExtractSkillTokensFirstAppearanceOrder(t *testing.T) {
	tokens := ExtractSkillTokens("docker avant git avant docker")
	assert.Equal(t, []string{"docker", "git"}, tokens)
}
