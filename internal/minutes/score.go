package minutes

import (
	"regexp"
	"strings"
)

// importantKeywords boosts sentences carrying decision, action or outcome
// language. Each keyword counts once per sentence regardless of repetition.
var importantKeywords = []string{
	"decided", "agreed", "concluded", "will", "should", "must",
	"important", "critical", "key", "main", "primary",
	"action", "deadline", "by", "before", "need to", "have to",
	"summary", "conclusion", "result", "outcome",
	"goal", "objective", "priority", "focus",
}

var anyDigit = regexp.MustCompile(`\d`)

// SentenceImportance scores one sentence for extractive summarization.
// The score is the sum of five independent factors: keyword hits, opening
// position, closing position, word-count band and digit presence. It is
// unbounded and only meaningful for relative ranking.
func SentenceImportance(sentence string, position, totalSentences int) float64 {
	score := 0.0
	lower := strings.ToLower(sentence)

	for _, keyword := range importantKeywords {
		if strings.Contains(lower, keyword) {
			score += 1.0
		}
	}

	if position < 3 {
		score += 2.0
	}
	if position >= totalSentences-3 {
		score += 1.5
	}

	wordCount := len(strings.Fields(sentence))
	switch {
	case wordCount >= 10 && wordCount <= 30:
		score += 1.0
	case wordCount < 5:
		score -= 2.0
	}

	if anyDigit.MatchString(sentence) {
		score += 0.5
	}

	return score
}
