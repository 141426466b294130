package minutes

import (
	"sort"
	"strings"
	"unicode/utf8"
)

type scoredSentence struct {
	text  string
	score float64
	index int
}

// Summarize builds an extractive summary: score every sentence, pick the top
// few, then stitch the picks back together in their original order. Ranking
// decides which sentences matter; presentation keeps the narrative order.
func (g *Generator) Summarize(text string) string {
	if strings.TrimSpace(text) == "" {
		return noSummaryPlaceholder
	}

	var cleaned []string
	for _, s := range g.splitter.Split(text) {
		s = strings.TrimSpace(s)
		if utf8.RuneCountInString(s) > 10 {
			cleaned = append(cleaned, s)
		}
	}

	if len(cleaned) == 0 {
		if utf8.RuneCountInString(text) > 300 {
			return string([]rune(text)[:300]) + "..."
		}
		return text
	}

	scored := make([]scoredSentence, len(cleaned))
	for i, s := range cleaned {
		scored[i] = scoredSentence{
			text:  s,
			score: SentenceImportance(s, i, len(cleaned)),
			index: i,
		}
	}

	// Stable sort keeps earlier sentences first on score ties.
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	count := len(cleaned) / 10
	if count < 3 {
		count = 3
	}
	if count > 8 {
		count = 8
	}
	if count > len(scored) {
		count = len(scored)
	}

	top := scored[:count]
	sort.Slice(top, func(i, j int) bool { return top[i].index < top[j].index })

	parts := make([]string, len(top))
	for i, s := range top {
		parts[i] = s.text
	}
	summary := strings.Join(parts, " ")

	if summary != "" && !terminalPunct.MatchString(summary) {
		summary += "."
	}
	return summary
}
