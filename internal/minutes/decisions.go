package minutes

import (
	"regexp"
	"strings"
)

// decisionPatterns is the ordered rule table for the decisions classifier.
// Patterns are matched against the lowercased sentence; the first hit wins and
// stops the scan for that sentence.
var decisionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(decided|agreed|concluded|determined|resolved|settled)\b`),
	regexp.MustCompile(`\b(we will|we'll|let's|we should|we must)\b`),
	regexp.MustCompile(`\b(approved|accepted|confirmed|finalized|committed to)\b`),
	regexp.MustCompile(`\b(going with|moving forward with|proceeding with)\b`),
	regexp.MustCompile(`\b(final decision|unanimous|consensus|voted to)\b`),
	regexp.MustCompile(`\b(decision:|conclusion:)\s*`),
	regexp.MustCompile(`\b(plan to|going to|will be|shall)\b`),
	regexp.MustCompile(`\b(selected|chose|picked|opted for)\b`),
	regexp.MustCompile(`\b(scheduled|arranged|organized)\b`),
	regexp.MustCompile(`\b(changed|updated|modified)\b`),
	regexp.MustCompile(`\b(adopted|implemented|established)\b`),
}

// decisionIndicators is the per-sentence keyword fallback, consulted only when
// no pattern matched that sentence.
var decisionIndicators = []string{
	"decide", "agree", "conclude", "determine", "resolve", "settle",
	"will", "shall", "must", "should", "plan to", "going to",
	"approved", "accepted", "confirmed", "finalized", "committed",
	"selected", "chose", "picked", "opted", "scheduled",
	"changed", "updated", "modified", "adopted", "implemented",
	"established", "consensus", "majority", "unanimous",
}

// ExtractDecisions scans every sentence for decision language and returns the
// cleaned sentences, deduplicated and capped. A sentence yields at most one
// decision and must clean to at least five words to count.
func (g *Generator) ExtractDecisions(text string) []string {
	var decisions []string

	for _, sentence := range g.splitter.Split(text) {
		lower := strings.ToLower(sentence)

		matched := false
		for _, pattern := range decisionPatterns {
			if pattern.MatchString(lower) {
				matched = true
				if cleaned := CleanText(sentence); len(strings.Fields(cleaned)) >= 5 {
					decisions = append(decisions, cleaned)
				}
				break
			}
		}
		if matched {
			continue
		}

		for _, indicator := range decisionIndicators {
			if strings.Contains(lower, indicator) {
				if cleaned := CleanText(sentence); len(strings.Fields(cleaned)) >= 5 {
					decisions = append(decisions, cleaned)
				}
				break
			}
		}
	}

	return capItems(Deduplicate(decisions), maxDecisions)
}
