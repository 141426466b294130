package minutes

import (
	"regexp"
	"strings"
)

// actionPatterns extracts actor/action pairs. Unlike the decisions rules,
// every match inside a sentence is taken, so one sentence can yield several
// action items. Two capture groups build "actor: action"; one group is used
// directly.
var actionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s+(?:will|should|needs? to|has to|must|is going to)\s+([^.!?]{10,})`),
	regexp.MustCompile(`(?i)([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s+(?:is|will be)\s+(?:responsible for|in charge of|handling)\s+([^.!?]{10,})`),
	regexp.MustCompile(`(?i)(?:action item|task|todo|to-do|assignment):\s*([^.!?]{10,})`),
	regexp.MustCompile(`(?i)(?:please|can you|could you|would you)\s+([^.!?]{10,})`),
	regexp.MustCompile(`(?i)\b(?:we|someone|somebody)\s+(?:need to|have to|must|should)\s+([^.!?]{10,})`),
}

// ExtractActionItems scans every sentence with the action rule table and
// returns the constructed items, cleaned, deduplicated and capped. An item
// must clean to at least three words to count.
func (g *Generator) ExtractActionItems(text string) []string {
	var items []string

	for _, sentence := range g.splitter.Split(text) {
		for _, pattern := range actionPatterns {
			for _, match := range pattern.FindAllStringSubmatch(sentence, -1) {
				var item string
				switch {
				case len(match) >= 3:
					item = strings.TrimSpace(match[1]) + ": " + strings.TrimSpace(match[2])
				case len(match) == 2:
					item = strings.TrimSpace(match[1])
				default:
					continue
				}

				if cleaned := CleanText(item); len(strings.Fields(cleaned)) >= 3 {
					items = append(items, cleaned)
				}
			}
		}
	}

	return capItems(Deduplicate(items), maxActionItems)
}
