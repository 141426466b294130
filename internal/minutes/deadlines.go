package minutes

import (
	"regexp"
	"strings"
)

// timeIndicators gates the deadline scan: a sentence without any of these
// substrings is never matched against the pattern table.
var timeIndicators = []string{
	"deadline", "due", "by", "before", "until", "asap", "urgent",
	"priority", "immediately", "soon", "quickly", "tomorrow", "today",
	"week", "month", "quarter", "year",
	"at", "on", "date", "time", "schedule", "appointment",
}

// deadlinePatterns covers relative time phrases, explicit dates in several
// formats, clock times, and combined date+time expressions. First hit wins
// and extracts the whole sentence.
var deadlinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:by|before|until|no later than|due)\s+([A-Z][a-z]+day(?:\s+\w+)*|(?:the\s+)?\d{1,2}(?:st|nd|rd|th)?(?:\s+of)?\s+\w+|\d{1,2}/\d{1,2})`),
	regexp.MustCompile(`(?i)(?:deadline|due date)(?:\s+is)?:?\s+([\w\s,]+)`),
	regexp.MustCompile(`(?i)(?:complete|finish|submit|deliver|send)\s+(?:by|before)\s+([\w\s,]+)`),
	regexp.MustCompile(`(?i)\b(tomorrow|today|tonight|this week|next week|this month|next month|end of (?:week|month|quarter|year))\b`),
	regexp.MustCompile(`(?i)(?:in|within)\s+(\d+\s+(?:days?|weeks?|months?))`),

	// Explicit dates: DD/MM/YYYY, DD-MM-YYYY, MM/DD/YYYY.
	regexp.MustCompile(`(?i)\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
	// Month DD, YYYY (e.g. May 18, 2025).
	regexp.MustCompile(`(?i)\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{1,2}(?:st|nd|rd|th)?,? \d{4}\b`),
	// DD Month YYYY (e.g. 18 May 2025).
	regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)? (?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{4}\b`),

	// Clock times: HH:MM, with optional AM/PM.
	regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}\s*(?:AM|PM|am|pm)\b`),

	// Combined date and time.
	regexp.MustCompile(`(?i)\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\s+(?:at\s+)?\d{1,2}:\d{2}(?:\s*(?:AM|PM|am|pm))?\b`),
	regexp.MustCompile(`(?i)\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{1,2}(?:st|nd|rd|th)?,? \d{4}\s+(?:at\s+)?\d{1,2}:\d{2}(?:\s*(?:AM|PM|am|pm))?\b`),
}

// ExtractDeadlines scans every sentence containing a time indicator against
// the deadline rule table and returns the cleaned sentences, deduplicated and
// capped. A sentence must clean to at least three words to count.
func (g *Generator) ExtractDeadlines(text string) []string {
	var deadlines []string

	for _, sentence := range g.splitter.Split(text) {
		lower := strings.ToLower(sentence)

		indicated := false
		for _, indicator := range timeIndicators {
			if strings.Contains(lower, indicator) {
				indicated = true
				break
			}
		}
		if !indicated {
			continue
		}

		for _, pattern := range deadlinePatterns {
			if pattern.MatchString(sentence) {
				if cleaned := CleanText(sentence); len(strings.Fields(cleaned)) >= 3 {
					deadlines = append(deadlines, cleaned)
				}
				break
			}
		}
	}

	return capItems(Deduplicate(deadlines), maxDeadlines)
}
