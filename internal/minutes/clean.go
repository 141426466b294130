package minutes

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun  = regexp.MustCompile(`\s+`)
	leadTimestamp  = regexp.MustCompile(`^\[?\d+:\d+:\d+\]?\s*`)
	leadSpeakerTag = regexp.MustCompile(`(?i)^SPEAKER_\d+:\s*`)
	leadCapsLabel  = regexp.MustCompile(`^[A-Z\s]+:\s*`)
	leadTimeRange  = regexp.MustCompile(`^\[\d+\.\d+-\d+\.\d+\]\s*`)
	terminalPunct  = regexp.MustCompile(`[.!?]$`)
)

// CleanText normalizes one sentence for presentation. The substitutions are
// order-sensitive: whitespace collapse, then leading timestamp, speaker tag,
// all-caps label and time-range prefixes, then first-rune capitalization and a
// terminal period when none of '.', '!', '?' is present. Returns "" when the
// input reduces to nothing.
func CleanText(text string) string {
	text = strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
	text = leadTimestamp.ReplaceAllString(text, "")
	text = leadSpeakerTag.ReplaceAllString(text, "")
	text = leadCapsLabel.ReplaceAllString(text, "")
	text = leadTimeRange.ReplaceAllString(text, "")

	if text != "" {
		r := []rune(text)
		if len(r) > 1 {
			text = strings.ToUpper(string(r[0])) + string(r[1:])
		} else {
			text = strings.ToUpper(text)
		}
	}

	if text != "" && !terminalPunct.MatchString(text) {
		text += "."
	}
	return text
}
