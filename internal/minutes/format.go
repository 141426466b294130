package minutes

import (
	"fmt"
	"strings"
)

const (
	noTranscriptPlaceholder = "No transcript text provided."
	noSummaryPlaceholder    = "No summary available."
)

// FormatSummary normalizes summary text for display: whitespace collapsed,
// terminal punctuation ensured. Empty or placeholder-equivalent input yields
// the fixed "No summary available." string, which makes the function a fixed
// point on its own output.
func FormatSummary(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == noSummaryPlaceholder || trimmed == noTranscriptPlaceholder {
		return noSummaryPlaceholder
	}

	text = strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
	if text != "" && !terminalPunct.MatchString(text) {
		text += "."
	}
	return text
}

// FormatList renders extracted items as bulleted lines in list order, or the
// fixed "No explicit <type>s identified." placeholder for an empty list.
func FormatList(items []string, itemType string) string {
	if len(items) == 0 {
		return fmt.Sprintf("No explicit %ss identified.", itemType)
	}

	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + item
	}
	return strings.Join(lines, "\n")
}
