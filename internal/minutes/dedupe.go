package minutes

import "strings"

// Category caps applied after deduplication, preserving first-seen order.
const (
	maxDecisions   = 10
	maxActionItems = 15
	maxDeadlines   = 10
)

// Deduplicate collapses near-duplicate items. Two items are duplicates when
// their lowercased, trimmed, first-50-rune prefixes are identical. The key is
// deliberately coarse so overlapping pattern hits with slightly different
// phrasing fold into one entry. First occurrence wins.
func Deduplicate(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	var unique []string

	for _, item := range items {
		key := strings.TrimSpace(strings.ToLower(item))
		if r := []rune(key); len(r) > 50 {
			key = string(r[:50])
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, item)
	}
	return unique
}

func capItems(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}
