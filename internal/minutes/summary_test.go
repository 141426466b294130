package minutes

import (
	"strings"
	"testing"
)

func newTestGenerator() *Generator {
	return NewGenerator(RegexSplitter{}, nil)
}

func TestSummarizeEmptyText(t *testing.T) {
	g := newTestGenerator()
	if got := g.Summarize("   "); got != "No summary available." {
		t.Errorf("Summarize(blank) = %q", got)
	}
}

func TestSummarizeShortTextWithoutSentences(t *testing.T) {
	g := newTestGenerator()

	// Every fragment is 10 runes or shorter, so nothing survives filtering
	// and the raw text comes back unchanged.
	input := "Hi all. Yes. Ok then."
	if got := g.Summarize(input); got != input {
		t.Errorf("Summarize(%q) = %q, want input back", input, got)
	}
}

func TestSummarizeLongTextWithoutSentencesIsTruncated(t *testing.T) {
	g := newTestGenerator()

	// Only short fragments, but more than 300 runes in total.
	input := strings.Repeat("Yes. ", 80)
	got := g.Summarize(input)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected truncated summary ending in ellipsis, got %q", got)
	}
	if len([]rune(got)) != 303 {
		t.Errorf("expected 300 runes plus ellipsis, got %d runes", len([]rune(got)))
	}
}

func TestSummarizePreservesOriginalOrder(t *testing.T) {
	g := newTestGenerator()

	// The highest scoring sentences are the decision lines, but the summary
	// must present picks in transcript order, not score order.
	input := "The meeting started with a round of introductions for everyone present. " +
		"There was some small talk about the weather in the mountains region. " +
		"We decided the launch will move to October after reviewing the numbers. " +
		"Someone mentioned the coffee machine on the third floor again. " +
		"The team agreed the budget must grow by 20 percent next quarter. " +
		"People discussed lunch options for quite a while during the break. " +
		"The final conclusion covered the key priority goals for the whole year ahead."

	summary := g.Summarize(input)

	first := strings.Index(summary, "We decided the launch")
	second := strings.Index(summary, "The team agreed the budget")
	third := strings.Index(summary, "The final conclusion")
	if first == -1 || second == -1 || third == -1 {
		t.Fatalf("summary missing expected sentences: %q", summary)
	}
	if !(first < second && second < third) {
		t.Errorf("summary out of transcript order: %q", summary)
	}
}

func TestSummarizeSentenceCountBounds(t *testing.T) {
	g := newTestGenerator()

	// 40 sentences: 40/10 = 4 picks expected.
	var b strings.Builder
	for i := 0; i < 40; i++ {
		b.WriteString("This is a perfectly ordinary filler sentence for the transcript. ")
	}
	summary := g.Summarize(b.String())

	picks := strings.Count(summary, "This is a perfectly ordinary filler sentence")
	if picks != 4 {
		t.Errorf("expected 4 sentences in summary, got %d", picks)
	}
}

func TestSummarizeEndsWithTerminalPunctuation(t *testing.T) {
	g := newTestGenerator()

	summary := g.Summarize("We agreed on the new hiring plan for the engineering department next year")
	if !strings.HasSuffix(summary, ".") && !strings.HasSuffix(summary, "!") && !strings.HasSuffix(summary, "?") {
		t.Errorf("summary lacks terminal punctuation: %q", summary)
	}
}
