package minutes

import "testing"

func TestFormatSummary(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "normalizes whitespace and adds period",
			input: "  The team   agreed on\nthe plan  ",
			want:  "The team agreed on the plan.",
		},
		{
			name:  "keeps existing terminal punctuation",
			input: "Was the plan approved?",
			want:  "Was the plan approved?",
		},
		{
			name:  "empty input yields placeholder",
			input: "   ",
			want:  "No summary available.",
		},
		{
			name:  "placeholder passes through unchanged",
			input: "No summary available.",
			want:  "No summary available.",
		},
		{
			name:  "missing transcript placeholder maps to summary placeholder",
			input: "No transcript text provided.",
			want:  "No summary available.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSummary(tt.input); got != tt.want {
				t.Errorf("FormatSummary(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatSummaryIsFixedPoint(t *testing.T) {
	inputs := []string{"The plan was approved", "  lots   of space  ", "", "No summary available."}
	for _, input := range inputs {
		once := FormatSummary(input)
		if twice := FormatSummary(once); twice != once {
			t.Errorf("FormatSummary not a fixed point for %q: %q then %q", input, once, twice)
		}
	}
}

func TestFormatList(t *testing.T) {
	got := FormatList([]string{"First item.", "Second item."}, "decision")
	want := "• First item.\n• Second item."
	if got != want {
		t.Errorf("FormatList = %q, want %q", got, want)
	}
}

func TestFormatListEmpty(t *testing.T) {
	tests := []struct {
		itemType string
		want     string
	}{
		{"decision", "No explicit decisions identified."},
		{"action item", "No explicit action items identified."},
		{"deadline", "No explicit deadlines identified."},
	}
	for _, tt := range tests {
		if got := FormatList(nil, tt.itemType); got != tt.want {
			t.Errorf("FormatList(nil, %q) = %q, want %q", tt.itemType, got, tt.want)
		}
	}
}
