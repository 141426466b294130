package minutes

import "testing"

func TestExtractDeadlines(t *testing.T) {
	g := newTestGenerator()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "weekday deadline",
			input: "The report must be submitted by Friday morning.",
			want:  []string{"The report must be submitted by Friday morning."},
		},
		{
			name:  "relative time phrase",
			input: "Let us wrap the testing phase next week for sure.",
			want:  []string{"Let us wrap the testing phase next week for sure."},
		},
		{
			name:  "explicit date",
			input: "The contract renewal is scheduled for 12/05/2026 at the latest.",
			want:  []string{"The contract renewal is scheduled for 12/05/2026 at the latest."},
		},
		{
			name:  "month day year date",
			input: "Production rollout happens on May 18, 2026 according to the schedule.",
			want:  []string{"Production rollout happens on May 18, 2026 according to the schedule."},
		},
		{
			name:  "clock time",
			input: "The demo session starts at 14:30 in the main room.",
			want:  []string{"The demo session starts at 14:30 in the main room."},
		},
		{
			name:  "duration window",
			input: "We expect the fix to land within 3 days before launch.",
			want:  []string{"We expect the fix to land within 3 days before launch."},
		},
		{
			name:  "no time language",
			input: "The discussion covered architecture tradeoffs in depth.",
			want:  nil,
		},
		{
			name:  "indicator without pattern match",
			input: "The priority list needs another review pass from the leads.",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.ExtractDeadlines(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractDeadlines(%q) = %q, want %q", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("deadline %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtractDeadlinesDeduplicatesRepeats(t *testing.T) {
	g := newTestGenerator()

	input := "Submit the draft by Friday evening without fail. " +
		"Submit the draft by Friday evening without fail."
	got := g.ExtractDeadlines(input)
	if len(got) != 1 {
		t.Errorf("expected repeated deadline collapsed to 1, got %d: %q", len(got), got)
	}
}
