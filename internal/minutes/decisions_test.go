package minutes

import (
	"fmt"
	"strings"
	"testing"
)

func TestExtractDecisions(t *testing.T) {
	g := newTestGenerator()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "explicit decision verb",
			input: "We decided to proceed with the vendor contract. The weather was nice.",
			want:  []string{"We decided to proceed with the vendor contract."},
		},
		{
			name:  "commitment phrasing",
			input: "We will migrate the database to the new cluster next sprint.",
			want:  []string{"We will migrate the database to the new cluster next sprint."},
		},
		{
			name:  "indicator fallback",
			input: "The majority preferred the second design option overall.",
			want:  []string{"The majority preferred the second design option overall."},
		},
		{
			name:  "too short after cleaning is dropped",
			input: "We agreed quickly.",
			want:  nil,
		},
		{
			name:  "no decision language",
			input: "The office was quiet this morning. Coffee was fresh.",
			want:  nil,
		},
		{
			name: "one decision per sentence",
			input: "We decided and agreed and confirmed the final launch window together. " +
				"Nothing else happened worth noting here today.",
			want: []string{"We decided and agreed and confirmed the final launch window together."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.ExtractDecisions(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractDecisions(%q) = %q, want %q", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("decision %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtractDecisionsCap(t *testing.T) {
	g := newTestGenerator()

	var b strings.Builder
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&b, "We decided to fund project number %d this quarter. ", i)
	}

	got := g.ExtractDecisions(b.String())
	if len(got) != 10 {
		t.Errorf("expected decisions capped at 10, got %d", len(got))
	}
}
