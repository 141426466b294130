package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muhammedmuflih/meeting-minutes-generator/internal/domain/entities"
)

func testResult() *entities.MinutesResult {
	return &entities.MinutesResult{
		Summary:     "The team agreed on the release plan.",
		Decisions:   "• We decided to ship in October.",
		ActionItems: "• John: send the report by Friday.",
		Deadlines:   "• The report is due by Friday.",
	}
}

func TestTextExporter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minutes.txt")

	got, err := NewTextExporter().Export(testResult(), path)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if got != path {
		t.Errorf("returned path = %q, want %q", got, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	content := string(data)

	for _, want := range []string{
		"--- Meeting Minutes ---",
		"Date: ",
		"Meeting Summary:\nThe team agreed on the release plan.",
		"Key Decisions:\n• We decided to ship in October.",
		"Action Items:\n• John: send the report by Friday.",
		"Important Deadlines:\n• The report is due by Friday.",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("exported text missing %q:\n%s", want, content)
		}
	}
}

func TestMinutesSectionsOrder(t *testing.T) {
	sections := minutesSections(testResult())

	wantTitles := []string{"Meeting Summary", "Key Decisions", "Action Items", "Important Deadlines"}
	if len(sections) != len(wantTitles) {
		t.Fatalf("expected %d sections, got %d", len(wantTitles), len(sections))
	}
	for i, title := range wantTitles {
		if sections[i].Title != title {
			t.Errorf("section %d = %q, want %q", i, sections[i].Title, title)
		}
	}
}

func TestPDFExporterWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minutes.pdf")

	if _, err := NewPDFExporter().Export(testResult(), path); err != nil {
		t.Fatalf("Export: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat exported file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("exported PDF is empty")
	}
}

func TestWordExporterWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minutes.docx")

	if _, err := NewWordExporter().Export(testResult(), path); err != nil {
		t.Fatalf("Export: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat exported file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("exported Word document is empty")
	}
}
