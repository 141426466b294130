package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/muhammedmuflih/meeting-minutes-generator/internal/domain/entities"
)

// WordExporter renders minutes as a .docx document.
type WordExporter struct{}

// NewWordExporter creates a Word exporter.
func NewWordExporter() *WordExporter {
	return &WordExporter{}
}

// Export writes the minutes to path and returns the path.
func (e *WordExporter) Export(result *entities.MinutesResult, path string) (string, error) {
	doc := docx.New().WithDefaultTheme()

	doc.AddParagraph().Justification("center").AddText("Meeting Minutes").Size("36").Bold()
	doc.AddParagraph().Justification("center").AddText(dateLine()).Size("20")
	doc.AddParagraph()

	for _, s := range minutesSections(result) {
		doc.AddParagraph().AddText(s.Title).Size("28").Bold()
		// One paragraph per line keeps bullet items on their own rows.
		for _, line := range strings.Split(s.Body, "\n") {
			doc.AddParagraph().AddText(line).Size("22")
		}
		doc.AddParagraph()
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create word file: %w", err)
	}
	defer f.Close()

	if _, err := doc.WriteTo(f); err != nil {
		return "", fmt.Errorf("write word file: %w", err)
	}
	return path, nil
}
