package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/muhammedmuflih/meeting-minutes-generator/internal/domain/entities"
)

// TextExporter writes minutes as a plain UTF-8 text file.
type TextExporter struct{}

// NewTextExporter creates a plain text exporter.
func NewTextExporter() *TextExporter {
	return &TextExporter{}
}

// Export writes the minutes to path and returns the path.
func (e *TextExporter) Export(result *entities.MinutesResult, path string) (string, error) {
	var b strings.Builder

	b.WriteString("--- Meeting Minutes ---\n")
	b.WriteString(dateLine() + "\n\n")

	for _, s := range minutesSections(result) {
		fmt.Fprintf(&b, "%s:\n%s\n\n", s.Title, s.Body)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write text file: %w", err)
	}
	return path, nil
}
