package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/muhammedmuflih/meeting-minutes-generator/internal/domain/entities"
)

// PDFExporter renders minutes as an A4 PDF document.
type PDFExporter struct{}

// NewPDFExporter creates a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Export writes the minutes to path and returns the path.
func (e *PDFExporter) Export(result *entities.MinutesResult, path string) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Core fonts are cp1252 only, so bullets and similar characters need
	// translating before they hit the page.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Meeting Minutes", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(dateLine()), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	for i, s := range minutesSections(result) {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 8, fmt.Sprintf("%d. %s", i+1, s.Title), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5.5, tr(s.Body), "", "L", false)
		pdf.Ln(4)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write pdf file: %w", err)
	}
	return path, nil
}
