// Package export renders a MinutesResult into downloadable documents. The
// renderers share one section layout: title, generation date, then the four
// minutes categories in fixed order.
package export

import (
	"time"

	"github.com/muhammedmuflih/meeting-minutes-generator/internal/domain/entities"
)

type section struct {
	Title string
	Body  string
}

func minutesSections(result *entities.MinutesResult) []section {
	return []section{
		{Title: "Meeting Summary", Body: result.Summary},
		{Title: "Key Decisions", Body: result.Decisions},
		{Title: "Action Items", Body: result.ActionItems},
		{Title: "Important Deadlines", Body: result.Deadlines},
	}
}

func dateLine() string {
	return "Date: " + time.Now().Format("2006-01-02 15:04")
}
