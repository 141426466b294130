// Package minutes turns an unstructured meeting transcript into structured
// meeting minutes: an extractive summary plus scored, deduplicated lists of
// decisions, action items and deadlines. Everything here is heuristic rule
// tables over sentences, with no external NLP model beyond the optional
// sentence-boundary tokenizer.
package minutes

import (
	"strings"

	"go.uber.org/zap"

	"github.com/muhammedmuflih/meeting-minutes-generator/internal/domain/entities"
)

// Generator runs the full minutes pipeline over one transcript. It holds no
// mutable state beyond the injected splitter, so a single Generator is safe
// for concurrent use.
type Generator struct {
	splitter SentenceSplitter
	logger   *zap.Logger
}

// NewGenerator creates a Generator. A nil splitter selects the process-wide
// default (linguistic when available, regex otherwise); a nil logger disables
// logging.
func NewGenerator(splitter SentenceSplitter, logger *zap.Logger) *Generator {
	if splitter == nil {
		splitter = DefaultSplitter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{splitter: splitter, logger: logger}
}

// Generate sequences the whole pipeline: summarize, classify into the three
// categories, then format each field. It never fails; degenerate input is
// resolved internally with placeholder output.
func (g *Generator) Generate(fullText string) *entities.MinutesResult {
	cleaned := strings.TrimSpace(fullText)
	if cleaned == "" {
		return &entities.MinutesResult{
			Summary:     noTranscriptPlaceholder,
			Decisions:   noTranscriptPlaceholder,
			ActionItems: noTranscriptPlaceholder,
			Deadlines:   noTranscriptPlaceholder,
		}
	}

	g.logger.Info("📝 Processing transcript",
		zap.Int("chars", len(cleaned)),
		zap.String("splitter", g.splitter.Name()),
	)

	return &entities.MinutesResult{
		Summary:     FormatSummary(g.Summarize(cleaned)),
		Decisions:   FormatList(g.ExtractDecisions(cleaned), "decision"),
		ActionItems: FormatList(g.ExtractActionItems(cleaned), "action item"),
		Deadlines:   FormatList(g.ExtractDeadlines(cleaned), "deadline"),
	}
}
