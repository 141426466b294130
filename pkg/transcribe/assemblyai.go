package transcribe

import (
	"context"
	"fmt"
	"os"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"go.uber.org/zap"

	"github.com/muhammedmuflih/meeting-minutes-generator/internal/domain/entities"
	"github.com/muhammedmuflih/meeting-minutes-generator/pkg/config"
)

// AssemblyAIBackend transcribes through the AssemblyAI API using the official
// SDK: upload the file, submit, poll until the transcript completes.
type AssemblyAIBackend struct {
	client   *aai.Client
	language string
	logger   *zap.Logger
}

// NewAssemblyAIBackend creates an AssemblyAI backend from config.
func NewAssemblyAIBackend(cfg *config.AssemblyAIConfig, logger *zap.Logger) *AssemblyAIBackend {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssemblyAIBackend{
		client:   aai.NewClient(cfg.APIKey),
		language: cfg.Language,
		logger:   logger,
	}
}

// Transcribe uploads the audio file and waits for the remote transcript.
func (a *AssemblyAIBackend) Transcribe(ctx context.Context, audioPath string) ([]entities.Segment, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	a.logger.Info("📤 Uploading audio to AssemblyAI", zap.String("audio", audioPath))

	params := &aai.TranscriptOptionalParams{
		LanguageCode:  aai.TranscriptLanguageCode(a.language),
		SpeakerLabels: aai.Bool(true),
	}

	transcript, err := a.client.Transcripts.TranscribeFromReader(ctx, f, params)
	if err != nil {
		return nil, fmt.Errorf("assemblyai transcription: %w", err)
	}
	if transcript.Status == aai.TranscriptStatusError {
		return nil, fmt.Errorf("assemblyai transcription failed: %s", deref(transcript.Error))
	}

	var segments []entities.Segment
	for _, u := range transcript.Utterances {
		text := deref(u.Text)
		if text == "" {
			continue
		}
		segments = append(segments, entities.Segment{
			// Utterance timings are in milliseconds.
			Start: float64(derefInt(u.Start)) / 1000,
			End:   float64(derefInt(u.End)) / 1000,
			Text:  text,
		})
	}

	if len(segments) == 0 {
		if text := deref(transcript.Text); text != "" {
			segments = append(segments, entities.Segment{Start: 0, End: 0, Text: text})
		}
	}

	a.logger.Info("✅ AssemblyAI transcript ready", zap.Int("segments", len(segments)))
	return segments, nil
}

// Name identifies the backend.
func (a *AssemblyAIBackend) Name() string { return "assemblyai" }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
