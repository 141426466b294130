// Package transcribe provides pluggable speech-to-text backends. Every
// backend consumes a normalized 16 kHz mono WAV file and yields ordered,
// timestamped segments.
package transcribe

import (
	"context"

	"github.com/muhammedmuflih/meeting-minutes-generator/internal/domain/entities"
)

// Backend is a pluggable transcription backend.
type Backend interface {
	// Transcribe converts the audio file into ordered segments.
	Transcribe(ctx context.Context, audioPath string) ([]entities.Segment, error)
	// Name identifies the backend for logs.
	Name() string
}
