package job

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/muhammedmuflih/meeting-minutes-generator/internal/domain/entities"
	"github.com/muhammedmuflih/meeting-minutes-generator/internal/infrastructure/jobstore"
	"github.com/muhammedmuflih/meeting-minutes-generator/internal/infrastructure/media"
	"github.com/muhammedmuflih/meeting-minutes-generator/internal/minutes"
	"github.com/muhammedmuflih/meeting-minutes-generator/pkg/config"
)

func TestExportBaseName(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		suffix string
	}{
		{"plain name", "/tmp/uploads/standup.mp3", "_standup_minutes"},
		{"spaces and punctuation sanitized", "/tmp/weekly sync (v2).wav", "_weekly_sync__v2__minutes"},
		{"unicode collapsed", "/tmp/réunion.mp3", "_r_union_minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exportBaseName(tt.input)
			if !strings.HasSuffix(got, tt.suffix) {
				t.Errorf("exportBaseName(%q) = %q, want suffix %q", tt.input, got, tt.suffix)
			}
			// Timestamp prefix: YYYYMMDD_HHMMSS_.
			if len(got) < 16 || got[8] != '_' || got[15] != '_' {
				t.Errorf("missing timestamp prefix: %q", got)
			}
		})
	}
}

func TestServiceGetMissingJob(t *testing.T) {
	cfg := config.UploadConfig{OutputDir: t.TempDir(), TempAudioDir: t.TempDir()}
	generator := minutes.NewGenerator(minutes.RegexSplitter{}, nil)
	service := NewService(jobstore.NewMemoryStore(time.Hour), media.NewConverter(), nil, generator, nil, cfg, zap.NewNop())

	saved := entities.NewProcessingJob("talk.mp3")
	if _, err := service.Get(context.Background(), saved.ID); err == nil {
		t.Error("expected error for unknown job")
	}
}

func TestServiceExportAll(t *testing.T) {
	cfg := config.UploadConfig{OutputDir: t.TempDir(), TempAudioDir: t.TempDir()}
	generator := minutes.NewGenerator(minutes.RegexSplitter{}, nil)
	service := NewService(jobstore.NewMemoryStore(time.Hour), media.NewConverter(), nil, generator, nil, cfg, zap.NewNop())

	result := &entities.MinutesResult{
		Summary:     "The team agreed on the plan.",
		Decisions:   "• We decided to ship.",
		ActionItems: "• John: send the report.",
		Deadlines:   "• Due by Friday.",
	}

	textFile, wordFile, pdfFile, err := service.exportAll("/tmp/standup.mp3", result)
	if err != nil {
		t.Fatalf("exportAll: %v", err)
	}
	if !strings.HasSuffix(textFile, ".txt") || !strings.HasSuffix(wordFile, ".docx") || !strings.HasSuffix(pdfFile, ".pdf") {
		t.Errorf("unexpected export paths: %q %q %q", textFile, wordFile, pdfFile)
	}
}
