package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/muhammedmuflih/meeting-minutes-generator/internal/domain/entities"
	"github.com/muhammedmuflih/meeting-minutes-generator/pkg/config"
)

// WhisperBackend runs the local whisper CLI and parses its JSON output.
// The pretrained model is loaded and cached by the CLI itself on first use.
type WhisperBackend struct {
	binary    string
	modelSize string
	language  string
	logger    *zap.Logger
}

// NewWhisperBackend creates a local whisper backend from config.
func NewWhisperBackend(cfg *config.WhisperConfig, logger *zap.Logger) *WhisperBackend {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WhisperBackend{
		binary:    cfg.Binary,
		modelSize: cfg.ModelSize,
		language:  cfg.Language,
		logger:    logger,
	}
}

// whisperOutput is the JSON document the whisper CLI writes.
type whisperOutput struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

// Transcribe runs whisper against the audio file and returns its segments.
func (w *WhisperBackend) Transcribe(ctx context.Context, audioPath string) ([]entities.Segment, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return nil, fmt.Errorf("audio file not found: %w", err)
	}

	outputDir, err := os.MkdirTemp("", "whisper-out-")
	if err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	defer os.RemoveAll(outputDir)

	w.logger.Info("🎙️ Running local whisper",
		zap.String("model", w.modelSize),
		zap.String("language", w.language),
		zap.String("audio", filepath.Base(audioPath)),
	)

	cmd := exec.CommandContext(ctx, w.binary,
		audioPath,
		"--model", w.modelSize,
		"--language", w.language,
		"--output_format", "json",
		"--output_dir", outputDir,
		"--fp16", "False",
		"--temperature", "0",
		"--verbose", "False",
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("whisper failed: %s", strings.TrimSpace(string(out)))
	}

	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	raw, err := os.ReadFile(filepath.Join(outputDir, base+".json"))
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}

	return parseWhisperOutput(raw)
}

// Name identifies the backend.
func (w *WhisperBackend) Name() string { return "whisper-local" }

// parseWhisperOutput maps the whisper JSON document to segments, falling back
// to a single full-text segment when no segment timing is present.
func parseWhisperOutput(raw []byte) ([]entities.Segment, error) {
	var parsed whisperOutput
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse whisper output: %w", err)
	}

	var segments []entities.Segment
	for _, s := range parsed.Segments {
		if text := strings.TrimSpace(s.Text); text != "" {
			segments = append(segments, entities.Segment{Start: s.Start, End: s.End, Text: text})
		}
	}

	if len(segments) == 0 {
		if text := strings.TrimSpace(parsed.Text); text != "" {
			segments = append(segments, entities.Segment{Start: 0, End: 0, Text: text})
		}
	}

	return segments, nil
}
