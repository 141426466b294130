// Package job runs the full processing pipeline for uploaded recordings:
// audio normalization, transcription, minutes generation and document export.
package job

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/muhammedmuflih/meeting-minutes-generator/errors"
	"github.com/muhammedmuflih/meeting-minutes-generator/internal/domain/entities"
	"github.com/muhammedmuflih/meeting-minutes-generator/internal/export"
	"github.com/muhammedmuflih/meeting-minutes-generator/internal/infrastructure/jobstore"
	"github.com/muhammedmuflih/meeting-minutes-generator/internal/infrastructure/media"
	"github.com/muhammedmuflih/meeting-minutes-generator/internal/infrastructure/storage"
	"github.com/muhammedmuflih/meeting-minutes-generator/internal/minutes"
	"github.com/muhammedmuflih/meeting-minutes-generator/pkg/config"
	"github.com/muhammedmuflih/meeting-minutes-generator/pkg/jobcontext"
	"github.com/muhammedmuflih/meeting-minutes-generator/pkg/transcribe"
)

const (
	// maxConcurrentJobs bounds how many pipelines run at once. Whisper and
	// ffmpeg are CPU heavy, so more workers only trade throughput for swap.
	maxConcurrentJobs = 2

	// jobTimeout bounds one full pipeline run.
	jobTimeout = 30 * time.Minute

	// minTranscriptChars is the minimum joined transcript length that counts
	// as actual speech.
	minTranscriptChars = 10
)

// Service orchestrates the recording-to-minutes pipeline.
type Service struct {
	store     jobstore.Store
	converter *media.Converter
	backend   transcribe.Backend
	generator *minutes.Generator

	textExporter *export.TextExporter
	wordExporter *export.WordExporter
	pdfExporter  *export.PDFExporter

	archive *storage.MinIOArchive // nil when archiving is disabled

	uploadCfg config.UploadConfig
	logger    *zap.Logger

	// Semaphore limiting concurrent pipeline runs.
	slots chan struct{}
}

// NewService creates the pipeline service. archive may be nil.
func NewService(
	store jobstore.Store,
	converter *media.Converter,
	backend transcribe.Backend,
	generator *minutes.Generator,
	archive *storage.MinIOArchive,
	uploadCfg config.UploadConfig,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:        store,
		converter:    converter,
		backend:      backend,
		generator:    generator,
		textExporter: export.NewTextExporter(),
		wordExporter: export.NewWordExporter(),
		pdfExporter:  export.NewPDFExporter(),
		archive:      archive,
		uploadCfg:    uploadCfg,
		logger:       logger,
		slots:        make(chan struct{}, maxConcurrentJobs),
	}
}

// Enqueue saves the job and starts processing it in the background.
func (s *Service) Enqueue(job *entities.ProcessingJob, uploadPath string) error {
	if err := s.store.Save(context.Background(), job); err != nil {
		return apperrors.ErrStorageFailed("save job", err)
	}

	go s.process(job.ID, uploadPath)
	return nil
}

// Get returns a job by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*entities.ProcessingJob, error) {
	job, found, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, apperrors.ErrStorageFailed("load job", err)
	}
	if !found {
		return nil, apperrors.ErrJobNotFound(id.String())
	}
	return job, nil
}

// process runs the full pipeline for one job. It owns the uploaded file and
// removes it together with intermediate audio when the run ends.
func (s *Service) process(jobID uuid.UUID, uploadPath string) {
	s.slots <- struct{}{}
	defer func() { <-s.slots }()

	ctx, cancel := jobcontext.WithJob(context.Background(), jobID, jobTimeout)
	defer cancel()

	started := time.Now()
	logger := s.logger.With(zap.String("job_id", jobID.String()))
	logger.Info("🚀 Starting processing pipeline", zap.String("upload", filepath.Base(uploadPath)))

	defer os.Remove(uploadPath)

	var wavPath string
	defer func() {
		if wavPath != "" && wavPath != uploadPath {
			os.Remove(wavPath)
		}
	}()

	fail := func(step string, err error) {
		logger.Error("❌ Pipeline failed", zap.String("step", step), zap.Error(err))
		s.updateJob(jobID, func(job *entities.ProcessingJob) {
			job.MarkAsFailed(err.Error())
		})
	}

	// Step 1: normalize audio.
	s.setProgress(jobID, 20, "Converting audio")
	converted, err := s.converter.ConvertToWAV(ctx, uploadPath, s.uploadCfg.TempAudioDir)
	if err != nil {
		fail("convert", apperrors.ErrConversionFailed(err))
		return
	}
	wavPath = converted

	// Step 2: transcribe, with retries for transient backend failures.
	s.setProgress(jobID, 30, "Transcribing audio")
	segments, err := s.transcribeWithRetry(ctx, wavPath, logger)
	if err != nil {
		fail("transcribe", apperrors.ErrTranscriptionFailed(err))
		return
	}

	fullText := entities.JoinSegments(segments)
	if len(strings.TrimSpace(fullText)) < minTranscriptChars {
		fail("transcribe", apperrors.ErrNoSpeechDetected())
		return
	}

	// Step 3: generate minutes.
	s.setProgress(jobID, 60, "Processing transcript")
	s.setProgress(jobID, 75, "Generating minutes")
	result := s.generator.Generate(fullText)

	// Step 4: export documents.
	s.setProgress(jobID, 90, "Exporting files")
	textFile, wordFile, pdfFile, err := s.exportAll(uploadPath, result)
	if err != nil {
		fail("export", err)
		return
	}

	s.archiveExports(ctx, jobID, logger, textFile, wordFile, pdfFile)

	results := &entities.JobResults{
		Minutes:        *result,
		FullTranscript: fullText,
		TextFile:       filepath.Base(textFile),
		WordFile:       filepath.Base(wordFile),
		PDFFile:        filepath.Base(pdfFile),
		ProcessingTime: time.Since(started).Round(time.Second).String(),
	}
	s.updateJob(jobID, func(job *entities.ProcessingJob) {
		job.MarkAsCompleted(results)
	})

	logger.Info("✅ Pipeline complete",
		zap.Int("segments", len(segments)),
		zap.Duration("elapsed", time.Since(started)),
	)
}

// transcribeWithRetry retries transient backend failures with exponential
// backoff. Non-retryable errors abort immediately.
func (s *Service) transcribeWithRetry(ctx context.Context, wavPath string, logger *zap.Logger) ([]entities.Segment, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 2 * time.Second
	policy.MaxInterval = 30 * time.Second
	policy.MaxElapsedTime = 5 * time.Minute

	var segments []entities.Segment
	operation := func() error {
		var err error
		segments, err = s.backend.Transcribe(ctx, wavPath)
		if err == nil {
			return nil
		}
		if jobcontext.IsRetryableError(err) {
			logger.Warn("⚠️ Transcription failed, retrying",
				zap.String("backend", s.backend.Name()),
				zap.Error(err),
			)
			return err
		}
		return backoff.Permanent(err)
	}

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return nil, err
	}
	return segments, nil
}

// exportAll writes the three download formats into the output directory using
// a timestamped base name derived from the upload.
func (s *Service) exportAll(uploadPath string, result *entities.MinutesResult) (textFile, wordFile, pdfFile string, err error) {
	if err = os.MkdirAll(s.uploadCfg.OutputDir, 0o755); err != nil {
		return "", "", "", fmt.Errorf("create output dir: %w", err)
	}

	base := exportBaseName(uploadPath)
	textFile, err = s.textExporter.Export(result, filepath.Join(s.uploadCfg.OutputDir, base+".txt"))
	if err != nil {
		return "", "", "", apperrors.ErrExportFailed("text", err)
	}
	wordFile, err = s.wordExporter.Export(result, filepath.Join(s.uploadCfg.OutputDir, base+".docx"))
	if err != nil {
		return "", "", "", apperrors.ErrExportFailed("word", err)
	}
	pdfFile, err = s.pdfExporter.Export(result, filepath.Join(s.uploadCfg.OutputDir, base+".pdf"))
	if err != nil {
		return "", "", "", apperrors.ErrExportFailed("pdf", err)
	}
	return textFile, wordFile, pdfFile, nil
}

// archiveExports pushes finished documents to object storage when configured.
// Archive failures are logged and otherwise ignored.
func (s *Service) archiveExports(ctx context.Context, jobID uuid.UUID, logger *zap.Logger, files ...string) {
	if s.archive == nil {
		return
	}
	for _, f := range files {
		if _, err := s.archive.ArchiveFile(ctx, jobID.String(), f); err != nil {
			logger.Warn("⚠️ Failed to archive export", zap.String("file", filepath.Base(f)), zap.Error(err))
		}
	}
}

// setProgress persists a progress update, logging but not failing on store
// errors so a flaky store cannot kill a running pipeline.
func (s *Service) setProgress(jobID uuid.UUID, progress int, step string) {
	s.updateJob(jobID, func(job *entities.ProcessingJob) {
		job.SetProgress(progress, step)
	})
}

func (s *Service) updateJob(jobID uuid.UUID, mutate func(*entities.ProcessingJob)) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	job, found, err := s.store.Get(ctx, jobID)
	if err != nil || !found {
		s.logger.Warn("⚠️ Could not load job for update", zap.String("job_id", jobID.String()), zap.Error(err))
		return
	}
	mutate(job)
	if err := s.store.Save(ctx, job); err != nil {
		s.logger.Warn("⚠️ Could not save job update", zap.String("job_id", jobID.String()), zap.Error(err))
	}
}

// exportBaseName builds a filesystem-safe, timestamped base name from the
// uploaded filename.
func exportBaseName(uploadPath string) string {
	base := strings.TrimSuffix(filepath.Base(uploadPath), filepath.Ext(uploadPath))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	safe := b.String()
	if safe == "" {
		safe = "meeting"
	}
	return time.Now().Format("20060102_150405") + "_" + safe + "_minutes"
}
