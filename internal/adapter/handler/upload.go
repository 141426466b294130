package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/muhammedmuflih/meeting-minutes-generator/errors"
	"github.com/muhammedmuflih/meeting-minutes-generator/internal/domain/entities"
	"github.com/muhammedmuflih/meeting-minutes-generator/internal/usecase/job"
	"github.com/muhammedmuflih/meeting-minutes-generator/pkg/config"
)

// Upload handles audio file uploads and job creation.
type Upload struct {
	service *job.Service
	cfg     *config.Config
	logger  *zap.Logger
}

// NewUpload creates the upload handler.
func NewUpload(service *job.Service, cfg *config.Config, logger *zap.Logger) *Upload {
	return &Upload{service: service, cfg: cfg, logger: logger}
}

type uploadResponse struct {
	JobID    string `json:"job_id"`
	Filename string `json:"filename"`
	Status   string `json:"status"`
}

// Create accepts a multipart audio upload and enqueues a processing job.
func (h *Upload) Create(c echo.Context) error {
	fileHeader, err := c.FormFile("audio_file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("audio_file form field is required"))
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileHeader.Filename)), ".")
	if !h.cfg.AllowedExtensions()[ext] {
		return HandleError(h.logger, c, errors.ErrUnsupportedFileType(ext))
	}
	if fileHeader.Size > h.cfg.Upload.MaxBytes {
		return HandleError(h.logger, c, errors.ErrFileTooLarge(h.cfg.Upload.MaxBytes))
	}

	processingJob := entities.NewProcessingJob(fileHeader.Filename)

	uploadPath, err := h.saveUpload(fileHeader.Filename, processingJob.ID.String(), fileHeader)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrUploadFailed(err))
	}

	if err := h.service.Enqueue(processingJob, uploadPath); err != nil {
		os.Remove(uploadPath)
		return HandleError(h.logger, c, err)
	}

	h.logger.Info("📥 Upload accepted",
		zap.String("job_id", processingJob.ID.String()),
		zap.String("filename", fileHeader.Filename),
		zap.Int64("bytes", fileHeader.Size),
	)

	return HandleSuccess(h.logger, c, http.StatusAccepted, uploadResponse{
		JobID:    processingJob.ID.String(),
		Filename: processingJob.Filename,
		Status:   string(processingJob.Status),
	})
}

// saveUpload stores the uploaded file under the upload directory with the job
// ID as prefix so concurrent uploads of the same filename cannot collide.
func (h *Upload) saveUpload(filename, jobID string, fileHeader *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(h.cfg.Upload.UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dstPath := filepath.Join(h.cfg.Upload.UploadDir, jobID+"_"+filepath.Base(filename))
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("store upload: %w", err)
	}
	return dstPath, nil
}
