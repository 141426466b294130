package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/muhammedmuflih/meeting-minutes-generator/errors"
	"github.com/muhammedmuflih/meeting-minutes-generator/internal/domain/entities"
	"github.com/muhammedmuflih/meeting-minutes-generator/internal/usecase/job"
)

// Job exposes job status and results.
type Job struct {
	service *job.Service
	logger  *zap.Logger
}

// NewJob creates the job handler.
func NewJob(service *job.Service, logger *zap.Logger) *Job {
	return &Job{service: service, logger: logger}
}

type jobStatusResponse struct {
	JobID    string             `json:"job_id"`
	Filename string             `json:"filename"`
	Status   entities.JobStatus `json:"status"`
	Progress int                `json:"progress"`
	Step     string             `json:"step"`
	Message  string             `json:"message,omitempty"`
}

// Status returns the current pipeline progress for a job.
func (h *Job) Status(c echo.Context) error {
	processingJob, err := h.lookupJob(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, jobStatusResponse{
		JobID:    processingJob.ID.String(),
		Filename: processingJob.Filename,
		Status:   processingJob.Status,
		Progress: processingJob.Progress,
		Step:     processingJob.Step,
		Message:  processingJob.Message,
	})
}

// Results returns the generated minutes and export file names for a
// completed job.
func (h *Job) Results(c echo.Context) error {
	processingJob, err := h.lookupJob(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if processingJob.Status != entities.JobStatusCompleted || processingJob.Results == nil {
		return HandleError(h.logger, c, errors.ErrJobNotReady(processingJob.ID.String()))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, processingJob.Results)
}

func (h *Job) lookupJob(c echo.Context) (*entities.ProcessingJob, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, errors.ErrInvalidArgument("job id must be a valid UUID")
	}
	return h.service.Get(c.Request().Context(), id)
}
