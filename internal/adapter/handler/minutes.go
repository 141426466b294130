package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/muhammedmuflih/meeting-minutes-generator/errors"
	"github.com/muhammedmuflih/meeting-minutes-generator/internal/minutes"
)

// Minutes generates meeting minutes directly from transcript text, without
// the audio pipeline.
type Minutes struct {
	generator *minutes.Generator
	logger    *zap.Logger
}

// NewMinutes creates the minutes handler.
func NewMinutes(generator *minutes.Generator, logger *zap.Logger) *Minutes {
	return &Minutes{generator: generator, logger: logger}
}

type generateMinutesRequest struct {
	Transcript string `json:"transcript" validate:"required"`
}

// Generate runs minutes generation on posted transcript text.
func (h *Minutes) Generate(c echo.Context) error {
	var req generateMinutesRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("request body must be valid JSON"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("transcript is required"))
	}

	result := h.generator.Generate(req.Transcript)
	return HandleSuccess(h.logger, c, http.StatusOK, result)
}
