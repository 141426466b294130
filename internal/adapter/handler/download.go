package handler

import (
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/muhammedmuflih/meeting-minutes-generator/errors"
	"github.com/muhammedmuflih/meeting-minutes-generator/pkg/config"
)

// Download serves exported minutes files from the output directory.
type Download struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewDownload creates the download handler.
func NewDownload(cfg *config.Config, logger *zap.Logger) *Download {
	return &Download{cfg: cfg, logger: logger}
}

// Get streams an export file as an attachment. Only bare file names inside
// the output directory are accepted.
func (h *Download) Get(c echo.Context) error {
	filename := c.Param("filename")
	if filename == "" || filename != filepath.Base(filename) {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid file name"))
	}

	path := filepath.Join(h.cfg.Upload.OutputDir, filename)
	if _, err := os.Stat(path); err != nil {
		return HandleError(h.logger, c, errors.ErrNotFound("export file"))
	}

	h.logger.Info("📦 Serving export file", zap.String("filename", filename))
	return c.Attachment(path, filename)
}
