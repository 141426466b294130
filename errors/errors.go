package errors

import (
	"fmt"
	"net/http"
)

// AppError is the application error type carried from services to handlers.
type AppError struct {
	Raw      error             `json:"-"`
	HTTPCode int               `json:"-"`
	Code     ErrorCode         `json:"code"`
	Message  string            `json:"message"`
	Details  map[string]string `json:"details,omitempty"`
}

// Error implements the error interface.
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is / errors.As.
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error.
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General errors

func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

// Upload errors

func ErrUnsupportedFileType(extension string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_UPLOAD_INVALID_TYPE,
		Message:  "Unsupported audio file type",
	}.WithDetail("extension", extension)
}

func ErrFileTooLarge(maxBytes int64) AppError {
	return AppError{
		HTTPCode: http.StatusRequestEntityTooLarge,
		Code:     ErrorCode_UPLOAD_TOO_LARGE,
		Message:  "Uploaded file exceeds the size limit",
	}.WithDetail("max_bytes", fmt.Sprintf("%d", maxBytes))
}

func ErrUploadFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_UPLOAD_FAILED,
		Message:  "Failed to store uploaded file",
	}
}

// Job errors

func ErrJobNotFound(jobID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_JOB_NOT_FOUND,
		Message:  "Job not found",
	}.WithDetail("job_id", jobID)
}

func ErrJobNotReady(jobID string) AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_JOB_NOT_READY,
		Message:  "Job results are not ready",
	}.WithDetail("job_id", jobID)
}

// Pipeline errors

func ErrConversionFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_CONVERSION_FAILED,
		Message:  "Audio conversion failed",
	}
}

func ErrTranscriptionFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_TRANSCRIPTION_FAILED,
		Message:  "Audio transcription failed",
	}
}

func ErrNoSpeechDetected() AppError {
	return AppError{
		HTTPCode: http.StatusUnprocessableEntity,
		Code:     ErrorCode_NO_SPEECH_DETECTED,
		Message:  "No speech detected in audio",
	}
}

func ErrExportFailed(format string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_EXPORT_FAILED,
		Message:  "Failed to export minutes",
	}.WithDetail("format", format)
}

func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_STORAGE_FAILED,
		Message:  fmt.Sprintf("Storage operation failed: %s", operation),
	}
}
