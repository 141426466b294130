package jobcontext

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type contextKey string

var (
	keyJobID        contextKey = "job_id"
	keyJobStartTime contextKey = "job_start_time"
)

// WithJob attaches job metadata to a context and bounds the pipeline run with
// a timeout so a stuck external tool cannot hang a worker forever.
func WithJob(parent context.Context, jobID uuid.UUID, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	ctx = context.WithValue(ctx, keyJobID, jobID)
	ctx = context.WithValue(ctx, keyJobStartTime, time.Now())
	return ctx, cancel
}

// JobID extracts the job ID from a context.
func JobID(ctx context.Context) (uuid.UUID, bool) {
	jobID, ok := ctx.Value(keyJobID).(uuid.UUID)
	return jobID, ok
}

// JobStartTime extracts the job start time from a context.
func JobStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyJobStartTime).(time.Time)
	return startTime, ok
}

// IsRetryableError reports whether an error should trigger a retry:
// network failures, timeouts, rate limits and server-side errors.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())

	if strings.Contains(errStr, "context deadline exceeded") ||
		strings.Contains(errStr, "context canceled") {
		return true
	}

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "network unreachable") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "i/o timeout") {
		return true
	}

	if strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "too many requests") ||
		strings.Contains(errStr, "429") {
		return true
	}

	if strings.Contains(errStr, "status 5") ||
		strings.Contains(errStr, "internal server error") ||
		strings.Contains(errStr, "service unavailable") ||
		strings.Contains(errStr, "bad gateway") {
		return true
	}

	if strings.Contains(errStr, "temporary failure") ||
		strings.Contains(errStr, "try again") {
		return true
	}

	return false
}

// CalculateBackoff calculates exponential backoff duration, capped at 60s.
func CalculateBackoff(attempt int, baseDelay time.Duration) time.Duration {
	if attempt < 0 {
		attempt = 0
	}

	backoff := time.Duration(1<<uint(attempt)) * baseDelay

	maxBackoff := 60 * time.Second
	if backoff > maxBackoff {
		backoff = maxBackoff
	}

	return backoff
}
