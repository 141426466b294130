// Package jobstore tracks processing jobs while they run and for a bounded
// time afterwards. Entries expire; nothing the pipeline extracts is persisted
// beyond that window.
package jobstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/muhammedmuflih/meeting-minutes-generator/internal/domain/entities"
)

// Store is the job status store. Implementations hold JSON-encoded job
// records with a TTL, so readers always see a snapshot and never share
// mutable state with the pipeline.
type Store interface {
	// Save upserts the job record, resetting its TTL.
	Save(ctx context.Context, job *entities.ProcessingJob) error
	// Get returns a snapshot of the job, or found=false when it is unknown
	// or expired.
	Get(ctx context.Context, id uuid.UUID) (*entities.ProcessingJob, bool, error)
}
