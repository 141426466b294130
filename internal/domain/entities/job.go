package entities

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the lifecycle state of a processing job.
type JobStatus string

const (
	JobStatusUploaded   JobStatus = "uploaded"   // File stored, waiting for the pipeline
	JobStatusProcessing JobStatus = "processing" // Pipeline running
	JobStatusCompleted  JobStatus = "completed"  // Minutes generated and exported
	JobStatusError      JobStatus = "error"      // Pipeline failed
)

// ProcessingJob tracks one uploaded recording through the pipeline. Jobs are
// ephemeral: the store expires them, nothing is persisted beyond that.
type ProcessingJob struct {
	ID       uuid.UUID `json:"id"`
	Filename string    `json:"filename"`
	Status   JobStatus `json:"status"`
	Progress int       `json:"progress"`
	Step     string    `json:"step"`
	Message  string    `json:"message,omitempty"`

	Results *JobResults `json:"results,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JobResults bundles everything a completed job produced.
type JobResults struct {
	Minutes        MinutesResult `json:"minutes"`
	FullTranscript string        `json:"full_transcript"`
	TextFile       string        `json:"text_file"`
	WordFile       string        `json:"word_file"`
	PDFFile        string        `json:"pdf_file"`
	ProcessingTime string        `json:"processing_time"`
}

// NewProcessingJob creates a job in the uploaded state.
func NewProcessingJob(filename string) *ProcessingJob {
	now := time.Now()
	return &ProcessingJob{
		ID:        uuid.New(),
		Filename:  filename,
		Status:    JobStatusUploaded,
		Progress:  10,
		Step:      "File uploaded",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetProgress moves the job into the processing state at the given step.
func (j *ProcessingJob) SetProgress(progress int, step string) {
	j.Status = JobStatusProcessing
	j.Progress = progress
	j.Step = step
	j.UpdatedAt = time.Now()
}

// MarkAsCompleted records the pipeline output on the job.
func (j *ProcessingJob) MarkAsCompleted(results *JobResults) {
	j.Status = JobStatusCompleted
	j.Progress = 100
	j.Step = "Complete"
	j.Results = results
	j.UpdatedAt = time.Now()
}

// MarkAsFailed records a pipeline failure.
func (j *ProcessingJob) MarkAsFailed(message string) {
	j.Status = JobStatusError
	j.Progress = 0
	j.Step = "Error"
	j.Message = message
	j.UpdatedAt = time.Now()
}

// IsDone reports whether the job reached a terminal state.
func (j *ProcessingJob) IsDone() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusError
}
