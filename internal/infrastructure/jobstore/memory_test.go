package jobstore

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/muhammedmuflih/meeting-minutes-generator/internal/domain/entities"
)

func TestMemoryStoreSaveAndGet(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	job := entities.NewProcessingJob("meeting.wav")
	if err := store.Save(ctx, job); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, found, err := store.Get(ctx, job.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatal("job not found after Save")
	}
	if got.ID != job.ID || got.Filename != "meeting.wav" || got.Status != entities.JobStatusUploaded {
		t.Errorf("round-tripped job mismatch: %+v", got)
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	_, found, err := store.Get(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("expected missing job")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(time.Millisecond)
	ctx := context.Background()

	job := entities.NewProcessingJob("meeting.wav")
	if err := store.Save(ctx, job); err != nil {
		t.Fatalf("Save: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	if _, found, _ := store.Get(ctx, job.ID); found {
		t.Error("expected job expired")
	}
}

func TestMemoryStoreReturnsSnapshot(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	job := entities.NewProcessingJob("meeting.wav")
	if err := store.Save(ctx, job); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Mutating the loaded copy must not change the stored record.
	first, _, _ := store.Get(ctx, job.ID)
	first.SetProgress(90, "Exporting files")

	second, _, _ := store.Get(ctx, job.ID)
	if second.Progress != 10 {
		t.Errorf("stored record mutated through snapshot: progress = %d", second.Progress)
	}
}
