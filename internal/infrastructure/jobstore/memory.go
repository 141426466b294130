package jobstore

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/muhammedmuflih/meeting-minutes-generator/internal/domain/entities"
)

// MemoryStore is a simple in-memory job store with expiration. It is the
// default driver and mirrors a single-node deployment.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*memoryItem
	ttl   time.Duration
}

type memoryItem struct {
	value      []byte
	expireTime time.Time
}

// NewMemoryStore creates a new in-memory store with the given record TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	store := &MemoryStore{
		items: make(map[uuid.UUID]*memoryItem),
		ttl:   ttl,
	}

	// Cleanup goroutine removes expired items.
	go store.cleanupExpired()

	return store
}

// Save upserts the job record, resetting its TTL.
func (ms *MemoryStore) Save(_ context.Context, job *entities.ProcessingJob) error {
	value, err := json.Marshal(job)
	if err != nil {
		return err
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.items[job.ID] = &memoryItem{
		value:      value,
		expireTime: time.Now().Add(ms.ttl),
	}
	return nil
}

// Get returns a snapshot of the job by ID.
func (ms *MemoryStore) Get(_ context.Context, id uuid.UUID) (*entities.ProcessingJob, bool, error) {
	ms.mu.RLock()
	item, exists := ms.items[id]
	ms.mu.RUnlock()

	if !exists || time.Now().After(item.expireTime) {
		return nil, false, nil
	}

	var job entities.ProcessingJob
	if err := json.Unmarshal(item.value, &job); err != nil {
		return nil, false, err
	}
	return &job, true, nil
}

// cleanupExpired periodically removes expired items.
func (ms *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ms.mu.Lock()
		now := time.Now()
		for id, item := range ms.items {
			if now.After(item.expireTime) {
				delete(ms.items, id)
			}
		}
		ms.mu.Unlock()
	}
}
