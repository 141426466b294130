package jobstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/muhammedmuflih/meeting-minutes-generator/internal/domain/entities"
	"github.com/muhammedmuflih/meeting-minutes-generator/pkg/config"
)

// RedisStore keeps job records in Redis so multiple instances can share job
// state. Records carry the same TTL the memory driver uses.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(cfg *config.Config, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

// Save upserts the job record, resetting its TTL.
func (rs *RedisStore) Save(ctx context.Context, job *entities.ProcessingJob) error {
	value, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return rs.client.Set(ctx, jobKey(job.ID), value, rs.ttl).Err()
}

// Get returns a snapshot of the job by ID.
func (rs *RedisStore) Get(ctx context.Context, id uuid.UUID) (*entities.ProcessingJob, bool, error) {
	value, err := rs.client.Get(ctx, jobKey(id)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var job entities.ProcessingJob
	if err := json.Unmarshal(value, &job); err != nil {
		return nil, false, err
	}
	return &job, true, nil
}

// Close releases the Redis connection.
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}

func jobKey(id uuid.UUID) string {
	return "minutes:job:" + id.String()
}
