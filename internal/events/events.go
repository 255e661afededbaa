// Package events announces job board changes to other services.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/redis/go-redis/v9"
)

// ChannelJobCreated is both the Redis channel and the event type of a
// newly inserted job.
const ChannelJobCreated = "EVENT_JOB_CREATED"

// Publisher is notified after a job row is committed.
type Publisher interface {
	JobCreated(ctx context.Context, job models.Job) error
}

// JobCreatedEvent is the JSON payload published on ChannelJobCreated.
type JobCreatedEvent struct {
	Type      string    `json:"type"`
	JobID     string    `json:"jobId"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewJobCreatedEvent(job models.Job) JobCreatedEvent {
	ev := JobCreatedEvent{
		Type:      ChannelJobCreated,
		JobID:     job.ID,
		CreatedAt: job.CreatedAt,
	}
	if job.Title != nil {
		ev.Title = *job.Title
	}
	return ev
}

// redisClient is the subset of *redis.Client used for publishing.
type redisClient interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

type RedisPublisher struct {
	rdb redisClient
}

func NewRedisPublisher(rdb redisClient) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

func (p *RedisPublisher) JobCreated(ctx context.Context, job models.Job) error {
	payload, err := json.Marshal(NewJobCreatedEvent(job))
	if err != nil {
		return fmt.Errorf("encoding %s: %w", ChannelJobCreated, err)
	}
	if err := p.rdb.Publish(ctx, ChannelJobCreated, payload).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", ChannelJobCreated, err)
	}
	return nil
}

// NopPublisher drops every event. Used when REDIS_URL is unset.
type NopPublisher struct{}

func (NopPublisher) JobCreated(context.Context, models.Job) error { return nil }

// NewRedisClient creates and verifies a Redis client connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}
