package service

import (
	"context"

	"golang-news-curator/pkg/common"

	"github.com/redis/go-redis/v9"
)

// StreamPublisher enqueues quality pass payloads for the quality service.
type StreamPublisher interface {
	Publish(ctx context.Context, payload []byte) error
}

// NewRedisPassPublisher creates a StreamPublisher backed by the quality pass
// execution stream. maxLen caps the stream size; zero disables the cap.
func NewRedisPassPublisher(redisClient *redis.Client, maxLen int64) StreamPublisher {
	return &redisPassPublisher{redisClient: redisClient, maxLen: maxLen}
}

type redisPassPublisher struct {
	redisClient *redis.Client
	maxLen      int64
}

func (p *redisPassPublisher) Publish(ctx context.Context, payload []byte) error {
	return p.redisClient.XAdd(ctx, &redis.XAddArgs{
		Stream: common.RedisStreamQualityPassExecution,
		Values: map[string]interface{}{"payload": payload},
		MaxLen: p.maxLen,
	}).Err()
}
