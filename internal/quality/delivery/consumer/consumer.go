package consumer

import (
	"context"
	"sync"

	"golang-news-curator/internal/quality/config"
	"golang-news-curator/internal/quality/service"
	"golang-news-curator/pkg/common"
	"golang-news-curator/pkg/logger"
	"golang-news-curator/pkg/utils"
)

// RedisConsumer drains quality pass requests from the Redis stream and hands
// them to the quality service one at a time.
type RedisConsumer struct {
	cfg            *config.Config
	qualityService service.QualityService
	logger         *logger.Logger
	stopChan       chan struct{}
	wg             sync.WaitGroup
}

// NewRedisConsumer creates a new RedisConsumer.
func NewRedisConsumer(cfg *config.Config, qualityService service.QualityService, log *logger.Logger) *RedisConsumer {
	return &RedisConsumer{
		cfg:            cfg,
		qualityService: qualityService,
		logger:         log,
		stopChan:       make(chan struct{}),
	}
}

// Start launches the stream handler.
func (c *RedisConsumer) Start(ctx context.Context) {
	c.registerStreamHandler(ctx, c.qualityService.ProcessTask, common.RedisStreamQualityPassExecution)
}

// registerStreamHandler runs fn in a loop until the context is canceled or
// the consumer is stopped. fn blocks at most a couple of seconds on an empty
// stream, so shutdown stays responsive.
func (c *RedisConsumer) registerStreamHandler(ctx context.Context, fn func(ctx context.Context), streamName string) {
	c.logger.Info("Starting stream handler", logger.StringField("stream", streamName))
	c.wg.Add(1)
	utils.GoSafe(func() {
		defer c.wg.Done()
		for {
			select {
			case <-ctx.Done():
				c.logger.Info("Stream handler stopped due to context cancellation", logger.StringField("stream", streamName))
				return
			case <-c.stopChan:
				c.logger.Info("Stream handler stopped", logger.StringField("stream", streamName))
				return
			default:
				fn(ctx)
			}
		}
	})
}

// Stop signals the handler to exit and waits for it to finish.
func (c *RedisConsumer) Stop() {
	close(c.stopChan)
	c.wg.Wait()
	c.logger.Info("Redis consumer stopped")
}
