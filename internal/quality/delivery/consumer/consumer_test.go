package consumer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-news-curator/internal/entity"
	"golang-news-curator/internal/quality/config"
	"golang-news-curator/internal/quality/dto"
	"golang-news-curator/internal/quality/service"
	"golang-news-curator/pkg/logger"
)

type fakeQualityService struct {
	calls atomic.Int32
}

var _ service.QualityService = (*fakeQualityService)(nil)

func (f *fakeQualityService) RunPass(context.Context, entity.QualityTable, int, bool) (*dto.QualityPassResult, error) {
	return &dto.QualityPassResult{}, nil
}

func (f *fakeQualityService) ProcessTask(context.Context) {
	f.calls.Add(1)
	time.Sleep(time.Millisecond)
}

func newTestConsumer(t *testing.T, svc service.QualityService) *RedisConsumer {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	return NewRedisConsumer(&config.Config{}, svc, log)
}

func TestConsumerProcessesUntilStopped(t *testing.T) {
	svc := &fakeQualityService{}
	c := newTestConsumer(t, svc)

	c.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	c.Stop()

	assert.GreaterOrEqual(t, svc.calls.Load(), int32(1))
}

func TestConsumerStopsOnContextCancellation(t *testing.T) {
	svc := &fakeQualityService{}
	c := newTestConsumer(t, svc)
	ctx, cancel := context.WithCancel(context.Background())

	c.Start(ctx)
	time.Sleep(10 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		c.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop after context cancellation")
	}
}
