package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"golang-news-curator/internal/api/dto"
	"golang-news-curator/internal/entity"
)

func newPassService(t *testing.T, historyRepo *fakePassHistoryRepo, publisher *fakePublisher) PassService {
	t.Helper()
	return NewPassService(newTestServiceConfig(), historyRepo, publisher, newTestLogger(t))
}

func TestTriggerPassCreatesRunningHistory(t *testing.T) {
	historyRepo := newFakePassHistoryRepo()
	publisher := &fakePublisher{}
	svc := newPassService(t, historyRepo, publisher)

	resp, finished, err := svc.TriggerPass(context.Background(), &dto.TriggerPassRequest{
		Table: "news",
		Limit: 25,
	})

	require.NoError(t, err)
	assert.False(t, finished)
	assert.Equal(t, entity.QualityPassStatusRunning, resp.Status)
	assert.Equal(t, "news", resp.TargetTable)
	assert.Equal(t, 25, resp.ItemLimit)
	assert.Nil(t, resp.ScheduleID)
	assert.Nil(t, resp.CompletedAt)
	assert.False(t, resp.StartedAt.IsZero())

	require.Len(t, publisher.payloads, 1)
	var published entity.QualityPassHistory
	require.NoError(t, json.Unmarshal(publisher.payloads[0], &published))
	assert.Equal(t, resp.ID, published.ID)
	assert.Equal(t, entity.QualityTableNews, published.TargetTable)
	assert.Equal(t, 25, published.ItemLimit)
}

func TestTriggerPassDefaultsTableToAll(t *testing.T) {
	historyRepo := newFakePassHistoryRepo()
	publisher := &fakePublisher{}
	svc := newPassService(t, historyRepo, publisher)

	resp, _, err := svc.TriggerPass(context.Background(), &dto.TriggerPassRequest{})

	require.NoError(t, err)
	assert.Equal(t, string(entity.QualityTableAll), resp.TargetTable)
}

func TestTriggerPassRejectsUnknownTable(t *testing.T) {
	historyRepo := newFakePassHistoryRepo()
	publisher := &fakePublisher{}
	svc := newPassService(t, historyRepo, publisher)

	resp, _, err := svc.TriggerPass(context.Background(), &dto.TriggerPassRequest{Table: "portfolios"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Nil(t, resp)
	assert.Empty(t, historyRepo.histories)
	assert.Empty(t, publisher.payloads)
}

func TestTriggerPassRejectsNegativeLimit(t *testing.T) {
	historyRepo := newFakePassHistoryRepo()
	publisher := &fakePublisher{}
	svc := newPassService(t, historyRepo, publisher)

	_, _, err := svc.TriggerPass(context.Background(), &dto.TriggerPassRequest{Table: "news", Limit: -1})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestTriggerPassPublishFailureMarksHistoryFailed(t *testing.T) {
	historyRepo := newFakePassHistoryRepo()
	publisher := &fakePublisher{err: errors.New("stream unavailable")}
	svc := newPassService(t, historyRepo, publisher)

	resp, _, err := svc.TriggerPass(context.Background(), &dto.TriggerPassRequest{Table: "news"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to enqueue quality pass")
	assert.Nil(t, resp)

	require.Len(t, historyRepo.updated, 1)
	failed := historyRepo.updated[0]
	assert.Equal(t, entity.QualityPassStatusFailed, failed.Status)
	assert.True(t, failed.ErrorMessage.Valid)
	assert.Contains(t, failed.ErrorMessage.String, "stream unavailable")
	assert.True(t, failed.CompletedAt.Valid)
}

func TestTriggerPassWaitReturnsCompletedPass(t *testing.T) {
	historyRepo := newFakePassHistoryRepo()
	historyRepo.completeAfter = 2
	publisher := &fakePublisher{}
	svc := newPassService(t, historyRepo, publisher)

	resp, finished, err := svc.TriggerPass(context.Background(), &dto.TriggerPassRequest{
		Table: "news",
		Wait:  true,
	})

	require.NoError(t, err)
	assert.True(t, finished)
	assert.Equal(t, entity.QualityPassStatusCompleted, resp.Status)
	assert.Equal(t, 3, resp.NewsProcessed)
	require.NotNil(t, resp.CompletedAt)
	assert.Equal(t, int64(42), resp.Duration)
}

func TestTriggerPassWaitTimesOutWhileRunning(t *testing.T) {
	historyRepo := newFakePassHistoryRepo()
	publisher := &fakePublisher{}
	svc := newPassService(t, historyRepo, publisher)

	resp, finished, err := svc.TriggerPass(context.Background(), &dto.TriggerPassRequest{
		Table: "news",
		Wait:  true,
	})

	require.NoError(t, err, "a wait that times out is not a failure")
	assert.False(t, finished)
	assert.Equal(t, entity.QualityPassStatusRunning, resp.Status)
	assert.Greater(t, historyRepo.findCalls, 1, "the wait should have polled the row")
}

func TestTriggerPassWaitPollErrorPropagates(t *testing.T) {
	historyRepo := newFakePassHistoryRepo()
	publisher := &fakePublisher{}
	svc := newPassService(t, historyRepo, publisher)

	// The row is created, then the store starts failing reads.
	historyRepo.findErr = errors.New("connection reset")

	resp, finished, err := svc.TriggerPass(context.Background(), &dto.TriggerPassRequest{
		Table: "news",
		Wait:  true,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.False(t, finished)
	assert.Nil(t, resp)
}

func TestGetPassByIDMapsHistory(t *testing.T) {
	historyRepo := newFakePassHistoryRepo()
	publisher := &fakePublisher{}
	svc := newPassService(t, historyRepo, publisher)

	started := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	require.NoError(t, historyRepo.Create(context.Background(), &entity.QualityPassHistory{
		ScheduleID:         sql.NullInt64{Int64: 7, Valid: true},
		TargetTable:        entity.QualityTableAll,
		ItemLimit:          10,
		Status:             entity.QualityPassStatusCompleted,
		NewsProcessed:      2,
		SentimentProcessed: 1,
		SignalsProcessed:   4,
		Output:             sql.NullString{String: `{"news_processed":2}`, Valid: true},
		StartedAt:          started,
		CompletedAt:        sql.NullTime{Time: started.Add(1500 * time.Millisecond), Valid: true},
	}))

	resp, err := svc.GetPassByID(context.Background(), 1)

	require.NoError(t, err)
	require.NotNil(t, resp.ScheduleID)
	assert.Equal(t, int64(7), *resp.ScheduleID)
	assert.Equal(t, "all", resp.TargetTable)
	assert.Equal(t, 2, resp.NewsProcessed)
	assert.Equal(t, 1, resp.SentimentProcessed)
	assert.Equal(t, 4, resp.SignalsProcessed)
	assert.Contains(t, resp.Output, "news_processed")
	require.NotNil(t, resp.CompletedAt)
	assert.Equal(t, int64(1500), resp.Duration)
}

func TestGetPassByIDNotFound(t *testing.T) {
	historyRepo := newFakePassHistoryRepo()
	publisher := &fakePublisher{}
	svc := newPassService(t, historyRepo, publisher)

	resp, err := svc.GetPassByID(context.Background(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, resp)
}

func TestGetAllPasses(t *testing.T) {
	historyRepo := newFakePassHistoryRepo()
	publisher := &fakePublisher{}
	svc := newPassService(t, historyRepo, publisher)

	for _, table := range []entity.QualityTable{entity.QualityTableNews, entity.QualityTableSignals} {
		require.NoError(t, historyRepo.Create(context.Background(), &entity.QualityPassHistory{
			TargetTable: table,
			Status:      entity.QualityPassStatusCompleted,
			StartedAt:   time.Now(),
		}))
	}

	passes, err := svc.GetAllPasses(context.Background())

	require.NoError(t, err)
	assert.Len(t, passes, 2)
}
