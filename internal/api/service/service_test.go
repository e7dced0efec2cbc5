package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"gorm.io/gorm"

	"golang-news-curator/internal/api/config"
	"golang-news-curator/internal/api/repository"
	"golang-news-curator/internal/entity"
	"golang-news-curator/pkg/logger"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "console")
	if err != nil {
		t.Fatalf("failed to build test logger: %v", err)
	}
	return log
}

func newTestServiceConfig() *config.Config {
	cfg := &config.Config{}
	cfg.News.MaxItems = 5
	cfg.Pass.WaitTimeout = 200 * time.Millisecond
	cfg.Pass.PollInterval = 5 * time.Millisecond
	cfg.Scheduler.PollingInterval = 10 * time.Millisecond
	return cfg
}

// fakePublisher records published payloads in memory.
type fakePublisher struct {
	payloads [][]byte
	err      error
}

var _ StreamPublisher = (*fakePublisher)(nil)

func (p *fakePublisher) Publish(_ context.Context, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	buf := make([]byte, len(payload))
	copy(buf, payload)
	p.payloads = append(p.payloads, buf)
	return nil
}

// fakeScheduleRepo keeps schedules in a map keyed by ID.
type fakeScheduleRepo struct {
	schedules map[int64]*entity.QualitySchedule
	nextID    int64
	due       []entity.QualitySchedule
	createErr error
	findErr   error
	updateErr error
	deleteErr error
	deleted   []int64
	updates   int
}

var _ repository.QualityScheduleRepository = (*fakeScheduleRepo)(nil)

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: make(map[int64]*entity.QualitySchedule)}
}

func (r *fakeScheduleRepo) Create(_ context.Context, schedule *entity.QualitySchedule) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	schedule.ID = r.nextID
	schedule.CreatedAt = time.Now()
	schedule.UpdatedAt = schedule.CreatedAt
	cp := *schedule
	r.schedules[schedule.ID] = &cp
	return nil
}

func (r *fakeScheduleRepo) FindByID(_ context.Context, id int64) (*entity.QualitySchedule, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	schedule, ok := r.schedules[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *schedule
	return &cp, nil
}

func (r *fakeScheduleRepo) FindAll(_ context.Context) ([]entity.QualitySchedule, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []entity.QualitySchedule
	for _, schedule := range r.schedules {
		out = append(out, *schedule)
	}
	return out, nil
}

func (r *fakeScheduleRepo) Update(_ context.Context, schedule *entity.QualitySchedule) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updates++
	cp := *schedule
	r.schedules[schedule.ID] = &cp
	return nil
}

func (r *fakeScheduleRepo) Delete(_ context.Context, id int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.schedules, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeScheduleRepo) FindDue(_ context.Context) ([]entity.QualitySchedule, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.due, nil
}

// fakePassHistoryRepo keeps pass history rows in a map keyed by ID.
// completeAfter flips a running row to completed once FindByID has been
// called that many times, standing in for the quality service finishing.
type fakePassHistoryRepo struct {
	histories     map[int64]*entity.QualityPassHistory
	nextID        int64
	createErr     error
	findErr       error
	updateErr     error
	findCalls     int
	completeAfter int
	updated       []entity.QualityPassHistory
}

var _ repository.QualityPassHistoryRepository = (*fakePassHistoryRepo)(nil)

func newFakePassHistoryRepo() *fakePassHistoryRepo {
	return &fakePassHistoryRepo{histories: make(map[int64]*entity.QualityPassHistory)}
}

func (r *fakePassHistoryRepo) Create(_ context.Context, history *entity.QualityPassHistory) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	history.ID = r.nextID
	cp := *history
	r.histories[history.ID] = &cp
	return nil
}

func (r *fakePassHistoryRepo) FindByID(_ context.Context, id int64) (*entity.QualityPassHistory, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	history, ok := r.histories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	r.findCalls++
	if r.completeAfter > 0 && r.findCalls >= r.completeAfter && history.Status == entity.QualityPassStatusRunning {
		history.Status = entity.QualityPassStatusCompleted
		history.NewsProcessed = 3
		history.CompletedAt = sql.NullTime{Time: history.StartedAt.Add(42 * time.Millisecond), Valid: true}
	}
	cp := *history
	return &cp, nil
}

func (r *fakePassHistoryRepo) FindAll(_ context.Context) ([]entity.QualityPassHistory, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []entity.QualityPassHistory
	for _, history := range r.histories {
		out = append(out, *history)
	}
	return out, nil
}

func (r *fakePassHistoryRepo) Update(_ context.Context, history *entity.QualityPassHistory) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	cp := *history
	r.histories[history.ID] = &cp
	r.updated = append(r.updated, cp)
	return nil
}
