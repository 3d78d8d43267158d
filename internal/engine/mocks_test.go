package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/recall-sh/recall/internal/model"
	"github.com/recall-sh/recall/internal/service"
)

// recordingSink is a notification sink double that records the order of every
// call it receives.
type recordingSink struct {
	mu        sync.Mutex
	calls     []string
	schedules map[string][]time.Time
}

func newRecordingSink() *recordingSink {
	return &recordingSink{schedules: make(map[string][]time.Time)}
}

func (s *recordingSink) ScheduleNotifications(_ context.Context, item model.Item, times []time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, fmt.Sprintf("schedule:%s", item.ID))
	s.schedules[item.ID] = times
}

func (s *recordingSink) CancelNotifications(_ context.Context, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, fmt.Sprintf("cancel:%s", itemID))
	delete(s.schedules, itemID)
}

func (s *recordingSink) CancelAll(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "cancel-all")
	s.schedules = make(map[string][]time.Time)
}

func (s *recordingSink) ListPending(_ context.Context) []service.PendingNotification {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pending []service.PendingNotification
	for id, times := range s.schedules {
		for _, at := range times {
			pending = append(pending, service.PendingNotification{
				Key:    fmt.Sprintf("%s-%d", id, at.Unix()),
				FireAt: at,
			})
		}
	}
	return pending
}

func (s *recordingSink) callLog() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.calls))
	copy(out, s.calls)
	return out
}

func (s *recordingSink) scheduledTimes(itemID string) []time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.schedules[itemID]
}

// memoryStore is an item store double. failSaves makes every Save return an
// error without recording, to verify the engine treats persistence as
// fire-and-forget.
type memoryStore struct {
	mu        sync.Mutex
	items     []model.Item
	saveCount int
	failSaves bool
}

func (s *memoryStore) Load(_ context.Context) ([]model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *memoryStore) Save(_ context.Context, items []model.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSaves {
		return fmt.Errorf("store unavailable")
	}
	s.items = make([]model.Item, len(items))
	copy(s.items, items)
	s.saveCount++
	return nil
}

func (s *memoryStore) Close() error { return nil }

// fixedClassifier always returns the same category.
type fixedClassifier struct {
	category model.Category
}

func (c fixedClassifier) Classify(string) model.Category { return c.category }
