// Package sink provides notification sink implementations. The local sink
// keeps pending alerts in process memory and delivers them with timers.
package sink

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/recall-sh/recall/internal/model"
	"github.com/recall-sh/recall/internal/service"
)

// pendingAlert is one scheduled reminder waiting to fire.
type pendingAlert struct {
	fireAt time.Time
	body   string
	timer  *time.Timer
}

// LocalSink is an in-process notification sink. Each scheduled timestamp
// becomes one pending alert keyed "itemID-unixSeconds"; delivery logs the
// reminder. Failures never propagate to callers.
type LocalSink struct {
	pending map[string]*pendingAlert
	mu      sync.Mutex
}

// NewLocalSink creates an empty local sink.
func NewLocalSink() *LocalSink {
	return &LocalSink{pending: make(map[string]*pendingAlert)}
}

// ScheduleNotifications registers one pending alert per timestamp. Timestamps
// already in the past fire on the next timer tick.
func (s *LocalSink) ScheduleNotifications(_ context.Context, item model.Item, times []time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, at := range times {
		key := alertKey(item.ID, at)
		if prev, ok := s.pending[key]; ok {
			prev.timer.Stop()
		}

		alert := &pendingAlert{fireAt: at, body: item.Content}
		alert.timer = time.AfterFunc(time.Until(at), func() {
			s.deliver(key)
		})
		s.pending[key] = alert
	}

	slog.Debug("Scheduled notifications", "id", item.ID, "count", len(times))
}

// CancelNotifications removes every pending alert whose key carries the item id.
func (s *LocalSink) CancelNotifications(_ context.Context, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, alert := range s.pending {
		if strings.HasPrefix(key, itemID+"-") {
			alert.timer.Stop()
			delete(s.pending, key)
			removed++
		}
	}

	slog.Debug("Cancelled notifications", "id", itemID, "count", removed)
}

// CancelAll removes every pending alert.
func (s *LocalSink) CancelAll(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, alert := range s.pending {
		alert.timer.Stop()
		delete(s.pending, key)
	}

	slog.Debug("Cancelled all notifications")
}

// ListPending returns the pending alerts sorted by fire time.
func (s *LocalSink) ListPending(_ context.Context) []service.PendingNotification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]service.PendingNotification, 0, len(s.pending))
	for key, alert := range s.pending {
		out = append(out, service.PendingNotification{
			Key:    key,
			Body:   alert.body,
			FireAt: alert.fireAt,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].FireAt.Before(out[j].FireAt) })
	return out
}

func (s *LocalSink) deliver(key string) {
	s.mu.Lock()
	alert, ok := s.pending[key]
	if ok {
		delete(s.pending, key)
	}
	s.mu.Unlock()

	if !ok {
		return
	}
	slog.Info("Time to recall!", "body", alert.body, "key", key)
}

func alertKey(itemID string, at time.Time) string {
	return fmt.Sprintf("%s-%d", itemID, at.Unix())
}

var _ service.NotificationSink = (*LocalSink)(nil)
