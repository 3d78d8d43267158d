// Package service defines the interfaces for the engine's external collaborators.
package service

import (
	"context"
	"time"

	"github.com/recall-sh/recall/internal/model"
)

// PendingNotification describes one pending alert held by a notification sink,
// exposed for diagnostics.
type PendingNotification struct {
	FireAt time.Time
	Key    string
	Body   string
}

// NotificationSink delivers and cancels reminder alerts. All calls are
// fire-and-forget from the engine's point of view: the sink reports its own
// failures and the engine never blocks on, retries, or rolls back for them.
// Each scheduled timestamp becomes one independently identified pending alert
// keyed by (itemID, timestamp).
type NotificationSink interface {
	ScheduleNotifications(ctx context.Context, item model.Item, times []time.Time)
	CancelNotifications(ctx context.Context, itemID string)
	CancelAll(ctx context.Context)
	ListPending(ctx context.Context) []PendingNotification
}

// ItemStore persists the item collection. Save has whole-collection replace
// semantics, not incremental updates; the engine's in-memory collection is the
// source of truth and the store is a best-effort mirror.
type ItemStore interface {
	Load(ctx context.Context) ([]model.Item, error)
	Save(ctx context.Context, items []model.Item) error
	Close() error
}

// Classifier maps free text to a difficulty category. It is total: an
// implementation that cannot classify must fall back to a default category
// rather than signal an error.
type Classifier interface {
	Classify(text string) model.Category
}
