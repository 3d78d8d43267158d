// Package engine implements the scheduling orchestrator that keeps item
// state, the reminder timeline and the notification sink mutually consistent.
package engine

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/recall-sh/recall/internal/model"
	"github.com/recall-sh/recall/internal/schedule"
	"github.com/recall-sh/recall/internal/service"
)

// Engine owns the collection of trackable items and applies the
// add/update/delete/review operations. The in-memory collection is the source
// of truth; the notification sink and the item store are best-effort mirrors.
//
// Mutating operations are serialized by a single mutex: state is committed to
// the collection before any external effect is issued, so a reader never
// observes item state the sink has seen first.
type Engine struct {
	store      service.ItemStore
	sink       service.NotificationSink
	classifier service.Classifier
	resolver   schedule.Resolver
	items      []model.Item
	mu         sync.Mutex
}

// New creates an engine over the default night window.
func New(store service.ItemStore, sink service.NotificationSink, classifier service.Classifier) *Engine {
	return NewWithWindow(store, sink, classifier, schedule.DefaultNightWindow())
}

// NewWithWindow creates an engine with a custom night window.
func NewWithWindow(store service.ItemStore, sink service.NotificationSink, classifier service.Classifier, window schedule.NightWindow) *Engine {
	return &Engine{
		store:      store,
		sink:       sink,
		classifier: classifier,
		resolver:   schedule.NewResolver(window),
	}
}

// Load populates the collection from the item store. Called once at startup.
func (e *Engine) Load(ctx context.Context) error {
	items, err := e.store.Load(ctx)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.items = items
	e.mu.Unlock()

	slog.Info("Loaded items", "count", len(items))
	return nil
}

// Items returns a snapshot of the collection, newest first.
func (e *Engine) Items() []model.Item {
	e.mu.Lock()
	defer e.mu.Unlock()

	snapshot := make([]model.Item, len(e.items))
	copy(snapshot, e.items)
	return snapshot
}

// Item returns the item with the given id, if present.
func (e *Engine) Item(id string) (model.Item, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if i := e.indexOf(id); i >= 0 {
		return e.items[i], true
	}
	return model.Item{}, false
}

// EvaluateConflict checks whether scheduling the given content now would
// place reminders inside the night window. An invalid category triggers
// auto-classification. Returns nil for empty content or when no checked
// reminder conflicts; the caller then commits the raw timeline.
func (e *Engine) EvaluateConflict(content string, category model.Category) *model.NightConflict {
	if strings.TrimSpace(content) == "" {
		return nil
	}
	if !category.IsValid() {
		category = e.classifier.Classify(content)
	}
	return e.resolver.Evaluate(time.Now(), category, 1.0, schedule.SkipLeadingCount)
}

// AddNote creates a simple reminder item. A valid manualCategory sets the
// sticky override flag; otherwise the classifier decides. When a resolved
// conflict is supplied its final schedule is installed instead of the raw
// timeline. Empty content is a silent no-op.
func (e *Engine) AddNote(ctx context.Context, content string, manualCategory model.Category, conflict *model.NightConflict) *model.Item {
	return e.addItem(ctx, model.KindNote, content, "", manualCategory, conflict)
}

// AddFlashcard creates a reviewable item whose first reminder is immediately
// due. Empty front content is a silent no-op.
func (e *Engine) AddFlashcard(ctx context.Context, front, back string, manualCategory model.Category, conflict *model.NightConflict) *model.Item {
	return e.addItem(ctx, model.KindFlashcard, front, back, manualCategory, conflict)
}

func (e *Engine) addItem(ctx context.Context, kind model.ItemKind, content, back string, manualCategory model.Category, conflict *model.NightConflict) *model.Item {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	category := manualCategory
	manual := manualCategory.IsValid()
	if !manual {
		classifyText := content
		if back != "" {
			classifyText = content + " " + back
		}
		category = e.classifier.Classify(classifyText)
	}

	var item model.Item
	if kind == model.KindFlashcard {
		item = model.NewFlashcard(content, back, category, manual)
	} else {
		item = model.NewItem(content, category, manual)
	}

	e.mu.Lock()
	e.items = append([]model.Item{item}, e.items...)
	e.save(ctx)
	e.mu.Unlock()

	var dates []time.Time
	if conflict != nil {
		dates = conflict.FinalSchedule()
	} else {
		dates = schedule.ReminderDates(item.CreatedAt, category)
	}
	if item.Reviewable() && len(dates) > 0 {
		dates[0] = item.CreatedAt
	}

	e.sink.ScheduleNotifications(ctx, item, dates)

	slog.Info("Added item",
		"id", item.ID,
		"kind", item.Kind,
		"category", item.Category,
		"manual_category", item.ManualCategory,
		"reminders", len(dates))
	return &item
}

// UpdateCategory changes an item's category, marks it as a manual override
// and reschedules its reminders with the existing interval multiplier. The
// sink's reminders are cancelled before rescheduling so no duplicate or
// orphaned entries survive. Unknown ids are a silent no-op.
func (e *Engine) UpdateCategory(ctx context.Context, itemID string, newCategory model.Category) {
	if !newCategory.IsValid() {
		return
	}

	e.mu.Lock()
	i := e.indexOf(itemID)
	if i < 0 {
		e.mu.Unlock()
		return
	}

	e.sink.CancelNotifications(ctx, itemID)

	e.items[i].Category = newCategory
	e.items[i].ManualCategory = true
	item := e.items[i]
	e.save(ctx)
	e.mu.Unlock()

	e.sink.ScheduleNotifications(ctx, item, e.ReminderTimeline(item))

	slog.Info("Updated category", "id", itemID, "category", newCategory)
}

// RecordReview records a review outcome for a flashcard and reschedules its
// reminders under the adjusted multiplier. The updated item is committed into
// the collection before any sink call, so concurrent readers never observe a
// multiplier the sink has already acted on. Unknown ids are a silent no-op.
func (e *Engine) RecordReview(ctx context.Context, itemID string, difficulty model.ReviewDifficulty) {
	e.mu.Lock()
	i := e.indexOf(itemID)
	if i < 0 || !e.items[i].Reviewable() {
		e.mu.Unlock()
		slog.Warn("Review ignored", "id", itemID)
		return
	}

	e.items[i].Progress.RecordReview(difficulty)
	item := e.items[i]
	e.save(ctx)
	e.mu.Unlock()

	e.sink.CancelNotifications(ctx, itemID)
	e.sink.ScheduleNotifications(ctx, item, e.ReminderTimeline(item))

	slog.Info("Recorded review",
		"id", itemID,
		"difficulty", difficulty,
		"multiplier", item.Progress.CurrentIntervalMultiplier)
}

// DeleteItems removes the matching items, cancelling each item's reminders
// before dropping it from the collection. Unknown ids are ignored and issue
// no sink calls; deleting an already-absent id is idempotent.
func (e *Engine) DeleteItems(ctx context.Context, ids []string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	removed := 0
	for _, id := range ids {
		i := e.indexOf(id)
		if i < 0 {
			continue
		}
		e.sink.CancelNotifications(ctx, id)
		e.items = append(e.items[:i], e.items[i+1:]...)
		removed++
	}

	if removed > 0 {
		e.save(ctx)
		slog.Info("Deleted items", "requested", len(ids), "removed", removed)
	}
}

// ReminderTimeline returns the item's full reminder timeline under its
// current interval multiplier. An unreviewed flashcard has its first reminder
// pinned to the creation time so it is immediately due.
func (e *Engine) ReminderTimeline(item model.Item) []time.Time {
	dates := schedule.AdjustedReminderDates(item.CreatedAt, item.Category, item.Progress.CurrentIntervalMultiplier)
	if item.Reviewable() && item.Progress.TotalReviews == 0 && len(dates) > 0 {
		dates[0] = item.CreatedAt
	}
	return dates
}

// NextUpcoming returns the item's next reminder strictly after now, if any.
func (e *Engine) NextUpcoming(item model.Item) (time.Time, bool) {
	now := time.Now()
	for _, date := range e.ReminderTimeline(item) {
		if date.After(now) {
			return date, true
		}
	}
	return time.Time{}, false
}

// CancelAll removes every pending alert from the sink.
func (e *Engine) CancelAll(ctx context.Context) {
	e.sink.CancelAll(ctx)
}

// PendingNotifications lists the sink's pending alerts for diagnostics.
func (e *Engine) PendingNotifications(ctx context.Context) []service.PendingNotification {
	return e.sink.ListPending(ctx)
}

// indexOf returns the position of the item with the given id, or -1.
// Callers must hold e.mu.
func (e *Engine) indexOf(id string) int {
	for i, item := range e.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// save mirrors the collection to the store. Failures are the store's concern:
// they are logged and never retried or rolled back. Callers must hold e.mu.
func (e *Engine) save(ctx context.Context) {
	snapshot := make([]model.Item, len(e.items))
	copy(snapshot, e.items)
	if err := e.store.Save(ctx, snapshot); err != nil {
		slog.Error("Failed to persist items", "error", err, "count", len(snapshot))
	}
}
