package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/recall-sh/recall/internal/classification"
	"github.com/recall-sh/recall/internal/config"
	"github.com/recall-sh/recall/internal/engine"
	"github.com/recall-sh/recall/internal/model"
	"github.com/recall-sh/recall/internal/schedule"
	"github.com/recall-sh/recall/internal/service"
	"github.com/recall-sh/recall/internal/sink"
	"github.com/recall-sh/recall/internal/storage"
)

// initEngine wires the storage, sink and classifier into a loaded engine.
// The returned sink is the same instance the engine schedules into, exposed
// for commands that need to resync or inspect it.
func initEngine(ctx context.Context) (*engine.Engine, service.NotificationSink, error) {
	dbPath := config.ExpandPath(viper.GetString("database.path"))
	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open item store: %w", err)
	}

	notifier := sink.NewLocalSink()
	window := nightWindowFromConfig()

	eng := engine.NewWithWindow(store, notifier, classification.NewAnalyzer(), window)
	if err := eng.Load(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to load items: %w", err)
	}

	return eng, notifier, nil
}

// findItem resolves an item by full id or unique id prefix.
func findItem(eng *engine.Engine, id string) (model.Item, bool) {
	if item, ok := eng.Item(id); ok {
		return item, true
	}

	var (
		match model.Item
		found int
	)
	for _, item := range eng.Items() {
		if strings.HasPrefix(item.ID, id) {
			match = item
			found++
		}
	}
	if found == 1 {
		return match, true
	}
	return model.Item{}, false
}

func nightWindowFromConfig() schedule.NightWindow {
	return schedule.NewNightWindow(
		viper.GetInt("night.start_hour"),
		viper.GetInt("night.wake_hour"),
		time.Local,
	)
}

// resyncSink rebuilds the in-process sink's pending alerts from the item
// collection. The sink holds no durable state, so each process re-mirrors the
// source of truth before inspecting or delivering reminders.
func resyncSink(ctx context.Context, eng *engine.Engine, notifier service.NotificationSink) {
	now := time.Now()
	for _, item := range eng.Items() {
		var upcoming []time.Time
		for _, date := range eng.ReminderTimeline(item) {
			if date.After(now) {
				upcoming = append(upcoming, date)
			}
		}
		if len(upcoming) > 0 {
			notifier.ScheduleNotifications(ctx, item, upcoming)
		}
	}
}
