package adapters

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finanzas-personales/backend/internal/application/adapter"
)

const (
	reminderKeyPrefix = "notified_"
	// reminderMarkerTTL bounds marker lifetime so a crashed session cannot
	// suppress reminders forever.
	reminderMarkerTTL = 24 * time.Hour
)

// redisReminderTracker implements the adapter.ReminderTracker interface on
// redis. Markers are session-scoped with a TTL safety net.
type redisReminderTracker struct {
	client *redis.Client
}

// NewRedisReminderTracker creates a new redis-backed reminder tracker.
func NewRedisReminderTracker(client *redis.Client) adapter.ReminderTracker {
	return &redisReminderTracker{
		client: client,
	}
}

// MarkNotified marks a payment as notified. SETNX makes the first caller
// the owner of the reminder.
func (t *redisReminderTracker) MarkNotified(ctx context.Context, paymentID string) (bool, error) {
	return t.client.SetNX(ctx, reminderKeyPrefix+paymentID, "1", reminderMarkerTTL).Result()
}

// Reset clears all reminder markers.
func (t *redisReminderTracker) Reset(ctx context.Context) error {
	iter := t.client.Scan(ctx, 0, reminderKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := t.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// memoryReminderTracker implements the adapter.ReminderTracker interface
// in-process, used when no redis address is configured.
type memoryReminderTracker struct {
	mu       sync.Mutex
	notified map[string]bool
}

// NewMemoryReminderTracker creates a new in-memory reminder tracker.
func NewMemoryReminderTracker() adapter.ReminderTracker {
	return &memoryReminderTracker{
		notified: make(map[string]bool),
	}
}

// MarkNotified marks a payment as notified for this process lifetime.
func (t *memoryReminderTracker) MarkNotified(ctx context.Context, paymentID string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.notified[paymentID] {
		return false, nil
	}
	t.notified[paymentID] = true
	return true, nil
}

// Reset clears all markers.
func (t *memoryReminderTracker) Reset(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.notified = make(map[string]bool)
	return nil
}
