package workers

import (
	"context"
	"log"
	"time"

	"dailyReflectAPI/middleware"
	"dailyReflectAPI/services"
)

// ReminderWorker checks once a minute whether any user's reminder time just
// came up and, when they haven't journaled yet today, sends them a push.
type ReminderWorker struct {
	settings      *services.SettingsService
	journal       *services.JournalService
	notifications *services.NotificationService
	stop          chan struct{}
}

func NewReminderWorker(settings *services.SettingsService, journal *services.JournalService, notifications *services.NotificationService) *ReminderWorker {
	return &ReminderWorker{
		settings:      settings,
		journal:       journal,
		notifications: notifications,
		stop:          make(chan struct{}),
	}
}

// Start launches the minute tick loop.
func (w *ReminderWorker) Start() {
	ticker := time.NewTicker(1 * time.Minute)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				w.runOnce(now)
			case <-w.stop:
				return
			}
		}
	}()
}

// Stop ends the loop. Safe to call once.
func (w *ReminderWorker) Stop() {
	close(w.stop)
}

func (w *ReminderWorker) runOnce(now time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Second)
	defer cancel()

	targets, err := w.settings.ReminderTargets(ctx)
	if err != nil {
		log.Printf("ReminderWorker: failed to list targets: %v", err)
		return
	}

	// Reminder times are stored as the app shows them, e.g. "9:00 PM".
	clock := now.Format("3:04 PM")

	for _, t := range targets {
		if t.ReminderTime != clock {
			continue
		}

		due, err := w.journal.ShouldRemind(ctx, t.ClerkID, now)
		if err != nil {
			log.Printf("ReminderWorker: reminder check failed for %s: %v", t.ClerkID, err)
			continue
		}
		if !due {
			continue
		}

		if err := w.notifications.SendReminder(ctx, t.ClerkID); err != nil {
			log.Printf("ReminderWorker: failed to send reminder to %s: %v", t.ClerkID, err)
			continue
		}
		middleware.CountReminderSent()
	}
}
