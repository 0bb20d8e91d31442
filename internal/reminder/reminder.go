// Package reminder nudges the user to write today's diary once the
// configured hour has passed, at most once per day.
package reminder

import (
	"context"
	"time"

	"go.uber.org/zap"

	"harulog/internal/notify"
)

// HourSource reports the configured reminder hour. Satisfied by
// *prefs.Store.
type HourSource interface {
	ReminderHour() (hour int, ok bool, err error)
}

const reminderMessage = "오늘의 일기를 아직 쓰지 않았어요. 하루를 기록해볼까요? ✏️"

// Worker periodically checks the reminder preference and fires a
// notification through the sink.
type Worker struct {
	hours    HourSource
	sink     notify.Sink
	logger   *zap.Logger
	interval time.Duration
	now      func() time.Time

	lastFired string // date key of the last notification
}

func NewWorker(hours HourSource, sink notify.Sink, logger *zap.Logger) *Worker {
	return &Worker{
		hours:    hours,
		sink:     sink,
		logger:   logger,
		interval: time.Minute,
		now:      time.Now,
	}
}

// Run checks the reminder on every tick until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("Reminder worker started.")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Reminder worker stopped.")
			return
		case <-ticker.C:
			w.tick()
		}
	}
}

func (w *Worker) tick() {
	hour, ok, err := w.hours.ReminderHour()
	if err != nil {
		// Background computation stays silent towards the user.
		w.logger.Error("Failed to read reminder hour", zap.Error(err))
		return
	}
	if !ok {
		return
	}

	now := w.now()
	if now.Hour() < hour {
		return
	}
	today := now.Format("2006-01-02")
	if w.lastFired == today {
		return
	}

	w.sink.Notify(notify.LevelInfo, reminderMessage)
	w.lastFired = today
	w.logger.Info("Reminder fired", zap.Int("hour", hour), zap.String("date", today))
}
