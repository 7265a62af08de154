// Package reminder posts an "Up Next" notification at the top of every hour
// for the block the user should be working on.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/rahulraj-lab/Focus-flow/internal/constants"
	"github.com/rahulraj-lab/Focus-flow/internal/logger"
	"github.com/rahulraj-lab/Focus-flow/internal/models"
	"github.com/rahulraj-lab/Focus-flow/internal/notifier"
	"github.com/rahulraj-lab/Focus-flow/internal/planner"
	"github.com/rahulraj-lab/Focus-flow/internal/schedule"
)

const title = "Up Next"

type Reminder struct {
	planner *planner.Planner
	sink    notifier.Sink
	now     func() time.Time
	loc     *time.Location
}

type Option func(*Reminder)

func WithClock(now func() time.Time) Option {
	return func(r *Reminder) { r.now = now }
}

func WithLocation(loc *time.Location) Option {
	return func(r *Reminder) { r.loc = loc }
}

// New creates a reminder. sink may be nil, in which case notifications only
// land in the inbox.
func New(p *planner.Planner, sink notifier.Sink, opts ...Option) *Reminder {
	r := &Reminder{planner: p, sink: sink, now: time.Now, loc: time.Local}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Check looks at the hour containing now. When its slot is occupied and not
// done, an "Up Next" notification is logged and forwarded. The returned bool
// reports whether a notification was created.
func (r *Reminder) Check(ctx context.Context, now time.Time) (models.Notification, bool, error) {
	if err := r.planner.Open(now); err != nil {
		return models.Notification{}, false, fmt.Errorf("failed to open %s: %w", now.Format(constants.DateFormat), err)
	}

	block, ok := schedule.RangeAt(r.planner.Merged(), now.Hour())
	if !ok || !block.Occupied() || block.Completed {
		logger.Debug("Nothing due", "hour", now.Hour())
		return models.Notification{}, false, nil
	}

	if err := r.planner.Notify(title, fmt.Sprintf("%s %s", block.Label(), block.Task), models.NotificationInfo); err != nil {
		return models.Notification{}, false, err
	}
	notif := r.planner.Notifications()[0]

	if r.sink != nil {
		if err := r.sink.Deliver(ctx, notif); err != nil {
			// the inbox entry is already saved
			logger.Warn("Failed to forward reminder", "error", err)
		}
	}
	return notif, true, nil
}

// Run schedules Check on the hourly cron spec until ctx is cancelled.
func (r *Reminder) Run(ctx context.Context) error {
	c := cron.New(cron.WithLocation(r.loc))
	if _, err := c.AddFunc(constants.ReminderSpec, func() {
		if _, _, err := r.Check(ctx, r.now().In(r.loc)); err != nil {
			logger.Error("Reminder check failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid reminder schedule %q: %w", constants.ReminderSpec, err)
	}

	c.Start()
	logger.Info("Reminder started", "schedule", constants.ReminderSpec)

	<-ctx.Done()
	<-c.Stop().Done()
	logger.Info("Reminder stopped")
	return nil
}

// NextRun reports when the hourly job fires next after from.
func NextRun(from time.Time) (time.Time, error) {
	sched, err := cron.ParseStandard(constants.ReminderSpec)
	if err != nil {
		return time.Time{}, err
	}
	return sched.Next(from), nil
}
