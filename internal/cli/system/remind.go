package system

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rahulraj-lab/Focus-flow/internal/cli"
	"github.com/rahulraj-lab/Focus-flow/internal/planner"
	"github.com/rahulraj-lab/Focus-flow/internal/reminder"
)

type RemindCmd struct {
	Once bool `help:"Check the current hour once and exit instead of running hourly."`
}

func (c *RemindCmd) Run(ctx *cli.Context) error {
	clock := time.Now
	if ctx.Now != nil {
		clock = ctx.Now
	}
	r := reminder.New(planner.New(ctx.Store), ctx.Sink,
		reminder.WithClock(clock),
		reminder.WithLocation(ctx.Config.Location()),
	)

	if c.Once {
		now := clock().In(ctx.Config.Location())
		notif, ok, err := r.Check(context.Background(), now)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("Nothing due at %02d:00.\n", now.Hour())
			return nil
		}
		fmt.Printf("🔔 %s: %s\n", notif.Title, notif.Message)
		return nil
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if next, err := reminder.NextRun(clock()); err == nil {
		fmt.Printf("Reminders running; next check at %s. Press Ctrl+C to stop.\n", next.Format("15:04"))
	}
	return r.Run(sigCtx)
}
