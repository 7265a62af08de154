// Package alerts holds the inbox commands for the notification log.
package alerts

import (
	"fmt"

	"github.com/rahulraj-lab/Focus-flow/internal/cli"
	"github.com/rahulraj-lab/Focus-flow/internal/inbox"
	"github.com/rahulraj-lab/Focus-flow/internal/models"
)

var kindIcons = map[models.NotificationType]string{
	models.NotificationInfo:    "ℹ",
	models.NotificationSuccess: "✓",
	models.NotificationWarning: "⚠",
}

type ListCmd struct {
	Unread bool `help:"Show only unread notifications." short:"u"`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Planner("")
	if err != nil {
		return err
	}

	log := p.Notifications()
	fmt.Printf("Inbox (%d unread of %d):\n", inbox.Unread(log), len(log))
	shown := 0
	for _, n := range log {
		if c.Unread && n.Read {
			continue
		}
		marker := " "
		if !n.Read {
			marker = "•"
		}
		fmt.Printf(" %s %s %s  %s: %s  [%s]\n", marker, kindIcons[n.Type], n.Timestamp.Local().Format("Jan 02 15:04"), n.Title, n.Message, n.ID)
		shown++
	}
	if shown == 0 {
		fmt.Println("  No notifications.")
	}
	return nil
}

type ReadCmd struct {
	ID string `arg:"" optional:"" help:"Notification ID; all when omitted."`
}

func (c *ReadCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Planner("")
	if err != nil {
		return err
	}
	if err := p.MarkRead(c.ID); err != nil {
		return err
	}
	if c.ID == "" {
		fmt.Println("✓ All notifications marked read")
	} else {
		fmt.Printf("✓ Marked %s read\n", c.ID)
	}
	return nil
}

type RemoveCmd struct {
	ID string `arg:"" help:"Notification ID."`
}

func (c *RemoveCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Planner("")
	if err != nil {
		return err
	}
	found, err := p.RemoveNotification(c.ID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("notification %s not found", c.ID)
	}
	fmt.Printf("✓ Removed %s\n", c.ID)
	return nil
}

type ClearCmd struct{}

func (c *ClearCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Planner("")
	if err != nil {
		return err
	}
	if err := p.ClearNotifications(); err != nil {
		return err
	}
	fmt.Println("✓ Inbox cleared")
	return nil
}
