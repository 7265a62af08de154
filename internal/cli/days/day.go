// Package days holds the commands that view and edit a single day's timeline.
package days

import (
	"fmt"

	"github.com/rahulraj-lab/Focus-flow/internal/cli"
	"github.com/rahulraj-lab/Focus-flow/internal/constants"
	"github.com/rahulraj-lab/Focus-flow/internal/models"
	"github.com/rahulraj-lab/Focus-flow/internal/schedule"
)

type DayCmd struct {
	Date    string `arg:"" optional:"" help:"Day to show (YYYY-MM-DD, today, tomorrow, yesterday)."`
	All     bool   `help:"Include empty hours." short:"a"`
	Pending bool   `help:"Show only unfinished blocks." short:"p"`
}

func (c *DayCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Planner(c.Date)
	if err != nil {
		return err
	}

	if c.Pending {
		pending := p.Pending()
		if len(pending) == 0 {
			fmt.Println("Nothing pending.")
			return nil
		}
		fmt.Printf("Pending on %s:\n", p.DateKey())
		for _, r := range pending {
			fmt.Println(cli.FormatRange(r))
		}
		return nil
	}

	cli.PrintDay(p, c.All)
	return nil
}

type SetCmd struct {
	Start      string  `arg:"" help:"First hour of the block (0-23)."`
	End        string  `arg:"" optional:"" help:"Last hour of the block; defaults to the first."`
	Task       *string `help:"Task text. An empty value clears the block." short:"t"`
	Notes      *string `help:"Notes for the block." short:"n"`
	Recurrence *string `help:"Repeat pattern: none, daily, weekly or monthly." short:"r"`
	Done       *bool   `help:"Mark the block completed (or --done=false to reopen)."`
	Date       string  `help:"Day to edit." default:"today"`
}

func (c *SetCmd) Run(ctx *cli.Context) error {
	start, end, err := parseRange(c.Start, c.End)
	if err != nil {
		return err
	}

	patch := schedule.Patch{Task: c.Task, Notes: c.Notes, Completed: c.Done}
	if c.Recurrence != nil {
		rec, err := models.ParseRecurrence(*c.Recurrence)
		if err != nil {
			return err
		}
		patch.Recurrence = &rec
	}
	if patch == (schedule.Patch{}) {
		return fmt.Errorf("nothing to change: pass --task, --notes, --recurrence or --done")
	}

	p, err := ctx.Planner(c.Date)
	if err != nil {
		return err
	}
	if err := p.UpdateRange(patch, start, end); err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()
	fmt.Printf("✓ Updated %02d:00-%02d:59 on %s\n", start, end, p.DateKey())
	return nil
}

type DoneCmd struct {
	Hour string `arg:"" help:"Any hour inside the block to toggle."`
	Date string `help:"Day to edit." default:"today"`
}

func (c *DoneCmd) Run(ctx *cli.Context) error {
	hour, err := cli.ParseHour(c.Hour)
	if err != nil {
		return err
	}
	p, err := ctx.Planner(c.Date)
	if err != nil {
		return err
	}

	block, ok := schedule.RangeAt(p.Merged(), hour)
	if !ok || !block.Occupied() {
		return fmt.Errorf("nothing scheduled at %02d:00", hour)
	}
	if err := p.ToggleComplete(block.StartHour, block.EndHour); err != nil {
		return err
	}

	state := "done"
	if block.Completed {
		state = "reopened"
	}
	fmt.Printf("✓ %s %s (%s)\n", block.Task, state, block.Label())
	return nil
}

type ClearCmd struct {
	Start string `arg:"" help:"First hour to clear."`
	End   string `arg:"" optional:"" help:"Last hour to clear; defaults to the first."`
	Date  string `help:"Day to edit." default:"today"`
}

func (c *ClearCmd) Run(ctx *cli.Context) error {
	start, end, err := parseRange(c.Start, c.End)
	if err != nil {
		return err
	}
	p, err := ctx.Planner(c.Date)
	if err != nil {
		return err
	}
	if err := p.ClearRange(start, end); err != nil {
		return err
	}
	fmt.Printf("✓ Cleared %02d:00-%02d:59 on %s\n", start, end, p.DateKey())
	return nil
}

type ResizeCmd struct {
	Start string `arg:"" help:"First hour of the block."`
	End   string `arg:"" help:"Last hour of the block."`
	Hours int    `arg:"" help:"New length in hours."`
	Date  string `help:"Day to edit." default:"today"`
}

func (c *ResizeCmd) Run(ctx *cli.Context) error {
	start, end, err := parseRange(c.Start, c.End)
	if err != nil {
		return err
	}
	p, err := ctx.Planner(c.Date)
	if err != nil {
		return err
	}
	if err := p.ResizeRange(start, end, c.Hours); err != nil {
		return err
	}
	cli.PrintDay(p, false)
	return nil
}

type DeleteDayCmd struct {
	Date string `arg:"" help:"Day to delete (YYYY-MM-DD)."`
	Yes  bool   `help:"Do not ask for confirmation." short:"y"`
}

func (c *DeleteDayCmd) Run(ctx *cli.Context) error {
	d, err := ctx.ParseDate(c.Date)
	if err != nil {
		return err
	}
	ok, err := cli.Confirm(fmt.Sprintf("Delete all data for %s?", d.Format(constants.DateFormat)), c.Yes)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Delete cancelled.")
		return nil
	}

	p, err := ctx.Planner("")
	if err != nil {
		return err
	}
	if err := p.DeleteDay(d.Format(constants.DateFormat)); err != nil {
		return err
	}
	fmt.Printf("✓ Deleted %s\n", d.Format(constants.DateFormat))
	return nil
}

func parseRange(startArg, endArg string) (int, int, error) {
	start, err := cli.ParseHour(startArg)
	if err != nil {
		return 0, 0, err
	}
	if endArg == "" {
		return start, start, nil
	}
	end, err := cli.ParseHour(endArg)
	if err != nil {
		return 0, 0, err
	}
	if start > end {
		return 0, 0, fmt.Errorf("%w: start %d is after end %d", schedule.ErrInvalidRange, start, end)
	}
	return start, end, nil
}
