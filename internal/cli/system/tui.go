package system

import (
	"github.com/rahulraj-lab/Focus-flow/internal/cli"
	"github.com/rahulraj-lab/Focus-flow/internal/tui"
)

type TuiCmd struct {
	Date string `arg:"" optional:"" help:"Day to open (YYYY-MM-DD, today, tomorrow or yesterday)."`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Planner(c.Date)
	if err != nil {
		return err
	}
	if err := tui.Run(p, ctx.Clock); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	return nil
}
