package system

import (
	"fmt"
	"os"
	"time"

	"github.com/rahulraj-lab/Focus-flow/internal/cli"
	"github.com/rahulraj-lab/Focus-flow/internal/export"
)

type ExportICSCmd struct {
	Date   string `arg:"" optional:"" help:"Day to export (YYYY-MM-DD, today, tomorrow)."`
	Output string `help:"File to write; stdout when omitted." short:"o" type:"path"`
}

func (c *ExportICSCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Planner(c.Date)
	if err != nil {
		return err
	}

	stamp := time.Now()
	if ctx.Now != nil {
		stamp = ctx.Now()
	}
	doc := export.ICS(p.Date(), p.Slots(), p.Rules(), stamp)

	if c.Output == "" {
		fmt.Print(doc)
		return nil
	}
	if err := os.WriteFile(c.Output, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Output, err)
	}
	fmt.Printf("✓ Exported %s to %s\n", p.DateKey(), c.Output)
	return nil
}
