// internal/script/runner.go
package script

import (
	"context"
	"time"

	"github.com/tamzrod/cockpit-panel/internal/panel"
)

// Apply performs one compiled step on the panel.
func Apply(p *panel.Panel, op Op) {
	switch op.kind {
	case opMode:
		p.StartMode(op.mode)
	case opName:
		p.ShowModeName(op.text)
	case opError:
		p.ShowError(op.text)
	case opScratchpad:
		p.SetScratchpadFreeform(op.text)
	case opField:
		p.SetField(op.field, op.text)
	case opIndicator:
		p.SetIndicator(op.id, op.on)
	case opEvent:
		p.ShowEvent(op.in, op.out)
	}
}

// Run applies ops in order, one per interval tick, calling after (if set)
// once each step has been applied. A zero interval applies everything at
// once. Run returns early with ctx.Err() on cancellation.
func Run(ctx context.Context, p *panel.Panel, ops []Op, interval time.Duration, after func(i int)) error {
	if interval <= 0 {
		for i, op := range ops {
			if err := ctx.Err(); err != nil {
				return err
			}
			Apply(p, op)
			if after != nil {
				after(i)
			}
		}
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i, op := range ops {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			Apply(p, op)
			if after != nil {
				after(i)
			}
		}
	}
	return nil
}
