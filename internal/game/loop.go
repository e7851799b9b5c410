package game

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Run owns the controller until ctx ends, cmds is closed or the player quits.
// publish is called with a fresh snapshot whenever state changed.
func (c *Controller) Run(ctx context.Context, cmds <-chan Command, publish func(Snapshot) error) error {
	ticker := time.NewTicker(c.settings.TickInterval)
	defer ticker.Stop()
	defer c.cancelPending()

	published := c.version - 1
	for {
		if c.version != published {
			if err := publish(c.Snapshot()); err != nil {
				return fmt.Errorf("failed to publish snapshot: %w", err)
			}
			published = c.version
		}
		if c.done {
			return nil
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()

		case cmd, ok := <-cmds:
			if !ok {
				return nil
			}
			if err := c.Handle(ctx, cmd, c.clock()); err != nil {
				c.logger.Debug("command rejected", "command", cmd.Type, "phase", c.phase, "error", err)
			}

		case res := <-c.PendingHints():
			c.ApplyHints(res)

		case <-ticker.C:
			c.Tick(ctx, c.clock())
		}
	}
}
