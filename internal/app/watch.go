package app

import (
	"context"
	"time"
)

// Watch calls fn with a fresh snapshot immediately and then on every tick
// until ctx is cancelled. Unavailable windows are reported, not fatal.
func (s *State) Watch(ctx context.Context, interval time.Duration, fn func(Snapshot)) error {
	if interval <= 0 {
		interval = s.cfg.GetPollInterval()
	}

	fn(s.Refresh(ctx))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if ctx.Err() != nil {
				return nil
			}
			fn(s.Refresh(ctx))
		}
	}
}
