package game

import (
	"context"
	"time"
)

// Animate calls fn once per tick, ticks times, interval apart. It returns
// ctx.Err() if the context ends first. A non-positive interval runs all
// ticks back to back.
func Animate(ctx context.Context, ticks int, interval time.Duration, fn func(tick int)) error {
	if ticks <= 0 {
		return ctx.Err()
	}

	if interval <= 0 {
		for i := 0; i < ticks; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(i)
		}
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			fn(i)
		}
	}
	return nil
}
