package retry

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Do runs probe until it succeeds, waiting backoff between failures, for at
// most attempts tries. Each failure is logged as a warning. The error of the
// last attempt is returned on exhaustion; callers decide whether exhaustion
// is fatal or a degraded start.
func Do(ctx context.Context, logger *slog.Logger, target string, attempts int, backoff time.Duration, probe func(context.Context) error) error {
	if attempts <= 0 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = probe(ctx); err == nil {
			return nil
		}

		logger.Warn("waiting for dependency",
			slog.String("target", target),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", attempts),
			slog.String("error", err.Error()),
		)

		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("connect %s: %w", target, ctx.Err())
		case <-time.After(backoff):
		}
	}

	return fmt.Errorf("connect %s after %d attempts: %w", target, attempts, err)
}
