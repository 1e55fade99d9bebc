package utils

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// HTTPWithRetry calls f up to attempts times, sleeping delay between
// calls, until it returns without a transport error. Only use it for
// idempotent requests: a failed call may still have reached the server.
func HTTPWithRetry(ctx context.Context, logger *zap.Logger, attempts int, delay time.Duration,
	f func() (*http.Response, error)) (*http.Response, error) {
	if attempts < 1 {
		attempts = 1
	}
	var (
		resp *http.Response
		err  error
	)
	for i := 0; i < attempts; i++ {
		resp, err = f()
		if err == nil {
			return resp, nil
		}
		logger.Warn("request failed", zap.Int("attempt", i+1), zap.Error(err))
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
	return resp, err
}
