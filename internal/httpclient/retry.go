package httpclient

import (
	"context"
	"math/rand"
	"time"

	"github.com/aleister1102/pathscan/internal/common"
	"github.com/rs/zerolog"
)

// RetryPolicy describes when and how fast a failed fetch is retried.
type RetryPolicy struct {
	MaxRetries  int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
	StatusCodes []int
}

// RetryHandler re-runs a fetch on transport errors and on retryable statuses,
// backing off exponentially between attempts.
type RetryHandler struct {
	policy    RetryPolicy
	retryable map[int]struct{}
	logger    zerolog.Logger
}

// NewRetryHandler creates a handler for policy.
func NewRetryHandler(policy RetryPolicy, logger zerolog.Logger) *RetryHandler {
	codes := make(map[int]struct{}, len(policy.StatusCodes))
	for _, code := range policy.StatusCodes {
		codes[code] = struct{}{}
	}
	return &RetryHandler{
		policy:    policy,
		retryable: codes,
		logger:    logger.With().Str("component", "RetryHandler").Logger(),
	}
}

// Retryable reports whether status is in the retry set.
func (rh *RetryHandler) Retryable(status int) bool {
	_, ok := rh.retryable[status]
	return ok
}

// Backoff returns the wait before retry number attempt+1: BaseDelay doubled per
// attempt and capped at MaxDelay, plus up to 10% jitter when enabled.
func (rh *RetryHandler) Backoff(attempt int) time.Duration {
	delay := rh.policy.BaseDelay
	for i := 0; i < attempt; i++ {
		delay *= 2
		if rh.policy.MaxDelay > 0 && delay >= rh.policy.MaxDelay {
			delay = rh.policy.MaxDelay
			break
		}
	}
	if rh.policy.Jitter {
		if spread := int64(delay) / 10; spread > 0 {
			delay += time.Duration(rand.Int63n(spread))
		}
	}
	return delay
}

// Run calls fetch until it succeeds with a non-retryable status, the policy
// is exhausted or ctx ends. When retries run out on a retryable status the
// last response is returned with a wrapped *common.HTTPError.
func (rh *RetryHandler) Run(ctx context.Context, target string, fetch func() (*response, error)) (*response, error) {
	var lastErr error

	for attempt := 0; attempt <= rh.policy.MaxRetries; attempt++ {
		resp, err := fetch()
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return nil, err
			}
			lastErr = err
		case !rh.Retryable(resp.status):
			return resp, nil
		case attempt == rh.policy.MaxRetries:
			statusErr := common.NewHTTPErrorWithURL(resp.status, preview(resp.body), target)
			return resp, common.WrapError(statusErr, "all retry attempts failed")
		}

		if attempt == rh.policy.MaxRetries {
			break
		}

		delay := rh.Backoff(attempt)
		event := rh.logger.Debug().Str("url", target).Int("attempt", attempt+1).Dur("delay", delay)
		if err != nil {
			event.Err(err).Msg("Request error, retrying")
		} else {
			event.Int("status_code", resp.status).Msg("Retryable status, retrying")
		}

		if err := sleepCtx(ctx, delay); err != nil {
			return nil, err
		}
	}

	return nil, common.WrapError(lastErr, "all retry attempts failed")
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
