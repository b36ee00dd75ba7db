package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/go-logr/logr"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/safecast"
)

func delayType(retryPolicy *RetryPolicyConfiguration) retry.DelayTypeFunc {
	switch {
	case retryPolicy.LinearBackOffEnabled:
		return retry.CombineDelay(retry.FixedDelay, retry.RandomDelay)
	case retryPolicy.BackOffEnabled:
		return retry.BackOffDelay
	default:
		return retry.FixedDelay
	}
}

// RetryIf runs fn and retries it, per the policy, as long as retryConditionFn reports the
// returned error as retriable. Each retry is announced to the logger with msgOnRetry.
func RetryIf(ctx context.Context, logger logr.Logger, retryPolicy *RetryPolicyConfiguration, fn func() error, msgOnRetry string, retryConditionFn func(err error) bool) error {
	if retryPolicy == nil {
		return commonerrors.New(commonerrors.ErrUndefined, "missing retry policy configuration")
	}
	if !retryPolicy.Enabled {
		return fn()
	}
	return commonerrors.ConvertContextError(
		retry.Do(
			fn,
			retry.Context(ctx),
			retry.OnRetry(func(n uint, err error) {
				logger.Error(err, fmt.Sprintf("%v (attempt #%v)", msgOnRetry, n+1), "attempt", n+1)
			}),
			retry.Delay(retryPolicy.RetryWaitMin),
			retry.MaxDelay(retryPolicy.RetryWaitMax),
			retry.MaxJitter(25*time.Millisecond),
			retry.DelayType(delayType(retryPolicy)),
			retry.Attempts(safecast.ToUint(retryPolicy.RetryMax)),
			retry.RetryIf(retryConditionFn),
			retry.LastErrorOnly(true),
		),
	)
}

// RetryOnError retries fn whenever its error matches one of retriableErr.
func RetryOnError(ctx context.Context, logger logr.Logger, retryPolicy *RetryPolicyConfiguration, fn func() error, msgOnRetry string, retriableErr ...error) error {
	return RetryIf(ctx, logger, retryPolicy, fn, msgOnRetry, func(err error) bool {
		return commonerrors.Any(err, retriableErr...)
	})
}

// RetryOnTransient retries fn on the transient remote failures a directory tends to return
// whilst settling (duplicate resource conflicts, rate limiting, temporary unavailability).
// Any other error is considered permanent and returned straight away.
func RetryOnTransient(ctx context.Context, logger logr.Logger, retryPolicy *RetryPolicyConfiguration, fn func() error, msgOnRetry string) error {
	return RetryOnError(ctx, logger, retryPolicy, fn, msgOnRetry, commonerrors.ErrConflict, commonerrors.ErrTooManyRequests, commonerrors.ErrUnavailable)
}
