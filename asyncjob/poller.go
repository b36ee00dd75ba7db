package asyncjob

import (
	"context"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/scheduling"
)

// JobStatusFetcher returns the current status of the job being watched. A returned
// error counts as an observation of StatusUnknown rather than ending the watch, so that
// one failed query does not abandon a healthy job.
type JobStatusFetcher func(ctx context.Context) (Status, error)

// PollUntilTerminal blocks until the job watched by fetch reaches a terminal status.
// The status is observed on the fixed interval set by cfg (a watcher, not a retrier:
// no backoff) and the terminal status is returned as soon as it is seen, without a
// final sleep. When cfg sets a timeout and the job has not terminated within it, the
// job is reported as StatusFailed with an error of type commonerrors.ErrTimeout.
// More than cfg.UnknownStatusAllowance consecutive unknown observations abandon the
// watch as StatusFailed.
func PollUntilTerminal(ctx context.Context, fetch JobStatusFetcher, cfg *PollerConfiguration) (status Status, err error) {
	status = StatusUnknown
	if fetch == nil {
		err = commonerrors.UndefinedVariable("job status fetcher")
		return
	}
	if cfg == nil {
		err = commonerrors.UndefinedVariable("poller configuration")
		return
	}
	err = cfg.Validate()
	if err != nil {
		err = commonerrors.WrapIfNotCommonError(commonerrors.ErrInvalid, err, "invalid poller configuration")
		return
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	var lastFetchErr error
	consecutiveUnknown := 0
	for {
		err = scheduling.DetermineContextError(ctx)
		if err != nil {
			if commonerrors.Any(err, commonerrors.ErrTimeout) {
				// Running out of time is reported as a job failure.
				status = StatusFailed
			}
			return
		}
		observed, fetchErr := fetch(ctx)
		if fetchErr != nil {
			lastFetchErr = fetchErr
			observed = StatusUnknown
		}
		switch observed {
		case StatusCompleted, StatusFailed:
			status = observed
			return
		case StatusRunning:
			consecutiveUnknown = 0
			lastFetchErr = nil
		default:
			consecutiveUnknown++
			if consecutiveUnknown > cfg.UnknownStatusAllowance {
				status = StatusFailed
				err = commonerrors.WrapIfNotCommonErrorf(commonerrors.ErrUnknown, lastFetchErr, "job status could not be determined after %v consecutive observations", consecutiveUnknown)
				return
			}
		}
		scheduling.SleepWithContext(ctx, cfg.Interval)
	}
}
