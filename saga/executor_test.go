package saga

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/commonerrors/errortest"
	"github.com/ARM-software/identity-lifecycle/logs"
	"github.com/ARM-software/identity-lifecycle/logs/logstest"
	"github.com/ARM-software/identity-lifecycle/retry"
)

func newTestExecutor(t *testing.T) *Executor {
	t.Helper()
	executor, err := NewExecutor(newTestLoggers(t))
	require.NoError(t, err)
	return executor
}

func newTestLoggers(t *testing.T) logs.Loggers {
	t.Helper()
	loggers, err := logs.NewLogrLogger(logstest.NewTestLogger(t), "test")
	require.NoError(t, err)
	return loggers
}

func TestExecutorMissingLoggers(t *testing.T) {
	_, err := NewExecutor(nil)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
}

func TestExecutorNilStep(t *testing.T) {
	defer goleak.VerifyNone(t)
	outcome, err := newTestExecutor(t).Execute(context.Background(), nil)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
	assert.Equal(t, StepFailed, outcome.Status)
}

func TestExecutorRunsAction(t *testing.T) {
	defer goleak.VerifyNone(t)
	calls := 0
	outcome, err := newTestExecutor(t).Execute(context.Background(), &Step{
		Name:        "suspend account",
		Criticality: Critical,
		Action: func(context.Context) error {
			calls++
			return nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, StepSucceeded, outcome.Status)
	assert.Equal(t, "suspend account", outcome.Step)
	assert.False(t, outcome.SkippedAlreadyApplied)
	assert.False(t, outcome.Timestamp.IsZero())
}

func TestExecutorSkipsAlreadyApplied(t *testing.T) {
	defer goleak.VerifyNone(t)
	calls := 0
	outcome, err := newTestExecutor(t).Execute(context.Background(), &Step{
		Name:        "suspend account",
		Criticality: Critical,
		Action: func(context.Context) error {
			calls++
			return nil
		},
		AlreadyApplied: func(context.Context) (bool, error) { return true, nil },
	})
	require.NoError(t, err)
	assert.Zero(t, calls)
	assert.Equal(t, StepSucceeded, outcome.Status)
	assert.True(t, outcome.SkippedAlreadyApplied)
}

func TestExecutorRunsActionWhenStateUnknown(t *testing.T) {
	defer goleak.VerifyNone(t)
	calls := 0
	outcome, err := newTestExecutor(t).Execute(context.Background(), &Step{
		Name:        "rename account",
		Criticality: Critical,
		Action: func(context.Context) error {
			calls++
			return nil
		},
		AlreadyApplied: func(context.Context) (bool, error) {
			return false, commonerrors.ErrUnavailable
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, StepSucceeded, outcome.Status)
	assert.False(t, outcome.SkippedAlreadyApplied)
}

func TestExecutorRetriesTransientFailures(t *testing.T) {
	defer goleak.VerifyNone(t)
	calls := 0
	outcome, err := newTestExecutor(t).Execute(context.Background(), &Step{
		Name:        "create group",
		Criticality: Critical,
		Action: func(context.Context) error {
			calls++
			if calls < 3 {
				return commonerrors.New(commonerrors.ErrConflict, "address still reserved")
			}
			return nil
		},
		RetryPolicy: retry.DefaultBasicRetryPolicyConfiguration(),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, StepSucceeded, outcome.Status)
}

func TestExecutorDoesNotRetryPermanentFailures(t *testing.T) {
	defer goleak.VerifyNone(t)
	calls := 0
	outcome, err := newTestExecutor(t).Execute(context.Background(), &Step{
		Name:        "create group",
		Criticality: Critical,
		Action: func(context.Context) error {
			calls++
			return commonerrors.ErrForbidden
		},
		RetryPolicy: retry.DefaultBasicRetryPolicyConfiguration(),
	})
	errortest.AssertError(t, err, commonerrors.ErrForbidden)
	assert.Equal(t, 1, calls)
	assert.Equal(t, StepFailed, outcome.Status)
	errortest.AssertError(t, outcome.Err, commonerrors.ErrForbidden)
}

func TestExecutorRetriableErrorsOverride(t *testing.T) {
	defer goleak.VerifyNone(t)
	calls := 0
	_, err := newTestExecutor(t).Execute(context.Background(), &Step{
		Name:        "verify renamed address",
		Criticality: Critical,
		Action: func(context.Context) error {
			calls++
			if calls == 1 {
				return commonerrors.ErrNotFound
			}
			return nil
		},
		RetryPolicy:     retry.DefaultBasicRetryPolicyConfiguration(),
		RetriableErrors: []error{commonerrors.ErrNotFound},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestExecutorBestEffortFailureIsAbsorbed(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := logs.NewStringLogger("test")
	require.NoError(t, err)
	executor, err := NewExecutor(loggers)
	require.NoError(t, err)
	outcome, err := executor.Execute(context.Background(), &Step{
		Name:        "transfer drive",
		Criticality: BestEffort,
		Action: func(context.Context) error {
			return fmt.Errorf("%w: transfer rejected", commonerrors.ErrUnexpected)
		},
	})
	require.NoError(t, err)
	assert.Equal(t, StepFailed, outcome.Status)
	errortest.AssertError(t, outcome.Err, commonerrors.ErrUnexpected)
	assert.Contains(t, loggers.GetLogContent(), "transfer drive")
	assert.Contains(t, loggers.GetLogContent(), "transfer rejected")
}

func TestExecutorCriticalFailurePropagates(t *testing.T) {
	defer goleak.VerifyNone(t)
	outcome, err := newTestExecutor(t).Execute(context.Background(), &Step{
		Name:        "delete account",
		Criticality: Critical,
		Action: func(context.Context) error {
			return commonerrors.ErrForbidden
		},
	})
	errortest.AssertError(t, err, commonerrors.ErrForbidden)
	assert.Equal(t, StepFailed, outcome.Status)
}

func TestExecutorCancelledContext(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	outcome, err := newTestExecutor(t).Execute(ctx, &Step{
		Name:        "transfer drive",
		Criticality: BestEffort,
		Action: func(context.Context) error {
			calls++
			return nil
		},
	})
	errortest.AssertError(t, err, commonerrors.ErrCancelled, commonerrors.ErrTimeout)
	assert.Zero(t, calls)
	assert.Equal(t, StepFailed, outcome.Status)
}
