package saga

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/logs"
	"github.com/ARM-software/identity-lifecycle/retry"
	"github.com/ARM-software/identity-lifecycle/scheduling"
)

// Executor runs one step at a time: it consults the idempotency predicate, performs
// the action under the step's retry policy and routes failures according to the step's
// criticality. Every outcome is written to the activity loggers before control returns.
type Executor struct {
	loggers logs.Loggers
	logger  logr.Logger
}

// NewExecutor returns an executor writing every outcome to loggers.
func NewExecutor(loggers logs.Loggers) (*Executor, error) {
	if loggers == nil {
		return nil, commonerrors.UndefinedVariable("loggers")
	}
	return &Executor{
		loggers: loggers,
		logger:  logs.NewLogrLoggerFromLoggers(loggers),
	}, nil
}

// Execute runs step and returns its outcome. The returned error is only set for
// failures the run cannot carry on past: critical step failures and cancellation.
// Best effort failures are recorded in the outcome and absorbed.
func (e *Executor) Execute(ctx context.Context, step *Step) (outcome Outcome, err error) {
	defer func() { outcome.Timestamp = time.Now() }()
	outcome.Status = StepFailed
	if step == nil {
		err = commonerrors.UndefinedVariable("step")
		outcome.Err = err
		return
	}
	outcome.Step = step.Name
	outcome.Criticality = step.Criticality
	_ = e.loggers.SetLogSource(step.Name)

	// Cancellation aborts the run whatever the criticality.
	err = scheduling.DetermineContextError(ctx)
	if err != nil {
		outcome.Err = err
		e.loggers.LogError(fmt.Sprintf("Step '%v' not run: %v", step.Name, err))
		return
	}

	if step.AlreadyApplied != nil {
		applied, subErr := step.AlreadyApplied(ctx)
		switch {
		case subErr != nil:
			// When the current state cannot be determined, the action still runs and
			// its own failure classification governs.
			e.loggers.LogError(fmt.Sprintf("Could not determine whether step '%v' was already applied: %v", step.Name, subErr))
		case applied:
			outcome.Status = StepSucceeded
			outcome.SkippedAlreadyApplied = true
			e.loggers.Log(fmt.Sprintf("Step '%v' skipped: already applied", step.Name))
			return
		}
	}

	actionErr := e.runAction(ctx, step)
	if actionErr == nil {
		outcome.Status = StepSucceeded
		e.loggers.Log(fmt.Sprintf("Step '%v' succeeded", step.Name))
		return
	}
	outcome.Err = actionErr
	e.loggers.LogError(fmt.Sprintf("Step '%v' failed: %v", step.Name, actionErr))
	if step.Criticality == BestEffort && commonerrors.None(actionErr, commonerrors.ErrCancelled) {
		e.loggers.Log(fmt.Sprintf("Step '%v' is best effort: carrying on", step.Name))
		return
	}
	err = actionErr
	return
}

func (e *Executor) runAction(ctx context.Context, step *Step) error {
	if step.RetryPolicy == nil {
		return commonerrors.ConvertContextError(step.Action(ctx))
	}
	fn := func() error { return step.Action(ctx) }
	msg := fmt.Sprintf("step '%v' failed", step.Name)
	if len(step.RetriableErrors) > 0 {
		return retry.RetryOnError(ctx, e.logger, step.RetryPolicy, fn, msg, step.RetriableErrors...)
	}
	return retry.RetryOnTransient(ctx, e.logger, step.RetryPolicy, fn, msg)
}
