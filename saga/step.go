package saga

import (
	"context"
	"time"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/reflection"
	"github.com/ARM-software/identity-lifecycle/retry"
)

// Criticality states what the failure of a step means to the whole run.
type Criticality string

const (
	// Critical steps stop the run on failure and trigger compensation.
	Critical Criticality = "CRITICAL"
	// BestEffort steps have their failures logged and absorbed; the run carries on.
	BestEffort Criticality = "BEST_EFFORT"
)

// StepStatus is the terminal status of one step execution.
type StepStatus string

const (
	StepSucceeded StepStatus = "SUCCEEDED"
	StepFailed    StepStatus = "FAILED"
)

// RunState describes the lifecycle of a run:
// PENDING -> RUNNING -> {COMPLETED | COMPENSATING -> REVERTED | ABORTED}.
type RunState string

const (
	StatePending      RunState = "PENDING"
	StateRunning      RunState = "RUNNING"
	StateCompleted    RunState = "COMPLETED"
	StateCompensating RunState = "COMPENSATING"
	StateReverted     RunState = "REVERTED"
	StateAborted      RunState = "ABORTED"
)

// Step is one local transaction of the run: a directory mutation together with the
// metadata the orchestrator needs to execute, retry, skip or undo it. Steps are plain
// data values so that a run can be described entirely up front and exercised against
// any substituted directory client.
type Step struct {
	// Name identifies the step in logs and run reports.
	Name string
	// Criticality routes failures of this step (see Criticality).
	Criticality Criticality
	// Action performs the mutation.
	Action func(ctx context.Context) error
	// Compensation undoes Action. Nil marks the effect as irreversible.
	Compensation func(ctx context.Context) error
	// AlreadyApplied reports whether the target state has already been reached, letting
	// re-runs skip the mutation. The predicate must not mutate anything.
	AlreadyApplied func(ctx context.Context) (bool, error)
	// RetryPolicy wraps Action with the retry controller when set.
	RetryPolicy *retry.RetryPolicyConfiguration
	// RetriableErrors overrides the transient error set used when retrying Action.
	RetriableErrors []error
}

func (s *Step) Validate() error {
	if reflection.IsEmpty(s.Name) {
		return commonerrors.UndefinedVariable("step name")
	}
	if s.Action == nil {
		return commonerrors.Newf(commonerrors.ErrUndefined, "step '%v' has no action", s.Name)
	}
	switch s.Criticality {
	case Critical, BestEffort:
		return nil
	default:
		return commonerrors.Newf(commonerrors.ErrInvalid, "step '%v' has unknown criticality '%v'", s.Name, s.Criticality)
	}
}

// Outcome records how one step ended.
type Outcome struct {
	// Step is the name of the step the outcome belongs to.
	Step string
	// Criticality of the step at execution time.
	Criticality Criticality
	// Status is the terminal status of the step.
	Status StepStatus
	// SkippedAlreadyApplied is set when the idempotency predicate found the target
	// state already reached and the action was therefore not run.
	SkippedAlreadyApplied bool
	// Timestamp is when the outcome was reached.
	Timestamp time.Time
	// Err carries the failure, including absorbed best effort failures.
	Err error
}
