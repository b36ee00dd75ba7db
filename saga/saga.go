// Package saga coordinates an ordered sequence of irreversible directory mutations
// following the [SAGA pattern](https://microservices.io/patterns/data/saga.html): steps
// run strictly sequentially and, when a critical step fails, the compensating actions
// of the completed steps replay in reverse order, per the
// [Compensating Transaction pattern](https://learn.microsoft.com/en-us/azure/architecture/patterns/compensating-transaction).
// The remote directory offers no transaction support, so consistency across partial
// failures rests on two properties the caller must uphold: every step declares an
// idempotency predicate accurate enough for safe re-runs after a crash, and every
// reversible step declares a compensation restoring its pre-run state.
package saga

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/atomic"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/idgen"
	"github.com/ARM-software/identity-lifecycle/logs"
	"github.com/ARM-software/identity-lifecycle/scheduling"
)

// Report summarises a finished run.
type Report struct {
	// RunID is the time ordered unique identifier of the run.
	RunID string
	// State is the final state of the run.
	State RunState
	// Outcomes lists per step outcomes in execution order. Steps never reached are
	// absent.
	Outcomes   []Outcome
	StartedAt  time.Time
	FinishedAt time.Time
}

// Orchestrator drives one run over a fixed sequence of steps. It is single use: a
// second call to Run fails with ErrConflict. Concurrent runs against the same subject
// are an operational invariant of the surrounding tooling, not something the
// orchestrator enforces.
type Orchestrator struct {
	loggers     logs.Loggers
	executor    *Executor
	compensator *Compensator
	transaction scheduling.IExecutionGroup[*Step]
	state       *atomic.String
	outcomes    []Outcome
}

// NewOrchestrator validates every step and returns an orchestrator ready to run them
// in the given order.
func NewOrchestrator(loggers logs.Loggers, steps ...*Step) (*Orchestrator, error) {
	if loggers == nil {
		return nil, commonerrors.UndefinedVariable("loggers")
	}
	for i := range steps {
		if steps[i] == nil {
			return nil, commonerrors.UndefinedVariable("step")
		}
		if err := steps[i].Validate(); err != nil {
			return nil, err
		}
	}
	executor, err := NewExecutor(loggers)
	if err != nil {
		return nil, err
	}
	compensator, err := NewCompensator(loggers)
	if err != nil {
		return nil, err
	}
	o := &Orchestrator{
		loggers:     loggers,
		executor:    executor,
		compensator: compensator,
		state:       atomic.NewString(string(StatePending)),
	}
	o.defineTransactionStore()
	o.transaction.RegisterFunction(steps...)
	return o, nil
}

func (o *Orchestrator) defineTransactionStore() {
	o.transaction = scheduling.NewExecutionGroup[*Step](o.runStep, scheduling.Sequential, scheduling.StopOnFirstError, scheduling.RetainAfterExecution)
}

func (o *Orchestrator) runStep(ctx context.Context, step *Step) error {
	outcome, err := o.executor.Execute(ctx, step)
	o.outcomes = append(o.outcomes, outcome)
	if err != nil {
		return err
	}
	// Only mutations this run actually performed are undone on rollback: steps skipped
	// as already applied were the work of a previous run and stay untouched.
	if step.Criticality == Critical && outcome.Status == StepSucceeded && !outcome.SkippedAlreadyApplied {
		o.compensator.Register(step)
	}
	return nil
}

// State returns the current state of the run.
func (o *Orchestrator) State() RunState {
	return RunState(o.state.Load())
}

// Len returns the number of registered steps.
func (o *Orchestrator) Len() int {
	return o.transaction.Len()
}

func (o *Orchestrator) setState(state RunState) {
	o.state.Store(string(state))
	o.loggers.Log(fmt.Sprintf("Run state: %v", state))
}

// Run executes the registered steps in order and returns the run report. The error is
// nil only when the run completed; for critical failures it carries the step failure
// joined with any compensation failures.
func (o *Orchestrator) Run(ctx context.Context) (report *Report, err error) {
	runID, err := idgen.GenerateUUID7()
	if err != nil {
		return
	}
	if !o.state.CompareAndSwap(string(StatePending), string(StateRunning)) {
		err = commonerrors.Newf(commonerrors.ErrConflict, "run already started (state '%v')", o.State())
		return
	}
	started := time.Now()
	_ = o.loggers.SetLogSource(runID)
	o.loggers.Log(fmt.Sprintf("Run '%v' started (%v steps)", runID, o.Len()))

	forwardErr := o.transaction.Execute(ctx)
	if forwardErr == nil {
		o.setState(StateCompleted)
		report = o.report(runID, started)
		return
	}
	err = forwardErr
	if o.compensator.Len() == 0 {
		o.loggers.LogError(fmt.Sprintf("Run '%v' failed with nothing to compensate: %v", runID, forwardErr))
		o.setState(StateAborted)
		report = o.report(runID, started)
		return
	}
	o.setState(StateCompensating)
	err = commonerrors.Join(forwardErr, o.compensator.Compensate(ctx))
	o.setState(StateReverted)
	report = o.report(runID, started)
	return
}

func (o *Orchestrator) report(runID string, started time.Time) *Report {
	outcomes := make([]Outcome, len(o.outcomes))
	copy(outcomes, o.outcomes)
	return &Report{
		RunID:      runID,
		State:      o.State(),
		Outcomes:   outcomes,
		StartedAt:  started,
		FinishedAt: time.Now(),
	}
}
