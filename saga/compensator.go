package saga

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/logs"
	"github.com/ARM-software/identity-lifecycle/scheduling"
)

// Compensator replays the compensating actions of completed critical steps in reverse
// registration order. Restoration is best effort, not another saga: failures are logged
// and collected but never stop the remaining rollbacks, and the forward retry policies
// do not apply.
type Compensator struct {
	loggers  logs.Loggers
	store    scheduling.IExecutionGroup[*Step]
	failures *multierror.Error
}

func NewCompensator(loggers logs.Loggers) (*Compensator, error) {
	if loggers == nil {
		return nil, commonerrors.UndefinedVariable("loggers")
	}
	c := &Compensator{loggers: loggers}
	c.store = scheduling.NewExecutionGroup[*Step](c.compensateStep, scheduling.JoinErrors, scheduling.SequentialInReverse, scheduling.OnlyOnce, scheduling.RetainAfterExecution)
	return c, nil
}

// Register records a completed step for later compensation. Steps without a
// compensating action are ignored.
func (c *Compensator) Register(step *Step) {
	if step == nil || step.Compensation == nil {
		return
	}
	c.store.RegisterFunction(step)
}

// Len returns the number of compensations registered.
func (c *Compensator) Len() int {
	return c.store.Len()
}

// Compensate replays all registered compensations, most recently registered first.
// The returned error aggregates every rollback failure.
func (c *Compensator) Compensate(ctx context.Context) error {
	c.failures = nil
	err := c.store.Execute(ctx)
	if err != nil {
		c.failures = multierror.Append(c.failures, err)
	}
	return c.failures.ErrorOrNil()
}

// compensateStep never returns an error so that one failed rollback cannot prevent the
// remaining ones from running.
func (c *Compensator) compensateStep(ctx context.Context, step *Step) error {
	if step == nil || step.Compensation == nil {
		return nil
	}
	_ = c.loggers.SetLogSource(step.Name)
	c.loggers.Log(fmt.Sprintf("Compensating step '%v'", step.Name))
	err := step.Compensation(ctx)
	if err != nil {
		c.loggers.LogError(fmt.Sprintf("Compensation of step '%v' failed: %v", step.Name, err))
		c.failures = multierror.Append(c.failures, fmt.Errorf("compensation of step '%v' failed: %w", step.Name, err))
	}
	return nil
}
