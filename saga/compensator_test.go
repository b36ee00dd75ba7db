package saga

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/commonerrors/errortest"
)

func TestCompensatorMissingLoggers(t *testing.T) {
	_, err := NewCompensator(nil)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
}

func TestCompensatorIgnoresIrreversibleSteps(t *testing.T) {
	defer goleak.VerifyNone(t)
	compensator, err := NewCompensator(newTestLoggers(t))
	require.NoError(t, err)
	compensator.Register(nil)
	compensator.Register(&Step{Name: "transfer aliases", Criticality: Critical, Action: func(context.Context) error { return nil }})
	assert.Zero(t, compensator.Len())
	compensator.Register(&Step{
		Name:         "suspend account",
		Criticality:  Critical,
		Action:       func(context.Context) error { return nil },
		Compensation: func(context.Context) error { return nil },
	})
	assert.Equal(t, 1, compensator.Len())
}

func TestCompensatorReverseOrder(t *testing.T) {
	defer goleak.VerifyNone(t)
	compensator, err := NewCompensator(newTestLoggers(t))
	require.NoError(t, err)
	var order []string
	for _, name := range []string{"suspend account", "rename account", "create group"} {
		name := name
		compensator.Register(&Step{
			Name:        name,
			Criticality: Critical,
			Action:      func(context.Context) error { return nil },
			Compensation: func(context.Context) error {
				order = append(order, name)
				return nil
			},
		})
	}
	require.NoError(t, compensator.Compensate(context.Background()))
	assert.Equal(t, []string{"create group", "rename account", "suspend account"}, order)
}

func TestCompensatorContinuesPastFailures(t *testing.T) {
	defer goleak.VerifyNone(t)
	compensator, err := NewCompensator(newTestLoggers(t))
	require.NoError(t, err)
	var order []string
	register := func(name string, compensationErr error) {
		compensator.Register(&Step{
			Name:        name,
			Criticality: Critical,
			Action:      func(context.Context) error { return nil },
			Compensation: func(context.Context) error {
				order = append(order, name)
				return compensationErr
			},
		})
	}
	register("suspend account", nil)
	register("rename account", commonerrors.ErrUnavailable)
	register("create group", nil)

	err = compensator.Compensate(context.Background())
	errortest.AssertError(t, err, commonerrors.ErrUnavailable)
	// All rollbacks ran despite the failure in the middle one.
	assert.Equal(t, []string{"create group", "rename account", "suspend account"}, order)
}

func TestCompensatorRunsEachRollbackOnce(t *testing.T) {
	defer goleak.VerifyNone(t)
	compensator, err := NewCompensator(newTestLoggers(t))
	require.NoError(t, err)
	calls := 0
	compensator.Register(&Step{
		Name:        "suspend account",
		Criticality: Critical,
		Action:      func(context.Context) error { return nil },
		Compensation: func(context.Context) error {
			calls++
			return nil
		},
	})
	require.NoError(t, compensator.Compensate(context.Background()))
	require.NoError(t, compensator.Compensate(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestCompensatorCancelledContext(t *testing.T) {
	defer goleak.VerifyNone(t)
	compensator, err := NewCompensator(newTestLoggers(t))
	require.NoError(t, err)
	calls := 0
	compensator.Register(&Step{
		Name:        "suspend account",
		Criticality: Critical,
		Action:      func(context.Context) error { return nil },
		Compensation: func(context.Context) error {
			calls++
			return nil
		},
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = compensator.Compensate(ctx)
	errortest.AssertError(t, err, commonerrors.ErrCancelled, commonerrors.ErrTimeout)
	assert.Zero(t, calls)
}
