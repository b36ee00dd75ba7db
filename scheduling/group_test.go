package scheduling

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/commonerrors/errortest"
	"github.com/ARM-software/identity-lifecycle/scheduling/mocks"
)

func TestExecutionTimes(t *testing.T) {
	t.Run("clone", func(t *testing.T) {
		ctlr := gomock.NewController(t)
		defer ctlr.Finish()

		closerMock := mocks.NewMockCloser(ctlr)
		closerMock.EXPECT().Close().Return(nil).Times(6)
		group := NewCloserStoreWithOptions(ExecuteAll, Parallel, OnlyOnce, RetainAfterExecution)
		group.RegisterFunction(closerMock, closerMock, closerMock)
		c := group.Clone()
		require.NotNil(t, c)
		assert.Equal(t, group.Len(), c.Len())
		require.NoError(t, group.Close())
		closeClone, ok := c.(*CloserStore)
		require.True(t, ok)
		require.NoError(t, closeClone.Close())
	})

	t.Run("close only Once Parallel with retention", func(t *testing.T) {
		ctlr := gomock.NewController(t)
		defer ctlr.Finish()

		closerMock := mocks.NewMockCloser(ctlr)
		closerMock.EXPECT().Close().Return(nil).Times(3)

		group := NewCloserStoreWithOptions(ExecuteAll, Parallel, OnlyOnce, RetainAfterExecution)
		group.RegisterFunction(closerMock, closerMock, closerMock)
		require.NoError(t, group.Close())
		require.NoError(t, group.Close())
		require.NoError(t, group.Close())
		require.NoError(t, group.Close())
	})
	t.Run("close only Once Sequential with retention", func(t *testing.T) {
		ctlr := gomock.NewController(t)
		defer ctlr.Finish()

		closerMock := mocks.NewMockCloser(ctlr)
		closerMock.EXPECT().Close().Return(nil).Times(3)

		group := NewCloserStoreWithOptions(ExecuteAll, OnlyOnce, Sequential, RetainAfterExecution)
		group.RegisterFunction(closerMock, closerMock, closerMock)
		require.NoError(t, group.Close())
		require.NoError(t, group.Close())
		require.NoError(t, group.Close())
		require.NoError(t, group.Close())
	})
	t.Run("close only Once Parallel without retention", func(t *testing.T) {
		ctlr := gomock.NewController(t)
		defer ctlr.Finish()

		closerMock := mocks.NewMockCloser(ctlr)
		closerMock.EXPECT().Close().Return(nil).Times(3)

		group := NewCloserStoreWithOptions(ExecuteAll, Parallel, OnlyOnce, ClearAfterExecution)
		group.RegisterFunction(closerMock, closerMock, closerMock)
		require.NoError(t, group.Close())
		require.NoError(t, group.Close())
		require.NoError(t, group.Close())
		require.NoError(t, group.Close())
	})

	t.Run("close Multiple times Parallel", func(t *testing.T) {
		ctlr := gomock.NewController(t)
		defer ctlr.Finish()

		closerMock := mocks.NewMockCloser(ctlr)
		closerMock.EXPECT().Close().Return(nil).Times(21)
		group := NewCloserStoreWithOptions(ExecuteAll, AnyTimes, Parallel, RetainAfterExecution, Workers(3))
		group.RegisterFunction(closerMock, closerMock, closerMock)
		require.NoError(t, group.Close())
		require.NoError(t, group.Close())
		require.NoError(t, group.Close())
		require.NoError(t, group.Close())
		require.NoError(t, group.Close())
		require.NoError(t, group.Close())
		require.NoError(t, group.Close())
	})
	t.Run("close Multiple times Sequential without retention", func(t *testing.T) {
		ctlr := gomock.NewController(t)
		defer ctlr.Finish()

		closerMock := mocks.NewMockCloser(ctlr)
		closerMock.EXPECT().Close().Return(nil).Times(3)
		group := NewCloserStoreWithOptions(ExecuteAll, AnyTimes, Sequential, ClearAfterExecution)
		group.RegisterFunction(closerMock, closerMock, closerMock)
		require.NoError(t, group.Close())
		require.NoError(t, group.Close())
		require.NoError(t, group.Close())
		require.NoError(t, group.Close())
	})

	t.Run("with cancelled context", func(t *testing.T) {
		group := NewExecutionGroup[string](func(_ context.Context, _ string) error { return nil }, Sequential)
		group.RegisterFunction("a", "b")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		errortest.AssertError(t, group.Execute(ctx), commonerrors.ErrCancelled)
	})
}

func TestExecutionOrder(t *testing.T) {
	t.Run("sequential follows registration order", func(t *testing.T) {
		executed := make([]string, 0, 3)
		group := NewExecutionGroup[string](func(_ context.Context, element string) error {
			executed = append(executed, element)
			return nil
		}, Sequential, RetainAfterExecution)
		group.RegisterFunctions(slices.Values([]string{"first", "second"}))
		group.RegisterFunction("third")
		require.Equal(t, 3, group.Len())
		require.NoError(t, group.Execute(context.Background()))
		assert.Equal(t, []string{"first", "second", "third"}, executed)
	})
	t.Run("reverse walks back from the last registered element", func(t *testing.T) {
		executed := make([]string, 0, 3)
		group := NewExecutionGroup[string](func(_ context.Context, element string) error {
			executed = append(executed, element)
			return nil
		}, JoinErrors, SequentialInReverse, OnlyOnce)
		group.RegisterFunction("first", "second", "third")
		require.NoError(t, group.Execute(context.Background()))
		assert.Equal(t, []string{"third", "second", "first"}, executed)
	})
	t.Run("copy preserves registration order", func(t *testing.T) {
		executed := make([]string, 0, 2)
		group := NewExecutionGroup[string](func(_ context.Context, _ string) error { return nil }, Sequential)
		group.RegisterFunction("first", "second")
		copyGroup := NewExecutionGroup[string](func(_ context.Context, element string) error {
			executed = append(executed, element)
			return nil
		}, Sequential)
		group.CopyFunctions(copyGroup)
		require.Equal(t, group.Len(), copyGroup.Len())
		require.NoError(t, copyGroup.Execute(context.Background()))
		assert.Equal(t, []string{"first", "second"}, executed)
	})
	t.Run("sequential stops on first error", func(t *testing.T) {
		executed := make([]string, 0, 3)
		group := NewExecutionGroup[string](func(_ context.Context, element string) error {
			executed = append(executed, element)
			if element == "second" {
				return commonerrors.New(commonerrors.ErrUnexpected, "failed execution")
			}
			return nil
		}, Sequential, StopOnFirstError, RetainAfterExecution)
		group.RegisterFunction("first", "second", "third")
		errortest.AssertError(t, group.Execute(context.Background()), commonerrors.ErrUnexpected)
		assert.Equal(t, []string{"first", "second"}, executed)
	})
}

func TestStoreOptions_MergeWithOptions(t *testing.T) {
	opts := WithOptions(Parallel).MergeWithOptions(OnlyOnce, ExecuteAll, Workers(5), Sequential)
	assert.True(t, opts.onlyOnce)
	assert.False(t, opts.stopOnFirstError)
	assert.True(t, opts.sequential)
	assert.Equal(t, 5, opts.workers)
}
