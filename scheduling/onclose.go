/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package scheduling

import (
	"context"
	"io"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
)

// CloserStore is a store of io.Closer objects which will all be closed on Close().
type CloserStore struct {
	ExecutionGroup[io.Closer]
}

// RegisterCloser adds closers to the store.
func (s *CloserStore) RegisterCloser(closerObj ...io.Closer) {
	s.ExecutionGroup.RegisterFunction(closerObj...)
}

func (s *CloserStore) Close() error {
	return s.Execute(context.Background())
}

func (s *CloserStore) Len() int {
	return s.ExecutionGroup.Len()
}

// Clone returns a new store with the same configuration and the same registered closers.
func (s *CloserStore) Clone() IExecutionGroup[io.Closer] {
	clone := NewCloserStoreWithOptions(s.options.Options()...)
	s.CopyFunctions(clone)
	return clone
}

// NewCloserStore returns a store of io.Closer object which will all be closed concurrently on Close(). The first error received will be returned
func NewCloserStore(stopOnFirstError bool) *CloserStore {
	option := ExecuteAll
	if stopOnFirstError {
		option = StopOnFirstError
	}
	return NewCloserStoreWithOptions(option, Parallel)
}

// NewCloserStoreWithOptions returns a store of io.Closer object which will all be closed on Close(). The first error received if any will be returned
func NewCloserStoreWithOptions(opts ...StoreOption) *CloserStore {
	return &CloserStore{
		ExecutionGroup: *NewExecutionGroup[io.Closer](func(_ context.Context, closerObj io.Closer) error {
			if closerObj == nil {
				return commonerrors.UndefinedVariable("closer object")
			}
			return closerObj.Close()
		}, append(opts, RetainAfterExecution)...),
	}
}

// CloseAll calls concurrently Close on all io.Closer implementations passed as arguments and returns the first error encountered
func CloseAll(cs ...io.Closer) error {
	group := NewCloserStore(false)
	group.RegisterFunction(cs...)
	return group.Close()
}

// CloseAllAndCollateErrors calls concurrently Close on all io.Closer implementations passed as arguments and returns the errors encountered
func CloseAllAndCollateErrors(cs ...io.Closer) error {
	group := NewCloserStoreWithOptions(ExecuteAll, Parallel, JoinErrors)
	group.RegisterFunction(cs...)
	return group.Close()
}

// CloseAllFunc calls concurrently all Close functions passed as arguments and returns the first error encountered
func CloseAllFunc(cs ...CloseFunc) error {
	group := NewConcurrentCloseFunctionStore(false)
	group.RegisterFunction(cs...)
	return group.Close()
}

// CloseAllFuncAndCollateErrors calls concurrently all Close functions passed as arguments and returns the errors encountered
func CloseAllFuncAndCollateErrors(cs ...CloseFunc) error {
	group := NewCloseFunctionStore(ExecuteAll, Parallel, JoinErrors)
	group.RegisterFunction(cs...)
	return group.Close()
}

type CloseFunc func() error

// WrapCloserIntoCloseFunc converts an io.Closer into a CloseFunc.
func WrapCloserIntoCloseFunc(closer io.Closer) CloseFunc {
	return func() error {
		if closer == nil {
			return commonerrors.UndefinedVariable("closer object")
		}
		return closer.Close()
	}
}

type CloseFunctionStore struct {
	ExecutionGroup[CloseFunc]
}

func (s *CloseFunctionStore) RegisterCloseFunction(closerObj ...CloseFunc) {
	s.ExecutionGroup.RegisterFunction(closerObj...)
}

// RegisterCancelFunction registers cancel functions which will be called on Close().
func (s *CloseFunctionStore) RegisterCancelFunction(cancelFunc ...context.CancelFunc) {
	for i := range cancelFunc {
		cancel := cancelFunc[i]
		s.RegisterCloseFunction(func() error {
			if cancel != nil {
				cancel()
			}
			return nil
		})
	}
}

func (s *CloseFunctionStore) Close() error {
	return s.Execute(context.Background())
}

func (s *CloseFunctionStore) Len() int {
	return s.ExecutionGroup.Len()
}

// NewCloseFunctionStore returns a store closing functions which will all be called on Close(). The first error received if any will be returned.
func NewCloseFunctionStore(options ...StoreOption) *CloseFunctionStore {
	return &CloseFunctionStore{
		ExecutionGroup: *NewExecutionGroup[CloseFunc](func(_ context.Context, closerObj CloseFunc) error {
			if closerObj == nil {
				return commonerrors.UndefinedVariable("closing function")
			}
			return closerObj()
		}, append(options, RetainAfterExecution)...),
	}
}

// NewCloseOnceGroup returns a store of closing functions which will only ever be called once.
func NewCloseOnceGroup(options ...StoreOption) *CloseFunctionStore {
	return NewCloseFunctionStore(append(options, OnlyOnce)...)
}

// NewConcurrentCloseFunctionStore returns a store closing functions which will all be called concurrently on Close(). The first error received will be returned.
func NewConcurrentCloseFunctionStore(stopOnFirstError bool) *CloseFunctionStore {
	option := ExecuteAll
	if stopOnFirstError {
		option = StopOnFirstError
	}
	return NewCloseFunctionStore(option, Parallel)
}
