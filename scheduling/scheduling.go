/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package scheduling provides the suspension points of the tool: interruptable sleeps used
// for propagation waits, poll intervals and retry backoff, together with context error
// determination. Sleeps respond to context cancellation instead of blocking for their whole
// duration.
package scheduling

import (
	"context"
	"time"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
)

// SleepWithContext suspends the calling goroutine for the duration delay similarly to
// time.Sleep but returns early if the context is cancelled.
func SleepWithContext(ctx context.Context, delay time.Duration) {
	timer := time.NewTimer(delay)
	defer func() {
		_ = timer.Stop()
	}()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// SleepWithInterruption suspends the calling goroutine for the duration delay but returns
// early if a message is received on the stop channel.
func SleepWithInterruption(stop chan bool, delay time.Duration) {
	timer := time.NewTimer(delay)
	defer func() {
		_ = timer.Stop()
	}()
	select {
	case <-stop:
	case <-timer.C:
	}
}

// DetermineContextError determines whether the context has errored and, if so, converts the
// error into a common error (commonerrors.ErrCancelled, commonerrors.ErrTimeout). If the
// context carries a cancellation cause other than the plain context errors, the cause is
// retained in the returned error.
func DetermineContextError(ctx context.Context) error {
	err := commonerrors.ErrFromContext(ctx)
	if err == nil {
		return nil
	}
	cause := context.Cause(ctx)
	if cause == nil || commonerrors.Any(cause, err, context.Canceled, context.DeadlineExceeded) {
		return err
	}
	return commonerrors.WrapError(err, cause, "")
}
