/*
 * Copyright (C) 2020-2023 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/commonerrors/errortest"
)

func TestQuietLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	verbose, err := NewStdLogger("Test")
	require.NoError(t, err)
	loggers, err := NewQuietLogger(verbose)
	require.NoError(t, err)
	testLog(t, loggers)
}

func TestQuietLoggerUndefined(t *testing.T) {
	defer goleak.VerifyNone(t)
	_, err := NewQuietLogger(nil)
	errortest.RequireError(t, err, commonerrors.ErrNoLogger)
}
