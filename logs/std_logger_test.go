/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestStdLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := NewStdLogger("OffboardRun")
	require.NoError(t, err)
	testLog(t, loggers)
}

func TestAsynchronousStdLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := NewAsynchronousStdLogger("OffboardRun", 1024, 2*time.Millisecond, "run log")
	require.NoError(t, err)
	testLog(t, loggers)
}
