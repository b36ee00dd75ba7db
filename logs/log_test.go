/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
)

func TestLog(t *testing.T) {
	defer goleak.VerifyNone(t)
	var loggers Loggers = &GenericLoggers{}
	err := loggers.Check()
	assert.Error(t, err)
	err = loggers.Close()
	assert.NoError(t, err)
}

// testLog drives a logger through the calls a flow run performs: source changes,
// plain progress lines, blank lines and error values in various shapes.
func testLog(t *testing.T, loggers Loggers) {
	t.Helper()
	err := loggers.Check()
	require.NoError(t, err)
	defer func() { _ = loggers.Close() }()

	err = loggers.SetLogSource("disable-signin")
	require.NoError(t, err)
	err = loggers.SetLoggerSource("OffboardRun")
	require.NoError(t, err)

	loggers.Log("Sign-in disabled for [jo.doe@corp.example]")
	loggers.Log("Probing directory state")
	loggers.Log("\"/usr/bin/gam\" user \"jo.doe@corp.example\" show aliases\n")
	loggers.Log("\n")
	loggers.LogError("\n")
	err = loggers.SetLogSource("transfer-aliases")
	require.NoError(t, err)

	loggers.Log("Alias [sales@corp.example] now points at [manager@corp.example]")
	loggers.LogError("alias transfer rejected")
	err = loggers.SetLogSource("export-drive")
	require.NoError(t, err)

	err = loggers.SetLoggerSource("RollbackRun")
	require.NoError(t, err)

	loggers.LogError("export did not complete in time")
	err = loggers.SetLogSource("compensation")
	require.NoError(t, err)

	loggers.LogError("undoing sign-in block")
	loggers.LogError(commonerrors.ErrCancelled)
	loggers.LogError(nil)
	loggers.LogError(commonerrors.ErrUnexpected, "directory answered out of order")
	loggers.LogError("directory answered out of order", commonerrors.ErrUnexpected)
	loggers.LogError(nil, "nothing to undo")
	err = loggers.Close()
	require.NoError(t, err)
}
