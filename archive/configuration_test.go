/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package archive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultArchiveConfigurationIsValid(t *testing.T) {
	require.NoError(t, DefaultConfiguration().Validate())
}

func TestArchiveConfigurationRejectsBrokenPaths(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.StagingDirectory = "/var/lib/lifecycle\nstaging"
	require.Error(t, cfg.Validate())

	cfg = DefaultConfiguration()
	cfg.SuccessLedger = ""
	require.Error(t, cfg.Validate())
}
