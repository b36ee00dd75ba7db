/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/commonerrors/errortest"
)

func TestZapLogger(t *testing.T) {
	tests := []struct {
		name   string
		newZap func() (*zap.Logger, error)
	}{
		{name: "development", newZap: zap.NewDevelopment},
		{name: "production", newZap: zap.NewProduction},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			defer goleak.VerifyNone(t)
			logger, err := test.newZap()
			require.NoError(t, err)
			loggers, err := NewZapLogger(logger, "Test")
			require.NoError(t, err)
			testLog(t, loggers)
		})
	}
}

func TestZapLoggerUndefined(t *testing.T) {
	defer goleak.VerifyNone(t)
	_, err := NewZapLogger(nil, "Test")
	errortest.RequireError(t, err, commonerrors.ErrNoLogger)
}
