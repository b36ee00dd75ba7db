/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logs defines loggers for use in projects.
package logs

import (
	"github.com/go-logr/zapr"
	"go.uber.org/zap"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
)

// Sync on /dev/stderr fails with EINVAL on Linux, see https://github.com/uber-go/zap/issues/328
const syncError = "invalid argument"

// NewZapLogger returns a logger which uses zap logger (https://github.com/uber-go/zap)
func NewZapLogger(zapL *zap.Logger, loggerSource string) (loggers Loggers, err error) {
	if zapL == nil {
		err = commonerrors.ErrNoLogger
		return
	}
	flush := func() error {
		subErr := zapL.Sync()
		if commonerrors.CorrespondTo(subErr, syncError) {
			return nil
		}
		return subErr
	}
	return NewLogrLoggerWithClose(zapr.NewLogger(zapL), loggerSource, flush)
}
