/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"log"

	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/reflection"
	"github.com/ARM-software/identity-lifecycle/scheduling"
)

// NewLogrusLogger creates loggers over a logrus logger (https://github.com/Sirupsen/logrus)
func NewLogrusLogger(logrusL *logrus.Logger, loggerSource string) (loggers Loggers, err error) {
	if logrusL == nil {
		err = commonerrors.ErrNoLogger
		return
	}
	outWriter := logrusL.WriterLevel(logrus.InfoLevel)
	errWriter := logrusL.WriterLevel(logrus.ErrorLevel)
	closeStore := scheduling.NewCloserStore(false)
	closeStore.RegisterCloser(outWriter, errWriter)
	loggers = &GenericLoggers{
		Output:     log.New(outWriter, fmt.Sprintf("[%v] ", loggerSource), log.LstdFlags),
		Error:      log.New(errWriter, fmt.Sprintf("[%v] ", loggerSource), log.LstdFlags),
		closeStore: closeStore,
	}
	return
}

// NewLogrusLoggerWithFileHook creates loggers over a logrus logger with a file hook
// (https://github.com/rifflock/lfshook) so that all messages are also written to logFile.
func NewLogrusLoggerWithFileHook(logrusL *logrus.Logger, loggerSource string, logFile string) (loggers Loggers, err error) {
	if logrusL == nil {
		err = commonerrors.ErrNoLogger
		return
	}
	if reflection.IsEmpty(logFile) {
		err = commonerrors.New(commonerrors.ErrInvalidDestination, "missing file destination")
		return
	}
	pathMap := lfshook.PathMap{}
	for _, level := range logrus.AllLevels {
		pathMap[level] = logFile
	}
	logrusL.Hooks.Add(lfshook.NewHook(pathMap, &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}))
	return NewLogrusLogger(logrusL, loggerSource)
}
