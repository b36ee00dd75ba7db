/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/reflection"
)

const (
	KeyLogSource    = "source"
	KeyLoggerSource = "logger-source"
)

type logrLogger struct {
	mu        sync.RWMutex
	logger    logr.Logger
	closeFunc func() error
}

func (l *logrLogger) Close() error {
	if l.closeFunc == nil {
		return nil
	}
	return l.closeFunc()
}

// Check always succeeds: the zero logr.Logger is usable and discards everything.
func (l *logrLogger) Check() error {
	return nil
}

func (l *logrLogger) SetLogSource(source string) error {
	if reflection.IsEmpty(source) {
		return commonerrors.ErrNoLogSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = l.logger.WithValues(KeyLogSource, source)
	return nil
}

func (l *logrLogger) SetLoggerSource(source string) error {
	if reflection.IsEmpty(source) {
		return commonerrors.ErrNoLoggerSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = l.logger.WithName(source).WithValues(KeyLoggerSource, source)
	return nil
}

func (l *logrLogger) Log(output ...interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(fmt.Sprintln(output...))
}

func (l *logrLogger) LogError(err ...interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error(nil, fmt.Sprintln(err...))
}

// NewLogrLogger creates loggers based on a logr implementation (https://github.com/go-logr/logr)
func NewLogrLogger(logrImpl logr.Logger, loggerSource string) (loggers Loggers, err error) {
	return NewLogrLoggerWithClose(logrImpl, loggerSource, nil)
}

// NewLogrLoggerWithClose is similar to NewLogrLogger but calls closeFunc on Close().
func NewLogrLoggerWithClose(logrImpl logr.Logger, loggerSource string, closeFunc func() error) (loggers Loggers, err error) {
	loggers = &logrLogger{logger: logrImpl, closeFunc: closeFunc}
	err = loggers.SetLoggerSource(loggerSource)
	return
}

// NewLogrLoggerFromLoggers converts loggers into a logr.Logger
func NewLogrLoggerFromLoggers(loggers Loggers) logr.Logger {
	return stdr.New(newGolangStdLoggerFromLoggers(loggers))
}

// NewPlainLogrLoggerFromLoggers converts loggers into a logr.Logger without adding any prefix
// to the messages.
func NewPlainLogrLoggerFromLoggers(loggers Loggers) logr.Logger {
	return stdr.New(log.New(&loggersWriter{loggers: loggers}, "", 0))
}

// GetLogrLoggerFromContext returns the logr.Logger stored in the context if any.
func GetLogrLoggerFromContext(ctx context.Context) (logger logr.Logger, err error) {
	logger, err = logr.FromContext(ctx)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrNoLogger, err, "no logger found in context")
	}
	return
}

type loggersWriter struct {
	loggers Loggers
}

func (w *loggersWriter) Write(p []byte) (n int, err error) {
	if w.loggers == nil {
		err = commonerrors.ErrNoLogger
		return
	}
	w.loggers.Log(string(p))
	n = len(p)
	return
}

// newGolangStdLoggerFromLoggers returns a standard library logger which prints to loggers.
func newGolangStdLoggerFromLoggers(loggers Loggers) *log.Logger {
	return log.New(&loggersWriter{loggers: loggers}, "", log.LstdFlags)
}
