/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import "github.com/ARM-software/identity-lifecycle/commonerrors"

// quietLogger swallows plain messages and only lets errors through to the
// underlying loggers.
type quietLogger struct {
	loggers Loggers
}

func (q *quietLogger) Check() error {
	return q.loggers.Check()
}

func (q *quietLogger) Close() error {
	return q.loggers.Close()
}

func (q *quietLogger) SetLogSource(source string) error {
	return q.loggers.SetLogSource(source)
}

func (q *quietLogger) SetLoggerSource(source string) error {
	return q.loggers.SetLoggerSource(source)
}

// Log discards the message.
func (q *quietLogger) Log(_ ...interface{}) {
}

func (q *quietLogger) LogError(err ...interface{}) {
	q.loggers.LogError(err...)
}

// NewQuietLogger returns a quiet logger which only logs errors.
func NewQuietLogger(loggers Loggers) (Loggers, error) {
	if loggers == nil {
		return nil, commonerrors.ErrNoLogger
	}
	return &quietLogger{loggers: loggers}, nil
}
