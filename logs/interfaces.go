/*
 * Copyright (C) 2020-2021 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"io"

	"github.com/go-logr/logr"
)

//go:generate mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/ARM-software/identity-lifecycle/$GOPACKAGE Loggers,WriterWithSource

type Loggers interface {
	io.Closer
	// Checks whether the loggers are correctly defined or not.
	Check() error
	// Sets the source of the log message e.g. related run, related step, etc.
	SetLogSource(source string) error
	// Sets the source of the logger e.g. offboarding runner, directory client, exporter.
	SetLoggerSource(source string) error
	// Logs to the output logger.
	Log(output ...interface{})
	// Logs to the Error logger.
	LogError(err ...interface{})
}

type WriterWithSource interface {
	io.WriteCloser
	SetSource(source string) error
}

// IMultipleLoggers defines a logger which dispatches messages to a group of loggers.
type IMultipleLoggers interface {
	Loggers
	// Append appends loggers to the group.
	Append(l ...Loggers) error
	// AppendLogger appends logr implementations to the group.
	AppendLogger(l ...logr.Logger) error
}
