/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package logs

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/DeRuina/timberjack"
	"github.com/sirupsen/logrus"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/reflection"
	"github.com/ARM-software/identity-lifecycle/safecast"
	"github.com/ARM-software/identity-lifecycle/scheduling"
	sizeUnits "github.com/ARM-software/identity-lifecycle/units/size"
)

// NewFileLogger creates a logger writing to logFile as well as to the standard streams.
func NewFileLogger(logFile string, loggerSource string) (loggers Loggers, err error) {
	return NewLogrusLoggerWithFileHook(logrus.New(), loggerSource, logFile)
}

// NewFileOnlyLogger creates a logger writing to logFile alone. Nothing is printed to StdErr or StdOut.
func NewFileOnlyLogger(logFile string, loggerSource string) (loggers Loggers, err error) {
	underlying := logrus.New()
	underlying.SetOutput(io.Discard)
	return NewLogrusLoggerWithFileHook(underlying, loggerSource, logFile)
}

type FileLoggerOptions struct {
	maxFileSize float64
	maxAge      time.Duration
	maxBackups  int
}

type FileLoggerOption func(*FileLoggerOptions) *FileLoggerOptions

// WithMaxFileSize sets the maximum size in bytes a log file may reach before it gets rotated.
func WithMaxFileSize(maxFileSize float64) FileLoggerOption {
	return func(opts *FileLoggerOptions) *FileLoggerOptions {
		if opts != nil {
			opts.maxFileSize = maxFileSize
		}
		return opts
	}
}

// WithMaxAge sets how long old log files are retained before removal.
func WithMaxAge(maxAge time.Duration) FileLoggerOption {
	return func(opts *FileLoggerOptions) *FileLoggerOptions {
		// Ages below a minute race with the rotation goroutine.
		if opts != nil && maxAge >= time.Minute {
			opts.maxAge = maxAge
		}
		return opts
	}
}

// WithMaxBackups sets the maximum number of rotated log files to retain.
func WithMaxBackups(maxBackups int) FileLoggerOption {
	return func(opts *FileLoggerOptions) *FileLoggerOptions {
		if opts != nil {
			opts.maxBackups = maxBackups
		}
		return opts
	}
}

// NewRollingFilesLogger creates a rolling file logger using [timberjack](https://github.com/DeRuina/timberjack) under the bonnet.
// Rotation happens by size and by age according to the supplied options.
func NewRollingFilesLogger(logFile string, loggerSource string, options ...FileLoggerOption) (loggers Loggers, err error) {
	if reflection.IsEmpty(logFile) {
		err = commonerrors.New(commonerrors.ErrInvalidDestination, "missing file destination")
		return
	}
	opts := &FileLoggerOptions{
		maxFileSize: 100 * sizeUnits.MiB,
		maxAge:      24 * time.Hour,
		maxBackups:  3,
	}
	for i := range options {
		opts = options[i](opts)
	}
	rollingSink := &timberjack.Logger{
		Filename:   logFile,
		MaxSize:    safecast.ToInt(opts.maxFileSize / sizeUnits.MiB),
		MaxAge:     safecast.ToInt(opts.maxAge.Hours() / 24),
		MaxBackups: opts.maxBackups,
		LocalTime:  false,
		Compress:   false,
	}
	store := scheduling.NewCloserStore(false)
	store.RegisterCloser(rollingSink)

	loggers = &GenericLoggers{
		Output:     log.New(rollingSink, fmt.Sprintf("[%v] Output: ", loggerSource), log.LstdFlags),
		Error:      log.New(rollingSink, fmt.Sprintf("[%v] Error: ", loggerSource), log.LstdFlags),
		closeStore: store,
	}
	return
}
