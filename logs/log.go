/*
 * Copyright (C) 2020-2021 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/scheduling"
)

// GenericLoggers writes plain lines to a pair of standard library loggers, one for
// output and one for errors.
type GenericLoggers struct {
	Output     *log.Logger
	Error      *log.Logger
	closeStore *scheduling.CloserStore
}

// Check states whether both underlying loggers are defined.
func (l *GenericLoggers) Check() error {
	if l.Error == nil || l.Output == nil {
		return commonerrors.ErrNoLogger
	}
	return nil
}

func (l *GenericLoggers) SetLogSource(source string) error {
	return nil
}

func (l *GenericLoggers) SetLoggerSource(source string) error {
	return nil
}

// Log writes to the output logger.
func (l *GenericLoggers) Log(output ...interface{}) {
	l.Output.Println(output...)
}

// LogError writes to the error logger.
func (l *GenericLoggers) LogError(err ...interface{}) {
	l.Error.Println(err...)
}

// Close releases whatever resources the loggers hold onto.
func (l *GenericLoggers) Close() error {
	if l.closeStore == nil {
		return nil
	}
	return l.closeStore.Close()
}

// AsynchronousLoggers decouples callers from slow log sinks: lines are stamped with
// the logger source and handed to buffered writers.
type AsynchronousLoggers struct {
	mu           sync.RWMutex
	oWriter      WriterWithSource
	eWriter      WriterWithSource
	loggerSource string
}

func (l *AsynchronousLoggers) Check() error {
	if l.GetLoggerSource() == "" {
		return commonerrors.ErrNoLoggerSource
	}
	if l.oWriter == nil || l.eWriter == nil {
		return commonerrors.ErrUndefined
	}
	return nil
}

func (l *AsynchronousLoggers) SetLogSource(source string) (err error) {
	err = l.oWriter.SetSource(source)
	if subErr := l.eWriter.SetSource(source); subErr != nil && err == nil {
		err = subErr
	}
	return
}

func (l *AsynchronousLoggers) SetLoggerSource(source string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loggerSource = source
	return nil
}

func (l *AsynchronousLoggers) GetLoggerSource() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loggerSource
}

func (l *AsynchronousLoggers) Log(output ...interface{}) {
	l.write(l.oWriter, "Output", output...)
}

func (l *AsynchronousLoggers) LogError(err ...interface{}) {
	l.write(l.eWriter, "Error", err...)
}

func (l *AsynchronousLoggers) write(w WriterWithSource, stream string, items ...interface{}) {
	_, _ = w.Write([]byte(fmt.Sprintf("[%v] %v (%v): %v\n", l.GetLoggerSource(), stream, time.Now(), strings.TrimSpace(fmt.Sprint(items...)))))
}

// Close flushes and closes both writers, reporting the first failure.
func (l *AsynchronousLoggers) Close() (err error) {
	err = l.eWriter.Close()
	if subErr := l.oWriter.Close(); subErr != nil && err == nil {
		err = subErr
	}
	return
}

// NewAsynchronousLoggers creates thread safe loggers over slow writers such as network sinks.
// Messages are passed through a lock free ring buffer so that logging never blocks the caller.
func NewAsynchronousLoggers(slowOutputWriter WriterWithSource, slowErrorWriter WriterWithSource, ringBufferSize int, pollInterval time.Duration, loggerSource string, source string, droppedMessagesLogger Loggers) (loggers Loggers, err error) {
	loggers = &AsynchronousLoggers{
		oWriter:      NewDiodeWriterForSlowWriter(slowOutputWriter, ringBufferSize, pollInterval, droppedMessagesLogger),
		eWriter:      NewDiodeWriterForSlowWriter(slowErrorWriter, ringBufferSize, pollInterval, droppedMessagesLogger),
		loggerSource: loggerSource,
	}
	err = loggers.SetLogSource(source)
	if err != nil {
		return
	}
	err = loggers.Check()
	return
}
