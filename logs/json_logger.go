/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/scheduling"
)

// JSONLoggers streams log lines as JSON documents, one per line.
type JSONLoggers struct {
	Loggers
	mu           sync.RWMutex
	source       string
	loggerSource string
	writer       WriterWithSource
	zerologger   zerolog.Logger
	closerStore  *scheduling.CloserStore
}

func (j *JSONLoggers) SetLogSource(source string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.source = source
	return j.writer.SetSource(source)
}

func (j *JSONLoggers) SetLoggerSource(source string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.loggerSource = source
	return nil
}

func (j *JSONLoggers) GetSource() string {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.source
}

func (j *JSONLoggers) GetLoggerSource() string {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.loggerSource
}

// Check states whether both the log source and the logger source are defined.
func (j *JSONLoggers) Check() error {
	switch {
	case j.GetSource() == "":
		return commonerrors.ErrNoLogSource
	case j.GetLoggerSource() == "":
		return commonerrors.ErrNoLoggerSource
	default:
		return nil
	}
}

// Configure names the JSON fields and stamps every document with a timestamp.
func (j *JSONLoggers) Configure() error {
	zerolog.TimestampFieldName = "ctime"
	zerolog.MessageFieldName = "message"
	zerolog.LevelFieldName = "severity"
	j.zerologger = j.zerologger.With().Timestamp().Logger()
	return nil
}

// Log writes an information document to the stream. Bare newlines are swallowed.
func (j *JSONLoggers) Log(output ...interface{}) {
	j.emit(j.zerologger.Info(), output...)
}

// LogError writes an error document to the stream. Bare newlines are swallowed.
func (j *JSONLoggers) LogError(err ...interface{}) {
	j.emit(j.zerologger.Error(), err...)
}

func (j *JSONLoggers) emit(event *zerolog.Event, items ...interface{}) {
	if len(items) == 1 && items[0] == "\n" {
		return
	}
	event.Str("source", j.GetLoggerSource()).Msg(fmt.Sprint(items...))
}

func (j *JSONLoggers) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.closerStore.Close()
}

// NewJSONLogger creates a logger streaming JSON documents to the writer. The writer
// is closed alongside the logger.
func NewJSONLogger(writer WriterWithSource, loggerSource string, source string) (Loggers, error) {
	return newJSONLogger(true, writer, loggerSource, source)
}

// NewJSONLoggerWithWriter is similar to NewJSONLogger but leaves the writer open on Close().
func NewJSONLoggerWithWriter(writer WriterWithSource, loggerSource string, source string) (Loggers, error) {
	return newJSONLogger(false, writer, loggerSource, source)
}

func newJSONLogger(closeWriterOnClose bool, writer WriterWithSource, loggerSource string, source string) (loggers Loggers, err error) {
	store := scheduling.NewCloserStore(false)
	if closeWriterOnClose {
		store.RegisterCloser(writer)
	}

	jsonLogger := JSONLoggers{
		source:       source,
		loggerSource: loggerSource,
		writer:       writer,
		zerologger:   zerolog.New(writer),
		closerStore:  store,
	}
	if err = jsonLogger.Check(); err != nil {
		return
	}
	if err = writer.SetSource(source); err != nil {
		return
	}
	err = jsonLogger.Configure()
	loggers = &jsonLogger
	return
}

// NewJSONLoggerForSlowWriter creates a lock free, non-blocking & thread safe logger
// wrapped around slowWriter. The slowWriter is closed on Close.
//
// params:
// slowWriter : writer used to write data streams
// ringBufferSize : size of ring buffer used to receive messages
// pollInterval : polling duration to check buffer content
// loggerSource : logger application name
// source : source string
// droppedMessagesLogger : logger for dropped messages
// If pollInterval is greater than 0, a poller is used otherwise a waiter is used.
func NewJSONLoggerForSlowWriter(slowWriter WriterWithSource, ringBufferSize int, pollInterval time.Duration, loggerSource string, source string, droppedMessagesLogger Loggers) (loggers Loggers, err error) {
	return NewJSONLogger(NewDiodeWriterForSlowWriter(slowWriter, ringBufferSize, pollInterval, droppedMessagesLogger), loggerSource, source)
}
