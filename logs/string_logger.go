/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
)

// StringWriter is a writer which accumulates everything written to it in memory.
type StringWriter struct {
	io.WriteCloser
	mu   sync.RWMutex
	Logs strings.Builder
}

func (s *StringWriter) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Logs.Write(p)
}

// Close drops whatever has been accumulated so far.
func (s *StringWriter) Close() (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Logs.Reset()
	return
}

// GetFullContent returns everything written since creation or the last Close.
func (s *StringWriter) GetFullContent() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Logs.String()
}

// StringLoggers defines loggers which retain all the messages they are sent. Mostly of use in
// tests and for capturing the output of short lived commands.
type StringLoggers struct {
	GenericLoggers
	LogWriter StringWriter
}

func (l *StringLoggers) Check() error {
	return l.GenericLoggers.Check()
}

// GetLogContent returns every line logged so far as one string.
func (l *StringLoggers) GetLogContent() string {
	return l.LogWriter.GetFullContent()
}

// Close releases the captured content and closes the underlying loggers.
func (l *StringLoggers) Close() (err error) {
	err = l.LogWriter.Close()
	if err != nil {
		return
	}
	err = l.GenericLoggers.Close()
	return
}

// NewStringLogger creates loggers which keep hold of all the logged messages.
func NewStringLogger(loggerSource string) (loggers *StringLoggers, err error) {
	loggers = &StringLoggers{
		LogWriter: StringWriter{},
	}
	loggers.GenericLoggers = GenericLoggers{
		Output: log.New(&loggers.LogWriter, fmt.Sprintf("[%v] Output: ", loggerSource), log.LstdFlags),
		Error:  log.New(&loggers.LogWriter, fmt.Sprintf("[%v] Error: ", loggerSource), log.LstdFlags),
	}
	return
}
