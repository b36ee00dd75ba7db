/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"sync"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
)

// MultipleLogger fans every line out to a list of underlying loggers, e.g. the
// console plus an activity log file.
type MultipleLogger struct {
	mu           sync.RWMutex
	loggers      []Loggers
	loggerSource string
}

func (m *MultipleLogger) Check() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g := new(errgroup.Group)
	for i := range m.loggers {
		g.Go(m.loggers[i].Check)
	}
	return g.Wait()
}

func (m *MultipleLogger) Log(output ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.loggers {
		m.loggers[i].Log(output...)
	}
}

func (m *MultipleLogger) LogError(err ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.loggers {
		m.loggers[i].LogError(err...)
	}
}

func (m *MultipleLogger) SetLogSource(source string) (err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.loggers {
		if subErr := m.loggers[i].SetLogSource(source); subErr != nil {
			err = subErr
		}
	}
	return
}

func (m *MultipleLogger) SetLoggerSource(source string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setLoggerSource(source)
}

func (m *MultipleLogger) setLoggerSource(source string) error {
	for i := range m.loggers {
		err := m.loggers[i].SetLoggerSource(source)
		if err != nil {
			return err
		}
	}
	m.loggerSource = source
	return nil
}

func (m *MultipleLogger) GetLoggerSource() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loggerSource
}

// AppendLogger wraps logr loggers and adds them to the list.
func (m *MultipleLogger) AppendLogger(l ...logr.Logger) error {
	for i := range l {
		logger, err := NewLogrLogger(l[i], m.GetLoggerSource())
		if err != nil {
			return err
		}
		err = m.Append(logger)
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *MultipleLogger) Append(l ...Loggers) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loggers = append(m.loggers, l...)
	return nil
}

func (m *MultipleLogger) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g := new(errgroup.Group)
	for i := range m.loggers {
		g.Go(m.loggers[i].Close)
	}
	return g.Wait()
}

// MultipleLoggerWithLoggerSource propagates its logger source onto every logger
// appended to it.
type MultipleLoggerWithLoggerSource struct {
	MultipleLogger
}

func (m *MultipleLoggerWithLoggerSource) Append(l ...Loggers) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loggers = append(m.loggers, l...)
	return m.setLoggerSource(m.loggerSource)
}

// NewMultipleLoggers returns a logger which abstracts and internally manages a list
// of loggers. When no logger is provided, lines go to the standard output.
func NewMultipleLoggers(loggerSource string, loggersList ...Loggers) (l IMultipleLoggers, err error) {
	if loggerSource == "" {
		err = commonerrors.ErrNoLoggerSource
		return
	}
	l = &MultipleLoggerWithLoggerSource{}
	err = l.SetLoggerSource(loggerSource)
	if err != nil {
		return
	}

	list := loggersList
	if len(list) == 0 {
		var std Loggers
		std, err = NewStdLogger(loggerSource)
		if err != nil {
			return
		}
		list = []Loggers{std}
	}
	err = l.Append(list...)
	return
}

// NewCombinedLoggers returns a logger fanning out to the list provided, which must
// not be empty.
func NewCombinedLoggers(loggersList ...Loggers) (l IMultipleLoggers, err error) {
	if len(loggersList) == 0 {
		err = commonerrors.ErrNoLogger
		return
	}
	l = &MultipleLogger{}
	err = l.Append(loggersList...)
	return
}
