/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package logs

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog/diode"
)

// MultipleWritersWithSource fans writes out to several writers, e.g. the console
// plus an activity log file.
type MultipleWritersWithSource struct {
	mu      sync.RWMutex
	writers []WriterWithSource
}

func (m *MultipleWritersWithSource) GetWriters() ([]WriterWithSource, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writers, nil
}

func (m *MultipleWritersWithSource) AddWriters(writers ...WriterWithSource) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writers = append(m.writers, writers...)
	return nil
}

// Write hands the bytes to every writer. A failing writer does not stop the others.
func (m *MultipleWritersWithSource) Write(p []byte) (n int, err error) {
	writers, err := m.GetWriters()
	if err != nil {
		return
	}
	for i := range writers {
		n, _ = writers[i].Write(p)
	}
	return
}

func (m *MultipleWritersWithSource) SetSource(source string) (err error) {
	writers, err := m.GetWriters()
	if err != nil {
		return
	}
	for i := range writers {
		err = writers[i].SetSource(source)
	}
	return
}

func (m *MultipleWritersWithSource) Close() (err error) {
	writers, err := m.GetWriters()
	if err != nil {
		return
	}
	for i := range writers {
		if subErr := writers[i].Close(); subErr != nil {
			err = subErr
		}
	}
	return
}

func NewMultipleWritersWithSource(writers ...WriterWithSource) (writer *MultipleWritersWithSource, err error) {
	writer = &MultipleWritersWithSource{}
	err = writer.AddWriters(writers...)
	return
}

// DiodeWriter pushes writes through a lock free ring buffer so a slow sink never
// blocks the logging caller.
type DiodeWriter struct {
	WriterWithSource
	diodeWriter io.Writer
	slowWriter  WriterWithSource
}

func (d *DiodeWriter) Write(p []byte) (n int, err error) {
	return d.diodeWriter.Write(p)
}

// Close drains the ring buffer: the slow sink closes first, then the diode.
func (d *DiodeWriter) Close() error {
	err := d.slowWriter.Close()
	if err != nil {
		return err
	}
	if diodeCloser, ok := d.diodeWriter.(io.Closer); ok {
		return diodeCloser.Close()
	}
	return err
}

func (d *DiodeWriter) SetSource(source string) error {
	return d.slowWriter.SetSource(source)
}

// NewDiodeWriterForSlowWriter returns a thread safe, lock free, non blocking writer over
// slowWriter using a diode (https://github.com/rs/zerolog/tree/master/diode). Messages which
// cannot be accepted are dropped and reported to droppedMessagesLogger.
func NewDiodeWriterForSlowWriter(slowWriter WriterWithSource, ringBufferSize int, pollInterval time.Duration, droppedMessagesLogger Loggers) WriterWithSource {
	onMissed := func(missed int) {
		if droppedMessagesLogger != nil {
			droppedMessagesLogger.LogError(fmt.Sprintf("Logger dropped %d messages", missed))
		}
	}
	return &DiodeWriter{
		diodeWriter: diode.NewWriter(slowWriter, ringBufferSize, pollInterval, onMissed),
		slowWriter:  slowWriter,
	}
}
