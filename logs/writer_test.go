/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// slowAuditWriter mimics a sluggish log sink such as a remote audit store.
type slowAuditWriter struct {
	StdWriter
}

func (s *slowAuditWriter) Write(p []byte) (n int, err error) {
	time.Sleep(10 * time.Millisecond)
	return os.Stdout.Write(p)
}

func newSlowAuditWriter(t *testing.T) *slowAuditWriter {
	t.Helper()
	return &slowAuditWriter{}
}

func newTestMultipleWriterLogger(t *testing.T, prefix string) (loggers Loggers) {
	t.Helper()
	writer, err := NewMultipleWritersWithSource(newSlowAuditWriter(t), newSlowAuditWriter(t))
	require.NoError(t, err)
	loggers = &GenericLoggers{
		Output: log.New(writer, "["+prefix+"] Output: ", log.LstdFlags),
		Error:  log.New(writer, "["+prefix+"] Error: ", log.LstdFlags),
	}
	return
}

func TestMultipleWriters(t *testing.T) {
	defer goleak.VerifyNone(t)
	testLog(t, newTestMultipleWriterLogger(t, "OffboardRun"))
	// Leaves the slow writers time to drain before the leak check.
	time.Sleep(100 * time.Millisecond)
}
