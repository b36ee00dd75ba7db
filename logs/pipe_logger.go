/*
 * Copyright (C) 2020-2024 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"log"
	"os"
)

// NewPipeLogger logs messages verbatim, without any prefix. Useful when relaying the
// output of another process whose lines already carry their own source markers.
func NewPipeLogger() (loggers Loggers, err error) {
	loggers = &GenericLoggers{
		Output: log.New(os.Stdout, "", 0),
		Error:  log.New(os.Stderr, "", 0),
	}
	return
}
