/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logrimp gathers logr adapters for the logger backends the tool can emit to.
package logrimp

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// NewStdOutLogr returns a logger printing to standard out, one message per line.
// See https://github.com/go-logr/logr/blob/ff91da8dc418a9e36998931ed4ab10b71833a368/example_test.go#L27
func NewStdOutLogr() logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix == "" {
			fmt.Println(args)
			return
		}
		fmt.Printf("%s: %s\n", prefix, args)
	}, funcr.Options{})
}
