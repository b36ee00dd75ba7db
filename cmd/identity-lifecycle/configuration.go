/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"github.com/ARM-software/identity-lifecycle/archive"
	"github.com/ARM-software/identity-lifecycle/config"
	"github.com/ARM-software/identity-lifecycle/directory"
	"github.com/ARM-software/identity-lifecycle/offboarding"
	"github.com/ARM-software/identity-lifecycle/onboarding"
	"github.com/ARM-software/identity-lifecycle/signature"
)

// ToolConfiguration aggregates every subsystem configuration the tool consumes.
// Entries resolve through viper in the usual precedence order: bound flags, then
// `LIFECYCLE_` prefixed environment variables (a `.env` file is honoured), then the
// defaults below.
type ToolConfiguration struct {
	Directory   directory.ClientConfiguration `mapstructure:"directory"`
	Offboarding offboarding.Configuration     `mapstructure:"offboarding"`
	Onboarding  onboarding.Configuration      `mapstructure:"onboarding"`
	Archive     archive.Configuration         `mapstructure:"archive"`
	Signature   signature.Configuration       `mapstructure:"signature"`
	// LogFile receives the activity log in addition to stdout. Blank keeps stdout only.
	LogFile string `mapstructure:"log_file"`
	// RollingLogs rotates LogFile by size instead of growing a single file forever.
	RollingLogs bool `mapstructure:"rolling_logs"`
	// JSONLogs streams the stdout activity log as JSON lines for machine consumption.
	JSONLogs bool `mapstructure:"json_logs"`
}

func (cfg *ToolConfiguration) Validate() error {
	// Validate embedded structures
	return config.ValidateEmbedded(cfg)
}

// DefaultToolConfiguration returns the configuration used where the environment
// supplies nothing.
func DefaultToolConfiguration() *ToolConfiguration {
	return &ToolConfiguration{
		Directory:   *directory.DefaultClientConfiguration(),
		Offboarding: *offboarding.DefaultConfiguration(),
		Onboarding:  *onboarding.DefaultConfiguration(),
		Archive:     *archive.DefaultConfiguration(),
		Signature:   *signature.DefaultConfiguration(),
	}
}
