/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package asyncjob

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/identity-lifecycle/config"
)

// PollerConfiguration defines how a job is watched until it terminates.
type PollerConfiguration struct {
	// Interval is the fixed delay between two status observations.
	Interval time.Duration `mapstructure:"interval"`
	// Timeout bounds the overall watch. Zero means the watch is only bounded by the
	// context it is given.
	Timeout time.Duration `mapstructure:"timeout"`
	// UnknownStatusAllowance is the number of consecutive observations which may fail
	// or report an unrecognised status before the watch is abandoned.
	UnknownStatusAllowance int `mapstructure:"unknown_status_allowance"`
}

func (cfg *PollerConfiguration) Validate() error {
	// Validate embedded structures
	err := config.ValidateEmbedded(cfg)
	if err != nil {
		return err
	}
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Interval, validation.Required, validation.Min(time.Duration(0))),
		validation.Field(&cfg.Timeout, validation.Min(time.Duration(0))),
		validation.Field(&cfg.UnknownStatusAllowance, validation.Min(0)),
	)
}

// DefaultPollerConfiguration returns the configuration used for watching bulk export
// jobs: a coarse interval and no overall bound beyond the caller's context.
func DefaultPollerConfiguration() *PollerConfiguration {
	return &PollerConfiguration{
		Interval:               30 * time.Second,
		Timeout:                0,
		UnknownStatusAllowance: 3,
	}
}
