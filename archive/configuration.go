/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package archive

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/identity-lifecycle/asyncjob"
	"github.com/ARM-software/identity-lifecycle/config"
	"github.com/ARM-software/identity-lifecycle/filesystem"
)

// Configuration describes where the archive pipeline stages artifacts and how it keeps
// track of them across runs.
type Configuration struct {
	// StagingDirectory receives downloaded artifacts before they are verified and
	// uploaded. One subdirectory is kept per subject so that an interrupted run can be
	// resumed. `~` is expanded.
	StagingDirectory string `mapstructure:"staging_directory"`
	// SuccessLedger is the append-only file recording every artifact successfully
	// uploaded to storage.
	SuccessLedger string `mapstructure:"success_ledger"`
	// FailureLedger is the append-only file recording artifacts whose upload failed,
	// together with the serialised failure.
	FailureLedger string `mapstructure:"failure_ledger"`
	// ScopeFile optionally points at a YAML document bounding the export. When empty,
	// all mail and drive data is exported.
	ScopeFile string `mapstructure:"scope_file"`
	// ExclusionPatterns lists glob patterns of artifact names which must not be
	// uploaded, e.g. `*.tmp`.
	ExclusionPatterns []string `mapstructure:"exclusion_patterns"`
	// FreshnessWindow bounds how old a previously downloaded artifact set may be and
	// still be reused rather than downloaded again.
	FreshnessWindow time.Duration `mapstructure:"freshness_window"`
	// Poller paces the watch on the export job.
	Poller asyncjob.PollerConfiguration `mapstructure:"poller"`
}

func (cfg *Configuration) Validate() error {
	// Validate embedded structures
	err := config.ValidateEmbedded(cfg)
	if err != nil {
		return err
	}
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.StagingDirectory, validation.Required, filesystem.NewOSPathValidationRule(true)),
		validation.Field(&cfg.SuccessLedger, validation.Required, filesystem.NewOSPathValidationRule(true)),
		validation.Field(&cfg.FailureLedger, validation.Required, filesystem.NewOSPathValidationRule(true)),
		validation.Field(&cfg.FreshnessWindow, validation.Min(time.Duration(0))),
	)
}

// DefaultConfiguration returns the configuration used when the operator supplies none.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		StagingDirectory: "~/.identity-lifecycle/staging",
		SuccessLedger:    "~/.identity-lifecycle/archive-successes.log",
		FailureLedger:    "~/.identity-lifecycle/archive-failures.log",
		FreshnessWindow:  24 * time.Hour,
		Poller:           *asyncjob.DefaultPollerConfiguration(),
	}
}
