/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package offboarding

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/identity-lifecycle/config"
	"github.com/ARM-software/identity-lifecycle/retry"
)

// Configuration tunes the offboarding run.
type Configuration struct {
	// SuspendedDomain is the domain the subject's address is renamed under whilst the
	// account awaits deletion. Blank derives `suspended.<original domain>`.
	SuspendedDomain string `mapstructure:"suspended_domain"`
	// PropagationWait bounds the single wait for the rename to propagate before the
	// renamed address is verified. The directory offers no propagation signal for
	// renames, so the bound is the only control available.
	PropagationWait time.Duration `mapstructure:"propagation_wait"`
	// BlockDeletionOnTransferFailure keeps the account (suspended, under the renamed
	// address) when a best effort data transfer failed, so that the data can still be
	// recovered before the account disappears. The run is then rolled back and reports
	// REVERTED rather than COMPLETED.
	BlockDeletionOnTransferFailure bool `mapstructure:"block_deletion_on_transfer_failure"`
	// DirectoryWriteRetry is the policy applied to directory writes prone to
	// propagation races: creating the placeholder group at the freshly released
	// address and verifying the renamed address resolves.
	DirectoryWriteRetry retry.RetryPolicyConfiguration `mapstructure:"directory_write_retry"`
}

func (cfg *Configuration) Validate() error {
	err := config.ValidateEmbedded(cfg)
	if err != nil {
		return err
	}
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.PropagationWait, validation.Min(time.Duration(0))),
	)
}

func DefaultConfiguration() *Configuration {
	return &Configuration{
		PropagationWait:     time.Minute,
		DirectoryWriteRetry: *retry.DefaultDirectoryWritePolicyConfiguration(),
	}
}
