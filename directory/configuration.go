/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package directory

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/identity-lifecycle/config"
)

// ClientConfiguration describes how to reach the directory's administration CLI. It is
// consumed at construction time only; the tool never reads the credential contents the
// CLI keeps under its configuration directory.
type ClientConfiguration struct {
	// Binary is the administration CLI executable, either a bare name resolved through
	// PATH or an absolute path. `~` is expanded.
	Binary string `mapstructure:"binary"`
	// ConfigDirectory is the CLI's own configuration/credentials directory, passed to
	// every invocation. Blank means the CLI uses its built-in default. `~` is expanded.
	ConfigDirectory string `mapstructure:"config_directory"`
	// CallTimeout bounds a single CLI invocation. Zero means invocations are only
	// bounded by the caller's context.
	CallTimeout time.Duration `mapstructure:"call_timeout"`
}

func (cfg *ClientConfiguration) Validate() error {
	// Validate embedded structures
	err := config.ValidateEmbedded(cfg)
	if err != nil {
		return err
	}
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Binary, validation.Required),
		validation.Field(&cfg.CallTimeout, validation.Min(time.Duration(0))),
	)
}

// DefaultClientConfiguration returns a configuration pointing at a `directory-admin`
// executable found through PATH.
func DefaultClientConfiguration() *ClientConfiguration {
	return &ClientConfiguration{
		Binary:      "directory-admin",
		CallTimeout: 5 * time.Minute,
	}
}
