/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package signature

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Configuration describes where signatures are rendered from and to.
type Configuration struct {
	// TemplateFile overrides the built in signature template with an HTML template
	// document when set. `~` is expanded.
	TemplateFile string `mapstructure:"template_file"`
	// OutputDirectory receives the rendered signature files. `~` is expanded.
	OutputDirectory string `mapstructure:"output_directory"`
}

func (cfg *Configuration) Validate() error {
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.OutputDirectory, validation.Required),
	)
}

// DefaultConfiguration uses the built in template and renders under the tool's home
// directory.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		OutputDirectory: "~/.identity-lifecycle/signatures",
	}
}
