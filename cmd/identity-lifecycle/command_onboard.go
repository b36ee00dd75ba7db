/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ARM-software/identity-lifecycle/directory"
	"github.com/ARM-software/identity-lifecycle/filesystem"
	"github.com/ARM-software/identity-lifecycle/identity"
	"github.com/ARM-software/identity-lifecycle/onboarding"
	"github.com/ARM-software/identity-lifecycle/signature"
)

var (
	onboardManager     string
	onboardDisplayName string
)

var onboardCmd = &cobra.Command{
	Use:   "onboard <subject>",
	Short: "Onboard a joiner",
	Long: "Onboard a joiner: create their directory account and set their email signature. " +
		"An address which already exists is reported as already onboarded, not as a failure.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOnboard(cmd.Context(), args[0])
	},
}

func registerOnboardCommand(root *cobra.Command) {
	root.AddCommand(onboardCmd)

	onboardCmd.Flags().StringVar(&onboardManager, "manager", "", "Manager address recorded for the new account")
	onboardCmd.Flags().StringVar(&onboardDisplayName, "display-name", "", "Display name of the new account; defaults to the local part of the address")
}

func runOnboard(ctx context.Context, subjectAddress string) (err error) {
	cfg, err := loadToolConfiguration()
	if err != nil {
		return
	}
	loggers, err := newLoggers(cfg)
	if err != nil {
		return
	}
	defer func() { _ = loggers.Close() }()
	logRunEnvironment(loggers)
	subject, err := identity.NewSubject(subjectAddress, onboardManager)
	if err != nil {
		return
	}
	client, err := directory.NewClient(loggers, &cfg.Directory)
	if err != nil {
		return
	}
	renderer, err := signature.NewRenderer(loggers, filesystem.NewStandardFileSystem(), &cfg.Signature)
	if err != nil {
		return
	}
	flow, err := onboarding.New(loggers, client, renderer, &cfg.Onboarding)
	if err != nil {
		return
	}
	report, err := flow.Run(ctx, subject, onboardDisplayName)
	logReport(loggers, report)
	return
}
