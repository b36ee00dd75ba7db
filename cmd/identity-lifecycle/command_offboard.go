/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ARM-software/identity-lifecycle/archive"
	"github.com/ARM-software/identity-lifecycle/directory"
	"github.com/ARM-software/identity-lifecycle/filesystem"
	"github.com/ARM-software/identity-lifecycle/identity"
	"github.com/ARM-software/identity-lifecycle/offboarding"
)

var offboardCmd = &cobra.Command{
	Use:   "offboard <subject> <manager>",
	Short: "Offboard a leaver",
	Long: "Offboard a leaver: move their aliases to their manager, suspend and rename their account, " +
		"park a placeholder group at their address, archive their data, transfer their drive and " +
		"calendar to their manager and delete the account. The run exits 0 only when it completed; " +
		"a rolled back or aborted run exits 1 and can be relaunched safely.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOffboard(cmd.Context(), args[0], args[1])
	},
}

func registerOffboardCommand(root *cobra.Command) {
	root.AddCommand(offboardCmd)
}

func runOffboard(ctx context.Context, subjectAddress, managerAddress string) (err error) {
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
	subject, err := identity.NewSubject(subjectAddress, managerAddress)
	if err != nil {
		return
	}
	client, err := directory.NewClient(loggers, &cfg.Directory)
	if err != nil {
		return
	}
	archiver, err := archive.NewArchiver(loggers, client, filesystem.NewStandardFileSystem(), &cfg.Archive)
	if err != nil {
		return
	}
	flow, err := offboarding.New(loggers, client, archiver, &cfg.Offboarding)
	if err != nil {
		return
	}
	report, err := flow.Run(ctx, subject)
	logReport(loggers, report)
	return
}
