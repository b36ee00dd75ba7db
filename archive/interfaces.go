/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package archive

import (
	"context"

	"github.com/ARM-software/identity-lifecycle/identity"
)

//go:generate mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/ARM-software/identity-lifecycle/$GOPACKAGE IArchiver

// IArchiver runs the export/archive pipeline for a subject.
type IArchiver interface {
	// Run launches a bulk export covering account, watches the job to completion,
	// downloads the artifacts into staging, verifies them against the manifest and
	// uploads them to storage. subject keys the ledgers and the matter name; account
	// is the directory address the export covers, which differs from subject once the
	// account has been renamed.
	Run(ctx context.Context, subject, account identity.Address) error
	// HasCompleted states whether a previous run uploaded the full artifact set for
	// subject.
	HasCompleted(subject identity.Address) (bool, error)
}
