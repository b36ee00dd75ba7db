/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package signature

import (
	"context"
)

//go:generate mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/ARM-software/identity-lifecycle/$GOPACKAGE IRenderer

// IRenderer produces the HTML signature file for an account.
type IRenderer interface {
	// Render writes the signature described by data and returns the path of the
	// rendered file.
	Render(ctx context.Context, data *Data) (path string, err error)
}
