/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package safeio provides functions similar to utilities in built-in io package but with safety nets.
package safeio

import (
	"context"
	"io"

	"github.com/ARM-software/identity-lifecycle/scheduling"
)

// CopyDataWithContext copies from src to dst similarly to io.Copy but stops when the
// context ends.
func CopyDataWithContext(ctx context.Context, src io.Reader, dst io.Writer) (copied int64, err error) {
	return copyDataWithContext(ctx, src, dst, io.Copy)
}

// CopyNWithContext copies n bytes from src to dst similarly to io.CopyN but stops when
// the context ends.
func CopyNWithContext(ctx context.Context, src io.Reader, dst io.Writer, n int64) (copied int64, err error) {
	return copyDataWithContext(ctx, src, dst, func(dst io.Writer, src io.Reader) (int64, error) { return io.CopyN(dst, src, n) })
}

func copyDataWithContext(ctx context.Context, src io.Reader, dst io.Writer, transfer func(io.Writer, io.Reader) (int64, error)) (copied int64, err error) {
	if err = scheduling.DetermineContextError(ctx); err != nil {
		return
	}
	return safeCopy(ContextualWriter(ctx, dst), NewContextualReader(ctx, src), transfer)
}

func safeCopy(w io.Writer, r io.Reader, transfer func(io.Writer, io.Reader) (int64, error)) (int64, error) {
	copied, err := transfer(w, r)
	return copied, ConvertIOError(err)
}
