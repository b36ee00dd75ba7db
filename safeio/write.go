/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package safeio

import (
	"context"
	"io"

	"github.com/dolmen-go/contextio"
)

// WriteString writes a string to dst similarly to io.WriteString but stops when the
// context ends.
func WriteString(ctx context.Context, dst io.Writer, s string) (n int, err error) {
	n, err = io.WriteString(ContextualWriter(ctx, dst), s)
	err = ConvertIOError(err)
	return
}

// ContextualWriter returns a writer which is context aware.
// Context state is checked BEFORE every Write.
func ContextualWriter(ctx context.Context, writer io.Writer) io.Writer {
	return &contextualCopier{inner: contextio.NewWriter(ctx, writer)}
}

type contextualCopier struct {
	inner io.Writer
}

func (c *contextualCopier) Write(p []byte) (n int, err error) {
	n, err = c.inner.Write(p)
	err = ConvertIOError(err)
	return
}

func (c *contextualCopier) ReadFrom(r io.Reader) (int64, error) {
	if reader, ok := c.inner.(io.ReaderFrom); ok {
		copied, err := reader.ReadFrom(r)
		return copied, ConvertIOError(err)
	}
	return safeCopy(c.inner, r, io.Copy)
}
