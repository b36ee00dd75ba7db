/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package safeio

import (
	"bytes"
	"context"
	"io"

	"github.com/dolmen-go/contextio"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/scheduling"
)

// ReadAll reads the whole content of src similarly to io.ReadAll but stops when the
// context ends.
func ReadAll(ctx context.Context, src io.Reader) ([]byte, error) {
	return ReadAtMost(ctx, src, -1, -1)
}

// ReadAtMost reads at most max bytes from src. A negative max reads src in its
// entirety. A negative bufferCapacity defaults the initial buffer to max, or to a
// minimal read buffer when max is itself negative.
func ReadAtMost(ctx context.Context, src io.Reader, max int64, bufferCapacity int64) (content []byte, err error) {
	err = scheduling.DetermineContextError(ctx)
	if err != nil {
		return
	}
	if bufferCapacity < 0 {
		bufferCapacity = max
		if max < 0 {
			bufferCapacity = bytes.MinRead
		}
	}

	buffer := bytes.NewBuffer(make([]byte, 0, bufferCapacity))
	// Growing past the buffer limit makes bytes panic with ErrTooLarge. Turn that one
	// into an error; any other panic stays a panic.
	defer func() {
		e := recover()
		if e == nil {
			return
		}
		panicErr, ok := e.(error)
		if !ok || panicErr != bytes.ErrTooLarge {
			panic(e)
		}
		err = commonerrors.New(commonerrors.ErrTooLarge, panicErr.Error())
	}()
	source := src
	if max >= 0 {
		source = io.LimitReader(src, max)
	}
	count, err := buffer.ReadFrom(NewContextualReader(ctx, source))
	err = ConvertIOError(err)
	if err != nil {
		return
	}
	if count == 0 {
		err = commonerrors.New(commonerrors.ErrEmpty, "no bytes were read")
	}
	content = buffer.Bytes()
	return
}

// NewContextualReader returns a reader which is context aware.
// Context state is checked BEFORE every Read.
func NewContextualReader(ctx context.Context, reader io.Reader) io.Reader {
	return contextio.NewReader(ctx, reader)
}
