/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package filesystem

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/commonerrors/errortest"
	"github.com/ARM-software/identity-lifecycle/hashing"
)

func TestFileHash(t *testing.T) {
	for _, fsType := range FileSystemTypes {
		t.Run(fmt.Sprintf("%v", fsType), func(t *testing.T) {
			fs := NewFs(fsType)
			tmpDir, err := fs.TempDirInTempDir("test-filehash-")
			require.NoError(t, err)
			defer func() { _ = fs.Rm(tmpDir) }()

			testFilePath := filepath.Join(tmpDir, "blob.txt")
			require.NoError(t, fs.WriteFile(testFilePath, []byte("hello world"), 0755))

			tests := []struct {
				Type string
				Hash string
			}{
				{
					Type: hashing.HashMd5,
					Hash: "5EB63BBBE01EEED093CB22BB8F5ACDC3",
				},
				{
					Type: hashing.HashSha256,
					Hash: "B94D27B9934D3E08A52E52D7DA7DABFAC484EFE37A5380EE9088F7ACE2EFCDE9",
				},
			}
			for i := range tests {
				test := tests[i]
				t.Run(fmt.Sprintf("Hash %v", test.Type), func(t *testing.T) {
					hasher, err := NewFileHash(test.Type)
					require.NoError(t, err)
					hash, err := hasher.CalculateFile(fs, testFilePath)
					require.NoError(t, err)
					assert.Equal(t, strings.ToLower(test.Hash), strings.ToLower(hash))
					hash, err = hasher.CalculateFileWithContext(context.Background(), fs, testFilePath)
					require.NoError(t, err)
					assert.Equal(t, strings.ToLower(test.Hash), strings.ToLower(hash))
				})
			}
		})
	}
}

func TestFileHashEmptyFile(t *testing.T) {
	fs := NewFs(InMemoryFS)
	tmpDir, err := fs.TempDirInTempDir("test-filehash-")
	require.NoError(t, err)
	defer func() { _ = fs.Rm(tmpDir) }()

	emptyFilePath := filepath.Join(tmpDir, "empty.bin")
	require.NoError(t, fs.Touch(emptyFilePath))

	hasher, err := NewFileHash(hashing.HashXXHash)
	require.NoError(t, err)
	hash, err := hasher.CalculateFile(fs, emptyFilePath)
	require.NoError(t, err)
	// xxhash64 of zero-length input with the default seed.
	assert.Equal(t, "ef46db3751d8e999", hash)
}

func TestFileHashErrors(t *testing.T) {
	fs := NewFs(InMemoryFS)
	tmpDir, err := fs.TempDirInTempDir("test-filehash-")
	require.NoError(t, err)
	defer func() { _ = fs.Rm(tmpDir) }()

	_, err = NewFileHash("SHA512")
	errortest.AssertError(t, err, commonerrors.ErrNotFound)

	hasher, err := NewFileHash(hashing.HashSha256)
	require.NoError(t, err)

	_, err = hasher.CalculateFile(fs, tmpDir)
	errortest.AssertError(t, err, commonerrors.ErrInvalid)

	testFilePath := filepath.Join(tmpDir, "blob.txt")
	require.NoError(t, fs.WriteFile(testFilePath, []byte("hello world"), 0755))
	cancelCtx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = hasher.CalculateFileWithContext(cancelCtx, fs, testFilePath)
	errortest.AssertError(t, err, commonerrors.ErrCancelled, commonerrors.ErrTimeout)
}
