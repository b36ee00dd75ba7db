/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package hashing calculates file and content hashes.
package hashing

import (
	"context"
	"crypto/md5" //nolint:gosec // only used for non cryptographic checksums
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
	"strings"

	"github.com/OneOfOne/xxhash"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/safeio"
)

const (
	HashMd5    = "MD5"
	HashSha256 = "SHA256"
	HashXXHash = "xxhash" // https://github.com/OneOfOne/xxhash
)

type hashingAlgo struct {
	Hash hash.Hash
	Type string
}

func (h *hashingAlgo) Calculate(r io.Reader) (hashN string, err error) {
	if r == nil {
		err = commonerrors.ErrUndefined
		return
	}
	_, err = io.Copy(h.Hash, r)
	if err != nil {
		return
	}
	hashN = hex.EncodeToString(h.Hash.Sum(nil))
	h.Hash.Reset()
	return
}

func (h *hashingAlgo) CalculateWithContext(ctx context.Context, r io.Reader) (hashN string, err error) {
	if r == nil {
		err = commonerrors.ErrUndefined
		return
	}
	hashN, err = h.Calculate(safeio.NewContextualReader(ctx, r))
	err = safeio.ConvertIOError(err)
	return
}

func (h *hashingAlgo) GetType() string {
	return h.Type
}

func NewHashingAlgorithm(htype string) (IHash, error) {
	var hash hash.Hash
	switch htype {
	case HashMd5:
		hash = md5.New() //nolint:gosec // only used for non cryptographic checksums
	case HashSha256:
		hash = sha256.New()
	case HashXXHash:
		hash = xxhash.New64()
	}

	if hash == nil {
		return nil, commonerrors.ErrNotFound
	}
	return &hashingAlgo{
		Hash: hash,
		Type: htype,
	}, nil
}

func CalculateMD5Hash(text string) string {
	hashing, err := NewHashingAlgorithm(HashMd5)
	if err != nil {
		return ""
	}
	hash, err := hashing.Calculate(strings.NewReader(text))
	if err != nil {
		return ""
	}
	return hash
}

// CalculateHash calculates the hash of some text using the requested hashing algorithm.
func CalculateHash(text, htype string) (string, error) {
	hashing, err := NewHashingAlgorithm(htype)
	if err != nil {
		return "", err
	}
	return hashing.Calculate(strings.NewReader(text))
}
