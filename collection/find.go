/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package collection provides helpers over slices, sets and separated lists.
package collection

import (
	"slices"
	"strings"
)

// Find searches for val in the slice pointed to by slice.
// It returns the index of the first match and true when found.
// If slice is nil or val is not present, it returns -1 and false.
func Find(slice *[]string, val string) (int, bool) {
	if slice == nil {
		return -1, false
	}
	return FindInSlice(true, *slice, val)
}

// FindInSlice checks whether any of the provided val arguments exist in
// slice. It returns the index of the first match and true if found.
// When strict is true, matching uses exact string equality. When strict
// is false, matching is case-insensitive and ignores surrounding
// whitespace.
//
// If no values are provided or the slice is empty, the function returns
// -1 and false.
func FindInSlice(strict bool, slice []string, val ...string) (int, bool) {
	if len(val) == 0 || len(slice) == 0 {
		return -1, false
	}
	if strict && len(val) == 1 {
		idx := slices.Index(slice, val[0])
		return idx, idx >= 0
	}

	normalise := func(s string) string {
		if strict {
			return s
		}
		return strings.ToLower(strings.TrimSpace(s))
	}
	// The earliest occurrence wins when normalisation collapses entries.
	positions := make(map[string]int, len(slice))
	for i := range slice {
		key := normalise(slice[i])
		if _, found := positions[key]; !found {
			positions[key] = i
		}
	}
	for i := range val {
		if idx, found := positions[normalise(val[i])]; found {
			return idx, true
		}
	}
	return -1, false
}
