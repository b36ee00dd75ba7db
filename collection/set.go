/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package collection

import (
	mapset "github.com/deckarep/golang-set/v2"
)

//
// Set operations
//

func toSet[T comparable](slice []T) mapset.Set[T] {
	set := mapset.NewSet[T]()
	_ = set.Append(slice...)
	return set
}

// UniqueEntries returns a slice containing the distinct values from the
// provided slice. The order of elements is not guaranteed.
func UniqueEntries[T comparable](slice []T) []T {
	return toSet(slice).ToSlice()
}

// Union returns the union of slice1 and slice2, containing only unique
// values. The order of elements is not guaranteed.
func Union[T comparable](slice1, slice2 []T) []T {
	return toSet(slice1).Union(toSet(slice2)).ToSlice()
}

// Intersection returns the distinct values common to slice1 and slice2.
// The order of elements is not guaranteed.
func Intersection[T comparable](slice1, slice2 []T) []T {
	return toSet(slice1).Intersect(toSet(slice2)).ToSlice()
}

// Difference returns distinct values present in slice1 but not in slice2.
func Difference[T comparable](slice1, slice2 []T) []T {
	return toSet(slice1).Difference(toSet(slice2)).ToSlice()
}
