/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package safecast provides saturating numeric conversions: values outside the range of the
// destination type are clamped to the closest boundary instead of wrapping around. It is used
// wherever externally supplied counts and sizes (retry attempts, buffer sizes, exit codes)
// cross a signedness or width boundary.
package safecast

import "math"

// ISignedInteger is an alias for all signed integers: int, int8, int16, int32, and int64 types.
type ISignedInteger interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// IUnsignedInteger is an alias for all unsigned integers: uint, uint8, uint16, uint32, and uint64 types.
type IUnsignedInteger interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IInteger is an alias for all unsigned and signed integers.
type IInteger interface {
	ISignedInteger | IUnsignedInteger
}

// IFloat is an alias for the float32 and float64 types.
type IFloat interface {
	~float32 | ~float64
}

// IConvertable is an alias for everything that can be converted.
type IConvertable interface {
	IInteger | IFloat
}

// ToInt attempts to convert any [IConvertable] value to an int.
// If the conversion results in a value outside the range of an int,
// the closest boundary value will be returned.
func ToInt[C IConvertable](i C) int {
	if lessThanLowerBoundary(i, math.MinInt) {
		return math.MinInt
	}
	if greaterThanUpperBoundary(i, math.MaxInt) {
		return math.MaxInt
	}
	return int(i)
}

// ToUint attempts to convert any [IConvertable] value to an uint.
// If the conversion results in a value outside the range of an uint,
// the closest boundary value will be returned.
func ToUint[C IConvertable](i C) uint {
	if lessThanLowerBoundary(i, uint(0)) {
		return 0
	}
	if greaterThanUpperBoundary(i, uint(math.MaxUint)) {
		return math.MaxUint
	}
	return uint(i)
}

// ToInt32 attempts to convert any [IConvertable] value to an int32.
// If the conversion results in a value outside the range of an int32,
// the closest boundary value will be returned.
func ToInt32[C IConvertable](i C) int32 {
	if lessThanLowerBoundary(i, math.MinInt32) {
		return math.MinInt32
	}
	if greaterThanUpperBoundary(i, math.MaxInt32) {
		return math.MaxInt32
	}
	return int32(i)
}

// ToInt64 attempts to convert any [IConvertable] value to an int64.
// If the conversion results in a value outside the range of an int64,
// the closest boundary value will be returned.
func ToInt64[C IConvertable](i C) int64 {
	if lessThanLowerBoundary(i, math.MinInt64) {
		return math.MinInt64
	}
	if greaterThanUpperBoundary(i, math.MaxInt64) {
		return math.MaxInt64
	}
	return int64(i)
}

// ToUint64 attempts to convert any [IConvertable] value to an uint64.
// If the conversion results in a value outside the range of an uint64,
// the closest boundary value will be returned.
func ToUint64[C IConvertable](i C) uint64 {
	if lessThanLowerBoundary(i, uint64(0)) {
		return 0
	}
	if greaterThanUpperBoundary(i, uint64(math.MaxUint64)) {
		return math.MaxUint64
	}
	return uint64(i)
}

func greaterThanUpperBoundary[C1 IConvertable, C2 IConvertable](value C1, upperBoundary C2) (greater bool) {
	if value <= 0 {
		return
	}
	switch f := any(value).(type) {
	case float64:
		greater = f >= float64(upperBoundary)
	case float32:
		greater = float64(f) >= float64(upperBoundary)
	default:
		// for all other integer types, it fits in an uint64 without overflow as we know value is positive.
		greater = uint64(value) > uint64(upperBoundary)
	}
	return
}

func lessThanLowerBoundary[T IConvertable, T2 IConvertable](value T, boundary T2) (lower bool) {
	if value >= 0 {
		return
	}
	switch f := any(value).(type) {
	case float64:
		lower = f <= float64(boundary)
	case float32:
		lower = float64(f) <= float64(boundary)
	default:
		lower = int64(value) < int64(boundary)
	}
	return
}
