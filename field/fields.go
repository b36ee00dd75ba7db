/*
 * Copyright (C) 2020-2023 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// package field provides utilities to set optional structure fields. It was inspired by the kubernetes package https://pkg.go.dev/k8s.io/utils/pointer.
package field

import "time"

// ToOptionalString returns a pointer to a string.
func ToOptionalString(s string) *string {
	return &s
}

// OptionalString dereferences ptr, falling back to defaultValue when unset.
func OptionalString(ptr *string, defaultValue string) string {
	if ptr == nil {
		return defaultValue
	}
	return *ptr
}

// ToOptionalBool returns a pointer to a bool.
func ToOptionalBool(b bool) *bool {
	return &b
}

// OptionalBool dereferences ptr, falling back to defaultValue when unset.
func OptionalBool(ptr *bool, defaultValue bool) bool {
	if ptr == nil {
		return defaultValue
	}
	return *ptr
}

// ToOptionalInt returns a pointer to an int.
func ToOptionalInt(i int) *int {
	return &i
}

// OptionalInt dereferences ptr, falling back to defaultValue when unset.
func OptionalInt(ptr *int, defaultValue int) int {
	if ptr == nil {
		return defaultValue
	}
	return *ptr
}

// ToOptionalDuration returns a pointer to a Duration.
func ToOptionalDuration(d time.Duration) *time.Duration {
	return &d
}

// OptionalDuration dereferences ptr, falling back to defaultValue when unset.
func OptionalDuration(ptr *time.Duration, defaultValue time.Duration) time.Duration {
	if ptr == nil {
		return defaultValue
	}
	return *ptr
}

// ToOptionalTime returns a pointer to a Time.
func ToOptionalTime(t time.Time) *time.Time {
	return &t
}

// OptionalTime dereferences ptr, falling back to defaultValue when unset.
func OptionalTime(ptr *time.Time, defaultValue time.Time) time.Time {
	if ptr == nil {
		return defaultValue
	}
	return *ptr
}
