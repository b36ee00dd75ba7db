/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the error taxonomy used across the tool: a flat list of
// sentinel errors which any returned error is expected to wrap, alongside helpers to
// create, wrap, compare and convert errors independently of where they came from.
package commonerrors

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	ErrNotImplemented     = errors.New("not implemented")
	ErrNoLogger           = errors.New("missing logger")
	ErrNoLoggerSource     = errors.New("missing logger source")
	ErrNoLogSource        = errors.New("missing log source")
	ErrUndefined          = errors.New("undefined")
	ErrInvalidDestination = errors.New("invalid destination")
	ErrTimeout            = errors.New("timeout")
	ErrLocked             = errors.New("locked")
	ErrNotFound           = errors.New("not found")
	ErrUnsupported        = errors.New("unsupported")
	ErrUnavailable        = errors.New("unavailable")
	ErrUnknown            = errors.New("unknown")
	ErrInvalid            = errors.New("invalid")
	ErrConflict           = errors.New("conflict")
	ErrMarshalling        = errors.New("unserialisable")
	ErrCancelled          = errors.New("cancelled")
	ErrEmpty              = errors.New("empty")
	ErrExists             = errors.New("already exists")
	ErrUnexpected         = errors.New("unexpected")
	ErrTooLarge           = errors.New("too large")
	ErrForbidden          = errors.New("forbidden")
	ErrTooManyRequests    = errors.New("too many requests")
	ErrCondition          = errors.New("failed condition")
	ErrEOF                = errors.New("end of file")
	ErrFailed             = errors.New("failed")
)

// listed in deserialisation order so that more specific errors are matched first.
var allCommonErrors = []error{
	ErrNotImplemented,
	ErrNoLogger,
	ErrNoLoggerSource,
	ErrNoLogSource,
	ErrUndefined,
	ErrInvalidDestination,
	ErrTimeout,
	ErrLocked,
	ErrNotFound,
	ErrUnsupported,
	ErrUnavailable,
	ErrUnknown,
	ErrInvalid,
	ErrConflict,
	ErrMarshalling,
	ErrCancelled,
	ErrEmpty,
	ErrExists,
	ErrUnexpected,
	ErrTooLarge,
	ErrForbidden,
	ErrTooManyRequests,
	ErrCondition,
	ErrEOF,
	ErrFailed,
}

// Any states whether the target error corresponds to any of the errors in err.
// The comparison is performed both ways so that wrapped errors are matched too.
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None states whether the target error corresponds to none of the errors in err.
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// IsCommonError states whether an error is one of the common errors defined in this package or not.
func IsCommonError(target error) bool {
	return Any(target, allCommonErrors...)
}

// New creates a new common error with a specific reason, following the
// `error type: reason` convention.
func New(commonError error, reason string) error {
	return fmt.Errorf("%w: %v", commonError, reason)
}

// Newf creates a new common error with a specific reason, following the
// `error type: reason` convention.
func Newf(commonError error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %v", commonError, fmt.Sprintf(format, args...))
}

// WrapError wraps an error into a common error type with an optional reason.
func WrapError(commonError error, wrappedError error, reason string) error {
	if IsEmpty(wrappedError) {
		return New(commonError, reason)
	}
	if strings.TrimSpace(reason) == "" {
		return New(commonError, wrappedError.Error())
	}
	return fmt.Errorf("%w: %v: %v", commonError, reason, wrappedError.Error())
}

// WrapErrorf wraps an error into a common error type with an optional formatted reason.
func WrapErrorf(commonError error, wrappedError error, format string, args ...interface{}) error {
	return WrapError(commonError, wrappedError, fmt.Sprintf(format, args...))
}

// WrapIfNotCommonError wraps an error into the default common error type unless it already
// corresponds to one of the common errors, in which case it is returned unchanged in type.
func WrapIfNotCommonError(defaultError error, wrappedError error, reason string) error {
	if IsEmpty(wrappedError) {
		return New(defaultError, reason)
	}
	if IsCommonError(wrappedError) {
		return wrappedError
	}
	return WrapError(defaultError, wrappedError, reason)
}

// WrapIfNotCommonErrorf is similar to WrapIfNotCommonError but with a formatted reason.
func WrapIfNotCommonErrorf(defaultError error, wrappedError error, format string, args ...interface{}) error {
	return WrapIfNotCommonError(defaultError, wrappedError, fmt.Sprintf(format, args...))
}

// UndefinedVariable returns an ErrUndefined error stating the name of the undefined variable.
func UndefinedVariable(variableName string) error {
	return Newf(ErrUndefined, "variable `%v` is undefined", variableName)
}

// UndefinedParameter returns an ErrUndefined error about a missing parameter.
func UndefinedParameter(reason string) error {
	return Newf(ErrUndefined, "parameter is undefined: %v", reason)
}

// CorrespondTo states whether the target error corresponds to one of the
// error descriptions supplied. The comparison is case-insensitive.
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	errorDescription := strings.ToLower(target.Error())
	for i := range description {
		desc := strings.ToLower(description[i])
		if errorDescription == desc || strings.Contains(errorDescription, desc) {
			return true
		}
	}
	return false
}

// Ignore returns nil if the target error corresponds to any of the errors to ignore.
func Ignore(target error, ignore ...error) error {
	if Any(target, ignore...) {
		return nil
	}
	return target
}

// IsEmpty states whether an error is empty or not i.e. nil or with an empty description.
func IsEmpty(err error) bool {
	if err == nil {
		return true
	}
	value := reflect.ValueOf(err)
	switch value.Kind() {
	case reflect.Ptr, reflect.Interface:
		if value.IsNil() {
			return true
		}
	}
	return strings.TrimSpace(err.Error()) == ""
}

// Join joins errors together similarly to errors.Join but discards any empty error.
func Join(errs ...error) error {
	nonEmptyErrs := make([]error, 0, len(errs))
	for i := range errs {
		if !IsEmpty(errs[i]) {
			nonEmptyErrs = append(nonEmptyErrs, errs[i])
		}
	}
	return errors.Join(nonEmptyErrs...)
}

// ConvertContextError converts a context error into one of the common errors.
func ConvertContextError(err error) error {
	if err == nil {
		return nil
	}
	if Any(err, context.Canceled) {
		return ErrCancelled
	}
	if Any(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	return err
}

// ErrFromContext returns the error associated with a context if any, converted into a common error.
func ErrFromContext(ctx context.Context) error {
	return ConvertContextError(ctx.Err())
}

func deserialiseCommonError(errStr string) (bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(errStr))
	for i := range allCommonErrors {
		if allCommonErrors[i].Error() == trimmed {
			return true, allCommonErrors[i]
		}
	}
	return false, nil
}
