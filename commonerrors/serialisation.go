/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package commonerrors

import (
	"errors"
	"strings"
)

const (
	TypeReasonErrorSeparator = ':'
	MultipleErrorSeparator   = '\n'
)

// SerialiseError marshals an error following the `error type: reason` convention so that it
// can be persisted (e.g. in a failure ledger) and deserialised back into a common error later.
// Joined errors are serialised one per line.
func SerialiseError(err error) ([]byte, error) {
	if IsEmpty(err) {
		return nil, nil
	}
	var lines []string
	for _, sub := range flattenError(err) {
		line := strings.TrimSpace(sub.Error())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, New(ErrMarshalling, "error with no description")
	}
	return []byte(strings.Join(lines, string(MultipleErrorSeparator))), nil
}

// DeserialiseError unmarshals text into an error, determining the error type from the
// `error type: reason` convention when the type corresponds to a common error. Multiple
// lines are deserialised into a joined error.
func DeserialiseError(text []byte) (deserialisedError error, err error) {
	if len(text) == 0 {
		return
	}
	var errs []error
	for _, line := range strings.Split(string(text), string(MultipleErrorSeparator)) {
		lineErr := deserialiseErrorLine(line)
		if lineErr != nil {
			errs = append(errs, lineErr)
		}
	}
	if len(errs) == 0 {
		err = ErrMarshalling
		return
	}
	deserialisedError = Join(errs...)
	return
}

func deserialiseErrorLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	elems := strings.Split(line, string(TypeReasonErrorSeparator))
	found, commonErr := deserialiseCommonError(elems[0])
	if !found {
		commonErr = errors.New(strings.TrimSpace(elems[0]))
	}
	if len(elems) < 2 {
		return commonErr
	}
	reasonElems := make([]string, 0, len(elems)-1)
	for i := 1; i < len(elems); i++ {
		reasonElems = append(reasonElems, strings.TrimSpace(elems[i]))
	}
	reason := strings.Join(reasonElems, string(TypeReasonErrorSeparator)+" ")
	if reason == "" {
		return commonErr
	}
	return New(commonErr, reason)
}

func flattenError(err error) []error {
	if IsEmpty(err) {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var flattened []error
		for _, sub := range joined.Unwrap() {
			flattened = append(flattened, flattenError(sub)...)
		}
		return flattened
	}
	return []error{err}
}
