package errortest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
)

// AssertError asserts that err matches at least one of expectedErrors in the sense of
// commonerrors.Any.
func AssertError(t *testing.T, err error, expectedErrors ...error) bool {
	t.Helper()
	if !commonerrors.Any(err, expectedErrors...) {
		return assert.Fail(t, fmt.Sprintf("Failed error assertion:\n actual: %v\n expected: %+v", err, expectedErrors))
	}
	return true
}

// AssertErrorDescription asserts that the description of err corresponds to one of
// expectedErrorDescriptions in the sense of commonerrors.CorrespondTo.
func AssertErrorDescription(t *testing.T, err error, expectedErrorDescriptions ...string) bool {
	t.Helper()
	if !commonerrors.CorrespondTo(err, expectedErrorDescriptions...) {
		return assert.Fail(t, fmt.Sprintf("Failed error description assertion:\n actual: %v\n expected: %+v", err, expectedErrorDescriptions))
	}
	return true
}

// RequireError is AssertError but stops the test on mismatch.
func RequireError(t *testing.T, err error, expectedErrors ...error) {
	t.Helper()
	if !AssertError(t, err, expectedErrors...) {
		t.FailNow()
	}
}

// RequireErrorDescription is AssertErrorDescription but stops the test on mismatch.
func RequireErrorDescription(t *testing.T, err error, expectedErrorDescriptions ...string) {
	t.Helper()
	if !AssertErrorDescription(t, err, expectedErrorDescriptions...) {
		t.FailNow()
	}
}
