package validation

import (
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/commonerrors/errortest"
)

func TestIsEmailAddress(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		isValid bool
	}{
		{
			name:    "plain address",
			value:   "jane.doe@example.com",
			isValid: true,
		},
		{
			name:    "short domain",
			value:   "u@co",
			isValid: true,
		},
		{
			name:    "generated address",
			value:   faker.Email(),
			isValid: true,
		},
		{
			name:    "empty is left to Required",
			value:   "",
			isValid: true,
		},
		{
			name:  "no domain",
			value: "jane.doe",
		},
		{
			name:  "spaces",
			value: "jane doe@example.com",
		},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			err := IsEmailAddress().Validate(test.value)
			if test.isValid {
				assert.NoError(t, err)
			} else {
				errortest.AssertError(t, err, commonerrors.ErrInvalid)
			}
		})
	}
}

func TestIsEmailAddressUnsupportedType(t *testing.T) {
	err := IsEmailAddress().Validate(47)
	errortest.AssertError(t, err, commonerrors.ErrMarshalling)
}

func TestIsPort(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		isValid bool
	}{
		{
			name:    "int",
			value:   8080,
			isValid: true,
		},
		{
			name:    "uint",
			value:   uint16(443),
			isValid: true,
		},
		{
			name:    "string",
			value:   "65535",
			isValid: true,
		},
		{
			name:  "out of range",
			value: 65536,
		},
		{
			name:  "not a number",
			value: "http",
		},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			err := IsPort().Validate(test.value)
			if test.isValid {
				assert.NoError(t, err)
			} else {
				errortest.AssertError(t, err, commonerrors.ErrInvalid)
			}
		})
	}
}
