/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package retry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRetryPolicyConfigurations(t *testing.T) {
	tests := []struct {
		name   string
		policy *RetryPolicyConfiguration
	}{
		{name: "no retry", policy: DefaultNoRetryPolicyConfiguration()},
		{name: "basic", policy: DefaultBasicRetryPolicyConfiguration()},
		{name: "exponential backoff", policy: DefaultExponentialBackoffRetryPolicyConfiguration()},
		{name: "linear backoff", policy: DefaultLinearBackoffRetryPolicyConfiguration()},
		{name: "directory write", policy: DefaultDirectoryWritePolicyConfiguration()},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			require.NoError(t, test.policy.Validate())
		})
	}
}

func TestDirectoryWriteRetryConfiguration(t *testing.T) {
	configTest := DefaultDirectoryWritePolicyConfiguration()
	require.NoError(t, configTest.Validate())
	assert.Equal(t, 5, configTest.RetryMax)
	assert.Equal(t, 10*time.Second, configTest.RetryWaitMin)
	assert.True(t, configTest.BackOffEnabled)
	assert.False(t, configTest.LinearBackOffEnabled)
}

func TestRetryPolicyConfigurationInvalid(t *testing.T) {
	// Backoff without a wait ceiling could grow the delay unbounded.
	backoffWithoutCeiling := &RetryPolicyConfiguration{
		Enabled:        true,
		RetryMax:       4,
		BackOffEnabled: true,
	}
	require.Error(t, backoffWithoutCeiling.Validate())

	negativeAttempts := DefaultBasicRetryPolicyConfiguration()
	negativeAttempts.RetryMax = -1
	require.Error(t, negativeAttempts.Validate())
}
