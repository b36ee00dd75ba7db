/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package offboarding_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ARM-software/identity-lifecycle/archive"
	"github.com/ARM-software/identity-lifecycle/asyncjob"
	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/commonerrors/errortest"
	"github.com/ARM-software/identity-lifecycle/directory"
	"github.com/ARM-software/identity-lifecycle/directory/directorytest"
	"github.com/ARM-software/identity-lifecycle/filesystem"
	"github.com/ARM-software/identity-lifecycle/identity"
	"github.com/ARM-software/identity-lifecycle/logs"
	"github.com/ARM-software/identity-lifecycle/offboarding"
	"github.com/ARM-software/identity-lifecycle/retry"
	"github.com/ARM-software/identity-lifecycle/saga"
)

const (
	testSubject = identity.Address("u@co")
	testManager = identity.Address("m@co")
	testRenamed = identity.Address("u@suspended.co")
)

func newTestConfiguration() *offboarding.Configuration {
	cfg := offboarding.DefaultConfiguration()
	cfg.PropagationWait = time.Millisecond
	cfg.DirectoryWriteRetry = retry.RetryPolicyConfiguration{
		Enabled:        true,
		RetryMax:       5,
		RetryWaitMin:   time.Millisecond,
		RetryWaitMax:   16 * time.Millisecond,
		BackOffEnabled: true,
	}
	return cfg
}

func newTestFlow(t *testing.T, cfg *offboarding.Configuration) (*directorytest.Fake, *offboarding.Flow, *logs.StringLoggers) {
	t.Helper()
	fake := directorytest.NewFake(filesystem.NewInMemoryFileSystem())
	loggers, err := logs.NewStringLogger("Test")
	require.NoError(t, err)
	archiveCfg := archive.DefaultConfiguration()
	archiveCfg.StagingDirectory = "/staging"
	archiveCfg.SuccessLedger = "/ledgers/successes.log"
	archiveCfg.FailureLedger = "/ledgers/failures.log"
	archiveCfg.Poller.Interval = time.Millisecond
	archiver, err := archive.NewArchiver(loggers, fake, fake.Filesystem(), archiveCfg)
	require.NoError(t, err)
	flow, err := offboarding.New(loggers, fake, archiver, cfg)
	require.NoError(t, err)
	return fake, flow, loggers
}

func newTestSubject(t *testing.T) *identity.Subject {
	t.Helper()
	subject, err := identity.NewSubject(testSubject.String(), testManager.String())
	require.NoError(t, err)
	return subject
}

func conflict() error {
	return commonerrors.Newf(commonerrors.ErrConflict, "address '%v' is still attached to the renamed account", testSubject)
}

func TestNewValidation(t *testing.T) {
	defer goleak.VerifyNone(t)
	fake := directorytest.NewFake(nil)
	loggers, err := logs.NewNoopLogger("Test")
	require.NoError(t, err)
	archiver, err := archive.NewArchiver(loggers, fake, fake.Filesystem(), archive.DefaultConfiguration())
	require.NoError(t, err)

	_, err = offboarding.New(nil, fake, archiver, offboarding.DefaultConfiguration())
	errortest.AssertError(t, err, commonerrors.ErrNoLogger)
	_, err = offboarding.New(loggers, nil, archiver, offboarding.DefaultConfiguration())
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
	_, err = offboarding.New(loggers, fake, nil, offboarding.DefaultConfiguration())
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
	_, err = offboarding.New(loggers, fake, archiver, nil)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
	invalid := offboarding.DefaultConfiguration()
	invalid.PropagationWait = -time.Second
	_, err = offboarding.New(loggers, fake, archiver, invalid)
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
}

func TestOffboardEndToEnd(t *testing.T) {
	defer goleak.VerifyNone(t)
	fake, flow, loggers := newTestFlow(t, newTestConfiguration())
	fake.AddUser(testSubject)
	fake.AddUser(testManager)
	fake.AddAlias("sales@co", testSubject)
	fake.AddAlias("ops@co", testSubject)
	fake.ScriptExportStatuses(asyncjob.StatusRunning, asyncjob.StatusCompleted)
	fake.ScriptExportArtifacts(map[string][]byte{
		"mail.mbox": []byte("From: u@co\n"),
		"drive.zip": []byte("PK archive"),
	})
	// The freshly released address stays reserved for a couple of probes, as renames
	// propagate lazily.
	fake.QueueFailure(directory.OpCreateGroup, conflict(), conflict())

	subject := newTestSubject(t)
	report, err := flow.Run(context.Background(), subject)
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, saga.StateCompleted, report.State)
	require.Len(t, report.Outcomes, 10)
	for i := range report.Outcomes {
		assert.Equal(t, saga.StepSucceeded, report.Outcomes[i].Status, report.Outcomes[i].Step)
		assert.False(t, report.Outcomes[i].SkippedAlreadyApplied, report.Outcomes[i].Step)
	}
	assert.Equal(t, identity.StateDeleted, subject.State)

	// The subject is gone under both addresses and the placeholder group squats the
	// original one, solely owned by the manager.
	assert.False(t, fake.HasUser(testSubject))
	assert.False(t, fake.HasUser(testRenamed))
	assert.True(t, fake.HasUser(testManager))
	assert.True(t, fake.HasGroup(testSubject))
	assert.Equal(t, []identity.Address{testManager}, fake.GroupOwners(testSubject))
	assert.ElementsMatch(t, []identity.Address{"sales@co", "ops@co"}, fake.UserAliases(testManager))

	transfers := fake.Transfers()
	require.Len(t, transfers, 2)
	assert.Equal(t, directory.TransferDrive, transfers[0].Kind)
	assert.Equal(t, directory.TransferCalendar, transfers[1].Kind)
	for i := range transfers {
		assert.Equal(t, testRenamed, transfers[i].From)
		assert.Equal(t, testManager, transfers[i].To)
	}

	// Two artifacts plus the manifest reached storage.
	assert.Equal(t, 1, fake.CallsFor(directory.OpLaunchBulkExport))
	assert.Equal(t, 3, fake.CallsFor(directory.OpUploadToStorage))

	// Both conflicts were retried under the directory write policy.
	assert.Equal(t, 3, fake.CallsFor(directory.OpCreateGroup))
	assert.Equal(t, 2, strings.Count(loggers.GetLogContent(), "step 'create-placeholder-group' failed (attempt #"))
}

func TestOffboardMovesOnlyPendingAliases(t *testing.T) {
	defer goleak.VerifyNone(t)
	fake, flow, loggers := newTestFlow(t, newTestConfiguration())
	fake.AddUser(testSubject)
	fake.AddUser(testManager)
	// sales@co was moved by a run which crashed right after; only ops@co is pending.
	fake.AddAlias("sales@co", testManager)
	fake.AddAlias("ops@co", testSubject)
	fake.ScriptExportArtifacts(map[string][]byte{"mail.mbox": []byte("From: u@co\n")})

	report, err := flow.Run(context.Background(), newTestSubject(t))
	require.NoError(t, err)
	assert.Equal(t, saga.StateCompleted, report.State)
	assert.Equal(t, 1, fake.CallsFor(directory.OpUpdateAliasOwner))
	assert.ElementsMatch(t, []identity.Address{"sales@co", "ops@co"}, fake.UserAliases(testManager))
	assert.Contains(t, loggers.GetLogContent(), "Alias [ops@co] now points at [m@co]")
}

func TestOffboardWithoutAliases(t *testing.T) {
	defer goleak.VerifyNone(t)
	fake, flow, loggers := newTestFlow(t, newTestConfiguration())
	fake.AddUser(testSubject)
	fake.AddUser(testManager)
	fake.ScriptExportArtifacts(map[string][]byte{"mail.mbox": []byte("From: u@co\n")})

	report, err := flow.Run(context.Background(), newTestSubject(t))
	require.NoError(t, err)
	assert.Equal(t, saga.StateCompleted, report.State)
	assert.Zero(t, fake.CallsFor(directory.OpUpdateAliasOwner))
	assert.Contains(t, loggers.GetLogContent(), "has no aliases to transfer")
}

func TestOffboardRollsBackOnCriticalFailure(t *testing.T) {
	defer goleak.VerifyNone(t)
	fake, flow, _ := newTestFlow(t, newTestConfiguration())
	fake.AddUser(testSubject)
	fake.AddUser(testManager)
	fake.QueueFailure(directory.OpUpdateGroupOwner, commonerrors.New(commonerrors.ErrForbidden, "group policy denies the owner change"))

	subject := newTestSubject(t)
	report, err := flow.Run(context.Background(), subject)
	errortest.AssertError(t, err, commonerrors.ErrForbidden)
	require.NotNil(t, report)
	assert.Equal(t, saga.StateReverted, report.State)
	last := report.Outcomes[len(report.Outcomes)-1]
	assert.Equal(t, "add-manager-ownership", last.Step)
	assert.Equal(t, saga.StepFailed, last.Status)

	// The subject is back: active, under the original address, group released. The
	// archive and the deletion were never reached.
	assert.True(t, fake.HasUser(testSubject))
	assert.False(t, fake.HasUser(testRenamed))
	assert.False(t, fake.HasGroup(testSubject))
	user, err := fake.GetUser(context.Background(), testSubject)
	require.NoError(t, err)
	assert.False(t, user.Suspended)
	assert.Zero(t, fake.CallsFor(directory.OpLaunchBulkExport))
	assert.Zero(t, fake.CallsFor(directory.OpLaunchDataTransfer))
	assert.Zero(t, fake.CallsFor(directory.OpDeleteUser))
	assert.Equal(t, identity.StateReverted, subject.State)
}

func TestOffboardDeletionGate(t *testing.T) {
	defer goleak.VerifyNone(t)
	t.Run("blocking keeps the account and rolls back", func(t *testing.T) {
		cfg := newTestConfiguration()
		cfg.BlockDeletionOnTransferFailure = true
		fake, flow, _ := newTestFlow(t, cfg)
		fake.AddUser(testSubject)
		fake.AddUser(testManager)
		fake.ScriptExportArtifacts(map[string][]byte{"mail.mbox": []byte("From: u@co\n")})
		fake.QueueFailure(directory.OpLaunchDataTransfer,
			commonerrors.New(commonerrors.ErrUnavailable, "transfer backend down"),
			commonerrors.New(commonerrors.ErrUnavailable, "transfer backend down"))

		report, err := flow.Run(context.Background(), newTestSubject(t))
		errortest.AssertError(t, err, commonerrors.ErrCondition)
		require.NotNil(t, report)
		assert.Equal(t, saga.StateReverted, report.State)
		assert.Zero(t, fake.CallsFor(directory.OpDeleteUser))
		// The account survives, restored to its original address.
		assert.True(t, fake.HasUser(testSubject))
		assert.False(t, fake.HasUser(testRenamed))
	})
	t.Run("default deletes despite failed transfers", func(t *testing.T) {
		fake, flow, _ := newTestFlow(t, newTestConfiguration())
		fake.AddUser(testSubject)
		fake.AddUser(testManager)
		fake.ScriptExportArtifacts(map[string][]byte{"mail.mbox": []byte("From: u@co\n")})
		fake.QueueFailure(directory.OpLaunchDataTransfer,
			commonerrors.New(commonerrors.ErrUnavailable, "transfer backend down"),
			commonerrors.New(commonerrors.ErrUnavailable, "transfer backend down"))

		report, err := flow.Run(context.Background(), newTestSubject(t))
		require.NoError(t, err)
		assert.Equal(t, saga.StateCompleted, report.State)
		require.Len(t, report.Outcomes, 10)
		for _, i := range []int{7, 8} {
			assert.Equal(t, saga.StepFailed, report.Outcomes[i].Status)
			assert.Equal(t, saga.BestEffort, report.Outcomes[i].Criticality)
			errortest.AssertError(t, report.Outcomes[i].Err, commonerrors.ErrUnavailable)
		}
		assert.Equal(t, 1, fake.CallsFor(directory.OpDeleteUser))
		assert.False(t, fake.HasUser(testRenamed))
	})
}

func TestOffboardRelaunchAfterCompletion(t *testing.T) {
	defer goleak.VerifyNone(t)
	fake, flow, _ := newTestFlow(t, newTestConfiguration())
	fake.AddUser(testSubject)
	fake.AddUser(testManager)
	fake.AddAlias("sales@co", testSubject)
	fake.ScriptExportArtifacts(map[string][]byte{"mail.mbox": []byte("From: u@co\n")})
	report, err := flow.Run(context.Background(), newTestSubject(t))
	require.NoError(t, err)
	require.Equal(t, saga.StateCompleted, report.State)

	// Relaunching against the end state performs no mutation: every idempotent step
	// recognises its work and the data transfers fail softly on the deleted account.
	report, err = flow.Run(context.Background(), newTestSubject(t))
	require.NoError(t, err)
	assert.Equal(t, saga.StateCompleted, report.State)
	require.Len(t, report.Outcomes, 10)
	for _, i := range []int{0, 1, 2, 3, 4, 5, 6, 9} {
		assert.True(t, report.Outcomes[i].SkippedAlreadyApplied, report.Outcomes[i].Step)
	}
	assert.Equal(t, 1, fake.CallsFor(directory.OpUpdateUserRename))
	assert.Equal(t, 1, fake.CallsFor(directory.OpCreateGroup))
	assert.Equal(t, 1, fake.CallsFor(directory.OpUpdateAliasOwner))
	assert.Equal(t, 1, fake.CallsFor(directory.OpDeleteUser))
	assert.Equal(t, 1, fake.CallsFor(directory.OpLaunchBulkExport))
}

func TestOffboardResumesAfterCrash(t *testing.T) {
	defer goleak.VerifyNone(t)
	// The directory is in the state a run crash leaves between the rename and the
	// group creation: the subject only exists under the renamed address.
	fake, flow, _ := newTestFlow(t, newTestConfiguration())
	fake.AddUser(testRenamed)
	fake.AddUser(testManager)
	fake.AddAlias("sales@co", testManager)
	fake.ScriptExportArtifacts(map[string][]byte{"mail.mbox": []byte("From: u@co\n")})

	report, err := flow.Run(context.Background(), newTestSubject(t))
	require.NoError(t, err)
	assert.Equal(t, saga.StateCompleted, report.State)
	require.Len(t, report.Outcomes, 10)
	for _, i := range []int{0, 1, 2} {
		assert.True(t, report.Outcomes[i].SkippedAlreadyApplied, report.Outcomes[i].Step)
	}
	assert.Zero(t, fake.CallsFor(directory.OpUpdateAliasOwner))
	assert.Zero(t, fake.CallsFor(directory.OpUpdateUserSuspended))
	assert.Zero(t, fake.CallsFor(directory.OpUpdateUserRename))
	assert.False(t, fake.HasUser(testRenamed))
	assert.True(t, fake.HasGroup(testSubject))
	assert.Equal(t, []identity.Address{testManager}, fake.GroupOwners(testSubject))
}

func TestOffboardAbortsOnUnknownSubject(t *testing.T) {
	defer goleak.VerifyNone(t)
	fake, flow, _ := newTestFlow(t, newTestConfiguration())
	fake.AddUser(testManager)

	report, err := flow.Run(context.Background(), newTestSubject(t))
	errortest.AssertError(t, err, commonerrors.ErrNotFound)
	require.NotNil(t, report)
	// Nothing succeeded, so there is nothing to revert.
	assert.Equal(t, saga.StateAborted, report.State)
	assert.Zero(t, fake.CallsFor(directory.OpUpdateUserSuspended))
	assert.Zero(t, fake.CallsFor(directory.OpUpdateUserRename))
	assert.Zero(t, fake.CallsFor(directory.OpDeleteUser))
}

func TestOffboardRunValidation(t *testing.T) {
	defer goleak.VerifyNone(t)
	fake, flow, _ := newTestFlow(t, newTestConfiguration())
	fake.AddUser(testSubject)
	fake.AddUser(testManager)

	_, err := flow.Run(context.Background(), nil)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)

	_, err = flow.Run(context.Background(), &identity.Subject{Primary: "not an address", Manager: testManager, State: identity.StateActive})
	errortest.AssertError(t, err, commonerrors.ErrInvalid)

	orphan, err := identity.NewSubject(testSubject.String(), "")
	require.NoError(t, err)
	_, err = flow.Run(context.Background(), orphan)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)

	cancelledCtx, cancel := context.WithCancel(context.Background())
	cancel()
	report, err := flow.Run(cancelledCtx, newTestSubject(t))
	errortest.AssertError(t, err, commonerrors.ErrCancelled)
	require.NotNil(t, report)
	assert.Equal(t, saga.StateAborted, report.State)
}
