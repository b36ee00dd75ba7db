/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package offboarding

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/atomic"

	"github.com/ARM-software/identity-lifecycle/collection"
	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/directory"
	"github.com/ARM-software/identity-lifecycle/identity"
	"github.com/ARM-software/identity-lifecycle/retry"
	"github.com/ARM-software/identity-lifecycle/saga"
	"github.com/ARM-software/identity-lifecycle/scheduling"
)

// run carries what one offboarding run accumulates whilst its steps execute: the
// subject, the derived suspended-namespace address and whether a best effort transfer
// failed (consulted by the deletion gate).
type run struct {
	flow           *Flow
	subject        *identity.Subject
	renamed        identity.Address
	transferFailed *atomic.Bool
}

// steps lays out the canonical order: aliases move before the rename changes what the
// original address resolves to, the archive completes before anything is deleted, and
// the deletion comes last, gated on the transfer policy.
func (f *Flow) steps(subject *identity.Subject) []*saga.Step {
	r := &run{
		flow:           f,
		subject:        subject,
		renamed:        identity.SuspendedAddress(subject.Primary, f.cfg.SuspendedDomain),
		transferFailed: atomic.NewBool(false),
	}
	return []*saga.Step{
		{
			Name:           "transfer-aliases",
			Criticality:    saga.Critical,
			Action:         r.transferAliases,
			AlreadyApplied: r.aliasesTransferred,
		},
		{
			Name:           "suspend-user",
			Criticality:    saga.Critical,
			Action:         r.suspendSubject,
			Compensation:   r.unsuspendSubject,
			AlreadyApplied: r.subjectSuspended,
		},
		{
			Name:           "rename-user",
			Criticality:    saga.Critical,
			Action:         r.renameSubject,
			Compensation:   r.renameSubjectBack,
			AlreadyApplied: r.subjectRenamed,
		},
		{
			Name:           "await-rename-propagation",
			Criticality:    saga.Critical,
			Action:         r.awaitRenamePropagation,
			AlreadyApplied: r.placeholderGroupExists,
		},
		{
			Name:           "create-placeholder-group",
			Criticality:    saga.Critical,
			Action:         r.createPlaceholderGroup,
			Compensation:   r.deletePlaceholderGroup,
			AlreadyApplied: r.placeholderGroupExists,
			RetryPolicy:    &f.cfg.DirectoryWriteRetry,
		},
		{
			Name:           "add-manager-ownership",
			Criticality:    saga.Critical,
			Action:         r.addManagerOwnership,
			Compensation:   r.removeManagerOwnership,
			AlreadyApplied: r.managerOwnsGroup,
		},
		{
			Name:           "archive-user-data",
			Criticality:    saga.Critical,
			Action:         r.archiveSubjectData,
			AlreadyApplied: r.archiveCompleted,
		},
		{
			Name:        "transfer-drive",
			Criticality: saga.BestEffort,
			Action:      r.transferData(directory.TransferDrive),
		},
		{
			Name:        "transfer-calendar",
			Criticality: saga.BestEffort,
			Action:      r.transferData(directory.TransferCalendar),
		},
		{
			Name:           "delete-user",
			Criticality:    saga.Critical,
			Action:         r.deleteSubject,
			AlreadyApplied: r.subjectGone,
		},
	}
}

// transferAliases points every alias still attached to the subject at the manager. The
// reconciliation makes the step naturally idempotent: aliases a previous run already
// moved are not touched again.
func (r *run) transferAliases(ctx context.Context) error {
	aliases, err := r.flow.client.ListAliases(ctx, r.subject.Primary)
	if err != nil {
		return err
	}
	if len(aliases) == 0 {
		r.flow.loggers.Log(fmt.Sprintf("[%v] has no aliases to transfer", r.subject.Primary))
		return nil
	}
	current, err := r.flow.client.ListAliases(ctx, r.subject.Manager)
	if err != nil {
		return err
	}
	pending := collection.Difference(aliases, current)
	sort.Slice(pending, func(i, j int) bool { return pending[i] < pending[j] })
	for _, alias := range pending {
		err = r.flow.client.RedirectAlias(ctx, alias, r.subject.Manager)
		if err != nil {
			return err
		}
		r.flow.loggers.Log(fmt.Sprintf("Alias [%v] now points at [%v]", alias, r.subject.Manager))
	}
	return nil
}

// aliasesTransferred relies on the step ordering: the rename follows the alias
// transfer, so a resolving renamed address proves an earlier run already moved them.
func (r *run) aliasesTransferred(ctx context.Context) (bool, error) {
	renamed, err := r.renamedResolves(ctx)
	if err != nil || renamed {
		return renamed, err
	}
	return r.alreadyOffboarded(ctx)
}

func (r *run) suspendSubject(ctx context.Context) error {
	err := r.flow.client.SetUserSuspended(ctx, r.subject.Primary, true)
	if err != nil {
		return err
	}
	r.subject.State = identity.StateSuspended
	return nil
}

func (r *run) unsuspendSubject(ctx context.Context) error {
	err := r.flow.client.SetUserSuspended(ctx, r.subject.Primary, false)
	if err != nil {
		return err
	}
	r.subject.State = identity.StateReverted
	return nil
}

func (r *run) subjectSuspended(ctx context.Context) (bool, error) {
	user, err := r.flow.client.GetUser(ctx, r.subject.Primary)
	switch {
	case err == nil:
		return user.Suspended, nil
	case commonerrors.Any(err, commonerrors.ErrNotFound):
		// The original address no longer resolving means the rename, which only ever
		// follows the suspend, already happened.
		renamed, subErr := r.renamedResolves(ctx)
		if subErr != nil || renamed {
			return renamed, subErr
		}
		return r.alreadyOffboarded(ctx)
	default:
		return false, err
	}
}

func (r *run) renameSubject(ctx context.Context) error {
	err := r.flow.client.RenameUser(ctx, r.subject.Primary, r.renamed)
	if err != nil {
		return err
	}
	r.subject.State = identity.StateRenamed
	return nil
}

func (r *run) renameSubjectBack(ctx context.Context) error {
	err := r.flow.client.RenameUser(ctx, r.renamed, r.subject.Primary)
	if err != nil {
		return err
	}
	r.subject.State = identity.StateSuspended
	return nil
}

func (r *run) subjectRenamed(ctx context.Context) (bool, error) {
	renamed, err := r.renamedResolves(ctx)
	if err != nil || renamed {
		return renamed, err
	}
	return r.alreadyOffboarded(ctx)
}

// awaitRenamePropagation sleeps once for the configured bound, then verifies the
// renamed address resolves, retrying the verification alone under the directory write
// policy. Not-found counts as retriable here: it is exactly what propagation lag looks
// like.
func (r *run) awaitRenamePropagation(ctx context.Context) error {
	scheduling.SleepWithContext(ctx, r.flow.cfg.PropagationWait)
	err := scheduling.DetermineContextError(ctx)
	if err != nil {
		return err
	}
	return retry.RetryOnError(ctx, r.flow.logger, &r.flow.cfg.DirectoryWriteRetry, func() error {
		_, subErr := r.flow.client.GetUser(ctx, r.renamed)
		return subErr
	}, fmt.Sprintf("the renamed address '%v' is not available yet", r.renamed),
		commonerrors.ErrNotFound, commonerrors.ErrUnavailable, commonerrors.ErrTooManyRequests)
}

func (r *run) createPlaceholderGroup(ctx context.Context) error {
	err := r.flow.client.CreateGroup(ctx, r.subject.Primary)
	if err != nil {
		return err
	}
	r.subject.State = identity.StateGroupCreated
	return nil
}

func (r *run) deletePlaceholderGroup(ctx context.Context) error {
	err := r.flow.client.DeleteGroup(ctx, r.subject.Primary)
	if err != nil {
		return err
	}
	r.subject.State = identity.StateRenamed
	return nil
}

func (r *run) placeholderGroupExists(ctx context.Context) (bool, error) {
	_, err := r.flow.client.ListGroupOwners(ctx, r.subject.Primary)
	switch {
	case err == nil:
		return true, nil
	case commonerrors.Any(err, commonerrors.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (r *run) addManagerOwnership(ctx context.Context) error {
	err := r.flow.client.AddGroupOwner(ctx, r.subject.Primary, r.subject.Manager)
	if commonerrors.Any(err, commonerrors.ErrConflict) {
		r.flow.loggers.Log(fmt.Sprintf("[%v] already owns the group [%v]", r.subject.Manager, r.subject.Primary))
		return nil
	}
	return err
}

func (r *run) removeManagerOwnership(ctx context.Context) error {
	return r.flow.client.RemoveGroupOwner(ctx, r.subject.Primary, r.subject.Manager)
}

func (r *run) managerOwnsGroup(ctx context.Context) (bool, error) {
	owners, err := r.flow.client.ListGroupOwners(ctx, r.subject.Primary)
	switch {
	case err == nil:
		for i := range owners {
			if owners[i] == r.subject.Manager {
				return true, nil
			}
		}
		return false, nil
	case commonerrors.Any(err, commonerrors.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// archiveSubjectData preserves the subject's data under their original identity whilst
// exporting from the account the rename moved them to.
func (r *run) archiveSubjectData(ctx context.Context) error {
	err := r.flow.archiver.Run(ctx, r.subject.Primary, r.renamed)
	if err != nil {
		return err
	}
	r.subject.State = identity.StateArchived
	return nil
}

func (r *run) archiveCompleted(_ context.Context) (bool, error) {
	return r.flow.archiver.HasCompleted(r.subject.Primary)
}

func (r *run) transferData(kind directory.TransferKind) func(context.Context) error {
	return func(ctx context.Context) error {
		err := r.flow.client.StartDataTransfer(ctx, kind, r.renamed, r.subject.Manager)
		if err != nil {
			r.transferFailed.Store(true)
			return err
		}
		r.flow.loggers.Log(fmt.Sprintf("Transfer of %v data from [%v] to [%v] launched", kind, r.renamed, r.subject.Manager))
		return nil
	}
}

func (r *run) deleteSubject(ctx context.Context) error {
	if r.flow.cfg.BlockDeletionOnTransferFailure && r.transferFailed.Load() {
		return commonerrors.New(commonerrors.ErrCondition, "a best effort data transfer failed and deletion is configured to block on it")
	}
	err := r.flow.client.DeleteUser(ctx, r.renamed)
	if err != nil {
		return err
	}
	r.subject.State = identity.StateDeleted
	return nil
}

func (r *run) subjectGone(ctx context.Context) (bool, error) {
	original, err := r.originalResolves(ctx)
	if err != nil || original {
		return false, err
	}
	renamed, err := r.renamedResolves(ctx)
	if err != nil {
		return false, err
	}
	return !renamed, nil
}

func (r *run) originalResolves(ctx context.Context) (bool, error) {
	return r.userResolves(ctx, r.subject.Primary)
}

func (r *run) renamedResolves(ctx context.Context) (bool, error) {
	return r.userResolves(ctx, r.renamed)
}

func (r *run) userResolves(ctx context.Context, address identity.Address) (bool, error) {
	_, err := r.flow.client.GetUser(ctx, address)
	switch {
	case err == nil:
		return true, nil
	case commonerrors.Any(err, commonerrors.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// alreadyOffboarded recognises the end state a finished run leaves behind: neither
// address resolves and the placeholder group squats the original one. It lets every
// early step skip when a completed run is relaunched.
func (r *run) alreadyOffboarded(ctx context.Context) (bool, error) {
	original, err := r.originalResolves(ctx)
	if err != nil || original {
		return false, err
	}
	renamed, err := r.renamedResolves(ctx)
	if err != nil || renamed {
		return false, err
	}
	return r.placeholderGroupExists(ctx)
}
