/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package directory

import (
	"context"

	"github.com/ARM-software/identity-lifecycle/asyncjob"
	"github.com/ARM-software/identity-lifecycle/identity"
)

//go:generate mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/ARM-software/identity-lifecycle/$GOPACKAGE IExecutor,IClient

// IExecutor runs one administration CLI invocation. It surfaces the process output and
// exit status as data: a non-zero exit is not an error at this level and classification
// is left entirely to the caller.
type IExecutor interface {
	// Invoke runs the CLI once for the given operation. An error is only returned when
	// the process could not be run to completion (command not found, cancellation).
	Invoke(ctx context.Context, operation string, args ...string) (stdout, stderr string, exitStatus int, err error)
}

// IClient exposes the directory operations the lifecycle flows consume. Implementations
// map failures onto the commonerrors taxonomy so that callers can classify them as
// transient or permanent.
type IClient interface {
	// GetUser fetches the record backing an address.
	GetUser(ctx context.Context, address identity.Address) (*User, error)
	// CreateUser creates a directory record. The display name may be blank.
	CreateUser(ctx context.Context, address identity.Address, displayName string) error
	// DeleteUser removes a directory record. Irreversible.
	DeleteUser(ctx context.Context, address identity.Address) error
	// SetUserSuspended suspends or restores sign-in for an account.
	SetUserSuspended(ctx context.Context, address identity.Address, suspended bool) error
	// RenameUser changes the primary address of an account.
	RenameUser(ctx context.Context, from, to identity.Address) error
	// ListAliases returns the aliases currently attached to an address, in the order
	// the directory reports them.
	ListAliases(ctx context.Context, address identity.Address) ([]identity.Address, error)
	// RedirectAlias reattaches an alias to a different target address.
	RedirectAlias(ctx context.Context, alias, to identity.Address) error
	// DeleteAlias removes an alias.
	DeleteAlias(ctx context.Context, alias identity.Address) error
	// CreateGroup creates a group at the given address.
	CreateGroup(ctx context.Context, address identity.Address) error
	// DeleteGroup removes a group.
	DeleteGroup(ctx context.Context, address identity.Address) error
	// AddGroupOwner grants ownership of a group.
	AddGroupOwner(ctx context.Context, group, owner identity.Address) error
	// RemoveGroupOwner revokes ownership of a group.
	RemoveGroupOwner(ctx context.Context, group, owner identity.Address) error
	// ListGroupOwners returns the owners of a group.
	ListGroupOwners(ctx context.Context, group identity.Address) ([]identity.Address, error)
	// StartDataTransfer starts a transfer of the given kind of data between accounts.
	// The transfer completes asynchronously on the directory side.
	StartDataTransfer(ctx context.Context, kind TransferKind, from, to identity.Address) error
	// StartExport launches a bulk export into the named matter and returns the job id
	// to watch.
	StartExport(ctx context.Context, matter string, scope *ExportScope) (string, error)
	// GetJobStatus fetches the current state of an asynchronous job.
	GetJobStatus(ctx context.Context, jobID string) (*asyncjob.Job, error)
	// DownloadExport fetches the artifacts of a completed export, and the manifest
	// describing them, into destinationDir.
	DownloadExport(ctx context.Context, jobID, destinationDir string) error
	// UploadArchive pushes one downloaded artifact to long term storage.
	UploadArchive(ctx context.Context, jobID, path string) error
	// SetSendAsSignature sets the outgoing signature of an account from an HTML file.
	SetSendAsSignature(ctx context.Context, address identity.Address, signaturePath string) error
}
