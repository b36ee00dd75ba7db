/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package directory drives the external directory service through its administration
// CLI: typed operations are mapped onto CLI invocations and failures onto the
// commonerrors taxonomy.
package directory

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/ARM-software/identity-lifecycle/asyncjob"
	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/identity"
	"github.com/ARM-software/identity-lifecycle/logs"
)

// Operation names understood by the administration CLI.
const (
	OpGetUser             = "get-user"
	OpCreateUser          = "create-user"
	OpDeleteUser          = "delete-user"
	OpUpdateUserSuspended = "update-user-suspended"
	OpUpdateUserRename    = "update-user-rename"
	OpListAliases         = "list-aliases"
	OpUpdateAliasOwner    = "update-alias-owner"
	OpDeleteAlias         = "delete-alias"
	OpCreateGroup         = "create-group"
	OpDeleteGroup         = "delete-group"
	OpUpdateGroupOwner    = "update-group-owner"
	OpRemoveOwner         = "remove-owner"
	OpListGroupOwners     = "list-group-owners"
	OpLaunchDataTransfer  = "launch-data-transfer"
	OpLaunchBulkExport    = "launch-bulk-export"
	OpGetJobStatus        = "get-job-status"
	OpDownloadExport      = "download-export"
	OpUploadToStorage     = "upload-to-storage"
	OpUpdateSignature     = "update-signature"
)

// Client implements IClient over an IExecutor.
type Client struct {
	loggers  logs.Loggers
	executor IExecutor
}

// NewClient creates a directory client talking to the CLI described by cfg.
func NewClient(loggers logs.Loggers, cfg *ClientConfiguration) (IClient, error) {
	executor, err := NewCommandExecutor(loggers, cfg)
	if err != nil {
		return nil, err
	}
	return NewClientWithExecutor(loggers, executor)
}

// NewClientWithExecutor creates a directory client over an arbitrary executor.
func NewClientWithExecutor(loggers logs.Loggers, executor IExecutor) (IClient, error) {
	if loggers == nil {
		return nil, commonerrors.ErrNoLogger
	}
	if executor == nil {
		return nil, commonerrors.UndefinedVariable("executor")
	}
	return &Client{
		loggers:  loggers,
		executor: executor,
	}, nil
}

func (c *Client) invoke(ctx context.Context, operation string, args ...string) (stdout string, err error) {
	stdout, stderr, exitStatus, err := c.executor.Invoke(ctx, operation, args...)
	if err != nil {
		err = commonerrors.WrapIfNotCommonErrorf(commonerrors.ErrUnexpected, err, "directory operation [%v] could not run", operation)
		return
	}
	if exitStatus != 0 {
		err = classifyFault(operation, exitStatus, stdout, stderr)
	}
	return
}

func (c *Client) GetUser(ctx context.Context, address identity.Address) (*User, error) {
	output, err := c.invoke(ctx, OpGetUser, address.String())
	if err != nil {
		return nil, err
	}
	return parseUserDocument(output)
}

func (c *Client) CreateUser(ctx context.Context, address identity.Address, displayName string) error {
	args := []string{address.String()}
	if strings.TrimSpace(displayName) != "" {
		args = append(args, displayName)
	}
	_, err := c.invoke(ctx, OpCreateUser, args...)
	return err
}

func (c *Client) DeleteUser(ctx context.Context, address identity.Address) error {
	_, err := c.invoke(ctx, OpDeleteUser, address.String())
	return err
}

func (c *Client) SetUserSuspended(ctx context.Context, address identity.Address, suspended bool) error {
	_, err := c.invoke(ctx, OpUpdateUserSuspended, address.String(), strconv.FormatBool(suspended))
	return err
}

func (c *Client) RenameUser(ctx context.Context, from, to identity.Address) error {
	_, err := c.invoke(ctx, OpUpdateUserRename, from.String(), to.String())
	return err
}

func (c *Client) ListAliases(ctx context.Context, address identity.Address) ([]identity.Address, error) {
	output, err := c.invoke(ctx, OpListAliases, address.String())
	if err != nil {
		return nil, err
	}
	return parseAddressLines(output), nil
}

func (c *Client) RedirectAlias(ctx context.Context, alias, to identity.Address) error {
	_, err := c.invoke(ctx, OpUpdateAliasOwner, alias.String(), to.String())
	return err
}

func (c *Client) DeleteAlias(ctx context.Context, alias identity.Address) error {
	_, err := c.invoke(ctx, OpDeleteAlias, alias.String())
	return err
}

func (c *Client) CreateGroup(ctx context.Context, address identity.Address) error {
	_, err := c.invoke(ctx, OpCreateGroup, address.String())
	return err
}

func (c *Client) DeleteGroup(ctx context.Context, address identity.Address) error {
	_, err := c.invoke(ctx, OpDeleteGroup, address.String())
	return err
}

func (c *Client) AddGroupOwner(ctx context.Context, group, owner identity.Address) error {
	_, err := c.invoke(ctx, OpUpdateGroupOwner, group.String(), owner.String())
	return err
}

func (c *Client) RemoveGroupOwner(ctx context.Context, group, owner identity.Address) error {
	_, err := c.invoke(ctx, OpRemoveOwner, group.String(), owner.String())
	return err
}

func (c *Client) ListGroupOwners(ctx context.Context, group identity.Address) ([]identity.Address, error) {
	output, err := c.invoke(ctx, OpListGroupOwners, group.String())
	if err != nil {
		return nil, err
	}
	return parseAddressLines(output), nil
}

func (c *Client) StartDataTransfer(ctx context.Context, kind TransferKind, from, to identity.Address) error {
	_, err := c.invoke(ctx, OpLaunchDataTransfer, string(kind), from.String(), to.String())
	return err
}

func (c *Client) StartExport(ctx context.Context, matter string, scope *ExportScope) (jobID string, err error) {
	if strings.TrimSpace(matter) == "" {
		err = commonerrors.UndefinedVariable("matter name")
		return
	}
	if scope == nil {
		err = commonerrors.UndefinedVariable("export scope")
		return
	}
	err = scope.Validate()
	if err != nil {
		err = commonerrors.WrapIfNotCommonError(commonerrors.ErrInvalid, err, "invalid export scope")
		return
	}
	output, err := c.invoke(ctx, OpLaunchBulkExport, exportArgs(matter, scope)...)
	if err != nil {
		return
	}
	job, err := parseJobDocument(output)
	if err != nil {
		return
	}
	if job.ID == "" {
		err = commonerrors.New(commonerrors.ErrMarshalling, "the directory returned no job id")
		return
	}
	jobID = job.ID
	return
}

func exportArgs(matter string, scope *ExportScope) (args []string) {
	args = []string{matter}
	if scope.Query != "" {
		args = append(args, "--query", scope.Query)
	}
	for i := range scope.DataKinds {
		args = append(args, "--kind", scope.DataKinds[i])
	}
	if !scope.Start.IsZero() {
		args = append(args, "--start", scope.Start.Format(time.RFC3339))
	}
	if !scope.End.IsZero() {
		args = append(args, "--end", scope.End.Format(time.RFC3339))
	}
	return
}

func (c *Client) GetJobStatus(ctx context.Context, jobID string) (job *asyncjob.Job, err error) {
	if strings.TrimSpace(jobID) == "" {
		err = commonerrors.UndefinedVariable("job id")
		return
	}
	output, err := c.invoke(ctx, OpGetJobStatus, jobID)
	if err != nil {
		return
	}
	job, err = parseJobDocument(output)
	if err != nil {
		return
	}
	if job.ID == "" {
		job.ID = jobID
	}
	return
}

func (c *Client) DownloadExport(ctx context.Context, jobID, destinationDir string) error {
	if strings.TrimSpace(destinationDir) == "" {
		return commonerrors.UndefinedVariable("destination directory")
	}
	_, err := c.invoke(ctx, OpDownloadExport, jobID, destinationDir)
	return err
}

func (c *Client) UploadArchive(ctx context.Context, jobID, path string) error {
	if strings.TrimSpace(path) == "" {
		return commonerrors.UndefinedVariable("archive path")
	}
	_, err := c.invoke(ctx, OpUploadToStorage, jobID, path)
	return err
}

func (c *Client) SetSendAsSignature(ctx context.Context, address identity.Address, signaturePath string) error {
	if strings.TrimSpace(signaturePath) == "" {
		return commonerrors.UndefinedVariable("signature path")
	}
	_, err := c.invoke(ctx, OpUpdateSignature, address.String(), signaturePath)
	return err
}
