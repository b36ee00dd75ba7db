/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package archive preserves a subject's data before their account is deleted: it drives
// a bulk export through the directory, verifies what was downloaded and uploads it to
// long term storage, keeping append-only ledgers of every artifact it handled.
package archive

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v3"
	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/go-homedir"

	"github.com/ARM-software/identity-lifecycle/asyncjob"
	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/directory"
	"github.com/ARM-software/identity-lifecycle/filesystem"
	"github.com/ARM-software/identity-lifecycle/identity"
	"github.com/ARM-software/identity-lifecycle/idgen"
	"github.com/ARM-software/identity-lifecycle/logs"
	"github.com/ARM-software/identity-lifecycle/scheduling"
)

// Archiver implements IArchiver over a directory client and a filesystem.
type Archiver struct {
	loggers   logs.Loggers
	client    directory.IClient
	fs        filesystem.FS
	cfg       *Configuration
	staging   string
	successes *Ledger
	failures  *Ledger
}

// NewArchiver creates an archiver. `~` in the staging and ledger paths is expanded.
func NewArchiver(loggers logs.Loggers, client directory.IClient, fs filesystem.FS, cfg *Configuration) (archiver *Archiver, err error) {
	if loggers == nil {
		err = commonerrors.ErrNoLogger
		return
	}
	if client == nil {
		err = commonerrors.UndefinedVariable("directory client")
		return
	}
	if fs == nil {
		err = commonerrors.UndefinedVariable("filesystem")
		return
	}
	if cfg == nil {
		err = commonerrors.UndefinedVariable("archive configuration")
		return
	}
	err = cfg.Validate()
	if err != nil {
		err = commonerrors.WrapIfNotCommonError(commonerrors.ErrInvalid, err, "invalid archive configuration")
		return
	}
	staging, err := homedir.Expand(cfg.StagingDirectory)
	if err != nil {
		err = commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "could not expand the staging directory [%v]", cfg.StagingDirectory)
		return
	}
	successPath, err := homedir.Expand(cfg.SuccessLedger)
	if err != nil {
		err = commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "could not expand the success ledger path [%v]", cfg.SuccessLedger)
		return
	}
	failurePath, err := homedir.Expand(cfg.FailureLedger)
	if err != nil {
		err = commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "could not expand the failure ledger path [%v]", cfg.FailureLedger)
		return
	}
	successes, err := NewLedger(fs, successPath)
	if err != nil {
		return
	}
	failures, err := NewLedger(fs, failurePath)
	if err != nil {
		return
	}
	archiver = &Archiver{
		loggers:   loggers,
		client:    client,
		fs:        fs,
		cfg:       cfg,
		staging:   staging,
		successes: successes,
		failures:  failures,
	}
	return
}

// SuccessLedger returns the ledger recording uploaded artifacts.
func (a *Archiver) SuccessLedger() *Ledger {
	return a.successes
}

// FailureLedger returns the ledger recording failed artifact operations.
func (a *Archiver) FailureLedger() *Ledger {
	return a.failures
}

// HasCompleted states whether a previous run uploaded the full artifact set for
// subject. The manifest is uploaded last, so its ledger entry certifies completeness.
func (a *Archiver) HasCompleted(subject identity.Address) (bool, error) {
	return a.successes.Contains(subject, directory.ManifestFileName, "")
}

// Run drives the pipeline end to end for one subject.
func (a *Archiver) Run(ctx context.Context, subject, account identity.Address) (err error) {
	err = scheduling.DetermineContextError(ctx)
	if err != nil {
		return
	}
	if subject.IsEmpty() {
		err = commonerrors.UndefinedVariable("subject address")
		return
	}
	if account.IsEmpty() {
		account = subject
	}
	stagingDir := filepath.Join(a.staging, subject.String())
	manifest, reused := a.reusableDownload(ctx, stagingDir)
	var jobID string
	if reused {
		jobID = manifest.JobID
		a.loggers.Log(fmt.Sprintf("Reusing the artifacts of export job [%v] already staged in [%v]", jobID, stagingDir))
	} else {
		jobID, manifest, err = a.export(ctx, subject, account, stagingDir)
		if err != nil {
			return
		}
	}
	return a.uploadArtifacts(ctx, subject, jobID, stagingDir, manifest)
}

// export launches a fresh bulk export and stages its verified artifacts.
func (a *Archiver) export(ctx context.Context, subject, account identity.Address, stagingDir string) (jobID string, manifest *directory.ExportManifest, err error) {
	scope, err := LoadScope(a.fs, a.cfg.ScopeFile)
	if err != nil {
		return
	}
	if scope.Query == "" {
		// The export covers exactly the account being offboarded unless the operator
		// asked for something narrower.
		scope.Query = fmt.Sprintf("account:%v", account)
	}
	matter, err := matterName(subject)
	if err != nil {
		return
	}
	jobID, err = a.client.StartExport(ctx, matter, scope)
	if err != nil {
		return
	}
	a.loggers.Log(fmt.Sprintf("Launched export job [%v] under matter [%v]", jobID, matter))
	status, err := asyncjob.PollUntilTerminal(ctx, func(fetchCtx context.Context) (asyncjob.Status, error) {
		job, jobErr := a.client.GetJobStatus(fetchCtx, jobID)
		if jobErr != nil {
			return asyncjob.StatusUnknown, jobErr
		}
		return job.Status, nil
	}, &a.cfg.Poller)
	if err != nil {
		return
	}
	if status != asyncjob.StatusCompleted {
		err = commonerrors.Newf(commonerrors.ErrFailed, "export job [%v] ended as %v", jobID, status)
		return
	}
	err = a.client.DownloadExport(ctx, jobID, stagingDir)
	if err != nil {
		return
	}
	manifest, err = LoadManifest(a.fs, stagingDir)
	if err != nil {
		return
	}
	err = VerifyArtifacts(ctx, a.fs, stagingDir, manifest)
	return
}

// reusableDownload states whether a previous run left a verifiable artifact set in dir
// recently enough to be reused instead of exporting again.
func (a *Archiver) reusableDownload(ctx context.Context, dir string) (manifest *directory.ExportManifest, ok bool) {
	if a.cfg.FreshnessWindow <= 0 {
		return
	}
	manifestPath := filepath.Join(dir, directory.ManifestFileName)
	if !a.fs.Exists(manifestPath) {
		return
	}
	info, err := a.fs.StatTimes(manifestPath)
	if err != nil {
		return
	}
	changed := info.ModTime()
	if info.HasChangeTime() {
		changed = info.ChangeTime()
	}
	if time.Since(changed) > a.cfg.FreshnessWindow {
		return
	}
	manifest, err = LoadManifest(a.fs, dir)
	if err != nil {
		return nil, false
	}
	if VerifyArtifacts(ctx, a.fs, dir, manifest) != nil {
		return nil, false
	}
	ok = true
	return
}

// uploadArtifacts uploads every non-excluded artifact which is not already in the
// success ledger, then the manifest itself. Failures are recorded per artifact and the
// remaining artifacts are still attempted so that a re-run has less left to do.
func (a *Archiver) uploadArtifacts(ctx context.Context, subject identity.Address, jobID, dir string, manifest *directory.ExportManifest) error {
	var uploadErrors *multierror.Error
	for i := range manifest.Artifacts {
		err := scheduling.DetermineContextError(ctx)
		if err != nil {
			return err
		}
		artifact := manifest.Artifacts[i]
		excluded, err := excludedByPattern(artifact.Name, a.cfg.ExclusionPatterns)
		if err != nil {
			return err
		}
		if excluded {
			a.loggers.Log(fmt.Sprintf("Artifact '%v' matches an exclusion pattern and stays out of the archive", artifact.Name))
			continue
		}
		err = a.uploadArtifact(ctx, subject, jobID, filepath.Join(dir, artifact.Name), artifact.Name, artifact.Checksum)
		if err != nil {
			uploadErrors = multierror.Append(uploadErrors, err)
		}
	}
	err := uploadErrors.ErrorOrNil()
	if err != nil {
		return err
	}
	// The manifest goes up last: its ledger entry certifies the whole set was archived.
	return a.uploadArtifact(ctx, subject, jobID, filepath.Join(dir, directory.ManifestFileName), directory.ManifestFileName, "")
}

func (a *Archiver) uploadArtifact(ctx context.Context, subject identity.Address, jobID, path, name, checksum string) error {
	archived, err := a.successes.Contains(subject, name, checksum)
	if err != nil {
		return err
	}
	if archived {
		a.loggers.Log(fmt.Sprintf("Artifact '%v' was already archived for [%v], skipping", name, subject))
		return nil
	}
	err = a.client.UploadArchive(ctx, jobID, path)
	if err != nil {
		a.loggers.LogError(fmt.Sprintf("Could not archive artifact '%v' for [%v]: %v", name, subject, err))
		if ledgerErr := a.failures.RecordFailure(subject, jobID, name, err); ledgerErr != nil {
			a.loggers.LogError(ledgerErr)
		}
		return err
	}
	err = a.successes.RecordSuccess(subject, jobID, name, checksum)
	if err != nil {
		return err
	}
	a.loggers.Log(fmt.Sprintf("Archived artifact '%v' for [%v]", name, subject))
	return nil
}

func excludedByPattern(name string, patterns []string) (bool, error) {
	for i := range patterns {
		matched, err := doublestar.Match(patterns[i], name)
		if err != nil {
			return false, commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "invalid exclusion pattern '%v'", patterns[i])
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

func matterName(subject identity.Address) (string, error) {
	id, err := idgen.GenerateUUID7()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("offboard-%v-%v", subject.LocalPart(), id), nil
}
