/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package filesystem

import (
	"os"

	"github.com/spf13/afero"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
)

type FilesystemType int

const (
	StandardFS FilesystemType = iota
	InMemoryFS
	Custom
)

// FileSystemTypes lists the filesystem types which can be created using NewFs.
var FileSystemTypes = []FilesystemType{StandardFS, InMemoryFS}

// NewInMemoryFileSystem returns an in-memory filesystem.
func NewInMemoryFileSystem() FS {
	return NewVirtualFileSystem(afero.NewMemMapFs(), InMemoryFS, IdentityPathConverterFunc)
}

// NewStandardFileSystem returns a filesystem based on the native filesystem.
func NewStandardFileSystem() FS {
	return NewVirtualFileSystem(NewExtendedOsFs(), StandardFS, IdentityPathConverterFunc)
}

// NewFs returns a filesystem corresponding to the type requested. Custom filesystems
// must be created using NewVirtualFileSystem.
func NewFs(fsType FilesystemType) FS {
	switch fsType {
	case StandardFS:
		return NewStandardFileSystem()
	case InMemoryFS:
		return NewInMemoryFileSystem()
	}
	return NewStandardFileSystem()
}

// ConvertFileSystemError converts a filesystem error into a common error.
func ConvertFileSystemError(err error) error {
	if err == nil {
		return nil
	}
	err = commonerrors.ConvertContextError(err)
	if commonerrors.Any(err, commonerrors.ErrTimeout, commonerrors.ErrCancelled) {
		return err
	}
	if commonerrors.Any(err, os.ErrExist) || commonerrors.CorrespondTo(err, "file exists", "file already exists") {
		return commonerrors.WrapError(commonerrors.ErrExists, err, "")
	}
	if commonerrors.CorrespondTo(err, "bad file descriptor") {
		return commonerrors.WrapError(commonerrors.ErrCondition, err, "")
	}
	if commonerrors.Any(err, os.ErrPermission) || commonerrors.CorrespondTo(err, "permission denied") {
		return commonerrors.WrapError(commonerrors.ErrForbidden, err, "")
	}
	return err
}
