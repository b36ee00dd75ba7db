/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package filesystem

import (
	"os"

	"github.com/spf13/afero"
)

// ExtendedOsFs supplements afero's OsFs with the ownership and hard link operations the
// native filesystem supports but afero does not surface.
type ExtendedOsFs struct {
	afero.OsFs
}

func (fs *ExtendedOsFs) ChownIfPossible(name string, uid int, gid int) error {
	return os.Chown(name, uid, gid)
}

func (fs *ExtendedOsFs) LinkIfPossible(oldname, newname string) (err error) {
	return os.Link(oldname, newname)
}

func NewExtendedOsFs() afero.Fs {
	return &ExtendedOsFs{}
}
