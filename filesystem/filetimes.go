/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package filesystem

import (
	"os"
	"time"

	fileTimes "github.com/djherbis/times"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
)

// DetermineFileTimes extracts the timestamps carried by info. Filesystems without
// platform specific stat data (such as the in-memory one) only report a
// modification time.
func DetermineFileTimes(info os.FileInfo) (times FileTimeInfo, err error) {
	if info == nil {
		err = commonerrors.New(commonerrors.ErrUndefined, "no file information defined")
		return
	}
	if info.Sys() == nil {
		times = newModTimeOnlyInfo(info)
		return
	}
	times = &nativeTimeInfo{fileTimes.Get(info)}
	return
}

// modTimeOnlyInfo carries the one timestamp every filesystem can report.
type modTimeOnlyInfo struct {
	modTime time.Time
}

func newModTimeOnlyInfo(f os.FileInfo) (info *modTimeOnlyInfo) {
	info = &modTimeOnlyInfo{}
	if f != nil {
		info.modTime = f.ModTime()
	}
	return
}

func (t *modTimeOnlyInfo) ModTime() time.Time {
	return t.modTime
}

func (t *modTimeOnlyInfo) AccessTime() time.Time {
	return time.Now()
}

func (t *modTimeOnlyInfo) ChangeTime() time.Time {
	return time.Now()
}

func (t *modTimeOnlyInfo) BirthTime() time.Time {
	return time.Now()
}

func (t *modTimeOnlyInfo) HasAccessTime() bool {
	return false
}

func (t *modTimeOnlyInfo) HasChangeTime() bool {
	return false
}

func (t *modTimeOnlyInfo) HasBirthTime() bool {
	return false
}

// nativeTimeInfo exposes the platform's own stat timestamps.
type nativeTimeInfo struct {
	fileTimes.Timespec
}

// HasAccessTime reports false: atime cannot be relied upon on mounts using noatime.
func (t *nativeTimeInfo) HasAccessTime() bool {
	return false
}
