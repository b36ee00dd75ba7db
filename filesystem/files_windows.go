//go:build windows
// +build windows

// Package filesystem describes the filesystem on windows
package filesystem

import (
	"os"
	"syscall"
)

// Windows has no uid/gid in stat data; the caller's identity is the best available answer.
func determineFileOwners(_ os.FileInfo) (uid, gid int, err error) {
	uid = syscall.Getuid()
	gid = syscall.Getgid()
	return
}
