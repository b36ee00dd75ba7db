/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v3"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/platform"
	"github.com/ARM-software/identity-lifecycle/reflection"
	"github.com/ARM-software/identity-lifecycle/safeio"
	"github.com/ARM-software/identity-lifecycle/scheduling"
)

var (
	ErrLinkNotImplemented  = fmt.Errorf("link not implemented: %w", commonerrors.ErrNotImplemented)
	ErrChownNotImplemented = fmt.Errorf("chown not implemented: %w", commonerrors.ErrNotImplemented)
	ErrPathNotExist        = errors.New("readdirent: no such file or directory")
	globalFileSystem       = NewFs(StandardFS)
)

const (
	UnsetFileHandle = ^uint64(0)
)

type UsageStat struct {
	Total             uint64
	Free              uint64
	Used              uint64
	UsedPercent       float64
	InodesTotal       uint64
	InodesUsed        uint64
	InodesFree        uint64
	InodesUsedPercent float64
}

func (d *UsageStat) GetTotal() uint64              { return d.Total }
func (d *UsageStat) GetFree() uint64               { return d.Free }
func (d *UsageStat) GetUsed() uint64               { return d.Used }
func (d *UsageStat) GetUsedPercent() float64       { return d.UsedPercent }
func (d *UsageStat) GetInodesTotal() uint64        { return d.InodesTotal }
func (d *UsageStat) GetInodesUsed() uint64         { return d.InodesUsed }
func (d *UsageStat) GetInodesFree() uint64         { return d.InodesFree }
func (d *UsageStat) GetInodesUsedPercent() float64 { return d.InodesUsedPercent }

func IdentityPathConverterFunc(path string) string {
	return path
}

type VFS struct {
	vfs           afero.Fs
	fsType        FilesystemType
	pathConverter func(path string) string
	pathSeparator rune
}

func NewVirtualFileSystem(vfs afero.Fs, fsType FilesystemType, pathConverter func(path string) string) FS {
	return NewVirtualFileSystemWithPathSeparator(vfs, fsType, pathConverter, platform.PathSeparator)
}

func NewVirtualFileSystemWithPathSeparator(vfs afero.Fs, fsType FilesystemType, pathConverter func(path string) string, pathSeparator rune) FS {
	return &VFS{
		vfs:           vfs,
		fsType:        fsType,
		pathConverter: pathConverter,
		pathSeparator: pathSeparator,
	}
}

func GetGlobalFileSystem() FS {
	return globalFileSystem
}

func GetType() int {
	return globalFileSystem.GetType()
}

// Walks  https://golang.org/pkg/path/filepath/#WalkDir
func (fs *VFS) Walk(root string, fn filepath.WalkFunc) error {
	return fs.WalkWithContext(context.Background(), root, fn)
}

func (fs *VFS) WalkWithContext(ctx context.Context, root string, fn filepath.WalkFunc) error {
	return fs.WalkWithContextAndExclusionPatterns(ctx, root, fn)
}

func (fs *VFS) WalkWithContextAndExclusionPatterns(ctx context.Context, root string, fn filepath.WalkFunc, exclusionPatterns ...string) (err error) {
	err = scheduling.DetermineContextError(ctx)
	if err != nil {
		return
	}
	regexes, err := NewExclusionRegexList(fs.PathSeparator(), exclusionPatterns...)
	if err != nil {
		return
	}
	info, err := fs.Lstat(root)
	if err != nil {
		err = fn(root, nil, err)
	} else {
		err = fs.walk(ctx, root, info, fn, regexes)
	}
	if commonerrors.Any(err, filepath.SkipDir) {
		err = nil
	}
	return
}

// walk recursively descends path, calling fn. Any path matching an exclusion pattern is pruned.
func (fs *VFS) walk(ctx context.Context, path string, info os.FileInfo, fn filepath.WalkFunc, exclusionPatterns []*regexp.Regexp) (err error) {
	err = scheduling.DetermineContextError(ctx)
	if err != nil {
		return
	}
	if IsPathExcluded(path, exclusionPatterns...) {
		return
	}
	if err := fn(path, info, nil); err != nil || !info.IsDir() {
		if commonerrors.Any(err, filepath.SkipDir) && info.IsDir() {
			err = nil
		}
		return err
	}
	items, err := fs.Ls(path)
	if err != nil {
		err = fn(path, info, err)
		if err != nil {
			return err
		}
	}
	for i := range items {
		filename := filepath.Join(path, items[i])
		fileInfo, err := fs.Lstat(filename)
		if err != nil {
			if err := fn(filename, fileInfo, err); err != nil && !commonerrors.Any(err, filepath.SkipDir) {
				return err
			}
		} else {
			err = fs.walk(ctx, filename, fileInfo, fn, exclusionPatterns)
			if err != nil {
				if !fileInfo.IsDir() || !commonerrors.Any(err, filepath.SkipDir) {
					return err
				}
			}
		}
	}
	return nil
}

func (fs *VFS) GetType() int {
	return int(fs.fsType)
}

func (fs *VFS) ConvertFilePath(name string) string {
	return fs.pathConverter(name)
}

func TempDirectory() string {
	return globalFileSystem.TempDirectory()
}
func (fs *VFS) TempDirectory() string {
	return afero.GetTempDir(fs.vfs, "")
}

func CurrentDirectory() (string, error) {
	return globalFileSystem.CurrentDirectory()
}
func (fs *VFS) CurrentDirectory() (string, error) {
	current, err := os.Getwd()
	return current, ConvertFileSystemError(err)
}

func Lstat(name string) (fileInfo os.FileInfo, err error) {
	return globalFileSystem.Lstat(name)
}

func (fs *VFS) Lstat(name string) (fileInfo os.FileInfo, err error) {
	if lstater, ok := fs.vfs.(afero.Lstater); ok {
		fileInfo, _, err = lstater.LstatIfPossible(name)
	} else {
		fileInfo, err = fs.vfs.Stat(name)
	}
	err = ConvertFileSystemError(err)
	return
}

func (fs *VFS) Open(name string) (doublestar.File, error) {
	return fs.GenericOpen(name)
}

func GenericOpen(name string) (File, error) {
	return globalFileSystem.GenericOpen(name)
}
func (fs *VFS) GenericOpen(name string) (File, error) {
	return openManagedFile(func() (afero.File, error) { return fs.vfs.Open(name) }, func() error { return nil })
}

func OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	return globalFileSystem.OpenFile(name, flag, perm)
}

func (fs *VFS) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	return openManagedFile(func() (afero.File, error) { return fs.vfs.OpenFile(name, flag, perm) }, func() error { return nil })
}

func CreateFile(name string) (File, error) {
	return globalFileSystem.CreateFile(name)
}
func (fs *VFS) CreateFile(name string) (File, error) {
	return openManagedFile(func() (afero.File, error) { return fs.vfs.Create(name) }, func() error { return nil })
}

func ReadFile(name string) ([]byte, error) {
	return globalFileSystem.ReadFile(name)
}

func (fs *VFS) ReadFile(filename string) ([]byte, error) {
	return fs.ReadFileWithContext(context.Background(), filename)
}

func (fs *VFS) ReadFileWithContext(ctx context.Context, filename string) (content []byte, err error) {
	err = scheduling.DetermineContextError(ctx)
	if err != nil {
		return
	}
	f, err := fs.GenericOpen(filename)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()
	content, err = safeio.ReadAll(ctx, f)
	err = ConvertFileSystemError(err)
	return
}

func WriteFile(filename string, data []byte, perm os.FileMode) error {
	return globalFileSystem.WriteFile(filename, data, perm)
}

func (fs *VFS) WriteFile(filename string, data []byte, perm os.FileMode) error {
	return fs.WriteFileWithContext(context.Background(), filename, data, perm)
}

func (fs *VFS) WriteFileWithContext(ctx context.Context, filename string, data []byte, perm os.FileMode) (err error) {
	err = scheduling.DetermineContextError(ctx)
	if err != nil {
		return
	}
	f, err := fs.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()
	n, err := safeio.WriteString(ctx, f, string(data))
	if err != nil {
		err = ConvertFileSystemError(err)
		return
	}
	if n < len(data) {
		err = commonerrors.WrapError(commonerrors.ErrCondition, io.ErrShortWrite, "")
		return
	}
	err = ConvertFileSystemError(f.Close())
	return
}

func (fs *VFS) Touch(path string) (err error) {
	if reflection.IsEmpty(path) {
		return commonerrors.UndefinedVariable("path")
	}
	if fs.Exists(path) {
		now := time.Now()
		return fs.Chtimes(path, now, now)
	}
	f, err := fs.CreateFile(path)
	if err != nil {
		return
	}
	err = f.Close()
	return
}

func TouchTempFile(dir string, pattern string) (filename string, err error) {
	return globalFileSystem.TouchTempFile(dir, pattern)
}

func (fs *VFS) TouchTempFile(dir string, pattern string) (filename string, err error) {
	f, err := fs.TempFile(dir, pattern)
	if err != nil {
		return
	}
	filename = f.Name()
	err = f.Close()
	return
}

func TouchTempFileInTempDir(pattern string) (filename string, err error) {
	return globalFileSystem.TouchTempFileInTempDir(pattern)
}

func (fs *VFS) TouchTempFileInTempDir(pattern string) (filename string, err error) {
	return fs.TouchTempFile("", pattern)
}

func PathSeparator() rune {
	return globalFileSystem.PathSeparator()
}

func (fs *VFS) PathSeparator() rune {
	return fs.pathSeparator
}

func Stat(name string) (os.FileInfo, error) {
	return globalFileSystem.Stat(name)
}

func (fs *VFS) Stat(name string) (os.FileInfo, error) {
	info, err := fs.vfs.Stat(name)
	return info, ConvertFileSystemError(err)
}

func (fs *VFS) StatTimes(name string) (info FileTimeInfo, err error) {
	stat, err := fs.Stat(name)
	if err != nil {
		return
	}
	return DetermineFileTimes(stat)
}

func TempDir(dir string, prefix string) (name string, err error) {
	return globalFileSystem.TempDir(dir, prefix)
}
func (fs *VFS) TempDir(dir string, prefix string) (name string, err error) {
	name, err = afero.TempDir(fs.vfs, dir, prefix)
	err = ConvertFileSystemError(err)
	return
}

func TempDirInTempDir(prefix string) (name string, err error) {
	return globalFileSystem.TempDirInTempDir(prefix)
}
func (fs *VFS) TempDirInTempDir(prefix string) (name string, err error) {
	return fs.TempDir("", prefix)
}
func TempFile(dir string, pattern string) (f File, err error) {
	return globalFileSystem.TempFile(dir, pattern)
}
func (fs *VFS) TempFile(dir string, prefix string) (f File, err error) {
	file, err := afero.TempFile(fs.vfs, dir, prefix)
	if err != nil {
		err = ConvertFileSystemError(err)
		return
	}
	return newManagedFile(file, func() error { return nil })
}

func TempFileInTempDir(pattern string) (f File, err error) {
	return globalFileSystem.TempFileInTempDir(pattern)
}

func (fs *VFS) TempFileInTempDir(prefix string) (f File, err error) {
	return fs.TempFile("", prefix)
}

// Removes all the files in a directory (equivalent rm -rf .../*)
func CleanDir(dir string) (err error) {
	return globalFileSystem.CleanDir(dir)
}

func (fs *VFS) CleanDir(dir string) (err error) {
	return fs.CleanDirWithContext(context.Background(), dir)
}

func (fs *VFS) CleanDirWithContext(ctx context.Context, dir string) (err error) {
	return fs.CleanDirWithContextAndExclusionPatterns(ctx, dir)
}

func (fs *VFS) CleanDirWithContextAndExclusionPatterns(ctx context.Context, dir string, exclusionPatterns ...string) (err error) {
	err = scheduling.DetermineContextError(ctx)
	if err != nil {
		return
	}
	if reflection.IsEmpty(dir) || !fs.Exists(dir) {
		return
	}
	regexes, err := NewExclusionRegexList(fs.PathSeparator(), exclusionPatterns...)
	if err != nil {
		return
	}
	empty, err := fs.IsEmpty(dir)
	if empty || err != nil {
		return
	}
	files, err := fs.Ls(dir)
	if err != nil {
		return
	}
	for i := range files {
		name := files[i]
		if IsPathExcluded(name, regexes...) {
			continue
		}
		err = fs.removeRecursively(ctx, filepath.Join(dir, name), regexes)
		if err != nil {
			return
		}
	}
	return
}

// Checks if a file or folder exists
func Exists(path string) bool {
	return globalFileSystem.Exists(path)
}
func (fs *VFS) Exists(path string) bool {
	fi, err := fs.vfs.Stat(path)
	if err != nil {
		if IsPathNotExist(err) {
			return false
		}
	}
	if fi == nil {
		return false
	}
	// Double check for directories as it was seen on Docker that Stat would work even if the path does not exist
	if fi.IsDir() {
		return fs.checkDirExists(path)
	}
	return true
}

func (fs *VFS) checkDirExists(path string) (exist bool) {
	f, err := fs.vfs.Open(path)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()
	_, err = f.Readdirnames(1)
	exist = !IsPathNotExist(err)
	return
}

// Removes directory (equivalent to rm -r)
func Rm(dir string) (err error) {
	return globalFileSystem.Rm(dir)
}

func (fs *VFS) Rm(dir string) (err error) {
	return fs.RemoveWithContext(context.Background(), dir)
}

func (fs *VFS) RemoveWithContext(ctx context.Context, dir string) (err error) {
	return fs.RemoveWithContextAndExclusionPatterns(ctx, dir)
}

func (fs *VFS) RemoveWithContextAndExclusionPatterns(ctx context.Context, dir string, exclusionPatterns ...string) (err error) {
	err = scheduling.DetermineContextError(ctx)
	if err != nil {
		return
	}
	if reflection.IsEmpty(dir) || !fs.Exists(dir) {
		return
	}
	regexes, err := NewExclusionRegexList(fs.PathSeparator(), exclusionPatterns...)
	if err != nil {
		return
	}
	return fs.removeRecursively(ctx, dir, regexes)
}

// removeRecursively removes the file tree rooted at dir. Children are handled before the entry itself
// so that an excluded child keeps its parent directory in place. A directory is only removed once empty.
func (fs *VFS) removeRecursively(ctx context.Context, dir string, exclusionPatterns []*regexp.Regexp) (err error) {
	err = scheduling.DetermineContextError(ctx)
	if err != nil {
		return
	}
	if !fs.Exists(dir) {
		return
	}
	isDir, err := fs.IsDir(dir)
	if err != nil {
		return
	}
	if isDir {
		files, subErr := fs.Ls(dir)
		if subErr != nil {
			err = subErr
			return
		}
		for i := range files {
			name := files[i]
			if IsPathExcluded(name, exclusionPatterns...) {
				continue
			}
			err = fs.removeRecursively(ctx, filepath.Join(dir, name), exclusionPatterns)
			if err != nil {
				return
			}
		}
	}
	if IsPathExcluded(filepath.Base(dir), exclusionPatterns...) {
		return
	}
	if isDir {
		empty, subErr := fs.IsEmpty(dir)
		if subErr != nil {
			err = subErr
			return
		}
		if !empty {
			return
		}
	}
	err = ConvertFileSystemError(fs.vfs.Remove(dir))
	return
}

// States whether it is a file or not. A file is considered as anything which is not a directory,
// e.g. special files such as devices, fifos or sockets are files.
func IsFile(path string) (result bool, err error) {
	return globalFileSystem.IsFile(path)
}
func (fs *VFS) IsFile(path string) (result bool, err error) {
	if !fs.Exists(path) {
		return
	}
	fi, err := fs.Stat(path)
	if err != nil {
		return
	}
	result = !IsDirectory(fi)
	return
}

func IsRegularFile(fi os.FileInfo) bool {
	if fi == nil {
		return false
	}
	return fi.Mode().IsRegular()
}

func (fs *VFS) IsLink(path string) (result bool, err error) {
	if !fs.Exists(path) {
		return
	}
	fi, err := fs.Lstat(path)
	if err != nil {
		return
	}
	result = IsSymLink(fi)
	return
}

func IsSymLink(fi os.FileInfo) bool {
	if fi == nil {
		return false
	}
	return fi.Mode()&os.ModeType == os.ModeSymlink
}

// States whether it is a directory or not
func IsDir(path string) (result bool, err error) {
	return globalFileSystem.IsDir(path)
}
func (fs *VFS) IsDir(path string) (result bool, err error) {
	if !fs.Exists(path) {
		return
	}
	fi, err := fs.Stat(path)
	if err != nil {
		return
	}
	result = IsDirectory(fi)
	return
}

func IsDirectory(fi os.FileInfo) bool {
	if fi == nil {
		return false
	}
	return fi.IsDir()
}

// Checks whether a path is empty or not
func IsEmpty(name string) (empty bool, err error) {
	return globalFileSystem.IsEmpty(name)
}
func (fs *VFS) IsEmpty(name string) (empty bool, err error) {
	if !fs.Exists(name) {
		empty = true
		return
	}
	isFile, err := fs.IsFile(name)
	if err != nil {
		return
	}
	if isFile {
		return fs.isFileEmpty(name)
	}
	return fs.isDirEmpty(name)
}

func (fs *VFS) isFileEmpty(name string) (empty bool, err error) {
	fi, err := fs.Stat(name)
	if err != nil {
		return
	}
	empty = fi.Size() == 0
	return
}

func (fs *VFS) isDirEmpty(name string) (empty bool, err error) {
	f, err := fs.vfs.Open(name)
	if err != nil {
		err = ConvertFileSystemError(err)
		return
	}
	defer func() {
		if f != nil {
			_ = f.Close()
		}
	}()
	_, err = f.Readdirnames(1)
	if err == io.EOF || IsPathNotExist(err) {
		err = nil
		empty = true
		return
	}
	err = f.Close()
	return
}

// Makes directory (equivalent to mkdir -p)
func MkDir(dir string) (err error) {
	return globalFileSystem.MkDir(dir)
}
func (fs *VFS) MkDir(dir string) (err error) {
	return fs.MkDirAll(dir, 0755)
}

func (fs *VFS) MkDirAll(dir string, perm os.FileMode) (err error) {
	if reflection.IsEmpty(dir) {
		return commonerrors.UndefinedVariable("directory path")
	}
	if fs.Exists(dir) {
		return
	}
	err = ConvertFileSystemError(fs.vfs.MkdirAll(dir, perm))
	// The directory may have been created by a different process/thread
	if err != nil && fs.Exists(dir) {
		err = nil
	}
	return
}

// Finds all the files with extensions
func FindAll(dir string, extensions ...string) (files []string, err error) {
	return globalFileSystem.FindAll(dir, extensions...)
}
func (fs *VFS) FindAll(dir string, extensions ...string) (files []string, err error) {
	files = []string{}
	if !fs.Exists(dir) {
		return
	}
	for i := range extensions {
		foundFiles, subErr := fs.findAllOfExtension(dir, extensions[i])
		if subErr != nil {
			err = subErr
			return
		}
		files = append(files, foundFiles...)
	}
	return
}
func (fs *VFS) findAllOfExtension(dir string, ext string) (files []string, err error) {
	ext = strings.TrimPrefix(ext, ".")
	return doublestar.GlobOS(fs, filepath.Join(dir, "**", "*."+ext))
}

func (fs *VFS) Chmod(name string, mode os.FileMode) error {
	return ConvertFileSystemError(fs.vfs.Chmod(name, mode))
}

func (fs *VFS) Chtimes(name string, atime time.Time, mtime time.Time) error {
	return ConvertFileSystemError(fs.vfs.Chtimes(name, atime, mtime))
}

func (fs *VFS) Chown(name string, uid, gid int) (err error) {
	if chowner, ok := fs.vfs.(Chowner); ok {
		err = ConvertFileSystemError(chowner.ChownIfPossible(name, uid, gid))
		return
	}
	err = ErrChownNotImplemented
	return
}

// Fetches the numeric uid and gid of the named file.
func (fs *VFS) FetchOwners(name string) (uid, gid int, err error) {
	info, err := fs.Lstat(name)
	if err != nil {
		return
	}
	return determineFileOwners(info)
}

func (fs *VFS) Link(oldname, newname string) (err error) {
	if linker, ok := fs.vfs.(Linker); ok {
		err = ConvertFileSystemError(linker.LinkIfPossible(oldname, newname))
		return
	}
	err = ErrLinkNotImplemented
	return
}

func (fs *VFS) Readlink(name string) (value string, err error) {
	if reader, ok := fs.vfs.(afero.LinkReader); ok {
		value, err = reader.ReadlinkIfPossible(name)
		err = ConvertFileSystemError(err)
		return
	}
	err = commonerrors.ErrNotImplemented
	return
}

func (fs *VFS) Symlink(oldname string, newname string) (err error) {
	if linker, ok := fs.vfs.(afero.Linker); ok {
		err = ConvertFileSystemError(linker.SymlinkIfPossible(oldname, newname))
		return
	}
	err = commonerrors.ErrNotImplemented
	return
}

func Ls(dir string) (files []string, err error) {
	return globalFileSystem.Ls(dir)
}
func (fs *VFS) Ls(dir string) (names []string, err error) {
	isDir, err := fs.IsDir(dir)
	if err != nil {
		return
	}
	if !isDir {
		err = commonerrors.Newf(commonerrors.ErrInvalid, "path [%v] is not a directory", dir)
		return
	}
	f, err := fs.GenericOpen(dir)
	if err != nil {
		return
	}
	names, err = fs.LsFromOpenedDirectory(f)
	_ = f.Close()
	return
}

func (fs *VFS) LsWithExclusionPatterns(dir string, exclusionPatterns ...string) (names []string, err error) {
	regexes, err := NewExclusionRegexList(fs.PathSeparator(), exclusionPatterns...)
	if err != nil {
		return
	}
	names, err = fs.Ls(dir)
	if err != nil {
		return
	}
	names, err = ExcludeFiles(names, regexes)
	return
}

func (fs *VFS) LsFromOpenedDirectory(dir File) (names []string, err error) {
	if dir == nil {
		err = commonerrors.UndefinedVariable("directory")
		return
	}
	return dir.Readdirnames(-1)
}

func (fs *VFS) Lls(dir string) (files []os.FileInfo, err error) {
	isDir, err := fs.IsDir(dir)
	if err != nil {
		return
	}
	if !isDir {
		err = commonerrors.Newf(commonerrors.ErrInvalid, "path [%v] is not a directory", dir)
		return
	}
	f, err := fs.GenericOpen(dir)
	if err != nil {
		return
	}
	files, err = fs.LlsFromOpenedDirectory(f)
	_ = f.Close()
	return
}

func (fs *VFS) LlsFromOpenedDirectory(dir File) (files []os.FileInfo, err error) {
	if dir == nil {
		err = commonerrors.UndefinedVariable("directory")
		return
	}
	return dir.Readdir(-1)
}

func (fs *VFS) ConvertToAbsolutePath(rootPath string, paths ...string) ([]string, error) {
	basepath := fs.ConvertFilePath(rootPath)
	converted := make([]string, 0, len(paths))
	for i := range paths {
		path := paths[i]
		var abs string
		if filepath.IsAbs(path) {
			abs = fs.ConvertFilePath(path)
		} else {
			abs = fs.ConvertFilePath(filepath.Join(basepath, path))
		}
		converted = append(converted, abs)
	}
	return converted, nil
}

func (fs *VFS) ConvertToRelativePath(rootPath string, paths ...string) ([]string, error) {
	basepath := fs.ConvertFilePath(rootPath)
	converted := make([]string, 0, len(paths))
	for i := range paths {
		relPath, err := filepath.Rel(basepath, fs.ConvertFilePath(paths[i]))
		if err != nil {
			return nil, commonerrors.WrapError(commonerrors.ErrInvalid, err, "")
		}
		converted = append(converted, relPath)
	}
	return converted, nil
}

// Moves a file (equivalent to mv)
func Move(src string, dest string) (err error) {
	return globalFileSystem.Move(src, dest)
}
func (fs *VFS) Move(src string, dest string) (err error) {
	return fs.MoveWithContext(context.Background(), src, dest)
}

func (fs *VFS) MoveWithContext(ctx context.Context, src string, dest string) (err error) {
	err = scheduling.DetermineContextError(ctx)
	if err != nil {
		return
	}
	if src == dest {
		return
	}
	if !fs.Exists(src) {
		err = commonerrors.Newf(commonerrors.ErrNotFound, "path [%v] does not exist", src)
		return
	}
	err = fs.MkDir(filepath.Dir(dest))
	if err != nil {
		return
	}
	err = fs.vfs.Rename(src, dest)
	if err == nil {
		return
	}
	// os.Rename() gives an "invalid cross-device link" error for Docker containers with volumes.
	isDir, err := fs.IsDir(src)
	if err != nil {
		return
	}
	if isDir {
		err = fs.moveFolder(ctx, src, dest)
	} else {
		err = fs.moveFile(ctx, src, dest)
	}
	return
}

func (fs *VFS) moveFolder(ctx context.Context, src string, dest string) (err error) {
	err = fs.MkDir(dest)
	if err != nil {
		return
	}
	empty, err := fs.IsEmpty(src)
	if err != nil {
		return
	}
	if !empty {
		files, subErr := fs.Ls(src)
		if subErr != nil {
			if IsPathNotExist(subErr) {
				return nil
			}
			err = subErr
			return
		}
		for i := range files {
			err = fs.MoveWithContext(ctx, filepath.Join(src, files[i]), filepath.Join(dest, files[i]))
			if err != nil {
				return
			}
		}
	}
	err = fs.Rm(src)
	return
}

func IsPathNotExist(err error) bool {
	if err == nil {
		return false
	}
	return os.IsNotExist(err) || commonerrors.Any(err, ErrPathNotExist)
}

func (fs *VFS) moveFile(ctx context.Context, src string, dest string) (err error) {
	if src == dest {
		return
	}
	err = copyFileBetweenFS(ctx, fs, src, fs, dest)
	if err != nil {
		return
	}
	err = ConvertFileSystemError(fs.vfs.Remove(src))
	return
}

func (fs *VFS) FileHash(hashAlgo string, path string) (hash string, err error) {
	return fs.FileHashWithContext(context.Background(), hashAlgo, path)
}

func (fs *VFS) FileHashWithContext(ctx context.Context, hashAlgo string, path string) (hash string, err error) {
	hasher, err := NewFileHash(hashAlgo)
	if err != nil {
		return
	}
	hash, err = hasher.CalculateFileWithContext(ctx, fs, path)
	return
}

func Copy(src string, dest string) (err error) {
	return globalFileSystem.Copy(src, dest)
}
func (fs *VFS) Copy(src string, dest string) (err error) {
	return fs.CopyWithContext(context.Background(), src, dest)
}

func (fs *VFS) CopyWithContext(ctx context.Context, src string, dest string) (err error) {
	return fs.CopyWithContextAndExclusionPatterns(ctx, src, dest)
}

func (fs *VFS) CopyWithContextAndExclusionPatterns(ctx context.Context, src string, dest string, exclusionPatterns ...string) (err error) {
	return copyBetweenFS(ctx, fs, src, fs, dest, exclusionPatterns...)
}

func MoveBetweenFS(srcFs FS, src string, destFs FS, dest string) (err error) {
	if srcFs == destFs && src == dest {
		return
	}
	err = CopyBetweenFS(srcFs, src, destFs, dest)
	if err != nil {
		return
	}
	return srcFs.Rm(src)
}

func CopyBetweenFS(srcFs FS, src string, destFs FS, dest string) (err error) {
	return copyBetweenFS(context.Background(), srcFs, src, destFs, dest)
}

func copyBetweenFS(ctx context.Context, srcFs FS, src string, destFs FS, dest string, exclusionPatterns ...string) (err error) {
	if srcFs == destFs && src == dest {
		return
	}
	srcRegexes, err := NewExclusionRegexList(srcFs.PathSeparator(), exclusionPatterns...)
	if err != nil {
		return
	}
	destRegexes, err := NewExclusionRegexList(destFs.PathSeparator(), exclusionPatterns...)
	if err != nil {
		return
	}
	return copyBetweenFSWithExclusionRegexes(ctx, srcFs, src, destFs, dest, srcRegexes, destRegexes)
}

// copyBetweenFSWithExclusionRegexes copies src into dest. Exclusion patterns are matched against
// full paths so that any excluded subtree is pruned from the copy.
func copyBetweenFSWithExclusionRegexes(ctx context.Context, srcFs FS, src string, destFs FS, dest string, srcRegexes []*regexp.Regexp, destRegexes []*regexp.Regexp) (err error) {
	err = scheduling.DetermineContextError(ctx)
	if err != nil {
		return
	}
	if IsPathExcluded(src, srcRegexes...) || IsPathExcluded(dest, destRegexes...) {
		return
	}
	if !srcFs.Exists(src) {
		err = commonerrors.Newf(commonerrors.ErrNotFound, "path [%v] does not exist", src)
		return
	}
	err = destFs.MkDir(dest)
	if err != nil {
		return
	}
	isDir, err := srcFs.IsDir(src)
	if err != nil {
		return
	}
	dst := filepath.Join(dest, filepath.Base(src))
	if isDir {
		err = copyFolderBetweenFS(ctx, srcFs, src, destFs, dst, srcRegexes, destRegexes)
	} else {
		err = copyFileBetweenFS(ctx, srcFs, src, destFs, dst)
	}
	return
}

func copyFolderBetweenFS(ctx context.Context, srcFs FS, src string, destFs FS, dest string, srcRegexes []*regexp.Regexp, destRegexes []*regexp.Regexp) (err error) {
	err = scheduling.DetermineContextError(ctx)
	if err != nil {
		return
	}
	err = destFs.MkDir(dest)
	if err != nil {
		return
	}
	empty, err := srcFs.IsEmpty(src)
	if err != nil {
		return
	}
	if empty {
		return
	}
	files, err := srcFs.Ls(src)
	if err != nil {
		return
	}
	for i := range files {
		err = copyBetweenFSWithExclusionRegexes(ctx, srcFs, filepath.Join(src, files[i]), destFs, dest, srcRegexes, destRegexes)
		if err != nil {
			return
		}
	}
	return
}

func copyFileBetweenFS(ctx context.Context, srcFs FS, src string, destFs FS, dest string) (err error) {
	inputFile, err := srcFs.GenericOpen(src)
	if err != nil {
		return
	}
	defer func() { _ = inputFile.Close() }()
	outputFile, err := destFs.CreateFile(dest)
	if err != nil {
		return
	}
	defer func() { _ = outputFile.Close() }()
	_, err = safeio.CopyDataWithContext(ctx, inputFile, outputFile)
	if err != nil {
		return
	}
	err = inputFile.Close()
	if err != nil {
		return
	}
	err = outputFile.Close()
	return
}

func (fs *VFS) DiskUsage(name string) (usage DiskUsage, err error) {
	du, err := disk.Usage(fs.pathConverter(name))
	if err != nil {
		err = ConvertFileSystemError(err)
		return
	}
	usage = &UsageStat{
		Total:             du.Total,
		Free:              du.Free,
		Used:              du.Used,
		UsedPercent:       du.UsedPercent,
		InodesTotal:       du.InodesTotal,
		InodesUsed:        du.InodesUsed,
		InodesFree:        du.InodesFree,
		InodesUsedPercent: du.InodesUsedPercent,
	}
	return
}

func GetFileSize(name string) (size int64, err error) {
	return globalFileSystem.GetFileSize(name)
}

func (fs *VFS) GetFileSize(name string) (size int64, err error) {
	info, err := fs.Stat(name)
	if err != nil {
		return
	}
	size = info.Size()
	return
}

func SubDirectories(directory string) ([]string, error) {
	return globalFileSystem.SubDirectories(directory)
}

// Return a list of all subdirectories (which are not hidden)
func (fs *VFS) SubDirectories(directory string) ([]string, error) {
	return fs.SubDirectoriesWithContext(context.Background(), directory)
}

func (fs *VFS) SubDirectoriesWithContext(ctx context.Context, directory string) ([]string, error) {
	return fs.subDirectories(ctx, directory, true, nil)
}

func (fs *VFS) SubDirectoriesWithContextAndExclusionPatterns(ctx context.Context, directory string, exclusionPatterns ...string) (directories []string, err error) {
	regexes, err := NewExclusionRegexList(fs.PathSeparator(), exclusionPatterns...)
	if err != nil {
		return
	}
	return fs.subDirectories(ctx, directory, false, regexes)
}

func (fs *VFS) subDirectories(ctx context.Context, directory string, ignoreHidden bool, exclusionPatterns []*regexp.Regexp) (directories []string, err error) {
	err = scheduling.DetermineContextError(ctx)
	if err != nil {
		return
	}
	files, err := afero.ReadDir(fs.vfs, directory)
	if err != nil {
		err = ConvertFileSystemError(err)
		return
	}
	for i := range files {
		file := files[i]
		if !file.IsDir() {
			continue
		}
		name := file.Name()
		if ignoreHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if IsPathExcluded(name, exclusionPatterns...) {
			continue
		}
		directories = append(directories, name)
	}
	return
}

func ListDirTree(dirPath string, list *[]string) error {
	return globalFileSystem.ListDirTree(dirPath, list)
}

// Return a list of files and directories recursively available under specified path
func (fs *VFS) ListDirTree(dirPath string, list *[]string) error {
	return fs.ListDirTreeWithContext(context.Background(), dirPath, list)
}

func (fs *VFS) ListDirTreeWithContext(ctx context.Context, dirPath string, list *[]string) error {
	return fs.ListDirTreeWithContextAndExclusionPatterns(ctx, dirPath, list)
}

func (fs *VFS) ListDirTreeWithContextAndExclusionPatterns(ctx context.Context, dirPath string, list *[]string, exclusionPatterns ...string) (err error) {
	if list == nil {
		return commonerrors.UndefinedVariable("list")
	}
	regexes, err := NewExclusionRegexList(fs.PathSeparator(), exclusionPatterns...)
	if err != nil {
		return
	}
	return fs.listDirTree(ctx, dirPath, list, regexes)
}

func (fs *VFS) listDirTree(ctx context.Context, dirPath string, list *[]string, exclusionPatterns []*regexp.Regexp) (err error) {
	err = scheduling.DetermineContextError(ctx)
	if err != nil {
		return
	}
	elements, err := fs.Ls(dirPath)
	if err != nil {
		return
	}
	for i := range elements {
		elem := elements[i]
		if IsPathExcluded(elem, exclusionPatterns...) {
			continue
		}
		path := filepath.Join(dirPath, elem)
		*list = append(*list, path)
		if isDir, _ := fs.IsDir(path); isDir {
			err = fs.listDirTree(ctx, path, list, exclusionPatterns)
			if err != nil {
				return
			}
		}
	}
	return
}

func (fs *VFS) GarbageCollect(root string, durationSinceLastAccess time.Duration) error {
	return fs.garbageCollect(durationSinceLastAccess, root, false)
}

func (fs *VFS) garbageCollectFile(durationSinceLastAccess time.Duration, path string) (err error) {
	info, err := fs.StatTimes(path)
	if err != nil {
		return
	}
	elapsedTime := time.Since(info.AccessTime())
	if elapsedTime > durationSinceLastAccess {
		err = fs.Rm(path)
	}
	return
}

func (fs *VFS) garbageCollect(durationSinceLastAccess time.Duration, path string, deletePath bool) (err error) {
	if !fs.Exists(path) {
		return
	}
	if isDir, _ := fs.IsDir(path); isDir {
		return fs.garbageCollectDir(durationSinceLastAccess, path, deletePath)
	}
	return fs.garbageCollectFile(durationSinceLastAccess, path)
}

func (fs *VFS) garbageCollectDir(durationSinceLastAccess time.Duration, path string, deletePath bool) (err error) {
	if deletePath && platform.IsWindows() {
		// On Linux and potentially MacOS, the access/modification times of files in a directory do not
		// affect those times for the parent folder, so directory times cannot drive the decision.
		// See https://superuser.com/questions/1039003/linux-how-does-file-modification-time-affect-directory-modification-time-and-di
		err = fs.garbageCollectFile(durationSinceLastAccess, path)
		if err != nil {
			return
		}
		if !fs.Exists(path) {
			return
		}
	}
	files, err := fs.Ls(path)
	if err != nil {
		return
	}
	g, _ := errgroup.WithContext(context.Background())
	for i := range files {
		file := filepath.Join(path, files[i])
		g.Go(func() error {
			return fs.garbageCollect(durationSinceLastAccess, file, true)
		})
	}
	err = g.Wait()
	if err != nil {
		return
	}
	if empty, subErr := fs.IsEmpty(path); subErr == nil && empty && deletePath {
		err = fs.Rm(path)
	}
	return
}

func IsFileHandleUnset(fh uintptr) bool {
	return uint64(fh) == UnsetFileHandle
}

// retrieveSubFile digs through file abstraction layers to find the real file handle.
func retrieveSubFile(top interface{}) interface{} {
	var actualfile = top
	for {
		subFile := reflection.GetUnexportedStructureField(actualfile, "File")
		if subFile == nil {
			break
		}
		actualfile = subFile
	}
	return actualfile
}
