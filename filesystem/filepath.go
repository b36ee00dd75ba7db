/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package filesystem

import (
	"path"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/platform"
	"github.com/ARM-software/identity-lifecycle/reflection"
)

// FilepathStem returns the final path component, without its suffix.
func FilepathStem(fp string) string {
	return strings.TrimSuffix(filepath.Base(fp), filepath.Ext(fp))
}

// FileTreeDepth returns the depth of a file in a tree starting from root
func FileTreeDepth(fs FS, root, filePath string) (depth int64, err error) {
	if reflection.IsEmpty(filePath) {
		return
	}
	rel, err := fs.ConvertToRelativePath(root, filePath)
	if err != nil {
		return
	}
	diff := rel[0]
	if reflection.IsEmpty(diff) {
		return
	}
	diff = strings.ReplaceAll(diff, string(fs.PathSeparator()), "/")
	depth = int64(len(strings.Split(diff, "/")) - 1)
	return
}

// EndsWithPathSeparator states whether a path is ending with a path separator or not.
func EndsWithPathSeparator(fs FS, filePath string) bool {
	return strings.HasSuffix(filePath, "/") || strings.HasSuffix(filePath, string(fs.PathSeparator()))
}

// FilepathParents returns a list of all the ancestors of a path.
// e.g. for /foo/bar/setup.py, it returns [foo, foo/bar].
func FilepathParents(fp string) []string {
	return FilePathParentsOnFilesystem(GetGlobalFileSystem(), fp)
}

// FilePathParentsOnFilesystem is similar to FilepathParents but with the ability to define the filesystem to use.
func FilePathParentsOnFilesystem(fs FS, fp string) (parents []string) {
	if reflection.IsEmpty(fp) {
		return
	}
	elements := strings.Split(filepath.Clean(strings.TrimSpace(fp)), string(fs.PathSeparator()))
	parent := ""
	for i := 0; i < len(elements)-1; i++ {
		element := elements[i]
		if reflection.IsEmpty(element) || element == "." {
			continue
		}
		parent = filepath.Join(parent, element)
		parents = append(parents, parent)
	}
	return
}

// FilePathJoin joins any number of path elements into a single path, using the
// path separator defined by the filesystem. Unlike filepath.Join, it is filesystem aware.
func FilePathJoin(fs FS, element ...string) string {
	if fs == nil {
		return ""
	}
	if fs.PathSeparator() == platform.PathSeparator {
		return filepath.Join(element...)
	}
	separator := string(fs.PathSeparator())
	elements := make([]string, 0, len(element))
	for i := range element {
		cleansed := strings.ReplaceAll(element[i], string(platform.PathSeparator), "/")
		elements = append(elements, strings.ReplaceAll(cleansed, separator, "/"))
	}
	return strings.ReplaceAll(path.Join(elements...), "/", separator)
}

type pathValidationRule struct {
	enabled    bool
	checkExist bool
}

func (r *pathValidationRule) Validate(value interface{}) error {
	if !r.enabled {
		return nil
	}
	if value == nil {
		return commonerrors.UndefinedVariable("path")
	}
	str, ok := value.(string)
	if !ok {
		return commonerrors.Newf(commonerrors.ErrInvalid, "path [%v] is not a string", value)
	}
	if reflection.IsEmpty(str) {
		return commonerrors.UndefinedVariable("path")
	}
	if strings.ContainsAny(str, "\n\r") {
		return commonerrors.Newf(commonerrors.ErrInvalid, "path [%v] contains line breaks", str)
	}
	if r.checkExist && !Exists(str) {
		return commonerrors.Newf(commonerrors.ErrNotFound, "path [%v] does not exist", str)
	}
	return nil
}

// NewOSPathValidationRule returns a validation rule checking that a value is a plausible path
// on the current platform. The check is only carried out when enabled is set.
func NewOSPathValidationRule(enabled bool) validation.Rule {
	return &pathValidationRule{enabled: enabled}
}

// NewOSPathExistRule is similar to NewOSPathValidationRule but also checks that the path exists
// on the filesystem.
func NewOSPathExistRule(enabled bool) validation.Rule {
	return &pathValidationRule{enabled: enabled, checkExist: true}
}
