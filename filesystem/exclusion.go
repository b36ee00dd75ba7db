package filesystem

import (
	"fmt"
	"regexp"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/reflection"
)

// NewExclusionRegexList compiles exclusion patterns into regexes. Each pattern is also
// derived into variants matching it as any path element, so that excluding `.staging`
// excludes everything beneath a `.staging` directory too.
func NewExclusionRegexList(pathSeparator rune, exclusionPatterns ...string) ([]*regexp.Regexp, error) {
	var derived []string
	for i := range exclusionPatterns {
		pattern := exclusionPatterns[i]
		if reflection.IsEmpty(pattern) {
			continue
		}
		derived = append(derived, pattern, fmt.Sprintf(".*/%v/.*", pattern), fmt.Sprintf(".*%v%v%v.*", pathSeparator, pattern, pathSeparator))
	}
	regexes := make([]*regexp.Regexp, 0, len(derived))
	for i := range derived {
		r, err := regexp.Compile(derived[i])
		if err != nil {
			return nil, commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "could not compile pattern [%v]", derived[i])
		}
		regexes = append(regexes, r)
	}
	return regexes, nil
}

// IsPathExcluded states whether path matches any of the exclusion regexes.
func IsPathExcluded(path string, exclusionPatterns ...*regexp.Regexp) bool {
	for i := range exclusionPatterns {
		if exclusionPatterns[i].MatchString(path) {
			return true
		}
	}
	return false
}

// IsPathExcludedFromPatterns is IsPathExcluded over raw patterns. Patterns which do not
// compile exclude nothing.
func IsPathExcludedFromPatterns(path string, pathSeparator rune, exclusionPatterns ...string) bool {
	regexes, err := NewExclusionRegexList(pathSeparator, exclusionPatterns...)
	if err != nil {
		return false
	}
	return IsPathExcluded(path, regexes...)
}

// ExcludeFiles returns the files which match none of the exclusion regexes.
func ExcludeFiles(files []string, regexes []*regexp.Regexp) (cleansedList []string, err error) {
	cleansedList = []string{}
	for i := range files {
		if IsPathExcluded(files[i], regexes...) {
			continue
		}
		cleansedList = append(cleansedList, files[i])
	}
	return
}

// ExcludeAll excludes files
func ExcludeAll(files []string, exclusionPatterns ...string) ([]string, error) {
	return globalFileSystem.ExcludeAll(files, exclusionPatterns...)
}

func (fs *VFS) ExcludeAll(files []string, exclusionPatterns ...string) ([]string, error) {
	regexes, err := NewExclusionRegexList(fs.PathSeparator(), exclusionPatterns...)
	if err != nil {
		return nil, err
	}
	return ExcludeFiles(files, regexes)
}
