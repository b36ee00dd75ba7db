/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package collection

import (
	"strings"
	"unicode"
)

func isAllWhitespace(line string) bool {
	return strings.IndexFunc(line, func(c rune) bool { return !unicode.IsSpace(c) }) < 0
}

func splitAndTrim(input string, sep string, keepBlankItems bool) (items []string) {
	if len(input) == 0 {
		items = []string{} // a named return left untouched would be []string(nil)
		return
	}
	for _, part := range strings.Split(input, sep) {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" || (keepBlankItems && isAllWhitespace(part)) {
			items = append(items, trimmed)
		}
	}
	return
}

// ParseListWithCleanup splits a string into a list like strings.Split but also removes any whitespace surrounding the different items
// for example,
// ParseListWithCleanup("a, b ,  c", ",") returns []{"a","b","c"}
func ParseListWithCleanup(input string, sep string) (newS []string) {
	return splitAndTrim(input, sep, false)
}

// ParseListWithCleanupKeepBlankLines behaves like ParseListWithCleanup but an item made
// entirely of whitespace is kept as an empty string instead of being dropped. For example,
// ParseListWithCleanupKeepBlankLines("a, b ,    , c", ",") returns []{"a","b", "", "c"}
func ParseListWithCleanupKeepBlankLines(input string, sep string) (newS []string) {
	return splitAndTrim(input, sep, true)
}

// ParseCommaSeparatedList returns the list of string separated by a comma
func ParseCommaSeparatedList(input string) []string {
	return ParseListWithCleanup(input, ",")
}
