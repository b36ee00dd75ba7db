package filesystem

import (
	"fmt"
	"sort"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
)

func TestExcludeFiles(t *testing.T) {
	mboxEntry := fmt.Sprintf("%v mbox0", faker.Sentence())
	calendarEntry := fmt.Sprintf("%vcal3%v", faker.Name(), faker.Word())
	artefacts := []string{
		mboxEntry,
		fmt.Sprintf("drive1$!(%v", faker.URL()),
		fmt.Sprintf("%vvault2%v", faker.URL(), faker.Sentence()),
		calendarEntry,
		fmt.Sprintf("%v^&token4%v", faker.IPv4(), faker.UUIDHyphenated()),
	}

	tests := []struct {
		name              string
		exclusionPatterns []string
		expectedError     error
		expectedResult    []string
	}{
		{
			name:              "no patterns keeps everything",
			exclusionPatterns: nil,
			expectedResult:    artefacts,
		},
		{
			name:              "all artefacts excluded",
			exclusionPatterns: []string{".*mbox0.*", ".*drive1.*", ".*vault2.*", ".*cal3.*", ".*token4.*"},
			expectedResult:    []string{},
		},
		{
			name:              "mailbox and calendar kept",
			exclusionPatterns: []string{".*drive1.*", ".*vault2.*", ".*token4.*"},
			expectedResult:    []string{mboxEntry, calendarEntry},
		},
		{
			name:              "only mailbox kept",
			exclusionPatterns: []string{".*drive1.*", ".*vault2.*", ".*cal3.*", ".*token4.*"},
			expectedResult:    []string{mboxEntry},
		},
		{
			name:              "only calendar kept",
			exclusionPatterns: []string{".*mbox0.*", ".*drive1.*", ".*vault2.*", ".*token4.*"},
			expectedResult:    []string{calendarEntry},
		},
		{
			name:              "malformed pattern",
			exclusionPatterns: []string{"*mbox0**"},
			expectedError:     commonerrors.ErrInvalid,
		},
	}

	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			regexes, err := NewExclusionRegexList(globalFileSystem.PathSeparator(), test.exclusionPatterns...)
			if test.expectedError != nil {
				require.Error(t, err)
				assert.True(t, commonerrors.Any(err, test.expectedError))
				return
			}
			kept, err := ExcludeFiles(artefacts, regexes)
			require.NoError(t, err)
			sort.Strings(kept)
			sort.Strings(test.expectedResult)
			assert.Equal(t, test.expectedResult, kept)
			for i := range kept {
				assert.False(t, IsPathExcludedFromPatterns(kept[i], globalFileSystem.PathSeparator(), test.exclusionPatterns...))
			}
		})
	}
}

func TestExcludeAll(t *testing.T) {
	t.Parallel()
	homeTree := []string{
		"export/ledger", "exports", ".staging", ".staging/manifest", "home/.staging/export/ledger", ".staging88", ".staging88/manifest", "home/.staging88/export-ledger", "home/.staging88/export/ledger",
	}
	tests := []struct {
		input           []string
		exclusions      []string
		expectedResults []string
	}{
		{
			input:           homeTree,
			exclusions:      []string{},
			expectedResults: homeTree,
		},
		{
			input:           homeTree,
			exclusions:      []string{"unmatched"},
			expectedResults: homeTree,
		},
		{
			input:           []string{},
			exclusions:      []string{"anything"},
			expectedResults: []string{},
		},
		{
			input:           homeTree,
			exclusions:      []string{""},
			expectedResults: homeTree,
		},
		{
			input:           homeTree,
			exclusions:      []string{"export.*"},
			expectedResults: []string{".staging", ".staging/manifest", ".staging88", ".staging88/manifest"},
		},
		{
			input:           homeTree,
			exclusions:      []string{".*ledger"},
			expectedResults: []string{"exports", ".staging", ".staging/manifest", ".staging88", ".staging88/manifest"},
		},
		{
			input:           homeTree,
			exclusions:      []string{"[.]staging.*"},
			expectedResults: []string{"export/ledger", "exports"},
		},
		{
			input:           homeTree,
			exclusions:      []string{"[.]staging.*/.*"},
			expectedResults: []string{"export/ledger", "exports", ".staging", ".staging88"},
		},
		{
			input:           homeTree,
			exclusions:      []string{"[.]staging.*", ".*ledger"},
			expectedResults: []string{"exports"},
		},
	}
	for i := range tests {
		test := tests[i]
		t.Run(fmt.Sprintf("%v: %v", i, test.exclusions), func(t *testing.T) {
			t.Parallel()
			kept, err := ExcludeAll(test.input, test.exclusions...)
			require.NoError(t, err)
			assert.Equal(t, test.expectedResults, kept)
		})
	}
}

func TestIsPathExcludedFromPatterns(t *testing.T) {
	tests := []struct {
		path              string
		pathSeparator     rune
		exclusionPatterns []string
		excluded          bool
	}{
		{
			path:              "",
			pathSeparator:     '/',
			exclusionPatterns: []string{},
			excluded:          false,
		},
		{
			path:              "",
			pathSeparator:     '/',
			exclusionPatterns: []string{".*[.]bak[^13]"},
			excluded:          false,
		},
		{
			path:              "/home/jo.doe/.staging/export/mailbox.bak2",
			pathSeparator:     '/',
			exclusionPatterns: []string{},
			excluded:          false,
		},
		{
			path:              "/home/jo.doe/.staging/export/mailbox.bak2",
			pathSeparator:     '/',
			exclusionPatterns: []string{".*[.]bak[^13]"},
			excluded:          true,
		},
		{
			path:              "C:\\Users\\jo.doe\\AppData\\Local\\Staging\\export\\mailbox.bak2",
			pathSeparator:     '\\',
			exclusionPatterns: []string{".*[.]bak[^13]"},
			excluded:          true,
		},
		{
			path:              "/home/jo.doe/.staging/export/mailbox.bak3",
			pathSeparator:     '/',
			exclusionPatterns: []string{".*[.]bak[^13]"},
			excluded:          false,
		},
		{
			path:              "C:\\Users\\jo.doe\\AppData\\Local\\Staging\\export\\mailbox.bak3",
			pathSeparator:     '\\',
			exclusionPatterns: []string{".*[.]bak[^13]"},
			excluded:          false,
		},
		{
			path:              "/home/jo.doe/.staging/export/mailbox.bak2",
			pathSeparator:     '/',
			exclusionPatterns: []string{".*[.]bak2"},
			excluded:          true,
		},
		{
			path:              "/home/jo.doe/.staging/export/mailbox.bak3",
			pathSeparator:     '/',
			exclusionPatterns: []string{".*[.]bak2"},
			excluded:          false,
		},
		{
			path:              "/home/jo.doe/.staging/export/mailbox.bak3",
			pathSeparator:     '/',
			exclusionPatterns: []string{".*"},
			excluded:          true,
		},
		{
			path:              "/home/jo.doe/.staging/export/mailbox.bak3",
			pathSeparator:     '/',
			exclusionPatterns: []string{".*bak3"},
			excluded:          true,
		},
		{
			path:              "/home/jo.doe/.staging",
			pathSeparator:     '/',
			exclusionPatterns: []string{"*broken["},
			excluded:          false,
		},
	}
	for i := range tests {
		test := tests[i]
		t.Run(fmt.Sprintf("patterns %v against %v", test.exclusionPatterns, test.path), func(t *testing.T) {
			if test.excluded {
				assert.True(t, IsPathExcludedFromPatterns(test.path, test.pathSeparator, test.exclusionPatterns...))
			} else {
				assert.False(t, IsPathExcludedFromPatterns(test.path, test.pathSeparator, test.exclusionPatterns...))
			}
		})
	}
}
