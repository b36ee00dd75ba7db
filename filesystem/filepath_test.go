package filesystem

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/go-faker/faker/v4"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/commonerrors/errortest"
	"github.com/ARM-software/identity-lifecycle/platform"
)

func TestFilepathStem(t *testing.T) {
	t.Run("plain file name", func(t *testing.T) {
		assert.Equal(t, "manifest", FilepathStem("manifest.json"))
	})
	t.Run("nested path", func(t *testing.T) {
		assert.Equal(t, "mailbox", FilepathStem(filepath.Join("staging", "jo.doe", "mailbox.mbox")))
	})
	t.Run("no extension", func(t *testing.T) {
		assert.Equal(t, "ledger", FilepathStem(filepath.Join("records", "ledger")))
	})
	t.Run("only last suffix is stripped", func(t *testing.T) {
		assert.Equal(t, "exports.tar", FilepathStem("exports.tar.gz"))
	})
}

func TestFilepathParents(t *testing.T) {
	type parentsTest struct {
		path            string
		expectedParents []string
	}
	tests := []parentsTest{
		{path: ""},
		{path: "      "},
		{path: "/"},
		{path: "."},
		{path: "./"},
		{path: "./ledger"},
		{
			path:            filepath.Join("staging", "jo.doe", "export", "manifest.json"),
			expectedParents: []string{"staging", filepath.Join("staging", "jo.doe"), filepath.Join("staging", "jo.doe", "export")},
		},
		{
			path:            "/staging/jo.doe/mailbox.mbox",
			expectedParents: []string{"staging", filepath.Join("staging", "jo.doe")},
		},
		{
			path:            "staging//jo.doe///mailbox.mbox",
			expectedParents: []string{"staging", filepath.Join("staging", "jo.doe")},
		},
	}
	if !platform.IsWindows() {
		tests = append(tests, parentsTest{
			path:            "C:/staging/jo.doe/manifest.json",
			expectedParents: []string{"C:", "C:/staging", "C:/staging/jo.doe"},
		})
	}
	for i := range tests {
		test := tests[i]
		t.Run(fmt.Sprintf("parents of [%v]", test.path), func(t *testing.T) {
			parents := FilepathParents(test.path)
			if len(test.expectedParents) == 0 {
				assert.Empty(t, parents)
			} else {
				assert.Equal(t, test.expectedParents, parents)
			}
		})
	}
}

func TestFileTreeDepth(t *testing.T) {
	for _, fsType := range FileSystemTypes {
		t.Run(fmt.Sprint(fsType), func(t *testing.T) {
			fs := NewFs(fsType)
			root := fmt.Sprintf("/%v", faker.Username())
			accountDir := FilePathJoin(fs, root, "jo.doe")
			tests := []struct {
				file          string
				expectedDepth int64
			}{
				{file: "", expectedDepth: 0},
				{file: root, expectedDepth: 0},
				{file: FilePathJoin(fs, root, "ledger.ndjson"), expectedDepth: 0},
				{file: FilePathJoin(fs, accountDir, "mailbox.mbox"), expectedDepth: 1},
				{file: FilePathJoin(fs, accountDir, "export", "2026", "mailbox.mbox"), expectedDepth: 3},
				{file: FilePathJoin(fs, accountDir, fmt.Sprintf("%v &#~@£*-_", faker.Name()), "drive.blob"), expectedDepth: 2},
			}
			for i := range tests {
				test := tests[i]
				t.Run(fmt.Sprintf("depth of [%v]", test.file), func(t *testing.T) {
					depth, err := FileTreeDepth(fs, root, test.file)
					require.NoError(t, err)
					assert.Equal(t, test.expectedDepth, depth)
				})
			}
		})
	}
}

func TestEndsWithPathSeparator(t *testing.T) {
	for _, fsType := range FileSystemTypes {
		t.Run(fmt.Sprint(fsType), func(t *testing.T) {
			fs := NewFs(fsType)
			sep := string(fs.PathSeparator())
			assert.False(t, EndsWithPathSeparator(fs, ""))
			assert.False(t, EndsWithPathSeparator(fs, "staging"))
			assert.True(t, EndsWithPathSeparator(fs, "staging"+sep))
			assert.True(t, EndsWithPathSeparator(fs, "staging/"))
			// filepath.Join cleans away any trailing separator.
			assert.False(t, EndsWithPathSeparator(fs, filepath.Join("staging", "jo.doe"+sep)))
		})
	}
}

func TestFilePathJoin(t *testing.T) {
	winFS := NewVirtualFileSystemWithPathSeparator(afero.NewMemMapFs(), InMemoryFS, IdentityPathConverterFunc, '\\')
	slashFS := NewVirtualFileSystemWithPathSeparator(afero.NewMemMapFs(), InMemoryFS, IdentityPathConverterFunc, '/')

	tests := []struct {
		fs       FS
		elements []string
		expected string
	}{
		{fs: slashFS, elements: nil, expected: ""},
		{fs: slashFS, elements: []string{"staging", "jo.doe", "export"}, expected: "staging/jo.doe/export"},
		{fs: slashFS, elements: []string{"staging", "", "export"}, expected: "staging/export"},
		{fs: slashFS, elements: []string{"staging", "..", "export"}, expected: "export"},
		{fs: winFS, elements: []string{"staging", "jo.doe", "export"}, expected: "staging\\jo.doe\\export"},
		{fs: winFS, elements: []string{"staging/jo.doe", "export"}, expected: "staging\\jo.doe\\export"},
		{fs: winFS, elements: []string{"C:\\staging", "jo.doe/export"}, expected: "C:\\staging\\jo.doe\\export"},
	}
	for i := range tests {
		test := tests[i]
		t.Run(fmt.Sprintf("join %v", test.elements), func(t *testing.T) {
			assert.Equal(t, test.expected, FilePathJoin(test.fs, test.elements...))
		})
	}
	t.Run("undefined filesystem", func(t *testing.T) {
		assert.Empty(t, FilePathJoin(nil, "staging", "export"))
	})
}

func TestPathValidationRules(t *testing.T) {
	t.Run("disabled rules accept anything", func(t *testing.T) {
		assert.NoError(t, validation.Validate(nil, NewOSPathValidationRule(false)))
		assert.NoError(t, validation.Validate(fmt.Sprintf("%v\n%v", faker.Sentence(), faker.Sentence()), NewOSPathExistRule(false)))
	})
	t.Run("existing path", func(t *testing.T) {
		tmpDir := t.TempDir()
		file, err := TouchTempFile(tmpDir, "ledger-*.ndjson")
		require.NoError(t, err)
		assert.NoError(t, validation.Validate(tmpDir, NewOSPathExistRule(true)))
		assert.NoError(t, validation.Validate(file, NewOSPathExistRule(true)))
	})
	t.Run("plausible but absent path", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), faker.Username())
		assert.NoError(t, validation.Validate(missing, NewOSPathValidationRule(true)))
		errortest.AssertError(t, validation.Validate(missing, NewOSPathExistRule(true)), commonerrors.ErrNotFound)
	})
	t.Run("rejected values", func(t *testing.T) {
		tests := []struct {
			value          interface{}
			expectedErrors []error
		}{
			{value: nil, expectedErrors: []error{commonerrors.ErrUndefined}},
			{value: "   ", expectedErrors: []error{commonerrors.ErrUndefined}},
			{value: 123, expectedErrors: []error{commonerrors.ErrInvalid}},
			{value: "staging\njo.doe", expectedErrors: []error{commonerrors.ErrInvalid}},
		}
		for i := range tests {
			test := tests[i]
			errortest.AssertError(t, validation.Validate(test.value, NewOSPathValidationRule(true)), test.expectedErrors...)
			errortest.AssertError(t, validation.Validate(test.value, NewOSPathExistRule(true)), test.expectedErrors...)
		}
	})
}
