package archive

import (
	"gopkg.in/yaml.v3"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/directory"
	"github.com/ARM-software/identity-lifecycle/filesystem"
)

// LoadScope reads an export scope from a YAML document, e.g.
//
//	query: "from:jane.doe@example.com"
//	data_kinds: [mail, drive]
//	start: 2023-01-01T00:00:00Z
//
// An empty path yields the default scope.
func LoadScope(fs filesystem.FS, path string) (scope *directory.ExportScope, err error) {
	if fs == nil {
		err = commonerrors.UndefinedVariable("filesystem")
		return
	}
	if path == "" {
		scope = directory.DefaultExportScope()
		return
	}
	if !fs.Exists(path) {
		err = commonerrors.Newf(commonerrors.ErrNotFound, "scope document [%v] could not be found", path)
		return
	}
	document, err := fs.ReadFile(path)
	if err != nil {
		err = commonerrors.WrapIfNotCommonErrorf(commonerrors.ErrUnexpected, err, "could not read the scope document [%v]", path)
		return
	}
	loaded := directory.DefaultExportScope()
	err = yaml.Unmarshal(document, loaded)
	if err != nil {
		err = commonerrors.WrapErrorf(commonerrors.ErrMarshalling, err, "could not parse the scope document [%v]", path)
		return
	}
	err = loaded.Validate()
	if err != nil {
		err = commonerrors.WrapIfNotCommonErrorf(commonerrors.ErrInvalid, err, "invalid scope document [%v]", path)
		return
	}
	scope = loaded
	return
}
