package archive

import (
	"context"
	"encoding/json"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/directory"
	"github.com/ARM-software/identity-lifecycle/filesystem"
	"github.com/ARM-software/identity-lifecycle/hashing"
	"github.com/ARM-software/identity-lifecycle/scheduling"
)

// manifestSchema constrains the manifest document the directory CLI writes next to the
// artifacts it downloads.
const manifestSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["job_id", "artifacts"],
  "properties": {
    "job_id": {"type": "string", "minLength": 1},
    "artifacts": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "size", "checksum"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "size": {"type": "integer", "minimum": 0},
          "checksum": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

var compiledManifestSchema = jsonschema.MustCompileString("manifest.schema.json", manifestSchema)

// LoadManifest reads the manifest found in dir and validates it against its schema.
func LoadManifest(fs filesystem.FS, dir string) (manifest *directory.ExportManifest, err error) {
	if fs == nil {
		err = commonerrors.UndefinedVariable("filesystem")
		return
	}
	path := filepath.Join(dir, directory.ManifestFileName)
	if !fs.Exists(path) {
		err = commonerrors.Newf(commonerrors.ErrNotFound, "the download [%v] has no manifest", dir)
		return
	}
	document, err := fs.ReadFile(path)
	if err != nil {
		err = commonerrors.WrapIfNotCommonErrorf(commonerrors.ErrUnexpected, err, "could not read the manifest [%v]", path)
		return
	}
	var raw any
	err = json.Unmarshal(document, &raw)
	if err != nil {
		err = commonerrors.WrapErrorf(commonerrors.ErrMarshalling, err, "could not parse the manifest [%v]", path)
		return
	}
	err = compiledManifestSchema.Validate(raw)
	if err != nil {
		err = commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "the manifest [%v] does not match its schema", path)
		return
	}
	loaded := directory.ExportManifest{}
	err = json.Unmarshal(document, &loaded)
	if err != nil {
		err = commonerrors.WrapErrorf(commonerrors.ErrMarshalling, err, "could not parse the manifest [%v]", path)
		return
	}
	manifest = &loaded
	return
}

// VerifyArtifacts checks that every artifact the manifest lists is present in dir with
// the advertised size and checksum.
func VerifyArtifacts(ctx context.Context, fs filesystem.FS, dir string, manifest *directory.ExportManifest) error {
	if fs == nil {
		return commonerrors.UndefinedVariable("filesystem")
	}
	if manifest == nil {
		return commonerrors.UndefinedVariable("manifest")
	}
	for i := range manifest.Artifacts {
		err := scheduling.DetermineContextError(ctx)
		if err != nil {
			return err
		}
		artifact := manifest.Artifacts[i]
		path := filepath.Join(dir, artifact.Name)
		if !fs.Exists(path) {
			return commonerrors.Newf(commonerrors.ErrNotFound, "artifact '%v' is listed in the manifest but missing from [%v]", artifact.Name, dir)
		}
		size, err := fs.GetFileSize(path)
		if err != nil {
			return commonerrors.WrapIfNotCommonErrorf(commonerrors.ErrUnexpected, err, "could not determine the size of artifact '%v'", artifact.Name)
		}
		if size != artifact.Size {
			return commonerrors.Newf(commonerrors.ErrInvalid, "artifact '%v' is %v bytes but the manifest states %v", artifact.Name, size, artifact.Size)
		}
		checksum, err := fs.FileHashWithContext(ctx, hashing.HashXXHash, path)
		if err != nil {
			return commonerrors.WrapIfNotCommonErrorf(commonerrors.ErrUnexpected, err, "could not hash artifact '%v'", artifact.Name)
		}
		if checksum != artifact.Checksum {
			return commonerrors.Newf(commonerrors.ErrInvalid, "artifact '%v' does not match its manifest checksum", artifact.Name)
		}
	}
	return nil
}
