package directory

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/identity"
)

// TransferKind selects which class of data a launch-data-transfer operation moves.
type TransferKind string

const (
	TransferDrive    TransferKind = "drive"
	TransferCalendar TransferKind = "calendar"
)

// User is the directory record backing an address.
type User struct {
	// Address is the record's primary address.
	Address identity.Address
	// Suspended states whether the account can currently sign in.
	Suspended bool
	// Attributes carries whichever further fields the directory reported. They are kept
	// for logging and troubleshooting only.
	Attributes map[string]any
}

// ExportScope bounds what a bulk export contains. It is typically loaded from a YAML
// document supplied by the operator.
type ExportScope struct {
	// Query restricts the export to entries matching the directory's query syntax.
	Query string `yaml:"query"`
	// DataKinds lists the classes of data to export, e.g. mail or drive.
	DataKinds []string `yaml:"data_kinds"`
	// Start excludes entries older than this instant when set.
	Start time.Time `yaml:"start"`
	// End excludes entries newer than this instant when set.
	End time.Time `yaml:"end"`
}

func (s *ExportScope) Validate() error {
	err := validation.ValidateStruct(s,
		validation.Field(&s.DataKinds, validation.Required, validation.Each(validation.Required)),
	)
	if err != nil {
		return err
	}
	if !s.Start.IsZero() && !s.End.IsZero() && s.End.Before(s.Start) {
		return commonerrors.Newf(commonerrors.ErrInvalid, "export scope ends (%v) before it starts (%v)", s.End, s.Start)
	}
	return nil
}

// DefaultExportScope returns the scope used when the operator supplies none: all mail
// and drive data, unbounded in time.
func DefaultExportScope() *ExportScope {
	return &ExportScope{
		DataKinds: []string{"mail", "drive"},
	}
}

// ManifestFileName is the name of the manifest document a download-export operation
// places alongside the artifacts it fetched.
const ManifestFileName = "manifest.json"

// ExportManifest describes the artifacts a completed export produced. The directory
// writes it next to the downloaded artifacts so that they can be verified.
type ExportManifest struct {
	JobID     string           `json:"job_id"`
	Artifacts []ExportArtifact `json:"artifacts"`
}

// ExportArtifact describes a single file belonging to an export.
type ExportArtifact struct {
	// Name is the file name of the artifact, relative to the download directory.
	Name string `json:"name"`
	// Size is the artifact size in bytes.
	Size int64 `json:"size"`
	// Checksum is the hexadecimal xxhash digest of the artifact content.
	Checksum string `json:"checksum"`
}
