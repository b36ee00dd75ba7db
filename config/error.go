package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/field"
	"github.com/ARM-software/identity-lifecycle/reflection"
)

// IValidationError describes a validation failure together with its location
// in the configuration tree: both the Go field path and the corresponding
// environment variable path derived from `mapstructure` tags.
type IValidationError interface {
	error
	fmt.Stringer
	GetMapStructurePath() string
	GetTreePath() string
	GetReason() string
	Unwrap() error
	RecordField(fieldName string, mapStructureFieldName *string, mapStructurePrefix *string)
	RecordPrefix(mapStructurePrefix string)
	GetTree() []string
	GetMapStructureTree() []string
	GetMapStructurePrefix() *string
}

// WrapFieldValidationError wraps the validation error of a structure field so that the
// field is recorded as part of the error location. It returns nil when err is nil.
func WrapFieldValidationError(fieldName string, mapStructure, prefix *string, err error) IValidationError {
	vErr := newValidationError(err)
	if vErr == nil {
		return nil
	}
	vErr.RecordField(fieldName, mapStructure, prefix)
	return vErr
}

// WrapValidationError wraps the validation error of a whole structure, recording the
// environment variable prefix when one is set. It returns nil when err is nil.
func WrapValidationError(prefix *string, err error) IValidationError {
	vErr := newValidationError(err)
	if vErr == nil {
		return nil
	}
	if !reflection.IsEmpty(prefix) {
		vErr.RecordPrefix(*prefix)
	}
	return vErr
}

type validationError struct {
	fieldPath []string
	tagPath   []string
	tagPrefix *string
	reason    string
}

func (v *validationError) GetTree() []string {
	return v.fieldPath
}

func (v *validationError) GetMapStructureTree() []string {
	return v.tagPath
}

func (v *validationError) GetMapStructurePrefix() *string {
	return v.tagPrefix
}

func (v *validationError) GetReason() string {
	return v.reason
}

// RecordField prepends a field to the error location as the error travels up the
// configuration tree.
func (v *validationError) RecordField(fieldName string, mapStructureFieldName *string, mapStructurePrefix *string) {
	v.fieldPath = append([]string{strings.TrimSpace(fieldName)}, v.fieldPath...)
	if mapStructureFieldName != nil {
		tag := strings.ToUpper(strings.TrimSpace(*mapStructureFieldName))
		v.tagPath = append([]string{tag}, v.tagPath...)
	}
	v.tagPrefix = mapStructurePrefix
}

func (v *validationError) RecordPrefix(mapStructurePrefix string) {
	v.tagPrefix = field.ToOptionalString(mapStructurePrefix)
}

// GetMapStructurePath returns the environment variable like path of the failing
// entry, e.g. PREFIX_STAGING_DIRECTORY.
func (v *validationError) GetMapStructurePath() string {
	if len(v.tagPath) == 0 {
		return ""
	}
	path := strings.ReplaceAll(strings.Join(v.tagPath, EnvVarSeparator), "-", EnvVarSeparator)
	if v.tagPrefix == nil {
		return path
	}
	return fmt.Sprintf("%v%v%v", strings.ToUpper(strings.TrimSpace(*v.tagPrefix)), EnvVarSeparator, path)
}

// GetTreePath returns the Go field path of the failing entry, e.g. Staging->Directory.
func (v *validationError) GetTreePath() string {
	if len(v.fieldPath) == 0 {
		return ""
	}
	return strings.Join(v.fieldPath, "->")
}

func (v *validationError) Error() string {
	var description strings.Builder
	if treePath := v.GetTreePath(); treePath != "" {
		description.WriteString(fmt.Sprintf(" (%v)", treePath))
	}
	if tagPath := v.GetMapStructurePath(); tagPath != "" {
		description.WriteString(fmt.Sprintf(" [%v]", tagPath))
	}
	if v.reason != "" {
		description.WriteString(" " + v.reason)
	}
	return commonerrors.Newf(v.Unwrap(), "configuration failed validation:%v", description.String()).Error()
}

func (v *validationError) Unwrap() error {
	return commonerrors.ErrInvalid
}

func (v *validationError) String() string {
	return v.Error()
}

func newValidationError(err error) *validationError {
	if err == nil {
		return nil
	}
	var direct *validationError
	if errors.As(err, &direct) {
		return direct
	}
	var known IValidationError
	if errors.As(err, &known) {
		return &validationError{
			fieldPath: known.GetTree(),
			tagPath:   known.GetMapStructureTree(),
			tagPrefix: known.GetMapStructurePrefix(),
			reason:    known.GetReason(),
		}
	}
	var several validation.Errors
	if errors.As(err, &several) {
		return newValidationErrorFromOzzoErrors(several)
	}
	var single validation.Error
	if errors.As(err, &single) {
		return newValidationErrorFromOzzoError(single)
	}
	return &validationError{reason: err.Error()}
}

// newValidationErrorFromOzzoErrors keeps only the first failing field in sort order
// so the reported location stays deterministic.
func newValidationErrorFromOzzoErrors(errs validation.Errors) *validationError {
	fields := slices.Sorted(maps.Keys(errs))
	if len(fields) == 0 {
		return &validationError{reason: errs.Error()}
	}
	vErr := &validationError{reason: errs[fields[0]].Error()}
	vErr.RecordField(fields[0], nil, nil)
	return vErr
}

func newValidationErrorFromOzzoError(err validation.Error) *validationError {
	vErr := &validationError{reason: err.Message()}
	if params := slices.Sorted(maps.Keys(err.Params())); len(params) > 0 {
		vErr.RecordField(params[0], nil, nil)
	}
	return vErr
}
