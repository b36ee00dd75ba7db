package errortest

import (
	"testing"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
)

func TestAssertError(t *testing.T) {
	AssertError(t, commonerrors.ErrUndefined, commonerrors.ErrNotFound, commonerrors.ErrMarshalling, commonerrors.ErrUndefined)
	AssertError(t, commonerrors.Newf(commonerrors.ErrTimeout, "export job %v gave up", "jx-42"), commonerrors.ErrTimeout)
}

func TestAssertErrorDescription(t *testing.T) {
	AssertErrorDescription(t, commonerrors.New(commonerrors.ErrConflict, "address already holds a group"), "already holds")
}

func TestRequireError(t *testing.T) {
	RequireError(t, commonerrors.ErrUndefined, commonerrors.ErrNotFound, commonerrors.ErrMarshalling, commonerrors.ErrUndefined)
	RequireError(t, commonerrors.WrapError(commonerrors.ErrCancelled, commonerrors.ErrUnknown, "run interrupted"), commonerrors.ErrCancelled)
}

func TestRequireErrorDescription(t *testing.T) {
	RequireErrorDescription(t, commonerrors.New(commonerrors.ErrInvalid, "scope ends before it starts"), "before it starts")
}
