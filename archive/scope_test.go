package archive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/commonerrors/errortest"
	"github.com/ARM-software/identity-lifecycle/filesystem"
)

func TestLoadScopeDefaults(t *testing.T) {
	defer goleak.VerifyNone(t)
	scope, err := LoadScope(filesystem.NewInMemoryFileSystem(), "")
	require.NoError(t, err)
	require.NotNil(t, scope)
	assert.Empty(t, scope.Query)
	assert.Equal(t, []string{"mail", "drive"}, scope.DataKinds)
	assert.True(t, scope.Start.IsZero())

	_, err = LoadScope(nil, "")
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
}

func TestLoadScopeFromDocument(t *testing.T) {
	defer goleak.VerifyNone(t)
	fs := filesystem.NewInMemoryFileSystem()
	document := `query: "from:jane.doe@example.com"
data_kinds: [mail]
start: 2023-01-01T00:00:00Z
end: 2024-01-01T00:00:00Z
`
	require.NoError(t, fs.WriteFile("/etc/lifecycle/scope.yaml", []byte(document), 0644))

	scope, err := LoadScope(fs, "/etc/lifecycle/scope.yaml")
	require.NoError(t, err)
	assert.Equal(t, "from:jane.doe@example.com", scope.Query)
	assert.Equal(t, []string{"mail"}, scope.DataKinds)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), scope.Start.UTC())
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), scope.End.UTC())
}

func TestLoadScopeKeepsDefaultKindsWhenOmitted(t *testing.T) {
	defer goleak.VerifyNone(t)
	fs := filesystem.NewInMemoryFileSystem()
	require.NoError(t, fs.WriteFile("/scope.yaml", []byte(`query: "label:keep"`), 0644))

	scope, err := LoadScope(fs, "/scope.yaml")
	require.NoError(t, err)
	assert.Equal(t, "label:keep", scope.Query)
	assert.Equal(t, []string{"mail", "drive"}, scope.DataKinds)
}

func TestLoadScopeErrors(t *testing.T) {
	defer goleak.VerifyNone(t)
	fs := filesystem.NewInMemoryFileSystem()

	_, err := LoadScope(fs, "/missing.yaml")
	errortest.AssertError(t, err, commonerrors.ErrNotFound)

	require.NoError(t, fs.WriteFile("/broken.yaml", []byte("query: [unterminated"), 0644))
	_, err = LoadScope(fs, "/broken.yaml")
	errortest.AssertError(t, err, commonerrors.ErrMarshalling)

	inverted := `start: 2024-01-01T00:00:00Z
end: 2023-01-01T00:00:00Z
`
	require.NoError(t, fs.WriteFile("/inverted.yaml", []byte(inverted), 0644))
	_, err = LoadScope(fs, "/inverted.yaml")
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
}
