package units

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/identity-lifecycle/filesystem"
)

func TestUnitRatios(t *testing.T) {
	assert.Equal(t, float64(1000), float64(KB)/float64(B))
	assert.Equal(t, float64(1000), float64(MB)/float64(KB))
	assert.Equal(t, float64(1024), KiB)
	assert.Equal(t, float64(1024), MiB/KiB)
	assert.Equal(t, float64(1024), GiB/MiB)
	assert.Equal(t, float64(1024), TiB/GiB)
}

func TestReportedSizeMatchesPayload(t *testing.T) {
	// Export artifacts range from a few bytes (markers) to megabytes (mailboxes).
	payloads := []float64{12 * B, 340 * B, 2 * KB, 64.5 * KB, 3 * MB, 2 * KiB, 1.5 * MiB, 80 * MiB}
	fs := filesystem.NewFs(filesystem.InMemoryFS)
	for i := range payloads {
		expected := int64(payloads[i])
		t.Run(fmt.Sprintf("%v bytes", expected), func(t *testing.T) {
			file, err := fs.TempFileInTempDir("export-")
			require.NoError(t, err)
			_, err = file.Write(make([]byte, expected))
			require.NoError(t, err)
			require.NoError(t, file.Close())
			defer func() { _ = fs.Rm(file.Name()) }()

			size, err := fs.GetFileSize(file.Name())
			require.NoError(t, err)
			assert.Equal(t, expected, size)
		})
	}
}
