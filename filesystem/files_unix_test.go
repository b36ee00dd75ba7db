//go:build !windows
// +build !windows

package filesystem

import (
	"fmt"
	"net"
	"path/filepath"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// Home directory snapshots walk over whatever an account left behind,
// including FIFOs and sockets, and those must still register as files.
func TestIsFileSpecialFiles(t *testing.T) {
	for _, fsType := range FileSystemTypes {
		t.Run(fmt.Sprint(fsType), func(t *testing.T) {
			if fsType == InMemoryFS {
				t.Skip("in-memory filesystem cannot hold device or special files")
			}
			fs := NewFs(fsType)
			tmpDir := t.TempDir()

			isFile, err := fs.IsFile("/dev/null")
			require.NoError(t, err)
			assert.True(t, isFile)

			fifoPath := filepath.Join(tmpDir, fmt.Sprintf("%v.fifo", faker.Username()))
			require.NoError(t, unix.Mkfifo(fifoPath, 0666))
			defer func() { _ = fs.Rm(fifoPath) }()
			isFile, err = fs.IsFile(fifoPath)
			require.NoError(t, err)
			assert.True(t, isFile)
			require.NoError(t, fs.Rm(fifoPath))

			socketPath := filepath.Join(tmpDir, fmt.Sprintf("%v.sock", faker.Username()))
			listener, err := net.Listen("unix", socketPath)
			require.NoError(t, err)
			defer func() { _ = listener.Close() }()
			isFile, err = fs.IsFile(socketPath)
			require.NoError(t, err)
			assert.True(t, isFile)
			require.NoError(t, fs.Rm(socketPath))
		})
	}
}
