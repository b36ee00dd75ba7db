package filesystem

import (
	"os"

	"github.com/spf13/afero"
)

// managedFile decorates an afero file so that every operation reports
// failures as commonerrors and an optional callback runs once the file
// has been closed (e.g. to release a lock taken at open time).
type managedFile struct {
	afero.File
	onClose func() error
}

func (mf *managedFile) Read(p []byte) (int, error) {
	n, err := mf.File.Read(p)
	return n, ConvertFileSystemError(err)
}

func (mf *managedFile) ReadAt(p []byte, off int64) (int, error) {
	n, err := mf.File.ReadAt(p, off)
	return n, ConvertFileSystemError(err)
}

func (mf *managedFile) Seek(offset int64, whence int) (int64, error) {
	n, err := mf.File.Seek(offset, whence)
	return n, ConvertFileSystemError(err)
}

func (mf *managedFile) Write(p []byte) (int, error) {
	n, err := mf.File.Write(p)
	return n, ConvertFileSystemError(err)
}

func (mf *managedFile) WriteAt(p []byte, off int64) (int, error) {
	n, err := mf.File.WriteAt(p, off)
	return n, ConvertFileSystemError(err)
}

func (mf *managedFile) WriteString(s string) (int, error) {
	n, err := mf.File.WriteString(s)
	return n, ConvertFileSystemError(err)
}

func (mf *managedFile) Name() string {
	return mf.File.Name()
}

func (mf *managedFile) Readdir(count int) ([]os.FileInfo, error) {
	entries, err := mf.File.Readdir(count)
	return entries, ConvertFileSystemError(err)
}

func (mf *managedFile) Readdirnames(n int) ([]string, error) {
	names, err := mf.File.Readdirnames(n)
	return names, ConvertFileSystemError(err)
}

func (mf *managedFile) Stat() (os.FileInfo, error) {
	info, err := mf.File.Stat()
	return info, ConvertFileSystemError(err)
}

func (mf *managedFile) Sync() error {
	return ConvertFileSystemError(mf.File.Sync())
}

func (mf *managedFile) Truncate(size int64) error {
	return ConvertFileSystemError(mf.File.Truncate(size))
}

// Close closes the underlying file first and only runs the callback when
// the close itself succeeded.
func (mf *managedFile) Close() error {
	if err := ConvertFileSystemError(mf.File.Close()); err != nil {
		return err
	}
	if mf.onClose == nil {
		return nil
	}
	return mf.onClose()
}

// Fd digs through the abstraction layers in search of a real file handle.
func (mf *managedFile) Fd() uintptr {
	type descriptor interface {
		Fd() uintptr
	}
	if real, ok := retrieveSubFile(mf.File).(descriptor); ok {
		return real.Fd()
	}
	return uintptr(UnsetFileHandle)
}

func newManagedFile(file afero.File, onClose func() error) (File, error) {
	mf := &managedFile{File: file}
	if onClose != nil {
		mf.onClose = func() error {
			return ConvertFileSystemError(onClose())
		}
	}
	return mf, nil
}

func openManagedFile(open func() (afero.File, error), onClose func() error) (File, error) {
	file, err := open()
	if err != nil {
		return nil, ConvertFileSystemError(err)
	}
	return newManagedFile(file, onClose)
}

// ConvertToOSFile exposes a file as its `os` counterpart for APIs which still
// expect a concrete *os.File rather than an fs.File.
func ConvertToOSFile(f File) *os.File {
	if f == nil {
		return nil
	}
	if osFile, ok := f.(*os.File); ok {
		return osFile
	}
	return os.NewFile(f.Fd(), f.Name())
}
