//go:build unix || (js && wasm) || darwin
// +build unix js,wasm darwin

package filesystem

import (
	"os"
	"syscall"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
)

func determineFileOwners(info os.FileInfo) (uid, gid int, err error) {
	raw, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		err = commonerrors.Newf(commonerrors.ErrUnsupported, "file info [%v] is not of type Stat_t", info.Sys())
		return
	}
	uid = int(raw.Uid)
	gid = int(raw.Gid)
	return
}
