// Package units defines size units for filesystem elements.
package units

import "github.com/ARM-software/identity-lifecycle/units/size"

const (
	B  = size.B
	KB = size.KB
	MB = size.MB
	GB = size.GB
	TB = size.TB

	KiB = size.KiB
	MiB = size.MiB
	GiB = size.GiB
	TiB = size.TiB
)
