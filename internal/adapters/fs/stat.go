package fs

import "io/fs"

// Unix file type bits, as found in st_mode.
const (
	modeTypeDir     = 0o040000
	modeTypeRegular = 0o100000
	modeTypeSymlink = 0o120000
)

// unixMode converts a Go file mode into st_mode bits.
func unixMode(mode fs.FileMode) uint32 {
	bits := uint32(mode.Perm())
	switch {
	case mode.IsDir():
		bits |= modeTypeDir
	case mode&fs.ModeSymlink != 0:
		bits |= modeTypeSymlink
	case mode.IsRegular():
		bits |= modeTypeRegular
	}
	return bits
}
