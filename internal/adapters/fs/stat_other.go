//go:build !linux

package fs

import (
	"io/fs"

	"go.trai.ch/saltbundle/internal/core/domain"
)

func fileStat(info fs.FileInfo) domain.FileStat {
	return domain.FileStat{
		Mode:  unixMode(info.Mode()),
		Nlink: 1,
		Size:  info.Size(),
		Atime: info.ModTime(),
		Mtime: info.ModTime(),
		Ctime: info.ModTime(),
	}
}
