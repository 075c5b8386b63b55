//go:build linux

package fs

import (
	"io/fs"
	"syscall"
	"time"

	"go.trai.ch/saltbundle/internal/core/domain"
)

func fileStat(info fs.FileInfo) domain.FileStat {
	st := domain.FileStat{
		Mode:  unixMode(info.Mode()),
		Size:  info.Size(),
		Atime: info.ModTime(),
		Mtime: info.ModTime(),
		Ctime: info.ModTime(),
	}

	sys, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return st
	}

	st.Mode = sys.Mode
	st.Ino = sys.Ino
	st.Dev = uint64(sys.Dev)     //nolint:unconvert // int type differs per arch
	st.Nlink = uint64(sys.Nlink) //nolint:unconvert // int type differs per arch
	st.UID = sys.Uid
	st.GID = sys.Gid
	st.Atime = time.Unix(sys.Atim.Unix())
	st.Ctime = time.Unix(sys.Ctim.Unix())
	return st
}
