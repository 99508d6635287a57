package projection

import "time"

// Stat is the POSIX attribute tuple from spec §3, independent of any
// particular FUSE binding's wire representation.
type Stat struct {
	IsDir bool
	Size  uint64
	Mtime time.Time
	Atime time.Time
	Ctime time.Time
}

const (
	dirPerm  = 0o755
	filePerm = 0o444
)

func dirStat(mtime, ctime time.Time) Stat {
	return Stat{IsDir: true, Mtime: mtime, Atime: ctime, Ctime: ctime}
}

func fileStat(size uint64, mtime, atime, ctime time.Time) Stat {
	return Stat{IsDir: false, Size: size, Mtime: mtime, Atime: atime, Ctime: ctime}
}
