package projection

import (
	"errors"
	"syscall"

	"github.com/radio4000/r4fs/internal/rerr"
)

// ToErrno is the single *rerr.Error -> syscall.Errno translation point
// (generalized from the teacher's fsfuse.toErrno, which switched on
// io/fs sentinel errors instead of this package's Kind taxonomy).
func ToErrno(err error) syscall.Errno {
	if err == nil {
		return 0
	}

	var e *rerr.Error
	if !errors.As(err, &e) {
		return syscall.EIO
	}

	switch e.Kind {
	case rerr.NotFound:
		return syscall.ENOENT
	case rerr.ReadOnly:
		return syscall.EROFS
	case rerr.Cancelled:
		return syscall.EINTR
	case rerr.Catalog, rerr.NotInitialized, rerr.DownloaderMissing, rerr.TrackFailed, rerr.PostProcessFailed:
		return syscall.EIO
	default:
		return syscall.EIO
	}
}
