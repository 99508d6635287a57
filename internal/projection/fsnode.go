package projection

import (
	"context"
	"path"
	"strings"
	"sync"
	"syscall"

	"github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"
	"github.com/radio4000/r4fs/internal/rerr"
)

// Enqueuer is the download queue's view from the filesystem side: a
// write to the control file (spec §6) enqueues a channel slug.
type Enqueuer interface {
	Enqueue(ctx context.Context, slug string) error
}

// FSNode is the FUSE inode type, generalized from the teacher's own
// node.go: instead of wrapping a contextual.FS, it wraps a Producer
// and a classified Node, and instead of exposing every VFS operation
// it exposes only the read-only projection plus the one writable
// control path.
type FSNode struct {
	fs.Inode

	producer *Producer
	enqueuer Enqueuer
	path     string
	node     Node
}

var _ fs.NodeGetattrer = (*FSNode)(nil)
var _ fs.NodeLookuper = (*FSNode)(nil)
var _ fs.NodeReaddirer = (*FSNode)(nil)
var _ fs.NodeOpener = (*FSNode)(nil)
var _ fs.NodeSetattrer = (*FSNode)(nil)
var _ fs.NodeCreater = (*FSNode)(nil)
var _ fs.NodeMkdirer = (*FSNode)(nil)
var _ fs.NodeUnlinker = (*FSNode)(nil)
var _ fs.NodeRmdirer = (*FSNode)(nil)

// Root builds the FUSE root inode for p and enq (spec §3's "/").
func Root(p *Producer, enq Enqueuer) fs.InodeEmbedder {
	return &FSNode{producer: p, enqueuer: enq, path: "/", node: Node{Kind: KindRoot}}
}

func (n *FSNode) Getattr(ctx context.Context, f fs.FileHandle, out *fuse.AttrOut) syscall.Errno {
	stat, err := n.producer.Attr(ctx, n.node)
	if err != nil {
		return ToErrno(err)
	}
	fillAttr(stat, n.node.Kind == KindControl, &out.Attr)
	return 0
}

func (n *FSNode) Lookup(ctx context.Context, name string, out *fuse.EntryOut) (*fs.Inode, syscall.Errno) {
	childPath := path.Join(n.path, name)
	childNode, ok := Classify(childPath)
	if !ok {
		return nil, syscall.ENOENT
	}

	stat, err := n.producer.Attr(ctx, childNode)
	if err != nil {
		return nil, ToErrno(err)
	}
	fillAttr(stat, childNode.Kind == KindControl, &out.Attr)

	child := &FSNode{producer: n.producer, enqueuer: n.enqueuer, path: childPath, node: childNode}
	mode := uint32(syscall.S_IFREG)
	if stat.IsDir {
		mode = syscall.S_IFDIR
	}
	return n.NewInode(ctx, child, fs.StableAttr{Mode: mode}), 0
}

func (n *FSNode) Readdir(ctx context.Context) (fs.DirStream, syscall.Errno) {
	entries, err := n.producer.Listing(ctx, n.node)
	if err != nil {
		return nil, ToErrno(err)
	}
	out := make([]fuse.DirEntry, 0, len(entries))
	for _, e := range entries {
		mode := uint32(syscall.S_IFREG)
		if e.IsDir {
			mode = syscall.S_IFDIR
		}
		out = append(out, fuse.DirEntry{Name: e.Name, Mode: mode})
	}
	return fs.NewListDirStream(out), 0
}

func (n *FSNode) Open(ctx context.Context, flags uint32) (fs.FileHandle, uint32, syscall.Errno) {
	if n.node.Kind == KindControl {
		return &controlHandle{enqueuer: n.enqueuer}, fuse.FOPEN_DIRECT_IO, 0
	}

	content, err := n.producer.Content(ctx, n.node)
	if err != nil {
		return nil, 0, ToErrno(err)
	}
	return &contentHandle{content: content}, fuse.FOPEN_KEEP_CACHE, 0
}

// Setattr rejects every attribute-mutating call (truncate, chmod,
// chown) on every path, including the control file, per spec §6.
func (n *FSNode) Setattr(ctx context.Context, f fs.FileHandle, in *fuse.SetAttrIn, out *fuse.AttrOut) syscall.Errno {
	return syscall.EROFS
}

func (n *FSNode) Create(ctx context.Context, name string, flags uint32, mode uint32, out *fuse.EntryOut) (*fs.Inode, fs.FileHandle, uint32, syscall.Errno) {
	return nil, nil, 0, syscall.EROFS
}

func (n *FSNode) Mkdir(ctx context.Context, name string, mode uint32, out *fuse.EntryOut) (*fs.Inode, syscall.Errno) {
	return nil, syscall.EROFS
}

func (n *FSNode) Unlink(ctx context.Context, name string) syscall.Errno { return syscall.EROFS }
func (n *FSNode) Rmdir(ctx context.Context, name string) syscall.Errno  { return syscall.EROFS }

// contentHandle serves a fully materialized, read-only file body.
type contentHandle struct {
	content []byte
}

var _ fs.FileReader = (*contentHandle)(nil)

func (h *contentHandle) Read(ctx context.Context, dest []byte, off int64) (fuse.ReadResult, syscall.Errno) {
	n := copy(dest, ReadAt(h.content, off, len(dest)))
	return fuse.ReadResultData(dest[:n]), 0
}

// controlHandle implements the filesystem's one write path: each
// write's trimmed body is enqueued as a channel slug (spec §6). Reads
// always return empty; the control file is not meant to be cat'd.
type controlHandle struct {
	mu       sync.Mutex
	enqueuer Enqueuer
}

var _ fs.FileReader = (*controlHandle)(nil)
var _ fs.FileWriter = (*controlHandle)(nil)

func (h *controlHandle) Read(ctx context.Context, dest []byte, off int64) (fuse.ReadResult, syscall.Errno) {
	return fuse.ReadResultData(nil), 0
}

func (h *controlHandle) Write(ctx context.Context, data []byte, off int64) (uint32, syscall.Errno) {
	h.mu.Lock()
	defer h.mu.Unlock()

	slug := strings.TrimSpace(string(data))
	if slug == "" {
		return uint32(len(data)), 0
	}
	if h.enqueuer == nil {
		return 0, ToErrno(rerr.New(rerr.NotInitialized, "control.Write", nil))
	}
	if err := h.enqueuer.Enqueue(ctx, slug); err != nil {
		return 0, ToErrno(err)
	}
	return uint32(len(data)), 0
}

func fillAttr(stat Stat, writable bool, out *fuse.Attr) {
	out.Size = stat.Size
	out.Mtime = uint64(stat.Mtime.Unix())
	out.Mtimensec = uint32(stat.Mtime.Nanosecond())
	out.Atime = uint64(stat.Atime.Unix())
	out.Atimensec = uint32(stat.Atime.Nanosecond())
	out.Ctime = uint64(stat.Ctime.Unix())
	out.Ctimensec = uint32(stat.Ctime.Nanosecond())
	out.Blksize = 4096
	out.Nlink = 1

	if stat.IsDir {
		out.Mode = syscall.S_IFDIR | dirPerm
		if out.Nlink < 2 {
			out.Nlink = 2
		}
	} else if writable {
		out.Mode = syscall.S_IFREG | 0o644
	} else {
		out.Mode = syscall.S_IFREG | filePerm
	}
}
