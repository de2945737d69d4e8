package hal

import (
	"fmt"
	"os"
	"path/filepath"
)

const hostStorageDefaultDir = "ramos-disk"

// hostStorage maps the boot volume onto a host directory tree.
type hostStorage struct {
	root string
}

func newHostStorage(root string) *hostStorage {
	if root == "" {
		root = os.Getenv("RAMOS_STATE_DIR")
	}
	if root == "" {
		root = hostStorageDefaultDir
	}
	return &hostStorage{root: root}
}

// NewDirStorage returns a Storage rooted at the given host directory.
// Offline tools use it to work on a boot volume without the rest of
// the HAL.
func NewDirStorage(root string) Storage {
	return newHostStorage(root)
}

func (s *hostStorage) Volume() (Dir, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return nil, fmt.Errorf("storage volume %q: %w", s.root, err)
	}
	return hostDir{path: s.root}, nil
}

type hostDir struct {
	path string
}

func (d hostDir) EnsureDir(name string) (Dir, error) {
	p := filepath.Join(d.path, name)
	if err := os.MkdirAll(p, 0o755); err != nil {
		return nil, fmt.Errorf("ensure dir %q: %w", p, err)
	}
	return hostDir{path: p}, nil
}

func (d hostDir) Open(name string) (File, error) {
	p := filepath.Join(d.path, name)
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", p, err)
	}
	return hostFile{f: f}, nil
}

func (d hostDir) Create(name string) (File, error) {
	p := filepath.Join(d.path, name)
	f, err := os.OpenFile(p, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create %q: %w", p, err)
	}
	return hostFile{f: f}, nil
}

type hostFile struct {
	f *os.File
}

func (f hostFile) Read(p []byte) (int, error)  { return f.f.Read(p) }
func (f hostFile) Write(p []byte) (int, error) { return f.f.Write(p) }
func (f hostFile) Seek(offset int64, whence int) (int64, error) {
	return f.f.Seek(offset, whence)
}
func (f hostFile) Flush() error { return f.f.Sync() }
func (f hostFile) Close() error { return f.f.Close() }
