package capfs

import (
	"os"
	"path/filepath"
	"strings"
)

// mkdirFunc creates exactly one directory named by a root-relative path
type mkdirFunc func(root *os.Root, name string, perm uint32) error

// Dir is a capability to a directory subtree. Every mutation performed
// through it stays beneath the directory it was opened on.
type Dir struct {
	root  *os.Root
	mkdir mkdirFunc
}

// OpenDir opens path as a directory capability. This is the only place a
// caller names a directory by ambient path.
func OpenDir(path string) (*Dir, error) {
	root, err := os.OpenRoot(path)
	if err != nil {
		return nil, newOpenDirectoryError(path, err)
	}

	return newDir(root), nil
}

func newDir(root *os.Root) *Dir {
	return &Dir{
		root:  root,
		mkdir: mkdirOne,
	}
}

// OpenDir opens a subdirectory as a narrower capability
func (d *Dir) OpenDir(name string) (*Dir, error) {
	if !filepath.IsLocal(name) {
		return nil, newOpenDirectoryError(name, KindBoundaryViolation)
	}

	root, err := d.root.OpenRoot(name)
	if err != nil {
		return nil, newOpenDirectoryError(name, err)
	}

	return newDir(root), nil
}

// Name returns the path the capability was opened with
func (d *Dir) Name() string {
	return d.root.Name()
}

// Close releases the capability
func (d *Dir) Close() error {
	if err := d.root.Close(); err != nil {
		return ErrCloseDirectory.
			SetError(err).
			SetData(pathErrorContext{
				Path:  d.root.Name(),
				Error: err,
			})
	}

	return nil
}

// Stat returns file info for a path beneath the directory
func (d *Dir) Stat(name string) (os.FileInfo, error) {
	info, err := d.root.Stat(name)
	if err != nil {
		return nil, newStatDirectoryError(name, err)
	}

	return info, nil
}

// IsDir reports whether name exists beneath d and is a directory
func (d *Dir) IsDir(name string) bool {
	info, err := d.root.Stat(name)
	if err != nil {
		return false
	}

	return info.IsDir()
}

// Mkdir creates a single directory with default permissions.
func (d *Dir) Mkdir(name string) error {
	return d.CreateDirWith(name, NewDirBuilder())
}

// CreateDirAll creates name and all missing parents (like mkdir -p)
func (d *Dir) CreateDirAll(name string) error {
	return d.CreateDirWith(name, NewDirBuilder().SetRecursive(true))
}

// CreateDirWith creates the directory name, relative to d, as described by
// the builder. A nil builder behaves like NewDirBuilder().
//
// Without recursion only the leaf is created and an existing leaf is an
// error. With recursion every missing component is created parent first,
// existing directories along the way are accepted and an existing
// non-directory component fails with KindNotDirectory.
func (d *Dir) CreateDirWith(name string, builder *DirBuilder) error {
	cfg := defaultDirConfig()
	if builder != nil {
		cfg = builder.cfg
	}

	if !filepath.IsLocal(name) {
		if cfg.recursive {
			return newCreateError(ErrCreateDirectories, KindBoundaryViolation, name, nil)
		}
		return newCreateError(ErrCreateDirectory, KindBoundaryViolation, name, nil)
	}

	// The name is not cleaned: ".." after a symlink is resolved by the root
	// from the symlink target.
	if !cfg.recursive {
		return d.createOne(name, cfg.perm())
	}

	return d.createAll(name, cfg.perm())
}

func (d *Dir) createOne(name string, perm uint32) error {
	err := d.mkdir(d.root, name, perm)
	if err == nil {
		return nil
	}

	kind := classify(err)
	if kind == KindAlreadyExists {
		if isDir, existing := d.existing(name); !isDir {
			kind = existing
		}
	}

	return newCreateError(ErrCreateDirectory, kind, name, err)
}

func (d *Dir) createAll(name string, perm uint32) error {
	var path string
	for _, part := range strings.Split(filepath.ToSlash(name), "/") {
		if part == "" || part == "." {
			continue
		}
		if path == "" {
			path = part
		} else {
			path += string(filepath.Separator) + part
		}

		err := d.mkdir(d.root, path, perm)
		if err == nil {
			continue
		}

		kind := classify(err)
		if kind == KindAlreadyExists {
			// Lost a race or the component was already there.
			isDir, existing := d.existing(path)
			if isDir {
				continue
			}
			kind = existing
		}

		return newCreateError(ErrCreateDirectories, kind, path, err)
	}

	return nil
}

// existing inspects an entry mkdir reported as already present. When it is
// not a directory the returned kind explains why.
func (d *Dir) existing(path string) (bool, ErrorKind) {
	info, err := d.root.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return true, KindAlreadyExists
	case err != nil && classify(err) == KindBoundaryViolation:
		return false, KindBoundaryViolation
	default:
		return false, KindNotDirectory
	}
}
