//go:build unix

package capfs

import (
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// mkdirOne resolves the parent through the root and then creates the last
// component with mkdirat, so the requested bits reach the kernel unchanged.
func mkdirOne(root *os.Root, name string, perm uint32) error {
	dir, base := splitParent(name)

	parent, err := root.OpenFile(dir, os.O_RDONLY|unix.O_DIRECTORY, 0)
	if err != nil {
		return err
	}
	defer parent.Close()

	if err := unix.Mkdirat(int(parent.Fd()), base, perm); err != nil {
		return &os.PathError{Op: "mkdirat", Path: name, Err: err}
	}

	return nil
}

// splitParent splits off the last component without cleaning, so that
// "link/../x" keeps "link/.." for the root to resolve.
func splitParent(name string) (string, string) {
	name = strings.TrimRight(name, "/")

	i := strings.LastIndex(name, "/")
	if i < 0 {
		return ".", name
	}

	dir := strings.TrimRight(name[:i], "/")
	if dir == "" {
		dir = "."
	}

	return dir, name[i+1:]
}
