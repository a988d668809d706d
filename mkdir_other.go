//go:build !unix

package capfs

import "os"

func mkdirOne(root *os.Root, name string, perm uint32) error {
	return root.Mkdir(name, os.FileMode(perm&0o777))
}
