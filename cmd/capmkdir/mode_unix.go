//go:build unix

package main

import "github.com/boostgo/capfs"

func applyMode(builder *capfs.DirBuilder, mode uint32) error {
	builder.SetMode(mode)
	return nil
}
