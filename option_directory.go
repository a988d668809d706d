package capfs

import (
	"fmt"
	"os"
)

// defaultDirPerm is used when no mode was requested. The process umask still applies.
const defaultDirPerm = 0o777

// dirConfig is the plain data shared by DirOptions and DirBuilder.
type dirConfig struct {
	recursive bool
	mode      uint32
	hasMode   bool
}

func defaultDirConfig() dirConfig {
	return dirConfig{}
}

// perm returns the permission bits to hand to the single-directory primitive
func (c dirConfig) perm() uint32 {
	if c.hasMode {
		return c.mode
	}

	return defaultDirPerm
}

// DirOptions describes how a directory should be created without being tied
// to any directory handle. It has no way to create anything by itself.
type DirOptions struct {
	cfg dirConfig
}

// NewDirOptions returns non-recursive options with platform default permissions
func NewDirOptions() DirOptions {
	return DirOptions{cfg: defaultDirConfig()}
}

// SetRecursive sets whether missing parent directories are created
func (o *DirOptions) SetRecursive(recursive bool) *DirOptions {
	o.cfg.recursive = recursive
	return o
}

// Recursive reports whether missing parent directories are created
func (o DirOptions) Recursive() bool {
	return o.cfg.recursive
}

// DirBuilder is used to create directories in various manners.
//
// There is no DirBuilder.Create: creating a directory requires a capability,
// so a DirBuilder is passed to [Dir.CreateDirWith] instead.
type DirBuilder struct {
	cfg dirConfig
}

// NewDirBuilder creates a builder with default permissions that is not recursive.
func NewDirBuilder() *DirBuilder {
	return &DirBuilder{cfg: defaultDirConfig()}
}

// FromOptions wraps options into a builder, preserving every field.
func FromOptions(opts DirOptions) *DirBuilder {
	return &DirBuilder{cfg: opts.cfg}
}

// Options returns the builder configuration without the capability-aware face.
func (b *DirBuilder) Options() DirOptions {
	return DirOptions{cfg: b.cfg}
}

// SetRecursive indicates that directories should be created recursively,
// creating all parent directories.
func (b *DirBuilder) SetRecursive(recursive bool) *DirBuilder {
	b.cfg.recursive = recursive
	return b
}

// Recursive reports whether the builder creates missing parents
func (b *DirBuilder) Recursive() bool {
	return b.cfg.recursive
}

// String never includes a path: builders are not bound to one.
func (b *DirBuilder) String() string {
	if b.cfg.hasMode {
		return fmt.Sprintf("DirBuilder{recursive: %t, mode: %s}", b.cfg.recursive, os.FileMode(b.cfg.mode&0o777))
	}

	return fmt.Sprintf("DirBuilder{recursive: %t}", b.cfg.recursive)
}
