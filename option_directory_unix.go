//go:build unix

package capfs

// ModeSetter is implemented by option types on platforms with POSIX
// permission bits.
type ModeSetter[T any] interface {
	// SetMode sets the permission bits for every directory created.
	// The value is stored verbatim; the umask is applied at creation time.
	SetMode(mode uint32) T
	// Mode returns the requested bits and whether any were set
	Mode() (uint32, bool)
}

var (
	_ ModeSetter[*DirBuilder] = (*DirBuilder)(nil)
	_ ModeSetter[*DirOptions] = (*DirOptions)(nil)
)

// SetMode sets the permission bits, stored verbatim
func (b *DirBuilder) SetMode(mode uint32) *DirBuilder {
	b.cfg.mode = mode
	b.cfg.hasMode = true
	return b
}

// Mode returns the requested permission bits and whether any were set
func (b *DirBuilder) Mode() (uint32, bool) {
	return b.cfg.mode, b.cfg.hasMode
}

// SetMode sets the permission bits, stored verbatim
func (o *DirOptions) SetMode(mode uint32) *DirOptions {
	o.cfg.mode = mode
	o.cfg.hasMode = true
	return o
}

// Mode returns the requested permission bits and whether any were set
func (o DirOptions) Mode() (uint32, bool) {
	return o.cfg.mode, o.cfg.hasMode
}
