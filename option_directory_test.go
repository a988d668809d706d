package capfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirBuilder(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		builder := NewDirBuilder()

		assert.False(t, builder.Recursive())
		assert.False(t, builder.cfg.hasMode)
		assert.Equal(t, uint32(defaultDirPerm), builder.cfg.perm())
		assert.Equal(t, NewDirBuilder().SetRecursive(false), builder)
	})

	t.Run("SetRecursive", func(t *testing.T) {
		for _, recursive := range []bool{true, false} {
			assert.Equal(t, recursive, NewDirBuilder().SetRecursive(recursive).Recursive())
		}
	})

	t.Run("SetRecursiveReplaces", func(t *testing.T) {
		builder := NewDirBuilder().SetRecursive(true).SetRecursive(false)
		assert.False(t, builder.Recursive())

		builder.SetRecursive(true)
		assert.True(t, builder.Recursive())
	})

	t.Run("OptionsRoundTrip", func(t *testing.T) {
		for _, recursive := range []bool{true, false} {
			builder := NewDirBuilder().SetRecursive(recursive)

			opts := builder.Options()
			assert.Equal(t, recursive, opts.Recursive())
			assert.Equal(t, builder, FromOptions(opts))
		}
	})

	t.Run("BuilderRoundTrip", func(t *testing.T) {
		opts := NewDirOptions()
		opts.SetRecursive(true)

		assert.Equal(t, opts, FromOptions(opts).Options())
	})

	t.Run("Independent", func(t *testing.T) {
		builder := NewDirBuilder()
		opts := builder.Options()
		opts.SetRecursive(true)

		assert.False(t, builder.Recursive(), "options must be a copy")
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "DirBuilder{recursive: true}", NewDirBuilder().SetRecursive(true).String())
	})
}
