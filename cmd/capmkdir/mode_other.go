//go:build !unix

package main

import (
	"errors"

	"github.com/boostgo/capfs"
)

var errModeUnsupported = errors.New("--mode is not supported on this platform")

func applyMode(_ *capfs.DirBuilder, _ uint32) error {
	return errModeUnsupported
}
