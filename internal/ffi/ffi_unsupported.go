//go:build !(darwin || linux || ios || android || windows)

// Package ffi binds the LVGL shared library via purego. On this platform
// purego cannot load libraries, so only the simulated backend is available.
package ffi

import (
	"errors"

	"github.com/agiangrant/lvgo/internal/native"
)

// ErrUnsupported is returned by Load on platforms without dynamic loading.
var ErrUnsupported = errors.New("dynamic library loading is not supported on this platform")

// Library is never instantiated on this platform.
type Library struct {
	native.ABI
}

// Load always fails with ErrUnsupported.
func Load(path string) (*Library, error) {
	return nil, ErrUnsupported
}
