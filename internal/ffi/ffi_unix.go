//go:build darwin || linux || ios || android

package ffi

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// openLibrary dlopens liblvgl with its symbols bound immediately.
func openLibrary(path string) (uintptr, error) {
	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, fmt.Errorf("dlopen liblvgl: %w", err)
	}
	return h, nil
}

// getSymbol looks up an lv_* entry point.
func getSymbol(handle uintptr, name string) (uintptr, error) {
	sym, err := purego.Dlsym(handle, name)
	if err != nil {
		return 0, fmt.Errorf("liblvgl has no symbol %s: %w", name, err)
	}
	return sym, nil
}
