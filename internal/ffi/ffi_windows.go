//go:build windows

package ffi

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// lvglDLL is the loaded lvgl.dll; FindProc needs the DLL, not its handle.
var lvglDLL *windows.DLL

func openLibrary(path string) (uintptr, error) {
	dll, err := windows.LoadDLL(path)
	if err != nil {
		return 0, fmt.Errorf("load lvgl.dll: %w", err)
	}
	lvglDLL = dll
	return uintptr(dll.Handle), nil
}

// getSymbol looks up an lv_* entry point exported by lvgl.dll.
func getSymbol(handle uintptr, name string) (uintptr, error) {
	if lvglDLL == nil {
		return 0, fmt.Errorf("lvgl.dll not loaded")
	}
	proc, err := lvglDLL.FindProc(name)
	if err != nil {
		return 0, fmt.Errorf("lvgl.dll has no symbol %s: %w", name, err)
	}
	return proc.Addr(), nil
}
