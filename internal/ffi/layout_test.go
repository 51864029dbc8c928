//go:build darwin || linux || ios || android || windows

package ffi

import (
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"

	"github.com/agiangrant/lvgo/internal/native"
)

// Offsets of lv_conf defaults on 64-bit targets.
func TestLayout(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("offsets are recorded for 64-bit targets")
	}
	var (
		buf  dispDrawBufC
		drv  dispDrvC
		in   indevDrvC
		data indevDataC
	)
	got := map[string]uintptr{
		"draw_buf.size":               unsafe.Offsetof(buf.size),
		"draw_buf.flushing":           unsafe.Offsetof(buf.flushing),
		"disp_drv.draw_buf":           unsafe.Offsetof(drv.drawBuf),
		"disp_drv.flush_cb":           unsafe.Offsetof(drv.flushCb),
		"disp_drv.color_chroma_key":   unsafe.Offsetof(drv.colorChromaKey),
		"disp_drv.user_data":          unsafe.Offsetof(drv.userData),
		"indev_drv.read_cb":           unsafe.Offsetof(in.readCb),
		"indev_drv.user_data":         unsafe.Offsetof(in.userData),
		"indev_drv.long_press_time":   unsafe.Offsetof(in.longPressTime),
		"indev_data.key":              unsafe.Offsetof(data.key),
		"indev_data.enc_diff":         unsafe.Offsetof(data.encDiff),
		"indev_data.state":            unsafe.Offsetof(data.state),
		"indev_data.continue_reading": unsafe.Offsetof(data.continueReading),
		"indev_data":                  unsafe.Sizeof(data),
		"area":                        unsafe.Sizeof(native.Area{}),
	}
	want := map[string]uintptr{
		"draw_buf.size":               24,
		"draw_buf.flushing":           28,
		"disp_drv.draw_buf":           16,
		"disp_drv.flush_cb":           32,
		"disp_drv.color_chroma_key":   104,
		"disp_drv.user_data":          144,
		"indev_drv.read_cb":           8,
		"indev_drv.user_data":         24,
		"indev_drv.long_press_time":   52,
		"indev_data.key":              4,
		"indev_data.enc_diff":         12,
		"indev_data.state":            16,
		"indev_data.continue_reading": 20,
		"indev_data":                  24,
		"area":                        8,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestIndevDataRoundTrip(t *testing.T) {
	in := native.IndevData{
		Point:           native.Point{X: 12, Y: -3},
		Key:             10,
		EncDiff:         -2,
		State:           native.IndevStatePressed,
		ContinueReading: true,
	}
	var c indevDataC
	c.fromNative(in)
	if diff := cmp.Diff(in, c.toNative()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestGoString(t *testing.T) {
	b := []byte("[Warn] lv_refr: hello\x00garbage")
	if got, want := goString(uintptr(unsafe.Pointer(&b[0]))), "[Warn] lv_refr: hello"; got != want {
		t.Errorf("goString = %q, want %q", got, want)
	}
	if got := goString(0); got != "" {
		t.Errorf("goString(0) = %q, want empty", got)
	}
}
