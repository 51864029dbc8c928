//go:build darwin || linux || ios || android || windows

package ffi

import "github.com/agiangrant/lvgo/internal/native"

// C records of LVGL v8.3 built with 16-bit coordinates, LV_COLOR_DEPTH 16
// and LV_USE_USER_DATA. The trailing reserve absorbs fields added by build
// options this package does not touch; the engine only ever writes into
// memory it was handed, so the records are allocated from Go, pinned and
// never released.

// lv_disp_draw_buf_t
type dispDrawBufC struct {
	buf1         uintptr
	buf2         uintptr
	bufAct       uintptr
	size         uint32
	flushing     int32
	flushingLast int32
	lastBits     uint32
	_            [32]byte
}

// lv_disp_drv_t
type dispDrvC struct {
	horRes         int16
	verRes         int16
	physicalHorRes int16
	physicalVerRes int16
	offsetX        int16
	offsetY        int16
	drawBuf        uintptr
	bits           uint32 // direct_mode, full_refresh, sw_rotate, antialiasing, rotated, screen_transp, dpi
	flushCb        uintptr
	rounderCb      uintptr
	setPxCb        uintptr
	clearCb        uintptr
	monitorCb      uintptr
	waitCb         uintptr
	cleanDcacheCb  uintptr
	drvUpdateCb    uintptr
	renderStartCb  uintptr
	colorChromaKey uint16
	drawCtx        uintptr
	drawCtxInit    uintptr
	drawCtxDeinit  uintptr
	drawCtxSize    uintptr
	userData       uintptr
	_              [64]byte
}

// lv_indev_drv_t
type indevDrvC struct {
	typ                 int32
	readCb              uintptr
	feedbackCb          uintptr
	userData            uintptr
	disp                uintptr
	readTimer           uintptr
	scrollLimit         uint8
	scrollThrow         uint8
	gestureMinVelocity  uint8
	gestureLimit        uint8
	longPressTime       uint16
	longPressRepeatTime uint16
	_                   [32]byte
}

// lv_indev_data_t
type indevDataC struct {
	point           native.Point
	key             uint32
	btnID           uint32
	encDiff         int16
	state           int32
	continueReading bool
}

// lv_style_t is at most 16 bytes; the block leaves room for
// LV_USE_ASSERT_STYLE.
type styleC [4]uint64

func (d *indevDataC) toNative() native.IndevData {
	return native.IndevData{
		Point:           d.point,
		Key:             d.key,
		BtnID:           d.btnID,
		EncDiff:         d.encDiff,
		State:           native.IndevState(d.state),
		ContinueReading: d.continueReading,
	}
}

func (d *indevDataC) fromNative(n native.IndevData) {
	d.point = n.Point
	d.key = n.Key
	d.btnID = n.BtnID
	d.encDiff = n.EncDiff
	d.state = int32(n.State)
	d.continueReading = n.ContinueReading
}
