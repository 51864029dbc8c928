// Package native describes the C-ABI surface of the widget engine (LVGL v8)
// that lvgo binds to: entry points, driver descriptor records and the
// engine's integer constants.
//
// Two implementations exist: internal/ffi loads the real shared library with
// purego, internal/sim is a Go simulation used for tests.
package native

import "unsafe"

// Opaque engine pointers. The engine owns the memory behind them.
type (
	Obj   uintptr // lv_obj_t*
	Disp  uintptr // lv_disp_t*
	Indev uintptr // lv_indev_t*
	Event uintptr // lv_event_t*
	Style uintptr // lv_style_t*
)

// Callback signatures. A backend turns these into C function pointers.
type (
	EventCallback func(e Event)
	FlushCallback func(drv *DispDrv, area *Area, colors unsafe.Pointer)
	ReadCallback  func(drv *IndevDrv, data *IndevData)
	PrintCallback func(msg string)
)

// ABI is the set of engine entry points used by lvgo. All calls are made from
// the single goroutine driving the scheduler, except TickInc.
type ABI interface {
	Init()
	LogRegisterPrintCb(cb PrintCallback)
	TickInc(ms uint32)
	TimerHandler() uint32

	// ObjCreate and WidgetCreate return 0 when the engine runs out of memory.
	ObjCreate(parent Obj) Obj
	WidgetCreate(class Class, parent Obj) Obj
	ObjGetParent(obj Obj) Obj
	ObjSetPos(obj Obj, x, y Coord)
	ObjSetSize(obj Obj, w, h Coord)
	ObjSetWidth(obj Obj, w Coord)
	ObjSetHeight(obj Obj, h Coord)
	ObjAddFlag(obj Obj, f ObjFlag)
	ObjClearFlag(obj Obj, f ObjFlag)
	ObjHasFlag(obj Obj, f ObjFlag) bool
	ObjAddState(obj Obj, s State)
	ObjClearState(obj Obj, s State)
	ObjGetState(obj Obj) State
	ObjAlign(obj Obj, align Align, x, y Coord)
	ObjAlignTo(obj, base Obj, align Align, x, y Coord)
	// ObjSetGridDscArray keeps the slices; they must stay alive and unmoved.
	ObjSetGridDscArray(obj Obj, cols, rows []Coord)
	ObjSetGridCell(obj Obj, colAlign GridAlign, col, colSpan uint8, rowAlign GridAlign, row, rowSpan uint8)
	ObjAddStyle(obj Obj, style Style, selector StyleSelector)
	ObjAddEventCb(obj Obj, cb EventCallback, filter EventCode, userData uintptr)

	StyleCreate() Style
	StyleSetProp(style Style, prop StyleProp, value int32)

	LabelSetText(obj Obj, text string)

	EventGetCode(e Event) EventCode
	EventGetCurrentTarget(e Event) Obj
	EventGetTarget(e Event) Obj
	EventGetUserData(e Event) uintptr

	DispDrawBufInit(buf *DispDrawBuf, buf1, buf2 unsafe.Pointer, sizeInPx uint32)
	DispDrvInit(drv *DispDrv)
	DispDrvRegister(drv *DispDrv) Disp
	DispGetScrAct(disp Disp) Obj
	DispLoadScr(scr Obj)
	DispFlushReady(drv *DispDrv)

	IndevDrvInit(drv *IndevDrv)
	IndevDrvRegister(drv *IndevDrv) Indev
}
