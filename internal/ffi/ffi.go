//go:build darwin || linux || ios || android || windows

// Package ffi binds the LVGL shared library via purego.
// This implementation uses purego for FFI, eliminating the need for cgo, so
// lvgo cross-compiles and the engine can be swapped without rebuilding.
package ffi

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/agiangrant/lvgo/internal/handles"
	"github.com/agiangrant/lvgo/internal/native"
)

// ============================================================================
// Library Loading
// ============================================================================

var (
	lib     *Library
	libOnce sync.Once
	libErr  error
)

// Library is the loaded engine. It implements native.ABI. There is one per
// process because the engine keeps its state in C globals.
type Library struct {
	handle uintptr

	// Core
	fnInit               func()
	fnLogRegisterPrintCb func(cb uintptr)
	fnTickInc            func(ms uint32)
	fnTimerHandler       func() uint32

	// Objects
	fnObjCreate          func(parent uintptr) uintptr
	fnObjGetParent       func(obj uintptr) uintptr
	fnObjSetPos          func(obj uintptr, x, y int16)
	fnObjSetSize         func(obj uintptr, w, h int16)
	fnObjSetWidth        func(obj uintptr, w int16)
	fnObjSetHeight       func(obj uintptr, h int16)
	fnObjAddFlag         func(obj uintptr, f uint32)
	fnObjClearFlag       func(obj uintptr, f uint32)
	fnObjHasFlag         func(obj uintptr, f uint32) bool
	fnObjAddState        func(obj uintptr, s uint16)
	fnObjClearState      func(obj uintptr, s uint16)
	fnObjGetState        func(obj uintptr) uint16
	fnObjAlign           func(obj uintptr, align uint8, x, y int16)
	fnObjAlignTo         func(obj, base uintptr, align uint8, x, y int16)
	fnObjSetGridDscArray func(obj uintptr, cols, rows unsafe.Pointer)
	fnObjSetGridCell     func(obj uintptr, colAlign, col, colSpan, rowAlign, row, rowSpan uint8)
	fnObjAddStyle        func(obj, style uintptr, selector uint32)
	fnObjAddEventCb      func(obj, cb uintptr, filter uint32, userData uintptr) uintptr

	// Styles and widgets
	fnStyleInit    func(style unsafe.Pointer)
	fnStyleSetProp func(style uintptr, prop uint16, value uintptr)
	fnLabelSetText func(obj uintptr, text string)

	// Events
	fnEventGetCode          func(e uintptr) uint32
	fnEventGetCurrentTarget func(e uintptr) uintptr
	fnEventGetTarget        func(e uintptr) uintptr
	fnEventGetUserData      func(e uintptr) uintptr

	// Drivers
	fnDispDrawBufInit  func(buf unsafe.Pointer, buf1, buf2 unsafe.Pointer, size uint32)
	fnDispDrvInit      func(drv unsafe.Pointer)
	fnDispDrvRegister  func(drv unsafe.Pointer) uintptr
	fnDispGetScrAct    func(disp uintptr) uintptr
	fnDispLoadScr      func(scr uintptr)
	fnDispFlushReady   func(drv uintptr)
	fnIndevDrvInit     func(drv unsafe.Pointer)
	fnIndevDrvRegister func(drv unsafe.Pointer) uintptr

	// Callback thunks, one per C signature.
	eventThunk uintptr
	flushThunk uintptr
	readThunk  uintptr
	printThunk uintptr

	mu      sync.Mutex
	pinner  runtime.Pinner
	creates map[native.Class]func(parent uintptr) uintptr

	printCbs []native.PrintCallback

	// Event registrations: the C user data is a handle to an eventReg.
	events   *handles.Registry
	objRegs  map[uintptr][]handles.Handle
	dyingObj []uintptr

	// Go driver records and their C mirrors.
	drawBufs  map[*native.DispDrawBuf]*dispDrawBufC
	dispDrvs  map[*native.DispDrv]*dispDrvC
	dispByC   map[uintptr]*native.DispDrv
	indevDrvs map[*native.IndevDrv]*indevDrvC
	indevByC  map[uintptr]*native.IndevDrv
}

var _ native.ABI = (*Library)(nil)

type eventReg struct {
	cb       native.EventCallback
	userData uintptr
}

// getLibraryPath returns the path to the dynamic library
func getLibraryPath(path string) string {
	// Check environment variable first
	if env := os.Getenv("LVGO_LIB_PATH"); env != "" {
		return env
	}
	if path != "" {
		return path
	}

	var libName string
	switch runtime.GOOS {
	case "darwin", "ios":
		libName = "liblvgl.dylib"
	case "windows":
		libName = "lvgl.dll"
	default:
		libName = "liblvgl.so"
	}

	// Check common locations
	searchPaths := []string{
		libName,
		filepath.Join("lib", libName),
		filepath.Join("build", libName),
	}
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		searchPaths = append(searchPaths,
			filepath.Join(execDir, libName),
			filepath.Join(execDir, "..", "lib", libName),
		)
	}

	for _, p := range searchPaths {
		if _, err := os.Stat(p); err == nil {
			if abs, err := filepath.Abs(p); err == nil {
				return abs
			}
			return p
		}
	}

	// Default to library name (let the system find it)
	return libName
}

// Load loads the engine library once per process. path may be empty to
// search the usual locations; LVGO_LIB_PATH takes precedence over both.
func Load(path string) (*Library, error) {
	libOnce.Do(func() {
		libPath := getLibraryPath(path)
		log.Printf("ffi: attempting to load library from: %s", libPath)

		handle, err := openLibrary(libPath)
		if err != nil {
			libErr = fmt.Errorf("failed to load lvgl library from %s: %w", libPath, err)
			return
		}
		l := &Library{
			handle:    handle,
			creates:   make(map[native.Class]func(uintptr) uintptr),
			events:    handles.New(),
			objRegs:   make(map[uintptr][]handles.Handle),
			drawBufs:  make(map[*native.DispDrawBuf]*dispDrawBufC),
			dispDrvs:  make(map[*native.DispDrv]*dispDrvC),
			dispByC:   make(map[uintptr]*native.DispDrv),
			indevDrvs: make(map[*native.IndevDrv]*indevDrvC),
			indevByC:  make(map[uintptr]*native.IndevDrv),
		}
		if err := l.registerFunctions(); err != nil {
			libErr = err
			return
		}
		l.eventThunk = purego.NewCallback(eventCallback)
		l.flushThunk = purego.NewCallback(flushCallback)
		l.readThunk = purego.NewCallback(readCallback)
		l.printThunk = purego.NewCallback(printCallback)
		lib = l
	})
	return lib, libErr
}

// register binds fn to the exported symbol name.
func (l *Library) register(fn any, name string) error {
	sym, err := getSymbol(l.handle, name)
	if err != nil {
		return err
	}
	purego.RegisterFunc(fn, sym)
	return nil
}

func (l *Library) registerFunctions() error {
	syms := []struct {
		fn   any
		name string
	}{
		{&l.fnInit, "lv_init"},
		{&l.fnLogRegisterPrintCb, "lv_log_register_print_cb"},
		{&l.fnTickInc, "lv_tick_inc"},
		{&l.fnTimerHandler, "lv_timer_handler"},

		{&l.fnObjCreate, "lv_obj_create"},
		{&l.fnObjGetParent, "lv_obj_get_parent"},
		{&l.fnObjSetPos, "lv_obj_set_pos"},
		{&l.fnObjSetSize, "lv_obj_set_size"},
		{&l.fnObjSetWidth, "lv_obj_set_width"},
		{&l.fnObjSetHeight, "lv_obj_set_height"},
		{&l.fnObjAddFlag, "lv_obj_add_flag"},
		{&l.fnObjClearFlag, "lv_obj_clear_flag"},
		{&l.fnObjHasFlag, "lv_obj_has_flag"},
		{&l.fnObjAddState, "lv_obj_add_state"},
		{&l.fnObjClearState, "lv_obj_clear_state"},
		{&l.fnObjGetState, "lv_obj_get_state"},
		{&l.fnObjAlign, "lv_obj_align"},
		{&l.fnObjAlignTo, "lv_obj_align_to"},
		{&l.fnObjSetGridDscArray, "lv_obj_set_grid_dsc_array"},
		{&l.fnObjSetGridCell, "lv_obj_set_grid_cell"},
		{&l.fnObjAddStyle, "lv_obj_add_style"},
		{&l.fnObjAddEventCb, "lv_obj_add_event_cb"},

		{&l.fnStyleInit, "lv_style_init"},
		{&l.fnStyleSetProp, "lv_style_set_prop"},
		{&l.fnLabelSetText, "lv_label_set_text"},

		{&l.fnEventGetCode, "lv_event_get_code"},
		{&l.fnEventGetCurrentTarget, "lv_event_get_current_target"},
		{&l.fnEventGetTarget, "lv_event_get_target"},
		{&l.fnEventGetUserData, "lv_event_get_user_data"},

		{&l.fnDispDrawBufInit, "lv_disp_draw_buf_init"},
		{&l.fnDispDrvInit, "lv_disp_drv_init"},
		{&l.fnDispDrvRegister, "lv_disp_drv_register"},
		{&l.fnDispGetScrAct, "lv_disp_get_scr_act"},
		{&l.fnDispLoadScr, "lv_disp_load_scr"},
		{&l.fnDispFlushReady, "lv_disp_flush_ready"},
		{&l.fnIndevDrvInit, "lv_indev_drv_init"},
		{&l.fnIndevDrvRegister, "lv_indev_drv_register"},
	}
	for _, s := range syms {
		if err := l.register(s.fn, s.name); err != nil {
			return err
		}
	}
	return nil
}

// goString converts a null-terminated C string to a Go string
func goString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	var length int
	for *(*byte)(unsafe.Add(unsafe.Pointer(ptr), length)) != 0 {
		length++
		if length > 1<<16 { // log lines are short
			break
		}
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), length))
}

// keep pins p for the rest of the process.
func (l *Library) keep(p any) {
	l.mu.Lock()
	l.pinner.Pin(p)
	l.mu.Unlock()
}

// ============================================================================
// Core
// ============================================================================

func (l *Library) Init() { l.fnInit() }

func (l *Library) LogRegisterPrintCb(cb native.PrintCallback) {
	l.mu.Lock()
	first := len(l.printCbs) == 0
	l.printCbs = append(l.printCbs, cb)
	l.mu.Unlock()
	if first {
		l.fnLogRegisterPrintCb(l.printThunk)
	}
}

func (l *Library) TickInc(ms uint32) { l.fnTickInc(ms) }

// TimerHandler runs lv_timer_handler and then releases the event
// registrations of objects deleted during it.
func (l *Library) TimerHandler() uint32 {
	next := l.fnTimerHandler()
	l.sweep()
	return next
}

// ============================================================================
// Objects
// ============================================================================

func (l *Library) ObjCreate(parent native.Obj) native.Obj {
	return native.Obj(l.fnObjCreate(uintptr(parent)))
}

// WidgetCreate calls lv_<class>_create, resolving it on first use. A class
// the library was built without yields no object.
func (l *Library) WidgetCreate(class native.Class, parent native.Obj) native.Obj {
	l.mu.Lock()
	fn, ok := l.creates[class]
	l.mu.Unlock()
	if !ok {
		name := "lv_" + string(class) + "_create"
		if err := l.register(&fn, name); err != nil {
			log.Printf("ffi: %v", err)
			return 0
		}
		l.mu.Lock()
		l.creates[class] = fn
		l.mu.Unlock()
	}
	return native.Obj(fn(uintptr(parent)))
}

func (l *Library) ObjGetParent(obj native.Obj) native.Obj {
	return native.Obj(l.fnObjGetParent(uintptr(obj)))
}

func (l *Library) ObjSetPos(obj native.Obj, x, y native.Coord) {
	l.fnObjSetPos(uintptr(obj), x, y)
}

func (l *Library) ObjSetSize(obj native.Obj, w, h native.Coord) {
	l.fnObjSetSize(uintptr(obj), w, h)
}

func (l *Library) ObjSetWidth(obj native.Obj, w native.Coord)  { l.fnObjSetWidth(uintptr(obj), w) }
func (l *Library) ObjSetHeight(obj native.Obj, h native.Coord) { l.fnObjSetHeight(uintptr(obj), h) }

func (l *Library) ObjAddFlag(obj native.Obj, f native.ObjFlag) {
	l.fnObjAddFlag(uintptr(obj), uint32(f))
}
func (l *Library) ObjClearFlag(obj native.Obj, f native.ObjFlag) {
	l.fnObjClearFlag(uintptr(obj), uint32(f))
}

func (l *Library) ObjHasFlag(obj native.Obj, f native.ObjFlag) bool {
	return l.fnObjHasFlag(uintptr(obj), uint32(f))
}

func (l *Library) ObjAddState(obj native.Obj, s native.State) {
	l.fnObjAddState(uintptr(obj), uint16(s))
}
func (l *Library) ObjClearState(obj native.Obj, s native.State) {
	l.fnObjClearState(uintptr(obj), uint16(s))
}

func (l *Library) ObjGetState(obj native.Obj) native.State {
	return native.State(l.fnObjGetState(uintptr(obj)))
}

func (l *Library) ObjAlign(obj native.Obj, align native.Align, x, y native.Coord) {
	l.fnObjAlign(uintptr(obj), uint8(align), x, y)
}

func (l *Library) ObjAlignTo(obj, base native.Obj, align native.Align, x, y native.Coord) {
	l.fnObjAlignTo(uintptr(obj), uintptr(base), uint8(align), x, y)
}

// ObjSetGridDscArray pins both arrays; the engine reads them on every
// layout pass.
func (l *Library) ObjSetGridDscArray(obj native.Obj, cols, rows []native.Coord) {
	l.keep(&cols[0])
	l.keep(&rows[0])
	l.fnObjSetGridDscArray(uintptr(obj), unsafe.Pointer(&cols[0]), unsafe.Pointer(&rows[0]))
}

func (l *Library) ObjSetGridCell(obj native.Obj, colAlign native.GridAlign, col, colSpan uint8, rowAlign native.GridAlign, row, rowSpan uint8) {
	l.fnObjSetGridCell(uintptr(obj), uint8(colAlign), col, colSpan, uint8(rowAlign), row, rowSpan)
}

func (l *Library) ObjAddStyle(obj native.Obj, style native.Style, selector native.StyleSelector) {
	l.fnObjAddStyle(uintptr(obj), uintptr(style), uint32(selector))
}

// ============================================================================
// Styles and widgets
// ============================================================================

func (l *Library) StyleCreate() native.Style {
	st := new(styleC)
	l.keep(st)
	l.fnStyleInit(unsafe.Pointer(st))
	return native.Style(uintptr(unsafe.Pointer(st)))
}

// StyleSetProp passes value as the num member of lv_style_value_t.
func (l *Library) StyleSetProp(style native.Style, prop native.StyleProp, value int32) {
	l.fnStyleSetProp(uintptr(style), uint16(prop), uintptr(int64(value)))
}

func (l *Library) LabelSetText(obj native.Obj, text string) {
	l.fnLabelSetText(uintptr(obj), text)
}

// ============================================================================
// Events
// ============================================================================

// ObjAddEventCb registers cb through the shared event thunk. The first
// registration on an object also adds a Delete watch so the registrations
// can be released once the object is gone.
func (l *Library) ObjAddEventCb(obj native.Obj, cb native.EventCallback, filter native.EventCode, userData uintptr) {
	h := l.events.Register(&eventReg{cb: cb, userData: userData})
	l.mu.Lock()
	regs, watched := l.objRegs[uintptr(obj)]
	l.objRegs[uintptr(obj)] = append(regs, h)
	l.mu.Unlock()
	if !watched {
		l.fnObjAddEventCb(uintptr(obj), l.eventThunk, uint32(native.EventDelete), 0)
	}
	l.fnObjAddEventCb(uintptr(obj), l.eventThunk, uint32(filter), uintptr(h))
}

func (l *Library) EventGetCode(e native.Event) native.EventCode {
	return native.EventCode(l.fnEventGetCode(uintptr(e)))
}

func (l *Library) EventGetCurrentTarget(e native.Event) native.Obj {
	return native.Obj(l.fnEventGetCurrentTarget(uintptr(e)))
}

func (l *Library) EventGetTarget(e native.Event) native.Obj {
	return native.Obj(l.fnEventGetTarget(uintptr(e)))
}

// EventGetUserData returns the user data given to ObjAddEventCb.
func (l *Library) EventGetUserData(e native.Event) uintptr {
	v, ok := l.events.Value(handles.Handle(l.fnEventGetUserData(uintptr(e))))
	if !ok {
		return 0
	}
	return v.(*eventReg).userData
}

func eventCallback(e uintptr) uintptr {
	l := lib
	ud := l.fnEventGetUserData(e)
	if ud == 0 {
		obj := l.fnEventGetCurrentTarget(e)
		l.mu.Lock()
		l.dyingObj = append(l.dyingObj, obj)
		l.mu.Unlock()
		return 0
	}
	v, ok := l.events.Value(handles.Handle(ud))
	if !ok {
		return 0
	}
	v.(*eventReg).cb(native.Event(e))
	return 0
}

// sweep drops the registrations of objects whose Delete event has fired.
func (l *Library) sweep() {
	l.mu.Lock()
	dying := l.dyingObj
	l.dyingObj = nil
	var drop []handles.Handle
	for _, obj := range dying {
		drop = append(drop, l.objRegs[obj]...)
		delete(l.objRegs, obj)
	}
	l.mu.Unlock()
	for _, h := range drop {
		l.events.Delete(h)
	}
}

// ============================================================================
// Display driver
// ============================================================================

func (l *Library) DispDrawBufInit(buf *native.DispDrawBuf, buf1, buf2 unsafe.Pointer, sizeInPx uint32) {
	c := new(dispDrawBufC)
	l.keep(c)
	if buf1 != nil {
		l.keep(buf1)
	}
	if buf2 != nil {
		l.keep(buf2)
	}
	buf.Buf1, buf.Buf2, buf.Size = buf1, buf2, sizeInPx
	l.mu.Lock()
	l.drawBufs[buf] = c
	l.mu.Unlock()
	l.fnDispDrawBufInit(unsafe.Pointer(c), buf1, buf2, sizeInPx)
}

// dispC returns the C record mirroring drv, allocating it on first use.
func (l *Library) dispC(drv *native.DispDrv) (*dispDrvC, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.dispDrvs[drv]
	if !ok {
		c = new(dispDrvC)
		l.pinner.Pin(c)
		l.dispDrvs[drv] = c
	}
	return c, ok
}

func (l *Library) DispDrvInit(drv *native.DispDrv) {
	c, _ := l.dispC(drv)
	l.fnDispDrvInit(unsafe.Pointer(c))
	drv.HorRes, drv.VerRes = c.horRes, c.verRes
}

// DispDrvRegister copies drv into its C record and registers it. The flush
// callback is always the shared flush thunk.
func (l *Library) DispDrvRegister(drv *native.DispDrv) native.Disp {
	c, initialized := l.dispC(drv)
	if !initialized {
		l.fnDispDrvInit(unsafe.Pointer(c))
	}
	l.mu.Lock()
	c.horRes, c.verRes = drv.HorRes, drv.VerRes
	if drv.DrawBuf != nil {
		if b, ok := l.drawBufs[drv.DrawBuf]; ok {
			c.drawBuf = uintptr(unsafe.Pointer(b))
		}
	}
	c.flushCb = l.flushThunk
	c.userData = drv.UserData
	l.dispByC[uintptr(unsafe.Pointer(c))] = drv
	l.mu.Unlock()
	return native.Disp(l.fnDispDrvRegister(unsafe.Pointer(c)))
}

func (l *Library) DispGetScrAct(disp native.Disp) native.Obj {
	return native.Obj(l.fnDispGetScrAct(uintptr(disp)))
}

func (l *Library) DispLoadScr(scr native.Obj) { l.fnDispLoadScr(uintptr(scr)) }

func (l *Library) DispFlushReady(drv *native.DispDrv) {
	l.mu.Lock()
	c, ok := l.dispDrvs[drv]
	l.mu.Unlock()
	if !ok {
		log.Printf("ffi: flush ready for an unregistered display driver")
		return
	}
	l.fnDispFlushReady(uintptr(unsafe.Pointer(c)))
}

func flushCallback(drv, area, colors uintptr) uintptr {
	l := lib
	l.mu.Lock()
	d, ok := l.dispByC[drv]
	l.mu.Unlock()
	if !ok || d.FlushCb == nil {
		// Without a Go driver nobody would release the buffer.
		l.fnDispFlushReady(drv)
		return 0
	}
	d.FlushCb(d, (*native.Area)(unsafe.Pointer(area)), unsafe.Pointer(colors))
	return 0
}

// ============================================================================
// Input device driver
// ============================================================================

func (l *Library) indevC(drv *native.IndevDrv) (*indevDrvC, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.indevDrvs[drv]
	if !ok {
		c = new(indevDrvC)
		l.pinner.Pin(c)
		l.indevDrvs[drv] = c
	}
	return c, ok
}

func (l *Library) IndevDrvInit(drv *native.IndevDrv) {
	c, _ := l.indevC(drv)
	l.fnIndevDrvInit(unsafe.Pointer(c))
}

func (l *Library) IndevDrvRegister(drv *native.IndevDrv) native.Indev {
	c, initialized := l.indevC(drv)
	if !initialized {
		l.fnIndevDrvInit(unsafe.Pointer(c))
	}
	l.mu.Lock()
	c.typ = int32(drv.Type)
	c.readCb = l.readThunk
	c.disp = uintptr(drv.Disp)
	c.userData = drv.UserData
	l.indevByC[uintptr(unsafe.Pointer(c))] = drv
	l.mu.Unlock()
	return native.Indev(l.fnIndevDrvRegister(unsafe.Pointer(c)))
}

func readCallback(drv, data uintptr) uintptr {
	l := lib
	l.mu.Lock()
	d, ok := l.indevByC[drv]
	l.mu.Unlock()
	if !ok || d.ReadCb == nil {
		return 0
	}
	c := (*indevDataC)(unsafe.Pointer(data))
	rec := c.toNative()
	d.ReadCb(d, &rec)
	c.fromNative(rec)
	return 0
}

// ============================================================================
// Logging
// ============================================================================

func printCallback(buf uintptr) uintptr {
	l := lib
	msg := goString(buf)
	l.mu.Lock()
	cbs := append([]native.PrintCallback(nil), l.printCbs...)
	l.mu.Unlock()
	for _, cb := range cbs {
		cb(msg)
	}
	return 0
}
