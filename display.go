package lvgo

import (
	"image"
	"iter"
	"slices"
	"unsafe"

	"github.com/agiangrant/lvgo/internal/handles"
	"github.com/agiangrant/lvgo/internal/native"
)

// DrawTarget receives rendered pixels.
type DrawTarget interface {
	// Bounds gives the resolution of the display; only its size is used.
	Bounds() image.Rectangle
	// FillContiguous writes colors to area in row-major order. The sequence
	// yields exactly area.Dx()*area.Dy() colors and is only valid for the
	// duration of the call.
	FillContiguous(area image.Rectangle, colors iter.Seq[Color]) error
}

// Display binds a DrawTarget to the engine's display driver. There is one
// display per engine and it lives until the process exits.
type Display[T DrawTarget] struct {
	e      *Engine
	raw    native.Disp
	target T
	handle handles.Handle

	drv     *native.DispDrv
	drawBuf *native.DispDrawBuf
	buf     []Color

	active *screenState
}

// NewDrawBuffer allocates a draw buffer covering 1/divisor of a w×h frame,
// the size the engine recommends. At least one line is always allocated.
func NewDrawBuffer(w, h, divisor int) []Color {
	if divisor < 1 {
		divisor = 1
	}
	n := max(w*h/divisor, w, 1)
	return make([]Color, n)
}

// NewDisplay registers target as the engine's display. buf is the scratch
// area the engine renders into before flushing; it is retained by the
// engine and must not be used by the caller afterwards.
func NewDisplay[T DrawTarget](e *Engine, buf []Color, target T) *Display[T] {
	if len(buf) == 0 {
		panic("lvgo: NewDisplay: empty draw buffer")
	}
	e.mu.Lock()
	if e.display {
		e.mu.Unlock()
		panic("lvgo: NewDisplay: a display is already registered")
	}
	e.display = true
	e.mu.Unlock()

	d := &Display[T]{
		e:       e,
		target:  target,
		handle:  e.reg.Register(target),
		drv:     new(native.DispDrv),
		drawBuf: new(native.DispDrawBuf),
		buf:     buf,
	}

	size := target.Bounds().Size()
	e.abi.DispDrawBufInit(d.drawBuf, unsafe.Pointer(&buf[0]), nil, uint32(len(buf)))
	e.abi.DispDrvInit(d.drv)
	d.drv.HorRes = Coord(size.X)
	d.drv.VerRes = Coord(size.Y)
	d.drv.DrawBuf = d.drawBuf
	d.drv.FlushCb = flushTrampoline[T](e)
	d.drv.UserData = uintptr(d.handle)

	d.raw = e.abi.DispDrvRegister(d.drv)
	if d.raw == 0 {
		panic("lvgo: NewDisplay: display registration failed")
	}
	e.log.V(1).Info("display registered", "width", size.X, "height", size.Y, "buffer", len(buf))
	return d
}

// Target returns the sink the display flushes to.
func (d *Display[T]) Target() T { return d.target }

// Engine returns the engine the display belongs to.
func (d *Display[T]) Engine() *Engine { return d.e }

// LoadScreen makes s the active screen. The previously loaded screen is
// retired: handles to its objects become stale and it cannot be loaded
// again.
func (d *Display[T]) LoadScreen(s AnyScreen) {
	st := s.state()
	if st.retired {
		panic("lvgo: LoadScreen: screen has been retired")
	}
	if d.active == st {
		return
	}
	d.e.abi.DispLoadScr(st.raw)
	if d.active != nil && d.active.raw != st.raw {
		d.active.retired = true
	}
	d.active = st
}

// flushTrampoline hands a rendered area to the target registered under the
// driver's user data. Flush-ready is always signalled, also when the target
// fails or panics.
func flushTrampoline[T DrawTarget](e *Engine) native.FlushCallback {
	return func(drv *native.DispDrv, area *native.Area, colors unsafe.Pointer) {
		defer e.abi.DispFlushReady(drv)

		v, ok := e.reg.Value(handles.Handle(drv.UserData))
		if !ok {
			return
		}
		target := v.(T)

		rect := image.Rect(int(area.X1), int(area.Y1), int(area.X2)+1, int(area.Y2)+1)
		n := rect.Dx() * rect.Dy()
		if n <= 0 {
			return
		}
		px := unsafe.Slice((*Color)(colors), n)
		if err := target.FillContiguous(rect, slices.Values(px)); err != nil {
			e.log.V(1).Info("draw target rejected flush", "area", rect, "error", err.Error())
		}
	}
}
