package sim

import (
	"unsafe"

	"github.com/agiangrant/lvgo/internal/native"
)

// Default background colors of the built-in theme, RGB565.
const (
	colorWhite   native.Color = 0xFFFF
	colorPrimary native.Color = 0x24BE
)

const (
	defaultHorRes = 320
	defaultVerRes = 240
	dispID        = native.Disp(0x10)
)

type display struct {
	drv *native.DispDrv
	act *object

	dirty    []native.Area
	flushing bool

	flushCount      int
	flushReadyCount int
}

func (s *Engine) DispDrawBufInit(buf *native.DispDrawBuf, buf1, buf2 unsafe.Pointer, sizeInPx uint32) {
	*buf = native.DispDrawBuf{Buf1: buf1, Buf2: buf2, Size: sizeInPx}
}

func (s *Engine) DispDrvInit(drv *native.DispDrv) {
	*drv = native.DispDrv{HorRes: defaultHorRes, VerRes: defaultVerRes}
}

func (s *Engine) DispDrvRegister(drv *native.DispDrv) native.Disp {
	s.mustInit()
	if s.disp != nil {
		panic("sim: only one display is supported")
	}
	if drv.DrawBuf == nil || drv.DrawBuf.Buf1 == nil || drv.DrawBuf.Size == 0 {
		s.logf("Warn", "lv_disp_drv_register: no draw buffer")
		return 0
	}
	s.disp = &display{drv: drv}
	scr := s.obj(s.ObjCreate(0))
	s.disp.act = scr
	s.invalidateAll()
	return dispID
}

func (s *Engine) DispGetScrAct(d native.Disp) native.Obj {
	if s.disp == nil || d != dispID {
		return 0
	}
	return s.disp.act.id
}

func (s *Engine) DispLoadScr(id native.Obj) {
	scr := s.obj(id)
	if s.disp == nil {
		panic("sim: no display registered")
	}
	old := s.disp.act
	if old == scr {
		return
	}
	if old != nil {
		s.send(old, native.EventScreenUnloadStart)
		s.send(scr, native.EventScreenLoadStart)
	}
	s.disp.act = scr
	s.invalidateAll()
	s.send(scr, native.EventScreenLoaded)
	if old != nil {
		if _, alive := s.objects[old.id]; alive {
			s.send(old, native.EventScreenUnloaded)
		}
	}
}

func (s *Engine) DispFlushReady(drv *native.DispDrv) {
	if s.disp == nil || s.disp.drv != drv {
		panic("sim: flush ready for an unknown driver")
	}
	s.disp.flushing = false
	s.disp.flushReadyCount++
}

// ============================================================================
// Invalidation and refresh
// ============================================================================

func (s *Engine) invalidateAll() {
	if s.disp == nil {
		return
	}
	d := s.disp.drv
	s.disp.dirty = []native.Area{{X2: d.HorRes - 1, Y2: d.VerRes - 1}}
}

// invalidateObj marks the screen holding o dirty if it is the active one.
func (s *Engine) invalidateObj(o *object) {
	if s.disp == nil || s.disp.act == nil {
		return
	}
	root := o
	for root.parent != nil {
		root = root.parent
	}
	if root == s.disp.act {
		s.invalidateAll()
	}
}

// Invalidate marks area of the active screen for redraw.
func (s *Engine) Invalidate(area native.Area) {
	if s.disp == nil {
		return
	}
	s.disp.dirty = append(s.disp.dirty, area)
}

// refresh joins the dirty areas, renders them in strips that fit the draw
// buffer and flushes each strip.
func (s *Engine) refresh() {
	d := s.disp
	if len(d.dirty) == 0 || d.act == nil {
		return
	}
	screen := native.Area{X2: d.drv.HorRes - 1, Y2: d.drv.VerRes - 1}
	area, ok := intersect(join(d.dirty), screen)
	d.dirty = d.dirty[:0]
	if !ok {
		return
	}

	s.layout(d.act)

	width := area.Width()
	rows := int(d.drv.DrawBuf.Size) / width
	if rows < 1 {
		s.logf("Error", "lv_refr: draw buffer smaller than one line")
		return
	}
	buf := unsafe.Slice((*native.Color)(d.drv.DrawBuf.Buf1), d.drv.DrawBuf.Size)

	for y := int(area.Y1); y <= int(area.Y2); y += rows {
		strip := area
		strip.Y1 = native.Coord(y)
		if y2 := y + rows - 1; y2 < int(area.Y2) {
			strip.Y2 = native.Coord(y2)
		}
		px := buf[:strip.Width()*strip.Height()]
		s.paint(d.act, strip, strip, px)

		d.flushing = true
		d.flushCount++
		if d.drv.FlushCb != nil {
			area := strip
			d.drv.FlushCb(d.drv, &area, d.drv.DrawBuf.Buf1)
		}
		if d.flushing {
			s.logf("Warn", "lv_refr: flush_cb did not call lv_disp_flush_ready")
			d.flushing = false
		}
	}
}

// paint draws o and its visible descendants into px, which covers strip in
// row-major order. Children are clipped to their parent.
func (s *Engine) paint(o *object, clip, strip native.Area, px []native.Color) {
	if o.flags&native.FlagHidden != 0 {
		return
	}
	a, ok := intersect(o.abs, clip)
	if !ok {
		return
	}
	if c, opaque := s.bgColor(o); opaque {
		w := strip.Width()
		for y := a.Y1; y <= a.Y2; y++ {
			row := int(y-strip.Y1) * w
			for x := a.X1; x <= a.X2; x++ {
				px[row+int(x-strip.X1)] = c
			}
		}
	}
	if s.opts.DrawEvents {
		s.send(o, native.EventDrawMainBegin)
		s.send(o, native.EventDrawMain)
		s.send(o, native.EventDrawMainEnd)
	}
	childClip := a
	if o.flags&native.FlagOverflowVisible != 0 {
		childClip = clip
	}
	for _, c := range o.children {
		s.paint(c, childClip, strip, px)
	}
	if s.opts.DrawEvents {
		s.send(o, native.EventDrawPostBegin)
		s.send(o, native.EventDrawPost)
		s.send(o, native.EventDrawPostEnd)
	}
}

func (s *Engine) bgColor(o *object) (native.Color, bool) {
	c, opa := colorWhite, int32(255)
	switch o.class {
	case "label":
		opa = 0
	case "btn":
		c = colorPrimary
	}
	if v, ok := s.styleProp(o, native.StyleBgColor); ok {
		c = native.Color(v)
	}
	if v, ok := s.styleProp(o, native.StyleBgOpa); ok {
		opa = v
	}
	return c, opa >= 128
}

func join(areas []native.Area) native.Area {
	out := areas[0]
	for _, a := range areas[1:] {
		out.X1 = min(out.X1, a.X1)
		out.Y1 = min(out.Y1, a.Y1)
		out.X2 = max(out.X2, a.X2)
		out.Y2 = max(out.Y2, a.Y2)
	}
	return out
}

func intersect(a, b native.Area) (native.Area, bool) {
	out := native.Area{
		X1: max(a.X1, b.X1),
		Y1: max(a.Y1, b.Y1),
		X2: min(a.X2, b.X2),
		Y2: min(a.Y2, b.Y2),
	}
	return out, out.X1 <= out.X2 && out.Y1 <= out.Y2
}

// ============================================================================
// Test hooks
// ============================================================================

// FlushCount reports how many strips were handed to the flush callback.
func (s *Engine) FlushCount() int {
	if s.disp == nil {
		return 0
	}
	return s.disp.flushCount
}

// FlushReadyCount reports how many times flush-ready was signalled.
func (s *Engine) FlushReadyCount() int {
	if s.disp == nil {
		return 0
	}
	return s.disp.flushReadyCount
}

// ActiveScreen returns the loaded screen, or 0 without a display.
func (s *Engine) ActiveScreen() native.Obj {
	if s.disp == nil || s.disp.act == nil {
		return 0
	}
	return s.disp.act.id
}
