package sim

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/agiangrant/lvgo/internal/native"
)

type pointer struct {
	x, y    native.Coord
	pressed bool
}

func (h *harness) addPointer(t *testing.T, p *pointer) native.Indev {
	t.Helper()
	drv := new(native.IndevDrv)
	h.s.IndevDrvInit(drv)
	drv.Type = native.IndevTypePointer
	drv.ReadCb = func(_ *native.IndevDrv, data *native.IndevData) {
		data.Point = native.Point{X: p.x, Y: p.y}
		if p.pressed {
			data.State = native.IndevStatePressed
		}
	}
	id := h.s.IndevDrvRegister(drv)
	if id == 0 {
		t.Fatal("IndevDrvRegister returned no device")
	}
	return id
}

func codes(s *Engine, obj native.Obj, log *[]native.EventCode) {
	s.ObjAddEventCb(obj, func(e native.Event) {
		*log = append(*log, s.EventGetCode(e))
	}, native.EventAll, 0)
}

func TestPointerClick(t *testing.T) {
	h := newHarness(t)
	btn := h.s.WidgetCreate("btn", h.screen())
	h.s.ObjSetPos(btn, 10, 10)
	var got []native.EventCode
	codes(h.s, btn, &got)

	p := &pointer{x: 20, y: 20, pressed: true}
	in := h.addPointer(t, p)
	h.s.TimerHandler()
	if h.s.ObjGetState(btn)&native.StatePressed == 0 {
		t.Error("button not in pressed state while held")
	}
	p.pressed = false
	h.s.TimerHandler()

	want := []native.EventCode{
		native.EventPressed,
		native.EventPressing,
		native.EventReleased,
		native.EventShortClicked,
		native.EventClicked,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if last := h.s.LastInput(in); last.State != native.IndevStateReleased {
		t.Errorf("last state = %v, want released", last.State)
	}
}

func TestPointerLongPress(t *testing.T) {
	h := newHarness(t)
	btn := h.s.WidgetCreate("btn", h.screen())
	var got []native.EventCode
	codes(h.s, btn, &got)

	p := &pointer{x: 5, y: 5, pressed: true}
	h.addPointer(t, p)
	h.s.TimerHandler()
	h.s.TickInc(DefaultOptions().LongPressTime)
	h.s.TimerHandler()
	h.s.TickInc(DefaultOptions().LongPressRepeatTime)
	h.s.TimerHandler()
	p.pressed = false
	h.s.TimerHandler()

	want := []native.EventCode{
		native.EventPressed,
		native.EventPressing,
		native.EventPressing,
		native.EventLongPressed,
		native.EventPressing,
		native.EventLongPressedRepeat,
		native.EventReleased,
		native.EventClicked,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestPointerHitTest(t *testing.T) {
	h := newHarness(t)
	btn := h.s.WidgetCreate("btn", h.screen())
	label := h.s.WidgetCreate("label", btn)
	h.s.LabelSetText(label, "hi")
	hidden := h.s.WidgetCreate("btn", h.screen())
	h.s.ObjAddFlag(hidden, native.FlagHidden)

	var onBtn, onScreen, onHidden []native.EventCode
	codes(h.s, btn, &onBtn)
	codes(h.s, h.screen(), &onScreen)
	codes(h.s, hidden, &onHidden)

	// The label is not clickable, so the press lands on the button.
	p := &pointer{x: 1, y: 1, pressed: true}
	h.addPointer(t, p)
	h.s.TimerHandler()
	p.pressed = false
	h.s.TimerHandler()

	if len(onBtn) == 0 {
		t.Error("button received no events")
	}
	if len(onHidden) != 0 {
		t.Errorf("hidden object received %v", onHidden)
	}

	// Outside the button the screen itself is hit.
	p.x, p.y, p.pressed = 200, 200, true
	h.s.TimerHandler()
	if len(onScreen) == 0 {
		t.Error("screen received no events")
	}
}

func TestCheckableToggles(t *testing.T) {
	h := newHarness(t)
	sw := h.s.WidgetCreate("switch", h.screen())
	h.s.ObjAddFlag(sw, native.FlagCheckable)

	p := &pointer{x: 1, y: 1, pressed: true}
	h.addPointer(t, p)
	h.s.TimerHandler()
	p.pressed = false
	h.s.TimerHandler()

	if h.s.ObjGetState(sw)&native.StateChecked == 0 {
		t.Error("checkable object not checked after click")
	}
}

func TestEncoder(t *testing.T) {
	h := newHarness(t)
	o := h.s.ObjCreate(h.screen())
	h.s.Focus(o)
	var got []native.EventCode
	codes(h.s, o, &got)

	var diff int16
	var pressed bool
	drv := new(native.IndevDrv)
	h.s.IndevDrvInit(drv)
	drv.Type = native.IndevTypeEncoder
	drv.ReadCb = func(_ *native.IndevDrv, data *native.IndevData) {
		data.EncDiff, diff = diff, 0
		if pressed {
			data.State = native.IndevStatePressed
		}
	}
	in := h.s.IndevDrvRegister(drv)

	diff = -2
	h.s.TimerHandler()
	pressed = true
	h.s.TimerHandler()
	pressed = false
	h.s.TimerHandler()

	want := []native.EventCode{
		native.EventKey,
		native.EventKey,
		native.EventPressed,
		native.EventReleased,
		native.EventShortClicked,
		native.EventClicked,
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("events mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]uint32{keyLeft, keyLeft}, h.s.Keys(in)); d != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", d)
	}
}
