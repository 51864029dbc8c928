package lvgo

import "github.com/agiangrant/lvgo/internal/native"

// Screen is a root object together with the application context its
// callbacks receive.
type Screen[C any] struct {
	*Obj[C]
}

type screenState struct {
	raw     native.Obj
	retired bool
}

// AnyScreen is implemented by every *Screen.
type AnyScreen interface {
	state() *screenState
}

func (s *Screen[C]) state() *screenState { return s.slot.screen }

// NewScreen creates a screen on d and builds it with init. The context slot
// exists before init runs, so objects created inside it can register
// callbacks; the value init returns becomes the context once it is done.
func NewScreen[C any, T DrawTarget](d *Display[T], init func(s *Screen[C]) C) *Screen[C] {
	raw := d.e.abi.ObjCreate(0)
	return buildScreen(d.e, raw, init)
}

// ActiveScreen wraps the screen currently loaded on d, which the engine
// creates along with the display, and builds it with init.
func ActiveScreen[C any, T DrawTarget](d *Display[T], init func(s *Screen[C]) C) *Screen[C] {
	raw := d.e.abi.DispGetScrAct(d.raw)
	s := buildScreen(d.e, raw, init)
	d.active = s.state()
	return s
}

func buildScreen[C any](e *Engine, raw native.Obj, init func(s *Screen[C]) C) *Screen[C] {
	slot := &contextSlot[C]{e: e, screen: &screenState{raw: raw}}
	s := &Screen[C]{Obj: newObj(slot, raw)}
	ctx := init(s)
	slot.value = &ctx
	return s
}

// Context returns the screen's context, or nil while init is still running.
func (s *Screen[C]) Context() *C { return s.slot.value }
