package lvgo

import (
	"github.com/agiangrant/lvgo/internal/handles"
	"github.com/agiangrant/lvgo/internal/native"
)

// ============================================================================
// Registration
// ============================================================================

// dispatcher is the type-erased form of an event registration. The engine
// carries its handle as the callback's user data.
type dispatcher interface {
	dispatch(ev Event, target, current native.Obj)
}

type eventAdapter[C any] struct {
	slot *contextSlot[C]
	fn   func(ctx *C, ev Event, child *Obj[C])
}

func (a *eventAdapter[C]) dispatch(ev Event, target, current native.Obj) {
	var child *Obj[C]
	if target != current {
		// The engine only raises events on live objects.
		a.slot.e.arena.created(target)
		child = &Obj[C]{raw: target, slot: a.slot}
	}
	a.fn(a.slot.load(), ev, child)
}

// OnEvent calls fn every time the engine raises ev on o. When the event
// bubbled up from a descendant, child is that descendant; otherwise it is
// nil. ctx is the context of o's screen.
func (o *Obj[C]) OnEvent(ev Event, fn func(ctx *C, child *Obj[C])) *Obj[C] {
	o.register(ev.code(), func(ctx *C, _ Event, child *Obj[C]) { fn(ctx, child) })
	return o
}

// OnAnyEvent calls fn for every event the engine raises on o.
func (o *Obj[C]) OnAnyEvent(fn func(ctx *C, ev Event, child *Obj[C])) *Obj[C] {
	o.register(native.EventAll, fn)
	return o
}

func (o *Obj[C]) register(filter native.EventCode, fn func(ctx *C, ev Event, child *Obj[C])) {
	abi := o.live()
	e := o.slot.e
	h := e.reg.Register(&eventAdapter[C]{slot: o.slot, fn: fn})
	e.arena.track(o.raw, h)
	abi.ObjAddEventCb(o.raw, e.eventTrampoline, filter, uintptr(h))
	e.log.V(2).Info("registered event callback", "obj", uintptr(o.raw), "filter", filter, "handle", h)
}

// ============================================================================
// Dispatch
// ============================================================================

// eventTrampoline is the single engine callback behind every registration.
func (e *Engine) eventTrampoline(ev native.Event) {
	code := e.abi.EventGetCode(ev)
	current := e.abi.EventGetCurrentTarget(ev)
	target := e.abi.EventGetTarget(ev)
	h := handles.Handle(e.abi.EventGetUserData(ev))

	event, ok := eventFromNative(code)
	if !ok {
		e.log.V(2).Info("dropping unknown event code", "code", uint32(code))
		return
	}
	v, ok := e.reg.Value(h)
	if !ok {
		return
	}
	v.(dispatcher).dispatch(event, target, current)
}

// ============================================================================
// Arena
// ============================================================================

// arena tracks the registrations of every object that has any. The first
// registration on an object adds a watch for its Delete event; once the
// engine deletes the object its handles are released at the end of the
// next pass, after every Delete callback has run. Swept objects stay
// tombstoned until the engine hands out the same address again.
type arena struct {
	e       *Engine
	entries map[native.Obj]*arenaEntry
	dying   []native.Obj
	swept   map[native.Obj]struct{}
}

type arenaEntry struct {
	handles []handles.Handle
	dead    bool
}

func newArena(e *Engine) *arena {
	return &arena{
		e:       e,
		entries: make(map[native.Obj]*arenaEntry),
		swept:   make(map[native.Obj]struct{}),
	}
}

type deleteWatch struct {
	a   *arena
	obj native.Obj
}

func (w deleteWatch) dispatch(ev Event, target, current native.Obj) {
	if ev != EventDelete || current != w.obj {
		return
	}
	if ent, ok := w.a.entries[w.obj]; ok && !ent.dead {
		ent.dead = true
		w.a.dying = append(w.a.dying, w.obj)
	}
}

func (a *arena) track(obj native.Obj, h handles.Handle) {
	ent, ok := a.entries[obj]
	if !ok {
		ent = &arenaEntry{}
		a.entries[obj] = ent
		wh := a.e.reg.Register(deleteWatch{a: a, obj: obj})
		ent.handles = append(ent.handles, wh)
		a.e.abi.ObjAddEventCb(obj, a.e.eventTrampoline, native.EventDelete, uintptr(wh))
	}
	ent.handles = append(ent.handles, h)
}

// deleted reports whether the engine has deleted obj. Only objects with
// registrations are known.
func (a *arena) deleted(obj native.Obj) bool {
	if _, ok := a.swept[obj]; ok {
		return true
	}
	ent, ok := a.entries[obj]
	return ok && ent.dead
}

// created forgets the tombstone of an address the engine reused.
func (a *arena) created(obj native.Obj) {
	delete(a.swept, obj)
}

// sweep releases the handles of objects deleted since the last sweep.
func (a *arena) sweep() {
	if len(a.dying) == 0 {
		return
	}
	for _, obj := range a.dying {
		ent := a.entries[obj]
		for _, h := range ent.handles {
			a.e.reg.Delete(h)
		}
		delete(a.entries, obj)
		a.swept[obj] = struct{}{}
		a.e.log.V(2).Info("released registrations", "obj", uintptr(obj), "count", len(ent.handles))
	}
	a.dying = a.dying[:0]
}
