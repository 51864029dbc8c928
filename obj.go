package lvgo

import (
	"slices"

	"github.com/agiangrant/lvgo/internal/native"
)

// Obj is a non-owning handle to one native object on a screen whose context
// has type C.
//
// The engine owns the object: deleting a parent frees its children, and the
// handle never frees anything. Handles are cheap to copy. Once the screen an
// object belongs to is replaced on the display the handle is stale and every
// mutation through it panics.
type Obj[C any] struct {
	raw  native.Obj
	slot *contextSlot[C]
}

// contextSlot holds a screen's context value at a stable address. It is
// allocated before the screen's widgets are built and filled once they are.
type contextSlot[C any] struct {
	e      *Engine
	screen *screenState
	value  *C
}

// load returns the context for a callback. A callback firing while the
// screen is still being built is a programming error.
func (s *contextSlot[C]) load() *C {
	if s.value == nil {
		panic("lvgo: context not initialized: event fired before the screen was built")
	}
	return s.value
}

func newObj[C any](slot *contextSlot[C], raw native.Obj) *Obj[C] {
	if raw == 0 {
		panic("lvgo: object creation failed: out of memory")
	}
	slot.e.arena.created(raw)
	return &Obj[C]{raw: raw, slot: slot}
}

// NewObj creates a plain container object under parent.
func NewObj[C any](parent *Obj[C]) *Obj[C] {
	return newObj(parent.slot, parent.live().ObjCreate(parent.raw))
}

// newWidget creates an object of the given engine class under parent.
func newWidget[C any](parent *Obj[C], class native.Class) *Obj[C] {
	return newObj(parent.slot, parent.live().WidgetCreate(class, parent.raw))
}

// live returns the engine for a mutation, panicking on stale handles.
func (o *Obj[C]) live() native.ABI {
	if o.slot.screen.retired {
		panic("lvgo: stale object handle: its screen has been unloaded")
	}
	if o.slot.e.arena.deleted(o.raw) {
		panic("lvgo: stale object handle: the object has been deleted")
	}
	return o.slot.e.abi
}

// Raw returns the engine's address for the object.
func (o *Obj[C]) Raw() uintptr { return uintptr(o.raw) }

// Is reports whether o and other refer to the same native object.
func (o *Obj[C]) Is(other *Obj[C]) bool {
	return other != nil && o.raw == other.raw
}

// Engine returns the engine the object lives in.
func (o *Obj[C]) Engine() *Engine { return o.slot.e }

// Parent returns the parent object, or nil for a screen.
func (o *Obj[C]) Parent() *Obj[C] {
	p := o.slot.e.abi.ObjGetParent(o.raw)
	if p == 0 {
		return nil
	}
	return &Obj[C]{raw: p, slot: o.slot}
}

// Apply calls fn with o and returns o. It lets a subtree be built inside the
// expression that creates its root.
func (o *Obj[C]) Apply(fn func(*Obj[C])) *Obj[C] {
	fn(o)
	return o
}

// ============================================================================
// Geometry
// ============================================================================

// SetPos moves o to (x, y) relative to its parent.
func (o *Obj[C]) SetPos(x, y Coord) *Obj[C] {
	o.live().ObjSetPos(o.raw, x, y)
	return o
}

// SetSize sets the width and height of o.
func (o *Obj[C]) SetSize(w, h Coord) *Obj[C] {
	o.live().ObjSetSize(o.raw, w, h)
	return o
}

// SetWidth sets the width of o.
func (o *Obj[C]) SetWidth(w Coord) *Obj[C] {
	o.live().ObjSetWidth(o.raw, w)
	return o
}

// SetHeight sets the height of o.
func (o *Obj[C]) SetHeight(h Coord) *Obj[C] {
	o.live().ObjSetHeight(o.raw, h)
	return o
}

// Align places o relative to its parent.
func (o *Obj[C]) Align(align Align, x, y Coord) *Obj[C] {
	o.live().ObjAlign(o.raw, align, x, y)
	return o
}

// AlignTo places o relative to base.
func (o *Obj[C]) AlignTo(base *Obj[C], align Align, x, y Coord) *Obj[C] {
	o.live().ObjAlignTo(o.raw, base.raw, align, x, y)
	return o
}

// SetGridDscArray makes o a grid container with the given column and row
// templates. The engine keeps pointers to the arrays, so they are copied,
// terminated with GridTemplateLast when needed and kept alive for good.
func (o *Obj[C]) SetGridDscArray(cols, rows []Coord) *Obj[C] {
	abi := o.live()
	c := o.slot.e.keepGrid(cols)
	r := o.slot.e.keepGrid(rows)
	abi.ObjSetGridDscArray(o.raw, c, r)
	return o
}

// SetGridCell places o in a cell of its parent's grid.
func (o *Obj[C]) SetGridCell(colAlign GridAlign, col, colSpan uint8, rowAlign GridAlign, row, rowSpan uint8) *Obj[C] {
	o.live().ObjSetGridCell(o.raw, colAlign, col, colSpan, rowAlign, row, rowSpan)
	return o
}

// ============================================================================
// Flags, states and styles
// ============================================================================

// AddFlag sets the bits of f on o.
func (o *Obj[C]) AddFlag(f ObjFlag) *Obj[C] {
	o.live().ObjAddFlag(o.raw, f)
	return o
}

// ClearFlag clears the bits of f on o.
func (o *Obj[C]) ClearFlag(f ObjFlag) *Obj[C] {
	o.live().ObjClearFlag(o.raw, f)
	return o
}

// HasFlag reports whether all bits of f are set.
func (o *Obj[C]) HasFlag(f ObjFlag) bool {
	return o.slot.e.abi.ObjHasFlag(o.raw, f)
}

// AddState sets the state bits s on o.
func (o *Obj[C]) AddState(s State) *Obj[C] {
	o.live().ObjAddState(o.raw, s)
	return o
}

// ClearState clears the state bits s on o.
func (o *Obj[C]) ClearState(s State) *Obj[C] {
	o.live().ObjClearState(o.raw, s)
	return o
}

// State returns the object's current state bits.
func (o *Obj[C]) State() State {
	return o.slot.e.abi.ObjGetState(o.raw)
}

// AddStyle attaches s for the parts and states in sel.
func (o *Obj[C]) AddStyle(s *Style, sel Selector) *Obj[C] {
	o.live().ObjAddStyle(o.raw, s.raw, sel)
	return o
}

// ============================================================================
// Grid arrays
// ============================================================================

func (e *Engine) keepGrid(tmpl []Coord) []Coord {
	arr := slices.Clone(tmpl)
	if len(arr) == 0 || arr[len(arr)-1] != GridTemplateLast {
		arr = append(arr, GridTemplateLast)
	}
	e.mu.Lock()
	e.grids = append(e.grids, arr)
	e.mu.Unlock()
	return arr
}
