package sim

import "github.com/agiangrant/lvgo/internal/native"

// Flags every lv_obj starts with.
const defaultFlags = native.FlagClickable | native.FlagClickFocusable |
	native.FlagScrollable | native.FlagScrollElastic | native.FlagScrollMomentum |
	native.FlagScrollWithArrow | native.FlagScrollChain | native.FlagScrollOnFocus |
	native.FlagSnappable | native.FlagPressLock | native.FlagGestureBubble

// Default sizes of freshly created objects.
const (
	defaultObjWidth  = 100
	defaultObjHeight = 50
	labelCharWidth   = 8
	labelLineHeight  = 16
)

type object struct {
	id       native.Obj
	class    native.Class
	parent   *object
	children []*object

	flags native.ObjFlag
	state native.State

	// Position relative to the parent's content area.
	x, y native.Coord
	w, h native.Coord

	align *alignSpec
	cell  *gridCell

	gridCols, gridRows []native.Coord

	styles    []styleRef
	callbacks []callback

	text string

	// Absolute area computed by the last layout pass.
	abs     native.Area
	laidOut bool
}

type alignSpec struct {
	base  native.Obj // 0 aligns to the parent
	align native.Align
	x, y  native.Coord
}

type gridCell struct {
	colAlign, rowAlign native.GridAlign
	col, colSpan       uint8
	row, rowSpan       uint8
}

type callback struct {
	fn       native.EventCallback
	filter   native.EventCode
	userData uintptr
}

// ============================================================================
// Creation
// ============================================================================

func (s *Engine) ObjCreate(parent native.Obj) native.Obj {
	return s.WidgetCreate("obj", parent)
}

func (s *Engine) WidgetCreate(class native.Class, parent native.Obj) native.Obj {
	s.mustInit()

	o := &object{
		class: class,
		flags: defaultFlags,
		w:     defaultObjWidth,
		h:     defaultObjHeight,
	}

	switch class {
	case "label":
		o.flags &^= native.FlagClickable | native.FlagClickFocusable | native.FlagScrollable
		o.w, o.h = 0, labelLineHeight
	case "btn":
		o.flags &^= native.FlagScrollOnFocus | native.FlagScrollable
	}

	if parent != 0 {
		p, ok := s.objects[parent]
		if !ok {
			// A dangling parent is what an allocation failure looks like to
			// the caller: no object.
			s.logf("Error", "lv_%s_create: unknown parent %#x", class, parent)
			return 0
		}
		o.parent = p
		p.children = append(p.children, o)
	} else if s.disp != nil {
		o.w, o.h = s.disp.drv.HorRes, s.disp.drv.VerRes
	}

	s.nextObj += 0x10
	o.id = s.nextObj
	s.objects[o.id] = o
	s.invalidateObj(o)
	return o.id
}

func (s *Engine) obj(id native.Obj) *object {
	o, ok := s.objects[id]
	if !ok {
		panic("sim: use of unknown or deleted object")
	}
	return o
}

// Delete frees obj and its descendants the way the engine does: Delete is sent
// to the object, then to its children, and finally ChildDeleted to the
// parent.
func (s *Engine) Delete(id native.Obj) {
	o := s.obj(id)
	parent := o.parent
	s.invalidateObj(o)
	s.deleteCore(o)
	if parent != nil {
		for i, c := range parent.children {
			if c == o {
				parent.children = append(parent.children[:i], parent.children[i+1:]...)
				break
			}
		}
		s.send(parent, native.EventChildDeleted)
	}
}

func (s *Engine) deleteCore(o *object) {
	s.send(o, native.EventDelete)
	for _, c := range append([]*object(nil), o.children...) {
		s.deleteCore(c)
	}
	if s.focused == o {
		s.focused = nil
	}
	for _, in := range s.indevs {
		if in.act == o {
			in.act = nil
		}
	}
	delete(s.objects, o.id)
}

// ============================================================================
// Geometry
// ============================================================================

func (s *Engine) ObjGetParent(id native.Obj) native.Obj {
	if p := s.obj(id).parent; p != nil {
		return p.id
	}
	return 0
}

func (s *Engine) ObjSetPos(id native.Obj, x, y native.Coord) {
	o := s.obj(id)
	s.invalidateObj(o)
	o.x, o.y = x, y
	o.align = nil
}

func (s *Engine) ObjSetSize(id native.Obj, w, h native.Coord) {
	o := s.obj(id)
	s.invalidateObj(o)
	o.w, o.h = w, h
}

func (s *Engine) ObjSetWidth(id native.Obj, w native.Coord) {
	o := s.obj(id)
	s.invalidateObj(o)
	o.w = w
}

func (s *Engine) ObjSetHeight(id native.Obj, h native.Coord) {
	o := s.obj(id)
	s.invalidateObj(o)
	o.h = h
}

func (s *Engine) ObjAlign(id native.Obj, align native.Align, x, y native.Coord) {
	o := s.obj(id)
	s.invalidateObj(o)
	o.align = &alignSpec{align: align, x: x, y: y}
}

func (s *Engine) ObjAlignTo(id, base native.Obj, align native.Align, x, y native.Coord) {
	o := s.obj(id)
	s.invalidateObj(o)
	if o.parent != nil && base == o.parent.id {
		base = 0
	}
	o.align = &alignSpec{base: base, align: align, x: x, y: y}
}

func (s *Engine) ObjSetGridDscArray(id native.Obj, cols, rows []native.Coord) {
	o := s.obj(id)
	s.invalidateObj(o)
	o.gridCols, o.gridRows = cols, rows
}

func (s *Engine) ObjSetGridCell(id native.Obj, colAlign native.GridAlign, col, colSpan uint8, rowAlign native.GridAlign, row, rowSpan uint8) {
	o := s.obj(id)
	s.invalidateObj(o)
	o.cell = &gridCell{
		colAlign: colAlign, col: col, colSpan: colSpan,
		rowAlign: rowAlign, row: row, rowSpan: rowSpan,
	}
}

func (s *Engine) LabelSetText(id native.Obj, text string) {
	o := s.obj(id)
	s.invalidateObj(o)
	o.text = text
	o.w = native.Coord(len(text) * labelCharWidth)
	o.h = labelLineHeight
}

// ============================================================================
// Flags and states
// ============================================================================

func (s *Engine) ObjAddFlag(id native.Obj, f native.ObjFlag) {
	o := s.obj(id)
	o.flags |= f
	if f&native.FlagHidden != 0 {
		s.invalidateObj(o)
	}
}

func (s *Engine) ObjClearFlag(id native.Obj, f native.ObjFlag) {
	o := s.obj(id)
	o.flags &^= f
	if f&native.FlagHidden != 0 {
		s.invalidateObj(o)
	}
}

func (s *Engine) ObjHasFlag(id native.Obj, f native.ObjFlag) bool {
	return s.obj(id).flags&f == f
}

func (s *Engine) ObjAddState(id native.Obj, st native.State) {
	o := s.obj(id)
	o.state |= st
	s.invalidateObj(o)
}

func (s *Engine) ObjClearState(id native.Obj, st native.State) {
	o := s.obj(id)
	o.state &^= st
	s.invalidateObj(o)
}

func (s *Engine) ObjGetState(id native.Obj) native.State {
	return s.obj(id).state
}

// ============================================================================
// Layout
// ============================================================================

// layout recomputes absolute areas for the tree under root.
func (s *Engine) layout(root *object) {
	root.abs = native.Area{X1: root.x, Y1: root.y, X2: root.x + root.w - 1, Y2: root.y + root.h - 1}
	root.laidOut = true
	s.layoutChildren(root)
}

func (s *Engine) layoutChildren(p *object) {
	if len(p.gridCols) > 0 && len(p.gridRows) > 0 {
		s.layoutGrid(p)
	}
	padLeft, _ := s.styleProp(p, native.StylePadLeft)
	padTop, _ := s.styleProp(p, native.StylePadTop)
	originX := p.abs.X1 + native.Coord(padLeft)
	originY := p.abs.Y1 + native.Coord(padTop)

	// Aligned children may refer to siblings, so positions are settled for
	// everyone before alignment is resolved.
	for _, c := range p.children {
		c.abs = native.Area{X1: originX + c.x, Y1: originY + c.y}
		c.abs.X2 = c.abs.X1 + c.w - 1
		c.abs.Y2 = c.abs.Y1 + c.h - 1
		c.laidOut = true
	}
	for _, c := range p.children {
		if c.align == nil {
			continue
		}
		base := p
		if c.align.base != 0 {
			if b, ok := s.objects[c.align.base]; ok && b.laidOut {
				base = b
			}
		}
		bx, by, bw, bh := base.abs.X1, base.abs.Y1, base.w, base.h
		if base == p {
			bx, by = originX, originY
			bw, bh = s.contentSize(p)
		}
		dx, dy := alignOffset(c.align.align, bw, bh, c.w, c.h)
		c.x = bx + dx + c.align.x - originX
		c.y = by + dy + c.align.y - originY
		c.abs = native.Area{X1: originX + c.x, Y1: originY + c.y}
		c.abs.X2 = c.abs.X1 + c.w - 1
		c.abs.Y2 = c.abs.Y1 + c.h - 1
	}
	for _, c := range p.children {
		s.layoutChildren(c)
	}
}

func (s *Engine) contentSize(p *object) (native.Coord, native.Coord) {
	l, _ := s.styleProp(p, native.StylePadLeft)
	r, _ := s.styleProp(p, native.StylePadRight)
	t, _ := s.styleProp(p, native.StylePadTop)
	b, _ := s.styleProp(p, native.StylePadBottom)
	return p.w - native.Coord(l+r), p.h - native.Coord(t+b)
}

func alignOffset(a native.Align, bw, bh, w, h native.Coord) (native.Coord, native.Coord) {
	midX, midY := (bw-w)/2, (bh-h)/2
	switch a {
	case native.AlignTopMid:
		return midX, 0
	case native.AlignTopRight:
		return bw - w, 0
	case native.AlignBottomLeft:
		return 0, bh - h
	case native.AlignBottomMid:
		return midX, bh - h
	case native.AlignBottomRight:
		return bw - w, bh - h
	case native.AlignLeftMid:
		return 0, midY
	case native.AlignRightMid:
		return bw - w, midY
	case native.AlignCenter:
		return midX, midY
	case native.AlignOutTopLeft:
		return 0, -h
	case native.AlignOutTopMid:
		return midX, -h
	case native.AlignOutTopRight:
		return bw - w, -h
	case native.AlignOutBottomLeft:
		return 0, bh
	case native.AlignOutBottomMid:
		return midX, bh
	case native.AlignOutBottomRight:
		return bw - w, bh
	case native.AlignOutLeftTop:
		return -w, 0
	case native.AlignOutLeftMid:
		return -w, midY
	case native.AlignOutLeftBottom:
		return -w, bh - h
	case native.AlignOutRightTop:
		return bw, 0
	case native.AlignOutRightMid:
		return bw, midY
	case native.AlignOutRightBottom:
		return bw, bh - h
	}
	return 0, 0
}

// layoutGrid places children that have a grid cell. Content-sized tracks
// are treated as empty.
func (s *Engine) layoutGrid(p *object) {
	cw, ch := s.contentSize(p)
	gapCol, _ := s.styleProp(p, native.StylePadColumn)
	gapRow, _ := s.styleProp(p, native.StylePadRow)
	cols := trackSizes(p.gridCols, cw, native.Coord(gapCol))
	rows := trackSizes(p.gridRows, ch, native.Coord(gapRow))

	for _, c := range p.children {
		if c.cell == nil || c.flags&native.FlagIgnoreLayout != 0 {
			continue
		}
		x0, cellW := span(cols, int(c.cell.col), int(c.cell.colSpan), native.Coord(gapCol))
		y0, cellH := span(rows, int(c.cell.row), int(c.cell.rowSpan), native.Coord(gapRow))
		c.x, c.w = place(c.cell.colAlign, x0, cellW, c.w)
		c.y, c.h = place(c.cell.rowAlign, y0, cellH, c.h)
		c.align = nil
	}
}

func trackSizes(tmpl []native.Coord, avail, gap native.Coord) []native.Coord {
	var sizes []native.Coord
	used, frTotal := 0, 0
	for _, v := range tmpl {
		if v == native.GridTemplateLast {
			break
		}
		if fr, ok := native.IsGridFR(v); ok {
			frTotal += fr
			sizes = append(sizes, 0)
			continue
		}
		if v == native.GridContent {
			sizes = append(sizes, 0)
			continue
		}
		sizes = append(sizes, v)
		used += int(v)
	}
	if len(sizes) > 1 {
		used += int(gap) * (len(sizes) - 1)
	}
	free := int(avail) - used
	if free < 0 {
		free = 0
	}
	if frTotal > 0 {
		for i, v := range tmpl[:len(sizes)] {
			if fr, ok := native.IsGridFR(v); ok {
				sizes[i] = native.Coord(free * fr / frTotal)
			}
		}
	}
	return sizes
}

func span(tracks []native.Coord, start, n int, gap native.Coord) (native.Coord, native.Coord) {
	if n < 1 {
		n = 1
	}
	var pos, size native.Coord
	for i := 0; i < start && i < len(tracks); i++ {
		pos += tracks[i] + gap
	}
	for i := start; i < start+n && i < len(tracks); i++ {
		if i > start {
			size += gap
		}
		size += tracks[i]
	}
	return pos, size
}

func place(a native.GridAlign, pos, cell, size native.Coord) (native.Coord, native.Coord) {
	switch a {
	case native.GridAlignStretch:
		return pos, cell
	case native.GridAlignCenter:
		return pos + (cell-size)/2, size
	case native.GridAlignEnd:
		return pos + cell - size, size
	}
	return pos, size
}

// ============================================================================
// Queries used by tests
// ============================================================================

// Children returns the children of obj in creation order.
func (s *Engine) Children(id native.Obj) []native.Obj {
	o := s.obj(id)
	out := make([]native.Obj, len(o.children))
	for i, c := range o.children {
		out[i] = c.id
	}
	return out
}

// Class returns the widget class obj was created with.
func (s *Engine) Class(id native.Obj) native.Class { return s.obj(id).class }

// Pos returns obj's position relative to its parent's content area.
func (s *Engine) Pos(id native.Obj) (native.Coord, native.Coord) {
	o := s.obj(id)
	return o.x, o.y
}

// Size returns obj's size.
func (s *Engine) Size(id native.Obj) (native.Coord, native.Coord) {
	o := s.obj(id)
	return o.w, o.h
}

// Flags returns obj's flags.
func (s *Engine) Flags(id native.Obj) native.ObjFlag { return s.obj(id).flags }

// Text returns a label's text.
func (s *Engine) Text(id native.Obj) string { return s.obj(id).text }

// Grid returns the grid descriptor arrays set on obj.
func (s *Engine) Grid(id native.Obj) (cols, rows []native.Coord) {
	o := s.obj(id)
	return o.gridCols, o.gridRows
}

// Coords lays out obj's screen and returns obj's absolute area.
func (s *Engine) Coords(id native.Obj) native.Area {
	o := s.obj(id)
	root := o
	for root.parent != nil {
		root = root.parent
	}
	s.layout(root)
	return o.abs
}
