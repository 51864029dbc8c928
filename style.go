package lvgo

import "github.com/agiangrant/lvgo/internal/native"

// ============================================================================
// Engine enums
// ============================================================================

// These are re-exports of the engine's flag, state, part and alignment
// values; they must match the linked library.
type (
	ObjFlag   = native.ObjFlag
	State     = native.State
	Part      = native.Part
	Align     = native.Align
	GridAlign = native.GridAlign
	Selector  = native.StyleSelector
)

const (
	FlagHidden          = native.FlagHidden
	FlagClickable       = native.FlagClickable
	FlagClickFocusable  = native.FlagClickFocusable
	FlagCheckable       = native.FlagCheckable
	FlagScrollable      = native.FlagScrollable
	FlagScrollOnFocus   = native.FlagScrollOnFocus
	FlagSnappable       = native.FlagSnappable
	FlagPressLock       = native.FlagPressLock
	FlagEventBubble     = native.FlagEventBubble
	FlagGestureBubble   = native.FlagGestureBubble
	FlagAdvHittest      = native.FlagAdvHittest
	FlagIgnoreLayout    = native.FlagIgnoreLayout
	FlagFloating        = native.FlagFloating
	FlagOverflowVisible = native.FlagOverflowVisible
)

const (
	StateDefault  = native.StateDefault
	StateChecked  = native.StateChecked
	StateFocused  = native.StateFocused
	StateFocusKey = native.StateFocusKey
	StateEdited   = native.StateEdited
	StateHovered  = native.StateHovered
	StatePressed  = native.StatePressed
	StateScrolled = native.StateScrolled
	StateDisabled = native.StateDisabled
	StateAny      = native.StateAny
)

const (
	PartMain      = native.PartMain
	PartScrollbar = native.PartScrollbar
	PartIndicator = native.PartIndicator
	PartKnob      = native.PartKnob
	PartSelected  = native.PartSelected
	PartItems     = native.PartItems
	PartAny       = native.PartAny
)

const (
	AlignDefault        = native.AlignDefault
	AlignTopLeft        = native.AlignTopLeft
	AlignTopMid         = native.AlignTopMid
	AlignTopRight       = native.AlignTopRight
	AlignBottomLeft     = native.AlignBottomLeft
	AlignBottomMid      = native.AlignBottomMid
	AlignBottomRight    = native.AlignBottomRight
	AlignLeftMid        = native.AlignLeftMid
	AlignRightMid       = native.AlignRightMid
	AlignCenter         = native.AlignCenter
	AlignOutTopLeft     = native.AlignOutTopLeft
	AlignOutTopMid      = native.AlignOutTopMid
	AlignOutTopRight    = native.AlignOutTopRight
	AlignOutBottomLeft  = native.AlignOutBottomLeft
	AlignOutBottomMid   = native.AlignOutBottomMid
	AlignOutBottomRight = native.AlignOutBottomRight
	AlignOutLeftTop     = native.AlignOutLeftTop
	AlignOutLeftMid     = native.AlignOutLeftMid
	AlignOutLeftBottom  = native.AlignOutLeftBottom
	AlignOutRightTop    = native.AlignOutRightTop
	AlignOutRightMid    = native.AlignOutRightMid
	AlignOutRightBottom = native.AlignOutRightBottom
)

const (
	GridAlignStart        = native.GridAlignStart
	GridAlignCenter       = native.GridAlignCenter
	GridAlignEnd          = native.GridAlignEnd
	GridAlignStretch      = native.GridAlignStretch
	GridAlignSpaceEvenly  = native.GridAlignSpaceEvenly
	GridAlignSpaceAround  = native.GridAlignSpaceAround
	GridAlignSpaceBetween = native.GridAlignSpaceBetween
)

// Grid template markers.
const (
	GridContent      = native.GridContent
	GridTemplateLast = native.GridTemplateLast
)

// GridFR returns the track size for x free units.
func GridFR(x uint8) Coord { return native.GridFR(x) }

// Select builds a style selector from a part and a state.
func Select(part Part, state State) Selector {
	return Selector(uint32(part) | uint32(state))
}

// ============================================================================
// Style
// ============================================================================

// Style is a set of style properties owned by the engine. Styles are never
// freed; create them once and share them between objects.
type Style struct {
	e   *Engine
	raw native.Style
}

// NewStyle allocates an empty style.
func NewStyle(e *Engine) *Style {
	raw := e.abi.StyleCreate()
	if raw == 0 {
		panic("lvgo: style allocation failed: out of memory")
	}
	return &Style{e: e, raw: raw}
}

func (s *Style) set(prop native.StyleProp, v int32) *Style {
	s.e.abi.StyleSetProp(s.raw, prop, v)
	return s
}

func (s *Style) SetWidth(w Coord) *Style       { return s.set(native.StyleWidth, int32(w)) }
func (s *Style) SetHeight(h Coord) *Style      { return s.set(native.StyleHeight, int32(h)) }
func (s *Style) SetX(x Coord) *Style           { return s.set(native.StyleX, int32(x)) }
func (s *Style) SetY(y Coord) *Style           { return s.set(native.StyleY, int32(y)) }
func (s *Style) SetPadTop(v Coord) *Style      { return s.set(native.StylePadTop, int32(v)) }
func (s *Style) SetPadBottom(v Coord) *Style   { return s.set(native.StylePadBottom, int32(v)) }
func (s *Style) SetPadLeft(v Coord) *Style     { return s.set(native.StylePadLeft, int32(v)) }
func (s *Style) SetPadRight(v Coord) *Style    { return s.set(native.StylePadRight, int32(v)) }
func (s *Style) SetPadRow(v Coord) *Style      { return s.set(native.StylePadRow, int32(v)) }
func (s *Style) SetPadColumn(v Coord) *Style   { return s.set(native.StylePadColumn, int32(v)) }
func (s *Style) SetBgColor(c Color) *Style     { return s.set(native.StyleBgColor, int32(c)) }
func (s *Style) SetBgOpa(opa uint8) *Style     { return s.set(native.StyleBgOpa, int32(opa)) }
func (s *Style) SetBorderColor(c Color) *Style { return s.set(native.StyleBorderColor, int32(c)) }
func (s *Style) SetBorderOpa(opa uint8) *Style { return s.set(native.StyleBorderOpa, int32(opa)) }
func (s *Style) SetBorderWidth(w Coord) *Style { return s.set(native.StyleBorderWidth, int32(w)) }
func (s *Style) SetRadius(r Coord) *Style      { return s.set(native.StyleRadius, int32(r)) }
func (s *Style) SetTextColor(c Color) *Style   { return s.set(native.StyleTextColor, int32(c)) }

// SetPadAll sets the four paddings to v.
func (s *Style) SetPadAll(v Coord) *Style {
	return s.SetPadTop(v).SetPadBottom(v).SetPadLeft(v).SetPadRight(v)
}
